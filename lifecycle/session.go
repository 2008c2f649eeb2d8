package lifecycle

import "github.com/natscamp/money-manager/content"

// Session is the lifecycle state of one process: the main window, the tray
// icon, and the two one-shot flags. Only the Controller mutates it.
type Session struct {
	state  State
	window *MainWindow
	tray   *TrayIcon

	// firstLoad is cleared after the first successful content load.
	firstLoad bool
	// firstRunNotice is consumed by the first tray that gets created.
	firstRunNotice bool
}

// NewSession returns the state of a freshly started process.
func NewSession() *Session {
	return &Session{
		state:          StateStarting,
		firstLoad:      true,
		firstRunNotice: true,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Window returns the main window, or nil when none exists.
func (s *Session) Window() *MainWindow {
	return s.window
}

// Tray returns the tray icon, or nil when none exists.
func (s *Session) Tray() *TrayIcon {
	return s.tray
}

// FirstLoad reports whether no content load has completed yet.
func (s *Session) FirstLoad() bool {
	return s.firstLoad
}

// FirstRunNoticePending reports whether the tray notice is still unshown.
func (s *Session) FirstRunNoticePending() bool {
	return s.firstRunNotice
}

func (s *Session) clearFirstLoad() bool {
	was := s.firstLoad
	s.firstLoad = false
	return was
}

func (s *Session) consumeFirstRunNotice() bool {
	was := s.firstRunNotice
	s.firstRunNotice = false
	return was
}

// MainWindow is the primary application window.
type MainWindow struct {
	handle    Window
	source    content.Source
	visible   bool
	maximized bool
	loaded    bool
	// maximizePending holds a first-paint maximize for the next show.
	maximizePending bool
}

// Visible reports whether the window is shown.
func (w *MainWindow) Visible() bool { return w.visible }

// Maximized reports whether the window was maximized.
func (w *MainWindow) Maximized() bool { return w.maximized }

// Loaded reports whether content finished loading at least once.
func (w *MainWindow) Loaded() bool { return w.loaded }

// Source returns the content the window loads.
func (w *MainWindow) Source() content.Source { return w.source }

func (w *MainWindow) show() {
	w.handle.Show()
	w.visible = true
}

func (w *MainWindow) hide() {
	w.handle.Hide()
	w.visible = false
}

func (w *MainWindow) maximize() {
	w.handle.Maximize()
	w.maximized = true
	w.maximizePending = false
}

// restore shows the window and applies a maximize deferred while it was
// hidden.
func (w *MainWindow) restore() {
	w.show()
	if w.maximizePending {
		w.maximize()
	}
}

// TrayIcon is one tray presence, from creation until the window is restored.
type TrayIcon struct {
	id           string
	handle       Tray
	spec         TraySpec
	balloonShown bool
}

// ID identifies this tray instance in logs.
func (t *TrayIcon) ID() string { return t.id }

// Tooltip returns the tooltip text.
func (t *TrayIcon) Tooltip() string { return t.spec.Tooltip }

// Menu returns the context menu definition.
func (t *TrayIcon) Menu() []MenuItem { return t.spec.Menu }

// BalloonShown reports whether this instance displayed the first-run notice.
func (t *TrayIcon) BalloonShown() bool { return t.balloonShown }
