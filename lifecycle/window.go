package lifecycle

import (
	"fmt"

	"github.com/natscamp/money-manager/common"
	"github.com/natscamp/money-manager/content"
)

// Window is a platform window that renders the frontend.
type Window interface {
	// Load starts loading src. Completion is reported as EventContentLoaded.
	Load(src content.Source) error
	Show()
	Hide()
	Maximize()
	// Close releases the window. It is only used when closing to the tray
	// is disabled.
	Close()
}

// WindowFactory creates platform windows.
type WindowFactory interface {
	NewWindow(opts WindowOptions) (Window, error)
}

// WindowOptions configures a new main window.
type WindowOptions struct {
	Title      string
	MinWidth   int
	MinHeight  int
	Background string // #rrggbb
	Icon       []byte
	// StartHidden keeps the window invisible until its content is painted.
	StartHidden bool
	// Isolated keeps native bindings away from the page.
	Isolated bool
	// ShowMenu keeps the application menu; it is stripped outside development.
	ShowMenu bool
}

// DefaultWindowOptions returns the main window defaults.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{
		Title:       common.AppName,
		MinWidth:    common.MinWindowWidth,
		MinHeight:   common.MinWindowHeight,
		Background:  common.WindowBackground,
		StartHidden: true,
		Isolated:    true,
	}
}

// WindowOptions returns the options for the next main window. It applies the security posture and menu policy.
func (c *Controller) WindowOptions() WindowOptions {
	opts := c.opts.Window
	opts.StartHidden = true
	opts.Isolated = !c.opts.ExposeBindings
	opts.ShowMenu = c.opts.Content.IsDevelopment()
	return opts
}

// createMainWindow builds the window and starts loading its content.
// The window stays hidden until onContentLoaded.
func (c *Controller) createMainWindow() error {
	handle, err := c.windows.NewWindow(c.WindowOptions())
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrWindowCreate, err)
	}

	c.session.window = &MainWindow{handle: handle, source: c.opts.Content}
	c.session.state = StateStarting

	if err := handle.Load(c.opts.Content); err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrContentLoad, c.opts.Content, err)
	}

	common.LogInfo("Main window created, loading %s content from %s", c.opts.Content.Kind, c.opts.Content)
	return nil
}

func (c *Controller) onReady() error {
	if c.session.window != nil {
		return nil
	}
	return c.createMainWindow()
}

func (c *Controller) onContentLoaded() error {
	w := c.session.window
	if w == nil {
		return nil
	}

	firstPaint := !w.loaded
	w.loaded = true
	if firstPaint && c.opts.MaximizeOnStart {
		w.maximizePending = true
	}
	if c.session.clearFirstLoad() {
		common.LogInfo("First content load completed")
	}

	// A load must not pull the window out from behind the tray. A first
	// paint maximize waits for the restore.
	if c.session.state == StateWindowHiddenWithTray {
		common.LogDebug("Content loaded while minimized to tray; window stays hidden")
		return nil
	}

	w.restore()
	c.session.state = StateWindowVisible
	return nil
}

// onWindowClose hides the window and hands it to the tray.
func (c *Controller) onWindowClose() error {
	w := c.session.window
	if w == nil {
		return nil
	}

	if !c.opts.MinimizeToTray {
		w.handle.Close()
		c.session.window = nil
		return c.onWindowsAllClosed()
	}

	if c.session.tray != nil {
		w.hide()
		return nil
	}

	tray, err := c.createTray()
	w.hide()
	if err != nil {
		common.LogError("Window hidden without tray icon: %v", err)
		c.session.state = StateWindowHiddenNoTray
		return nil
	}

	c.session.tray = tray
	c.session.state = StateWindowHiddenWithTray
	common.LogInfo("Minimized to tray (tray %s)", tray.id)
	return nil
}

func (c *Controller) onWindowsAllClosed() error {
	if c.platform.KeepsRunningWithoutWindows() {
		// The tray only stands in for a hidden window.
		if tray := c.session.tray; tray != nil {
			tray.handle.Destroy()
			c.session.tray = nil
			common.LogInfo("Tray %s destroyed with the last window", tray.id)
		}
		c.session.window = nil
		c.session.state = StateNoWindow
		common.LogInfo("All windows closed; staying in background")
		return nil
	}
	common.LogInfo("All windows closed; quitting")
	return c.terminate()
}

func (c *Controller) onActivate() error {
	switch {
	case c.session.window == nil:
		return c.createMainWindow()
	case c.session.state == StateWindowHiddenNoTray:
		c.session.window.restore()
		c.session.state = StateWindowVisible
	default:
		common.LogDebug("Activate ignored in state %s", c.session.state)
	}
	return nil
}
