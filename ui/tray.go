// Package ui provides the desktop integration for Money Manager.
// This file contains the system tray icon.
package ui

import (
	"fmt"
	goruntime "runtime"
	"sync"
	"time"

	"github.com/energye/systray"
	"go.uber.org/atomic"

	"github.com/natscamp/money-manager/common"
	"github.com/natscamp/money-manager/lifecycle"
)

// trayReadyTimeout bounds the wait for the tray registration.
const trayReadyTimeout = 3 * time.Second

// trayBackend is the process-wide tray registration. run is called once per
// process; the icon and menu are then shown and cleared on that registration.
type trayBackend interface {
	// run blocks serving the tray until quit. onReady fires once.
	run(onReady, onExit func())
	quit()
	setIcon(icon []byte)
	setTooltip(tooltip string)
	setOnDoubleClick(fn func())
	// setItem adds or rebinds a menu item and shows it.
	setItem(label, tooltip string, onClick func())
	hideItems()
}

// energyeBackend drives github.com/energye/systray.
type energyeBackend struct {
	mu    sync.Mutex
	items map[string]*systray.MenuItem
	order []string
}

func newEnergyeBackend() *energyeBackend {
	return &energyeBackend{items: make(map[string]*systray.MenuItem)}
}

func (b *energyeBackend) run(onReady, onExit func()) {
	systray.Run(onReady, onExit)
}

func (b *energyeBackend) quit() {
	systray.Quit()
}

func (b *energyeBackend) setIcon(icon []byte) {
	if goruntime.GOOS == "windows" {
		ico, err := icoFromPNG(icon)
		if err != nil {
			common.LogWarn("Tray icon conversion failed: %v", err)
			return
		}
		icon = ico
	}
	systray.SetIcon(icon)
}

func (b *energyeBackend) setTooltip(tooltip string) {
	systray.SetTitle(tooltip)
	systray.SetTooltip(tooltip)
}

func (b *energyeBackend) setOnDoubleClick(fn func()) {
	systray.SetOnDClick(func(systray.IMenu) { fn() })
	systray.SetOnRClick(func(menu systray.IMenu) {
		if menu != nil {
			_ = menu.ShowMenu()
		}
	})
}

func (b *energyeBackend) setItem(label, tooltip string, onClick func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	item, ok := b.items[label]
	if !ok {
		item = systray.AddMenuItem(label, tooltip)
		b.items[label] = item
		b.order = append(b.order, label)
	}
	item.SetTooltip(tooltip)
	item.Click(onClick)
	item.Show()
}

func (b *energyeBackend) hideItems() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, label := range b.order {
		item := b.items[label]
		item.Click(func() {})
		item.Hide()
	}
}

// TrayFactory creates tray icons for the lifecycle controller. All trays
// share one registration that is started by the first NewTray.
type TrayFactory struct {
	backend  trayBackend
	notifier Notifier
	timeout  time.Duration
	blank    []byte

	startOnce sync.Once
	started   *atomic.Bool
	ready     chan struct{}

	mu     sync.Mutex
	active *trayIcon
}

// NewTrayFactory creates a factory backed by the system tray.
func NewTrayFactory(notifier Notifier) *TrayFactory {
	return newTrayFactory(newEnergyeBackend(), notifier, trayReadyTimeout)
}

func newTrayFactory(backend trayBackend, notifier Notifier, timeout time.Duration) *TrayFactory {
	blank, err := BlankIcon()
	if err != nil {
		common.LogWarn("Could not generate blank tray icon: %v", err)
	}
	return &TrayFactory{
		backend:  backend,
		notifier: notifier,
		timeout:  timeout,
		blank:    blank,
		started:  atomic.NewBool(false),
		ready:    make(chan struct{}),
	}
}

// start registers the tray on a goroutine locked to its OS thread; the
// native message loop must stay on the thread that created the icon.
func (f *TrayFactory) start() {
	f.startOnce.Do(func() {
		f.started.Store(true)
		go func() {
			goruntime.LockOSThread()
			defer goruntime.UnlockOSThread()

			f.backend.run(func() { close(f.ready) }, func() {
				common.LogDebug("System tray stopped")
			})
		}()
	})
}

// NewTray shows the icon and binds the menu to emit.
func (f *TrayFactory) NewTray(spec lifecycle.TraySpec, emit func(lifecycle.Event)) (lifecycle.Tray, error) {
	if len(spec.Icon) == 0 {
		return nil, common.ErrNoIcon
	}

	f.start()
	select {
	case <-f.ready:
	case <-time.After(f.timeout):
		return nil, fmt.Errorf("tray not ready after %s", f.timeout)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.active != nil {
		f.active.live.Store(false)
	}

	t := &trayIcon{factory: f, notifier: f.notifier, emit: emit, live: atomic.NewBool(true)}
	f.backend.setIcon(spec.Icon)
	f.backend.setTooltip(spec.Tooltip)
	f.backend.setOnDoubleClick(func() { t.fire(spec.DoubleClick) })
	for _, item := range spec.Menu {
		ev := item.Event
		f.backend.setItem(item.Label, item.ToolTip, func() { t.fire(ev) })
	}
	f.active = t
	return t, nil
}

// release clears the registration if t is still the tray on show.
func (f *TrayFactory) release(t *trayIcon) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.active != t {
		return
	}
	f.backend.hideItems()
	f.backend.setOnDoubleClick(func() {})
	f.backend.setTooltip("")
	if len(f.blank) > 0 {
		f.backend.setIcon(f.blank)
	}
	f.active = nil
}

// Close ends the tray registration. Call it once at shutdown.
func (f *TrayFactory) Close() {
	if f.started.Load() {
		f.backend.quit()
	}
}

// trayIcon is one tray presence on the shared registration.
type trayIcon struct {
	factory  *TrayFactory
	notifier Notifier
	emit     func(lifecycle.Event)
	live     *atomic.Bool
	once     sync.Once
}

func (t *trayIcon) fire(ev lifecycle.Event) {
	if t.live.Load() {
		t.emit(ev)
	}
}

// DisplayBalloon shows b as a desktop notification.
func (t *trayIcon) DisplayBalloon(b lifecycle.Balloon) error {
	if t.notifier == nil {
		return common.ErrNotifierUnavailable
	}
	return t.notifier.Notify(notificationFromBalloon(b))
}

// Destroy clears the icon and unbinds the menu. Later calls do nothing.
func (t *trayIcon) Destroy() {
	t.once.Do(func() {
		t.live.Store(false)
		t.factory.release(t)
	})
}
