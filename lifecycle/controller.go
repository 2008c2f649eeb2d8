package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/atomic"

	"github.com/natscamp/money-manager/common"
	"github.com/natscamp/money-manager/content"
)

var (
	// ErrTerminated is returned for events dispatched after termination.
	ErrTerminated = errors.New("application terminated")
	// ErrUnknownEvent is returned for events without a handler.
	ErrUnknownEvent = errors.New("unknown lifecycle event")
)

// eventQueueSize bounds Post; handlers are short so the queue stays shallow.
const eventQueueSize = 32

// Platform is the host application.
type Platform interface {
	// Quit ends the process' event loop. It must not be intercepted.
	Quit()
	// KeepsRunningWithoutWindows reports the macOS convention of staying
	// alive after the last window closed.
	KeepsRunningWithoutWindows() bool
}

// Options configures a Controller.
type Options struct {
	Window   WindowOptions
	Content  content.Source
	TrayIcon []byte

	// ExposeBindings turns content isolation off. Development only.
	ExposeBindings    bool
	MinimizeToTray    bool
	ShowNotifications bool
	MaximizeOnStart   bool
}

// Controller owns the lifecycle Session and applies events to it.
type Controller struct {
	session  *Session
	opts     Options
	windows  WindowFactory
	trays    TrayFactory
	platform Platform

	handlers map[Event]func() error
	events   chan Event
	done     chan struct{}

	terminating *atomic.Bool
}

// New creates a controller. Nothing happens until EventReady is handled.
func New(opts Options, windows WindowFactory, trays TrayFactory, platform Platform) *Controller {
	c := &Controller{
		session:     NewSession(),
		opts:        opts,
		windows:     windows,
		trays:       trays,
		platform:    platform,
		events:      make(chan Event, eventQueueSize),
		done:        make(chan struct{}),
		terminating: atomic.NewBool(false),
	}
	c.handlers = map[Event]func() error{
		EventReady:            c.onReady,
		EventContentLoaded:    c.onContentLoaded,
		EventWindowClose:      c.onWindowClose,
		EventWindowsAllClosed: c.onWindowsAllClosed,
		EventActivate:         c.onActivate,
		EventTrayOpen:         c.onTrayOpen,
		EventTrayDoubleClick:  c.onTrayOpen,
		EventTrayExit:         c.onTrayExit,
		EventShutdownRequest:  c.onShutdownRequest,
	}
	return c
}

// Session returns the lifecycle state. Read it only from the goroutine
// that dispatches events.
func (c *Controller) Session() *Session {
	return c.session
}

// Terminating reports whether an exit is under way. Safe for concurrent use;
// close hooks use it to let the final quit through.
func (c *Controller) Terminating() bool {
	return c.terminating.Load()
}

// Dispatch handles one event synchronously.
func (c *Controller) Dispatch(ev Event) error {
	if c.session.state == StateTerminated {
		return ErrTerminated
	}

	handler, ok := c.handlers[ev]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownEvent, int(ev))
	}

	prev := c.session.state
	err := handler()
	if next := c.session.state; next != prev {
		common.LogDebug("Lifecycle %s -> %s on %s", prev, next, ev)
	}
	return err
}

// Post queues an event for Run. It returns false once Run has stopped.
func (c *Controller) Post(ev Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}

func (c *Controller) emit(ev Event) {
	c.Post(ev)
}

// Run dispatches posted events until the application terminates or ctx
// is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-c.events:
			err := c.Dispatch(ev)
			if errors.Is(err, ErrTerminated) {
				return nil
			}
			if err != nil {
				common.LogError("Handling %s: %v", ev, err)
			}
			if c.session.state == StateTerminated {
				return nil
			}
		}
	}
}

func (c *Controller) onShutdownRequest() error {
	common.LogInfo("Shutdown requested")
	return c.terminate()
}

// terminate is the unconditional exit path shared by the tray's Exit item,
// external shutdown requests and the last window closing.
func (c *Controller) terminate() error {
	c.terminating.Store(true)

	if tray := c.session.tray; tray != nil {
		tray.handle.Destroy()
		c.session.tray = nil
	}
	c.session.state = StateTerminated
	c.platform.Quit()
	return nil
}
