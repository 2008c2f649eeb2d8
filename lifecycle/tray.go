package lifecycle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/natscamp/money-manager/common"
)

// Tray is a platform tray presence.
type Tray interface {
	DisplayBalloon(b Balloon) error
	// Destroy removes the icon. The instance is not reused afterwards.
	Destroy()
}

// TrayFactory creates tray presences. emit delivers menu clicks and
// double clicks back to the controller.
type TrayFactory interface {
	NewTray(spec TraySpec, emit func(Event)) (Tray, error)
}

// MenuItem is one entry of the tray context menu.
type MenuItem struct {
	Label   string
	ToolTip string
	Event   Event
}

// TraySpec describes the tray to build.
type TraySpec struct {
	Icon        []byte
	Tooltip     string
	Menu        []MenuItem
	DoubleClick Event
}

// BalloonIcon selects the balloon's icon.
type BalloonIcon string

const (
	BalloonInfo    BalloonIcon = "info"
	BalloonWarning BalloonIcon = "warning"
	BalloonError   BalloonIcon = "error"
)

// Balloon is an informational notification anchored at the tray.
type Balloon struct {
	Icon    BalloonIcon
	Title   string
	Content string
}

func (c *Controller) traySpec() TraySpec {
	return TraySpec{
		Icon:    c.opts.TrayIcon,
		Tooltip: common.TrayTooltip,
		Menu: []MenuItem{
			{Label: "Open", ToolTip: "Open " + common.AppName, Event: EventTrayOpen},
			{Label: "Exit", ToolTip: "Exit " + common.AppName, Event: EventTrayExit},
		},
		DoubleClick: EventTrayDoubleClick,
	}
}

// createTray builds the tray. Any error wraps common.ErrTrayInit.
func (c *Controller) createTray() (*TrayIcon, error) {
	spec := c.traySpec()
	if len(spec.Icon) == 0 {
		return nil, fmt.Errorf("%w: %w", common.ErrTrayInit, common.ErrNoIcon)
	}

	handle, err := c.trays.NewTray(spec, c.emit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrTrayInit, err)
	}

	tray := &TrayIcon{id: uuid.NewString(), handle: handle, spec: spec}

	if c.session.consumeFirstRunNotice() && c.opts.ShowNotifications {
		err := handle.DisplayBalloon(Balloon{
			Icon:    BalloonInfo,
			Title:   common.AppName,
			Content: common.TrayBalloonContent,
		})
		if err != nil {
			common.LogWarn("Could not show tray notification: %v", err)
		} else {
			tray.balloonShown = true
		}
	}
	return tray, nil
}

// onTrayOpen shows the window, then tears the tray down.
func (c *Controller) onTrayOpen() error {
	tray := c.session.tray
	if tray == nil {
		return nil
	}

	w := c.session.window
	if w != nil {
		w.restore()
	}
	tray.handle.Destroy()
	c.session.tray = nil
	if w != nil {
		c.session.state = StateWindowVisible
	} else {
		c.session.state = StateNoWindow
	}

	common.LogInfo("Restored from tray (tray %s destroyed)", tray.id)
	return nil
}

func (c *Controller) onTrayExit() error {
	common.LogInfo("Exit selected from tray")
	return c.terminate()
}
