package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	goruntime "runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/natscamp/money-manager/common"
	"github.com/natscamp/money-manager/config"
	"github.com/natscamp/money-manager/content"
	"github.com/natscamp/money-manager/lifecycle"
)

var errRuntimeNotStarted = errors.New("wails runtime not started")

// loopStopTimeout bounds the wait for the lifecycle loop at shutdown.
const loopStopTimeout = 2 * time.Second

// AppOptions configures an Application.
type AppOptions struct {
	Config  *config.Config
	Source  content.Source
	Assets  fs.FS
	Version string
	// ExposeBindings binds Go methods into the page. Development only.
	ExposeBindings bool
	LogLevel       common.LogLevel
}

// Application represents the main application
type Application struct {
	ctl      *lifecycle.Controller
	opts     AppOptions
	icon     []byte
	notifier *DBusNotifier
	trays    *TrayFactory

	mu       sync.Mutex
	ctx      context.Context
	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewApplication creates a new application
func NewApplication(opts AppOptions) *Application {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}

	icon, err := AppIcon()
	if err != nil {
		// The tray reports ErrTrayInit for the missing icon later on.
		common.LogWarn("Could not generate application icon: %v", err)
	}

	notifier := NewDBusNotifier()
	a := &Application{
		opts:     opts,
		icon:     icon,
		notifier: notifier,
		trays:    NewTrayFactory(notifier),
	}

	winOpts := lifecycle.DefaultWindowOptions()
	winOpts.Icon = icon

	a.ctl = lifecycle.New(lifecycle.Options{
		Window:            winOpts,
		Content:           opts.Source,
		TrayIcon:          icon,
		ExposeBindings:    opts.ExposeBindings,
		MinimizeToTray:    opts.Config.MinimizeToTray,
		ShowNotifications: opts.Config.ShowNotifications,
		MaximizeOnStart:   opts.Config.MaximizeOnStart,
	}, NewWindowFactory(a.runtimeContext), a.trays, a)

	return a
}

// Controller returns the lifecycle controller.
func (a *Application) Controller() *lifecycle.Controller {
	return a.ctl
}

// Run starts wails and blocks until the application quits.
func (a *Application) Run() error {
	app, err := a.wailsOptions()
	if err != nil {
		return err
	}
	return wails.Run(app)
}

func (a *Application) wailsOptions() (*options.App, error) {
	winOpts := a.ctl.WindowOptions()

	assets, err := content.AssetServerOptions(a.opts.Source, a.opts.Assets)
	if err != nil {
		return nil, err
	}

	background, err := parseHexColour(winOpts.Background)
	if err != nil {
		return nil, fmt.Errorf("window background: %w", err)
	}

	app := &options.App{
		Title:            winOpts.Title,
		Width:            winOpts.MinWidth,
		Height:           winOpts.MinHeight,
		MinWidth:         winOpts.MinWidth,
		MinHeight:        winOpts.MinHeight,
		StartHidden:      winOpts.StartHidden,
		BackgroundColour: background,
		AssetServer:      assets,
		Logger:           newWailsLogger(common.GetLogger()),
		LogLevel:         wailsLogLevel(a.opts.LogLevel),
		OnStartup:        a.startup,
		OnDomReady:       a.domReady,
		OnBeforeClose:    a.beforeClose,
		OnShutdown:       a.shutdown,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: common.AppID,
			OnSecondInstanceLaunch: func(options.SecondInstanceData) {
				a.ctl.Post(lifecycle.EventActivate)
			},
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   common.AppName,
				Message: a.opts.Version + "\n" + common.Copyright,
				Icon:    winOpts.Icon,
			},
		},
		Linux: &linux.Options{
			Icon:        winOpts.Icon,
			ProgramName: common.ConfigDirName,
		},
	}

	if winOpts.ShowMenu {
		app.Menu = a.developmentMenu()
	}
	if !winOpts.Isolated {
		common.LogWarn("Content isolation disabled; Go bindings are exposed to the page")
		app.Bind = []interface{}{
			&Bridge{version: a.opts.Version, source: a.opts.Source, shutdown: a.RequestShutdown},
		}
		app.EnableDefaultContextMenu = true
	}
	return app, nil
}

// developmentMenu is the application menu shown with a dev server.
func (a *Application) developmentMenu() *menu.Menu {
	appMenu := menu.NewMenu()
	if goruntime.GOOS == "darwin" {
		appMenu.Append(menu.AppMenu())
	}

	fileMenu := appMenu.AddSubmenu("File")
	fileMenu.AddText("Quit", keys.CmdOrCtrl("q"), func(*menu.CallbackData) {
		a.RequestShutdown()
	})

	viewMenu := appMenu.AddSubmenu("View")
	viewMenu.AddText("Reload", keys.CmdOrCtrl("r"), func(*menu.CallbackData) {
		if ctx := a.runtimeContext(); ctx != nil {
			wailsRuntime.WindowReloadApp(ctx)
		}
	})

	appMenu.Append(menu.EditMenu())
	return appMenu
}

func (a *Application) runtimeContext() context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ctx
}

// startup stores the wails context and starts the lifecycle loop.
func (a *Application) startup(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	a.mu.Lock()
	a.ctx = ctx
	a.stopLoop = cancel
	a.loopDone = done
	a.mu.Unlock()

	go func() {
		defer close(done)
		if err := a.ctl.Run(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
			common.LogError("Lifecycle loop stopped: %v", err)
		}
	}()

	common.LogInfo("%s %s started", common.AppName, a.opts.Version)
	a.ctl.Post(lifecycle.EventReady)
}

func (a *Application) domReady(context.Context) {
	a.ctl.Post(lifecycle.EventContentLoaded)
}

// beforeClose intercepts window closes. It returns true to keep the window.
func (a *Application) beforeClose(context.Context) bool {
	if a.ctl.Terminating() {
		return false
	}
	// The loop is gone; nothing can take over the close.
	if !a.ctl.Post(lifecycle.EventWindowClose) {
		return false
	}
	return true
}

// shutdown stops the lifecycle loop and releases the tray and notifier.
func (a *Application) shutdown(context.Context) {
	a.mu.Lock()
	stop, done := a.stopLoop, a.loopDone
	a.mu.Unlock()

	if stop != nil {
		stop()
		select {
		case <-done:
		case <-time.After(loopStopTimeout):
			common.LogWarn("Lifecycle loop did not stop within %s", loopStopTimeout)
		}
	}
	a.trays.Close()
	if err := a.notifier.Close(); err != nil {
		common.LogDebug("Closing notifier: %v", err)
	}
	common.LogInfo("%s stopped", common.AppName)
}

// RequestShutdown asks the lifecycle loop to terminate. It reports false
// when the loop is not running.
func (a *Application) RequestShutdown() bool {
	return a.ctl.Post(lifecycle.EventShutdownRequest)
}

// Quit ends the wails event loop.
func (a *Application) Quit() {
	if ctx := a.runtimeContext(); ctx != nil {
		wailsRuntime.Quit(ctx)
	}
}

// KeepsRunningWithoutWindows follows the macOS convention.
func (a *Application) KeepsRunningWithoutWindows() bool {
	return goruntime.GOOS == "darwin"
}

// parseHexColour parses #rrggbb into an opaque colour.
func parseHexColour(s string) (*options.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return nil, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return &options.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
