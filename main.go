// Package main provides the entry point for the Money Manager desktop shell.
// Money Manager is a personal finance application; this binary hosts its web
// frontend in a native window and keeps it reachable from the system tray
// after the window is closed.
//
// Usage:
//
//	money-manager [options]
//
// Environment:
//
//	MONEY_MANAGER_DEV_SERVER_URL (or WEBPACK_DEV_SERVER_URL) loads the
//	frontend from a running dev server instead of the packaged build.
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/natscamp/money-manager/common"
	"github.com/natscamp/money-manager/config"
	"github.com/natscamp/money-manager/content"
	"github.com/natscamp/money-manager/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := newCLIApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCLIApp() *cli.App {
	app := cli.NewApp()
	app.Name = common.ConfigDirName
	app.Usage = common.AppName + " desktop shell"
	app.Version = appVersion
	app.Copyright = common.Copyright
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable verbose logging",
		},
		&cli.BoolFlag{
			Name:  "no-log-file",
			Usage: "log to stdout only",
		},
		&cli.StringFlag{
			Name:    "dev-server-url",
			Usage:   "load the frontend from a dev server instead of the packaged build",
			EnvVars: []string{common.EnvDevServerURL, common.EnvWebpackDevServerURL},
		},
		&cli.BoolFlag{
			Name:    "expose-bindings",
			Usage:   "disable content isolation and bind Go methods into the page (development only)",
			EnvVars: []string{common.EnvExposeBindings},
		},
	}
	app.Action = runApp
	return app
}

func runApp(c *cli.Context) error {
	// Initialize logger with structured logging and file output
	logLevel := common.LevelInfo
	if c.Bool("verbose") {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:      logLevel,
		EnableFile: !c.Bool("no-log-file"),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	common.LogInfo("Starting %s %s (build %s, commit %s)", common.AppName, appVersion, buildTime, commitSHA)

	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	source, err := content.Resolve(c.String("dev-server-url"))
	if err != nil {
		return err
	}

	dist, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrContentLoad, err)
	}

	app := ui.NewApplication(ui.AppOptions{
		Config:         cfg,
		Source:         source,
		Assets:         dist,
		Version:        appVersion,
		ExposeBindings: c.Bool("expose-bindings"),
		LogLevel:       logLevel,
	})

	setupSignalHandler(app.RequestShutdown)
	if source.IsDevelopment() && stdinGracefulExit {
		go watchGracefulExit(os.Stdin, app.RequestShutdown)
	}

	return app.Run()
}

// setupSignalHandler turns SIGINT/SIGTERM into a lifecycle shutdown request.
// A request posted before the loop starts is queued for it. Once the loop
// has stopped nothing handles the request, so the process exits directly.
func setupSignalHandler(shutdown func() bool) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			common.LogInfo("Received signal %v, initiating graceful shutdown...", sig)
			if !shutdown() {
				common.LogWarn("Lifecycle loop not running; exiting")
				common.CloseLogger()
				os.Exit(1)
			}
		}
	}()
}
