// Package common provides shared constants, types, and utilities
// used across the Money Manager desktop shell.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.natscamp.moneymanager"
	// AppName is the display name of the application.
	AppName = "Money Manager"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "money-manager"
	// Copyright is shown in the About box and mirrored in wails.json.
	Copyright = "Copyright © 2021 Natscamp Productions"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "money-manager.log"
)

// Environment variables read at startup.
const (
	// EnvDevServerURL points the window at a running frontend dev server.
	EnvDevServerURL = "MONEY_MANAGER_DEV_SERVER_URL"
	// EnvWebpackDevServerURL is the name the frontend tooling exports.
	EnvWebpackDevServerURL = "WEBPACK_DEV_SERVER_URL"
	// EnvExposeBindings disables content isolation. Development only.
	EnvExposeBindings = "MONEY_MANAGER_EXPOSE_BINDINGS"
)

// Window constants.
const (
	// MinWindowWidth is the minimum main window width.
	MinWindowWidth = 1080
	// MinWindowHeight is the minimum main window height.
	MinWindowHeight = 720
	// WindowBackground is the color painted before content arrives.
	WindowBackground = "#2e2c29"
	// IndexDocument is the packaged entry document.
	IndexDocument = "index.html"
)

// Tray constants.
const (
	// TrayIconSize is the size of the generated tray icon.
	TrayIconSize = 32
	TrayTooltip  = AppName
	// TrayBalloonContent is shown once, the first time the app hides to the tray.
	TrayBalloonContent = "App minimized to tray"
)

// GracefulExitMessage is the line a supervising process writes on stdin
// to request shutdown where signals are unavailable.
const GracefulExitMessage = "graceful-exit"
