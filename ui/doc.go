// Package ui provides the desktop integration for Money Manager.
//
// The window, the webview and the content scheme come from wails v2. The
// tray icon uses github.com/energye/systray and the first-run balloon is a
// freedesktop notification sent over D-Bus.
//
// # Architecture
//
//   - Application: wails lifecycle hooks posting events to the
//     lifecycle.Controller, and the controller's Platform
//   - WindowFactory: handles on the single wails window
//   - TrayFactory: tray registrations, one per lifecycle.TrayIcon
//   - DBusNotifier: desktop notifications
//
// # Thread Safety
//
// wails calls its hooks on its own goroutines. Hooks never touch lifecycle
// state; they call Controller.Post and the controller applies the event on
// its loop goroutine. The only value a hook reads directly is
// Controller.Terminating.
//
// # File Organization
//
//   - app.go: Application lifecycle and wails options
//   - window.go: main window adapter
//   - tray.go: system tray icon
//   - icons.go: icon generation for window and tray
//   - notifications.go: desktop notification integration
//   - logger.go: wails log bridge
//   - bridge.go: methods bound to the page when isolation is off
package ui
