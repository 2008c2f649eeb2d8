// Package lifecycle drives the window and tray of the Money Manager shell.
//
// The shell has one primary window and, while that window is closed to the
// background, one tray icon. Every platform callback is turned into an Event
// and handled by a Controller on a single goroutine, so handlers never run
// concurrently and need no locking.
//
// # States
//
//	Starting             window created, content not painted yet
//	WindowVisible        window shown, no tray
//	WindowHiddenWithTray window hidden, tray offers Open and Exit
//	WindowHiddenNoTray   window hidden, tray creation failed (transient)
//	NoWindow             all windows closed, process kept alive (macOS)
//	Terminated           absorbing
//
// # Driving the controller
//
// GUI code posts events from any goroutine:
//
//	ctl := lifecycle.New(opts, windows, trays, platform)
//	go ctl.Run(ctx)
//	ctl.Post(lifecycle.EventReady)
//
// Tests call Dispatch directly and inspect the Session.
//
// The window and tray themselves are behind the Window, WindowFactory, Tray
// and TrayFactory interfaces; package ui implements them on top of wails and
// the system tray.
package lifecycle
