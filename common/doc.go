// Package common provides shared constants, types, and utilities
// used throughout the Money Manager desktop shell.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application metadata, window geometry, tray texts, env names
//   - Errors: sentinel errors such as ErrTrayInit for consistent handling
//   - Logger: structured logging to stdout and a rotated log file
//   - Utils: config and log directory helpers
//
// # Usage
//
//	import "github.com/natscamp/money-manager/common"
//
//	common.LogInfo("Window created (min %dx%d)", common.MinWindowWidth, common.MinWindowHeight)
//
//	if errors.Is(err, common.ErrTrayInit) {
//	    // log and keep the window hidden
//	}
package common
