// Package ui provides the desktop integration for Money Manager.
// This file routes wails framework logs into the application logger.
package ui

import (
	"os"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"github.com/natscamp/money-manager/common"
)

// wailsLogger implements logger.Logger on top of common.AppLogger.
type wailsLogger struct {
	log  *common.AppLogger
	exit func(code int)
}

var _ logger.Logger = (*wailsLogger)(nil)

func newWailsLogger(log *common.AppLogger) *wailsLogger {
	return &wailsLogger{log: log, exit: os.Exit}
}

func (l *wailsLogger) Print(message string)   { l.log.Info("%s", message) }
func (l *wailsLogger) Trace(message string)   { l.log.Debug("%s", message) }
func (l *wailsLogger) Debug(message string)   { l.log.Debug("%s", message) }
func (l *wailsLogger) Info(message string)    { l.log.Info("%s", message) }
func (l *wailsLogger) Warning(message string) { l.log.Warn("%s", message) }
func (l *wailsLogger) Error(message string)   { l.log.Error("%s", message) }

// Fatal logs and exits, as the wails default logger does.
func (l *wailsLogger) Fatal(message string) {
	l.log.Error("%s", message)
	_ = l.log.Close()
	l.exit(1)
}

// wailsLogLevel maps the application level onto the framework's.
func wailsLogLevel(level common.LogLevel) logger.LogLevel {
	switch level {
	case common.LevelDebug:
		return logger.DEBUG
	case common.LevelWarn:
		return logger.WARNING
	case common.LevelError:
		return logger.ERROR
	default:
		return logger.INFO
	}
}
