// Package common provides shared constants, types, and utilities
// used across the Money Manager desktop shell.
package common

import "errors"

// Sentinel errors. These can be checked with errors.Is().
var (
	// ErrTrayInit reports that the tray icon or its menu could not be built.
	// It is logged and suppressed; it never aborts hiding the window.
	ErrTrayInit = errors.New("tray initialization failed")
	// ErrNoIcon is returned when an icon resource is empty.
	ErrNoIcon = errors.New("icon resource missing")

	// Window errors.
	ErrWindowCreate = errors.New("failed to create window")
	ErrContentLoad  = errors.New("failed to load content")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
	ErrInvalidURL = errors.New("invalid dev server url")

	// Notification errors.
	ErrNotifierUnavailable = errors.New("notification service unavailable")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
