// Package ui provides the desktop integration for Money Manager.
// This file contains the desktop notification used for the tray balloon.
package ui

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/natscamp/money-manager/common"
	"github.com/natscamp/money-manager/lifecycle"
)

const (
	notifyDest      = "org.freedesktop.Notifications"
	notifyPath      = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod    = notifyDest + ".Notify"
	notifyTimeoutMs = int32(5000)
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationWarning
	NotificationError
)

// Notification represents a system notification
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Icon    string
}

// icon returns the freedesktop icon name for the notification.
func (n Notification) icon() string {
	if n.Icon != "" {
		return n.Icon
	}
	switch n.Type {
	case NotificationWarning:
		return "dialog-warning"
	case NotificationError:
		return "dialog-error"
	default:
		return "dialog-information"
	}
}

// urgency follows the freedesktop levels: 0 low, 1 normal, 2 critical.
func (n Notification) urgency() byte {
	switch n.Type {
	case NotificationError:
		return 2
	case NotificationWarning:
		return 1
	default:
		return 0
	}
}

// notificationFromBalloon maps a tray balloon onto a desktop notification.
func notificationFromBalloon(b lifecycle.Balloon) Notification {
	n := Notification{Title: b.Title, Message: b.Content}
	switch b.Icon {
	case lifecycle.BalloonWarning:
		n.Type = NotificationWarning
	case lifecycle.BalloonError:
		n.Type = NotificationError
	default:
		n.Type = NotificationInfo
	}
	return n
}

// Notifier shows desktop notifications.
type Notifier interface {
	Notify(n Notification) error
}

// DBusNotifier sends notifications over the session bus.
type DBusNotifier struct {
	mu   sync.Mutex
	conn *dbus.Conn
}

// NewDBusNotifier creates a notifier. The session bus is connected lazily.
func NewDBusNotifier() *DBusNotifier {
	return &DBusNotifier{}
}

func (d *DBusNotifier) bus() (*dbus.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn != nil && d.conn.Connected() {
		return d.conn, nil
	}
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrNotifierUnavailable, err)
	}
	d.conn = conn
	return conn, nil
}

// Notify displays n.
func (d *DBusNotifier) Notify(n Notification) error {
	conn, err := d.bus()
	if err != nil {
		return err
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(n.urgency()),
	}
	call := conn.Object(notifyDest, notifyPath).Call(notifyMethod, 0,
		common.AppName,
		uint32(0),
		n.icon(),
		n.Title,
		n.Message,
		[]string{},
		hints,
		notifyTimeoutMs,
	)
	if call.Err != nil {
		return fmt.Errorf("%w: %w", common.ErrNotifierUnavailable, call.Err)
	}
	return nil
}

// Close releases the bus connection.
func (d *DBusNotifier) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}
