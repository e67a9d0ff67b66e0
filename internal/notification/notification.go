//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=../mocks/mock_notifier.go -package=mocks

// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/gen2brain/beeep"
	perrors "github.com/zhubert/murmur/internal/errors"
	"github.com/zhubert/murmur/internal/logger"
)

// AppName is the title of every notification.
const AppName = "murmur"

// previewWidth caps the message body shown in a notification.
const previewWidth = 80

// Notifier delivers a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// notifyFunc matches beeep.Notify.
type notifyFunc func(title, message string, icon any) error

// Desktop sends notifications through the OS notification service.
type Desktop struct {
	notify notifyFunc
}

// NewDesktop returns a Notifier backed by beeep.
func NewDesktop() *Desktop {
	return &Desktop{notify: beeep.Notify}
}

// Notify sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func (d *Desktop) Notify(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)
	// Use empty string for icon - beeep handles platform defaults
	if err := d.notify(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return perrors.E(perrors.Op("notification.Notify"), perrors.KindNotification, err)
	}
	return nil
}

// Noop discards notifications.
type Noop struct{}

// Notify does nothing.
func (Noop) Notify(string, string) error { return nil }

// ReplyReceived announces a message from a contact.
func ReplyReceived(n Notifier, from, text string) error {
	if n == nil {
		return nil
	}
	return n.Notify(AppName, from+": "+ansi.Truncate(text, previewWidth, "…"))
}
