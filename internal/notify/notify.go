// Package notify dispatches operational notifications for account and
// enrollment events. Dispatch failures are never fatal; callers log and
// continue.
package notify

import (
	"context"
	"log"
)

// Notifier publishes a subject/message pair to an external channel.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}

// LogNotifier writes notifications to the process log. It is the default
// backend and the floor guarantee: every mutation leaves at least a log line.
type LogNotifier struct{}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Publish logs the notification.
func (n *LogNotifier) Publish(_ context.Context, subject, message string) error {
	log.Printf("notify: %s: %s", subject, message)
	return nil
}
