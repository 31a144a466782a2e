package router

import (
	"context"
	"log/slog"

	"github.com/upfleet/synckit/pkg/api"
)

//go:generate moq -out notify_mock.go . NotificationSink

// NotificationSink delivers user-facing notifications produced by the
// engine. The host application plugs in its own delivery channel.
type NotificationSink interface {
	// Notify delivers one notification to its user.
	Notify(ctx context.Context, n *api.Notification) error
}

// LogSink writes notifications to the log. It is the fallback sink when
// the host doesn't provide one.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink on the given logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Notify implements NotificationSink.
func (s *LogSink) Notify(_ context.Context, n *api.Notification) error {
	s.logger.Info("notification",
		"type", n.Type,
		"user_id", n.UserID,
		"title", n.Title,
		"message", n.Message)
	return nil
}
