// Package push abstracts the delivery channel for user notifications.
// The dispatch job hands stored notifications to a Sender; swapping in a
// real provider (FCM, APNs, email) only requires a new implementation.
package push

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"harvest-admin.backend/pkg/logger"
)

// Message is one push payload.
type Message struct {
	UserID uuid.UUID
	Title  string
	Body   string
	Type   string
	Data   map[string]string
}

// Sender delivers a message to a user's devices.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// LogSender writes deliveries to the log instead of an external provider.
// It is the default sender in development and test environments.
type LogSender struct{}

// NewLogSender creates a LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the message and reports success.
func (s *LogSender) Send(ctx context.Context, msg *Message) error {
	logger.Info(ctx, "push notification delivered",
		zap.String("user_id", msg.UserID.String()),
		zap.String("type", msg.Type),
		zap.String("title", msg.Title),
	)
	return nil
}
