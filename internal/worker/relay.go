package worker

import (
	"context"
	"log/slog"

	"github.com/minhnc2843/FinVault/internal/events"
	"github.com/minhnc2843/FinVault/internal/notification"
)

// Recorder persists notification events. The notification service
// satisfies it.
type Recorder interface {
	Record(ctx context.Context, event notification.Event) (*notification.Notification, error)
}

// Relay drains notification events from the broker into the store.
type Relay struct {
	recorder Recorder
}

// NewRelay creates a new notification relay
func NewRelay(recorder Recorder) *Relay {
	return &Relay{recorder: recorder}
}

// Handle stores one event. Malformed messages are dropped; a store
// failure is returned so the delivery requeues.
func (r *Relay) Handle(ctx context.Context, msg *events.NotificationMessage) error {
	if msg.UserID == "" || msg.Content == "" {
		slog.WarnContext(ctx, "dropping malformed notification event",
			"user_id", msg.UserID,
			"type", msg.Type)
		return nil
	}

	_, err := r.recorder.Record(ctx, notification.Event{
		UserID:  msg.UserID,
		Type:    msg.Type,
		Content: msg.Content,
	})
	return err
}
