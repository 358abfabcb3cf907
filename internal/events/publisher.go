package events

import (
	"context"
	"log/slog"

	"github.com/minhnc2843/FinVault/internal/notification"
)

// Publisher forwards notification events to the broker instead of
// writing them inline. It satisfies the notification Notifier port;
// cmd/worker drains the queue into the store.
type Publisher struct {
	client *Client
}

// NewPublisher creates a broker-backed Notifier
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// Notify publishes the event. Failures are logged, never surfaced.
func (p *Publisher) Notify(ctx context.Context, event notification.Event) {
	msg := NewNotificationMessage(event.UserID, event.Type, event.Content)
	if err := p.client.Publish(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish notification event",
			"user_id", event.UserID,
			"type", event.Type,
			"error", err)
	}
}
