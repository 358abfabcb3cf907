package notification

import (
	"context"
	"fmt"
	"log/slog"
)

// Event is a notification to be delivered to one user. Content is
// rendered at the source so transports only have to carry it.
type Event struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// NewExpenseAdded builds the event sent to each participant added to a
// shared expense by someone else.
func NewExpenseAdded(recipientID, actorName, expenseTitle string) Event {
	return Event{
		UserID:  recipientID,
		Type:    TypeExpenseAdded,
		Content: fmt.Sprintf("%s đã thêm bạn vào khoản chi '%s'", actorName, expenseTitle),
	}
}

// NewFriendRequest builds the event sent to the addressee of a friend
// request.
func NewFriendRequest(recipientID, actorName string) Event {
	return Event{
		UserID:  recipientID,
		Type:    TypeFriendRequest,
		Content: fmt.Sprintf("%s đã gửi lời mời kết bạn", actorName),
	}
}

// Notifier delivers events to user inboxes. Delivery is best-effort:
// implementations log failures and never surface them to the caller.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// StoreNotifier writes events straight to the notification store. It is
// the Notifier used when no message broker is configured.
type StoreNotifier struct {
	service *Service
}

// NewStoreNotifier creates a Notifier backed directly by the store
func NewStoreNotifier(service *Service) *StoreNotifier {
	return &StoreNotifier{service: service}
}

// Notify persists the event as an unread notification
func (n *StoreNotifier) Notify(ctx context.Context, event Event) {
	if _, err := n.service.Record(ctx, event); err != nil {
		slog.Error("failed to deliver notification",
			"user_id", event.UserID,
			"type", event.Type,
			"error", err)
	}
}
