package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/minhnc2843/FinVault/internal/events"
	"github.com/minhnc2843/FinVault/internal/notification"
)

type fakeRecorder struct {
	recorded []notification.Event
	err      error
}

func (f *fakeRecorder) Record(ctx context.Context, event notification.Event) (*notification.Notification, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.recorded = append(f.recorded, event)
	return &notification.Notification{ID: "n-1", UserID: event.UserID}, nil
}

func TestRelayStoresEvent(t *testing.T) {
	recorder := &fakeRecorder{}
	relay := NewRelay(recorder)

	msg := events.NewNotificationMessage("u-1", notification.TypeFriendRequest, "Bình đã gửi lời mời kết bạn")
	if err := relay.Handle(context.Background(), msg); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if len(recorder.recorded) != 1 {
		t.Fatalf("recorded = %d events, want 1", len(recorder.recorded))
	}
	got := recorder.recorded[0]
	if got.UserID != "u-1" || got.Type != notification.TypeFriendRequest || got.Content != msg.Content {
		t.Errorf("recorded event = %+v", got)
	}
}

func TestRelayDropsMalformedEvent(t *testing.T) {
	recorder := &fakeRecorder{}
	relay := NewRelay(recorder)

	// Missing user: drop without requeueing.
	if err := relay.Handle(context.Background(), &events.NotificationMessage{Content: "x"}); err != nil {
		t.Fatalf("Handle() error = %v, want nil for malformed message", err)
	}
	if len(recorder.recorded) != 0 {
		t.Errorf("malformed message was recorded")
	}
}

func TestRelayPropagatesStoreFailure(t *testing.T) {
	storeErr := errors.New("db down")
	relay := NewRelay(&fakeRecorder{err: storeErr})

	msg := events.NewNotificationMessage("u-1", notification.TypeExpenseAdded, "nội dung")
	if err := relay.Handle(context.Background(), msg); !errors.Is(err, storeErr) {
		t.Fatalf("Handle() error = %v, want %v", err, storeErr)
	}
}
