package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNotificationMessageRoundTrip(t *testing.T) {
	msg := NewNotificationMessage("u-1", "shared_expense_added", "An đã thêm bạn vào khoản chi 'Ăn tối'")
	if msg.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not stamped")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	got, err := NotificationMessageFromJSON(body)
	if err != nil {
		t.Fatalf("NotificationMessageFromJSON() error = %v", err)
	}
	if got.UserID != msg.UserID || got.Type != msg.Type || got.Content != msg.Content {
		t.Errorf("round trip = %+v, want %+v", got, msg)
	}
	if !got.CreatedAt.Equal(msg.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, msg.CreatedAt)
	}
}

func TestNotificationMessageWireNames(t *testing.T) {
	body, err := (&NotificationMessage{
		UserID:    "u-1",
		Type:      "friend_request",
		Content:   "Bình đã gửi lời mời kết bạn",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"user_id", "type", "content", "created_at"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("wire message missing %q: %s", key, body)
		}
	}
}

func TestNotificationMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := NotificationMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}
