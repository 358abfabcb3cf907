package events

import (
	"encoding/json"
	"time"
)

// NotificationMessage is the wire form of one notification event.
type NotificationMessage struct {
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotificationMessage creates a message stamped with the current time
func NewNotificationMessage(userID, kind, content string) *NotificationMessage {
	return &NotificationMessage{
		UserID:    userID,
		Type:      kind,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *NotificationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationMessageFromJSON creates a message from JSON bytes
func NotificationMessageFromJSON(data []byte) (*NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
