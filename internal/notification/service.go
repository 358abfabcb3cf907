package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// listLimit caps how many notifications a single listing returns.
const listLimit = 50

// Service handles notification business logic
type Service struct {
	repo *Repository
}

// NewService creates a new notification service with repository injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Record persists an event as an unread notification
func (s *Service) Record(ctx context.Context, event Event) (*Notification, error) {
	n := &Notification{
		ID:      uuid.NewString(),
		UserID:  event.UserID,
		Type:    event.Type,
		Content: event.Content,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// List retrieves the user's most recent notifications, newest first
func (s *Service) List(ctx context.Context, userID string) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID, listLimit)
}

// MarkRead flags one of the user's notifications as read
func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	affected, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
