package friendship

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/minhnc2843/FinVault/internal/notification"
	"github.com/minhnc2843/FinVault/internal/user"
)

// Common errors
var (
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfFriendship     = errors.New("cannot send a friend request to yourself")
	ErrAlreadyExists      = errors.New("friendship already exists")
	ErrNotAddressee       = errors.New("only the addressee may accept a friend request")
)

// Store persists friendships. The repository satisfies it.
type Store interface {
	Create(ctx context.Context, f *Friendship) error
	GetByID(ctx context.Context, id string) (*Friendship, error)
	GetBetween(ctx context.Context, userA, userB string) (*Friendship, error)
	ListForUser(ctx context.Context, userID string) ([]*Friendship, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// Directory resolves identities. The user service satisfies it.
type Directory interface {
	ResolveEmail(ctx context.Context, email string) (*user.Identity, error)
	ResolveID(ctx context.Context, id string) (*user.Identity, error)
}

// Service handles friendship business logic
type Service struct {
	store     Store
	directory Directory
	notifier  notification.Notifier
}

// NewService creates a new friendship service with dependencies injected
func NewService(store Store, directory Directory, notifier notification.Notifier) *Service {
	return &Service{store: store, directory: directory, notifier: notifier}
}

// List retrieves the user's friendships in both directions, any status
func (s *Service) List(ctx context.Context, userID string) ([]*Friendship, error) {
	return s.store.ListForUser(ctx, userID)
}

// Request sends a friend request to the account registered under the
// given email and notifies the addressee
func (s *Service) Request(ctx context.Context, requesterID, friendEmail string) (*Friendship, error) {
	friend, err := s.directory.ResolveEmail(ctx, friendEmail)
	if err != nil {
		return nil, err
	}
	if friend == nil {
		return nil, ErrUserNotFound
	}
	if friend.ID == requesterID {
		return nil, ErrSelfFriendship
	}

	existing, err := s.store.GetBetween(ctx, requesterID, friend.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	f := &Friendship{
		ID:          uuid.NewString(),
		UserID:      requesterID,
		FriendID:    friend.ID,
		FriendEmail: friend.Email,
		FriendName:  friend.FullName,
		Status:      StatusPending,
	}
	if err := s.store.Create(ctx, f); err != nil {
		return nil, err
	}

	if requester, err := s.directory.ResolveID(ctx, requesterID); err == nil && requester != nil {
		s.notifier.Notify(ctx, notification.NewFriendRequest(friend.ID, requester.FullName))
	}

	return f, nil
}

// Accept lets the addressee accept a pending request. Accepting an
// already-accepted friendship is a no-op.
func (s *Service) Accept(ctx context.Context, id, callerID string) (*Friendship, error) {
	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFriendshipNotFound
	}
	if f.FriendID != callerID {
		return nil, ErrNotAddressee
	}

	if f.Status != StatusAccepted {
		if err := s.store.UpdateStatus(ctx, id, StatusAccepted); err != nil {
			return nil, err
		}
		f.Status = StatusAccepted
	}
	return f, nil
}
