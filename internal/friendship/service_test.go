package friendship

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/minhnc2843/FinVault/internal/notification"
	"github.com/minhnc2843/FinVault/internal/user"
)

type fakeStore struct {
	byID map[string]*Friendship
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[string]*Friendship)}
}

func (f *fakeStore) Create(ctx context.Context, fr *Friendship) error {
	f.byID[fr.ID] = fr
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*Friendship, error) {
	return f.byID[id], nil
}

func (f *fakeStore) GetBetween(ctx context.Context, userA, userB string) (*Friendship, error) {
	for _, fr := range f.byID {
		if (fr.UserID == userA && fr.FriendID == userB) || (fr.UserID == userB && fr.FriendID == userA) {
			return fr, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListForUser(ctx context.Context, userID string) ([]*Friendship, error) {
	var out []*Friendship
	for _, fr := range f.byID {
		if fr.UserID == userID || fr.FriendID == userID {
			out = append(out, fr)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, id, status string) error {
	if fr, ok := f.byID[id]; ok {
		fr.Status = status
	}
	return nil
}

type fakeDirectory struct {
	byEmail map[string]*user.Identity
}

func (d *fakeDirectory) ResolveEmail(ctx context.Context, email string) (*user.Identity, error) {
	return d.byEmail[strings.ToLower(strings.TrimSpace(email))], nil
}

func (d *fakeDirectory) ResolveID(ctx context.Context, id string) (*user.Identity, error) {
	for _, identity := range d.byEmail {
		if identity.ID == id {
			return identity, nil
		}
	}
	return nil, nil
}

type fakeNotifier struct {
	events []notification.Event
}

func (n *fakeNotifier) Notify(ctx context.Context, event notification.Event) {
	n.events = append(n.events, event)
}

func testService() (*Service, *fakeStore, *fakeNotifier) {
	store := newFakeStore()
	directory := &fakeDirectory{byEmail: map[string]*user.Identity{
		"an@example.com":   {ID: "u-an", Email: "an@example.com", FullName: "Nguyễn Văn An"},
		"binh@example.com": {ID: "u-binh", Email: "binh@example.com", FullName: "Trần Bình"},
	}}
	notifier := &fakeNotifier{}
	return NewService(store, directory, notifier), store, notifier
}

func TestRequestCreatesPendingAndNotifies(t *testing.T) {
	svc, _, notifier := testService()

	f, err := svc.Request(context.Background(), "u-an", "binh@example.com")
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	if f.Status != StatusPending {
		t.Errorf("Status = %q, want %q", f.Status, StatusPending)
	}
	if f.UserID != "u-an" || f.FriendID != "u-binh" {
		t.Errorf("relation = %s→%s, want u-an→u-binh", f.UserID, f.FriendID)
	}
	if f.FriendEmail != "binh@example.com" || f.FriendName != "Trần Bình" {
		t.Errorf("denormalized friend = %q %q", f.FriendEmail, f.FriendName)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifier.events))
	}
	event := notifier.events[0]
	if event.UserID != "u-binh" || event.Type != notification.TypeFriendRequest {
		t.Errorf("event = %+v, want friend_request for u-binh", event)
	}
	if want := "Nguyễn Văn An đã gửi lời mời kết bạn"; event.Content != want {
		t.Errorf("event content = %q, want %q", event.Content, want)
	}
}

func TestRequestValidation(t *testing.T) {
	svc, _, _ := testService()
	ctx := context.Background()

	if _, err := svc.Request(ctx, "u-an", "ghost@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown email error = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.Request(ctx, "u-an", "an@example.com"); !errors.Is(err, ErrSelfFriendship) {
		t.Errorf("self request error = %v, want ErrSelfFriendship", err)
	}
}

func TestRequestRejectsExistingInEitherDirection(t *testing.T) {
	svc, _, _ := testService()
	ctx := context.Background()

	if _, err := svc.Request(ctx, "u-binh", "an@example.com"); err != nil {
		t.Fatalf("seed Request() error = %v", err)
	}

	if _, err := svc.Request(ctx, "u-an", "binh@example.com"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("reverse Request() error = %v, want ErrAlreadyExists", err)
	}
}

func TestAccept(t *testing.T) {
	svc, _, _ := testService()
	ctx := context.Background()

	f, err := svc.Request(ctx, "u-an", "binh@example.com")
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}

	// The requester cannot accept their own request.
	if _, err := svc.Accept(ctx, f.ID, "u-an"); !errors.Is(err, ErrNotAddressee) {
		t.Fatalf("requester Accept() error = %v, want ErrNotAddressee", err)
	}

	accepted, err := svc.Accept(ctx, f.ID, "u-binh")
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if accepted.Status != StatusAccepted {
		t.Errorf("Status = %q, want %q", accepted.Status, StatusAccepted)
	}

	// Accepting again stays accepted and does not error.
	again, err := svc.Accept(ctx, f.ID, "u-binh")
	if err != nil {
		t.Fatalf("second Accept() error = %v", err)
	}
	if again.Status != StatusAccepted {
		t.Errorf("second Accept() status = %q", again.Status)
	}

	if _, err := svc.Accept(ctx, "missing", "u-binh"); !errors.Is(err, ErrFriendshipNotFound) {
		t.Errorf("missing Accept() error = %v, want ErrFriendshipNotFound", err)
	}
}
