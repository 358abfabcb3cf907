package expense

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/minhnc2843/FinVault/internal/expense/split"
	"github.com/minhnc2843/FinVault/internal/money"
	"github.com/minhnc2843/FinVault/internal/notification"
	"github.com/minhnc2843/FinVault/internal/user"
)

// fakeStore keeps aggregates in memory and counts writes.
type fakeStore struct {
	expenses map[string]*SharedExpense
	creates  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{expenses: make(map[string]*SharedExpense)}
}

func (f *fakeStore) Create(ctx context.Context, e *SharedExpense) error {
	f.creates++
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*SharedExpense, error) {
	return f.expenses[id], nil
}

func (f *fakeStore) ListForParticipant(ctx context.Context, userID string) ([]*SharedExpense, error) {
	var out []*SharedExpense
	for _, e := range f.expenses {
		if e.Share(userID) != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) ConfirmShare(ctx context.Context, expenseID, userID string) (bool, error) {
	e, ok := f.expenses[expenseID]
	if !ok {
		return false, nil
	}
	share := e.Share(userID)
	if share == nil || share.Confirmed {
		return false, nil
	}
	share.Paid = share.Owed
	share.Confirmed = true
	return true, nil
}

// fakeDirectory resolves identities from a fixed roster.
type fakeDirectory struct {
	byEmail map[string]*user.Identity
}

func newFakeDirectory(identities ...*user.Identity) *fakeDirectory {
	d := &fakeDirectory{byEmail: make(map[string]*user.Identity)}
	for _, identity := range identities {
		d.byEmail[identity.Email] = identity
	}
	return d
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

// fakeNotifier records delivered events.
type fakeNotifier struct {
	events []notification.Event
}

func (n *fakeNotifier) Notify(ctx context.Context, event notification.Event) {
	n.events = append(n.events, event)
}

func testService() (*Service, *fakeStore, *fakeNotifier) {
	store := newFakeStore()
	directory := newFakeDirectory(
		&user.Identity{ID: "u-an", Email: "an@example.com", FullName: "Nguyễn Văn An"},
		&user.Identity{ID: "u-binh", Email: "binh@example.com", FullName: "Trần Bình"},
		&user.Identity{ID: "u-chi", Email: "chi@example.com", FullName: "Lê Chi"},
	)
	notifier := &fakeNotifier{}
	return NewService(store, directory, notifier), store, notifier
}

func TestCreateEqualSplitAppendsCreatorLast(t *testing.T) {
	svc, store, notifier := testService()

	e, err := svc.Create(context.Background(), "u-an", &CreateExpenseRequest{
		Title:             "Ăn tối",
		TotalAmount:       300,
		Currency:          "VND",
		ParticipantEmails: []string{"binh@example.com", "chi@example.com"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if store.creates != 1 {
		t.Fatalf("store writes = %d, want 1", store.creates)
	}
	if e.Status != StatusActive {
		t.Errorf("Status = %q, want %q", e.Status, StatusActive)
	}
	if e.SplitType != split.TypeEqual {
		t.Errorf("SplitType = %q, want %q", e.SplitType, split.TypeEqual)
	}

	wantOrder := []string{"u-binh", "u-chi", "u-an"}
	if len(e.Shares) != len(wantOrder) {
		t.Fatalf("shares = %d, want %d", len(e.Shares), len(wantOrder))
	}
	for i, share := range e.Shares {
		if share.UserID != wantOrder[i] {
			t.Errorf("share[%d].UserID = %q, want %q", i, share.UserID, wantOrder[i])
		}
		if share.Position != i {
			t.Errorf("share[%d].Position = %d, want %d", i, share.Position, i)
		}
		if share.Owed != 100 {
			t.Errorf("share[%d].Owed = %d, want 100", i, share.Owed)
		}
		if share.Paid != 0 || share.Confirmed {
			t.Errorf("share[%d] = paid %d confirmed %v, want fresh share", i, share.Paid, share.Confirmed)
		}
	}

	// Everyone but the creator hears about it.
	if len(notifier.events) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifier.events))
	}
	for _, event := range notifier.events {
		if event.UserID == "u-an" {
			t.Errorf("creator received a notification")
		}
		if event.Type != notification.TypeExpenseAdded {
			t.Errorf("event type = %q, want %q", event.Type, notification.TypeExpenseAdded)
		}
		if want := "Nguyễn Văn An đã thêm bạn vào khoản chi 'Ăn tối'"; event.Content != want {
			t.Errorf("event content = %q, want %q", event.Content, want)
		}
	}
}

func TestCreateDistributesRemainderInOrder(t *testing.T) {
	svc, _, _ := testService()

	e, err := svc.Create(context.Background(), "u-an", &CreateExpenseRequest{
		Title:             "Cà phê",
		TotalAmount:       100,
		Currency:          "VND",
		ParticipantEmails: []string{"binh@example.com", "chi@example.com"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := []money.Amount{34, 33, 33}
	var sum money.Amount
	for i, share := range e.Shares {
		if share.Owed != want[i] {
			t.Errorf("share[%d].Owed = %d, want %d", i, share.Owed, want[i])
		}
		sum += share.Owed
	}
	if sum != e.Total {
		t.Errorf("sum of shares = %d, want total %d", sum, e.Total)
	}
}

func TestCreateUnresolvedEmailPersistsNothing(t *testing.T) {
	svc, store, notifier := testService()

	_, err := svc.Create(context.Background(), "u-an", &CreateExpenseRequest{
		Title:             "Du lịch",
		TotalAmount:       900,
		Currency:          "VND",
		ParticipantEmails: []string{"binh@example.com", "ghost@example.com", "chi@example.com"},
	})

	var unresolved *UnresolvedParticipantError
	if !errors.As(err, &unresolved) {
		t.Fatalf("Create() error = %v, want UnresolvedParticipantError", err)
	}
	if unresolved.Email != "ghost@example.com" {
		t.Errorf("unresolved email = %q, want ghost@example.com", unresolved.Email)
	}
	if store.creates != 0 || len(store.expenses) != 0 {
		t.Errorf("store writes = %d (expenses %d), want none", store.creates, len(store.expenses))
	}
	if len(notifier.events) != 0 {
		t.Errorf("notifications = %d, want none", len(notifier.events))
	}
}

func TestCreateKeepsListedCreatorPosition(t *testing.T) {
	svc, _, notifier := testService()

	e, err := svc.Create(context.Background(), "u-an", &CreateExpenseRequest{
		Title:             "Taxi",
		TotalAmount:       50,
		Currency:          "VND",
		ParticipantEmails: []string{"an@example.com", "binh@example.com"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(e.Shares) != 2 {
		t.Fatalf("shares = %d, want 2 (creator must not be appended twice)", len(e.Shares))
	}
	if e.Shares[0].UserID != "u-an" || e.Shares[1].UserID != "u-binh" {
		t.Errorf("share order = [%s %s], want [u-an u-binh]", e.Shares[0].UserID, e.Shares[1].UserID)
	}
	if len(notifier.events) != 1 || notifier.events[0].UserID != "u-binh" {
		t.Errorf("notifications = %+v, want exactly one for u-binh", notifier.events)
	}
}

func TestCreateRejectsDuplicateEmails(t *testing.T) {
	svc, store, _ := testService()

	_, err := svc.Create(context.Background(), "u-an", &CreateExpenseRequest{
		Title:             "Trùng lặp",
		TotalAmount:       80,
		Currency:          "VND",
		ParticipantEmails: []string{"binh@example.com", "binh@example.com"},
	})
	if !errors.Is(err, split.ErrDuplicateParticipant) {
		t.Fatalf("Create() error = %v, want ErrDuplicateParticipant", err)
	}
	if store.creates != 0 {
		t.Errorf("store writes = %d, want none", store.creates)
	}
}

func TestCreateCustomSplit(t *testing.T) {
	svc, _, _ := testService()

	e, err := svc.Create(context.Background(), "u-an", &CreateExpenseRequest{
		Title:             "Khách sạn",
		TotalAmount:       100,
		Currency:          "USD",
		SplitType:         "custom",
		ParticipantEmails: []string{"binh@example.com", "chi@example.com"},
		CustomAmounts: map[string]float64{
			"binh@example.com": 60,
			"chi@example.com":  25,
			"an@example.com":   15,
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	want := map[string]money.Amount{"u-binh": 6000, "u-chi": 2500, "u-an": 1500}
	for _, share := range e.Shares {
		if share.Owed != want[share.UserID] {
			t.Errorf("share %s owed = %d, want %d", share.UserID, share.Owed, want[share.UserID])
		}
	}
}

func TestCreateCustomSplitMismatch(t *testing.T) {
	svc, store, _ := testService()

	tests := []struct {
		name    string
		amounts map[string]float64
	}{
		{
			name: "sum one cent short",
			amounts: map[string]float64{
				"binh@example.com": 60,
				"chi@example.com":  24.99,
				"an@example.com":   15,
			},
		},
		{
			name: "amount keyed by outsider email",
			amounts: map[string]float64{
				"binh@example.com":  60,
				"ghost@example.com": 40,
			},
		},
		{
			name: "negative entry",
			amounts: map[string]float64{
				"binh@example.com": 140,
				"chi@example.com":  -40,
				"an@example.com":   0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "u-an", &CreateExpenseRequest{
				Title:             "Lệch tiền",
				TotalAmount:       100,
				Currency:          "USD",
				SplitType:         "custom",
				ParticipantEmails: []string{"binh@example.com", "chi@example.com"},
				CustomAmounts:     tt.amounts,
			})
			if !errors.Is(err, split.ErrAmountMismatch) {
				t.Fatalf("Create() error = %v, want ErrAmountMismatch", err)
			}
		})
	}

	if store.creates != 0 {
		t.Errorf("store writes = %d, want none", store.creates)
	}
}

func TestConfirmShareIsIdempotent(t *testing.T) {
	svc, _, _ := testService()
	ctx := context.Background()

	e, err := svc.Create(ctx, "u-an", &CreateExpenseRequest{
		Title:             "Ăn trưa",
		TotalAmount:       300,
		Currency:          "VND",
		ParticipantEmails: []string{"binh@example.com", "chi@example.com"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	first, err := svc.ConfirmShare(ctx, e.ID, "u-binh")
	if err != nil {
		t.Fatalf("ConfirmShare() error = %v", err)
	}
	if first.Paid != first.Owed || !first.Confirmed {
		t.Fatalf("confirmed share = paid %d owed %d confirmed %v", first.Paid, first.Owed, first.Confirmed)
	}

	second, err := svc.ConfirmShare(ctx, e.ID, "u-binh")
	if err != nil {
		t.Fatalf("second ConfirmShare() error = %v", err)
	}
	if second.Paid != first.Paid || second.Confirmed != first.Confirmed {
		t.Errorf("second confirmation changed the share: %+v vs %+v", second, first)
	}

	// The other shares stay untouched.
	got, err := svc.Get(ctx, e.ID, "u-an")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	for _, share := range got.Shares {
		if share.UserID == "u-binh" {
			continue
		}
		if share.Paid != 0 || share.Confirmed {
			t.Errorf("share %s changed: paid %d confirmed %v", share.UserID, share.Paid, share.Confirmed)
		}
	}
}

func TestConfirmShareAuthorization(t *testing.T) {
	svc, _, _ := testService()
	ctx := context.Background()

	e, err := svc.Create(ctx, "u-an", &CreateExpenseRequest{
		Title:             "Vé xem phim",
		TotalAmount:       200,
		Currency:          "VND",
		ParticipantEmails: []string{"binh@example.com"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.ConfirmShare(ctx, e.ID, "u-chi"); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("ConfirmShare() error = %v, want ErrNotParticipant", err)
	}

	got, err := svc.Get(ctx, e.ID, "u-an")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	for _, share := range got.Shares {
		if share.Paid != 0 || share.Confirmed {
			t.Errorf("share %s changed by unauthorized call: paid %d confirmed %v", share.UserID, share.Paid, share.Confirmed)
		}
	}
}

func TestConfirmShareMissingExpense(t *testing.T) {
	svc, _, _ := testService()

	if _, err := svc.ConfirmShare(context.Background(), "no-such-id", "u-an"); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("ConfirmShare() error = %v, want ErrExpenseNotFound", err)
	}
}

func TestGetRequiresParticipation(t *testing.T) {
	svc, _, _ := testService()
	ctx := context.Background()

	e, err := svc.Create(ctx, "u-an", &CreateExpenseRequest{
		Title:             "Tiền nhà",
		TotalAmount:       1200,
		Currency:          "VND",
		ParticipantEmails: []string{"binh@example.com"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := svc.Get(ctx, e.ID, "u-chi"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("Get() by outsider error = %v, want ErrNotParticipant", err)
	}
	if _, err := svc.Get(ctx, e.ID, "u-binh"); err != nil {
		t.Errorf("Get() by participant error = %v", err)
	}
	if _, err := svc.Get(ctx, "no-such-id", "u-an"); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("Get() missing expense error = %v, want ErrExpenseNotFound", err)
	}
}
