package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/minhnc2843/FinVault/internal/expense"
	"github.com/minhnc2843/FinVault/internal/money"
)

type fakeExpenses struct {
	byID map[string]*expense.SharedExpense
}

func newFakeExpenses(expenses ...*expense.SharedExpense) *fakeExpenses {
	f := &fakeExpenses{byID: make(map[string]*expense.SharedExpense)}
	for _, e := range expenses {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeExpenses) GetByID(ctx context.Context, id string) (*expense.SharedExpense, error) {
	return f.byID[id], nil
}

func (f *fakeExpenses) ListForParticipant(ctx context.Context, userID string) ([]*expense.SharedExpense, error) {
	var out []*expense.SharedExpense
	for _, e := range f.byID {
		if e.Share(userID) != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func share(userID, name string, owed, paid money.Amount) *expense.ParticipantShare {
	return &expense.ParticipantShare{
		UserID:    userID,
		Email:     userID + "@example.com",
		FullName:  name,
		Owed:      owed,
		Paid:      paid,
		Confirmed: paid >= owed && owed > 0,
	}
}

func sharedExpense(id, creatorID, currency string, total money.Amount, shares ...*expense.ParticipantShare) *expense.SharedExpense {
	for i, s := range shares {
		s.Position = i
	}
	return &expense.SharedExpense{
		ID:        id,
		CreatorID: creatorID,
		Title:     id,
		Total:     total,
		Currency:  currency,
		SplitType: "equal",
		Status:    expense.StatusActive,
		Shares:    shares,
	}
}

func TestForExpenseAfterOneConfirmation(t *testing.T) {
	// 300 split three ways, only the first participant confirmed.
	svc := NewService(newFakeExpenses(sharedExpense("e1", "u-a", "VND", 300,
		share("u-a", "An", 100, 100),
		share("u-b", "Bình", 100, 0),
		share("u-c", "Chi", 100, 0),
	)))

	report, err := svc.ForExpense(context.Background(), "e1")
	if err != nil {
		t.Fatalf("ForExpense() error = %v", err)
	}
	if report.Currency != "VND" {
		t.Errorf("Currency = %q, want VND", report.Currency)
	}

	want := []Line{
		{UserID: "u-a", UserName: "An", Owed: 100, Paid: 100, Balance: 0, Status: StatusSettled},
		{UserID: "u-b", UserName: "Bình", Owed: 100, Paid: 0, Balance: -100, Status: StatusOwes},
		{UserID: "u-c", UserName: "Chi", Owed: 100, Paid: 0, Balance: -100, Status: StatusOwes},
	}
	if len(report.Lines) != len(want) {
		t.Fatalf("lines = %d, want %d", len(report.Lines), len(want))
	}
	for i, line := range report.Lines {
		if line != want[i] {
			t.Errorf("line[%d] = %+v, want %+v", i, line, want[i])
		}
	}
}

func TestForExpenseMissing(t *testing.T) {
	svc := NewService(newFakeExpenses())

	if _, err := svc.ForExpense(context.Background(), "nope"); !errors.Is(err, ErrExpenseNotFound) {
		t.Fatalf("ForExpense() error = %v, want ErrExpenseNotFound", err)
	}
}

func TestSuggestionsPayTheCreator(t *testing.T) {
	svc := NewService(newFakeExpenses(sharedExpense("e1", "u-a", "VND", 300,
		share("u-a", "An", 100, 0),
		share("u-b", "Bình", 100, 0),
		share("u-c", "Chi", 100, 0),
	)))

	plans, err := svc.Suggestions(context.Background(), "u-a")
	if err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("plans = %d, want 1", len(plans))
	}

	want := []Transfer{
		{FromID: "u-b", FromName: "Bình", ToID: "u-a", ToName: "An", Amount: 100},
		{FromID: "u-c", FromName: "Chi", ToID: "u-a", ToName: "An", Amount: 100},
	}
	got := plans[0].Transfers
	if len(got) != len(want) {
		t.Fatalf("transfers = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transfer[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSuggestionsNetsOppositeDebts(t *testing.T) {
	// b owes a 100 on one expense, a owes b 40 on another; net b→a 60.
	svc := NewService(newFakeExpenses(
		sharedExpense("e1", "u-a", "VND", 200,
			share("u-a", "An", 100, 0),
			share("u-b", "Bình", 100, 0),
		),
		sharedExpense("e2", "u-b", "VND", 80,
			share("u-b", "Bình", 40, 0),
			share("u-a", "An", 40, 0),
		),
	))

	plans, err := svc.Suggestions(context.Background(), "u-a")
	if err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("plans = %d, want 1", len(plans))
	}
	if len(plans[0].Transfers) != 1 {
		t.Fatalf("transfers = %+v, want exactly one", plans[0].Transfers)
	}
	got := plans[0].Transfers[0]
	want := Transfer{FromID: "u-b", FromName: "Bình", ToID: "u-a", ToName: "An", Amount: 60}
	if got != want {
		t.Errorf("transfer = %+v, want %+v", got, want)
	}
}

func TestSuggestionsKeepCurrenciesApart(t *testing.T) {
	svc := NewService(newFakeExpenses(
		sharedExpense("e1", "u-a", "VND", 200,
			share("u-a", "An", 100, 0),
			share("u-b", "Bình", 100, 0),
		),
		sharedExpense("e2", "u-b", "USD", 10000,
			share("u-b", "Bình", 5000, 0),
			share("u-a", "An", 5000, 0),
		),
	))

	plans, err := svc.Suggestions(context.Background(), "u-a")
	if err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("plans = %d, want one per currency", len(plans))
	}

	// Sorted by currency code.
	if plans[0].Currency != "USD" || plans[1].Currency != "VND" {
		t.Fatalf("currencies = [%s %s], want [USD VND]", plans[0].Currency, plans[1].Currency)
	}
	usd, vnd := plans[0].Transfers, plans[1].Transfers
	if len(usd) != 1 || usd[0].FromID != "u-a" || usd[0].ToID != "u-b" || usd[0].Amount != 5000 {
		t.Errorf("USD transfers = %+v, want a→b 5000", usd)
	}
	if len(vnd) != 1 || vnd[0].FromID != "u-b" || vnd[0].ToID != "u-a" || vnd[0].Amount != 100 {
		t.Errorf("VND transfers = %+v, want b→a 100", vnd)
	}
}

func TestSuggestionsSettledGraphIsEmpty(t *testing.T) {
	svc := NewService(newFakeExpenses(sharedExpense("e1", "u-a", "VND", 200,
		share("u-a", "An", 100, 100),
		share("u-b", "Bình", 100, 100),
	)))

	plans, err := svc.Suggestions(context.Background(), "u-a")
	if err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	if len(plans) != 0 {
		t.Errorf("plans = %+v, want none", plans)
	}
}

func TestSuggestionsTransferBound(t *testing.T) {
	// Four participants with outstanding balances settle in at most
	// three transfers.
	svc := NewService(newFakeExpenses(sharedExpense("e1", "u-a", "VND", 200,
		share("u-a", "An", 100, 100),
		share("u-b", "Bình", 50, 0),
		share("u-c", "Chi", 30, 0),
		share("u-d", "Dũng", 20, 0),
	)))

	plans, err := svc.Suggestions(context.Background(), "u-a")
	if err != nil {
		t.Fatalf("Suggestions() error = %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("plans = %d, want 1", len(plans))
	}
	transfers := plans[0].Transfers
	if len(transfers) > 3 {
		t.Fatalf("transfers = %d, want at most n-1 = 3", len(transfers))
	}

	// Every transfer pays the creator, and the totals restore balance.
	var total money.Amount
	for _, tr := range transfers {
		if tr.ToID != "u-a" {
			t.Errorf("transfer to %s, want creator u-a", tr.ToID)
		}
		total += tr.Amount
	}
	if total != 100 {
		t.Errorf("total transferred = %d, want 100", total)
	}
}
