package settlement

import (
	"context"
	"errors"
	"sort"

	"github.com/minhnc2843/FinVault/internal/expense"
	"github.com/minhnc2843/FinVault/internal/money"
)

// Common errors
var (
	ErrExpenseNotFound = errors.New("shared expense not found")
)

// Expenses provides read access to shared expense aggregates. The
// expense repository satisfies it.
type Expenses interface {
	GetByID(ctx context.Context, id string) (*expense.SharedExpense, error)
	ListForParticipant(ctx context.Context, userID string) ([]*expense.SharedExpense, error)
}

// Service computes settlement views. It never writes.
type Service struct {
	expenses Expenses
}

// NewService creates a new settlement service
func NewService(expenses Expenses) *Service {
	return &Service{expenses: expenses}
}

// ForExpense reports every participant's position within one expense,
// in share order.
func (s *Service) ForExpense(ctx context.Context, expenseID string) (*Report, error) {
	e, err := s.expenses.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrExpenseNotFound
	}

	report := &Report{ExpenseID: e.ID, Currency: e.Currency, Lines: make([]Line, len(e.Shares))}
	for i, share := range e.Shares {
		report.Lines[i] = lineFor(share)
	}
	return report, nil
}

// lineFor computes one participant's position: balance = paid − owed
func lineFor(share *expense.ParticipantShare) Line {
	balance := share.Paid - share.Owed
	status := StatusOwes
	if balance >= 0 {
		status = StatusSettled
	}
	return Line{
		UserID:   share.UserID,
		UserName: share.FullName,
		Owed:     share.Owed,
		Paid:     share.Paid,
		Balance:  balance,
		Status:   status,
	}
}

// account is one participant's running position in one currency.
type account struct {
	id      string
	name    string
	balance money.Amount
}

// Suggestions builds minimal-transfer plans over the caller's expense
// graph, one per currency. Each unconfirmed share is a debt from its
// holder to the expense creator, who fronted the bill; confirmed shares
// drop out. Balances are never netted across currencies. With n
// participants holding non-zero balances a plan never exceeds n−1
// transfers.
func (s *Service) Suggestions(ctx context.Context, userID string) ([]*CurrencyPlan, error) {
	expenses, err := s.expenses.ListForParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	byCurrency := make(map[string]map[string]*account)
	get := func(currency, id, name string) *account {
		accounts := byCurrency[currency]
		if accounts == nil {
			accounts = make(map[string]*account)
			byCurrency[currency] = accounts
		}
		a := accounts[id]
		if a == nil {
			a = &account{id: id, name: name}
			accounts[id] = a
		}
		return a
	}

	for _, e := range expenses {
		creatorName := ""
		if creator := e.Share(e.CreatorID); creator != nil {
			creatorName = creator.FullName
		}
		for _, share := range e.Shares {
			if share.UserID == e.CreatorID {
				continue
			}
			outstanding := share.Owed - share.Paid
			if outstanding <= 0 {
				continue
			}
			get(e.Currency, share.UserID, share.FullName).balance -= outstanding
			get(e.Currency, e.CreatorID, creatorName).balance += outstanding
		}
	}

	currencies := make([]string, 0, len(byCurrency))
	for currency := range byCurrency {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	var plans []*CurrencyPlan
	for _, currency := range currencies {
		transfers := netTransfers(byCurrency[currency])
		if len(transfers) == 0 {
			continue
		}
		plans = append(plans, &CurrencyPlan{Currency: currency, Transfers: transfers})
	}
	return plans, nil
}

// netTransfers repeatedly pays the largest creditor from the largest
// debtor until every balance is zero. Ties break on the smaller user ID
// so the plan is deterministic.
func netTransfers(accounts map[string]*account) []Transfer {
	working := make([]*account, 0, len(accounts))
	for _, a := range accounts {
		if a.balance != 0 {
			working = append(working, &account{id: a.id, name: a.name, balance: a.balance})
		}
	}

	var transfers []Transfer
	for {
		var debtor, creditor *account
		for _, a := range working {
			if a.balance < 0 && (debtor == nil || a.balance < debtor.balance ||
				(a.balance == debtor.balance && a.id < debtor.id)) {
				debtor = a
			}
			if a.balance > 0 && (creditor == nil || a.balance > creditor.balance ||
				(a.balance == creditor.balance && a.id < creditor.id)) {
				creditor = a
			}
		}
		if debtor == nil || creditor == nil {
			return transfers
		}

		amount := creditor.balance
		if owed := -debtor.balance; owed < amount {
			amount = owed
		}
		transfers = append(transfers, Transfer{
			FromID:   debtor.id,
			FromName: debtor.name,
			ToID:     creditor.id,
			ToName:   creditor.name,
			Amount:   amount,
		})
		debtor.balance += amount
		creditor.balance -= amount
	}
}
