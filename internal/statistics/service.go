package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/minhnc2843/FinVault/internal/category"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// periodStart returns the beginning of the reporting window. "month"
// starts at the first of the current month, "year" at the first of the
// current year, anything else is a trailing 30 days.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	case "year":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return now.AddDate(0, 0, -30)
	}
}

func (s *Service) Overview(ctx context.Context, userID, period string) (*OverviewResponse, error) {
	since := periodStart(period, time.Now().UTC())

	totals, err := s.repo.TotalsByType(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	overview := &OverviewResponse{}
	for _, t := range totals {
		value := t.Units.Decimal(t.Currency)
		if t.Type == string(category.TypeExpense) {
			overview.TotalExpense += value
		} else {
			overview.TotalIncome += value
		}
		overview.TransactionCount += t.Count
	}
	overview.Balance = overview.TotalIncome - overview.TotalExpense

	outstanding, err := s.repo.OutstandingByCurrency(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, o := range outstanding {
		overview.TotalOwed += o.Units.Decimal(o.Currency)
	}

	return overview, nil
}

func (s *Service) ByCategory(ctx context.Context, userID, period string) ([]*CategoryTotalResponse, error) {
	since := periodStart(period, time.Now().UTC())

	totals, err := s.repo.ExpenseTotalsByCategory(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	// Currencies share an exponent only by accident, so buckets for the
	// same category are folded after conversion to decimal values.
	byID := make(map[string]*CategoryTotalResponse)
	var results []*CategoryTotalResponse
	for _, t := range totals {
		entry, ok := byID[t.CategoryID]
		if !ok {
			entry = &CategoryTotalResponse{
				CategoryID:   t.CategoryID,
				CategoryName: t.Name,
				Color:        t.Color,
			}
			byID[t.CategoryID] = entry
			results = append(results, entry)
		}
		entry.Total += t.Units.Decimal(t.Currency)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Total != results[j].Total {
			return results[i].Total > results[j].Total
		}
		return results[i].CategoryName < results[j].CategoryName
	})

	return results, nil
}
