// Package split computes per-participant owed amounts for a shared
// expense. Computation is a pure function over minor-unit amounts: the
// sum of the returned shares always equals the total exactly, and
// identical input (including participant order) yields identical output.
package split

import (
	"errors"

	"github.com/minhnc2843/FinVault/internal/money"
)

var (
	ErrEmptyParticipants    = errors.New("at least one participant is required")
	ErrNonPositiveAmount    = errors.New("total amount must be positive")
	ErrDuplicateParticipant = errors.New("duplicate participant")
	ErrAmountMismatch       = errors.New("custom amounts do not match total")
	ErrUnknownSplitType     = errors.New("unknown split type")
)

// Compute divides total among the given participants according to the
// policy and returns one share per participant, in input order.
func Compute(total money.Amount, participants []string, policy Policy) ([]Share, error) {
	if len(participants) == 0 {
		return nil, ErrEmptyParticipants
	}
	if total <= 0 {
		return nil, ErrNonPositiveAmount
	}

	seen := make(map[string]bool, len(participants))
	for _, id := range participants {
		if seen[id] {
			return nil, ErrDuplicateParticipant
		}
		seen[id] = true
	}

	switch policy.Type {
	case TypeEqual:
		return computeEqual(total, participants), nil
	case TypeCustom:
		return computeCustom(total, participants, policy.Amounts)
	default:
		return nil, ErrUnknownSplitType
	}
}

// computeEqual assigns everyone the floor share, then hands the remainder
// out one minor unit at a time to the earliest participants in input
// order. total/n and total%n are both non-negative here, so the shares
// sum back to total exactly.
func computeEqual(total money.Amount, participants []string) []Share {
	n := money.Amount(len(participants))
	base := total / n
	remainder := total % n

	shares := make([]Share, len(participants))
	for i, id := range participants {
		amount := base
		if money.Amount(i) < remainder {
			amount++
		}
		shares[i] = Share{ParticipantID: id, Amount: amount}
	}
	return shares
}

// computeCustom uses the caller-supplied amounts verbatim. Amounts must
// be non-negative, keyed only by listed participants, and sum to the
// total with zero tolerance; custom splits get no remainder distribution.
func computeCustom(total money.Amount, participants []string, amounts map[string]money.Amount) ([]Share, error) {
	listed := make(map[string]bool, len(participants))
	for _, id := range participants {
		listed[id] = true
	}
	for id := range amounts {
		if !listed[id] {
			return nil, ErrAmountMismatch
		}
	}

	var sum money.Amount
	shares := make([]Share, len(participants))
	for i, id := range participants {
		amount := amounts[id]
		if amount < 0 {
			return nil, ErrAmountMismatch
		}
		sum += amount
		shares[i] = Share{ParticipantID: id, Amount: amount}
	}
	if sum != total {
		return nil, ErrAmountMismatch
	}
	return shares, nil
}
