package split

import (
	"errors"
	"reflect"
	"testing"

	"github.com/minhnc2843/FinVault/internal/money"
)

func TestComputeEqual(t *testing.T) {
	tests := []struct {
		name         string
		total        money.Amount
		participants []string
		want         []Share
		wantErr      error
	}{
		{
			name:         "remainder goes to earliest participants",
			total:        100,
			participants: []string{"a", "b", "c"},
			want: []Share{
				{ParticipantID: "a", Amount: 34},
				{ParticipantID: "b", Amount: 33},
				{ParticipantID: "c", Amount: 33},
			},
		},
		{
			name:         "divides exactly with no remainder",
			total:        300,
			participants: []string{"a", "b", "c"},
			want: []Share{
				{ParticipantID: "a", Amount: 100},
				{ParticipantID: "b", Amount: 100},
				{ParticipantID: "c", Amount: 100},
			},
		},
		{
			name:         "two units of remainder reach first two",
			total:        11,
			participants: []string{"a", "b", "c"},
			want: []Share{
				{ParticipantID: "a", Amount: 4},
				{ParticipantID: "b", Amount: 4},
				{ParticipantID: "c", Amount: 3},
			},
		},
		{
			name:         "single participant owes everything",
			total:        250,
			participants: []string{"a"},
			want:         []Share{{ParticipantID: "a", Amount: 250}},
		},
		{
			name:         "total smaller than participant count",
			total:        2,
			participants: []string{"a", "b", "c"},
			want: []Share{
				{ParticipantID: "a", Amount: 1},
				{ParticipantID: "b", Amount: 1},
				{ParticipantID: "c", Amount: 0},
			},
		},
		{
			name:         "empty participants rejected",
			total:        100,
			participants: nil,
			wantErr:      ErrEmptyParticipants,
		},
		{
			name:         "zero total rejected",
			total:        0,
			participants: []string{"a"},
			wantErr:      ErrNonPositiveAmount,
		},
		{
			name:         "negative total rejected",
			total:        -50,
			participants: []string{"a"},
			wantErr:      ErrNonPositiveAmount,
		},
		{
			name:         "duplicate participant rejected",
			total:        100,
			participants: []string{"a", "b", "a"},
			wantErr:      ErrDuplicateParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.total, tt.participants, Equal())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Compute() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeEqualPreservesSum(t *testing.T) {
	participants := []string{"a", "b", "c", "d", "e", "f", "g"}
	for total := money.Amount(1); total <= 1000; total++ {
		for n := 1; n <= len(participants); n++ {
			shares, err := Compute(total, participants[:n], Equal())
			if err != nil {
				t.Fatalf("Compute(%d, %d participants) error: %v", total, n, err)
			}
			var sum money.Amount
			for _, s := range shares {
				sum += s.Amount
			}
			if sum != total {
				t.Fatalf("Compute(%d, %d participants): shares sum to %d", total, n, sum)
			}
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	participants := []string{"p1", "p2", "p3", "p4", "p5"}
	first, err := Compute(1003, participants, Equal())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	second, err := Compute(1003, participants, Equal())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different shares: %v vs %v", first, second)
	}
}

func TestComputeCustom(t *testing.T) {
	tests := []struct {
		name         string
		total        money.Amount
		participants []string
		amounts      map[string]money.Amount
		want         []Share
		wantErr      error
	}{
		{
			name:         "exact amounts accepted",
			total:        100,
			participants: []string{"a", "b"},
			amounts:      map[string]money.Amount{"a": 70, "b": 30},
			want: []Share{
				{ParticipantID: "a", Amount: 70},
				{ParticipantID: "b", Amount: 30},
			},
		},
		{
			name:         "participant missing from amounts owes zero",
			total:        100,
			participants: []string{"a", "b", "c"},
			amounts:      map[string]money.Amount{"a": 60, "b": 40},
			want: []Share{
				{ParticipantID: "a", Amount: 60},
				{ParticipantID: "b", Amount: 40},
				{ParticipantID: "c", Amount: 0},
			},
		},
		{
			name:         "sum one unit short rejected",
			total:        100,
			participants: []string{"a", "b"},
			amounts:      map[string]money.Amount{"a": 70, "b": 29},
			wantErr:      ErrAmountMismatch,
		},
		{
			name:         "sum one unit over rejected",
			total:        100,
			participants: []string{"a", "b"},
			amounts:      map[string]money.Amount{"a": 70, "b": 31},
			wantErr:      ErrAmountMismatch,
		},
		{
			name:         "amount for unknown participant rejected",
			total:        100,
			participants: []string{"a", "b"},
			amounts:      map[string]money.Amount{"a": 70, "b": 30, "z": 0},
			wantErr:      ErrAmountMismatch,
		},
		{
			name:         "negative amount rejected",
			total:        100,
			participants: []string{"a", "b"},
			amounts:      map[string]money.Amount{"a": 150, "b": -50},
			wantErr:      ErrAmountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.total, tt.participants, Custom(tt.amounts))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Compute() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compute() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compute() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeUnknownType(t *testing.T) {
	_, err := Compute(100, []string{"a"}, Policy{Type: "percentage"})
	if !errors.Is(err, ErrUnknownSplitType) {
		t.Fatalf("Compute() error = %v, want ErrUnknownSplitType", err)
	}
}
