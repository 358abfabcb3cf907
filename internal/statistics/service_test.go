package statistics

import (
	"testing"
	"time"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, time.June, 15, 13, 45, 12, 0, time.UTC)

	tests := []struct {
		name   string
		period string
		want   time.Time
	}{
		{
			name:   "month starts at the first of the current month",
			period: "month",
			want:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "year starts at the first of the current year",
			period: "year",
			want:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "empty period is a trailing thirty days",
			period: "",
			want:   now.AddDate(0, 0, -30),
		},
		{
			name:   "unknown period is a trailing thirty days",
			period: "week",
			want:   now.AddDate(0, 0, -30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := periodStart(tt.period, now)
			if !got.Equal(tt.want) {
				t.Errorf("periodStart(%q) = %v, want %v", tt.period, got, tt.want)
			}
		})
	}
}

func TestPeriodStartJanuaryMonth(t *testing.T) {
	now := time.Date(2025, time.January, 3, 8, 0, 0, 0, time.UTC)

	got := periodStart("month", now)
	want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("periodStart(month) = %v, want %v", got, want)
	}
}
