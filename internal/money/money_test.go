package money

import (
	"errors"
	"math"
	"testing"
)

func TestFromDecimal(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		currency string
		want     Amount
		wantErr  bool
	}{
		{name: "two decimal currency", value: 12.34, currency: "USD", want: 1234},
		{name: "rounds half up", value: 12.345, currency: "USD", want: 1235},
		{name: "rounds down below half", value: 12.344, currency: "USD", want: 1234},
		{name: "zero decimal currency", value: 50000, currency: "VND", want: 50000},
		{name: "zero decimal rounds fraction", value: 50000.6, currency: "VND", want: 50001},
		{name: "negative value preserved", value: -3.5, currency: "EUR", want: -350},
		{name: "zero", value: 0, currency: "USD", want: 0},
		{name: "nan rejected", value: math.NaN(), currency: "USD", wantErr: true},
		{name: "infinity rejected", value: math.Inf(1), currency: "USD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromDecimal(tt.value, tt.currency)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("FromDecimal(%v) error = %v, want ErrInvalidAmount", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromDecimal(%v) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("FromDecimal(%v, %q) = %d, want %d", tt.value, tt.currency, got, tt.want)
			}
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		amount   Amount
		currency string
		want     float64
	}{
		{name: "usd cents", amount: 1234, currency: "USD", want: 12.34},
		{name: "vnd whole units", amount: 50000, currency: "VND", want: 50000},
		{name: "negative balance", amount: -10050, currency: "EUR", want: -100.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.amount.Decimal(tt.currency); got != tt.want {
				t.Errorf("Decimal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExponent(t *testing.T) {
	if got := Exponent("VND"); got != 0 {
		t.Errorf("Exponent(VND) = %d, want 0", got)
	}
	if got := Exponent("USD"); got != 2 {
		t.Errorf("Exponent(USD) = %d, want 2", got)
	}
	if got := Exponent("XYZ"); got != 2 {
		t.Errorf("Exponent(XYZ) = %d, want 2 (default)", got)
	}
}

func TestAbs(t *testing.T) {
	if got := Amount(-500).Abs(); got != 500 {
		t.Errorf("Abs(-500) = %d, want 500", got)
	}
	if got := Amount(500).Abs(); got != 500 {
		t.Errorf("Abs(500) = %d, want 500", got)
	}
}
