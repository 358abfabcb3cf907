// Package money represents monetary values as integer counts of the
// smallest currency unit (cents, đồng, yen). All arithmetic on amounts is
// exact integer arithmetic; floating point appears only at the JSON
// boundary, where API payloads carry decimal numbers.
package money

import (
	"errors"
	"math"
)

// Amount is a quantity of money in minor units of some currency.
// It is signed: owed and paid amounts are never negative, but balances
// (paid minus owed) may be.
type Amount int64

// ErrInvalidAmount is returned when a decimal value cannot be represented
// as an exact count of minor units.
var ErrInvalidAmount = errors.New("invalid monetary amount")

// zeroDecimalCurrencies are ISO 4217 codes whose smallest unit is the
// whole unit. Everything else is treated as a two-decimal currency.
var zeroDecimalCurrencies = map[string]bool{
	"VND": true,
	"JPY": true,
	"KRW": true,
}

// Exponent returns the number of decimal digits in the minor unit of the
// given currency code: 0 for VND, JPY and KRW, 2 otherwise.
func Exponent(currency string) int {
	if zeroDecimalCurrencies[currency] {
		return 0
	}
	return 2
}

// Scale returns the number of minor units in one major unit of the
// currency (1 for VND, 100 for USD).
func Scale(currency string) int64 {
	if Exponent(currency) == 0 {
		return 1
	}
	return 100
}

// FromDecimal converts a decimal value (as received in an API payload)
// into minor units of the given currency, rounding half away from zero.
//
// Examples:
//
//	FromDecimal(12.34, "USD")  -> 1234
//	FromDecimal(12.345, "USD") -> 1235
//	FromDecimal(50000, "VND")  -> 50000
//
// Validity of the sign and magnitude is a caller concern; only values
// that cannot be represented at all (NaN, infinities, out of int64
// range) are rejected.
func FromDecimal(value float64, currency string) (Amount, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidAmount
	}
	scaled := value * float64(Scale(currency))
	rounded := math.Round(scaled)
	if rounded > math.MaxInt64 || rounded < math.MinInt64 {
		return 0, ErrInvalidAmount
	}
	return Amount(rounded), nil
}

// Decimal returns the amount as a decimal number of major units, for
// serialization in API responses. Calculations must stay in minor units;
// this is a display conversion only.
func (a Amount) Decimal(currency string) float64 {
	return float64(a) / float64(Scale(currency))
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}
