// Package money holds the fixed-point helpers used for every monetary value.
// Amounts are carried unrounded through calculations and rounded only when
// they leave the engine.
package money

import (
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const Places = 2

var ErrInvalidAmount = errs.Mark(errs.New("invalid monetary amount"), errs.ErrValidation)

// Parse reads a decimal string such as "1500.00".
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Wrapf(ErrInvalidAmount, "parse amount %q: %v", s, err)
	}
	return d, nil
}

// ParseNonNegative is Parse plus a sign check.
func ParseNonNegative(s string) (decimal.Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errs.Wrapf(ErrInvalidAmount, "amount %s must not be negative", s)
	}
	return d, nil
}

func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Round applies half-up rounding to two places. Amounts in this domain are
// non-negative so half-away-from-zero and half-up coincide.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Format renders the wire representation, always with two places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// ClampZero returns d, or zero when d is negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	return Max(d, decimal.Zero)
}
