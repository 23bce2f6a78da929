//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestNewDiscount(t *testing.T) {
	cases := []struct {
		name       string
		discName   string
		percentage *decimal.Decimal
		fixed      *decimal.Decimal
		errIs      error
	}{
		{name: "percentage", discName: "Senior", percentage: decPtr("20")},
		{name: "fixed", discName: "Promo", fixed: decPtr("2000")},
		{name: "percentage bounds 0", discName: "Zero", percentage: decPtr("0")},
		{name: "percentage bounds 100", discName: "Comp", percentage: decPtr("100")},
		{name: "fixed zero", discName: "Nothing", fixed: decPtr("0")},
		{name: "both set", discName: "Bad", percentage: decPtr("10"), fixed: decPtr("10"), errIs: billing.ErrDiscountBothSet},
		{name: "neither set", discName: "Bad", errIs: billing.ErrDiscountNeitherSet},
		{name: "percentage over 100", discName: "Bad", percentage: decPtr("100.01"), errIs: billing.ErrDiscountPercent},
		{name: "negative percentage", discName: "Bad", percentage: decPtr("-1"), errIs: billing.ErrDiscountPercent},
		{name: "negative fixed", discName: "Bad", fixed: decPtr("-0.01"), errIs: billing.ErrDiscountAmount},
		{name: "blank name", discName: "  ", fixed: decPtr("1"), errIs: billing.ErrDiscountName},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := billing.NewDiscount(c.discName, c.percentage, c.fixed, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, d.IsFixed(), d.IsPercentage())
		})
	}
}

func TestResolveDiscount(t *testing.T) {
	pct, err := billing.NewDiscount("Senior", decPtr("20"), nil, now)
	require.NoError(t, err)
	fixed, err := billing.NewDiscount("Promo", nil, decPtr("2000"), now)
	require.NoError(t, err)

	cases := []struct {
		name     string
		subtotal string
		discount *billing.Discount
		amount   string
		after    string
	}{
		{name: "no discount", subtotal: "9000", discount: nil, amount: "0", after: "9000"},
		{name: "percentage", subtotal: "9000", discount: pct, amount: "1800", after: "7200"},
		{name: "percentage keeps precision", subtotal: "0.05", discount: pct, amount: "0.01", after: "0.04"},
		{name: "fixed", subtotal: "10080", discount: fixed, amount: "2000", after: "8080"},
		{name: "fixed capped at subtotal", subtotal: "1500", discount: fixed, amount: "1500", after: "0"},
		{name: "zero subtotal", subtotal: "0", discount: fixed, amount: "0", after: "0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			amount := billing.ResolveDiscount(dec(c.subtotal), c.discount)
			assert.True(t, amount.Equal(dec(c.amount)), "amount %s", amount)
			assert.False(t, amount.IsNegative())
			assert.False(t, amount.GreaterThan(dec(c.subtotal)))
			assert.True(t, billing.ApplyDiscount(dec(c.subtotal), c.discount).Equal(dec(c.after)))
		})
	}
}

func TestReconstructDiscount_RejectsCorruptRow(t *testing.T) {
	_, err := billing.ReconstructDiscount(pctID, "Broken", decPtr("5"), decPtr("5"), now)
	require.ErrorIs(t, err, billing.ErrDiscountBothSet)
}
