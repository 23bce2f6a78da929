//go:build unit

package billing_test

import (
	"testing"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestCalculate_ThreeNightsWithVAT(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedIn).BuildStored()

	actual, err := billing.Calculate(billing.Input{
		Aggregation:       billing.Aggregate(b, nil),
		VATRate:           dec("0.12"),
		Downpayment:       dec("0"),
		ExtensionPayments: dec("0"),
	})
	require.NoError(t, err)

	expected := billing.Breakdown{
		RoomTotal:           dec("9000"),
		ChargeTotal:         dec("0"),
		Subtotal:            dec("9000"),
		DiscountAmount:      dec("0"),
		AmountAfterDiscount: dec("9000"),
		VATRate:             dec("0.12"),
		VATAmount:           dec("1080"),
		FinalTotal:          dec("10080"),
		Downpayment:         dec("0"),
		ExtensionPayments:   dec("0"),
		Balance:             dec("10080"),
	}
	if diff := cmp.Diff(expected, actual, decimalEqual); diff != "" {
		t.Errorf("Breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_DiscountBeforeVAT(t *testing.T) {
	// 10080 of room nights, a fixed 2000 discount, VAT on the 8080 that remains.
	b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedIn).WithRoomPrice("3360").BuildStored()
	promo, err := billing.NewDiscount("Promo", nil, decPtr("2000"), now)
	require.NoError(t, err)

	actual, err := billing.Calculate(billing.Input{
		Aggregation: billing.Aggregate(b, nil),
		Discount:    promo,
		VATRate:     dec("0.12"),
	})
	require.NoError(t, err)

	assert.True(t, actual.Subtotal.Equal(dec("10080")))
	assert.True(t, actual.AmountAfterDiscount.Equal(dec("8080")))
	assert.True(t, actual.VATAmount.Equal(dec("969.6")))
	assert.True(t, actual.FinalTotal.Equal(dec("8080").Mul(dec("1.12"))))
}

func TestCalculate_BalanceNeverNegative(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedIn).BuildStored()
	actual, err := billing.Calculate(billing.Input{
		Aggregation:       billing.Aggregate(b, nil),
		VATRate:           dec("0.12"),
		Downpayment:       dec("10000"),
		ExtensionPayments: dec("500"),
	})
	require.NoError(t, err)
	assert.True(t, actual.Balance.IsZero())
}

func TestCalculate_BalanceIdentity(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedIn).AddRoom("102", "1234.56").BuildStored()
	agg := billing.Aggregate(b, nil)

	for _, dp := range []string{"0", "100", "2500.75"} {
		for _, ext := range []string{"0", "1000", "333.33"} {
			actual, err := billing.Calculate(billing.Input{
				Aggregation:       agg,
				VATRate:           dec("0.12"),
				Downpayment:       dec(dp),
				ExtensionPayments: dec(ext),
			})
			require.NoError(t, err)
			want := money.ClampZero(actual.FinalTotal.Sub(dec(dp)).Sub(dec(ext)))
			assert.True(t, actual.Balance.Equal(want), "dp=%s ext=%s", dp, ext)
		}
	}
}

func TestCalculate_Validation(t *testing.T) {
	agg := billing.Aggregate(builder.NewBookingBuilder().BuildStored(), nil)

	_, err := billing.Calculate(billing.Input{Aggregation: agg, VATRate: dec("1.5")})
	require.ErrorIs(t, err, billing.ErrVATRate)
	_, err = billing.Calculate(billing.Input{Aggregation: agg, VATRate: dec("-0.1")})
	require.ErrorIs(t, err, billing.ErrVATRate)
	_, err = billing.Calculate(billing.Input{Aggregation: agg, VATRate: dec("0.12"), Downpayment: dec("-1")})
	require.ErrorIs(t, err, billing.ErrDownpayment)
	_, err = billing.Calculate(billing.Input{Aggregation: agg, VATRate: dec("0.12"), ExtensionPayments: dec("-1")})
	require.ErrorIs(t, err, billing.ErrPayments)
}

func TestBreakdown_RoundsOnlyAtDisplay(t *testing.T) {
	// 3 nights × 33.335 = 100.005; rounding each night first would give 100.02.
	b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedIn).WithRoomPrice("33.335").BuildStored()
	actual, err := billing.Calculate(billing.Input{Aggregation: billing.Aggregate(b, nil), VATRate: dec("0")})
	require.NoError(t, err)

	assert.True(t, actual.Subtotal.Equal(dec("100.005")))
	assert.Equal(t, "100.01", money.Format(actual.Rounded().Subtotal))
}

func TestNewInvoice(t *testing.T) {
	b := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedIn).BuildStored()
	bd, err := billing.Calculate(billing.Input{Aggregation: billing.Aggregate(b, nil), VATRate: dec("0.12")})
	require.NoError(t, err)

	inv := billing.NewInvoice(b.ID(), bd, billing.MethodCash, nil, now)
	assert.Equal(t, billing.InvoiceIncomplete, inv.Status())
	assert.Equal(t, "10080.00", money.Format(inv.Breakdown().FinalTotal))

	paid, err := billing.Calculate(billing.Input{Aggregation: billing.Aggregate(b, nil), VATRate: dec("0.12"), Downpayment: dec("10080")})
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceComplete, billing.NewInvoice(b.ID(), paid, billing.MethodCard, nil, now).Status())
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := billing.ParsePaymentMethod(" Cash ")
	require.NoError(t, err)
	assert.Equal(t, billing.MethodCash, m)

	_, err = billing.ParsePaymentMethod("cheque")
	require.ErrorIs(t, err, billing.ErrPaymentMethod)
}
