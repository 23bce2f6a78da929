//go:build unit

package extension_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/extension"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func bookingUntil(t *testing.T, checkout time.Time, prices ...string) *booking.Booking {
	t.Helper()
	bb := builder.NewBookingBuilder().WithStatus(booking.StatusCheckedIn).
		WithStay(checkout.AddDate(0, 0, -2), checkout).
		WithRoomPrice(prices[0])
	for i, p := range prices[1:] {
		bb.AddRoom("2"+string(rune('0'+i)), p)
	}
	return bb.BuildStored()
}

func TestCalculate_TwoNights(t *testing.T) {
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	b := bookingUntil(t, current, "1500")

	plan, err := extension.Calculate(b, time.Date(2025, 6, 12, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, plan.AdditionalNights)
	assert.True(t, plan.AdditionalAmount.Equal(dec("3000")))

	s, err := plan.Settle(dec("1000"))
	require.NoError(t, err)
	assert.True(t, s.PaidNow.Equal(dec("1000")))
	assert.True(t, s.AddedToBalance.Equal(dec("2000")))
}

func TestCalculate_MultiRoomSumsPerRoom(t *testing.T) {
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	b := bookingUntil(t, current, "1500", "2200.50")

	plan, err := extension.Calculate(b, current.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, plan.Rooms, 2)
	assert.True(t, plan.AdditionalAmount.Equal(dec("3700.50")))
}

func TestCalculate_NightsRoundUp(t *testing.T) {
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	b := bookingUntil(t, current, "1000")

	cases := []struct {
		name  string
		delta time.Duration
		want  int
	}{
		{name: "one second", delta: time.Second, want: 1},
		{name: "exactly a day", delta: 24 * time.Hour, want: 1},
		{name: "late checkout next day", delta: 30 * time.Hour, want: 2},
		{name: "three days", delta: 72 * time.Hour, want: 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			plan, err := extension.Calculate(b, current.Add(c.delta))
			require.NoError(t, err)
			assert.Equal(t, c.want, plan.AdditionalNights)
			assert.True(t, plan.AdditionalAmount.Equal(dec("1000").Mul(decimal.NewFromInt(int64(c.want)))))
		})
	}
}

func TestCalculate_RejectsEarlierOrSameCheckout(t *testing.T) {
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	b := bookingUntil(t, current, "1500")

	for _, newCheckout := range []time.Time{current, current.Add(-time.Minute), current.AddDate(0, 0, -5)} {
		plan, err := extension.Calculate(b, newCheckout)
		require.ErrorIs(t, err, extension.ErrInvalidExtensionDate)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Nil(t, plan)
	}
}

func TestPlan_Settle(t *testing.T) {
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	plan, err := extension.Calculate(bookingUntil(t, current, "1500"), current.AddDate(0, 0, 2))
	require.NoError(t, err)

	full, err := plan.Settle(dec("3000"))
	require.NoError(t, err)
	assert.True(t, full.AddedToBalance.IsZero())

	none, err := plan.Settle(dec("0"))
	require.NoError(t, err)
	assert.True(t, none.AddedToBalance.Equal(dec("3000")))

	_, err = plan.Settle(dec("3000.01"))
	require.ErrorIs(t, err, extension.ErrPaymentOutOfRange)
	_, err = plan.Settle(dec("-1"))
	require.ErrorIs(t, err, extension.ErrPaymentOutOfRange)
}
