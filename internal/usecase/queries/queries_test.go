//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/extension"
	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"
	"hotel-booking-engine/tests/common/dbtest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	checkIn  = time.Date(2025, 6, 7, 14, 0, 0, 0, time.UTC)
	checkOut = checkIn.AddDate(0, 0, 3)
	desk     = staff.Actor{ID: uuid.New(), Role: staff.RoleFrontDesk}
	defaults = shared.BillingDefaults{VATRate: money.MustParse("0.12")}
)

type fixture struct {
	bookings commands.BookingCommands
	charges  commands.ChargeCommands
	reads    queries.BookingQueries
	billing  queries.BillingQueries
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	_, uow := dbtest.NewSQLite(t)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	return &fixture{
		bookings: commands.NewBookingUseCase(uow, clk, defaults),
		charges:  commands.NewChargeUseCase(uow, clk),
		reads:    queries.NewBookingQueries(uow),
		billing:  queries.NewBillingQueries(uow, defaults),
	}
}

// approvedBooking books room 101 for three nights with a 1000 downpayment
// and one pending minibar charge of 500.
func (f *fixture) approvedBooking(t *testing.T) *booking.Booking {
	t.Helper()
	ctx := context.Background()
	b, err := f.bookings.CreateBooking(ctx, commands.CreateBookingRequest{
		GuestID:  uuid.New(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    []commands.CreateBookingRoom{{RoomID: dbtest.Room101, Adults: 2}},
	}, desk)
	require.NoError(t, err)
	_, err = f.bookings.ApproveBooking(ctx, commands.ApproveBookingRequest{
		BookingID: b.ID(), Downpayment: money.MustParse("1000"), PaymentMethod: "cash",
	}, desk)
	require.NoError(t, err)
	_, err = f.charges.AddCharge(ctx, commands.AddChargeRequest{
		BookingID: b.ID(), Category: "minibar", UnitPrice: money.MustParse("250"), Quantity: 2,
	}, desk)
	require.NoError(t, err)
	return b
}

func TestStatuses(t *testing.T) {
	f := newFixture(t)

	want := []queries.StatusView{
		{StatusID: 1, StatusName: "Pending"},
		{StatusID: 2, StatusName: "Approved"},
		{StatusID: 3, StatusName: "Checked-In"},
		{StatusID: 4, StatusName: "Checked-Out"},
		{StatusID: 5, StatusName: "Cancelled"},
	}
	if diff := cmp.Diff(want, f.reads.Statuses()); diff != "" {
		t.Errorf("Statuses() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.approvedBooking(t)

	v, err := f.reads.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, "Approved", v.Status)
	assert.Equal(t, 3, v.Nights)
	assert.Len(t, v.Rooms, 1)
	assert.Equal(t, "101", v.Rooms[0].RoomNumber)
	assert.Len(t, v.Charges, 1)
	assert.Len(t, v.Payments, 1)
	assert.True(t, money.MustParse("8000").Equal(v.Balance))

	_, err = f.reads.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, shared.ErrBookingNotFound)
}

func TestBillingReads(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.approvedBooking(t)

	t.Run("validation reports pending charges", func(t *testing.T) {
		v, err := f.billing.ValidateBilling(ctx, b.ID())
		require.NoError(t, err)
		assert.False(t, v.IsComplete)
		assert.Equal(t, 1, v.PendingCharges)
		assert.Equal(t, 1, v.AssignedRooms)
	})

	t.Run("calculation leaves pending charges out of the totals", func(t *testing.T) {
		v, err := f.billing.CalculateBilling(ctx, queries.CalculateBillingRequest{BookingID: b.ID()})
		require.NoError(t, err)
		assert.Equal(t, "9000.00", v.Breakdown.Subtotal.StringFixed(2))
		assert.Equal(t, "1080.00", v.Breakdown.VATAmount.StringFixed(2))
		assert.Equal(t, "10080.00", v.Breakdown.FinalTotal.StringFixed(2))
		assert.Equal(t, "9080.00", v.Breakdown.Balance.StringFixed(2))
		assert.Len(t, v.PendingLines, 1)
		assert.Empty(t, v.AdditionalCharges)
		assert.Nil(t, v.Discount)
	})

	t.Run("explicit vat and downpayment override defaults", func(t *testing.T) {
		v, err := f.billing.CalculateBilling(ctx, queries.CalculateBillingRequest{
			BookingID:   b.ID(),
			VATRate:     ptrDec("0"),
			Downpayment: ptrDec("0"),
		})
		require.NoError(t, err)
		assert.Equal(t, "9000.00", v.Breakdown.Balance.StringFixed(2))
	})

	t.Run("invoice not found before creation", func(t *testing.T) {
		_, err := f.billing.GetInvoice(ctx, b.ID())
		require.ErrorIs(t, err, shared.ErrInvoiceNotFound)
	})

	t.Run("unknown discount", func(t *testing.T) {
		_, err := f.billing.GetDiscount(ctx, uuid.New())
		require.ErrorIs(t, err, shared.ErrDiscountNotFound)
	})
}

func TestPreviewExtension(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := f.approvedBooking(t)

	v, err := f.billing.PreviewExtension(ctx, b.ID(), checkOut.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, v.AdditionalNights)
	assert.Equal(t, "6000.00", v.AdditionalAmount.StringFixed(2))
	assert.Nil(t, v.PaidNow)

	_, err = f.billing.PreviewExtension(ctx, b.ID(), checkOut)
	require.ErrorIs(t, err, extension.ErrInvalidExtensionDate)

	// A preview writes nothing.
	after, err := f.reads.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.True(t, after.CheckOut.Equal(checkOut))
}

func ptrDec(s string) *decimal.Decimal {
	d := money.MustParse(s)
	return &d
}
