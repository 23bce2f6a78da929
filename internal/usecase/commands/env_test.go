//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"
	"hotel-booking-engine/internal/usecase/shared"
	"hotel-booking-engine/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	checkIn  = time.Date(2025, 6, 7, 14, 0, 0, 0, time.UTC)
	checkOut = checkIn.AddDate(0, 0, 3)
	desk     = staff.Actor{ID: uuid.MustParse("00000000-0000-0000-0000-00000000d35c"), Role: staff.RoleFrontDesk}
)

type env struct {
	db        *gorm.DB
	clock     *clock.MockClock
	bookings  commands.BookingCommands
	charges   commands.ChargeCommands
	discounts commands.DiscountCommands
	invoices  commands.InvoiceCommands
	reads     queries.BookingQueries
	billing   queries.BillingQueries
	archive   *recordingArchive
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, uow := dbtest.NewSQLite(t)
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	defaults := shared.BillingDefaults{VATRate: money.MustParse("0.12")}
	archive := &recordingArchive{}

	return &env{
		db:        db,
		clock:     clk,
		bookings:  commands.NewBookingUseCase(uow, clk, defaults),
		charges:   commands.NewChargeUseCase(uow, clk),
		discounts: commands.NewDiscountUseCase(uow, clk),
		invoices:  commands.NewInvoiceUseCase(uow, archive, clk, defaults),
		reads:     queries.NewBookingQueries(uow),
		billing:   queries.NewBillingQueries(uow, defaults),
		archive:   archive,
	}
}

func (e *env) create(t *testing.T, in, out time.Time, rooms ...uuid.UUID) *booking.Booking {
	t.Helper()
	req := commands.CreateBookingRequest{GuestID: uuid.New(), CheckIn: in, CheckOut: out}
	for _, id := range rooms {
		req.Rooms = append(req.Rooms, commands.CreateBookingRoom{RoomID: id, Adults: 2})
	}
	b, err := e.bookings.CreateBooking(context.Background(), req, desk)
	require.NoError(t, err)
	return b
}

func (e *env) approve(t *testing.T, id uuid.UUID, downpayment string) {
	t.Helper()
	_, err := e.bookings.ApproveBooking(context.Background(), commands.ApproveBookingRequest{
		BookingID:     id,
		Downpayment:   money.MustParse(downpayment),
		PaymentMethod: "cash",
	}, desk)
	require.NoError(t, err)
}

func (e *env) setStatus(t *testing.T, id uuid.UUID, s booking.Status) {
	t.Helper()
	_, err := e.bookings.SetBookingStatus(context.Background(), commands.SetStatusRequest{BookingID: id, Status: s}, desk)
	require.NoError(t, err)
}

func (e *env) view(t *testing.T, id uuid.UUID) *queries.BookingView {
	t.Helper()
	v, err := e.reads.GetByID(context.Background(), id)
	require.NoError(t, err)
	return v
}

func (e *env) eventTopics(t *testing.T, bookingID uuid.UUID) []string {
	t.Helper()
	var topics []string
	err := e.db.Table("booking_events").
		Where("booking_id = ?", bookingID).
		Order("occurred_at, rowid").
		Pluck("topic", &topics).Error
	require.NoError(t, err)
	return topics
}

func dec(s string) decimal.Decimal { return money.MustParse(s) }

func decPtr(s string) *decimal.Decimal {
	d := money.MustParse(s)
	return &d
}

type recordingArchive struct {
	references []string
	err        error
}

func (a *recordingArchive) Archive(_ context.Context, _ *billing.Invoice, reference string) error {
	a.references = append(a.references, reference)
	return a.err
}
