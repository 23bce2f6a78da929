// Package extension prices pushing a booking's checkout later and splits the
// payment taken for it.
package extension

import (
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidExtensionDate = errs.Mark(errs.New("new checkout must be after the current checkout"), errs.ErrValidation)
	ErrPaymentOutOfRange    = errs.Mark(errs.New("payment must be between zero and the additional amount"), errs.ErrValidation)
)

type RoomExtension struct {
	RoomID     uuid.UUID
	RoomNumber string
	UnitPrice  decimal.Decimal
	Nights     int
	Amount     decimal.Decimal
}

// Plan is computed once from a booking snapshot and committed once.
type Plan struct {
	BookingID        uuid.UUID
	CurrentCheckout  time.Time
	NewCheckout      time.Time
	AdditionalNights int
	Rooms            []RoomExtension
	AdditionalAmount decimal.Decimal
}

type Settlement struct {
	PaidNow        decimal.Decimal
	AddedToBalance decimal.Decimal
}

func Calculate(b *booking.Booking, newCheckout time.Time) (*Plan, error) {
	current := b.Stay().CheckOut()
	if !newCheckout.After(current) {
		return nil, errs.Wrapf(ErrInvalidExtensionDate, "current %s, requested %s",
			current.Format(time.RFC3339), newCheckout.Format(time.RFC3339))
	}

	nights := booking.CeilNights(newCheckout.Sub(current))
	plan := &Plan{
		BookingID:        b.ID(),
		CurrentCheckout:  current,
		NewCheckout:      newCheckout,
		AdditionalNights: nights,
		AdditionalAmount: decimal.Zero,
	}
	for _, r := range b.Rooms() {
		amount := r.ChargeFor(nights)
		plan.Rooms = append(plan.Rooms, RoomExtension{
			RoomID:     r.RoomID(),
			RoomNumber: r.RoomNumber(),
			UnitPrice:  r.PriceSnapshot(),
			Nights:     nights,
			Amount:     amount,
		})
		plan.AdditionalAmount = plan.AdditionalAmount.Add(amount)
	}
	return plan, nil
}

// Settle splits payment into what is paid now and what is added to the balance.
// Overpayment is rejected; credits are not modelled.
func (p *Plan) Settle(payment decimal.Decimal) (Settlement, error) {
	if payment.IsNegative() || payment.GreaterThan(p.AdditionalAmount) {
		return Settlement{}, errs.Wrapf(ErrPaymentOutOfRange, "payment %s, additional %s", payment, p.AdditionalAmount)
	}
	return Settlement{
		PaidNow:        payment,
		AddedToBalance: p.AdditionalAmount.Sub(payment),
	}, nil
}

// ExtendedStay is the stay the ledger must accept for the plan to commit.
func (p *Plan) ExtendedStay(b *booking.Booking) (booking.Stay, error) {
	return b.Stay().ExtendTo(p.NewCheckout)
}
