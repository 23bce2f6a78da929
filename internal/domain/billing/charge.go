package billing

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrChargeCategory  = errs.Mark(errs.New("charge category is required"), errs.ErrValidation)
	ErrChargePrice     = errs.Mark(errs.New("charge unit price cannot be negative"), errs.ErrValidation)
	ErrChargeQuantity  = errs.Mark(errs.New("charge quantity must be at least 1"), errs.ErrValidation)
	ErrChargeResolved  = errs.Mark(errs.New("charge is already resolved"), errs.ErrPolicyViolation)
	ErrChargeStatus    = errs.Mark(errs.New("invalid charge status"), errs.ErrValidation)
	ErrChargeForeignRm = errs.Mark(errs.New("charge room does not belong to the booking"), errs.ErrValidation)
)

type ChargeStatus string

const (
	ChargePending  ChargeStatus = "pending"
	ChargeApproved ChargeStatus = "approved"
	ChargeRejected ChargeStatus = "rejected"
)

func (s ChargeStatus) IsValid() bool {
	switch s {
	case ChargePending, ChargeApproved, ChargeRejected:
		return true
	}
	return false
}

func ParseChargeStatus(s string) (ChargeStatus, error) {
	cs := ChargeStatus(strings.ToLower(strings.TrimSpace(s)))
	if !cs.IsValid() {
		return "", ErrChargeStatus
	}
	return cs, nil
}

// Charge is an ad-hoc line item (minibar, laundry, damage...) raised against a
// booking and optionally one of its rooms. Room nights are not stored as
// charges; they are derived from the booking's room snapshots.
type Charge struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	bookingRoomID *uuid.UUID
	category      string
	description   string
	unitPrice     decimal.Decimal
	quantity      int
	status        ChargeStatus
	createdAt     time.Time
	resolvedAt    *time.Time
}

func NewCharge(
	bookingID uuid.UUID,
	bookingRoomID *uuid.UUID,
	category, description string,
	unitPrice decimal.Decimal,
	quantity int,
	now time.Time,
) (*Charge, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, ErrChargeCategory
	}
	if unitPrice.IsNegative() {
		return nil, ErrChargePrice
	}
	if quantity < 1 {
		return nil, ErrChargeQuantity
	}
	return &Charge{
		id:            uuid.New(),
		bookingID:     bookingID,
		bookingRoomID: bookingRoomID,
		category:      category,
		description:   strings.TrimSpace(description),
		unitPrice:     unitPrice,
		quantity:      quantity,
		status:        ChargePending,
		createdAt:     now,
	}, nil
}

func ReconstructCharge(
	id, bookingID uuid.UUID,
	bookingRoomID *uuid.UUID,
	category, description string,
	unitPrice decimal.Decimal,
	quantity int,
	status ChargeStatus,
	createdAt time.Time,
	resolvedAt *time.Time,
) *Charge {
	return &Charge{
		id:            id,
		bookingID:     bookingID,
		bookingRoomID: bookingRoomID,
		category:      category,
		description:   description,
		unitPrice:     unitPrice,
		quantity:      quantity,
		status:        status,
		createdAt:     createdAt,
		resolvedAt:    resolvedAt,
	}
}

func (c *Charge) ID() uuid.UUID              { return c.id }
func (c *Charge) BookingID() uuid.UUID       { return c.bookingID }
func (c *Charge) BookingRoomID() *uuid.UUID  { return c.bookingRoomID }
func (c *Charge) Category() string           { return c.category }
func (c *Charge) Description() string        { return c.description }
func (c *Charge) UnitPrice() decimal.Decimal { return c.unitPrice }
func (c *Charge) Quantity() int              { return c.quantity }
func (c *Charge) Status() ChargeStatus       { return c.status }
func (c *Charge) CreatedAt() time.Time       { return c.createdAt }
func (c *Charge) ResolvedAt() *time.Time     { return c.resolvedAt }

func (c *Charge) IsPending() bool { return c.status == ChargePending }

// Amount is unit price × quantity.
func (c *Charge) Amount() decimal.Decimal {
	return c.unitPrice.Mul(decimal.NewFromInt(int64(c.quantity)))
}

func (c *Charge) Approve(now time.Time) error {
	return c.resolve(ChargeApproved, now)
}

func (c *Charge) Reject(now time.Time) error {
	return c.resolve(ChargeRejected, now)
}

func (c *Charge) resolve(to ChargeStatus, now time.Time) error {
	if c.status == to {
		return nil
	}
	if c.status != ChargePending {
		return errs.Wrapf(ErrChargeResolved, "charge %s is %s", c.id, c.status)
	}
	c.status = to
	c.resolvedAt = &now
	return nil
}
