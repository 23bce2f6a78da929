package billing

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentMethod = errs.Mark(errs.New("invalid payment method"), errs.ErrValidation)
	ErrPaymentAmount = errs.Mark(errs.New("payment amount must be positive"), errs.ErrValidation)
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodEWallet      PaymentMethod = "e_wallet"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodCash, MethodCard, MethodBankTransfer, MethodEWallet:
		return m, nil
	}
	return "", errs.Wrapf(ErrPaymentMethod, "%q", s)
}

type PaymentKind string

const (
	PaymentDownpayment PaymentKind = "downpayment"
	PaymentExtension   PaymentKind = "extension"
)

// Payment is an append-only ledger row of money collected for a booking.
type Payment struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	kind       PaymentKind
	amount     decimal.Decimal
	method     PaymentMethod
	recordedBy uuid.UUID
	createdAt  time.Time
}

func NewPayment(bookingID uuid.UUID, kind PaymentKind, amount decimal.Decimal, method PaymentMethod, recordedBy uuid.UUID, now time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrPaymentAmount
	}
	return &Payment{
		id:         uuid.New(),
		bookingID:  bookingID,
		kind:       kind,
		amount:     amount,
		method:     method,
		recordedBy: recordedBy,
		createdAt:  now,
	}, nil
}

func ReconstructPayment(id, bookingID uuid.UUID, kind PaymentKind, amount decimal.Decimal, method PaymentMethod, recordedBy uuid.UUID, createdAt time.Time) *Payment {
	return &Payment{
		id:         id,
		bookingID:  bookingID,
		kind:       kind,
		amount:     amount,
		method:     method,
		recordedBy: recordedBy,
		createdAt:  createdAt,
	}
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) Kind() PaymentKind       { return p.kind }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Method() PaymentMethod   { return p.method }
func (p *Payment) RecordedBy() uuid.UUID   { return p.recordedBy }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
