package billing

import (
	"time"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceExists = errs.Mark(errs.New("an invoice already exists for this booking"), errs.ErrInvoiceAlreadyExists)
	ErrInvoiceStatus = errs.Mark(errs.New("invalid invoice status"), errs.ErrValidation)
	ErrNotInvoicable = errs.Mark(errs.New("booking must be approved, checked in or checked out to be invoiced"), errs.ErrIneligibleStatus)
)

type InvoiceStatus string

const (
	InvoiceComplete   InvoiceStatus = "complete"
	InvoiceIncomplete InvoiceStatus = "incomplete"
)

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoiceComplete, InvoiceIncomplete:
		return InvoiceStatus(s), nil
	}
	return "", ErrInvoiceStatus
}

// Invoice freezes a rounded Breakdown. Only its status may change later.
type Invoice struct {
	id            uuid.UUID
	bookingID     uuid.UUID
	discountID    *uuid.UUID
	breakdown     Breakdown
	paymentMethod PaymentMethod
	status        InvoiceStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewInvoice(bookingID uuid.UUID, breakdown Breakdown, method PaymentMethod, discountID *uuid.UUID, now time.Time) *Invoice {
	rounded := breakdown.Rounded()
	status := InvoiceIncomplete
	if rounded.Balance.IsZero() {
		status = InvoiceComplete
	}
	return &Invoice{
		id:            uuid.New(),
		bookingID:     bookingID,
		discountID:    discountID,
		breakdown:     rounded,
		paymentMethod: method,
		status:        status,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstructInvoice(
	id, bookingID uuid.UUID,
	discountID *uuid.UUID,
	breakdown Breakdown,
	method PaymentMethod,
	status InvoiceStatus,
	createdAt, updatedAt time.Time,
) *Invoice {
	return &Invoice{
		id:            id,
		bookingID:     bookingID,
		discountID:    discountID,
		breakdown:     breakdown,
		paymentMethod: method,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (i *Invoice) ID() uuid.UUID                { return i.id }
func (i *Invoice) BookingID() uuid.UUID         { return i.bookingID }
func (i *Invoice) DiscountID() *uuid.UUID       { return i.discountID }
func (i *Invoice) Breakdown() Breakdown         { return i.breakdown }
func (i *Invoice) PaymentMethod() PaymentMethod { return i.paymentMethod }
func (i *Invoice) Status() InvoiceStatus        { return i.status }
func (i *Invoice) CreatedAt() time.Time         { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time         { return i.updatedAt }
func (i *Invoice) Balance() decimal.Decimal     { return i.breakdown.Balance }
