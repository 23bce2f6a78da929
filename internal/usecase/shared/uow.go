package shared

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/availability"
	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/booking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomCatalog
	Holds() HoldRepository
	Charges() ChargeRepository
	Discounts() DiscountRepository
	Invoices() InvoiceRepository
	Payments() PaymentRepository
	Events() EventRepository
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindForUpdate locks the booking row until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	// Update writes b if the stored version still equals b.Version() and bumps it.
	Update(ctx context.Context, b *booking.Booking) error
}

type RoomCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type HoldRepository interface {
	// LockRoom serializes ledger changes on one room for the rest of the transaction.
	LockRoom(ctx context.Context, roomID uuid.UUID) error
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]availability.Hold, error)
	Put(ctx context.Context, h availability.Hold) error
	Delete(ctx context.Context, roomID, bookingID uuid.UUID) error
	DeactivateByBooking(ctx context.Context, bookingID uuid.UUID) error
	DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error
}

type ChargeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*billing.Charge, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*billing.Charge, error)
	Create(ctx context.Context, c *billing.Charge) error
	UpdateStatus(ctx context.Context, c *billing.Charge) error
	DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error
}

type DiscountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*billing.Discount, error)
	Create(ctx context.Context, d *billing.Discount) error
}

type InvoiceRepository interface {
	FindByBooking(ctx context.Context, bookingID uuid.UUID) (*billing.Invoice, error)
	Create(ctx context.Context, inv *billing.Invoice) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *billing.Payment) error
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*billing.Payment, error)
}

// EventRepository is the transactional outbox for booking events.
type EventRepository interface {
	Append(ctx context.Context, e Event) error
}

type Event struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	Topic      string
	Payload    []byte
	OccurredAt time.Time
}

// InvoiceArchive keeps a copy of issued invoices outside the booking store.
type InvoiceArchive interface {
	Archive(ctx context.Context, inv *billing.Invoice, reference string) error
}
