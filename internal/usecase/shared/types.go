package shared

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomSnapshot is the catalog view of a room at the moment it is read.
// Its Price becomes a booking room's immutable price snapshot.
type RoomSnapshot struct {
	ID       uuid.UUID
	Number   string
	RoomType string
	Price    decimal.Decimal
	Capacity int
}

const (
	TopicBookingCreated   = "booking.created"
	TopicBookingApproved  = "booking.approved"
	TopicBookingCancelled = "booking.cancelled"
	TopicStatusChanged    = "booking.status_changed"
	TopicRoomChanged      = "booking.room_changed"
	TopicBookingExtended  = "booking.extended"
	TopicChargeAdded      = "charge.added"
	TopicChargeResolved   = "charge.resolved"
	TopicInvoiceCreated   = "invoice.created"
)

// BillingDefaults carries property-wide billing settings.
type BillingDefaults struct {
	VATRate decimal.Decimal
}
