package gormstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money columns are stored as text so no precision is lost on SQLite.

type roomModel struct {
	ID       uuid.UUID       `gorm:"type:text;primaryKey"`
	Number   string          `gorm:"column:room_number;not null;uniqueIndex"`
	RoomType string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:text;not null"`
	Capacity int             `gorm:"not null"`
}

func (roomModel) TableName() string { return "rooms" }

type bookingModel struct {
	ID          uuid.UUID       `gorm:"type:text;primaryKey"`
	Reference   string          `gorm:"not null;uniqueIndex"`
	GuestID     uuid.UUID       `gorm:"type:text;not null;index"`
	CheckIn     time.Time       `gorm:"not null"`
	CheckOut    time.Time       `gorm:"not null"`
	StatusID    int             `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:text;not null"`
	Downpayment decimal.Decimal `gorm:"type:text;not null"`
	PaidAmount  decimal.Decimal `gorm:"type:text;not null"`
	Version     int64           `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime:false"`
}

func (bookingModel) TableName() string { return "bookings" }

type bookingRoomModel struct {
	ID            uuid.UUID       `gorm:"type:text;primaryKey"`
	BookingID     uuid.UUID       `gorm:"type:text;not null;uniqueIndex:idx_booking_room"`
	RoomID        uuid.UUID       `gorm:"type:text;not null;uniqueIndex:idx_booking_room"`
	RoomNumber    string          `gorm:"not null"`
	PriceSnapshot decimal.Decimal `gorm:"type:text;not null"`
	Adults        int             `gorm:"not null"`
	Children      int             `gorm:"not null"`
	Position      int             `gorm:"not null"`
}

func (bookingRoomModel) TableName() string { return "booking_rooms" }

type holdModel struct {
	RoomID    uuid.UUID `gorm:"type:text;primaryKey"`
	BookingID uuid.UUID `gorm:"type:text;primaryKey;index"`
	CheckIn   time.Time `gorm:"not null"`
	CheckOut  time.Time `gorm:"not null"`
	Active    bool      `gorm:"not null"`
}

func (holdModel) TableName() string { return "room_holds" }

type chargeModel struct {
	ID            uuid.UUID       `gorm:"type:text;primaryKey"`
	BookingID     uuid.UUID       `gorm:"type:text;not null;index"`
	BookingRoomID *uuid.UUID      `gorm:"type:text"`
	Category      string          `gorm:"not null"`
	Description   string          `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:text;not null"`
	Quantity      int             `gorm:"not null"`
	Status        string          `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"autoCreateTime:false"`
	ResolvedAt    *time.Time
}

func (chargeModel) TableName() string { return "charges" }

type discountModel struct {
	ID          uuid.UUID        `gorm:"type:text;primaryKey"`
	Name        string           `gorm:"not null"`
	Percentage  *decimal.Decimal `gorm:"type:text"`
	FixedAmount *decimal.Decimal `gorm:"type:text"`
	CreatedAt   time.Time        `gorm:"autoCreateTime:false"`
}

func (discountModel) TableName() string { return "discounts" }

type invoiceModel struct {
	ID                  uuid.UUID       `gorm:"type:text;primaryKey"`
	BookingID           uuid.UUID       `gorm:"type:text;not null;uniqueIndex"`
	DiscountID          *uuid.UUID      `gorm:"type:text"`
	RoomTotal           decimal.Decimal `gorm:"type:text;not null"`
	ChargeTotal         decimal.Decimal `gorm:"type:text;not null"`
	Subtotal            decimal.Decimal `gorm:"type:text;not null"`
	DiscountAmount      decimal.Decimal `gorm:"type:text;not null"`
	AmountAfterDiscount decimal.Decimal `gorm:"type:text;not null"`
	VATRate             decimal.Decimal `gorm:"column:vat_rate;type:text;not null"`
	VATAmount           decimal.Decimal `gorm:"column:vat_amount;type:text;not null"`
	FinalTotal          decimal.Decimal `gorm:"type:text;not null"`
	Downpayment         decimal.Decimal `gorm:"type:text;not null"`
	ExtensionPayments   decimal.Decimal `gorm:"type:text;not null"`
	Balance             decimal.Decimal `gorm:"type:text;not null"`
	PaymentMethod       string          `gorm:"not null"`
	Status              string          `gorm:"not null"`
	CreatedAt           time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime:false"`
}

func (invoiceModel) TableName() string { return "invoices" }

type paymentModel struct {
	ID         uuid.UUID       `gorm:"type:text;primaryKey"`
	BookingID  uuid.UUID       `gorm:"type:text;not null;index"`
	Kind       string          `gorm:"not null"`
	Amount     decimal.Decimal `gorm:"type:text;not null"`
	Method     string          `gorm:"not null"`
	RecordedBy uuid.UUID       `gorm:"type:text;not null"`
	CreatedAt  time.Time       `gorm:"autoCreateTime:false"`
}

func (paymentModel) TableName() string { return "payments" }

type eventModel struct {
	ID          uuid.UUID `gorm:"type:text;primaryKey"`
	BookingID   uuid.UUID `gorm:"type:text;not null;index"`
	Topic       string    `gorm:"not null"`
	Payload     []byte    `gorm:"not null"`
	OccurredAt  time.Time `gorm:"not null"`
	PublishedAt *time.Time
}

func (eventModel) TableName() string { return "booking_events" }

func allModels() []any {
	return []any{
		&roomModel{},
		&bookingModel{},
		&bookingRoomModel{},
		&holdModel{},
		&chargeModel{},
		&discountModel{},
		&invoiceModel{},
		&paymentModel{},
		&eventModel{},
	}
}
