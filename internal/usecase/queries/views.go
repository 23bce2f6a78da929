package queries

import (
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/extension"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models. Money stays decimal here; the handler formats it for the wire.

type StatusView struct {
	StatusID   int
	StatusName string
}

type BookingRoomView struct {
	ID            uuid.UUID
	RoomID        uuid.UUID
	RoomNumber    string
	PriceSnapshot decimal.Decimal
	Adults        int
	Children      int
}

type ChargeView struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	BookingRoomID *uuid.UUID
	Category      string
	Description   string
	UnitPrice     decimal.Decimal
	Quantity      int
	Amount        decimal.Decimal
	Status        string
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}

type PaymentView struct {
	ID        uuid.UUID
	Kind      string
	Amount    decimal.Decimal
	Method    string
	CreatedAt time.Time
}

type BookingView struct {
	ID          uuid.UUID
	Reference   string
	GuestID     uuid.UUID
	StatusID    int
	Status      string
	CheckIn     time.Time
	CheckOut    time.Time
	Nights      int
	TotalAmount decimal.Decimal
	Downpayment decimal.Decimal
	PaidAmount  decimal.Decimal
	Balance     decimal.Decimal
	Version     int64
	Rooms       []BookingRoomView
	Charges     []ChargeView
	Payments    []PaymentView
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DiscountView struct {
	ID          uuid.UUID
	Name        string
	Percentage  *decimal.Decimal
	FixedAmount *decimal.Decimal
	CreatedAt   time.Time
}

type ValidationView struct {
	IsComplete     bool
	PendingCharges int
	AssignedRooms  int
	Message        string
}

type RoomLineView struct {
	BookingRoomID uuid.UUID
	RoomID        uuid.UUID
	RoomNumber    string
	UnitPrice     decimal.Decimal
	Nights        int
	Quantity      int
	Amount        decimal.Decimal
}

type ChargeLineView struct {
	ChargeID      uuid.UUID
	BookingRoomID *uuid.UUID
	Category      string
	Description   string
	UnitPrice     decimal.Decimal
	Quantity      int
	Amount        decimal.Decimal
	Status        string
}

type CategoryView struct {
	Category string
	Count    int
	Amount   decimal.Decimal
}

// BreakdownView is always rounded to two places.
type BreakdownView struct {
	RoomTotal           decimal.Decimal
	ChargeTotal         decimal.Decimal
	Subtotal            decimal.Decimal
	DiscountAmount      decimal.Decimal
	AmountAfterDiscount decimal.Decimal
	VATRate             decimal.Decimal
	VATAmount           decimal.Decimal
	FinalTotal          decimal.Decimal
	Downpayment         decimal.Decimal
	ExtensionPayments   decimal.Decimal
	Balance             decimal.Decimal
}

type CalculationView struct {
	BookingID         uuid.UUID
	Breakdown         BreakdownView
	RoomCharges       []RoomLineView
	AdditionalCharges []ChargeLineView
	PendingLines      []ChargeLineView
	Categories        []CategoryView
	Validation        ValidationView
	Discount          *DiscountView
}

type InvoiceView struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	DiscountID    *uuid.UUID
	Breakdown     BreakdownView
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
}

type RoomExtensionView struct {
	RoomID     uuid.UUID
	RoomNumber string
	UnitPrice  decimal.Decimal
	Nights     int
	Amount     decimal.Decimal
}

type ExtensionPlanView struct {
	BookingID        uuid.UUID
	CurrentCheckout  time.Time
	NewCheckout      time.Time
	AdditionalNights int
	Rooms            []RoomExtensionView
	AdditionalAmount decimal.Decimal
	// Filled only once a plan has been committed.
	PaidNow        *decimal.Decimal
	AddedToBalance *decimal.Decimal
}

func NewBookingView(b *booking.Booking, charges []*billing.Charge, payments []*billing.Payment) *BookingView {
	v := &BookingView{
		ID:          b.ID(),
		Reference:   b.Reference(),
		GuestID:     b.GuestID(),
		StatusID:    b.Status().ID(),
		Status:      b.Status().String(),
		CheckIn:     b.Stay().CheckIn(),
		CheckOut:    b.Stay().CheckOut(),
		Nights:      b.Nights(),
		TotalAmount: b.TotalAmount(),
		Downpayment: b.Downpayment(),
		PaidAmount:  b.PaidAmount(),
		Balance:     b.Balance(),
		Version:     b.Version(),
		Rooms:       []BookingRoomView{},
		Charges:     []ChargeView{},
		Payments:    []PaymentView{},
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
	for _, r := range b.Rooms() {
		v.Rooms = append(v.Rooms, BookingRoomView{
			ID:            r.ID(),
			RoomID:        r.RoomID(),
			RoomNumber:    r.RoomNumber(),
			PriceSnapshot: r.PriceSnapshot(),
			Adults:        r.Occupancy().Adults,
			Children:      r.Occupancy().Children,
		})
	}
	for _, c := range charges {
		v.Charges = append(v.Charges, *NewChargeView(c))
	}
	for _, p := range payments {
		v.Payments = append(v.Payments, PaymentView{
			ID:        p.ID(),
			Kind:      string(p.Kind()),
			Amount:    p.Amount(),
			Method:    string(p.Method()),
			CreatedAt: p.CreatedAt(),
		})
	}
	return v
}

func NewChargeView(c *billing.Charge) *ChargeView {
	return &ChargeView{
		ID:            c.ID(),
		BookingID:     c.BookingID(),
		BookingRoomID: c.BookingRoomID(),
		Category:      c.Category(),
		Description:   c.Description(),
		UnitPrice:     c.UnitPrice(),
		Quantity:      c.Quantity(),
		Amount:        c.Amount(),
		Status:        string(c.Status()),
		CreatedAt:     c.CreatedAt(),
		ResolvedAt:    c.ResolvedAt(),
	}
}

func NewDiscountView(d *billing.Discount) *DiscountView {
	return &DiscountView{
		ID:          d.ID(),
		Name:        d.Name(),
		Percentage:  d.Percentage(),
		FixedAmount: d.FixedAmount(),
		CreatedAt:   d.CreatedAt(),
	}
}

func NewBreakdownView(bd billing.Breakdown) BreakdownView {
	r := bd.Rounded()
	return BreakdownView{
		RoomTotal:           r.RoomTotal,
		ChargeTotal:         r.ChargeTotal,
		Subtotal:            r.Subtotal,
		DiscountAmount:      r.DiscountAmount,
		AmountAfterDiscount: r.AmountAfterDiscount,
		VATRate:             r.VATRate,
		VATAmount:           r.VATAmount,
		FinalTotal:          r.FinalTotal,
		Downpayment:         r.Downpayment,
		ExtensionPayments:   r.ExtensionPayments,
		Balance:             r.Balance,
	}
}

func NewInvoiceView(inv *billing.Invoice) *InvoiceView {
	return &InvoiceView{
		ID:            inv.ID(),
		BookingID:     inv.BookingID(),
		DiscountID:    inv.DiscountID(),
		Breakdown:     NewBreakdownView(inv.Breakdown()),
		PaymentMethod: string(inv.PaymentMethod()),
		Status:        string(inv.Status()),
		CreatedAt:     inv.CreatedAt(),
	}
}

func NewValidationView(v billing.Validation) ValidationView {
	return ValidationView{
		IsComplete:     v.IsComplete,
		PendingCharges: v.PendingCharges,
		AssignedRooms:  v.AssignedRooms,
		Message:        v.Message,
	}
}

func NewExtensionPlanView(p *extension.Plan, settlement *extension.Settlement) *ExtensionPlanView {
	v := &ExtensionPlanView{
		BookingID:        p.BookingID,
		CurrentCheckout:  p.CurrentCheckout,
		NewCheckout:      p.NewCheckout,
		AdditionalNights: p.AdditionalNights,
		Rooms:            []RoomExtensionView{},
		AdditionalAmount: p.AdditionalAmount,
	}
	for _, r := range p.Rooms {
		v.Rooms = append(v.Rooms, RoomExtensionView{
			RoomID:     r.RoomID,
			RoomNumber: r.RoomNumber,
			UnitPrice:  r.UnitPrice,
			Nights:     r.Nights,
			Amount:     r.Amount,
		})
	}
	if settlement != nil {
		paid, added := settlement.PaidNow, settlement.AddedToBalance
		v.PaidNow, v.AddedToBalance = &paid, &added
	}
	return v
}

func newCalculationView(agg billing.Aggregation, bd billing.Breakdown, discount *billing.Discount) *CalculationView {
	v := &CalculationView{
		BookingID:         agg.BookingID,
		Breakdown:         NewBreakdownView(bd),
		RoomCharges:       []RoomLineView{},
		AdditionalCharges: []ChargeLineView{},
		PendingLines:      []ChargeLineView{},
		Categories:        []CategoryView{},
		Validation:        NewValidationView(billing.Validate(agg)),
	}
	for _, l := range agg.RoomCharges {
		v.RoomCharges = append(v.RoomCharges, RoomLineView(l))
	}
	for _, l := range agg.AdditionalCharges {
		v.AdditionalCharges = append(v.AdditionalCharges, chargeLineView(l))
	}
	for _, l := range agg.PendingLines {
		v.PendingLines = append(v.PendingLines, chargeLineView(l))
	}
	for _, c := range agg.Categories {
		v.Categories = append(v.Categories, CategoryView(c))
	}
	if discount != nil {
		v.Discount = NewDiscountView(discount)
	}
	return v
}

func chargeLineView(l billing.ChargeLine) ChargeLineView {
	return ChargeLineView{
		ChargeID:      l.ChargeID,
		BookingRoomID: l.BookingRoomID,
		Category:      l.Category,
		Description:   l.Description,
		UnitPrice:     l.UnitPrice,
		Quantity:      l.Quantity,
		Amount:        l.Amount,
		Status:        string(l.Status),
	}
}
