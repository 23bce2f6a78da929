package billing

import (
	"sort"

	"hotel-booking-engine/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoomLine is the derived charge of one assigned room: snapshot × nights.
type RoomLine struct {
	BookingRoomID uuid.UUID
	RoomID        uuid.UUID
	RoomNumber    string
	UnitPrice     decimal.Decimal
	Nights        int
	Quantity      int
	Amount        decimal.Decimal
}

type ChargeLine struct {
	ChargeID      uuid.UUID
	BookingRoomID *uuid.UUID
	Category      string
	Description   string
	UnitPrice     decimal.Decimal
	Quantity      int
	Amount        decimal.Decimal
	Status        ChargeStatus
}

type CategoryTotal struct {
	Category string
	Count    int
	Amount   decimal.Decimal
}

// Aggregation is the charge picture of a booking. Only approved additional
// charges count towards ChargeTotal; pending ones are listed and counted so
// billing can refuse to continue while they exist.
type Aggregation struct {
	BookingID         uuid.UUID
	RoomCharges       []RoomLine
	AdditionalCharges []ChargeLine
	PendingLines      []ChargeLine
	Categories        []CategoryTotal
	RoomTotal         decimal.Decimal
	ChargeTotal       decimal.Decimal
	PendingCharges    int
	AssignedRooms     int
}

func (a Aggregation) Subtotal() decimal.Decimal {
	return a.RoomTotal.Add(a.ChargeTotal)
}

func Aggregate(b *booking.Booking, charges []*Charge) Aggregation {
	agg := Aggregation{
		BookingID:   b.ID(),
		RoomTotal:   decimal.Zero,
		ChargeTotal: decimal.Zero,
	}

	nights := b.Nights()
	for _, r := range b.Rooms() {
		line := RoomLine{
			BookingRoomID: r.ID(),
			RoomID:        r.RoomID(),
			RoomNumber:    r.RoomNumber(),
			UnitPrice:     r.PriceSnapshot(),
			Nights:        nights,
			Quantity:      1,
			Amount:        r.ChargeFor(nights),
		}
		agg.RoomCharges = append(agg.RoomCharges, line)
		agg.RoomTotal = agg.RoomTotal.Add(line.Amount)
	}
	agg.AssignedRooms = len(agg.RoomCharges)

	byCategory := map[string]*CategoryTotal{}
	for _, c := range charges {
		if c.BookingID() != b.ID() {
			continue
		}
		line := ChargeLine{
			ChargeID:      c.ID(),
			BookingRoomID: c.BookingRoomID(),
			Category:      c.Category(),
			Description:   c.Description(),
			UnitPrice:     c.UnitPrice(),
			Quantity:      c.Quantity(),
			Amount:        c.Amount(),
			Status:        c.Status(),
		}
		switch c.Status() {
		case ChargePending:
			agg.PendingLines = append(agg.PendingLines, line)
			agg.PendingCharges++
		case ChargeApproved:
			agg.AdditionalCharges = append(agg.AdditionalCharges, line)
			agg.ChargeTotal = agg.ChargeTotal.Add(line.Amount)
			ct, ok := byCategory[line.Category]
			if !ok {
				ct = &CategoryTotal{Category: line.Category, Amount: decimal.Zero}
				byCategory[line.Category] = ct
			}
			ct.Count++
			ct.Amount = ct.Amount.Add(line.Amount)
		}
	}

	for _, ct := range byCategory {
		agg.Categories = append(agg.Categories, *ct)
	}
	sort.Slice(agg.Categories, func(i, j int) bool {
		return agg.Categories[i].Category < agg.Categories[j].Category
	})
	return agg
}
