//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-engine/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomSpec struct {
	ID       uuid.UUID
	RoomID   uuid.UUID
	Number   string
	Price    string
	Capacity int
	Adults   int
	Children int
}

type BookingBuilder struct {
	ID          uuid.UUID
	GuestID     uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	Rooms       []RoomSpec
	Status      booking.Status
	Downpayment string
	Paid        string
	Total       string
	Version     int64
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2025, 6, 7, 14, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:       uuid.New(),
		GuestID:  uuid.New(),
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, 3),
		Rooms: []RoomSpec{
			{ID: uuid.New(), RoomID: uuid.New(), Number: "101", Price: "3000", Capacity: 2, Adults: 2},
		},
		Status:      booking.StatusPending,
		Downpayment: "0",
		Paid:        "0",
		Version:     1,
		Now:         time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithRoomPrice(price string) *BookingBuilder {
	b.Rooms[0].Price = price
	return b
}

func (b *BookingBuilder) AddRoom(number, price string) *BookingBuilder {
	b.Rooms = append(b.Rooms, RoomSpec{ID: uuid.New(), RoomID: uuid.New(), Number: number, Price: price, Capacity: 2, Adults: 1})
	return b
}

// BuildDomain goes through the constructors, so it validates like production code.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	rooms := make([]booking.Room, 0, len(b.Rooms))
	for _, rs := range b.Rooms {
		r, err := booking.NewRoom(rs.RoomID, rs.Number, decimal.RequireFromString(rs.Price), rs.Capacity,
			booking.Occupancy{Adults: rs.Adults, Children: rs.Children})
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return booking.NewBooking(b.GuestID, stay, rooms, b.Now)
}

// BuildStored rebuilds a booking as a repository would, in any status.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	stay, err := booking.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	rooms := make([]booking.Room, 0, len(b.Rooms))
	for _, rs := range b.Rooms {
		rooms = append(rooms, booking.ReconstructRoom(rs.ID, rs.RoomID, rs.Number,
			decimal.RequireFromString(rs.Price), booking.Occupancy{Adults: rs.Adults, Children: rs.Children}))
	}
	total := decimal.Zero
	if b.Total != "" {
		total = decimal.RequireFromString(b.Total)
	} else {
		for _, r := range rooms {
			total = total.Add(r.ChargeFor(stay.Nights()))
		}
	}
	return booking.ReconstructBooking(
		b.ID,
		booking.NewReference(b.ID, b.Now),
		b.GuestID,
		stay,
		b.Status,
		total,
		decimal.RequireFromString(b.Downpayment),
		decimal.RequireFromString(b.Paid),
		rooms,
		b.Version,
		b.Now,
		b.Now,
	)
}
