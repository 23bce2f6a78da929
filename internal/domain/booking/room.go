package booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Occupancy is the guest count of one assigned room.
type Occupancy struct {
	Adults   int
	Children int
}

func (o Occupancy) Total() int { return o.Adults + o.Children }

// Room is a room assigned to a booking. Its price is a snapshot of the
// room-type rate taken at assignment and never changes afterwards.
type Room struct {
	id            uuid.UUID
	roomID        uuid.UUID
	roomNumber    string
	priceSnapshot decimal.Decimal
	occupancy     Occupancy
}

func NewRoom(roomID uuid.UUID, roomNumber string, price decimal.Decimal, capacity int, occupancy Occupancy) (Room, error) {
	if price.IsNegative() {
		return Room{}, ErrNegativePrice
	}
	if occupancy.Adults < 1 || occupancy.Children < 0 || occupancy.Total() > capacity {
		return Room{}, ErrOccupancy
	}
	return Room{
		id:            uuid.New(),
		roomID:        roomID,
		roomNumber:    roomNumber,
		priceSnapshot: price,
		occupancy:     occupancy,
	}, nil
}

func ReconstructRoom(id, roomID uuid.UUID, roomNumber string, price decimal.Decimal, occupancy Occupancy) Room {
	return Room{
		id:            id,
		roomID:        roomID,
		roomNumber:    roomNumber,
		priceSnapshot: price,
		occupancy:     occupancy,
	}
}

func (r Room) ID() uuid.UUID                  { return r.id }
func (r Room) RoomID() uuid.UUID              { return r.roomID }
func (r Room) RoomNumber() string             { return r.roomNumber }
func (r Room) PriceSnapshot() decimal.Decimal { return r.priceSnapshot }
func (r Room) Occupancy() Occupancy           { return r.occupancy }

// ChargeFor returns price snapshot × nights.
func (r Room) ChargeFor(nights int) decimal.Decimal {
	return r.priceSnapshot.Mul(decimal.NewFromInt(int64(nights)))
}
