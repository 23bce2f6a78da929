// Package availability keeps the room hold index: which booking occupies which
// room over which stay.
package availability

import (
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomConflict = errs.Mark(errs.New("room is already held for an overlapping stay"), errs.ErrRoomConflict)

// Hold is a weak reference from a room and stay to a booking. Inactive holds
// belong to checked-out or cancelled bookings and never block.
type Hold struct {
	RoomID    uuid.UUID
	BookingID uuid.UUID
	Stay      booking.Stay
	Active    bool
}

func NewHold(roomID, bookingID uuid.UUID, stay booking.Stay) Hold {
	return Hold{RoomID: roomID, BookingID: bookingID, Stay: stay, Active: true}
}

// Ledger is the set of holds of one or more rooms, loaded after the rooms are locked.
type Ledger struct {
	holds []Hold
}

func NewLedger(holds []Hold) *Ledger {
	return &Ledger{holds: append([]Hold(nil), holds...)}
}

func (l *Ledger) Holds() []Hold {
	return append([]Hold(nil), l.holds...)
}

// Conflicts lists active holds of other bookings on roomID overlapping stay.
func (l *Ledger) Conflicts(roomID uuid.UUID, stay booking.Stay, bookingID uuid.UUID) []Hold {
	var out []Hold
	for _, h := range l.holds {
		if h.RoomID != roomID || h.BookingID == bookingID || !h.Active {
			continue
		}
		if h.Stay.Overlaps(stay) {
			out = append(out, h)
		}
	}
	return out
}

// Reserve adds or replaces the hold of bookingID on roomID. A booking's own
// hold never conflicts with itself, which lets an extension re-reserve in place.
func (l *Ledger) Reserve(roomID uuid.UUID, stay booking.Stay, bookingID uuid.UUID) (Hold, error) {
	if conflicts := l.Conflicts(roomID, stay, bookingID); len(conflicts) > 0 {
		return Hold{}, errs.Wrapf(ErrRoomConflict, "room %s held by booking %s", roomID, conflicts[0].BookingID)
	}
	l.Release(roomID, bookingID)
	h := NewHold(roomID, bookingID, stay)
	l.holds = append(l.holds, h)
	return h, nil
}

// Release drops the hold of bookingID on roomID and reports whether one existed.
func (l *Ledger) Release(roomID, bookingID uuid.UUID) bool {
	kept := l.holds[:0]
	released := false
	for _, h := range l.holds {
		if h.RoomID == roomID && h.BookingID == bookingID {
			released = true
			continue
		}
		kept = append(kept, h)
	}
	l.holds = kept
	return released
}
