package booking

import (
	"strings"
	"time"

	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	id          uuid.UUID
	reference   string
	guestID     uuid.UUID
	stay        Stay
	status      Status
	totalAmount decimal.Decimal
	downpayment decimal.Decimal
	paidAmount  decimal.Decimal
	rooms       []Room
	version     int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(guestID uuid.UUID, stay Stay, rooms []Room, now time.Time) (*Booking, error) {
	if stay.IsZero() {
		return nil, ErrInvalidStay
	}
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	seen := make(map[uuid.UUID]struct{}, len(rooms))
	for _, r := range rooms {
		if _, dup := seen[r.roomID]; dup {
			return nil, errs.Wrapf(ErrDuplicateRoom, "room %s", r.roomNumber)
		}
		seen[r.roomID] = struct{}{}
	}

	id := uuid.New()
	b := &Booking{
		id:          id,
		reference:   NewReference(id, now),
		guestID:     guestID,
		stay:        stay,
		status:      StatusPending,
		downpayment: decimal.Zero,
		paidAmount:  decimal.Zero,
		rooms:       append([]Room(nil), rooms...),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}
	b.totalAmount = b.RoomTotal()
	return b, nil
}

func ReconstructBooking(
	id uuid.UUID,
	reference string,
	guestID uuid.UUID,
	stay Stay,
	status Status,
	totalAmount, downpayment, paidAmount decimal.Decimal,
	rooms []Room,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		reference:   reference,
		guestID:     guestID,
		stay:        stay,
		status:      status,
		totalAmount: totalAmount,
		downpayment: downpayment,
		paidAmount:  paidAmount,
		rooms:       rooms,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// NewReference builds a human readable code such as BK-20250610-3FA85F.
func NewReference(id uuid.UUID, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:6])
	return "BK-" + now.UTC().Format("20060102") + "-" + suffix
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Reference() string            { return b.reference }
func (b *Booking) GuestID() uuid.UUID           { return b.guestID }
func (b *Booking) Stay() Stay                   { return b.stay }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) TotalAmount() decimal.Decimal { return b.totalAmount }
func (b *Booking) Downpayment() decimal.Decimal { return b.downpayment }
func (b *Booking) PaidAmount() decimal.Decimal  { return b.paidAmount }
func (b *Booking) Version() int64               { return b.version }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// IncrementVersion is called by the repository once an update has been written.
func (b *Booking) IncrementVersion() { b.version++ }

func (b *Booking) Rooms() []Room {
	return append([]Room(nil), b.rooms...)
}

func (b *Booking) Nights() int { return b.stay.Nights() }

// Balance is what the guest still owes: total − downpayment − extension payments, never negative.
func (b *Booking) Balance() decimal.Decimal {
	return money.ClampZero(b.totalAmount.Sub(b.downpayment).Sub(b.paidAmount))
}

// RoomTotal sums price snapshot × nights over every assigned room.
func (b *Booking) RoomTotal() decimal.Decimal {
	nights := b.Nights()
	total := decimal.Zero
	for _, r := range b.rooms {
		total = total.Add(r.ChargeFor(nights))
	}
	return total
}

func (b *Booking) Room(roomID uuid.UUID) (Room, bool) {
	for _, r := range b.rooms {
		if r.roomID == roomID {
			return r, true
		}
	}
	return Room{}, false
}

func (b *Booking) RoomIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(b.rooms))
	for i, r := range b.rooms {
		ids[i] = r.roomID
	}
	return ids
}

// TransitionTo moves the booking along the status graph. It reports whether the
// status actually changed and leaves the booking untouched on error.
func (b *Booking) TransitionTo(target Status, path Path, now time.Time) (bool, error) {
	changed, err := ValidateTransition(b.status, target, path)
	if err != nil {
		return false, errs.Wrapf(err, "%s -> %s", b.status, target)
	}
	if !changed {
		return false, nil
	}
	b.status = target
	b.updatedAt = now
	return true, nil
}

// Approve runs the approval workflow and records the downpayment taken with it.
// Approve moves a pending booking to Approved. billedTotal is what the guest
// would be invoiced today, VAT and approved charges included, and caps the
// downpayment.
func (b *Booking) Approve(downpayment, billedTotal decimal.Decimal, now time.Time) (bool, error) {
	changed, err := ValidateTransition(b.status, StatusApproved, PathWorkflow)
	if err != nil {
		return false, errs.Wrapf(err, "%s -> %s", b.status, StatusApproved)
	}
	if !changed {
		return false, nil
	}
	if downpayment.IsNegative() || downpayment.GreaterThan(billedTotal) {
		return false, errs.Wrapf(ErrInvalidDownpay, "downpayment %s, billed total %s", downpayment, billedTotal)
	}
	b.status = StatusApproved
	b.downpayment = downpayment
	b.updatedAt = now
	return true, nil
}

func (b *Booking) Cancel(now time.Time) (bool, error) {
	return b.TransitionTo(StatusCancelled, PathWorkflow, now)
}

// ChangeRoom swaps one assigned room for another, keeping its position and its
// booking-room id so charges raised against it stay attached. The booking
// total follows the new room's price snapshot for the whole stay.
func (b *Booking) ChangeRoom(oldRoomID uuid.UUID, next Room, now time.Time) (Room, error) {
	if !b.status.AllowsStayChange() {
		return Room{}, errs.Wrapf(ErrStayChangeNotAllowed, "status %s", b.status)
	}
	if oldRoomID == next.roomID {
		return Room{}, ErrSameRoom
	}
	if _, taken := b.Room(next.roomID); taken {
		return Room{}, errs.Wrapf(ErrDuplicateRoom, "room %s", next.roomNumber)
	}

	idx := -1
	for i, r := range b.rooms {
		if r.roomID == oldRoomID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Room{}, ErrRoomNotAssigned
	}

	old := b.rooms[idx]
	nights := b.Nights()
	total := b.totalAmount.Sub(old.ChargeFor(nights)).Add(next.ChargeFor(nights))
	// The downpayment may include VAT, so callers check it against the billed total.
	if total.LessThan(b.paidAmount) {
		return Room{}, ErrTotalBelowPayment
	}

	next.id = old.id
	b.rooms[idx] = next
	b.totalAmount = total
	b.updatedAt = now
	return old, nil
}

// Extend pushes the checkout back, adds the extension amount to the total and
// books paidNow against it. The remainder lands on the balance.
func (b *Booking) Extend(newCheckOut time.Time, additional, paidNow decimal.Decimal, now time.Time) error {
	if !b.status.AllowsStayChange() {
		return errs.Wrapf(ErrStayChangeNotAllowed, "status %s", b.status)
	}
	stay, err := b.stay.ExtendTo(newCheckOut)
	if err != nil {
		return err
	}
	if additional.IsNegative() || paidNow.IsNegative() || paidNow.GreaterThan(additional) {
		return errs.Mark(errs.New("extension payment outside [0, additional amount]"), errs.ErrValidation)
	}
	b.stay = stay
	b.totalAmount = b.totalAmount.Add(additional)
	b.paidAmount = b.paidAmount.Add(paidNow)
	b.updatedAt = now
	return nil
}

// ReleaseRooms drops every room assignment of a cancelled booking and returns
// what was assigned. The recorded total is kept for reference.
func (b *Booking) ReleaseRooms(now time.Time) []Room {
	if b.status != StatusCancelled {
		return nil
	}
	released := b.rooms
	b.rooms = nil
	b.updatedAt = now
	return released
}

// EnsureOpen rejects mutations on checked-out or cancelled bookings.
func (b *Booking) EnsureOpen() error {
	if b.status.IsTerminal() {
		return errs.Wrapf(ErrBookingClosed, "status %s", b.status)
	}
	return nil
}
