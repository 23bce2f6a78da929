package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/extension"
	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRoom struct {
	RoomID   uuid.UUID
	Adults   int
	Children int
}

type CreateBookingRequest struct {
	GuestID  uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Rooms    []CreateBookingRoom
}

type ApproveBookingRequest struct {
	BookingID     uuid.UUID
	Downpayment   decimal.Decimal
	PaymentMethod string
}

type CancelBookingRequest struct {
	BookingID uuid.UUID
	Reason    string
}

type SetStatusRequest struct {
	BookingID uuid.UUID
	Status    booking.Status
}

type ChangeRoomRequest struct {
	BookingID uuid.UUID
	OldRoomID uuid.UUID
	NewRoomID uuid.UUID
}

type ExtendBookingRequest struct {
	BookingID     uuid.UUID
	NewCheckout   time.Time
	Payment       decimal.Decimal
	PaymentMethod string
	// ExpectedCheckout, when set, must equal the stored checkout.
	ExpectedCheckout *time.Time
}

type StatusChangeResult struct {
	Booking *booking.Booking
	From    booking.Status
	Changed bool
}

type RoomChangeResult struct {
	Booking  *booking.Booking
	Released booking.Room
	Assigned booking.Room
}

type ExtensionResult struct {
	Booking    *booking.Booking
	Plan       *extension.Plan
	Settlement extension.Settlement
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, actor staff.Actor) (*booking.Booking, error)
	ApproveBooking(ctx context.Context, req ApproveBookingRequest, actor staff.Actor) (*booking.Booking, error)
	CancelBooking(ctx context.Context, req CancelBookingRequest, actor staff.Actor) (*booking.Booking, error)
	SetBookingStatus(ctx context.Context, req SetStatusRequest, actor staff.Actor) (*StatusChangeResult, error)
	ChangeRoom(ctx context.Context, req ChangeRoomRequest, actor staff.Actor) (*RoomChangeResult, error)
	ExtendBooking(ctx context.Context, req ExtendBookingRequest, actor staff.Actor) (*ExtensionResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	defaults shared.BillingDefaults
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, defaults shared.BillingDefaults) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, defaults: defaults}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, actor staff.Actor) (*booking.Booking, error) {
	stay, err := booking.NewStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if len(req.Rooms) == 0 {
		return nil, booking.ErrNoRooms
	}
	now := uc.clock.Now()

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rooms := make([]booking.Room, 0, len(req.Rooms))
		for _, r := range req.Rooms {
			snap, derr := tx.Rooms().FindByID(ctx, r.RoomID)
			if derr != nil {
				return shared.RepoErr(derr, shared.ErrRoomNotFound)
			}
			room, derr := booking.NewRoom(snap.ID, snap.Number, snap.Price, snap.Capacity,
				booking.Occupancy{Adults: r.Adults, Children: r.Children})
			if derr != nil {
				return errs.Wrapf(derr, "room %s", snap.Number)
			}
			rooms = append(rooms, room)
		}

		b, derr := booking.NewBooking(req.GuestID, stay, rooms, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return shared.RepoErr(derr, nil)
		}
		if derr = reserveRooms(ctx, tx.Holds(), b.RoomIDs(), stay, b.ID()); derr != nil {
			return derr
		}

		created = b
		return appendEvent(ctx, tx, b.ID(), shared.TopicBookingCreated, map[string]any{
			"reference": b.Reference(),
			"guest_id":  b.GuestID(),
			"rooms":     len(rooms),
			"total":     money.Format(b.TotalAmount()),
			"actor_id":  actor.ID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *bookingUseCaseImpl) ApproveBooking(ctx context.Context, req ApproveBookingRequest, actor staff.Actor) (*booking.Booking, error) {
	var method billing.PaymentMethod
	if req.Downpayment.IsPositive() {
		m, err := billing.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			return nil, err
		}
		method = m
	}
	now := uc.clock.Now()

	var result *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, req.BookingID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		billed, derr := uc.billedTotal(ctx, tx, b)
		if derr != nil {
			return derr
		}
		changed, derr := b.Approve(req.Downpayment, billed, now)
		if derr != nil {
			return derr
		}
		result = b
		if !changed {
			return nil
		}

		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		if req.Downpayment.IsPositive() {
			p, perr := billing.NewPayment(b.ID(), billing.PaymentDownpayment, req.Downpayment, method, actor.ID, now)
			if perr != nil {
				return perr
			}
			if perr = tx.Payments().Create(ctx, p); perr != nil {
				return shared.RepoErr(perr, nil)
			}
		}
		return appendEvent(ctx, tx, b.ID(), shared.TopicBookingApproved, map[string]any{
			"downpayment": money.Format(req.Downpayment),
			"method":      string(method),
			"actor_id":    actor.ID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// billedTotal is the final total an invoice would carry now, before any
// discount, at the configured VAT rate.
func (uc *bookingUseCaseImpl) billedTotal(ctx context.Context, tx shared.Tx, b *booking.Booking) (decimal.Decimal, error) {
	charges, err := tx.Charges().ListByBooking(ctx, b.ID())
	if err != nil {
		return decimal.Zero, shared.RepoErr(err, nil)
	}
	bd, err := billing.Calculate(billing.Input{
		Aggregation: billing.Aggregate(b, charges),
		VATRate:     uc.defaults.VATRate,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return money.Round(bd.FinalTotal), nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, req CancelBookingRequest, actor staff.Actor) (*booking.Booking, error) {
	now := uc.clock.Now()

	var result *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, req.BookingID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		changed, derr := b.Cancel(now)
		if derr != nil {
			return derr
		}
		result = b
		if !changed {
			return nil
		}

		roomIDs := b.RoomIDs()
		if derr = lockRooms(ctx, tx.Holds(), roomIDs...); derr != nil {
			return derr
		}
		if derr = tx.Holds().DeleteByBooking(ctx, b.ID()); derr != nil {
			return shared.RepoErr(derr, nil)
		}
		// Charges may reference booking rooms, so they go first.
		if derr = tx.Charges().DeleteByBooking(ctx, b.ID()); derr != nil {
			return shared.RepoErr(derr, nil)
		}
		b.ReleaseRooms(now)
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		return appendEvent(ctx, tx, b.ID(), shared.TopicBookingCancelled, map[string]any{
			"reason":         req.Reason,
			"released_rooms": roomIDs,
			"actor_id":       actor.ID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) SetBookingStatus(ctx context.Context, req SetStatusRequest, actor staff.Actor) (*StatusChangeResult, error) {
	if !req.Status.IsValid() {
		return nil, booking.ErrInvalidStatus
	}
	now := uc.clock.Now()

	var result *StatusChangeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, req.BookingID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		from := b.Status()
		changed, derr := b.TransitionTo(req.Status, booking.PathStaff, now)
		if derr != nil {
			return derr
		}
		result = &StatusChangeResult{Booking: b, From: from, Changed: changed}
		if !changed {
			return nil
		}

		if !b.Status().HoldsRoom() {
			if derr = lockRooms(ctx, tx.Holds(), b.RoomIDs()...); derr != nil {
				return derr
			}
			if derr = tx.Holds().DeactivateByBooking(ctx, b.ID()); derr != nil {
				return shared.RepoErr(derr, nil)
			}
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		return appendEvent(ctx, tx, b.ID(), shared.TopicStatusChanged, map[string]any{
			"from":     from.String(),
			"to":       b.Status().String(),
			"actor_id": actor.ID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) ChangeRoom(ctx context.Context, req ChangeRoomRequest, actor staff.Actor) (*RoomChangeResult, error) {
	if req.OldRoomID == req.NewRoomID {
		return nil, booking.ErrSameRoom
	}
	now := uc.clock.Now()

	var result *RoomChangeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, req.BookingID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		if !b.Status().AllowsStayChange() {
			return errs.Wrapf(booking.ErrStayChangeNotAllowed, "status %s", b.Status())
		}
		current, ok := b.Room(req.OldRoomID)
		if !ok {
			return booking.ErrRoomNotAssigned
		}

		snap, derr := tx.Rooms().FindByID(ctx, req.NewRoomID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrRoomNotFound)
		}
		next, derr := booking.NewRoom(snap.ID, snap.Number, snap.Price, snap.Capacity, current.Occupancy())
		if derr != nil {
			return errs.Wrapf(derr, "room %s", snap.Number)
		}
		released, derr := b.ChangeRoom(req.OldRoomID, next, now)
		if derr != nil {
			return derr
		}
		billed, derr := uc.billedTotal(ctx, tx, b)
		if derr != nil {
			return derr
		}
		if covered := b.Downpayment().Add(b.PaidAmount()); billed.LessThan(covered) {
			return errs.Wrapf(booking.ErrTotalBelowPayment, "billed %s, paid %s", billed, covered)
		}

		// Release then reserve; a conflict on the new room rolls the release back.
		if derr = lockRooms(ctx, tx.Holds(), req.OldRoomID, req.NewRoomID); derr != nil {
			return derr
		}
		if derr = tx.Holds().Delete(ctx, req.OldRoomID, b.ID()); derr != nil {
			return shared.RepoErr(derr, nil)
		}
		if derr = reserveRoom(ctx, tx.Holds(), req.NewRoomID, b.Stay(), b.ID()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}

		assigned, _ := b.Room(req.NewRoomID)
		result = &RoomChangeResult{Booking: b, Released: released, Assigned: assigned}
		return appendEvent(ctx, tx, b.ID(), shared.TopicRoomChanged, map[string]any{
			"old_room_id": req.OldRoomID,
			"new_room_id": req.NewRoomID,
			"total":       money.Format(b.TotalAmount()),
			"actor_id":    actor.ID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) ExtendBooking(ctx context.Context, req ExtendBookingRequest, actor staff.Actor) (*ExtensionResult, error) {
	if req.Payment.IsNegative() {
		return nil, errs.Wrapf(extension.ErrPaymentOutOfRange, "payment %s", req.Payment)
	}
	var method billing.PaymentMethod
	if req.Payment.IsPositive() {
		m, err := billing.ParsePaymentMethod(req.PaymentMethod)
		if err != nil {
			return nil, err
		}
		method = m
	}
	now := uc.clock.Now()

	var result *ExtensionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, req.BookingID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		if !b.Status().AllowsStayChange() {
			return errs.Wrapf(booking.ErrStayChangeNotAllowed, "status %s", b.Status())
		}
		if req.ExpectedCheckout != nil && !req.ExpectedCheckout.Equal(b.Stay().CheckOut()) {
			return errs.Wrapf(shared.ErrStaleBooking, "expected checkout %s, stored %s",
				req.ExpectedCheckout.Format(time.RFC3339), b.Stay().CheckOut().Format(time.RFC3339))
		}

		plan, derr := extension.Calculate(b, req.NewCheckout)
		if derr != nil {
			return derr
		}
		settlement, derr := plan.Settle(req.Payment)
		if derr != nil {
			return derr
		}
		stay, derr := plan.ExtendedStay(b)
		if derr != nil {
			return derr
		}

		if derr = reserveRooms(ctx, tx.Holds(), b.RoomIDs(), stay, b.ID()); derr != nil {
			return derr
		}
		if derr = b.Extend(plan.NewCheckout, plan.AdditionalAmount, settlement.PaidNow, now); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		if settlement.PaidNow.IsPositive() {
			p, perr := billing.NewPayment(b.ID(), billing.PaymentExtension, settlement.PaidNow, method, actor.ID, now)
			if perr != nil {
				return perr
			}
			if perr = tx.Payments().Create(ctx, p); perr != nil {
				return shared.RepoErr(perr, nil)
			}
		}

		result = &ExtensionResult{Booking: b, Plan: plan, Settlement: settlement}
		return appendEvent(ctx, tx, b.ID(), shared.TopicBookingExtended, map[string]any{
			"previous_checkout": plan.CurrentCheckout,
			"new_checkout":      plan.NewCheckout,
			"nights":            plan.AdditionalNights,
			"amount":            money.Format(plan.AdditionalAmount),
			"paid_now":          money.Format(settlement.PaidNow),
			"actor_id":          actor.ID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
