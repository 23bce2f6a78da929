package commands

//go:generate mockgen -source=charge.go -destination=../../../tests/mock/commands/charge_mock.go -package=commandsmock

import (
	"context"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddChargeRequest struct {
	BookingID     uuid.UUID
	BookingRoomID *uuid.UUID
	Category      string
	Description   string
	UnitPrice     decimal.Decimal
	Quantity      int
}

type ResolveChargeRequest struct {
	BookingID uuid.UUID
	ChargeID  uuid.UUID
}

type ChargeCommands interface {
	AddCharge(ctx context.Context, req AddChargeRequest, actor staff.Actor) (*billing.Charge, error)
	ApproveCharge(ctx context.Context, req ResolveChargeRequest, actor staff.Actor) (*billing.Charge, error)
	RejectCharge(ctx context.Context, req ResolveChargeRequest, actor staff.Actor) (*billing.Charge, error)
}

type chargeUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewChargeUseCase(uow shared.UnitOfWork, clk clock.Clock) ChargeCommands {
	return &chargeUseCaseImpl{uow: uow, clock: clk}
}

func (uc *chargeUseCaseImpl) AddCharge(ctx context.Context, req AddChargeRequest, actor staff.Actor) (*billing.Charge, error) {
	now := uc.clock.Now()
	charge, err := billing.NewCharge(req.BookingID, req.BookingRoomID, req.Category, req.Description, req.UnitPrice, req.Quantity, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The booking row lock orders charge writes against invoice creation.
		b, derr := tx.Bookings().FindForUpdate(ctx, req.BookingID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		if derr = b.EnsureOpen(); derr != nil {
			return derr
		}
		if req.BookingRoomID != nil && !hasBookingRoom(b.Rooms(), *req.BookingRoomID) {
			return errs.Wrapf(billing.ErrChargeForeignRm, "booking room %s", *req.BookingRoomID)
		}
		if derr = tx.Charges().Create(ctx, charge); derr != nil {
			return shared.RepoErr(derr, nil)
		}
		return appendEvent(ctx, tx, b.ID(), shared.TopicChargeAdded, map[string]any{
			"charge_id": charge.ID(),
			"category":  charge.Category(),
			"amount":    money.Format(charge.Amount()),
			"actor_id":  actor.ID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return charge, nil
}

func (uc *chargeUseCaseImpl) ApproveCharge(ctx context.Context, req ResolveChargeRequest, actor staff.Actor) (*billing.Charge, error) {
	return uc.resolve(ctx, req, actor, billing.ChargeApproved)
}

func (uc *chargeUseCaseImpl) RejectCharge(ctx context.Context, req ResolveChargeRequest, actor staff.Actor) (*billing.Charge, error) {
	return uc.resolve(ctx, req, actor, billing.ChargeRejected)
}

func (uc *chargeUseCaseImpl) resolve(ctx context.Context, req ResolveChargeRequest, actor staff.Actor, to billing.ChargeStatus) (*billing.Charge, error) {
	now := uc.clock.Now()

	var result *billing.Charge
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, req.BookingID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		c, derr := tx.Charges().FindByID(ctx, req.ChargeID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrChargeNotFound)
		}
		if c.BookingID() != b.ID() {
			return errs.Wrapf(shared.ErrChargeNotFound, "charge %s on booking %s", c.ID(), b.ID())
		}

		result = c
		if c.Status() == to {
			return nil
		}
		if to == billing.ChargeApproved {
			derr = c.Approve(now)
		} else {
			derr = c.Reject(now)
		}
		if derr != nil {
			return derr
		}
		if derr = tx.Charges().UpdateStatus(ctx, c); derr != nil {
			return shared.RepoErr(derr, shared.ErrChargeNotFound)
		}
		return appendEvent(ctx, tx, b.ID(), shared.TopicChargeResolved, map[string]any{
			"charge_id": c.ID(),
			"status":    string(c.Status()),
			"actor_id":  actor.ID,
		}, now)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func hasBookingRoom(rooms []booking.Room, id uuid.UUID) bool {
	for _, r := range rooms {
		if r.ID() == id {
			return true
		}
	}
	return false
}
