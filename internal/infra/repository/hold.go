package repository

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/availability"
	"hotel-booking-engine/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HoldRepository struct {
	db DBTX
}

func NewHoldRepository(db DBTX) *HoldRepository {
	return &HoldRepository{db: db}
}

// LockRoom takes a transaction-scoped advisory lock keyed by the room id.
func (r *HoldRepository) LockRoom(ctx context.Context, roomID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, roomID.String()); err != nil {
		return wrapErr("failed to lock room", err)
	}
	return nil
}

func (r *HoldRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]availability.Hold, error) {
	rows, err := r.db.Query(ctx,
		`SELECT room_id, booking_id, check_in, check_out, active FROM room_holds WHERE room_id = $1`, roomID)
	if err != nil {
		return nil, wrapErr("failed to list room holds", err)
	}
	holds, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (availability.Hold, error) {
		var h availability.Hold
		var in, out time.Time
		if err := row.Scan(&h.RoomID, &h.BookingID, &in, &out, &h.Active); err != nil {
			return h, err
		}
		stay, err := booking.NewStay(in.UTC(), out.UTC())
		if err != nil {
			return h, err
		}
		h.Stay = stay
		return h, nil
	})
	if err != nil {
		return nil, wrapErr("failed to scan room holds", err)
	}
	return holds, nil
}

func (r *HoldRepository) Put(ctx context.Context, h availability.Hold) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO room_holds (room_id, booking_id, check_in, check_out, active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (room_id, booking_id) DO UPDATE
		SET check_in = EXCLUDED.check_in, check_out = EXCLUDED.check_out, active = EXCLUDED.active`,
		h.RoomID, h.BookingID, h.Stay.CheckIn(), h.Stay.CheckOut(), h.Active,
	)
	if err != nil {
		return wrapErr("failed to save room hold", err)
	}
	return nil
}

func (r *HoldRepository) Delete(ctx context.Context, roomID, bookingID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM room_holds WHERE room_id = $1 AND booking_id = $2`, roomID, bookingID); err != nil {
		return wrapErr("failed to release room hold", err)
	}
	return nil
}

func (r *HoldRepository) DeactivateByBooking(ctx context.Context, bookingID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `UPDATE room_holds SET active = false WHERE booking_id = $1`, bookingID); err != nil {
		return wrapErr("failed to deactivate room holds", err)
	}
	return nil
}

func (r *HoldRepository) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM room_holds WHERE booking_id = $1`, bookingID); err != nil {
		return wrapErr("failed to delete room holds", err)
	}
	return nil
}
