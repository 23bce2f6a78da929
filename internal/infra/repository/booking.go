package repository

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, reference, guest_id, check_in, check_out, status_id,
	total_amount, downpayment, paid_amount, version, created_at, updated_at`

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.find(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.find(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
}

func (r *BookingRepository) find(ctx context.Context, query string, id uuid.UUID) (*booking.Booking, error) {
	var row converter.BookingRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Reference, &row.GuestID, &row.CheckIn, &row.CheckOut, &row.StatusID,
		&row.TotalAmount, &row.Downpayment, &row.PaidAmount, &row.Version, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("failed to find booking", err)
	}

	rooms, err := r.rooms(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := converter.BookingFromRows(row, rooms)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt booking row", err)
	}
	return b, nil
}

func (r *BookingRepository) rooms(ctx context.Context, bookingID uuid.UUID) ([]converter.BookingRoomRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, booking_id, room_id, room_number, price_snapshot, adults, children, position
		FROM booking_rooms
		WHERE booking_id = $1
		ORDER BY position`, bookingID)
	if err != nil {
		return nil, wrapErr("failed to load booking rooms", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (converter.BookingRoomRow, error) {
		var rr converter.BookingRoomRow
		err := row.Scan(&rr.ID, &rr.BookingID, &rr.RoomID, &rr.RoomNumber, &rr.PriceSnapshot, &rr.Adults, &rr.Children, &rr.Position)
		return rr, err
	})
	if err != nil {
		return nil, wrapErr("failed to scan booking rooms", err)
	}
	return out, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	row := converter.BookingToRow(b)
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		row.ID, row.Reference, row.GuestID, row.CheckIn, row.CheckOut, row.StatusID,
		row.TotalAmount, row.Downpayment, row.PaidAmount, row.Version, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return wrapErr("failed to create booking", err)
	}
	return r.syncRooms(ctx, b)
}

// Update writes b guarded by its version and then mirrors its room list.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	row := converter.BookingToRow(b)
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET check_in = $3, check_out = $4, status_id = $5,
		    total_amount = $6, downpayment = $7, paid_amount = $8,
		    version = version + 1, updated_at = $9
		WHERE id = $1 AND version = $2`,
		row.ID, row.Version, row.CheckIn, row.CheckOut, row.StatusID,
		row.TotalAmount, row.Downpayment, row.PaidAmount, row.UpdatedAt,
	)
	if err != nil {
		return wrapErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindStale, "booking version mismatch", nil)
	}
	b.IncrementVersion()
	return r.syncRooms(ctx, b)
}

func (r *BookingRepository) syncRooms(ctx context.Context, b *booking.Booking) error {
	rows := converter.BookingRoomsToRows(b)
	keep := make([]string, len(rows))
	for i, rr := range rows {
		keep[i] = rr.ID.String()
	}

	if _, err := r.db.Exec(ctx,
		`DELETE FROM booking_rooms WHERE booking_id = $1 AND NOT (id::text = ANY($2))`,
		b.ID(), keep,
	); err != nil {
		return wrapErr("failed to prune booking rooms", err)
	}

	for _, rr := range rows {
		_, err := r.db.Exec(ctx, `
			INSERT INTO booking_rooms (id, booking_id, room_id, room_number, price_snapshot, adults, children, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE
			SET room_id = EXCLUDED.room_id,
			    room_number = EXCLUDED.room_number,
			    price_snapshot = EXCLUDED.price_snapshot,
			    adults = EXCLUDED.adults,
			    children = EXCLUDED.children,
			    position = EXCLUDED.position`,
			rr.ID, rr.BookingID, rr.RoomID, rr.RoomNumber, rr.PriceSnapshot, rr.Adults, rr.Children, rr.Position,
		)
		if err != nil {
			return wrapErr("failed to save booking room", err)
		}
	}
	return nil
}
