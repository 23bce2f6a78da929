package repository

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const chargeColumns = `id, booking_id, booking_room_id, category, description, unit_price, quantity, status, created_at, resolved_at`

type ChargeRepository struct {
	db DBTX
}

func NewChargeRepository(db DBTX) *ChargeRepository {
	return &ChargeRepository{db: db}
}

func scanCharge(row pgx.Row) (converter.ChargeRow, error) {
	var cr converter.ChargeRow
	err := row.Scan(&cr.ID, &cr.BookingID, &cr.BookingRoomID, &cr.Category, &cr.Description,
		&cr.UnitPrice, &cr.Quantity, &cr.Status, &cr.CreatedAt, &cr.ResolvedAt)
	return cr, err
}

func (r *ChargeRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Charge, error) {
	row, err := scanCharge(r.db.QueryRow(ctx, `SELECT `+chargeColumns+` FROM charges WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr("failed to find charge", err)
	}
	c, err := converter.ChargeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt charge row", err)
	}
	return c, nil
}

func (r *ChargeRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*billing.Charge, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+chargeColumns+` FROM charges WHERE booking_id = $1 ORDER BY created_at, id`, bookingID)
	if err != nil {
		return nil, wrapErr("failed to list charges", err)
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (converter.ChargeRow, error) {
		return scanCharge(row)
	})
	if err != nil {
		return nil, wrapErr("failed to scan charges", err)
	}

	charges := make([]*billing.Charge, 0, len(raw))
	for _, cr := range raw {
		c, err := converter.ChargeFromRow(cr)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt charge row", err)
		}
		charges = append(charges, c)
	}
	return charges, nil
}

func (r *ChargeRepository) Create(ctx context.Context, c *billing.Charge) error {
	row := converter.ChargeToRow(c)
	_, err := r.db.Exec(ctx, `
		INSERT INTO charges (`+chargeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		row.ID, row.BookingID, row.BookingRoomID, row.Category, row.Description,
		row.UnitPrice, row.Quantity, row.Status, row.CreatedAt, row.ResolvedAt,
	)
	if err != nil {
		return wrapErr("failed to create charge", err)
	}
	return nil
}

func (r *ChargeRepository) UpdateStatus(ctx context.Context, c *billing.Charge) error {
	row := converter.ChargeToRow(c)
	tag, err := r.db.Exec(ctx,
		`UPDATE charges SET status = $2, resolved_at = $3 WHERE id = $1`,
		row.ID, row.Status, row.ResolvedAt,
	)
	if err != nil {
		return wrapErr("failed to update charge", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("charge not found")
	}
	return nil
}

func (r *ChargeRepository) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM charges WHERE booking_id = $1`, bookingID); err != nil {
		return wrapErr("failed to delete charges", err)
	}
	return nil
}
