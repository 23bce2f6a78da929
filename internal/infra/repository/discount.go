package repository

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DiscountRepository struct {
	db DBTX
}

func NewDiscountRepository(db DBTX) *DiscountRepository {
	return &DiscountRepository{db: db}
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Discount, error) {
	var row converter.DiscountRow
	err := r.db.QueryRow(ctx,
		`SELECT id, name, percentage, fixed_amount, created_at FROM discounts WHERE id = $1`, id,
	).Scan(&row.ID, &row.Name, &row.Percentage, &row.FixedAmount, &row.CreatedAt)
	if err != nil {
		return nil, wrapErr("failed to find discount", err)
	}
	d, err := converter.DiscountFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt discount row", err)
	}
	return d, nil
}

func (r *DiscountRepository) Create(ctx context.Context, d *billing.Discount) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO discounts (id, name, percentage, fixed_amount, created_at) VALUES ($1, $2, $3, $4, $5)`,
		d.ID(), d.Name(),
		pgconv.NumericPtrFromDecimal(d.Percentage()),
		pgconv.NumericPtrFromDecimal(d.FixedAmount()),
		d.CreatedAt(),
	)
	if err != nil {
		return wrapErr("failed to create discount", err)
	}
	return nil
}
