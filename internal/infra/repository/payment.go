package repository

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *billing.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, booking_id, kind, amount, method, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID(), p.BookingID(), string(p.Kind()), pgconv.NumericFromDecimal(p.Amount()),
		string(p.Method()), p.RecordedBy(), p.CreatedAt(),
	)
	if err != nil {
		return wrapErr("failed to record payment", err)
	}
	return nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*billing.Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, booking_id, kind, amount, method, recorded_by, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at, id`, bookingID)
	if err != nil {
		return nil, wrapErr("failed to list payments", err)
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (converter.PaymentRow, error) {
		var pr converter.PaymentRow
		err := row.Scan(&pr.ID, &pr.BookingID, &pr.Kind, &pr.Amount, &pr.Method, &pr.RecordedBy, &pr.CreatedAt)
		return pr, err
	})
	if err != nil {
		return nil, wrapErr("failed to scan payments", err)
	}

	payments := make([]*billing.Payment, 0, len(raw))
	for _, pr := range raw {
		p, err := converter.PaymentFromRow(pr)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt payment row", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}
