package repository

import (
	"context"

	"hotel-booking-engine/internal/usecase/shared"
)

type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Append(ctx context.Context, e shared.Event) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO booking_events (id, booking_id, topic, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.BookingID, e.Topic, e.Payload, e.OccurredAt,
	)
	if err != nil {
		return wrapErr("failed to append booking event", err)
	}
	return nil
}
