package repository

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/pgconv"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomCatalog struct {
	db DBTX
}

func NewRoomCatalog(db DBTX) *RoomCatalog {
	return &RoomCatalog{db: db}
}

func (r *RoomCatalog) FindByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var (
		snap  shared.RoomSnapshot
		price pgtype.Numeric
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, room_number, room_type, price, capacity FROM rooms WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.Number, &snap.RoomType, &price, &snap.Capacity)
	if err != nil {
		return nil, wrapErr("failed to find room", err)
	}
	if snap.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt room price", err)
	}
	return &snap, nil
}
