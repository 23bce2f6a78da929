package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
	"time"

	"hotel-booking-engine/internal/domain/availability"
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// lockRooms takes the per-room locks in ascending id order so two transactions
// touching the same rooms always queue in the same order.
func lockRooms(ctx context.Context, holds shared.HoldRepository, roomIDs ...uuid.UUID) error {
	ids := slices.Clone(roomIDs)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)
	for _, id := range ids {
		if err := holds.LockRoom(ctx, id); err != nil {
			return shared.RepoErr(err, nil)
		}
	}
	return nil
}

// reserveRoom checks the room's ledger and stores the booking's hold. The room
// must already be locked.
func reserveRoom(ctx context.Context, holds shared.HoldRepository, roomID uuid.UUID, stay booking.Stay, bookingID uuid.UUID) error {
	existing, err := holds.ListByRoom(ctx, roomID)
	if err != nil {
		return shared.RepoErr(err, nil)
	}
	hold, err := availability.NewLedger(existing).Reserve(roomID, stay, bookingID)
	if err != nil {
		return err
	}
	return shared.RepoErr(holds.Put(ctx, hold), nil)
}

func reserveRooms(ctx context.Context, holds shared.HoldRepository, roomIDs []uuid.UUID, stay booking.Stay, bookingID uuid.UUID) error {
	if err := lockRooms(ctx, holds, roomIDs...); err != nil {
		return err
	}
	for _, id := range roomIDs {
		if err := reserveRoom(ctx, holds, id, stay, bookingID); err != nil {
			return err
		}
	}
	return nil
}

func appendEvent(ctx context.Context, tx shared.Tx, bookingID uuid.UUID, topic string, payload map[string]any, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return shared.RepoErr(tx.Events().Append(ctx, shared.Event{
		ID:         uuid.New(),
		BookingID:  bookingID,
		Topic:      topic,
		Payload:    body,
		OccurredAt: at,
	}), nil)
}
