package gormstore

import (
	"context"

	"hotel-booking-engine/internal/domain/availability"
	"hotel-booking-engine/internal/domain/booking"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type holdRepository struct {
	db *gorm.DB
}

// LockRoom is a no-op: transactions never interleave on the single connection.
func (r *holdRepository) LockRoom(context.Context, uuid.UUID) error {
	return nil
}

func (r *holdRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]availability.Hold, error) {
	var models []holdModel
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Find(&models).Error; err != nil {
		return nil, wrapErr("failed to list room holds", err)
	}

	holds := make([]availability.Hold, 0, len(models))
	for _, m := range models {
		stay, err := booking.NewStay(m.CheckIn.UTC(), m.CheckOut.UTC())
		if err != nil {
			return nil, wrapErr("corrupt room hold", err)
		}
		holds = append(holds, availability.Hold{RoomID: m.RoomID, BookingID: m.BookingID, Stay: stay, Active: m.Active})
	}
	return holds, nil
}

func (r *holdRepository) Put(ctx context.Context, h availability.Hold) error {
	m := holdModel{
		RoomID:    h.RoomID,
		BookingID: h.BookingID,
		CheckIn:   h.Stay.CheckIn().UTC(),
		CheckOut:  h.Stay.CheckOut().UTC(),
		Active:    h.Active,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}, {Name: "booking_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"check_in", "check_out", "active"}),
		}).
		Create(&m).Error
	if err != nil {
		return wrapErr("failed to save room hold", err)
	}
	return nil
}

func (r *holdRepository) Delete(ctx context.Context, roomID, bookingID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND booking_id = ?", roomID, bookingID).
		Delete(&holdModel{}).Error
	if err != nil {
		return wrapErr("failed to release room hold", err)
	}
	return nil
}

func (r *holdRepository) DeactivateByBooking(ctx context.Context, bookingID uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&holdModel{}).
		Where("booking_id = ?", bookingID).
		Update("active", false).Error
	if err != nil {
		return wrapErr("failed to deactivate room holds", err)
	}
	return nil
}

func (r *holdRepository) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Delete(&holdModel{}).Error; err != nil {
		return wrapErr("failed to delete room holds", err)
	}
	return nil
}
