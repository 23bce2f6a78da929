package gormstore

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepository struct {
	db *gorm.DB
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, wrapErr("failed to find booking", err)
	}

	var rooms []bookingRoomModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", id).Order("position").Find(&rooms).Error; err != nil {
		return nil, wrapErr("failed to load booking rooms", err)
	}

	b, err := bookingFromModels(m, rooms)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt booking row", err)
	}
	return b, nil
}

// FindForUpdate needs no lock clause: the single connection already excludes other writers.
func (r *bookingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	m := bookingToModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr("failed to create booking", err)
	}
	return r.syncRooms(ctx, b)
}

func (r *bookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	m := bookingToModel(b)
	res := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND version = ?", m.ID, m.Version).
		Updates(map[string]any{
			"check_in":     m.CheckIn,
			"check_out":    m.CheckOut,
			"status_id":    m.StatusID,
			"total_amount": m.TotalAmount,
			"downpayment":  m.Downpayment,
			"paid_amount":  m.PaidAmount,
			"version":      gorm.Expr("version + 1"),
			"updated_at":   m.UpdatedAt,
		})
	if res.Error != nil {
		return wrapErr("failed to update booking", res.Error)
	}
	if res.RowsAffected == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindStale, "booking version mismatch", nil)
	}
	b.IncrementVersion()
	return r.syncRooms(ctx, b)
}

func (r *bookingRepository) syncRooms(ctx context.Context, b *booking.Booking) error {
	rows := bookingRoomsToModels(b)
	keep := make([]uuid.UUID, len(rows))
	for i, rr := range rows {
		keep[i] = rr.ID
	}

	del := r.db.WithContext(ctx).Where("booking_id = ?", b.ID())
	if len(keep) > 0 {
		del = del.Where("id NOT IN ?", keep)
	}
	if err := del.Delete(&bookingRoomModel{}).Error; err != nil {
		return wrapErr("failed to prune booking rooms", err)
	}
	if len(rows) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&rows).Error
	if err != nil {
		return wrapErr("failed to save booking rooms", err)
	}
	return nil
}

type roomCatalog struct {
	db *gorm.DB
}

func (r *roomCatalog) FindByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var m roomModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, wrapErr("failed to find room", err)
	}
	return &shared.RoomSnapshot{
		ID:       m.ID,
		Number:   m.Number,
		RoomType: m.RoomType,
		Price:    m.Price,
		Capacity: m.Capacity,
	}, nil
}

// PutRooms upserts catalog rooms. The catalog is owned elsewhere; this feeds
// local runs and tests.
func PutRooms(ctx context.Context, db *gorm.DB, rooms ...shared.RoomSnapshot) error {
	if len(rooms) == 0 {
		return nil
	}
	models := make([]roomModel, len(rooms))
	for i, r := range rooms {
		models[i] = roomModel{ID: r.ID, Number: r.Number, RoomType: r.RoomType, Price: r.Price, Capacity: r.Capacity}
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&models).Error
	if err != nil {
		return wrapErr("failed to save rooms", err)
	}
	return nil
}
