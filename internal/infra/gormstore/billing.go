package gormstore

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chargeRepository struct {
	db *gorm.DB
}

func (r *chargeRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Charge, error) {
	var m chargeModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, wrapErr("failed to find charge", err)
	}
	c, err := chargeFromModel(m)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt charge row", err)
	}
	return c, nil
}

func (r *chargeRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*billing.Charge, error) {
	var models []chargeModel
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("created_at, id").Find(&models).Error
	if err != nil {
		return nil, wrapErr("failed to list charges", err)
	}
	charges := make([]*billing.Charge, 0, len(models))
	for _, m := range models {
		c, err := chargeFromModel(m)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt charge row", err)
		}
		charges = append(charges, c)
	}
	return charges, nil
}

func (r *chargeRepository) Create(ctx context.Context, c *billing.Charge) error {
	m := chargeToModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr("failed to create charge", err)
	}
	return nil
}

func (r *chargeRepository) UpdateStatus(ctx context.Context, c *billing.Charge) error {
	m := chargeToModel(c)
	res := r.db.WithContext(ctx).Model(&chargeModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{"status": m.Status, "resolved_at": m.ResolvedAt})
	if res.Error != nil {
		return wrapErr("failed to update charge", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrapErr("charge not found", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *chargeRepository) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Delete(&chargeModel{}).Error; err != nil {
		return wrapErr("failed to delete charges", err)
	}
	return nil
}

type discountRepository struct {
	db *gorm.DB
}

func (r *discountRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Discount, error) {
	var m discountModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, wrapErr("failed to find discount", err)
	}
	d, err := billing.ReconstructDiscount(m.ID, m.Name, m.Percentage, m.FixedAmount, m.CreatedAt.UTC())
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt discount row", err)
	}
	return d, nil
}

func (r *discountRepository) Create(ctx context.Context, d *billing.Discount) error {
	m := discountModel{
		ID:          d.ID(),
		Name:        d.Name(),
		Percentage:  d.Percentage(),
		FixedAmount: d.FixedAmount(),
		CreatedAt:   d.CreatedAt().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr("failed to create discount", err)
	}
	return nil
}

type invoiceRepository struct {
	db *gorm.DB
}

func (r *invoiceRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*billing.Invoice, error) {
	var m invoiceModel
	if err := r.db.WithContext(ctx).First(&m, "booking_id = ?", bookingID).Error; err != nil {
		return nil, wrapErr("failed to find invoice", err)
	}
	inv, err := invoiceFromModel(m)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt invoice row", err)
	}
	return inv, nil
}

func (r *invoiceRepository) Create(ctx context.Context, inv *billing.Invoice) error {
	m := invoiceToModel(inv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr("failed to create invoice", err)
	}
	return nil
}

type paymentRepository struct {
	db *gorm.DB
}

func (r *paymentRepository) Create(ctx context.Context, p *billing.Payment) error {
	m := paymentModel{
		ID:         p.ID(),
		BookingID:  p.BookingID(),
		Kind:       string(p.Kind()),
		Amount:     p.Amount(),
		Method:     string(p.Method()),
		RecordedBy: p.RecordedBy(),
		CreatedAt:  p.CreatedAt().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr("failed to record payment", err)
	}
	return nil
}

func (r *paymentRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*billing.Payment, error) {
	var models []paymentModel
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("created_at, id").Find(&models).Error
	if err != nil {
		return nil, wrapErr("failed to list payments", err)
	}
	payments := make([]*billing.Payment, 0, len(models))
	for _, m := range models {
		method, err := billing.ParsePaymentMethod(m.Method)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt payment row", err)
		}
		payments = append(payments, billing.ReconstructPayment(
			m.ID, m.BookingID, billing.PaymentKind(m.Kind), m.Amount, method, m.RecordedBy, m.CreatedAt.UTC()))
	}
	return payments, nil
}

type eventRepository struct {
	db *gorm.DB
}

func (r *eventRepository) Append(ctx context.Context, e shared.Event) error {
	m := eventModel{
		ID:         e.ID,
		BookingID:  e.BookingID,
		Topic:      e.Topic,
		Payload:    e.Payload,
		OccurredAt: e.OccurredAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapErr("failed to append booking event", err)
	}
	return nil
}
