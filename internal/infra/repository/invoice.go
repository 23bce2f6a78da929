package repository

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/infra/repository/converter"

	"github.com/google/uuid"
)

const invoiceColumns = `id, booking_id, discount_id, room_total, charge_total, subtotal, discount_amount,
	amount_after_discount, vat_rate, vat_amount, final_total, downpayment, extension_payments, balance,
	payment_method, status, created_at, updated_at`

type InvoiceRepository struct {
	db DBTX
}

func NewInvoiceRepository(db DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*billing.Invoice, error) {
	var row converter.InvoiceRow
	err := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE booking_id = $1`, bookingID).Scan(
		&row.ID, &row.BookingID, &row.DiscountID, &row.RoomTotal, &row.ChargeTotal, &row.Subtotal,
		&row.DiscountAmount, &row.AmountAfterDiscount, &row.VATRate, &row.VATAmount, &row.FinalTotal,
		&row.Downpayment, &row.ExtensionPayments, &row.Balance, &row.PaymentMethod, &row.Status,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("failed to find invoice", err)
	}
	inv, err := converter.InvoiceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "corrupt invoice row", err)
	}
	return inv, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *billing.Invoice) error {
	row := converter.InvoiceToRow(inv)
	_, err := r.db.Exec(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		row.ID, row.BookingID, row.DiscountID, row.RoomTotal, row.ChargeTotal, row.Subtotal,
		row.DiscountAmount, row.AmountAfterDiscount, row.VATRate, row.VATAmount, row.FinalTotal,
		row.Downpayment, row.ExtensionPayments, row.Balance, row.PaymentMethod, row.Status,
		row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return wrapErr("failed to create invoice", err)
	}
	return nil
}
