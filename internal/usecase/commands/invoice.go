package commands

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/commands/invoice_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/clock"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/pkg/patch"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	BookingID  uuid.UUID
	DiscountID *uuid.UUID
	VATRate    *decimal.Decimal
	// Downpayment overrides the booking's recorded downpayment when set.
	Downpayment   *decimal.Decimal
	PaymentMethod string
}

type InvoiceCommands interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest, actor staff.Actor) (*billing.Invoice, error)
}

type invoiceUseCaseImpl struct {
	uow      shared.UnitOfWork
	archive  shared.InvoiceArchive
	clock    clock.Clock
	defaults shared.BillingDefaults
}

func NewInvoiceUseCase(uow shared.UnitOfWork, archive shared.InvoiceArchive, clk clock.Clock, defaults shared.BillingDefaults) InvoiceCommands {
	return &invoiceUseCaseImpl{uow: uow, archive: archive, clock: clk, defaults: defaults}
}

func (uc *invoiceUseCaseImpl) CreateInvoice(ctx context.Context, req CreateInvoiceRequest, actor staff.Actor) (*billing.Invoice, error) {
	method, err := billing.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	vat := patch.Coalesce(req.VATRate, uc.defaults.VATRate)
	now := uc.clock.Now()

	var (
		invoice   *billing.Invoice
		reference string
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindForUpdate(ctx, req.BookingID)
		if derr != nil {
			return shared.RepoErr(derr, shared.ErrBookingNotFound)
		}
		if !b.Status().AllowsInvoicing() {
			return errs.Wrapf(billing.ErrNotInvoicable, "status %s", b.Status())
		}

		_, derr = tx.Invoices().FindByBooking(ctx, b.ID())
		switch {
		case derr == nil:
			return billing.ErrInvoiceExists
		case !infra.IsKind(derr, infra.KindNotFound):
			return shared.RepoErr(derr, nil)
		}

		charges, derr := tx.Charges().ListByBooking(ctx, b.ID())
		if derr != nil {
			return shared.RepoErr(derr, nil)
		}
		agg := billing.Aggregate(b, charges)
		if derr = billing.Validate(agg).Err(); derr != nil {
			return derr
		}

		var discount *billing.Discount
		if req.DiscountID != nil {
			discount, derr = tx.Discounts().FindByID(ctx, *req.DiscountID)
			if derr != nil {
				return shared.RepoErr(derr, shared.ErrDiscountNotFound)
			}
		}

		downpayment := patch.Coalesce(req.Downpayment, b.Downpayment())
		breakdown, derr := billing.Calculate(billing.Input{
			Aggregation:       agg,
			Discount:          discount,
			VATRate:           vat,
			Downpayment:       downpayment,
			ExtensionPayments: b.PaidAmount(),
		})
		if derr != nil {
			return derr
		}

		inv := billing.NewInvoice(b.ID(), breakdown, method, req.DiscountID, now)
		if derr = tx.Invoices().Create(ctx, inv); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return billing.ErrInvoiceExists
			}
			return shared.RepoErr(derr, nil)
		}

		invoice, reference = inv, b.Reference()
		return appendEvent(ctx, tx, b.ID(), shared.TopicInvoiceCreated, map[string]any{
			"invoice_id":  inv.ID(),
			"final_total": money.Format(inv.Breakdown().FinalTotal),
			"balance":     money.Format(inv.Balance()),
			"status":      string(inv.Status()),
			"actor_id":    actor.ID,
		}, now)
	})
	if err != nil {
		return nil, err
	}

	// The archive copy is best effort; the booking store stays authoritative.
	if uc.archive != nil {
		if aerr := uc.archive.Archive(ctx, invoice, reference); aerr != nil {
			slog.Warn("invoice archive failed",
				"invoice_id", invoice.ID().String(),
				"booking_id", invoice.BookingID().String(),
				"error", aerr.Error())
		}
	}
	return invoice, nil
}
