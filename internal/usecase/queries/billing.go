package queries

//go:generate mockgen -source=billing.go -destination=../../../tests/mock/queries/billing_mock.go -package=queriesmock

import (
	"context"
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/domain/extension"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/patch"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CalculateBillingRequest struct {
	BookingID  uuid.UUID
	DiscountID *uuid.UUID
	// VATRate and Downpayment fall back to the configured rate and the
	// booking's recorded downpayment.
	VATRate     *decimal.Decimal
	Downpayment *decimal.Decimal
}

type BillingQueries interface {
	ValidateBilling(ctx context.Context, bookingID uuid.UUID) (*ValidationView, error)
	CalculateBilling(ctx context.Context, req CalculateBillingRequest) (*CalculationView, error)
	GetInvoice(ctx context.Context, bookingID uuid.UUID) (*InvoiceView, error)
	PreviewExtension(ctx context.Context, bookingID uuid.UUID, newCheckout time.Time) (*ExtensionPlanView, error)
	GetDiscount(ctx context.Context, id uuid.UUID) (*DiscountView, error)
}

type billingQueriesImpl struct {
	uow      shared.UnitOfWork
	defaults shared.BillingDefaults
}

func NewBillingQueries(uow shared.UnitOfWork, defaults shared.BillingDefaults) BillingQueries {
	return &billingQueriesImpl{uow: uow, defaults: defaults}
}

func (q *billingQueriesImpl) aggregate(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, billing.Aggregation, error) {
	b, err := tx.Bookings().FindByID(ctx, bookingID)
	if err != nil {
		return nil, billing.Aggregation{}, shared.RepoErr(err, shared.ErrBookingNotFound)
	}
	charges, err := tx.Charges().ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, billing.Aggregation{}, shared.RepoErr(err, nil)
	}
	return b, billing.Aggregate(b, charges), nil
}

func (q *billingQueriesImpl) ValidateBilling(ctx context.Context, bookingID uuid.UUID) (*ValidationView, error) {
	var view ValidationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, agg, err := q.aggregate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		view = NewValidationView(billing.Validate(agg))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (q *billingQueriesImpl) CalculateBilling(ctx context.Context, req CalculateBillingRequest) (*CalculationView, error) {
	vat := patch.Coalesce(req.VATRate, q.defaults.VATRate)

	var view *CalculationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, agg, err := q.aggregate(ctx, tx, req.BookingID)
		if err != nil {
			return err
		}

		var discount *billing.Discount
		if req.DiscountID != nil {
			discount, err = tx.Discounts().FindByID(ctx, *req.DiscountID)
			if err != nil {
				return shared.RepoErr(err, shared.ErrDiscountNotFound)
			}
		}

		downpayment := patch.Coalesce(req.Downpayment, b.Downpayment())
		bd, err := billing.Calculate(billing.Input{
			Aggregation:       agg,
			Discount:          discount,
			VATRate:           vat,
			Downpayment:       downpayment,
			ExtensionPayments: b.PaidAmount(),
		})
		if err != nil {
			return err
		}
		view = newCalculationView(agg, bd, discount)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *billingQueriesImpl) GetInvoice(ctx context.Context, bookingID uuid.UUID) (*InvoiceView, error) {
	var view *InvoiceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, err := tx.Invoices().FindByBooking(ctx, bookingID)
		if err != nil {
			return shared.RepoErr(err, shared.ErrInvoiceNotFound)
		}
		view = NewInvoiceView(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *billingQueriesImpl) PreviewExtension(ctx context.Context, bookingID uuid.UUID, newCheckout time.Time) (*ExtensionPlanView, error) {
	var view *ExtensionPlanView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, bookingID)
		if err != nil {
			return shared.RepoErr(err, shared.ErrBookingNotFound)
		}
		if !b.Status().AllowsStayChange() {
			return errs.Wrapf(booking.ErrStayChangeNotAllowed, "status %s", b.Status())
		}
		plan, err := extension.Calculate(b, newCheckout)
		if err != nil {
			return err
		}
		view = NewExtensionPlanView(plan, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *billingQueriesImpl) GetDiscount(ctx context.Context, id uuid.UUID) (*DiscountView, error) {
	var view *DiscountView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		d, err := tx.Discounts().FindByID(ctx, id)
		if err != nil {
			return shared.RepoErr(err, shared.ErrDiscountNotFound)
		}
		view = NewDiscountView(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
