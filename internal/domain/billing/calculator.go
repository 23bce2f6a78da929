package billing

import (
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrVATRate     = errs.Mark(errs.New("vat rate must be between 0 and 1"), errs.ErrValidation)
	ErrDownpayment = errs.Mark(errs.New("downpayment cannot be negative"), errs.ErrValidation)
	ErrPayments    = errs.Mark(errs.New("extension payments cannot be negative"), errs.ErrValidation)
)

type Input struct {
	Aggregation       Aggregation
	Discount          *Discount
	VATRate           decimal.Decimal
	Downpayment       decimal.Decimal
	ExtensionPayments decimal.Decimal
}

// Breakdown holds unrounded figures; call Rounded before display.
type Breakdown struct {
	RoomTotal           decimal.Decimal
	ChargeTotal         decimal.Decimal
	Subtotal            decimal.Decimal
	DiscountAmount      decimal.Decimal
	AmountAfterDiscount decimal.Decimal
	VATRate             decimal.Decimal
	VATAmount           decimal.Decimal
	FinalTotal          decimal.Decimal
	Downpayment         decimal.Decimal
	ExtensionPayments   decimal.Decimal
	Balance             decimal.Decimal
}

func Calculate(in Input) (Breakdown, error) {
	one := decimal.NewFromInt(1)
	if in.VATRate.IsNegative() || in.VATRate.GreaterThan(one) {
		return Breakdown{}, ErrVATRate
	}
	if in.Downpayment.IsNegative() {
		return Breakdown{}, ErrDownpayment
	}
	if in.ExtensionPayments.IsNegative() {
		return Breakdown{}, ErrPayments
	}

	subtotal := in.Aggregation.Subtotal()
	discount := ResolveDiscount(subtotal, in.Discount)
	after := subtotal.Sub(discount)
	vat := after.Mul(in.VATRate)
	final := after.Add(vat)

	return Breakdown{
		RoomTotal:           in.Aggregation.RoomTotal,
		ChargeTotal:         in.Aggregation.ChargeTotal,
		Subtotal:            subtotal,
		DiscountAmount:      discount,
		AmountAfterDiscount: after,
		VATRate:             in.VATRate,
		VATAmount:           vat,
		FinalTotal:          final,
		Downpayment:         in.Downpayment,
		ExtensionPayments:   in.ExtensionPayments,
		Balance:             money.ClampZero(final.Sub(in.Downpayment).Sub(in.ExtensionPayments)),
	}, nil
}

// Rounded applies half-up rounding to two places on every monetary figure.
// The VAT rate is a ratio and stays as is.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		RoomTotal:           money.Round(b.RoomTotal),
		ChargeTotal:         money.Round(b.ChargeTotal),
		Subtotal:            money.Round(b.Subtotal),
		DiscountAmount:      money.Round(b.DiscountAmount),
		AmountAfterDiscount: money.Round(b.AmountAfterDiscount),
		VATRate:             b.VATRate,
		VATAmount:           money.Round(b.VATAmount),
		FinalTotal:          money.Round(b.FinalTotal),
		Downpayment:         money.Round(b.Downpayment),
		ExtensionPayments:   money.Round(b.ExtensionPayments),
		Balance:             money.Round(b.Balance),
	}
}
