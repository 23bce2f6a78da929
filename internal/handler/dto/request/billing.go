package request

import (
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CalculateBillingRequest struct {
	DiscountID  *uuid.UUID `json:"discount_id,omitempty"`
	VATRate     *string    `json:"vat_rate,omitempty"`
	Downpayment *string    `json:"downpayment,omitempty"`
}

func (r CalculateBillingRequest) ToQuery(bookingID uuid.UUID) (queries.CalculateBillingRequest, error) {
	vat, err := optionalAmount(r.VATRate)
	if err != nil {
		return queries.CalculateBillingRequest{}, err
	}
	down, err := optionalAmount(r.Downpayment)
	if err != nil {
		return queries.CalculateBillingRequest{}, err
	}
	return queries.CalculateBillingRequest{BookingID: bookingID, DiscountID: r.DiscountID, VATRate: vat, Downpayment: down}, nil
}

type CreateInvoiceRequest struct {
	CalculateBillingRequest
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (r CreateInvoiceRequest) ToCommand(bookingID uuid.UUID) (commands.CreateInvoiceRequest, error) {
	q, err := r.ToQuery(bookingID)
	if err != nil {
		return commands.CreateInvoiceRequest{}, err
	}
	return commands.CreateInvoiceRequest{
		BookingID:     bookingID,
		DiscountID:    q.DiscountID,
		VATRate:       q.VATRate,
		Downpayment:   q.Downpayment,
		PaymentMethod: r.PaymentMethod,
	}, nil
}

type AddChargeRequest struct {
	BookingRoomID *uuid.UUID `json:"booking_room_id,omitempty"`
	Category      string     `json:"category" binding:"required,max=64"`
	Description   string     `json:"description" binding:"max=500"`
	UnitPrice     string     `json:"unit_price" binding:"required"`
	Quantity      int        `json:"quantity" binding:"required,min=1"`
}

func (r AddChargeRequest) ToCommand(bookingID uuid.UUID) (commands.AddChargeRequest, error) {
	price, err := money.ParseNonNegative(r.UnitPrice)
	if err != nil {
		return commands.AddChargeRequest{}, err
	}
	return commands.AddChargeRequest{
		BookingID:     bookingID,
		BookingRoomID: r.BookingRoomID,
		Category:      r.Category,
		Description:   r.Description,
		UnitPrice:     price,
		Quantity:      r.Quantity,
	}, nil
}

type CreateDiscountRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Percentage  *string `json:"percentage,omitempty"`
	FixedAmount *string `json:"fixed_amount,omitempty"`
}

func (r CreateDiscountRequest) ToCommand() (commands.CreateDiscountRequest, error) {
	pct, err := optionalAmount(r.Percentage)
	if err != nil {
		return commands.CreateDiscountRequest{}, err
	}
	fixed, err := optionalAmount(r.FixedAmount)
	if err != nil {
		return commands.CreateDiscountRequest{}, err
	}
	return commands.CreateDiscountRequest{Name: r.Name, Percentage: pct, FixedAmount: fixed}, nil
}

func optionalAmount(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := money.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
