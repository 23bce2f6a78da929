package response

import (
	"hotel-booking-engine/internal/usecase/queries"
)

type DiscountResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Percentage  *string `json:"percentage,omitempty"`
	FixedAmount *string `json:"fixed_amount,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ValidationResponse struct {
	IsComplete     bool   `json:"is_complete"`
	PendingCharges int    `json:"pending_charges"`
	AssignedRooms  int    `json:"assigned_rooms"`
	Message        string `json:"message"`
}

type RoomLineResponse struct {
	BookingRoomID string `json:"booking_room_id"`
	RoomID        string `json:"room_id"`
	RoomNumber    string `json:"room_number"`
	UnitPrice     string `json:"unit_price"`
	Nights        int    `json:"nights"`
	Quantity      int    `json:"quantity"`
	Amount        string `json:"amount"`
}

type ChargeLineResponse struct {
	ChargeID      string  `json:"charge_id"`
	BookingRoomID *string `json:"booking_room_id,omitempty"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	UnitPrice     string  `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	Amount        string  `json:"amount"`
	Status        string  `json:"status"`
}

type CategoryResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Amount   string `json:"amount"`
}

type BreakdownResponse struct {
	RoomTotal           string `json:"room_total"`
	ChargeTotal         string `json:"charge_total"`
	Subtotal            string `json:"subtotal"`
	DiscountAmount      string `json:"discount_amount"`
	AmountAfterDiscount string `json:"amount_after_discount"`
	VATRate             string `json:"vat_rate"`
	VATAmount           string `json:"vat_amount"`
	FinalTotal          string `json:"final_total"`
	Downpayment         string `json:"downpayment"`
	ExtensionPayments   string `json:"extension_payments"`
	Balance             string `json:"balance"`
}

type CalculationResponse struct {
	BookingID         string               `json:"booking_id"`
	Breakdown         BreakdownResponse    `json:"breakdown"`
	RoomCharges       []RoomLineResponse   `json:"room_charges"`
	AdditionalCharges []ChargeLineResponse `json:"additional_charges"`
	PendingLines      []ChargeLineResponse `json:"pending_charges"`
	Categories        []CategoryResponse   `json:"categories"`
	Validation        ValidationResponse   `json:"validation"`
	Discount          *DiscountResponse    `json:"discount,omitempty"`
}

type InvoiceResponse struct {
	ID            string            `json:"id"`
	BookingID     string            `json:"booking_id"`
	DiscountID    *string           `json:"discount_id,omitempty"`
	Breakdown     BreakdownResponse `json:"breakdown"`
	PaymentMethod string            `json:"payment_method"`
	Status        string            `json:"status"`
	CreatedAt     string            `json:"created_at"`
}

type RoomExtensionResponse struct {
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number"`
	UnitPrice  string `json:"unit_price"`
	Nights     int    `json:"nights"`
	Amount     string `json:"amount"`
}

type ExtensionPlanResponse struct {
	BookingID        string                  `json:"booking_id"`
	CurrentCheckout  string                  `json:"current_checkout"`
	NewCheckout      string                  `json:"new_checkout"`
	AdditionalNights int                     `json:"additional_nights"`
	Rooms            []RoomExtensionResponse `json:"rooms"`
	AdditionalAmount string                  `json:"additional_amount"`
	PaidNow          *string                 `json:"paid_now,omitempty"`
	AddedToBalance   *string                 `json:"added_to_balance,omitempty"`
}

func FromDiscountView(v *queries.DiscountView) (*DiscountResponse, error) {
	var res DiscountResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	res.Percentage = formatRatePtr(v.Percentage)
	return &res, nil
}

func FromValidationView(v *queries.ValidationView) *ValidationResponse {
	return &ValidationResponse{
		IsComplete:     v.IsComplete,
		PendingCharges: v.PendingCharges,
		AssignedRooms:  v.AssignedRooms,
		Message:        v.Message,
	}
}

func FromCalculationView(v *queries.CalculationView) (*CalculationResponse, error) {
	var res CalculationResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	res.Breakdown.VATRate = formatRate(v.Breakdown.VATRate)
	if v.Discount != nil && res.Discount != nil {
		res.Discount.Percentage = formatRatePtr(v.Discount.Percentage)
	}
	return &res, nil
}

func FromInvoiceView(v *queries.InvoiceView) (*InvoiceResponse, error) {
	var res InvoiceResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	res.Breakdown.VATRate = formatRate(v.Breakdown.VATRate)
	return &res, nil
}

func FromExtensionPlanView(v *queries.ExtensionPlanView) (*ExtensionPlanResponse, error) {
	var res ExtensionPlanResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
