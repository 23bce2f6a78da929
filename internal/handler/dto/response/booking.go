package response

import (
	"hotel-booking-engine/internal/usecase/queries"
)

type StatusResponse struct {
	StatusID   int    `json:"status_id"`
	StatusName string `json:"status_name"`
}

type BookingRoomResponse struct {
	ID            string `json:"id"`
	RoomID        string `json:"room_id"`
	RoomNumber    string `json:"room_number"`
	PriceSnapshot string `json:"price_snapshot"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
}

type ChargeResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	BookingRoomID *string `json:"booking_room_id,omitempty"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	UnitPrice     string  `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	Amount        string  `json:"amount"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	ResolvedAt    *string `json:"resolved_at,omitempty"`
}

type PaymentResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Method    string `json:"method"`
	CreatedAt string `json:"created_at"`
}

type BookingResponse struct {
	ID          string                `json:"id"`
	Reference   string                `json:"reference"`
	GuestID     string                `json:"guest_id"`
	StatusID    int                   `json:"status_id"`
	Status      string                `json:"status"`
	CheckIn     string                `json:"check_in"`
	CheckOut    string                `json:"check_out"`
	Nights      int                   `json:"nights"`
	TotalAmount string                `json:"total_amount"`
	Downpayment string                `json:"downpayment"`
	PaidAmount  string                `json:"paid_amount"`
	Balance     string                `json:"balance"`
	Version     int64                 `json:"version"`
	Rooms       []BookingRoomResponse `json:"rooms"`
	Charges     []ChargeResponse      `json:"charges"`
	Payments    []PaymentResponse     `json:"payments"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

func FromStatuses(views []queries.StatusView) []StatusResponse {
	res := make([]StatusResponse, len(views))
	for i, v := range views {
		res[i] = StatusResponse{StatusID: v.StatusID, StatusName: v.StatusName}
	}
	return res
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromChargeView(v *queries.ChargeView) (*ChargeResponse, error) {
	var res ChargeResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

// StatusChangeResponse tells the caller whether the write actually happened.
type StatusChangeResponse struct {
	Booking        *BookingResponse `json:"booking"`
	PreviousStatus string           `json:"previous_status"`
	Changed        bool             `json:"changed"`
}

type RoomChangeResponse struct {
	Booking        *BookingResponse `json:"booking"`
	ReleasedRoomID string           `json:"released_room_id"`
	AssignedRoomID string           `json:"assigned_room_id"`
}

type ExtensionResponse struct {
	Booking *BookingResponse       `json:"booking"`
	Plan    *ExtensionPlanResponse `json:"extension"`
}
