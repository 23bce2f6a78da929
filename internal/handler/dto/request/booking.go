package request

import (
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/pkg/money"
	"hotel-booking-engine/internal/pkg/patch"
	"hotel-booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingRoomRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	Adults   int       `json:"adults" binding:"required,min=1"`
	Children int       `json:"children" binding:"min=0"`
}

type CreateBookingRequest struct {
	GuestID  uuid.UUID            `json:"guest_id" binding:"required"`
	CheckIn  time.Time            `json:"check_in" binding:"required"`
	CheckOut time.Time            `json:"check_out" binding:"required"`
	Rooms    []BookingRoomRequest `json:"rooms" binding:"required,min=1,dive"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	cmd := commands.CreateBookingRequest{
		GuestID:  r.GuestID,
		CheckIn:  r.CheckIn.UTC(),
		CheckOut: r.CheckOut.UTC(),
		Rooms:    make([]commands.CreateBookingRoom, len(r.Rooms)),
	}
	for i, room := range r.Rooms {
		cmd.Rooms[i] = commands.CreateBookingRoom{RoomID: room.RoomID, Adults: room.Adults, Children: room.Children}
	}
	return cmd
}

type ApproveBookingRequest struct {
	Downpayment   string `json:"downpayment" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

func (r ApproveBookingRequest) ToCommand(bookingID uuid.UUID) (commands.ApproveBookingRequest, error) {
	down, err := money.ParseNonNegative(r.Downpayment)
	if err != nil {
		return commands.ApproveBookingRequest{}, err
	}
	return commands.ApproveBookingRequest{BookingID: bookingID, Downpayment: down, PaymentMethod: r.PaymentMethod}, nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// SetStatusRequest accepts either a status id or its display name.
type SetStatusRequest struct {
	StatusID   int    `json:"status_id" binding:"omitempty,min=1"`
	StatusName string `json:"status_name"`
}

func (r SetStatusRequest) ToCommand(bookingID uuid.UUID) (commands.SetStatusRequest, error) {
	var (
		status booking.Status
		err    error
	)
	if r.StatusID != 0 {
		status, err = booking.StatusFromID(r.StatusID)
	} else {
		status, err = booking.ParseStatus(r.StatusName)
	}
	if err != nil {
		return commands.SetStatusRequest{}, err
	}
	return commands.SetStatusRequest{BookingID: bookingID, Status: status}, nil
}

type ChangeRoomRequest struct {
	CurrentRoomID uuid.UUID `json:"current_room_id" binding:"required"`
	NewRoomID     uuid.UUID `json:"new_room_id" binding:"required"`
}

func (r ChangeRoomRequest) ToCommand(bookingID uuid.UUID) commands.ChangeRoomRequest {
	return commands.ChangeRoomRequest{BookingID: bookingID, OldRoomID: r.CurrentRoomID, NewRoomID: r.NewRoomID}
}

type ExtendBookingRequest struct {
	NewCheckout      time.Time  `json:"new_checkout" binding:"required"`
	Payment          *string    `json:"payment,omitempty"`
	PaymentMethod    string     `json:"payment_method"`
	ExpectedCheckout *time.Time `json:"expected_checkout,omitempty"`
}

func (r ExtendBookingRequest) ToCommand(bookingID uuid.UUID) (commands.ExtendBookingRequest, error) {
	payment := decimal.Zero
	if r.Payment != nil {
		p, err := money.ParseNonNegative(*r.Payment)
		if err != nil {
			return commands.ExtendBookingRequest{}, err
		}
		payment = p
	}
	return commands.ExtendBookingRequest{
		BookingID:        bookingID,
		NewCheckout:      r.NewCheckout.UTC(),
		Payment:          payment,
		PaymentMethod:    r.PaymentMethod,
		ExpectedCheckout: patch.Map(r.ExpectedCheckout, time.Time.UTC),
	}, nil
}

type PreviewExtensionRequest struct {
	NewCheckout time.Time `json:"new_checkout" binding:"required"`
}
