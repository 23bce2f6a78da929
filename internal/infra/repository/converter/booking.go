package converter

import (
	"time"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRow mirrors the bookings table.
type BookingRow struct {
	ID          uuid.UUID
	Reference   string
	GuestID     uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	StatusID    int16
	TotalAmount pgtype.Numeric
	Downpayment pgtype.Numeric
	PaidAmount  pgtype.Numeric
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BookingRoomRow struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	RoomID        uuid.UUID
	RoomNumber    string
	PriceSnapshot pgtype.Numeric
	Adults        int32
	Children      int32
	Position      int32
}

func BookingToRow(b *booking.Booking) BookingRow {
	return BookingRow{
		ID:          b.ID(),
		Reference:   b.Reference(),
		GuestID:     b.GuestID(),
		CheckIn:     b.Stay().CheckIn(),
		CheckOut:    b.Stay().CheckOut(),
		StatusID:    int16(b.Status().ID()),
		TotalAmount: pgconv.NumericFromDecimal(b.TotalAmount()),
		Downpayment: pgconv.NumericFromDecimal(b.Downpayment()),
		PaidAmount:  pgconv.NumericFromDecimal(b.PaidAmount()),
		Version:     b.Version(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func BookingRoomsToRows(b *booking.Booking) []BookingRoomRow {
	rooms := b.Rooms()
	rows := make([]BookingRoomRow, len(rooms))
	for i, r := range rooms {
		rows[i] = BookingRoomRow{
			ID:            r.ID(),
			BookingID:     b.ID(),
			RoomID:        r.RoomID(),
			RoomNumber:    r.RoomNumber(),
			PriceSnapshot: pgconv.NumericFromDecimal(r.PriceSnapshot()),
			Adults:        int32(r.Occupancy().Adults),
			Children:      int32(r.Occupancy().Children),
			Position:      int32(i),
		}
	}
	return rows
}

func BookingFromRows(row BookingRow, roomRows []BookingRoomRow) (*booking.Booking, error) {
	stay, err := booking.NewStay(row.CheckIn.UTC(), row.CheckOut.UTC())
	if err != nil {
		return nil, err
	}
	status, err := booking.StatusFromID(int(row.StatusID))
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, err
	}
	down, err := pgconv.DecimalFromNumeric(row.Downpayment)
	if err != nil {
		return nil, err
	}
	paid, err := pgconv.DecimalFromNumeric(row.PaidAmount)
	if err != nil {
		return nil, err
	}

	rooms := make([]booking.Room, 0, len(roomRows))
	for _, rr := range roomRows {
		price, err := pgconv.DecimalFromNumeric(rr.PriceSnapshot)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, booking.ReconstructRoom(rr.ID, rr.RoomID, rr.RoomNumber, price,
			booking.Occupancy{Adults: int(rr.Adults), Children: int(rr.Children)}))
	}

	return booking.ReconstructBooking(
		row.ID,
		row.Reference,
		row.GuestID,
		stay,
		status,
		total, down, paid,
		rooms,
		row.Version,
		row.CreatedAt.UTC(), row.UpdatedAt.UTC(),
	), nil
}
