package gormstore

import (
	"time"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/booking"
)

func bookingToModel(b *booking.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID(),
		Reference:   b.Reference(),
		GuestID:     b.GuestID(),
		CheckIn:     b.Stay().CheckIn().UTC(),
		CheckOut:    b.Stay().CheckOut().UTC(),
		StatusID:    b.Status().ID(),
		TotalAmount: b.TotalAmount(),
		Downpayment: b.Downpayment(),
		PaidAmount:  b.PaidAmount(),
		Version:     b.Version(),
		CreatedAt:   b.CreatedAt().UTC(),
		UpdatedAt:   b.UpdatedAt().UTC(),
	}
}

func bookingRoomsToModels(b *booking.Booking) []bookingRoomModel {
	rooms := b.Rooms()
	out := make([]bookingRoomModel, len(rooms))
	for i, r := range rooms {
		out[i] = bookingRoomModel{
			ID:            r.ID(),
			BookingID:     b.ID(),
			RoomID:        r.RoomID(),
			RoomNumber:    r.RoomNumber(),
			PriceSnapshot: r.PriceSnapshot(),
			Adults:        r.Occupancy().Adults,
			Children:      r.Occupancy().Children,
			Position:      i,
		}
	}
	return out
}

func bookingFromModels(m bookingModel, roomModels []bookingRoomModel) (*booking.Booking, error) {
	stay, err := booking.NewStay(m.CheckIn.UTC(), m.CheckOut.UTC())
	if err != nil {
		return nil, err
	}
	status, err := booking.StatusFromID(m.StatusID)
	if err != nil {
		return nil, err
	}
	rooms := make([]booking.Room, len(roomModels))
	for i, rm := range roomModels {
		rooms[i] = booking.ReconstructRoom(rm.ID, rm.RoomID, rm.RoomNumber, rm.PriceSnapshot,
			booking.Occupancy{Adults: rm.Adults, Children: rm.Children})
	}
	return booking.ReconstructBooking(
		m.ID, m.Reference, m.GuestID, stay, status,
		m.TotalAmount, m.Downpayment, m.PaidAmount,
		rooms, m.Version, m.CreatedAt.UTC(), m.UpdatedAt.UTC(),
	), nil
}

func chargeToModel(c *billing.Charge) chargeModel {
	return chargeModel{
		ID:            c.ID(),
		BookingID:     c.BookingID(),
		BookingRoomID: c.BookingRoomID(),
		Category:      c.Category(),
		Description:   c.Description(),
		UnitPrice:     c.UnitPrice(),
		Quantity:      c.Quantity(),
		Status:        string(c.Status()),
		CreatedAt:     c.CreatedAt().UTC(),
		ResolvedAt:    utcPtr(c.ResolvedAt()),
	}
}

func chargeFromModel(m chargeModel) (*billing.Charge, error) {
	status, err := billing.ParseChargeStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return billing.ReconstructCharge(
		m.ID, m.BookingID, m.BookingRoomID, m.Category, m.Description,
		m.UnitPrice, m.Quantity, status, m.CreatedAt.UTC(), utcPtr(m.ResolvedAt),
	), nil
}

func invoiceToModel(inv *billing.Invoice) invoiceModel {
	bd := inv.Breakdown()
	return invoiceModel{
		ID:                  inv.ID(),
		BookingID:           inv.BookingID(),
		DiscountID:          inv.DiscountID(),
		RoomTotal:           bd.RoomTotal,
		ChargeTotal:         bd.ChargeTotal,
		Subtotal:            bd.Subtotal,
		DiscountAmount:      bd.DiscountAmount,
		AmountAfterDiscount: bd.AmountAfterDiscount,
		VATRate:             bd.VATRate,
		VATAmount:           bd.VATAmount,
		FinalTotal:          bd.FinalTotal,
		Downpayment:         bd.Downpayment,
		ExtensionPayments:   bd.ExtensionPayments,
		Balance:             bd.Balance,
		PaymentMethod:       string(inv.PaymentMethod()),
		Status:              string(inv.Status()),
		CreatedAt:           inv.CreatedAt().UTC(),
		UpdatedAt:           inv.UpdatedAt().UTC(),
	}
}

func invoiceFromModel(m invoiceModel) (*billing.Invoice, error) {
	status, err := billing.ParseInvoiceStatus(m.Status)
	if err != nil {
		return nil, err
	}
	method, err := billing.ParsePaymentMethod(m.PaymentMethod)
	if err != nil {
		return nil, err
	}
	bd := billing.Breakdown{
		RoomTotal:           m.RoomTotal,
		ChargeTotal:         m.ChargeTotal,
		Subtotal:            m.Subtotal,
		DiscountAmount:      m.DiscountAmount,
		AmountAfterDiscount: m.AmountAfterDiscount,
		VATRate:             m.VATRate,
		VATAmount:           m.VATAmount,
		FinalTotal:          m.FinalTotal,
		Downpayment:         m.Downpayment,
		ExtensionPayments:   m.ExtensionPayments,
		Balance:             m.Balance,
	}
	return billing.ReconstructInvoice(m.ID, m.BookingID, m.DiscountID, bd, method, status,
		m.CreatedAt.UTC(), m.UpdatedAt.UTC()), nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
