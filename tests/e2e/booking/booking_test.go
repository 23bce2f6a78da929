//go:build e2e

package booking_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/staff"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/tests/common/authtest"
	"hotel-booking-engine/tests/common/dbtest"
	"hotel-booking-engine/tests/common/httptest"
	"hotel-booking-engine/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	bookingURL  = "/api/bookings/%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	deskToken    string
	viewerToken  string
	managerToken string
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
	s.deskToken = jwtHelper.GenerateToken(s.T(), uuid.New(), staff.RoleFrontDesk)
	s.viewerToken = jwtHelper.GenerateToken(s.T(), uuid.New(), staff.RoleViewer)
	s.managerToken = jwtHelper.GenerateToken(s.T(), uuid.New(), staff.RoleManager)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func stay(days int) (time.Time, time.Time) {
	in := time.Date(2030, 3, 10, 14, 0, 0, 0, time.UTC)
	return in, in.AddDate(0, 0, days)
}

func (s *BookingSuite) createBooking(roomID uuid.UUID, in, out time.Time) resdto.BookingResponse {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
		"guest_id":  uuid.New().String(),
		"check_in":  in.Format(time.RFC3339),
		"check_out": out.Format(time.RFC3339),
		"rooms":     []map[string]any{{"room_id": roomID.String(), "adults": 2}},
	}, s.deskToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var b resdto.BookingResponse
	httptest.DecodeData(t, w, &b)
	return b
}

func (s *BookingSuite) TestLifecycleToInvoice() {
	s.Run("create, approve, charge and invoice", func() {
		t := s.T()
		in, out := stay(3)

		created := s.createBooking(dbtest.Room101, in, out)
		require.Equal(t, 1, created.StatusID)
		require.Equal(t, "9000.00", created.TotalAmount)
		require.Equal(t, 3, created.Nights)

		// the same room cannot be held twice for overlapping nights
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"guest_id":  uuid.New().String(),
			"check_in":  in.AddDate(0, 0, 1).Format(time.RFC3339),
			"check_out": out.AddDate(0, 0, 1).Format(time.RFC3339),
			"rooms":     []map[string]any{{"room_id": dbtest.Room101.String(), "adults": 1}},
		}, s.deskToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, string(errs.CodeRoomConflict))

		base := fmt.Sprintf(bookingURL, created.ID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/approval",
			map[string]any{"downpayment": "1000", "payment_method": "cash"}, s.deskToken)
		var approved resdto.BookingResponse
		httptest.DecodeData(t, w, &approved)
		require.Equal(t, 2, approved.StatusID)
		require.Equal(t, "1000.00", approved.Downpayment)
		require.Len(t, approved.Payments, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/charges", map[string]any{
			"booking_room_id": approved.Rooms[0].ID,
			"category":        "Minibar",
			"unit_price":      "250",
			"quantity":        2,
		}, s.deskToken)
		var charge resdto.ChargeResponse
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		httptest.DecodeData(t, w, &charge)
		require.Equal(t, "minibar", charge.Category)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/invoice",
			map[string]any{"payment_method": "cash"}, s.deskToken)
		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, string(errs.CodePendingChargesBlock))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/charges/"+charge.ID+"/approval", nil, s.deskToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/billing/calculation", nil, s.viewerToken)
		var calc resdto.CalculationResponse
		httptest.DecodeData(t, w, &calc)
		want := resdto.BreakdownResponse{
			RoomTotal:           "9000.00",
			ChargeTotal:         "500.00",
			Subtotal:            "9500.00",
			DiscountAmount:      "0.00",
			AmountAfterDiscount: "9500.00",
			VATRate:             "0.12",
			VATAmount:           "1140.00",
			FinalTotal:          "10640.00",
			Downpayment:         "1000.00",
			ExtensionPayments:   "0.00",
			Balance:             "9640.00",
		}
		if diff := cmp.Diff(want, calc.Breakdown); diff != "" {
			t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/invoice",
			map[string]any{"payment_method": "card"}, s.deskToken)
		var inv resdto.InvoiceResponse
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		httptest.DecodeData(t, w, &inv)
		require.Equal(t, "incomplete", inv.Status)
		require.Equal(t, "10640.00", inv.Breakdown.FinalTotal)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/invoice",
			map[string]any{"payment_method": "card"}, s.deskToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, string(errs.CodeInvoiceAlreadyExists))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, base+"/invoice", nil, s.viewerToken)
		var stored resdto.InvoiceResponse
		httptest.DecodeData(t, w, &stored)
		require.Equal(t, inv.ID, stored.ID)
	})
}

func (s *BookingSuite) TestCancellationReleasesRooms() {
	s.Run("a cancelled booking frees its nights", func() {
		t := s.T()
		in, out := stay(2)

		first := s.createBooking(dbtest.Room201, in, out)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingURL, first.ID)+"/cancellation",
			map[string]any{"reason": "guest called"}, s.deskToken)
		var cancelled resdto.BookingResponse
		httptest.DecodeData(t, w, &cancelled)
		require.Equal(t, 5, cancelled.StatusID)

		second := s.createBooking(dbtest.Room201, in, out)
		require.NotEqual(t, first.ID, second.ID)
	})
}

func (s *BookingSuite) TestRoomChangeAndExtension() {
	s.Run("moves to another room then stays longer", func() {
		t := s.T()
		in, out := stay(2)

		b := s.createBooking(dbtest.Room102, in, out)
		base := fmt.Sprintf(bookingURL, b.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/approval",
			map[string]any{"downpayment": "0"}, s.deskToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/room-change", map[string]any{
			"current_room_id": dbtest.Room102.String(),
			"new_room_id":     dbtest.Room301.String(),
		}, s.deskToken)
		var moved resdto.RoomChangeResponse
		httptest.DecodeData(t, w, &moved)
		require.Equal(t, dbtest.Room102.String(), moved.ReleasedRoomID)
		require.Equal(t, "16000.00", moved.Booking.TotalAmount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/extension", map[string]any{
			"new_checkout":   out.AddDate(0, 0, 1).Format(time.RFC3339),
			"payment":        "8000",
			"payment_method": "card",
		}, s.deskToken)
		var extended resdto.ExtensionResponse
		httptest.DecodeData(t, w, &extended)
		require.Equal(t, 3, extended.Booking.Nights)
		require.Equal(t, "24000.00", extended.Booking.TotalAmount)
		require.Equal(t, "8000.00", extended.Booking.PaidAmount)

		// room 102 is free again for the original nights
		s.createBooking(dbtest.Room102, in, out)
	})
}

func (s *BookingSuite) TestConcurrentExtensionsWithExpectedCheckout() {
	t := s.T()
	in, out := stay(2)

	b := s.createBooking(dbtest.Room301, in, out)
	base := fmt.Sprintf(bookingURL, b.ID)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, base+"/approval",
		map[string]any{"downpayment": "0"}, s.deskToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Both requests saw the same checkout; the row lock makes the loser re-read it.
	start := make(chan struct{})
	recs := make([]*nethttptest.ResponseRecorder, 2)
	var wg sync.WaitGroup
	for i := range recs {
		payload, err := json.Marshal(map[string]any{
			"new_checkout":      out.AddDate(0, 0, i+1).Format(time.RFC3339),
			"expected_checkout": out.Format(time.RFC3339),
		})
		require.NoError(t, err)
		req := nethttptest.NewRequest(http.MethodPost, base+"/extension", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.deskToken)
		recs[i] = nethttptest.NewRecorder()

		wg.Add(1)
		go func(rec *nethttptest.ResponseRecorder, req *http.Request) {
			defer wg.Done()
			<-start
			s.Router.ServeHTTP(rec, req)
		}(recs[i], req)
	}
	close(start)
	wg.Wait()

	codes := []int{recs[0].Code, recs[1].Code}
	sort.Ints(codes)
	require.Equal(t, []int{http.StatusOK, http.StatusConflict}, codes, recs[0].Body.String()+recs[1].Body.String())

	var winner resdto.ExtensionResponse
	for _, rec := range recs {
		if rec.Code == http.StatusConflict {
			httptest.AssertErrorCode(t, rec, http.StatusConflict, string(errs.CodeStaleBooking))
			continue
		}
		httptest.DecodeData(t, rec, &winner)
	}

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, base, nil, s.deskToken)
	var stored resdto.BookingResponse
	httptest.DecodeData(t, w, &stored)
	require.Equal(t, winner.Booking.CheckOut, stored.CheckOut)
	require.Equal(t, winner.Booking.Nights, stored.Nights)
	require.Equal(t, b.Version+2, stored.Version, "approval and one extension")

	var holds int
	var holdOut time.Time
	require.NoError(t, s.DB.QueryRow(context.Background(),
		`SELECT count(*), max(check_out) FROM room_holds WHERE booking_id = $1 AND active`, b.ID).Scan(&holds, &holdOut))
	require.Equal(t, 1, holds)
	require.Equal(t, stored.CheckOut, holdOut.UTC().Format(time.RFC3339))
}

func (s *BookingSuite) TestRoles() {
	s.Run("viewers cannot create bookings", func() {
		in, out := stay(1)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, map[string]any{
			"guest_id":  uuid.New().String(),
			"check_in":  in.Format(time.RFC3339),
			"check_out": out.Format(time.RFC3339),
			"rooms":     []map[string]any{{"room_id": dbtest.Room101.String(), "adults": 1}},
		}, s.viewerToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})

	s.Run("only managers create discounts", func() {
		body := map[string]any{"name": "Corporate", "percentage": "15"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/discounts", body, s.deskToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/discounts", body, s.managerToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	})
}
