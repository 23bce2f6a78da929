package api

import (
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds    commands.BookingCommands
	q       queries.BookingQueries
	billing queries.BillingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, billing queries.BillingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, billing: billing}
}

// @Summary List booking statuses
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.StatusResponse
// @Router /booking-statuses [get]
func (h *BookingHandler) ListStatuses(c *gin.Context) {
	respond(c, http.StatusOK, resdto.FromStatuses(h.q.Statuses()), nil)
}

// @Summary Get booking
// @Description Booking with rooms, charges and payments
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	res, err := h.load(c, id)
	respond(c, http.StatusOK, res, err)
}

// @Summary Create booking
// @Description Snapshot room prices and hold the rooms for the stay
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := h.load(c, b.ID())
	if err == nil {
		c.Header("Location", "/api/bookings/"+b.ID().String())
	}
	respond(c, http.StatusCreated, res, err)
}

// @Summary Approve booking
// @Description Record the downpayment and move a pending booking to Approved
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ApproveBookingRequest true "Approval"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/approval [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.ApproveBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if _, err = h.cmds.ApproveBooking(c.Request.Context(), cmd, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := h.load(c, id)
	respond(c, http.StatusOK, res, err)
}

// @Summary Cancel booking
// @Description Release rooms and drop charges; the total stays on record
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation"
// @Success 200 {object} resdto.BookingResponse
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/cancellation [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	if _, err := h.cmds.CancelBooking(c.Request.Context(), commands.CancelBookingRequest{BookingID: id, Reason: req.Reason}, actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := h.load(c, id)
	respond(c, http.StatusOK, res, err)
}

// @Summary Set booking status
// @Description Staff path of the status machine; approval and cancellation have their own routes
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.SetStatusRequest true "Target status"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) SetStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.SetStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	result, err := h.cmds.SetBookingStatus(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	b, err := h.load(c, id)
	respond(c, http.StatusOK, &resdto.StatusChangeResponse{
		Booking:        b,
		PreviousStatus: result.From.String(),
		Changed:        result.Changed,
	}, err)
}

// @Summary Change room
// @Description Move the stay to another room, repricing it at the new room's rate
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeRoomRequest true "Rooms"
// @Success 200 {object} resdto.RoomChangeResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/room-change [post]
func (h *BookingHandler) ChangeRoom(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.ChangeRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.ChangeRoom(c.Request.Context(), req.ToCommand(id), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	b, err := h.load(c, id)
	respond(c, http.StatusOK, &resdto.RoomChangeResponse{
		Booking:        b,
		ReleasedRoomID: result.Released.RoomID().String(),
		AssignedRoomID: result.Assigned.RoomID().String(),
	}, err)
}

// @Summary Extend booking
// @Description Push the checkout later, charging every assigned room for the added nights
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ExtendBookingRequest true "Extension"
// @Success 200 {object} resdto.ExtensionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/extension [post]
func (h *BookingHandler) Extend(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.ExtendBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	result, err := h.cmds.ExtendBooking(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	plan, err := resdto.FromExtensionPlanView(queries.NewExtensionPlanView(result.Plan, &result.Settlement))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	b, err := h.load(c, id)
	respond(c, http.StatusOK, &resdto.ExtensionResponse{Booking: b, Plan: plan}, err)
}

// @Summary Preview extension
// @Description Price an extension without writing anything
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.PreviewExtensionRequest true "New checkout"
// @Success 200 {object} resdto.ExtensionPlanResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/{id}/extension/preview [post]
func (h *BookingHandler) PreviewExtension(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PreviewExtensionRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.billing.PreviewExtension(c.Request.Context(), id, req.NewCheckout.UTC())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromExtensionPlanView(view)
	respond(c, http.StatusOK, res, err)
}

func (h *BookingHandler) load(c *gin.Context, id uuid.UUID) (*resdto.BookingResponse, error) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return resdto.FromBookingView(view)
}
