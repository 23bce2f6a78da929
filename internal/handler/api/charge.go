package api

import (
	"context"
	"net/http"

	"hotel-booking-engine/internal/domain/billing"
	"hotel-booking-engine/internal/domain/staff"
	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ChargeHandler struct {
	cmds commands.ChargeCommands
}

func NewChargeHandler(cmds commands.ChargeCommands) *ChargeHandler {
	return &ChargeHandler{cmds: cmds}
}

// @Summary Add charge
// @Description Record a pending additional charge against a booking
// @Tags charges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AddChargeRequest true "Charge"
// @Success 201 {object} resdto.ChargeResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/charges [post]
func (h *ChargeHandler) Add(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.AddChargeRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	charge, err := h.cmds.AddCharge(c.Request.Context(), cmd, actor)
	h.write(c, http.StatusCreated, charge, err)
}

// @Summary Approve charge
// @Tags charges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param chargeId path string true "Charge ID"
// @Success 200 {object} resdto.ChargeResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/charges/{chargeId}/approval [post]
func (h *ChargeHandler) Approve(c *gin.Context) {
	h.resolve(c, h.cmds.ApproveCharge)
}

// @Summary Reject charge
// @Tags charges
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param chargeId path string true "Charge ID"
// @Success 200 {object} resdto.ChargeResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/charges/{chargeId}/rejection [post]
func (h *ChargeHandler) Reject(c *gin.Context) {
	h.resolve(c, h.cmds.RejectCharge)
}

type resolveFunc func(ctx context.Context, req commands.ResolveChargeRequest, actor staff.Actor) (*billing.Charge, error)

func (h *ChargeHandler) resolve(c *gin.Context, fn resolveFunc) {
	bookingID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	chargeID, ok := pathUUID(c, "chargeId")
	if !ok {
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	charge, err := fn(c.Request.Context(), commands.ResolveChargeRequest{BookingID: bookingID, ChargeID: chargeID}, actor)
	h.write(c, http.StatusOK, charge, err)
}

func (h *ChargeHandler) write(c *gin.Context, status int, charge *billing.Charge, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromChargeView(queries.NewChargeView(charge))
	respond(c, status, res, err)
}
