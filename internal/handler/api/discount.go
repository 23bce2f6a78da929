package api

import (
	"net/http"

	reqdto "hotel-booking-engine/internal/handler/dto/request"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/usecase/commands"
	"hotel-booking-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	cmds commands.DiscountCommands
	q    queries.BillingQueries
}

func NewDiscountHandler(cmds commands.DiscountCommands, q queries.BillingQueries) *DiscountHandler {
	return &DiscountHandler{cmds: cmds, q: q}
}

// @Summary Create discount
// @Description Either a percentage or a fixed amount, never both
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDiscountRequest true "Discount"
// @Success 201 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Router /discounts [post]
func (h *DiscountHandler) Create(c *gin.Context) {
	var req reqdto.CreateDiscountRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	d, err := h.cmds.CreateDiscount(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDiscountView(queries.NewDiscountView(d))
	if err == nil {
		c.Header("Location", "/api/discounts/"+d.ID().String())
	}
	respond(c, http.StatusCreated, res, err)
}

// @Summary Get discount
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount ID"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 404 {object} httperr.Response
// @Router /discounts/{id} [get]
func (h *DiscountHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetDiscount(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromDiscountView(view)
	respond(c, http.StatusOK, res, err)
}
