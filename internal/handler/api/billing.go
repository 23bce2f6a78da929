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

type BillingHandler struct {
	invoices commands.InvoiceCommands
	q        queries.BillingQueries
}

func NewBillingHandler(invoices commands.InvoiceCommands, q queries.BillingQueries) *BillingHandler {
	return &BillingHandler{invoices: invoices, q: q}
}

// @Summary Validate billing
// @Description Whether the booking can be invoiced right now
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/billing/validation [get]
func (h *BillingHandler) Validate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.ValidateBilling(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	respond(c, http.StatusOK, resdto.FromValidationView(view), nil)
}

// @Summary Calculate billing
// @Description Full breakdown with optional discount, VAT rate and downpayment overrides
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CalculateBillingRequest false "Overrides"
// @Success 200 {object} resdto.CalculationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/billing/calculation [post]
func (h *BillingHandler) Calculate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CalculateBillingRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	q, err := req.ToQuery(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.CalculateBilling(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCalculationView(view)
	respond(c, http.StatusOK, res, err)
}

// @Summary Create invoice
// @Description Freeze the breakdown into the booking's single invoice
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/invoice [post]
func (h *BillingHandler) CreateInvoice(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateInvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	inv, err := h.invoices.CreateInvoice(c.Request.Context(), cmd, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromInvoiceView(queries.NewInvoiceView(inv))
	respond(c, http.StatusCreated, res, err)
}

// @Summary Get invoice
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/invoice [get]
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetInvoice(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromInvoiceView(view)
	respond(c, http.StatusOK, res, err)
}
