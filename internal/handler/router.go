package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/handler/api"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking  *api.BookingHandler
	Billing  *api.BillingHandler
	Charge   *api.ChargeHandler
	Discount *api.DiscountHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	frontDesk := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleFrontDesk)}
	manager := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleManager)}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/booking-statuses", Handler: h.Booking.ListStatuses},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: frontDesk},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/approval", Handler: h.Booking.Approve, Mw: frontDesk},
			{Method: http.MethodPost, Path: "/:id/cancellation", Handler: h.Booking.Cancel, Mw: frontDesk},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.SetStatus, Mw: frontDesk},
			{Method: http.MethodPost, Path: "/:id/room-change", Handler: h.Booking.ChangeRoom, Mw: frontDesk},
			{Method: http.MethodPost, Path: "/:id/extension", Handler: h.Booking.Extend, Mw: frontDesk},
			{Method: http.MethodPost, Path: "/:id/extension/preview", Handler: h.Booking.PreviewExtension},

			{Method: http.MethodGet, Path: "/:id/billing/validation", Handler: h.Billing.Validate},
			{Method: http.MethodPost, Path: "/:id/billing/calculation", Handler: h.Billing.Calculate},
			{Method: http.MethodPost, Path: "/:id/invoice", Handler: h.Billing.CreateInvoice, Mw: frontDesk},
			{Method: http.MethodGet, Path: "/:id/invoice", Handler: h.Billing.GetInvoice},

			{Method: http.MethodPost, Path: "/:id/charges", Handler: h.Charge.Add, Mw: frontDesk},
			{Method: http.MethodPost, Path: "/:id/charges/:chargeId/approval", Handler: h.Charge.Approve, Mw: frontDesk},
			{Method: http.MethodPost, Path: "/:id/charges/:chargeId/rejection", Handler: h.Charge.Reject, Mw: frontDesk},
		})

		discounts := apiGroup.Group("/discounts")
		addRoutes(discounts, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Discount.Create, Mw: manager},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Discount.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
