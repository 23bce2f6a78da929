package components

import (
	"hotel-booking-engine/internal/handler"
	"hotel-booking-engine/internal/handler/api"
	"hotel-booking-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewBillingHandler,
		api.NewChargeHandler,
		api.NewDiscountHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	booking *api.BookingHandler,
	billing *api.BillingHandler,
	charge *api.ChargeHandler,
	discount *api.DiscountHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking:  booking,
		Billing:  billing,
		Charge:   charge,
		Discount: discount,
	}
}
