package components

import (
	"slot-booking/internal/handler"
	"slot-booking/internal/handler/api"
	"slot-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewPaymentHandler,
		api.NewSlotHandler,
		api.NewCatalogHandler,
		api.NewAdminHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
