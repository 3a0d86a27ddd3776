package components

import (
	"hall-allocation/internal/handler"
	"hall-allocation/internal/handler/api"
	"hall-allocation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewHallHandler,
		api.NewHallRequestHandler,
		api.NewAllocationHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
