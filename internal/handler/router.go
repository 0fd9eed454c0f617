package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slot-booking/internal/handler/api"
	"slot-booking/internal/handler/middleware"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/jwt"
	"slot-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Order   *api.OrderHandler
	Payment *api.PaymentHandler
	Slot    *api.SlotHandler
	Catalog *api.CatalogHandler
	Admin   *api.AdminHandler
}

func NewHandlers(
	order *api.OrderHandler,
	payment *api.PaymentHandler,
	slot *api.SlotHandler,
	catalog *api.CatalogHandler,
	admin *api.AdminHandler,
) *Handlers {
	return &Handlers{Order: order, Payment: payment, Slot: slot, Catalog: catalog, Admin: admin}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Registry, h *Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Registry) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h *Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Registry) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/locations", Handler: h.Catalog.Locations},
			{Method: http.MethodGet, Path: "/packages/:location", Handler: h.Catalog.Packages},
			{Method: http.MethodGet, Path: "/slots", Handler: h.Slot.Availability},
			{Method: http.MethodGet, Path: "/slots/check", Handler: h.Slot.Check},
			{Method: http.MethodPost, Path: "/payment/webhook", Handler: h.Payment.Webhook},
		})

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "/create", Handler: h.Order.Create},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Order.Verify},
				{Method: http.MethodPost, Path: "/cancel", Handler: h.Order.Cancel},
				// Older gateway configurations still post here.
				{Method: http.MethodPost, Path: "/webhook", Handler: h.Payment.Webhook},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListByPhone},
				{Method: http.MethodGet, Path: "/:orderId", Handler: h.Order.Get},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Admin.Logout},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(jwt.RoleAdmin))
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/orders", Handler: h.Admin.ListOrders},
				{Method: http.MethodPut, Path: "/orders/:orderId", Handler: h.Admin.UpdateStatus},
				{Method: http.MethodPut, Path: "/orders/:orderId/status", Handler: h.Admin.UpdateStatus},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Stats},
				{Method: http.MethodGet, Path: "/slots", Handler: h.Admin.Slots},
			})
		}
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
