package api

import (
	"net/http"

	"slot-booking/internal/domain/slot"
	reqdto "slot-booking/internal/handler/dto/request"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/cookie"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	auth    commands.AuthCommands
	booking commands.BookingCommands
	orders  queries.OrderQueries
	slots   queries.SlotQueries
	stats   queries.StatsQueries
	clock   clock.Clock
	cfg     config.Config
}

func NewAdminHandler(
	auth commands.AuthCommands,
	booking commands.BookingCommands,
	orders queries.OrderQueries,
	slots queries.SlotQueries,
	stats queries.StatsQueries,
	clk clock.Clock,
	cfg config.Config,
) *AdminHandler {
	return &AdminHandler{
		auth:    auth,
		booking: booking,
		orders:  orders,
		slots:   slots,
		stats:   stats,
		clock:   clk,
		cfg:     cfg,
	}
}

// @Summary Admin login
// @Description Issue an admin token and set it as an HttpOnly cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Username and password required", nil)
		return
	}

	token, err := h.auth.AdminLogin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid credentials", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}

	cookie.SetAdminToken(c, h.cfg.Cookie, token.Token, token.ExpiresIn)
	c.JSON(http.StatusOK, resdto.AdminLoginResponse{
		Success:   true,
		Token:     token.Token,
		ExpiresIn: int64(token.ExpiresIn.Seconds()),
	})
}

// @Summary Admin logout
// @Description Clear the admin cookie. Tokens are stateless and expire on their own.
// @Tags admin
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary List orders
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param limit query int false "Max rows (default 100, max 500)"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	var q reqdto.AdminOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	views, err := h.orders.ListAll(c.Request.Context(), queries.OrderFilter{Status: q.Status, Limit: q.Limit})
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load orders")
		return
	}
	res, err := resdto.FromOrderViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load orders", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update order status
// @Description Force an order into a status. Ledger and notifications follow the change.
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 200 {object} resdto.OrderEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/orders/{orderId}/status [put]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}

	view, err := h.booking.AdminSetStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to update order")
		return
	}
	o, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.OrderEnvelope{Success: true, Order: o})
}

// @Summary Dashboard stats
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, resdto.StatsResponse{Success: true, Stats: stats})
}

// @Summary Booked slots
// @Description Reservation records from a date onwards
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} resdto.BookedSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/slots [get]
func (h *AdminHandler) Slots(c *gin.Context) {
	var q reqdto.AdminSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}
	if q.From == "" {
		q.From = slot.DateOf(clock.Today(h.clock, h.cfg.Server.Location())).String()
	}

	views, err := h.slots.ListBooked(c.Request.Context(), q.From)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load slots")
		return
	}
	res, err := resdto.FromBookedSlotViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load slots", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
