package api

import (
	"net/http"

	"slot-booking/internal/domain/order"
	reqdto "slot-booking/internal/handler/dto/request"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.BookingCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.BookingCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Create a pending order and open a payment session when the gateway is configured
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Router /orders/create [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.cmds.CreateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err, "Order creation failed")
		return
	}

	res, err := resdto.FromCreateOrderResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Order creation failed", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Verify payment
// @Description Confirm the order when the gateway reports it paid, or in demo mode
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOrderRequest true "Verify request"
// @Success 200 {object} resdto.VerifyOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/verify [post]
func (h *OrderHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	result, err := h.cmds.VerifyPayment(c.Request.Context(), req.OrderID, bool(req.Demo))
	if err != nil {
		abortWithUsecaseError(c, err, "Verification error")
		return
	}

	o, err := resdto.FromOrderView(result.Order)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Verification error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.VerifyOrderResponse{Success: true, Paid: result.Paid, Order: o})
}

// @Summary Cancel order
// @Description Cancel an order. When phone is given it must match the order's customer.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CancelOrderRequest true "Cancel request"
// @Success 200 {object} resdto.OrderEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	requester := order.AnonymousRequester()
	if req.Phone != "" {
		// stored phones are always 10 digits, so a malformed one can never match
		phone, err := order.NewPhone(req.Phone)
		if err != nil {
			abortWithUsecaseError(c, errs.Mark(err, errs.ErrOwnershipMismatch), "Cancellation failed")
			return
		}
		requester = order.CustomerRequester(phone)
	}

	view, err := h.cmds.CancelOrder(c.Request.Context(), commands.CancelOrderInput{
		OrderID:   req.OrderID,
		Requester: requester,
		Reason:    req.Reason,
	})
	if err != nil {
		abortWithUsecaseError(c, err, "Cancellation failed")
		return
	}
	h.respondOrder(c, view)
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} resdto.OrderEnvelope
// @Failure 404 {object} httperr.Response
// @Router /orders/{orderId} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load order")
		return
	}
	h.respondOrder(c, view)
}

// @Summary List customer orders
// @Description Orders for a phone number, newest first
// @Tags orders
// @Produce json
// @Param phone query string true "Customer phone"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) ListByPhone(c *gin.Context) {
	var q reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}

	views, err := h.q.ListByPhone(c.Request.Context(), q.Phone)
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

func (h *OrderHandler) respondOrder(c *gin.Context, view *queries.OrderView) {
	o, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.OrderEnvelope{Success: true, Order: o})
}
