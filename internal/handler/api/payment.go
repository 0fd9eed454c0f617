package api

import (
	"log/slog"
	"net/http"

	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	headerWebhookSignature = "x-webhook-signature"
	headerWebhookTimestamp = "x-webhook-timestamp"
)

type PaymentHandler struct {
	cmds   commands.BookingCommands
	logger *slog.Logger
}

func NewPaymentHandler(cmds commands.BookingCommands, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, logger: logger}
}

// @Summary Payment webhook
// @Description Gateway callback. Always answers 200 so the gateway stops retrying.
// @Tags payment
// @Accept json
// @Produce json
// @Success 200 {object} resdto.WebhookResponse
// @Router /payment/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.logger.WarnContext(c.Request.Context(), "failed to read webhook body", "error", err.Error())
	} else {
		h.cmds.HandleWebhook(c.Request.Context(), shared.WebhookPayload{
			Body:      body,
			Signature: c.GetHeader(headerWebhookSignature),
			Timestamp: c.GetHeader(headerWebhookTimestamp),
		})
	}
	c.JSON(http.StatusOK, resdto.WebhookResponse{Success: true, Received: true})
}
