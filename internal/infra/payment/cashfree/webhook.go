package cashfree

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"
)

const (
	paymentStatusSuccess    = "SUCCESS"
	eventTypePaymentSuccess = "PAYMENT_SUCCESS_WEBHOOK"
)

type webhookEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type webhookData struct {
	Type  string `json:"type"`
	Order struct {
		OrderID string `json:"order_id"`
	} `json:"order"`
	Payment struct {
		CfPaymentID   idString `json:"cf_payment_id"`
		PaymentStatus string   `json:"payment_status"`
	} `json:"payment"`
}

// ValidateWebhook verifies the signature and extracts the order event.
// The event body is "data" when present, otherwise the whole payload.
func (c *Client) ValidateWebhook(_ context.Context, payload shared.WebhookPayload) (*shared.WebhookEvent, error) {
	if err := c.verifySignature(payload); err != nil {
		return nil, err
	}

	var env webhookEnvelope
	if err := json.Unmarshal(payload.Body, &env); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode webhook"), shared.ErrInvalidWebhook)
	}

	raw := env.Data
	if len(raw) == 0 || string(raw) == "null" {
		raw = payload.Body
	}
	var data webhookData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode webhook data"), shared.ErrInvalidWebhook)
	}

	if data.Order.OrderID == "" {
		return nil, errs.Mark(errs.New("webhook has no order id"), shared.ErrInvalidWebhook)
	}

	eventType := env.Type
	if eventType == "" {
		eventType = data.Type
	}
	return &shared.WebhookEvent{
		Type:             eventType,
		OrderID:          data.Order.OrderID,
		IsSuccess:        data.Payment.PaymentStatus == paymentStatusSuccess || eventType == eventTypePaymentSuccess,
		PaymentReference: string(data.Payment.CfPaymentID),
	}, nil
}

// verifySignature rejects unsigned payloads once live credentials are set.
// Without credentials nothing can be checked, so demo mode accepts unsigned
// bodies unless RequireWebhookSignature is on.
func (c *Client) verifySignature(payload shared.WebhookPayload) error {
	if !c.cfg.Configured() {
		if c.cfg.RequireWebhookSignature {
			return errs.Mark(errs.New("webhook signature required"), shared.ErrInvalidWebhook)
		}
		return nil
	}
	if payload.Signature == "" || payload.Timestamp == "" {
		return errs.Mark(errs.New("webhook signature missing"), shared.ErrInvalidWebhook)
	}

	expected := Sign(c.cfg.CashfreeSecretKey, payload.Timestamp, payload.Body)
	if !hmac.Equal([]byte(expected), []byte(payload.Signature)) {
		return errs.Mark(errs.New("webhook signature mismatch"), shared.ErrInvalidWebhook)
	}
	return nil
}

// Sign produces the signature Cashfree sends for body at timestamp.
func Sign(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
