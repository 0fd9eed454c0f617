package shared

import (
	"context"
	"errors"
)

var (
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrInvalidWebhook     = errors.New("invalid payment webhook")
)

type SessionRequest struct {
	OrderID       string
	Amount        int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
}

type PaymentSession struct {
	SessionID      string
	GatewayOrderID string
}

// PaymentRef points at the gateway-side record of an order.
type PaymentRef struct {
	OrderID        string
	GatewayOrderID string
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentNotPaid PaymentStatus = "not_paid"
)

type WebhookPayload struct {
	Body      []byte
	Signature string
	Timestamp string
}

type WebhookEvent struct {
	Type             string
	OrderID          string
	IsSuccess        bool
	PaymentReference string
}

type PaymentGateway interface {
	// Configured reports whether credentials are present.
	Configured() bool
	CreateSession(ctx context.Context, req SessionRequest) (*PaymentSession, error)
	CheckStatus(ctx context.Context, ref PaymentRef) (PaymentStatus, error)
	ValidateWebhook(ctx context.Context, payload WebhookPayload) (*WebhookEvent, error)
}
