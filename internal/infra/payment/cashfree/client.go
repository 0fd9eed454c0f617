package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"
)

const (
	sandboxBaseURL    = "https://sandbox.cashfree.com/pg"
	productionBaseURL = "https://api.cashfree.com/pg"

	orderStatusPaid = "PAID"
)

var ErrUnexpectedResponse = errs.New("unexpected payment gateway response")

// Client talks to the Cashfree PG orders API.
type Client struct {
	cfg     config.PaymentConfig
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

// WithBaseURL points the client at another host, e.g. an httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(cfg config.PaymentConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: sandboxBaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
	if cfg.CashfreeEnv == "production" {
		c.baseURL = productionBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

type customerDetails struct {
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email,omitempty"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url"`
}

type createOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     int64           `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type orderResponse struct {
	CfOrderID        idString `json:"cf_order_id"`
	OrderID          string   `json:"order_id"`
	OrderStatus      string   `json:"order_status"`
	PaymentSessionID string   `json:"payment_session_id"`
}

// idString accepts ids that Cashfree sends either as JSON strings or numbers.
type idString string

func (s *idString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = idString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*s = idString(num.String())
	return nil
}

func (c *Client) CreateSession(ctx context.Context, req shared.SessionRequest) (*shared.PaymentSession, error) {
	if !c.Configured() {
		return nil, shared.ErrGatewayUnavailable
	}

	body := createOrderRequest{
		OrderID:       req.OrderID,
		OrderAmount:   req.Amount,
		OrderCurrency: c.cfg.Currency,
		CustomerDetails: customerDetails{
			CustomerID:    "cust_" + req.CustomerPhone,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
		},
		OrderMeta: orderMeta{
			ReturnURL: strings.ReplaceAll(c.cfg.ReturnURL, "{order_id}", url.QueryEscape(req.OrderID)),
		},
	}

	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", body, &resp); err != nil {
		return nil, err
	}
	if resp.PaymentSessionID == "" {
		return nil, errs.Mark(errs.Newf("order %s: empty payment_session_id", req.OrderID), ErrUnexpectedResponse)
	}

	return &shared.PaymentSession{
		SessionID:      resp.PaymentSessionID,
		GatewayOrderID: string(resp.CfOrderID),
	}, nil
}

// CheckStatus looks the order up by the merchant order id.
func (c *Client) CheckStatus(ctx context.Context, ref shared.PaymentRef) (shared.PaymentStatus, error) {
	if !c.Configured() {
		return shared.PaymentNotPaid, shared.ErrGatewayUnavailable
	}

	var resp orderResponse
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(ref.OrderID), nil, &resp); err != nil {
		return shared.PaymentNotPaid, err
	}
	if resp.OrderStatus == orderStatusPaid {
		return shared.PaymentPaid, nil
	}
	return shared.PaymentNotPaid, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "encode gateway request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-version", c.cfg.APIVersion)
	req.Header.Set("x-client-id", c.cfg.CashfreeAppID)
	req.Header.Set("x-client-secret", c.cfg.CashfreeSecretKey)

	res, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "%s %s", method, path), shared.ErrGatewayUnavailable)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "read gateway response")
	}

	if res.StatusCode >= http.StatusInternalServerError {
		return errs.Mark(fmt.Errorf("%s %s: status %d", method, path, res.StatusCode), shared.ErrGatewayUnavailable)
	}
	if res.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("payment gateway rejected request",
			"method", method,
			"path", path,
			"status", res.StatusCode,
			"body", string(raw))
		return errs.Mark(fmt.Errorf("%s %s: status %d", method, path, res.StatusCode), ErrUnexpectedResponse)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Mark(errs.Wrap(err, "decode gateway response"), ErrUnexpectedResponse)
	}
	return nil
}
