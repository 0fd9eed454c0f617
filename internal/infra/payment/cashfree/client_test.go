//go:build unit

package cashfree_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"slot-booking/internal/infra/payment/cashfree"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.PaymentConfig {
	return config.PaymentConfig{
		CashfreeAppID:     "app-id",
		CashfreeSecretKey: "secret",
		CashfreeEnv:       "sandbox",
		APIVersion:        "2023-08-01",
		ReturnURL:         "http://localhost/success?order_id={order_id}",
		Currency:          "INR",
		Timeout:           2 * time.Second,
	}
}

func newClient(t *testing.T, cfg config.PaymentConfig, h http.HandlerFunc) *cashfree.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return cashfree.NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), cashfree.WithBaseURL(srv.URL))
}

func TestClient_CreateSession(t *testing.T) {
	t.Run("posts order and returns session", func(t *testing.T) {
		var got map[string]any
		client := newClient(t, testConfig(), func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)
			assert.Equal(t, "app-id", r.Header.Get("x-client-id"))
			assert.Equal(t, "secret", r.Header.Get("x-client-secret"))
			assert.Equal(t, "2023-08-01", r.Header.Get("x-api-version"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"cf_order_id":"2149460581","order_id":"EF1","payment_session_id":"session_xyz"}`))
		})

		session, err := client.CreateSession(context.Background(), shared.SessionRequest{
			OrderID:       "EF1",
			Amount:        2499,
			CustomerName:  "Asha",
			CustomerPhone: "9876543210",
		})
		require.NoError(t, err)
		assert.Equal(t, "session_xyz", session.SessionID)
		assert.Equal(t, "2149460581", session.GatewayOrderID)

		assert.Equal(t, "EF1", got["order_id"])
		assert.EqualValues(t, 2499, got["order_amount"])
		assert.Equal(t, "INR", got["order_currency"])
		customer := got["customer_details"].(map[string]any)
		assert.Equal(t, "cust_9876543210", customer["customer_id"])
		meta := got["order_meta"].(map[string]any)
		assert.Equal(t, "http://localhost/success?order_id=EF1", meta["return_url"])
	})

	t.Run("numeric gateway id", func(t *testing.T) {
		client := newClient(t, testConfig(), func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"cf_order_id":2149460581,"payment_session_id":"s"}`))
		})
		session, err := client.CreateSession(context.Background(), shared.SessionRequest{OrderID: "EF1", Amount: 1})
		require.NoError(t, err)
		assert.Equal(t, "2149460581", session.GatewayOrderID)
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		cfg := testConfig()
		cfg.CashfreeAppID = ""
		client := cashfree.NewClient(cfg, slog.Default())

		_, err := client.CreateSession(context.Background(), shared.SessionRequest{OrderID: "EF1", Amount: 1})
		assert.True(t, errs.Is(err, shared.ErrGatewayUnavailable), "got %v", err)
		assert.False(t, client.Configured())
	})

	t.Run("server error is unavailability", func(t *testing.T) {
		client := newClient(t, testConfig(), func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := client.CreateSession(context.Background(), shared.SessionRequest{OrderID: "EF1", Amount: 1})
		assert.True(t, errs.Is(err, shared.ErrGatewayUnavailable), "got %v", err)
	})

	t.Run("rejected request", func(t *testing.T) {
		client := newClient(t, testConfig(), func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"order_amount invalid"}`))
		})
		_, err := client.CreateSession(context.Background(), shared.SessionRequest{OrderID: "EF1", Amount: 1})
		assert.True(t, errs.Is(err, cashfree.ErrUnexpectedResponse), "got %v", err)
	})
}

func TestClient_CheckStatus(t *testing.T) {
	cases := map[string]shared.PaymentStatus{
		"PAID":    shared.PaymentPaid,
		"ACTIVE":  shared.PaymentNotPaid,
		"EXPIRED": shared.PaymentNotPaid,
	}
	for status, want := range cases {
		t.Run(status, func(t *testing.T) {
			client := newClient(t, testConfig(), func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/orders/EF1", r.URL.Path)
				_, _ = w.Write([]byte(`{"order_id":"EF1","order_status":"` + status + `"}`))
			})
			got, err := client.CheckStatus(context.Background(), shared.PaymentRef{OrderID: "EF1", GatewayOrderID: "1"})
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
