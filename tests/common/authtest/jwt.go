//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, clock.NewRealClock())
	token, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "admin", jwt.RoleAdmin)
}

// CreateExpiredToken issues a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject, role string) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.Duration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, past)
	token, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}
