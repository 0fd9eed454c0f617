//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/jwt"
	"slot-booking/internal/pkg/password"
	"slot-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminLogin(t *testing.T) {
	hash, err := password.HashPasswordWithCost("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.NewTestConfig()
	cfg.Admin.PasswordHash = hash
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clock.NewMockClock(testNow))
	auth := commands.NewAuthCommands(cfg, jwtService, slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("valid credentials issue an admin token", func(t *testing.T) {
		tok, err := auth.AdminLogin(context.Background(), "admin", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, cfg.JWT.Duration, tok.ExpiresIn)

		claims, err := jwtService.ValidateToken(tok.Token)
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
		assert.Equal(t, "admin", claims.Subject)
	})

	cases := map[string][2]string{
		"wrong password": {"admin", "guess"},
		"wrong username": {"root", "s3cret-pass"},
		"empty password": {"admin", ""},
	}
	for name, creds := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := auth.AdminLogin(context.Background(), creds[0], creds[1])
			assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
		})
	}
}
