package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"slot-booking/internal/pkg/config"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/jwt"
	"slot-booking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type AdminToken struct {
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	AdminLogin(ctx context.Context, username, pass string) (*AdminToken, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		admin:      cfg.Admin,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authCommandsImpl) AdminLogin(_ context.Context, username, pass string) (*AdminToken, error) {
	// Compare the password even for unknown usernames so both failures cost the same.
	pwErr := password.ComparePassword(a.admin.PasswordHash, pass)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.admin.Username)) == 1
	if !userOK || pwErr != nil {
		a.logger.Warn("admin login rejected", "username", username)
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(a.admin.Username, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AdminToken{Token: token, ExpiresIn: a.jwtService.TokenDuration()}, nil
}
