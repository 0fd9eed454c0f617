//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"slot-booking/internal/handler/dto/request"
	"slot-booking/internal/pkg/cookie"
	"slot-booking/internal/pkg/password"
	"slot-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const AdminPassword = "admin-password-123"

// AdminPasswordHash hashes AdminPassword at the minimum cost to keep tests fast.
func AdminPasswordHash(t *testing.T) string {
	t.Helper()
	hash, err := password.HashPasswordWithCost(AdminPassword, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// LoginAdmin logs in and returns the admin cookie.
func LoginAdmin(t *testing.T, router *gin.Engine, username, pass string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Username: username, Password: pass}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
	require.NotNil(t, c, "admin token not found in cookies")
	require.NotEmpty(t, c.Value, "admin token cookie is empty")
	return c
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
