package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gatekeeper/config"
	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	issuer, err := auth.NewJWTIssuer(&config.Config{
		JWT: config.JWTConfig{
			Secret:   "test-secret-key",
			Issuer:   "gatekeeper-test",
			Audience: "gatekeeper-clients",
			TokenTTL: time.Hour,
		},
	})
	require.NoError(t, err)

	return NewAuthMiddleware(issuer)
}

func issueToken(t *testing.T, m *AuthMiddleware, username string, role entity.Role) string {
	t.Helper()

	token, err := m.tokenIssuer.Issue(&entity.Account{Username: username, Role: role})
	require.NoError(t, err)

	return token
}

func invoke(m *AuthMiddleware, token string, extra ...echo.MiddlewareFunc) (echo.Context, *httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	chain := handler
	for i := len(extra) - 1; i >= 0; i-- {
		chain = extra[i](chain)
	}

	err := m.Authenticate(chain)(c)

	return c, rec, err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	m := newTestMiddleware(t)
	token := issueToken(t, m, "alice", entity.RoleUser)

	c, rec, err := invoke(m, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", deliverycontext.GetUsername(c))
	assert.Equal(t, entity.RoleUser.String(), deliverycontext.GetRole(c))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := newTestMiddleware(t)

	_, rec, err := invoke(m, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MissingBearerPrefix(t *testing.T) {
	m := newTestMiddleware(t)
	token := issueToken(t, m, "alice", entity.RoleUser)

	_, rec, err := invoke(m, token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	m := newTestMiddleware(t)

	_, rec, err := invoke(m, "Bearer not.a.token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRoleAllowsAdmin(t *testing.T) {
	m := newTestMiddleware(t)
	token := issueToken(t, m, "adminmaster", entity.RoleAdmin)

	_, rec, err := invoke(m, "Bearer "+token, m.RequireRole(entity.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRoleRejectsUser(t *testing.T) {
	m := newTestMiddleware(t)
	token := issueToken(t, m, "alice", entity.RoleUser)

	_, rec, err := invoke(m, "Bearer "+token, m.RequireRole(entity.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
