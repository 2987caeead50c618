package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neogig/neogig/internal/domain"
)

func newDeriverApp(t *testing.T, ts *TokenService) (*fiber.App, *domain.Identity) {
	t.Helper()

	captured := &domain.Identity{}
	deriver := NewContextDeriver(ts, zap.NewNop())

	app := fiber.New()
	app.Use(deriver.Handle)
	app.Get("/probe", func(c *fiber.Ctx) error {
		*captured = IdentityFromContext(c)
		return c.SendStatus(http.StatusOK)
	})
	return app, captured
}

func TestContextDeriverValidToken(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	app, captured := newDeriverApp(t, ts)

	token, _, err := ts.Issue("account-123", domain.RoleCompany)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "account-123", captured.SubjectID)
	assert.Equal(t, domain.RoleCompany, captured.Role)
}

func TestContextDeriverAnonymous(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	expired := &TokenService{secret: []byte("test-secret"), ttl: -time.Hour}
	expiredToken, _, err := expired.Issue("account-123", domain.RoleSeeker)
	require.NoError(t, err)

	otherSecret := NewTokenService("other-secret", time.Hour)
	forgedToken, _, err := otherSecret.Issue("account-123", domain.RoleSeeker)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "expired token", header: "Bearer " + expiredToken},
		{name: "wrong secret", header: "Bearer " + forgedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, captured := newDeriverApp(t, ts)

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode, "deriver must not reject the request")
			assert.True(t, captured.IsAnonymous())
		})
	}
}

func TestIdentityFromContextWithoutDeriver(t *testing.T) {
	app := fiber.New()
	var captured domain.Identity
	app.Get("/probe", func(c *fiber.Ctx) error {
		captured = IdentityFromContext(c)
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, captured.IsAnonymous())
}
