package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neogig/neogig/internal/domain"
	apperrors "github.com/neogig/neogig/pkg/util"
)

func newGateApp(ts *TokenService) (*fiber.App, *int) {
	handlerCalls := new(int)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var domainErr *apperrors.DomainError
			if errors.As(err, &domainErr) {
				return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
			}
			return c.SendStatus(http.StatusInternalServerError)
		},
	})
	app.Use(NewContextDeriver(ts, zap.NewNop()).Handle)

	handler := func(c *fiber.Ctx) error {
		*handlerCalls++
		return c.SendStatus(http.StatusOK)
	}
	app.Get("/authed", RequireAuthenticated(), handler)
	app.Get("/seeker", RequireRole(domain.RoleSeeker), handler)
	app.Get("/company", RequireRole(domain.RoleCompany), handler)

	return app, handlerCalls
}

func TestGates(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	seekerToken, _, err := ts.Issue("seeker-account", domain.RoleSeeker)
	require.NoError(t, err)
	companyToken, _, err := ts.Issue("company-account", domain.RoleCompany)
	require.NoError(t, err)

	tests := []struct {
		name        string
		path        string
		token       string
		wantStatus  int
		wantHandler bool
	}{
		{name: "anonymous on authed", path: "/authed", wantStatus: http.StatusUnauthorized},
		{name: "seeker on authed", path: "/authed", token: seekerToken, wantStatus: http.StatusOK, wantHandler: true},
		{name: "company on authed", path: "/authed", token: companyToken, wantStatus: http.StatusOK, wantHandler: true},
		{name: "anonymous on seeker route", path: "/seeker", wantStatus: http.StatusUnauthorized},
		{name: "company on seeker route", path: "/seeker", token: companyToken, wantStatus: http.StatusForbidden},
		{name: "seeker on seeker route", path: "/seeker", token: seekerToken, wantStatus: http.StatusOK, wantHandler: true},
		{name: "seeker on company route", path: "/company", token: seekerToken, wantStatus: http.StatusForbidden},
		{name: "company on company route", path: "/company", token: companyToken, wantStatus: http.StatusOK, wantHandler: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, handlerCalls := newGateApp(ts)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantHandler {
				assert.Equal(t, 1, *handlerCalls)
			} else {
				assert.Zero(t, *handlerCalls, "gate must short-circuit before the handler")
			}
		})
	}
}

func TestGateRejectsExpiredToken(t *testing.T) {
	expired := &TokenService{secret: []byte("test-secret"), ttl: -time.Hour}
	token, _, err := expired.Issue("seeker-account", domain.RoleSeeker)
	require.NoError(t, err)

	app, handlerCalls := newGateApp(NewTokenService("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/authed", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, *handlerCalls)
}
