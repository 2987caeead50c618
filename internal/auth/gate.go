package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neogig/neogig/internal/domain"
	apperrors "github.com/neogig/neogig/pkg/util"
)

// RequireAuthenticated rejects anonymous callers before the handler
// body runs. Rejection has no side effects.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if IdentityFromContext(c).IsAnonymous() {
			return apperrors.NewUnauthenticated("authentication required")
		}
		return c.Next()
	}
}

// RequireRole rejects anonymous callers with UNAUTHENTICATED and
// authenticated callers of a different role with AUTHORIZATION_DENIED.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromContext(c)
		if identity.IsAnonymous() {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if identity.Role != role {
			return apperrors.NewAuthorizationDenied("role not permitted")
		}
		return c.Next()
	}
}
