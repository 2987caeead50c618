package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/neogig/neogig/internal/domain"
)

const identityKey = "auth_identity"

// ContextDeriver resolves exactly one identity per request before any
// handler runs. Verification failures fail open to anonymous so public
// routes stay available; the failure reason is logged, never surfaced.
type ContextDeriver struct {
	tokens *TokenService
	logger *zap.Logger
}

// NewContextDeriver constructs the middleware.
func NewContextDeriver(tokens *TokenService, logger *zap.Logger) *ContextDeriver {
	return &ContextDeriver{tokens: tokens, logger: logger}
}

// Handle derives the request identity from the Authorization header and
// stores it in locals. It always continues the chain.
func (d *ContextDeriver) Handle(c *fiber.Ctx) error {
	c.Locals(identityKey, d.derive(c.Get("Authorization")))
	return c.Next()
}

func (d *ContextDeriver) derive(header string) domain.Identity {
	if header == "" {
		return domain.Anonymous
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return domain.Anonymous
	}

	identity, verr := d.tokens.Verify(parts[1])
	if verr != nil {
		d.logger.Debug("token rejected", zap.String("reason", string(verr.Reason)))
		return domain.Anonymous
	}
	return identity
}

// IdentityFromContext returns the resolved identity for the request.
// Requests that never passed the deriver read as anonymous.
func IdentityFromContext(c *fiber.Ctx) domain.Identity {
	val := c.Locals(identityKey)
	if val == nil {
		return domain.Anonymous
	}
	identity, ok := val.(domain.Identity)
	if !ok {
		return domain.Anonymous
	}
	return identity
}
