package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Middleware guards admin routes
type Middleware struct {
	tokens  *TokenService
	enforce bool
}

// NewMiddleware creates the admin route guard. With enforce false every request passes.
func NewMiddleware(tokens *TokenService, enforce bool) *Middleware {
	return &Middleware{
		tokens:  tokens,
		enforce: enforce && tokens != nil,
	}
}

// RequireAdmin rejects requests without a valid bearer token when enforcement is on
func (m *Middleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.enforce {
			return c.Next()
		}

		raw, ok := bearerToken(c)
		if !ok {
			return ErrTokenRequired()
		}

		claims, err := m.tokens.Verify(raw)
		if err != nil {
			return err
		}

		c.Locals("admin_claims", claims)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
