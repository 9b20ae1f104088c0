package admin

import (
	"time"

	"github.com/Abraxas-365/vatalique/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// LoginRequest - DTO for the admin login call
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse - DTO returned by the admin login call
type LoginResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SessionResponse - DTO describing the caller's admin session
type SessionResponse struct {
	Valid         bool       `json:"valid"`
	TokensEnabled bool       `json:"tokens_enabled"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// Handlers provides HTTP handlers for admin authentication
type Handlers struct {
	gate   *Gate
	tokens *TokenService
}

// NewHandlers creates admin handlers. tokens may be nil.
func NewHandlers(gate *Gate, tokens *TokenService) *Handlers {
	return &Handlers{
		gate:   gate,
		tokens: tokens,
	}
}

// Login checks the shared admin secret
// POST /api/admin/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidBody().WithDetail("parse_error", err.Error())
	}

	if !h.gate.Login(req.Password) {
		logx.Warnf("admin login failed from %s", c.IP())
		return c.Status(fiber.StatusUnauthorized).JSON(LoginResponse{
			Success: false,
			Message: ErrInvalidPassword().Message,
		})
	}

	resp := LoginResponse{
		Success: true,
		Message: "Login successful",
	}

	if h.tokens != nil {
		token, expiresAt, err := h.tokens.Issue()
		if err != nil {
			return err
		}
		resp.Token = token
		resp.ExpiresAt = &expiresAt
	}

	return c.JSON(resp)
}

// Session reports whether the bearer token on the request is a valid admin token
// GET /api/admin/session
func (h *Handlers) Session(c *fiber.Ctx) error {
	if h.tokens == nil {
		return c.JSON(SessionResponse{Valid: false, TokensEnabled: false})
	}

	raw, ok := bearerToken(c)
	if !ok {
		return ErrTokenRequired()
	}

	claims, err := h.tokens.Verify(raw)
	if err != nil {
		return err
	}

	expiresAt := claims.ExpiresAt.Time
	return c.JSON(SessionResponse{
		Valid:         true,
		TokensEnabled: true,
		ExpiresAt:     &expiresAt,
	})
}

// RegisterRoutes registers admin authentication routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/admin")

	api.Post("/login", handlers.Login)
	api.Get("/session", handlers.Session)
}
