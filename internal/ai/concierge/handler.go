package concierge

import (
	"net/http"
	"strings"

	"github.com/Abraxas-365/vatalique/pkg/errx"
	"github.com/gofiber/fiber/v2"
)

var ErrRegistry = errx.NewRegistry("CONCIERGE")

var (
	CodeEmptyMessage = ErrRegistry.Register("EMPTY_MESSAGE", errx.TypeValidation, http.StatusBadRequest, "Message is required")
	CodeUnavailable  = ErrRegistry.Register("UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "Concierge is not configured")
	CodeInvalidBody  = ErrRegistry.Register("INVALID_BODY", errx.TypeValidation, http.StatusBadRequest, "Invalid request body")
)

// ChatRequest - DTO sent by the chat widget
type ChatRequest struct {
	Message string `json:"message"`
	History []Turn `json:"history"`
}

// ChatResponse - DTO returned to the chat widget
type ChatResponse struct {
	Reply string `json:"reply"`
}

// Handlers provides HTTP handlers for the concierge
type Handlers struct {
	concierge *Concierge
}

// NewHandlers creates concierge handlers. A nil concierge answers 503.
func NewHandlers(concierge *Concierge) *Handlers {
	return &Handlers{
		concierge: concierge,
	}
}

// Chat answers one visitor message
// POST /api/concierge/chat
func (h *Handlers) Chat(c *fiber.Ctx) error {
	if h.concierge == nil {
		return ErrRegistry.New(CodeUnavailable)
	}

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrRegistry.New(CodeInvalidBody).WithDetail("parse_error", err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return ErrRegistry.New(CodeEmptyMessage)
	}

	return c.JSON(ChatResponse{
		Reply: h.concierge.Reply(c.Context(), req.Message, req.History),
	})
}

// RegisterRoutes registers concierge routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/concierge")

	api.Post("/chat", handlers.Chat)
}
