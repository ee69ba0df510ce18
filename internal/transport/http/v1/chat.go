package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/briefbot/briefbot/internal/domain"
)

// chatSuggestions are shown alongside every successful chat reply.
var chatSuggestions = []string{"Translate", "Ask a question", "Get help"}

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the success body for POST /api/chat.
type ChatResponse struct {
	Status      string   `json:"status"`
	Response    []string `json:"response"`
	Suggestions []string `json:"suggestions"`
}

// ErrorResponse is the error body shared by the chat endpoints.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Chat records one user message against the active session and returns the
// bullet-pointed reply.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: "No input provided."})
	}

	ctx := c.Request().Context()

	turn, err := h.service.Record(ctx, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInput) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: "No input provided."})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Status: "error", Message: "No valid response from the AI."})
	}

	return c.JSON(http.StatusOK, ChatResponse{
		Status:      "success",
		Response:    turn.BotLines,
		Suggestions: chatSuggestions,
	})
}

// GetHistory returns the chronological turns of the active session.
// GET /api/history
func (h *Handler) GetHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ActiveHistory())
}

// ClearHistory drops every session. Idempotent.
// DELETE /api/history
func (h *Handler) ClearHistory(c echo.Context) error {
	h.service.ClearHistory()
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
