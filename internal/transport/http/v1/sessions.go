package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/briefbot/briefbot/internal/domain"
)

// CreateSession starts a new conversation and makes it active.
// POST /api/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	id := h.service.NewSession()
	return c.JSON(http.StatusCreated, map[string]string{"session_id": id})
}

// ListSessions enumerates sessions in creation order for sidebar display.
// GET /api/sessions
func (h *Handler) ListSessions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.ListSessions())
}

// GetSession returns a single session with its turns and summary.
// GET /api/sessions/:session_id
func (h *Handler) GetSession(c echo.Context) error {
	sess, err := h.service.GetSession(c.Param("session_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, sess)
}

// SelectSession makes the given session active.
// POST /api/sessions/:session_id/select
func (h *Handler) SelectSession(c echo.Context) error {
	if err := h.service.SelectSession(c.Param("session_id")); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// SummarizeSession generates and stores a summary for the session.
// POST /api/sessions/:session_id/summarize
func (h *Handler) SummarizeSession(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.service.Summarize(ctx, c.Param("session_id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownSession):
			return c.JSON(http.StatusNotFound, ErrorResponse{Status: "error", Message: "session not found"})
		case errors.Is(err, domain.ErrEmptySession):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: "Nothing to summarize yet."})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Status: "error", Message: "An error occurred while summarizing."})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "success",
		"summary": summary,
	})
}
