// Package v1 provides HTTP handlers for the briefbot API.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/briefbot/briefbot/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Chat API
	e.POST("/api/chat", h.Chat)
	e.GET("/api/history", h.GetHistory)
	e.DELETE("/api/history", h.ClearHistory)

	// Session API
	e.POST("/api/sessions", h.CreateSession)
	e.GET("/api/sessions", h.ListSessions)
	e.GET("/api/sessions/:session_id", h.GetSession)
	e.POST("/api/sessions/:session_id/select", h.SelectSession)
	e.POST("/api/sessions/:session_id/summarize", h.SummarizeSession)

	// Demo endpoints, no dependency on chat state
	e.GET("/api/users", h.ListUsers)
	e.POST("/api/users", h.AddUser)
	e.GET("/health", h.Health)
}

// Health returns health status.
// GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}
