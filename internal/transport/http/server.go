// Package http provides the HTTP server implementation for briefbot.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/briefbot/briefbot/internal/service"
	v1 "github.com/briefbot/briefbot/internal/transport/http/v1"
)

// NewServer creates and configures the echo server with all routes.
func NewServer(svc *service.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	h := v1.NewHandler(svc)
	h.RegisterRoutes(e)

	return e
}
