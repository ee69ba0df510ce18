package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AddUserRequest is the request body for POST /api/users.
type AddUserRequest struct {
	Name string `json:"name"`
}

// ListUsers returns all demo users.
// GET /api/users
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, users)
}

// AddUser inserts a demo user.
// POST /api/users
func (h *Handler) AddUser(c echo.Context) error {
	var req AddUserRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid input"})
	}

	user, err := h.service.CreateUser(c.Request().Context(), req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, user)
}
