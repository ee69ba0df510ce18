package service

import (
	"context"

	"github.com/briefbot/briefbot/internal/domain"
)

// ListUsers returns the demo users.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}

// CreateUser inserts a demo user.
func (s *Service) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	return s.users.CreateUser(ctx, name)
}
