package v1

import (
	"context"
	"testing"
	"time"

	"github.com/briefbot/briefbot/internal/config"
	"github.com/briefbot/briefbot/internal/repository"
	"github.com/briefbot/briefbot/internal/service"
	"github.com/briefbot/briefbot/internal/store"
)

// stubCompletion is a scriptable completion client for handler tests.
type stubCompletion struct {
	content string
	err     error
	calls   int
}

func (s *stubCompletion) Complete(ctx context.Context, prompt, model string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func newTestHandler(t *testing.T, stub *stubCompletion) *Handler {
	t.Helper()

	users, err := repository.NewUserRepository(":memory:")
	if err != nil {
		t.Fatalf("failed to create users repository: %v", err)
	}
	t.Cleanup(func() {
		_ = users.Close()
	})

	cfg := &config.Config{
		Model:             "test-model",
		CompletionTimeout: 5 * time.Second,
	}
	svc := service.New(store.NewChatStore(), stub, users, cfg)
	return NewHandler(svc)
}
