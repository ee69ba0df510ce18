package service

import (
	"context"
	"time"

	"github.com/briefbot/briefbot/internal/config"
	"github.com/briefbot/briefbot/internal/store"
)

// stubCompletion is a scriptable completion client that records its prompts.
type stubCompletion struct {
	content string
	err     error
	calls   int
	prompts []string
}

func (s *stubCompletion) Complete(ctx context.Context, prompt, model string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func newTestService(stub *stubCompletion) (*Service, *store.ChatStore) {
	cfg := &config.Config{
		Model:             "test-model",
		CompletionTimeout: 5 * time.Second,
	}
	chats := store.NewChatStore()
	return New(chats, stub, nil, cfg), chats
}
