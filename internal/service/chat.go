package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/briefbot/briefbot/internal/domain"
)

const turnTimeFormat = "2006-01-02 15:04:05"

const chatPromptFormat = "You are a helpful assistant. %s Give a short, bullet-pointed response."

// Record sends userText to the completion provider and appends the resulting
// turn to the active session, creating one when none is active. Nothing is
// appended unless the completion fully succeeds.
func (s *Service) Record(ctx context.Context, userText string) (*domain.Turn, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return nil, domain.ErrEmptyInput
	}

	content, err := s.complete(ctx, fmt.Sprintf(chatPromptFormat, userText))
	if err != nil {
		return nil, err
	}
	lines := FormatBullets(content)
	if len(lines) == 0 {
		return nil, domain.ErrCompletionFailed
	}

	turn := domain.Turn{
		Date:     time.Now().Format(turnTimeFormat),
		User:     userText,
		BotLines: lines,
	}

	if s.chats.GetActive() == nil {
		s.chats.CreateSession()
	}
	if err := s.chats.AppendTurn(turn); err != nil {
		return nil, err
	}
	return &turn, nil
}

// complete calls the completion client under the configured deadline and
// translates provider failures into the chat error taxonomy.
func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	if s.config.CompletionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.CompletionTimeout)
		defer cancel()
	}

	content, err := s.llm.Complete(ctx, prompt, s.config.Model)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", domain.ErrCompletionTimeout
		}
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}
	return content, nil
}
