package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/briefbot/briefbot/internal/domain"
)

const summaryPromptFormat = "Summarize this chat session with key points:\n%s"

// Summarize condenses a session's turns via the completion provider and
// stores the result on the session. An existing summary is left untouched
// when the completion fails.
func (s *Service) Summarize(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.chats.GetSession(sessionID)
	if err != nil {
		return "", err
	}
	if len(sess.Turns) == 0 {
		return "", domain.ErrEmptySession
	}

	summary, err := s.complete(ctx, fmt.Sprintf(summaryPromptFormat, renderHistory(sess.Turns)))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(summary) == "" {
		return "", domain.ErrCompletionFailed
	}

	if err := s.chats.SetSummary(sessionID, summary); err != nil {
		return "", err
	}
	return summary, nil
}

// renderHistory flattens turns into the "User:/Bot:" transcript shape the
// summary prompt expects.
func renderHistory(turns []domain.Turn) string {
	entries := make([]string, 0, len(turns))
	for _, turn := range turns {
		entries = append(entries, fmt.Sprintf("User: %s\nBot: %s", turn.User, strings.Join(turn.BotLines, " ")))
	}
	return strings.Join(entries, "\n")
}
