package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockClient is a deterministic CompletionClient for local development
// without a provider credential.
type MockClient struct{}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements CompletionClient.
var _ CompletionClient = (*MockClient)(nil)

// Complete returns a canned bullet-pointed response echoing the prompt.
func (m *MockClient) Complete(ctx context.Context, prompt, model string) (string, error) {
	if strings.HasPrefix(prompt, "Summarize") {
		return "- [MOCK] Key points of the session.", nil
	}
	return fmt.Sprintf("- [MOCK] Response from %s.\n- You asked: %s", model, truncate(prompt, 100)), nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
