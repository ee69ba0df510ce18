package llm

import (
	"log"
	"os"
)

const (
	// EnvBriefbotMode is the environment variable name for mode selection.
	EnvBriefbotMode = "BRIEFBOT_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewCompletionClient creates a completion client based on the BRIEFBOT_MODE
// environment variable. If BRIEFBOT_MODE=MOCK, returns a MockClient;
// otherwise returns a real Client.
func NewCompletionClient(baseURL, apiKey string) CompletionClient {
	if os.Getenv(EnvBriefbotMode) == ModeMock {
		log.Println("BRIEFBOT_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}
	return NewClient(baseURL, apiKey)
}
