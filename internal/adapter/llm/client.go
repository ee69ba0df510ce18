package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client calls an OpenAI-compatible chat completion API. Groq speaks the
// same protocol, so the official SDK works against it with a custom base URL.
type Client struct {
	client openai.Client // value type, not a pointer
}

// NewClient creates a completion client for the given provider endpoint.
func NewClient(baseURL, apiKey string) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{client: openai.NewClient(opts...)}
}

// Complete sends a single-message chat completion request and returns the
// assistant content.
func (c *Client) Complete(ctx context.Context, prompt, model string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
