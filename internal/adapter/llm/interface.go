// Package llm provides an abstraction for the text-completion provider.
package llm

import "context"

// CompletionClient sends a single prompt to a completion provider and
// returns the raw response content. Errors are distinguishable from
// successful-but-empty responses.
type CompletionClient interface {
	Complete(ctx context.Context, prompt, model string) (string, error)
}

// Ensure Client implements CompletionClient.
var _ CompletionClient = (*Client)(nil)
