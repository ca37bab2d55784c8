package llm

import (
	"context"
	"fmt"

	"resume-roast/internal/shared/apperr"
)

// Request is one completion call: a single user prompt plus generation knobs.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Client abstracts text-completion providers. An empty but successful
// completion is returned as "" with a nil error.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, req Request) (string, error)

// Complete calls f.
func (f ClientFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// ServiceError tags a provider failure as a completion service error while
// keeping the cause inspectable.
func ServiceError(provider string, err error) error {
	return fmt.Errorf("%s: %w: %w", provider, err, apperr.ErrCompletionService)
}

// MissingCredential reports an absent provider credential.
func MissingCredential(provider string) error {
	return fmt.Errorf("%s api key is not configured: %w", provider, apperr.ErrConfiguration)
}
