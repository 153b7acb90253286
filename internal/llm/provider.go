// Package llm wraps the text-generation collaborator behind a small
// provider interface. All response parsing and validation is the caller's
// responsibility; providers return raw completion text.
package llm

import "context"

// Provider defines the interface for generation backends.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Generate runs a single request/response completion call.
	Generate(ctx context.Context, prompt string) (string, error)

	// IsAvailable checks if the provider is properly configured and reachable.
	IsAvailable(ctx context.Context) bool
}
