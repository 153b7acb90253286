// Package search wraps web search providers. Providers return ranked
// results; callers treat provider failure as an empty result set.
package search

import (
	"context"

	"github.com/inquest-dev/inquest/internal/model"
)

// Provider defines the interface for search backends.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Search executes a query and returns results in provider rank order.
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// Chain tries providers in order and returns the first non-empty result
// set. A provider that errors or comes back empty hands over to the next.
type Chain struct {
	providers []Provider
}

// NewChain builds a fallback chain from the given providers.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Name returns the chain's composite name.
func (c *Chain) Name() string {
	return "chain"
}

// Search runs the fallback chain.
func (c *Chain) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	var lastErr error
	for _, p := range c.providers {
		results, err := p.Search(ctx, query)
		if err != nil {
			lastErr = err
			continue
		}
		if len(results) > 0 {
			return results, nil
		}
	}
	return nil, lastErr
}
