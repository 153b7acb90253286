package retrieve

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/model"
)

// ErrExhausted is the pipeline's one fatal retrieval condition: no source
// produced usable content.
var ErrExhausted = errors.New("retrieval exhausted: no usable content fetched")

// Searcher is the search collaborator consumed by the coordinator.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// ContentFetcher fetches raw markup for a single URL.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Coordinator fans out search results to concurrent fetch+clean calls and
// compacts the successful subset in provider order.
type Coordinator struct {
	searcher     Searcher
	fetcher      ContentFetcher
	fetchTimeout time.Duration
	logger       *zap.Logger
}

// NewCoordinator creates a retrieval coordinator.
func NewCoordinator(searcher Searcher, fetcher ContentFetcher, fetchTimeout time.Duration, logger *zap.Logger) *Coordinator {
	if fetchTimeout == 0 {
		fetchTimeout = 10 * time.Second
	}
	return &Coordinator{
		searcher:     searcher,
		fetcher:      fetcher,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

// Retrieve searches for the query and fetches every result concurrently.
// Search provider failure is non-fatal and yields an empty result list; a
// single bad URL never blocks the others. Only successful, non-empty cleaned
// texts are kept, in provider order, each with a fresh zero-based LocalIndex.
// Returns ErrExhausted when nothing usable was fetched.
func (c *Coordinator) Retrieve(ctx context.Context, query string) ([]model.RawContent, error) {
	results, err := c.searcher.Search(ctx, query)
	if err != nil {
		c.logger.Warn("search provider failed", zap.Error(err))
		results = nil
	}

	texts := make([]string, len(results))
	var wg sync.WaitGroup

	for i, result := range results {
		if strings.TrimSpace(result.URL) == "" {
			continue
		}

		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
			defer cancel()

			raw, err := c.fetcher.Fetch(fetchCtx, url)
			if err != nil {
				c.logger.Warn("fetch failed", zap.String("url", url), zap.Error(err))
				return
			}

			texts[idx] = Clean(raw)
		}(i, result.URL)
	}

	wg.Wait()

	// Compact successes in provider order with fresh local indexes.
	var contents []model.RawContent
	for i, text := range texts {
		if text == "" {
			continue
		}
		contents = append(contents, model.RawContent{
			LocalIndex: len(contents),
			URL:        results[i].URL,
			Text:       text,
		})
	}

	if len(contents) == 0 {
		return nil, ErrExhausted
	}

	c.logger.Debug("retrieval complete",
		zap.Int("results", len(results)),
		zap.Int("fetched", len(contents)))

	return contents, nil
}
