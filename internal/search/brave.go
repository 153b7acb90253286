package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inquest-dev/inquest/internal/model"
)

const braveEndpoint = "https://api.search.brave.com/res/v1/web/search"

// Brave uses the Brave Search API as the secondary provider. An API key is
// required via X-Subscription-Token.
type Brave struct {
	apiKey     string
	maxResults int
	endpoint   string
	client     *http.Client
}

// NewBrave constructs a Brave search provider.
func NewBrave(apiKey string, maxResults int) *Brave {
	if maxResults <= 0 {
		maxResults = 10
	}
	return &Brave{
		apiKey:     apiKey,
		maxResults: maxResults,
		endpoint:   braveEndpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Name returns the provider name.
func (b *Brave) Name() string {
	return "brave"
}

// Search executes a Brave query.
func (b *Brave) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	if strings.TrimSpace(b.apiKey) == "" {
		return nil, errors.New("brave: API key is missing")
	}

	endpoint := fmt.Sprintf("%s?q=%s", b.endpoint, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brave request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave http %d", resp.StatusCode)
	}

	var payload struct {
		Web struct {
			Results []struct {
				Title string `json:"title"`
				URL   string `json:"url"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]model.SearchResult, 0, len(payload.Web.Results))
	for _, r := range payload.Web.Results {
		results = append(results, model.SearchResult{Title: r.Title, URL: r.URL})
		if len(results) >= b.maxResults {
			break
		}
	}

	return results, nil
}
