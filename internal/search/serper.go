package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/inquest-dev/inquest/internal/model"
)

const serperEndpoint = "https://google.serper.dev/search"

// Serper uses the Serper.dev Google search API. An API key is required via
// the X-API-KEY header.
type Serper struct {
	apiKey     string
	maxResults int
	endpoint   string
	client     *http.Client
}

// NewSerper constructs a Serper search provider.
func NewSerper(apiKey string, maxResults int) *Serper {
	if maxResults <= 0 {
		maxResults = 10
	}
	return &Serper{
		apiKey:     apiKey,
		maxResults: maxResults,
		endpoint:   serperEndpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Name returns the provider name.
func (s *Serper) Name() string {
	return "serper"
}

// Search executes a Serper query.
func (s *Serper) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return nil, errors.New("serper: API key is missing")
	}

	payload, err := json.Marshal(map[string]interface{}{
		"q":   query,
		"num": s.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper http %d", resp.StatusCode)
	}

	var body struct {
		Organic []struct {
			Title string `json:"title"`
			Link  string `json:"link"`
		} `json:"organic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]model.SearchResult, 0, len(body.Organic))
	for _, item := range body.Organic {
		results = append(results, model.SearchResult{Title: item.Title, URL: item.Link})
		if len(results) >= s.maxResults {
			break
		}
	}

	return results, nil
}
