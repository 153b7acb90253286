package retrieve

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/model"
)

type stubSearcher struct {
	results []model.SearchResult
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	return s.results, s.err
}

// stubFetcher maps URLs to raw markup; unmapped URLs fail.
type stubFetcher struct {
	pages map[string]string
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, ok := f.pages[url]
	if !ok {
		return "", errors.New("fetch refused")
	}
	return page, nil
}

func TestRetrieve_CompactsSuccessesInProviderOrder(t *testing.T) {
	searcher := &stubSearcher{results: []model.SearchResult{
		{Title: "a", URL: "https://a.example.com"},
		{Title: "b", URL: "https://b.example.com"},
		{Title: "c", URL: "https://c.example.com"},
	}}
	fetcher := &stubFetcher{pages: map[string]string{
		"https://a.example.com": "<p>alpha content</p>",
		"https://c.example.com": "<p>charlie content</p>",
	}}
	c := NewCoordinator(searcher, fetcher, 0, zap.NewNop())

	contents, err := c.Retrieve(context.Background(), "q")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}

	if len(contents) != 2 {
		t.Fatalf("got %d contents, want 2", len(contents))
	}
	if contents[0].URL != "https://a.example.com" || contents[1].URL != "https://c.example.com" {
		t.Errorf("provider order not preserved: %+v", contents)
	}
	for i, content := range contents {
		if content.LocalIndex != i {
			t.Errorf("content %d has LocalIndex %d, want %d", i, content.LocalIndex, i)
		}
	}
	if contents[0].Text != "alpha content" {
		t.Errorf("content not cleaned: %q", contents[0].Text)
	}
}

func TestRetrieve_AllFetchesFailIsExhausted(t *testing.T) {
	searcher := &stubSearcher{results: []model.SearchResult{
		{Title: "a", URL: "https://a.example.com"},
	}}
	c := NewCoordinator(searcher, &stubFetcher{}, 0, zap.NewNop())

	if _, err := c.Retrieve(context.Background(), "q"); !errors.Is(err, ErrExhausted) {
		t.Errorf("got %v, want ErrExhausted", err)
	}
}

func TestRetrieve_SearchFailureIsExhaustedNotFatal(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("provider rejected key")}
	c := NewCoordinator(searcher, &stubFetcher{}, 0, zap.NewNop())

	_, err := c.Retrieve(context.Background(), "q")
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("search failure should surface as ErrExhausted, got %v", err)
	}
}

func TestRetrieve_SkipsBlankURLs(t *testing.T) {
	searcher := &stubSearcher{results: []model.SearchResult{
		{Title: "no url", URL: "  "},
		{Title: "a", URL: "https://a.example.com"},
	}}
	fetcher := &stubFetcher{pages: map[string]string{
		"https://a.example.com": "<p>alpha</p>",
	}}
	c := NewCoordinator(searcher, fetcher, 0, zap.NewNop())

	contents, err := c.Retrieve(context.Background(), "q")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(contents) != 1 || contents[0].LocalIndex != 0 {
		t.Errorf("expected single compacted content, got %+v", contents)
	}
}
