package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inquest-dev/inquest/internal/model"
)

func TestSerperSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("X-API-KEY"); got != "test-key" {
			t.Errorf("X-API-KEY = %q", got)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if payload["q"] != "laksa recipe" {
			t.Errorf("q = %v", payload["q"])
		}

		fmt.Fprint(w, `{"organic": [
			{"title": "First", "link": "https://a.example.com"},
			{"title": "Second", "link": "https://b.example.com"}
		]}`)
	}))
	defer srv.Close()

	s := NewSerper("test-key", 10)
	s.endpoint = srv.URL

	results, err := s.Search(context.Background(), "laksa recipe")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []model.SearchResult{
		{Title: "First", URL: "https://a.example.com"},
		{Title: "Second", URL: "https://b.example.com"},
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, results[i], want[i])
		}
	}
}

func TestSerperSearch_CapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"organic": [
			{"title": "1", "link": "https://1.example.com"},
			{"title": "2", "link": "https://2.example.com"},
			{"title": "3", "link": "https://3.example.com"}
		]}`)
	}))
	defer srv.Close()

	s := NewSerper("test-key", 2)
	s.endpoint = srv.URL

	results, err := s.Search(context.Background(), "q")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestSerperSearch_MissingKey(t *testing.T) {
	s := NewSerper("  ", 10)
	if _, err := s.Search(context.Background(), "q"); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestSerperSearch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := NewSerper("test-key", 10)
	s.endpoint = srv.URL

	if _, err := s.Search(context.Background(), "q"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestBraveSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Subscription-Token"); got != "brave-key" {
			t.Errorf("X-Subscription-Token = %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "laksa recipe" {
			t.Errorf("q = %q", got)
		}
		fmt.Fprint(w, `{"web": {"results": [{"title": "Brave hit", "url": "https://b.example.com"}]}}`)
	}))
	defer srv.Close()

	b := NewBrave("brave-key", 10)
	b.endpoint = srv.URL

	results, err := b.Search(context.Background(), "laksa recipe")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].URL != "https://b.example.com" {
		t.Errorf("unexpected results: %+v", results)
	}
}

type scriptedProvider struct {
	name    string
	results []model.SearchResult
	err     error
	calls   int
}

func (p *scriptedProvider) Name() string { return p.name }

func (p *scriptedProvider) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	p.calls++
	return p.results, p.err
}

func TestChain_FirstNonEmptyWins(t *testing.T) {
	first := &scriptedProvider{name: "first", results: []model.SearchResult{{Title: "a", URL: "https://a.example.com"}}}
	second := &scriptedProvider{name: "second", results: []model.SearchResult{{Title: "b", URL: "https://b.example.com"}}}

	results, err := NewChain(first, second).Search(context.Background(), "q")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].URL != "https://a.example.com" {
		t.Errorf("unexpected results: %+v", results)
	}
	if second.calls != 0 {
		t.Errorf("second provider should not be consulted, got %d calls", second.calls)
	}
}

func TestChain_FallsThroughErrorsAndEmpties(t *testing.T) {
	failing := &scriptedProvider{name: "failing", err: errors.New("key rejected")}
	empty := &scriptedProvider{name: "empty"}
	working := &scriptedProvider{name: "working", results: []model.SearchResult{{Title: "c", URL: "https://c.example.com"}}}

	results, err := NewChain(failing, empty, working).Search(context.Background(), "q")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].URL != "https://c.example.com" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestChain_AllFailReturnsLastError(t *testing.T) {
	first := &scriptedProvider{name: "first", err: errors.New("first down")}
	lastErr := errors.New("second down")
	second := &scriptedProvider{name: "second", err: lastErr}

	results, err := NewChain(first, second).Search(context.Background(), "q")
	if len(results) != 0 {
		t.Errorf("expected no results, got %+v", results)
	}
	if !errors.Is(err, lastErr) {
		t.Errorf("got %v, want last provider's error", err)
	}
}
