package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/model"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.response, g.err
}

func TestExtract_TagsClaimsWithSource(t *testing.T) {
	gen := &stubGenerator{response: "- inflation rose\n- rates held steady"}
	e := NewExtractor(gen, zap.NewNop())

	contents := []model.RawContent{
		{LocalIndex: 0, URL: "https://a.example.com", Text: "body a"},
		{LocalIndex: 1, URL: "https://b.example.com", Text: "body b"},
	}

	claims := e.Extract(context.Background(), "inflation", contents)

	if len(claims) != 4 {
		t.Fatalf("got %d claims, want 4", len(claims))
	}
	for _, c := range claims {
		want := contents[c.SourceIndex]
		if c.URL != want.URL || c.SourceText != want.Text {
			t.Errorf("claim %q mistagged: %+v", c.Text, c)
		}
	}
	if claims[0].Text != "inflation rose" {
		t.Errorf("unexpected first claim: %q", claims[0].Text)
	}
}

func TestExtract_CapsClaimsPerSource(t *testing.T) {
	var lines []string
	for i := 0; i < 9; i++ {
		lines = append(lines, "- a perfectly valid claim")
	}
	gen := &stubGenerator{response: strings.Join(lines, "\n")}
	e := NewExtractor(gen, zap.NewNop())

	claims := e.Extract(context.Background(), "q", []model.RawContent{
		{LocalIndex: 0, URL: "https://a.example.com", Text: "body"},
	})

	if len(claims) != maxClaimsPerSource {
		t.Errorf("got %d claims, want %d", len(claims), maxClaimsPerSource)
	}
}

func TestExtract_GeneratorErrorFallsBackToSentences(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	e := NewExtractor(gen, zap.NewNop())

	claims := e.Extract(context.Background(), "q", []model.RawContent{
		{LocalIndex: 0, URL: "https://a.example.com", Text: "First fact. Second fact! Third fact? Fourth. Fifth. Sixth. Seventh."},
	})

	if len(claims) != maxClaimsPerSource {
		t.Fatalf("got %d claims, want %d from sentence fallback", len(claims), maxClaimsPerSource)
	}
	if claims[0].Text != "First fact" {
		t.Errorf("unexpected first fallback claim: %q", claims[0].Text)
	}
}

func TestExtract_UnparseableOutputFallsBackToSentences(t *testing.T) {
	gen := &stubGenerator{response: "   \n\n  "}
	e := NewExtractor(gen, zap.NewNop())

	claims := e.Extract(context.Background(), "q", []model.RawContent{
		{LocalIndex: 0, URL: "https://a.example.com", Text: "Only one fact here."},
	})

	if len(claims) != 1 || claims[0].Text != "Only one fact here" {
		t.Errorf("expected single fallback sentence, got %v", claims)
	}
}

func TestExtract_SkipsEmptySources(t *testing.T) {
	gen := &stubGenerator{response: "- something"}
	e := NewExtractor(gen, zap.NewNop())

	claims := e.Extract(context.Background(), "q", []model.RawContent{
		{LocalIndex: 0, URL: "https://a.example.com", Text: "   "},
	})

	if len(claims) != 0 {
		t.Errorf("empty source should yield no claims, got %v", claims)
	}
	if gen.calls != 0 {
		t.Errorf("generator should not be called for empty sources, got %d calls", gen.calls)
	}
}
