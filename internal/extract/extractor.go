// Package extract turns cleaned source text into atomic claims.
package extract

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/model"
)

// maxClaimsPerSource caps extraction to the most relevant claims.
const maxClaimsPerSource = 5

// Generator is the generation collaborator consumed by the extractor.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Extractor extracts claims from retrieved content via the generation
// collaborator, falling back to local sentence splitting when the
// collaborator fails or returns nothing parseable.
type Extractor struct {
	generator Generator
	logger    *zap.Logger
}

// NewExtractor creates a claim extractor.
func NewExtractor(generator Generator, logger *zap.Logger) *Extractor {
	return &Extractor{generator: generator, logger: logger}
}

// Extract produces a flat claim list across all sources. Each claim is
// tagged with its source's LocalIndex and URL; scores are left for the
// trust and cross-validation stages to fill.
func (e *Extractor) Extract(ctx context.Context, query string, contents []model.RawContent) []model.Claim {
	var claims []model.Claim

	for _, content := range contents {
		if strings.TrimSpace(content.Text) == "" {
			continue
		}

		texts := e.extractOne(ctx, query, content)
		for _, text := range texts {
			claims = append(claims, model.Claim{
				Text:        text,
				SourceIndex: content.LocalIndex,
				URL:         content.URL,
				SourceText:  content.Text,
			})
		}
	}

	return claims
}

// extractOne runs a single-source extraction, local fallback included.
func (e *Extractor) extractOne(ctx context.Context, query string, content model.RawContent) []string {
	prompt := buildExtractionPrompt(query, content.Text)

	raw, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		e.logger.Warn("claim extraction failed, using sentence fallback",
			zap.Int("source", content.LocalIndex), zap.Error(err))
		return fallbackSentences(content.Text)
	}

	bullets := parseBullets(raw)
	if len(bullets) == 0 {
		e.logger.Warn("claim extraction returned nothing parseable, using sentence fallback",
			zap.Int("source", content.LocalIndex))
		return fallbackSentences(content.Text)
	}

	if len(bullets) > maxClaimsPerSource {
		bullets = bullets[:maxClaimsPerSource]
	}
	return bullets
}

// buildExtractionPrompt builds the single-source extraction prompt.
func buildExtractionPrompt(query, text string) string {
	return fmt.Sprintf("Extract only the key claims, facts, and detailed information that directly answer the query '%s' from the following text. "+
		"Do not include any information that is not directly related to the query. "+
		"Ensure each bullet point is directly relevant and provides information specifically requested by the query. "+
		"If no relevant information is found, return an empty list. "+
		"List them as comprehensive bullet points:\n\n%s", query, text)
}

// parseBullets parses generator output as a bullet list.
func parseBullets(raw string) []string {
	var bullets []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• ")
		line = strings.TrimSpace(line)
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

// fallbackSentences splits source text on sentence boundaries and keeps up
// to maxClaimsPerSource non-empty sentences.
func fallbackSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		current.Reset()
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
	}

	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	if len(sentences) > maxClaimsPerSource {
		sentences = sentences[:maxClaimsPerSource]
	}
	return sentences
}
