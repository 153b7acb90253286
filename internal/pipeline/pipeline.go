// Package pipeline orchestrates the retrieval-to-synthesis flow:
// cache lookup → intent classification → retrieval → claim extraction →
// trust scoring → cross-validation → synthesis → cache write.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/model"
	"github.com/inquest-dev/inquest/internal/respcache"
	"github.com/inquest-dev/inquest/internal/synth"
	"github.com/inquest-dev/inquest/internal/trust"
	"github.com/inquest-dev/inquest/internal/validate"
)

// ErrEmptyQuery rejects blank input before any stage runs.
var ErrEmptyQuery = errors.New("query cannot be empty")

// Generator is the generation collaborator used for intent classification
// and conversational replies.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Retriever is the retrieval coordinator boundary.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]model.RawContent, error)
}

// ClaimExtractor is the claim extraction boundary.
type ClaimExtractor interface {
	Extract(ctx context.Context, query string, contents []model.RawContent) []model.Claim
}

// Synthesizer is the artifact synthesis boundary.
type Synthesizer interface {
	Synthesize(ctx context.Context, query string, contents []string, tags []string) model.Bundle
}

// Pipeline wires the stages together. All concurrency is request-scoped;
// only the reputation store and the response cache are shared across
// requests.
type Pipeline struct {
	cache       *respcache.Cache
	intents     *IntentClassifier
	retriever   Retriever
	extractor   ClaimExtractor
	scorer      *trust.Scorer
	validator   *validate.Validator
	synthesizer Synthesizer
	generator   Generator
	logger      *zap.Logger
}

// New creates a pipeline from its stage implementations.
func New(
	cache *respcache.Cache,
	intents *IntentClassifier,
	retriever Retriever,
	extractor ClaimExtractor,
	scorer *trust.Scorer,
	validator *validate.Validator,
	synthesizer Synthesizer,
	generator Generator,
	logger *zap.Logger,
) *Pipeline {
	return &Pipeline{
		cache:       cache,
		intents:     intents,
		retriever:   retriever,
		extractor:   extractor,
		scorer:      scorer,
		validator:   validator,
		synthesizer: synthesizer,
		generator:   generator,
		logger:      logger,
	}
}

// Run answers one query. A cache hit bypasses classification, retrieval,
// scoring, and synthesis entirely. The only fatal stage failure is
// retrieval exhaustion; everything else degrades.
func (p *Pipeline) Run(ctx context.Context, query string) (model.Bundle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if bundle, ok := p.cache.Get(query); ok {
		p.logger.Debug("cache hit", zap.String("query", query))
		return bundle, nil
	}

	if p.intents.Classify(ctx, query) == IntentConversation {
		bundle := model.ConversationalBundle(p.converse(ctx, query))
		p.cache.Set(query, bundle)
		return bundle, nil
	}

	contents, err := p.retriever.Retrieve(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	claims := p.extractor.Extract(ctx, query, contents)
	claims = p.scorer.ScoreAll(claims)
	claims = p.validator.CrossValidate(claims)
	p.logClaimStats(query, claims)

	texts := make([]string, len(contents))
	for i, c := range contents {
		texts[i] = c.Text
	}

	tags := synth.DetectArtifacts(query)
	bundle := p.synthesizer.Synthesize(ctx, query, texts, tags)

	p.cache.Set(query, bundle)
	return bundle, nil
}

// converse answers a conversational query with a single generation call,
// degrading to a fixed reply on provider failure.
func (p *Pipeline) converse(ctx context.Context, query string) string {
	prompt := fmt.Sprintf("You are a helpful research assistant. Reply briefly and conversationally to:\n\n%s", query)

	reply, err := p.generator.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(reply) == "" {
		p.logger.Warn("conversational reply failed", zap.Error(err))
		return "Sorry, I could not come up with a reply just now. Please try again."
	}
	return reply
}

// logClaimStats records stage diagnostics for the scored, cross-validated
// claim set.
func (p *Pipeline) logClaimStats(query string, claims []model.Claim) {
	if len(claims) == 0 {
		p.logger.Debug("no claims extracted", zap.String("query", query))
		return
	}

	var trustSum, confSum float64
	for _, c := range claims {
		trustSum += c.TrustScore
		confSum += c.Confidence
	}
	n := float64(len(claims))

	p.logger.Debug("claims validated",
		zap.String("query", query),
		zap.Int("claims", len(claims)),
		zap.Float64("avg_trust", trustSum/n),
		zap.Float64("avg_confidence", confSum/n))
}
