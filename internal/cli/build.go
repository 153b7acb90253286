package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/config"
	"github.com/inquest-dev/inquest/internal/extract"
	"github.com/inquest-dev/inquest/internal/llm"
	"github.com/inquest-dev/inquest/internal/pipeline"
	"github.com/inquest-dev/inquest/internal/respcache"
	"github.com/inquest-dev/inquest/internal/retrieve"
	"github.com/inquest-dev/inquest/internal/search"
	"github.com/inquest-dev/inquest/internal/synth"
	"github.com/inquest-dev/inquest/internal/trust"
	"github.com/inquest-dev/inquest/internal/validate"
)

// newLogger builds the process logger.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildPipeline assembles the full pipeline and its shared stores from
// configuration.
func buildPipeline(cfg *config.Config, logger *zap.Logger) (*pipeline.Pipeline, *trust.ReputationStore, error) {
	fillFromEnv(cfg)

	generator, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("create LLM provider: %w", err)
	}

	searcher := buildSearchChain(cfg.Search)
	fetcher := retrieve.NewFetcher(cfg.HTTP)
	coordinator := retrieve.NewCoordinator(searcher, fetcher, cfg.HTTP.FetchTimeout, logger)

	reputation := trust.NewReputationStore()
	scorer := trust.NewScorer(cfg.Trust, reputation)

	p := pipeline.New(
		respcache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries),
		pipeline.NewIntentClassifier(generator, logger),
		coordinator,
		extract.NewExtractor(generator, logger),
		scorer,
		validate.NewValidator(logger),
		synth.NewSynthesizer(generator, synth.NewPNGRenderer(), logger),
		generator,
		logger,
	)

	return p, reputation, nil
}

// buildSearchChain orders the providers so the configured one runs first
// and the other takes over when it comes back empty.
func buildSearchChain(cfg config.SearchConfig) *search.Chain {
	serper := search.NewSerper(cfg.SerperAPIKey, cfg.MaxResults)
	brave := search.NewBrave(cfg.BraveAPIKey, cfg.MaxResults)

	if cfg.Provider == "brave" {
		return search.NewChain(brave, serper)
	}
	return search.NewChain(serper, brave)
}

// fillFromEnv reads API keys from the conventional environment variables
// when the config leaves them blank.
func fillFromEnv(cfg *config.Config) {
	if cfg.LLM.APIKey == "" && cfg.LLM.Provider == "openai" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.LLM.BaseURL == "" && cfg.LLM.Provider == "ollama" {
		cfg.LLM.BaseURL = os.Getenv("OLLAMA_BASE_URL")
	}
	if cfg.Search.SerperAPIKey == "" {
		cfg.Search.SerperAPIKey = os.Getenv("SERPER_API_KEY")
	}
	if cfg.Search.BraveAPIKey == "" {
		cfg.Search.BraveAPIKey = os.Getenv("BRAVE_API_KEY")
	}
}
