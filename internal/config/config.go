// Package config holds the runtime configuration for inquest.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the complete runtime configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	HTTP   HTTPConfig   `yaml:"http" mapstructure:"http"`
	Search SearchConfig `yaml:"search" mapstructure:"search"`
	LLM    LLMConfig    `yaml:"llm" mapstructure:"llm"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Trust  TrustConfig  `yaml:"trust" mapstructure:"trust"`
}

// ServerConfig configures the HTTP API surface.
type ServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

// HTTPConfig configures outbound source fetching.
type HTTPConfig struct {
	FetchTimeout  time.Duration `yaml:"fetch_timeout" mapstructure:"fetch_timeout"`
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	RatePerDomain float64       `yaml:"rate_per_domain" mapstructure:"rate_per_domain"`
}

// SearchConfig configures the search providers.
type SearchConfig struct {
	Provider     string `yaml:"provider" mapstructure:"provider"` // serper, brave
	SerperAPIKey string `yaml:"serper_api_key" mapstructure:"serper_api_key"`
	BraveAPIKey  string `yaml:"brave_api_key" mapstructure:"brave_api_key"`
	MaxResults   int    `yaml:"max_results" mapstructure:"max_results"`
}

// LLMConfig configures the generation collaborator.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // openai, ollama
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// CacheConfig bounds the response cache.
type CacheConfig struct {
	TTL        time.Duration `yaml:"ttl" mapstructure:"ttl"`
	MaxEntries int           `yaml:"max_entries" mapstructure:"max_entries"`
}

// TrustConfig tunes the trust scorer.
type TrustConfig struct {
	// HighAuthorityDomains is the curated list matched for the 0.9 domain
	// authority tier. Substring match against the URL host.
	HighAuthorityDomains []string `yaml:"high_authority_domains" mapstructure:"high_authority_domains"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		HTTP: HTTPConfig{
			FetchTimeout:  10 * time.Second,
			UserAgent:     "Inquest/0.1 (+https://github.com/inquest-dev/inquest)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
			RatePerDomain: 2.0,
		},
		Search: SearchConfig{
			Provider:   "serper",
			MaxResults: 10,
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			TTL:        5 * time.Minute,
			MaxEntries: 100,
		},
		Trust: TrustConfig{
			HighAuthorityDomains: []string{
				"wikipedia.org", "bbc.com", "nytimes.com", "reuters.com",
				"apnews.com", "theguardian.com", "cnn.com", "foxnews.com",
				"wsj.com", "forbes.com", "bloomberg.com", "economist.com",
			},
		},
	}
}

// Load merges viper state (config file, env, bound flags) over the defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
