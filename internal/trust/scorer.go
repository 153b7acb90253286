// Package trust implements deterministic per-claim credibility scoring.
package trust

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/inquest-dev/inquest/internal/config"
	"github.com/inquest-dev/inquest/internal/model"
)

// Fixed weights of the five sub-scores.
const (
	weightDomainAuthority = 0.3
	weightRecency         = 0.2
	weightAuthor          = 0.2
	weightStructural      = 0.2
	weightCrossReference  = 0.1

	// overrideBonus is added once for sources with approved reputation.
	overrideBonus = 0.2

	// approvedThreshold separates approved overrides from flagged ones.
	// Flagged sources get no bonus and no penalty.
	approvedThreshold = 0.5
)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`),
	regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`),
	regexp.MustCompile(`\b\d{4}/\d{2}/\d{2}\b`),
}

// Scorer computes deterministic [0,1] trust scores. It reads the reputation
// store but never writes it; scoring is side-effect-free.
type Scorer struct {
	highAuthority []string
	reputation    *ReputationStore
}

// NewScorer creates a scorer over the curated high-authority domain list.
func NewScorer(cfg config.TrustConfig, reputation *ReputationStore) *Scorer {
	return &Scorer{
		highAuthority: cfg.HighAuthorityDomains,
		reputation:    reputation,
	}
}

// ScoreAll fills TrustScore on every claim in the request.
func (s *Scorer) ScoreAll(claims []model.Claim) []model.Claim {
	for i := range claims {
		claims[i].TrustScore = s.Score(claims[i], claims)
	}
	return claims
}

// Score computes the weighted trust score for one claim given the full
// claim set of its request. A claim missing its URL or source text scores 0.
func (s *Scorer) Score(claim model.Claim, allClaims []model.Claim) float64 {
	if claim.URL == "" || claim.SourceText == "" {
		return 0
	}

	score := s.domainAuthority(claim.URL)*weightDomainAuthority +
		recency(claim.SourceText)*weightRecency +
		authorCredibility(claim.SourceText)*weightAuthor +
		structuralCompleteness(claim.SourceText)*weightStructural +
		crossReference(allClaims)*weightCrossReference

	if override, ok := s.reputation.Get(claim.URL); ok && override > approvedThreshold {
		score += overrideBonus
	}

	return clamp01(score)
}

// domainAuthority scores the URL host: curated high-authority domains 0.9,
// government/education TLDs 0.8, organization TLDs 0.7, everything else 0.5.
func (s *Scorer) domainAuthority(rawURL string) float64 {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return 0.5
	}
	host := strings.ToLower(parsed.Host)

	for _, domain := range s.highAuthority {
		if strings.Contains(host, domain) {
			return 0.9
		}
	}
	for _, tld := range []string{".gov", ".edu", ".ac.uk", ".edu.au"} {
		if strings.Contains(host, tld) {
			return 0.8
		}
	}
	if strings.Contains(host, ".org") {
		return 0.7
	}
	return 0.5
}

// recency scores 0.8 when the source text carries a recognizable date
// pattern, 0.6 otherwise.
func recency(text string) float64 {
	for _, pattern := range datePatterns {
		if pattern.MatchString(text) {
			return 0.8
		}
	}
	return 0.6
}

// authorCredibility scores 0.7 when byline markers are present.
func authorCredibility(text string) float64 {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "author") || strings.Contains(lower, "by ") || strings.Contains(lower, "written by") {
		return 0.7
	}
	return 0.5
}

// structuralCompleteness scores additively for length, link tokens,
// sentence count, and structural markers, capped at 1.0.
func structuralCompleteness(text string) float64 {
	score := 0.0

	switch length := len(text); {
	case length > 2000:
		score += 0.4
	case length > 1000:
		score += 0.3
	case length > 500:
		score += 0.2
	}

	if strings.Contains(text, "http") || strings.Contains(text, "www.") {
		score += 0.2
	}

	if len(strings.Split(text, ".")) > 10 {
		score += 0.2
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "table") || strings.Contains(lower, "list") || strings.Contains(lower, "figure") {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// crossReference scores 0.7 when the request's claims span more than one
// distinct source.
func crossReference(claims []model.Claim) float64 {
	sources := make(map[int]struct{})
	for _, c := range claims {
		sources[c.SourceIndex] = struct{}{}
	}
	if len(sources) > 1 {
		return 0.7
	}
	return 0.5
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
