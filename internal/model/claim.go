package model

// SearchResult is a single hit returned by a search provider, in provider
// rank order.
type SearchResult struct {
	Title string `json:"title"`
	URL   string `json:"link"`
}

// RawContent is the cleaned text of one successfully fetched source.
// LocalIndex is the position within the list of successful fetches, not the
// original search rank: failed fetches are dropped, never null-padded.
type RawContent struct {
	LocalIndex int    `json:"local_index"`
	URL        string `json:"url"`
	Text       string `json:"text"`
}

// Claim represents a factual assertion extracted from one source.
// TrustScore and Confidence are filled in by later stages and are always
// clamped to [0,1].
type Claim struct {
	Text          string  `json:"text"`
	SourceIndex   int     `json:"source"` // matches RawContent.LocalIndex
	URL           string  `json:"url"`
	SourceText    string  `json:"-"` // full cleaned source text, scoring input only
	TrustScore    float64 `json:"trust_score"`
	Confidence    float64 `json:"confidence"`
	Contradiction bool    `json:"contradiction"`
}

// Cluster is a non-empty group of textually similar claims. The set of
// clusters for one request is a total partition of that request's claims.
type Cluster []Claim
