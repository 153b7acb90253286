package trust

import "sync"

// Override scores written by the administrative approve/flag operations.
const (
	approvedScore   = 1.0
	unreliableScore = 0.1
)

// ReputationStore is the process-wide registry of manually approved or
// flagged source URLs. Writes are last-write-wins; entries never expire.
// A scoring pass already in flight when a write lands may observe stale
// reputation; that is accepted.
type ReputationStore struct {
	mu     sync.RWMutex
	scores map[string]float64
}

// NewReputationStore creates an empty reputation store.
func NewReputationStore() *ReputationStore {
	return &ReputationStore{scores: make(map[string]float64)}
}

// Get returns the override score for a URL, if one was ever set.
func (s *ReputationStore) Get(url string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.scores[url]
	return score, ok
}

// Approve marks a source as trusted.
func (s *ReputationStore) Approve(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[url] = approvedScore
}

// Flag marks a source as unreliable. This lowers the override score but the
// scorer never subtracts for it; suppression of flagged sources is an
// upstream concern.
func (s *ReputationStore) Flag(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[url] = unreliableScore
}
