// Package validate cross-validates claims by clustering textually similar
// ones and deriving confidence from cluster agreement.
package validate

import (
	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/model"
)

// maxClusters caps the partition size regardless of claim count.
const maxClusters = 5

// Validator runs the cross-validation engine over one request's claims.
type Validator struct {
	logger *zap.Logger
}

// NewValidator creates a cross-validator.
func NewValidator(logger *zap.Logger) *Validator {
	return &Validator{logger: logger}
}

// CrossValidate clusters the claims, runs contradiction detection over each
// cluster, and assigns confidence from cluster agreement. The returned list
// carries every input claim exactly once with final confidence and
// contradiction flags.
func (v *Validator) CrossValidate(claims []model.Claim) []model.Claim {
	clusters := v.Cluster(claims)

	for i := range clusters {
		clusters[i] = markContradictions(clusters[i])
	}

	return assignConfidence(clusters)
}

// Cluster partitions the claims into min(claimCount, maxClusters) clusters
// by k-means over TF-IDF vectors. Zero claims produce zero clusters; the
// clustering algorithm is never invoked with k == 0.
func (v *Validator) Cluster(claims []model.Claim) []model.Cluster {
	if len(claims) == 0 {
		return nil
	}

	k := len(claims)
	if k > maxClusters {
		k = maxClusters
	}

	texts := make([]string, len(claims))
	for i, c := range claims {
		texts[i] = c.Text
	}

	assignments := kmeans(vectorize(texts), k)

	clusters := make([]model.Cluster, k)
	for i, claim := range claims {
		clusters[assignments[i]] = append(clusters[assignments[i]], claim)
	}

	v.logger.Debug("clustered claims", zap.Int("claims", len(claims)), zap.Int("clusters", k))
	return clusters
}

// markContradictions is the contradiction-detection stage. It is an
// extension point: detection logic is not implemented yet, so every claim
// is marked contradiction-free.
func markContradictions(cluster model.Cluster) model.Cluster {
	for i := range cluster {
		cluster[i].Contradiction = false
	}
	return cluster
}

// assignConfidence derives each claim's confidence from its cluster: the
// mean trust score of the cluster members weighted by the cluster's share
// of the partition.
func assignConfidence(clusters []model.Cluster) []model.Claim {
	total := len(clusters)

	var all []model.Claim
	for _, cluster := range clusters {
		var sum float64
		for _, c := range cluster {
			sum += c.TrustScore
		}

		var confidence float64
		if total > 0 && len(cluster) > 0 {
			mean := sum / float64(len(cluster))
			confidence = mean * (float64(len(cluster)) / float64(total))
		}

		for _, c := range cluster {
			c.Confidence = clampConfidence(confidence)
			all = append(all, c)
		}
	}

	return all
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
