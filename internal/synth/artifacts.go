// Package synth produces the response artifacts for a research query.
package synth

import (
	"strings"

	"github.com/inquest-dev/inquest/internal/model"
)

var (
	tableKeywords = []string{"table", "compare", "list", "dataframe"}
	graphKeywords = []string{"graph", "plot", "chart", "visualize"}
)

// DetectArtifacts maps query text to the set of requested artifact tags.
// This is a placeholder policy: simple keyword heuristics, deliberately kept
// as a pure function so it can be swapped for a learned classifier.
// Related insights and follow-up suggestions are always added by the
// synthesizer and are not part of the detected set.
func DetectArtifacts(query string) []string {
	lower := strings.ToLower(query)

	var tags []string
	if containsAny(lower, tableKeywords) {
		tags = append(tags, model.ArtifactTable)
	}
	if containsAny(lower, graphKeywords) {
		tags = append(tags, model.ArtifactGraph)
	}
	if len(tags) == 0 {
		tags = append(tags, model.ArtifactPoints)
	}
	return tags
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
