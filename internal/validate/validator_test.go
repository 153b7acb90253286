package validate

import (
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/model"
)

func makeClaims(n int) []model.Claim {
	topics := []string{
		"inflation rose sharply in the euro area",
		"unemployment fell to record lows last quarter",
		"central banks raised interest rates again",
		"consumer spending slowed across retail sectors",
		"energy prices drove most of the increase",
	}
	claims := make([]model.Claim, n)
	for i := 0; i < n; i++ {
		claims[i] = model.Claim{
			Text:        fmt.Sprintf("%s (report %d)", topics[i%len(topics)], i),
			SourceIndex: i % 3,
			URL:         fmt.Sprintf("https://example.com/%d", i%3),
			TrustScore:  0.5,
		}
	}
	return claims
}

func TestCluster_CountIsMinClaimsFive(t *testing.T) {
	v := NewValidator(zap.NewNop())

	cases := []struct {
		claims int
		want   int
	}{
		{0, 0},
		{1, 1},
		{3, 3},
		{5, 5},
		{12, 5},
		{50, 5},
	}

	for _, tc := range cases {
		clusters := v.Cluster(makeClaims(tc.claims))
		if len(clusters) != tc.want {
			t.Errorf("%d claims: got %d clusters, want %d", tc.claims, len(clusters), tc.want)
		}
	}
}

func TestCluster_PartitionIsTotal(t *testing.T) {
	v := NewValidator(zap.NewNop())
	claims := makeClaims(17)

	clusters := v.Cluster(claims)

	seen := make(map[string]int)
	total := 0
	for _, cluster := range clusters {
		if len(cluster) == 0 {
			t.Error("found empty cluster")
		}
		for _, c := range cluster {
			seen[c.Text]++
			total++
		}
	}

	if total != len(claims) {
		t.Fatalf("partition has %d claims, want %d", total, len(claims))
	}
	for text, count := range seen {
		if count != 1 {
			t.Errorf("claim %q appears %d times in partition", text, count)
		}
	}
}

func TestCluster_IdenticalTextsStillPartition(t *testing.T) {
	v := NewValidator(zap.NewNop())

	claims := make([]model.Claim, 8)
	for i := range claims {
		claims[i] = model.Claim{Text: "the same claim every time", TrustScore: 0.4}
	}

	clusters := v.Cluster(claims)
	if len(clusters) != 5 {
		t.Fatalf("got %d clusters, want 5", len(clusters))
	}

	total := 0
	for _, cluster := range clusters {
		if len(cluster) == 0 {
			t.Error("found empty cluster with identical inputs")
		}
		total += len(cluster)
	}
	if total != len(claims) {
		t.Errorf("partition has %d claims, want %d", total, len(claims))
	}
}

func TestCrossValidate_EmptyClaims(t *testing.T) {
	v := NewValidator(zap.NewNop())

	out := v.CrossValidate(nil)
	if len(out) != 0 {
		t.Errorf("expected no claims, got %d", len(out))
	}
}

func TestCrossValidate_ConfidenceInRangeAndContradictionFalse(t *testing.T) {
	v := NewValidator(zap.NewNop())
	claims := makeClaims(9)

	out := v.CrossValidate(claims)

	if len(out) != len(claims) {
		t.Fatalf("got %d claims, want %d", len(out), len(claims))
	}
	for _, c := range out {
		if c.Confidence < 0 || c.Confidence > 1 {
			t.Errorf("confidence %v out of [0,1]", c.Confidence)
		}
		if c.Contradiction {
			t.Errorf("contradiction detection is a no-op stage; claim %q marked contradictory", c.Text)
		}
	}
}

func TestCrossValidate_SingleClaimConfidence(t *testing.T) {
	v := NewValidator(zap.NewNop())
	claims := []model.Claim{{Text: "solo claim", TrustScore: 0.8}}

	out := v.CrossValidate(claims)

	if len(out) != 1 {
		t.Fatalf("got %d claims, want 1", len(out))
	}
	// One cluster of one claim: mean(0.8) * (1/1) = 0.8
	if out[0].Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", out[0].Confidence)
	}
}

func TestVectorize_HandlesStopwordOnlyText(t *testing.T) {
	vectors := vectorize([]string{"the and of", "inflation data"})
	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	for _, v := range vectors[0] {
		if v != 0 {
			t.Errorf("stopword-only text should vectorize to zeros, got %v", vectors[0])
			break
		}
	}
}
