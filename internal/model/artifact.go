package model

// Artifact keys present in a response bundle. A bundle carries only the keys
// for artifacts actually requested; insights and follow-ups are always
// requested.
const (
	ArtifactPoints    = "points"
	ArtifactTable     = "table"
	ArtifactGraph     = "graph"
	ArtifactInsights  = "related_insights"
	ArtifactFollowUps = "follow_up_suggestions"
	ArtifactReply     = "reply"
)

// Point is one synthesized bullet with its credibility scores.
type Point struct {
	Text       string  `json:"text"`
	TrustScore float64 `json:"trust_score"`
	Confidence float64 `json:"confidence"`
}

// PointMap is an index-keyed set of points, matching the wire shape of the
// points and related_insights artifacts.
type PointMap map[int]Point

// TableRow is one row of the table artifact. Column names come from the
// generation collaborator and are not fixed.
type TableRow map[string]interface{}

// GraphData is the structured chart description parsed from the generation
// collaborator before rendering.
type GraphData struct {
	Type   string    `json:"type"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Title  string    `json:"title"`
}

// Graph is the rendered chart artifact.
type Graph struct {
	ImageBase64 string `json:"image_base64"`
	Explanation string `json:"explanation"`
}

// LabelValue pairs one chart label with its value.
type LabelValue struct {
	Label string
	Value float64
}

// Pairs zips labels and values into label-value pairs, stopping at the
// shorter list.
func (g GraphData) Pairs() []LabelValue {
	n := len(g.Labels)
	if len(g.Values) < n {
		n = len(g.Values)
	}
	pairs := make([]LabelValue, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, LabelValue{Label: g.Labels[i], Value: g.Values[i]})
	}
	return pairs
}

// Bundle is the synthesized response: artifact key → artifact value.
// A conversational reply is a bundle with the single "reply" key.
type Bundle map[string]interface{}

// ConversationalBundle wraps a direct reply in bundle form.
func ConversationalBundle(reply string) Bundle {
	return Bundle{ArtifactReply: reply}
}
