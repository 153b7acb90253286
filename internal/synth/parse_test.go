package synth

import (
	"testing"
)

func TestParsePoints_FiltersAndCaps(t *testing.T) {
	raw := "Here are the points you asked for:\n" +
		"- Inflation rose 3.2% in 2024 across the euro area\n" +
		"- tiny\n" +
		"- Unemployment fell to a record low in Japan\n" +
		"\n" +
		"- Central banks held rates steady through the spring\n"

	points := parsePoints(raw, 2, "nothing found")

	if len(points) != 2 {
		t.Fatalf("got %d points, want 2 (capped)", len(points))
	}
	if points[0].Text != "Inflation rose 3.2% in 2024 across the euro area" {
		t.Errorf("unexpected first point: %q", points[0].Text)
	}
	for i, p := range points {
		if p.TrustScore != 1.0 || p.Confidence != 1.0 {
			t.Errorf("point %d: expected default scores 1.0, got %v/%v", i, p.TrustScore, p.Confidence)
		}
	}
}

func TestParsePoints_SentinelWhenNothingUsable(t *testing.T) {
	points := parsePoints("here is some framing\nthe content was thin\n- ok", 20, "nothing found")

	if len(points) != 1 {
		t.Fatalf("got %d points, want 1 sentinel", len(points))
	}
	sentinel := points[0]
	if sentinel.Text != "nothing found" || sentinel.TrustScore != 0 || sentinel.Confidence != 0 {
		t.Errorf("unexpected sentinel: %+v", sentinel)
	}
}

func TestParseTable(t *testing.T) {
	raw := "Sure, here is the table:\n```json\n" +
		`[{"Item": "Canada", "Rate": 2.9}, {"Item": "Japan", "Rate": 2.2}]` +
		"\n```"

	rows := parseTable(raw)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["Item"] != "Canada" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
}

func TestParseTable_MalformedYieldsEmptyList(t *testing.T) {
	for _, raw := range []string{"", "no json here", "[{broken", "{\"not\": \"an array\"}"} {
		rows := parseTable(raw)
		if rows == nil || len(rows) != 0 {
			t.Errorf("parseTable(%q) = %v, want empty list", raw, rows)
		}
	}
}

func TestParseGraphData(t *testing.T) {
	raw := `Here you go: {"type": "bar", "labels": ["US", "UK"], "values": [3.1, 2.4], "title": "Inflation"}`

	data := parseGraphData(raw)
	if data.Type != "bar" || data.Title != "Inflation" {
		t.Errorf("unexpected graph data: %+v", data)
	}

	pairs := data.Pairs()
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(pairs))
	}
	if pairs[1].Label != "UK" || pairs[1].Value != 2.4 {
		t.Errorf("unexpected pair: %+v", pairs[1])
	}
}

func TestParseGraphData_MalformedYieldsEmptyObject(t *testing.T) {
	data := parseGraphData("not json at all")
	if data.Type != "" || len(data.Labels) != 0 || len(data.Values) != 0 {
		t.Errorf("expected empty graph data, got %+v", data)
	}
}

func TestParseGraphData_MismatchedLengthsZipToShorter(t *testing.T) {
	data := parseGraphData(`{"type": "bar", "labels": ["a", "b", "c"], "values": [1]}`)
	if pairs := data.Pairs(); len(pairs) != 1 {
		t.Errorf("got %d pairs, want 1", len(pairs))
	}
}

func TestParseFollowUps(t *testing.T) {
	raw := `["How does core inflation differ?", "What drove 2023 energy prices?"]`

	suggestions := parseFollowUps(raw)
	if len(suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(suggestions))
	}

	if got := parseFollowUps("not a list"); got == nil || len(got) != 0 {
		t.Errorf("malformed follow-ups should yield empty list, got %v", got)
	}
}
