package synth

import (
	"encoding/json"
	"strings"

	"github.com/inquest-dev/inquest/internal/model"
)

// minLineLength filters out fragments too short to be useful bullets.
const minLineLength = 5

// boilerplatePrefixes mark generator framing lines ("Here are the
// points...") that are not content.
var boilerplatePrefixes = []string{"here", "the", "based", "content", "points", "bullet"}

// parsePoints parses free-text bullet output into an index-keyed point map,
// filtering short and boilerplate lines and capping the count. When no
// usable lines remain, a single zero-confidence sentinel entry carries the
// given text.
func parsePoints(raw string, limit int, sentinel string) model.PointMap {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• ")
		line = strings.TrimSpace(line)
		if len(line) <= minLineLength || isBoilerplate(line) {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= limit {
			break
		}
	}

	points := make(model.PointMap)
	if len(lines) == 0 {
		points[0] = model.Point{Text: sentinel, TrustScore: 0, Confidence: 0}
		return points
	}

	for i, line := range lines {
		points[i] = model.Point{Text: line, TrustScore: 1.0, Confidence: 1.0}
	}
	return points
}

func isBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range boilerplatePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// parseTable parses structured array output as a list of row objects.
// Malformed output yields an empty list.
func parseTable(raw string) []model.TableRow {
	slice := sliceJSON(raw, '[', ']')
	if slice == "" {
		return []model.TableRow{}
	}

	var rows []model.TableRow
	if err := json.Unmarshal([]byte(slice), &rows); err != nil {
		return []model.TableRow{}
	}
	return rows
}

// parseGraphData parses structured object output as chart data. Malformed
// output yields an empty object.
func parseGraphData(raw string) model.GraphData {
	slice := sliceJSON(raw, '{', '}')
	if slice == "" {
		return model.GraphData{}
	}

	var data model.GraphData
	if err := json.Unmarshal([]byte(slice), &data); err != nil {
		return model.GraphData{}
	}
	return data
}

// parseFollowUps parses structured array output as a list of strings.
// Malformed output yields an empty list.
func parseFollowUps(raw string) []string {
	slice := sliceJSON(raw, '[', ']')
	if slice == "" {
		return []string{}
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(slice), &suggestions); err != nil {
		return []string{}
	}
	return suggestions
}

// sliceJSON cuts the first open..last close span out of generator output,
// tolerating prose or code fences around the JSON payload.
func sliceJSON(raw string, opener, closer byte) string {
	start := strings.IndexByte(raw, opener)
	end := strings.LastIndexByte(raw, closer)
	if start < 0 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
