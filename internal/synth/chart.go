package synth

import (
	"bytes"
	"encoding/base64"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/inquest-dev/inquest/internal/model"
)

// ChartRenderer renders parsed graph data into an encoded image plus an
// explanatory caption.
type ChartRenderer interface {
	Render(data model.GraphData) (model.Graph, error)
}

// PNGRenderer renders charts as base64-encoded PNG images.
type PNGRenderer struct{}

// NewPNGRenderer creates the default chart renderer.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{}
}

// Render zips the data's labels and values into label-value pairs and draws
// a chart of the requested type (bar, line, or pie; bar is the default).
func (r *PNGRenderer) Render(data model.GraphData) (model.Graph, error) {
	pairs := data.Pairs()
	if len(pairs) == 0 {
		return model.Graph{}, fmt.Errorf("no label-value pairs to chart")
	}

	var buf bytes.Buffer
	var err error
	switch data.Type {
	case "pie":
		err = renderPie(data.Title, pairs, &buf)
	case "line":
		err = renderLine(data.Title, pairs, &buf)
	default:
		err = renderBar(data.Title, pairs, &buf)
	}
	if err != nil {
		return model.Graph{}, fmt.Errorf("render chart: %w", err)
	}

	return model.Graph{
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Explanation: caption(data),
	}, nil
}

func renderBar(title string, pairs []model.LabelValue, buf *bytes.Buffer) error {
	bars := make([]chart.Value, len(pairs))
	for i, p := range pairs {
		bars[i] = chart.Value{Label: p.Label, Value: p.Value}
	}

	barChart := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}
	return barChart.Render(chart.PNG, buf)
}

func renderLine(title string, pairs []model.LabelValue, buf *bytes.Buffer) error {
	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = float64(i)
		ys[i] = p.Value
	}

	lineChart := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 512,
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}
	return lineChart.Render(chart.PNG, buf)
}

func renderPie(title string, pairs []model.LabelValue, buf *bytes.Buffer) error {
	values := make([]chart.Value, len(pairs))
	for i, p := range pairs {
		values[i] = chart.Value{Label: p.Label, Value: p.Value}
	}

	pieChart := chart.PieChart{
		Title:  title,
		Width:  768,
		Height: 768,
		Values: values,
	}
	return pieChart.Render(chart.PNG, buf)
}

func caption(data model.GraphData) string {
	kind := data.Type
	if kind == "" {
		kind = "bar"
	}
	return fmt.Sprintf("This %s chart visualizes %q across %d categories. "+
		"Values are derived from the retrieved sources.", kind, data.Title, len(data.Labels))
}
