package synth

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/inquest-dev/inquest/internal/model"
)

// Artifact caps from the output contracts.
const (
	maxPoints   = 20
	maxInsights = 15
)

const (
	noPointsSentinel   = "No relevant information found in the fetched content for the query."
	noInsightsSentinel = "No related insights found."
)

// Generator is the generation collaborator consumed by the synthesizer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Synthesizer produces the requested artifacts concurrently, one
// independent task per artifact.
type Synthesizer struct {
	generator Generator
	charts    ChartRenderer
	logger    *zap.Logger
}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer(generator Generator, charts ChartRenderer, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{
		generator: generator,
		charts:    charts,
		logger:    logger,
	}
}

// taskResult is the explicit outcome of one artifact task. A failed task
// carries its type-appropriate default value alongside the error.
type taskResult struct {
	key   string
	value interface{}
	err   error
}

// Synthesize generates every requested artifact plus the always-present
// related insights and follow-up suggestions. Tasks run concurrently with
// no ordering dependency and no cross-task cancellation: a failing task
// degrades to its typed default and is logged, never aborting siblings.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, contents []string, tags []string) model.Bundle {
	requested := append(append([]string(nil), tags...), model.ArtifactInsights, model.ArtifactFollowUps)

	results := make(chan taskResult, len(requested))
	for _, tag := range requested {
		go func(tag string) {
			results <- s.runTask(ctx, tag, query, contents)
		}(tag)
	}

	bundle := make(model.Bundle, len(requested))
	for range requested {
		res := <-results
		if res.err != nil {
			s.logger.Warn("artifact task degraded to default",
				zap.String("artifact", res.key), zap.Error(res.err))
		}
		bundle[res.key] = res.value
	}

	return bundle
}

// runTask dispatches one artifact task by tag.
func (s *Synthesizer) runTask(ctx context.Context, tag, query string, contents []string) taskResult {
	switch tag {
	case model.ArtifactPoints:
		return s.generatePoints(ctx, query, contents)
	case model.ArtifactTable:
		return s.generateTable(ctx, query, contents)
	case model.ArtifactGraph:
		return s.generateGraph(ctx, query, contents)
	case model.ArtifactInsights:
		return s.generateInsights(ctx, query, contents)
	case model.ArtifactFollowUps:
		return s.generateFollowUps(ctx, query, contents)
	default:
		return taskResult{key: tag, value: nil, err: fmt.Errorf("unknown artifact tag: %s", tag)}
	}
}

func (s *Synthesizer) generatePoints(ctx context.Context, query string, contents []string) taskResult {
	prompt := fmt.Sprintf("Based on the following web content, generate 15-20 detailed bullet points that directly answer the query '%s', "+
		"including related insights, additional context, supporting details, and any relevant related fields or points for comprehensive research. "+
		"Ensure the information is in-depth and useful. Format as bullet points, each starting with '-'.\n\nContent:\n%s",
		query, joinContents(contents))

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return taskResult{key: model.ArtifactPoints, value: model.PointMap{}, err: err}
	}
	return taskResult{key: model.ArtifactPoints, value: parsePoints(raw, maxPoints, noPointsSentinel)}
}

func (s *Synthesizer) generateTable(ctx context.Context, query string, contents []string) taskResult {
	prompt := fmt.Sprintf("Based on the following web content, generate a comprehensive JSON array of objects representing a detailed table that answers the query '%s'. "+
		"Each object should have multiple keys for columns such as 'Item', 'Description', 'Category', 'Details', 'Impact', 'Source', and any other relevant fields. "+
		"Include as many rows as possible with relevant data. Output only valid JSON.\n\nContent:\n%s",
		query, joinContents(contents))

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return taskResult{key: model.ArtifactTable, value: []model.TableRow{}, err: err}
	}
	return taskResult{key: model.ArtifactTable, value: parseTable(raw)}
}

func (s *Synthesizer) generateGraph(ctx context.Context, query string, contents []string) taskResult {
	prompt := fmt.Sprintf("Based on the following web content, generate comprehensive JSON data for a detailed chart that visualizes the answer to the query '%s'. "+
		"Include 'type' (bar, line, pie), 'labels' (a list of strings for categories), 'values' (a corresponding list of numbers), and 'title'. "+
		"Output only valid JSON. If you cannot generate valid JSON, output an empty JSON object {}.\n\nContent:\n%s",
		query, joinContents(contents))

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return taskResult{key: model.ArtifactGraph, value: model.Graph{}, err: err}
	}

	data := parseGraphData(raw)
	if len(data.Pairs()) == 0 {
		return taskResult{key: model.ArtifactGraph, value: model.Graph{}}
	}

	graph, err := s.charts.Render(data)
	if err != nil {
		return taskResult{key: model.ArtifactGraph, value: model.Graph{}, err: err}
	}
	return taskResult{key: model.ArtifactGraph, value: graph}
}

func (s *Synthesizer) generateInsights(ctx context.Context, query string, contents []string) taskResult {
	prompt := fmt.Sprintf("Based on the following web content, generate 10-15 bullet points on related insights, additional context, related topics, "+
		"or interesting fields that complement the query '%s' for deeper research. Include broader implications, trends, or connected areas. "+
		"Format as bullet points, each starting with '-'.\n\nContent:\n%s",
		query, joinContents(contents))

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return taskResult{key: model.ArtifactInsights, value: model.PointMap{}, err: err}
	}
	return taskResult{key: model.ArtifactInsights, value: parsePoints(raw, maxInsights, noInsightsSentinel)}
}

func (s *Synthesizer) generateFollowUps(ctx context.Context, query string, contents []string) taskResult {
	prompt := fmt.Sprintf("Based on the query '%s' and the following content, generate 2-3 follow-up questions or suggestions useful for deeper research. "+
		"These should be related topics, additional details, or expansions on the original query. Format as a JSON array of strings.\n\nContent:\n%s",
		query, joinContents(contents))

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return taskResult{key: model.ArtifactFollowUps, value: []string{}, err: err}
	}
	return taskResult{key: model.ArtifactFollowUps, value: parseFollowUps(raw)}
}

func joinContents(contents []string) string {
	return strings.Join(contents, "\n\n")
}
