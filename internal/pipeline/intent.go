package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Intent labels a query's routing before retrieval begins.
type Intent string

const (
	IntentResearch     Intent = "research"
	IntentConversation Intent = "conversation"
)

// IntentClassifier routes a query to conversation or research using the
// generation collaborator. It has no side effects.
type IntentClassifier struct {
	generator Generator
	logger    *zap.Logger
}

// NewIntentClassifier creates an intent classifier.
func NewIntentClassifier(generator Generator, logger *zap.Logger) *IntentClassifier {
	return &IntentClassifier{generator: generator, logger: logger}
}

// Classify labels the query. If the collaborator fails or returns anything
// other than the two known labels, classification fails open to research:
// the safer, more expensive path.
func (c *IntentClassifier) Classify(ctx context.Context, query string) Intent {
	prompt := fmt.Sprintf("Classify the following user query as either 'research' or 'conversation'. "+
		"A research query asks for factual information that benefits from web sources; "+
		"a conversation query is chit-chat, a greeting, or a question about you. "+
		"Respond with exactly one word: research or conversation.\n\nQuery: %s", query)

	raw, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("intent classification failed, defaulting to research", zap.Error(err))
		return IntentResearch
	}

	switch strings.ToLower(strings.Trim(strings.TrimSpace(raw), ".'\"")) {
	case string(IntentConversation):
		return IntentConversation
	case string(IntentResearch):
		return IntentResearch
	default:
		c.logger.Warn("unexpected intent label, defaulting to research", zap.String("label", raw))
		return IntentResearch
	}
}
