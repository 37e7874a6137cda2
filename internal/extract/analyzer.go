package extract

import (
	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// complexityWeights score each statement type when estimating how costly a
// conversation is to process.
var complexityWeights = map[schemas.StatementType]float64{
	schemas.StatementFunctional:    1.0,
	schemas.StatementNonFunctional: 1.5,
	schemas.StatementConstraint:    2.0,
	schemas.StatementBusinessRule:  1.2,
	schemas.StatementEvolution:     2.5,
}

const (
	baseProcessingSeconds = 5.0
	maxComplexityScore    = 10.0
	maxKeyConcepts        = 20
)

// AnalyzeComplexity produces the statement-type histogram and a 0-10
// complexity score for a conversation.
func (e *Extractor) AnalyzeComplexity(conv *schemas.Conversation) schemas.ConversationAnalysis {
	types := map[schemas.StatementType]int{}
	totalLength := 0
	for _, stmt := range conv.Statements {
		types[stmt.Type]++
		totalLength += len(stmt.Content)
	}

	count := len(conv.Statements)
	analysis := schemas.ConversationAnalysis{
		StatementCount: count,
		StatementTypes: types,
		TotalLength:    totalLength,
	}
	if count == 0 {
		return analysis
	}

	score := float64(count) * 0.1
	for _, stmt := range conv.Statements {
		weight, ok := complexityWeights[stmt.Type]
		if !ok {
			weight = 1.0
		}
		score += weight
	}
	score /= float64(count)
	if score > maxComplexityScore {
		score = maxComplexityScore
	}

	analysis.AverageLength = float64(totalLength) / float64(count)
	analysis.ComplexityScore = score
	analysis.EstimatedProcessingTime = baseProcessingSeconds * (1 + score/maxComplexityScore)
	return analysis
}

// KeyConcepts unions the entities found across every statement.
func (e *Extractor) KeyConcepts(conv *schemas.Conversation) []string {
	concepts := map[string]struct{}{}
	for _, stmt := range conv.Statements {
		for _, ent := range e.ExtractEntities(stmt.Content) {
			concepts[ent] = struct{}{}
		}
	}
	return sortedKeys(concepts)
}

// Summarize pairs the complexity analysis with the leading key concepts.
func (e *Extractor) Summarize(conv *schemas.Conversation) schemas.ConversationSummary {
	concepts := e.KeyConcepts(conv)
	if len(concepts) > maxKeyConcepts {
		concepts = concepts[:maxKeyConcepts]
	}
	return schemas.ConversationSummary{
		ConversationID: conv.ID,
		CreatedAt:      conv.CreatedAt,
		Analysis:       e.AnalyzeComplexity(conv),
		KeyConcepts:    concepts,
		Metadata:       conv.Metadata,
	}
}
