package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

func newConversation(t *testing.T, contents map[schemas.StatementType][]string) *schemas.Conversation {
	t.Helper()
	var stmts []schemas.Statement
	for typ, texts := range contents {
		for _, text := range texts {
			s, err := schemas.NewStatement(text, "user", typ)
			require.NoError(t, err)
			stmts = append(stmts, s)
		}
	}
	conv, err := schemas.NewConversation("test-conv", stmts, nil)
	require.NoError(t, err)
	return conv
}

func TestExtract(t *testing.T) {
	e := NewExtractor(zaptest.NewLogger(t))

	t.Run("rest api scenario", func(t *testing.T) {
		conv := newConversation(t, map[schemas.StatementType][]string{
			schemas.StatementFunctional: {
				"Create a REST API for user management with authentication",
			},
		})

		req, err := e.Extract(conv)
		require.NoError(t, err)

		assert.NotEmpty(t, req.Functional)
		assert.Contains(t, req.Entities, "api")
		assert.Contains(t, req.Entities, "user")
		assert.Contains(t, req.Entities, "authentication")
		assert.Contains(t, req.Entities, "rest")
		assert.Equal(t, 1.0, req.Confidence)
	})

	t.Run("nil and empty conversations fail", func(t *testing.T) {
		_, err := e.Extract(nil)
		var cerr *schemas.ConversationProcessingError
		require.ErrorAs(t, err, &cerr)

		_, err = e.Extract(&schemas.Conversation{ID: "empty"})
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("oversized statement rejected", func(t *testing.T) {
		conv := newConversation(t, map[schemas.StatementType][]string{
			schemas.StatementFunctional: {strings.Repeat("x", maxStatementLength+1)},
		})
		_, err := e.Extract(conv)
		assert.Error(t, err)
	})

	t.Run("too many statements rejected", func(t *testing.T) {
		var stmts []schemas.Statement
		for i := 0; i <= maxStatements; i++ {
			s, err := schemas.NewStatement(fmt.Sprintf("statement %d", i), "user", schemas.StatementFunctional)
			require.NoError(t, err)
			stmts = append(stmts, s)
		}
		conv, err := schemas.NewConversation("big", stmts, nil)
		require.NoError(t, err)
		_, err = e.Extract(conv)
		assert.Error(t, err)
	})

	t.Run("keywordless statement falls back to raw content", func(t *testing.T) {
		conv := newConversation(t, map[schemas.StatementType][]string{
			schemas.StatementFunctional: {"the sky is blue"},
		})
		req, err := e.Extract(conv)
		require.NoError(t, err)
		assert.Equal(t, []string{"the sky is blue"}, req.Functional)
		assert.Equal(t, 0.0, req.Confidence)
	})

	t.Run("non functional statements get titled entries", func(t *testing.T) {
		conv := newConversation(t, map[schemas.StatementType][]string{
			schemas.StatementNonFunctional: {"we care about performance and security"},
		})
		req, err := e.Extract(conv)
		require.NoError(t, err)
		assert.Contains(t, req.NonFunctional, "Performance: we care about performance and security")
		assert.Contains(t, req.NonFunctional, "Security: we care about performance and security")
		assert.True(t, req.QualityAttributes["performance"])
		assert.True(t, req.QualityAttributes["security"])
		assert.False(t, req.QualityAttributes["usability"])
	})

	t.Run("constraints and rules keep whole statement", func(t *testing.T) {
		conv := newConversation(t, map[schemas.StatementType][]string{
			schemas.StatementConstraint:   {"The system must run on premises"},
			schemas.StatementBusinessRule: {"When a payment fails, notify the user"},
		})
		req, err := e.Extract(conv)
		require.NoError(t, err)
		assert.Equal(t, []string{"The system must run on premises"}, req.Constraints)
		assert.Equal(t, []string{"When a payment fails, notify the user"}, req.BusinessRules)
	})

	t.Run("deterministic over repeated calls", func(t *testing.T) {
		conv := newConversation(t, map[schemas.StatementType][]string{
			schemas.StatementFunctional: {"Build a search service with pagination and caching"},
		})
		first, err := e.Extract(conv)
		require.NoError(t, err)
		second, err := e.Extract(conv)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestExtractEntitiesMemoized(t *testing.T) {
	e := NewExtractor(zaptest.NewLogger(t))

	first := e.ExtractEntities("deploy to aws with docker and kubernetes")
	second := e.ExtractEntities("deploy to aws with docker and kubernetes")
	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []string{"aws", "docker", "kubernetes"}, first)
}

func TestClassifyStatement(t *testing.T) {
	e := NewExtractor(zaptest.NewLogger(t))

	cases := []struct {
		content string
		want    string
	}{
		{"create a login page", "implementation"},
		{"the speed matters here", "performance"},
		{"we need strong authorization", "security"},
		{"polish the interface", "interface"},
		{"hello world", "general"},
	}
	for _, tc := range cases {
		s := schemas.Statement{Content: tc.content, Type: schemas.StatementFunctional, Confidence: 1}
		assert.Equal(t, tc.want, e.ClassifyStatement(s), tc.content)
	}
}

func TestAnalyzeComplexity(t *testing.T) {
	e := NewExtractor(zaptest.NewLogger(t))

	conv := newConversation(t, map[schemas.StatementType][]string{
		schemas.StatementFunctional: {"Create a REST API"},
		schemas.StatementConstraint: {"It must use postgresql"},
	})

	analysis := e.AnalyzeComplexity(conv)
	assert.Equal(t, 2, analysis.StatementCount)
	assert.Equal(t, 1, analysis.StatementTypes[schemas.StatementFunctional])
	assert.Equal(t, 1, analysis.StatementTypes[schemas.StatementConstraint])
	assert.Greater(t, analysis.ComplexityScore, 0.0)
	assert.LessOrEqual(t, analysis.ComplexityScore, maxComplexityScore)
	assert.Greater(t, analysis.EstimatedProcessingTime, baseProcessingSeconds)
}

func TestSummarize(t *testing.T) {
	e := NewExtractor(zaptest.NewLogger(t))

	conv := newConversation(t, map[schemas.StatementType][]string{
		schemas.StatementFunctional: {"Build an api with a database and cache"},
	})

	summary := e.Summarize(conv)
	assert.Equal(t, conv.ID, summary.ConversationID)
	assert.ElementsMatch(t, []string{"api", "database", "cache"}, summary.KeyConcepts)
}
