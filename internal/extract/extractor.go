// Package extract turns conversations into structured requirements using
// per-statement keyword classification over fixed vocabulary tables.
package extract

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/cache"
)

const (
	maxStatements      = 1000
	maxStatementLength = 10000
)

// Extractor classifies statements into requirement buckets. Entity and
// classification lookups are memoized per distinct raw text. Safe for
// concurrent use.
type Extractor struct {
	logger          *zap.Logger
	entityCache     *cache.Memory[[]string]
	classifierCache *cache.Memory[string]
}

// NewExtractor builds an extractor with bounded memoization caches. The
// memoized lookups are pure functions of their text, so the entries carry
// no TTL; the LRU bound alone limits growth.
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{
		logger:          logger.Named("extract"),
		entityCache:     cache.NewMemory[[]string](4096, 0),
		classifierCache: cache.NewMemory[string](4096, 0),
	}
}

// Extract maps a conversation to its requirements. It fails only on
// structurally invalid input, never on content that matches no keyword.
func (e *Extractor) Extract(conv *schemas.Conversation) (schemas.Requirements, error) {
	if err := e.validate(conv); err != nil {
		return schemas.Requirements{}, err
	}
	e.logger.Info("Parsing statements.",
		zap.String("conversation_id", conv.ID),
		zap.Int("statements", len(conv.Statements)))

	var req schemas.Requirements
	entities := map[string]struct{}{}

	for _, stmt := range conv.Statements {
		switch stmt.Type {
		case schemas.StatementFunctional:
			req.Functional = append(req.Functional, e.functionalRequirements(stmt.Content)...)
		case schemas.StatementNonFunctional:
			req.NonFunctional = append(req.NonFunctional, e.nonFunctionalRequirements(stmt.Content)...)
		case schemas.StatementConstraint:
			req.Constraints = append(req.Constraints, e.constraints(stmt.Content)...)
		case schemas.StatementBusinessRule:
			req.BusinessRules = append(req.BusinessRules, e.businessRules(stmt.Content)...)
		}
		for _, ent := range e.ExtractEntities(stmt.Content) {
			entities[ent] = struct{}{}
		}
	}

	req.QualityAttributes = e.qualityAttributes(conv)
	req.Entities = sortedKeys(entities)
	req.Confidence = e.parsingConfidence(conv)
	return req, nil
}

func (e *Extractor) validate(conv *schemas.Conversation) error {
	if conv == nil || len(conv.Statements) == 0 {
		return &schemas.ConversationProcessingError{Msg: "conversation has no statements"}
	}
	if len(conv.Statements) > maxStatements {
		return &schemas.ConversationProcessingError{
			Msg: fmt.Sprintf("conversation too long (>%d statements)", maxStatements),
		}
	}
	for i, stmt := range conv.Statements {
		if err := stmt.Validate(); err != nil {
			return &schemas.ConversationProcessingError{
				Msg: fmt.Sprintf("invalid statement at index %d", i),
				Err: err,
			}
		}
		if len(stmt.Content) > maxStatementLength {
			return &schemas.ConversationProcessingError{
				Msg: fmt.Sprintf("invalid statement at index %d", i),
				Err: &schemas.StatementParsingError{
					Msg: fmt.Sprintf("statement too long (>%d characters)", maxStatementLength),
				},
			}
		}
	}
	return nil
}

// functionalRequirements collects each sentence containing an action verb,
// falling back to the whole content when none matches.
func (e *Extractor) functionalRequirements(content string) []string {
	lower := strings.ToLower(content)
	var out []string
	for _, kw := range actionKeywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		for _, sentence := range strings.Split(content, ".") {
			if strings.Contains(strings.ToLower(sentence), kw) {
				out = append(out, strings.TrimSpace(sentence))
			}
		}
	}
	if len(out) == 0 {
		return []string{content}
	}
	return out
}

// nonFunctionalRequirements emits one titled entry per matching quality
// word, falling back to the whole content when none matches.
func (e *Extractor) nonFunctionalRequirements(content string) []string {
	lower := strings.ToLower(content)
	var out []string
	for _, kw := range qualityKeywords {
		if strings.Contains(lower, kw) {
			out = append(out, title(kw)+": "+content)
		}
	}
	if len(out) == 0 {
		return []string{content}
	}
	return out
}

func (e *Extractor) constraints(content string) []string {
	lower := strings.ToLower(content)
	for _, kw := range constraintKeywords {
		if strings.Contains(lower, kw) {
			return []string{content}
		}
	}
	return []string{content}
}

func (e *Extractor) businessRules(content string) []string {
	lower := strings.ToLower(content)
	for _, kw := range ruleKeywords {
		if strings.Contains(lower, kw) {
			return []string{content}
		}
	}
	return []string{content}
}

// ExtractEntities returns the technical vocabulary words present in text.
func (e *Extractor) ExtractEntities(text string) []string {
	if cached, ok := e.entityCache.Get(text); ok {
		return cached
	}
	lower := strings.ToLower(text)
	entities := []string{}
	for _, kw := range technicalKeywords {
		if strings.Contains(lower, kw) {
			entities = append(entities, kw)
		}
	}
	e.entityCache.Set(text, entities)
	return entities
}

// PurgeCaches clears the memoization caches.
func (e *Extractor) PurgeCaches() {
	e.entityCache.Purge()
	e.classifierCache.Purge()
}

// ClassifyStatement buckets one statement into a coarse topic label.
func (e *Extractor) ClassifyStatement(s schemas.Statement) string {
	key := s.Content + "_" + string(s.Type)
	if cached, ok := e.classifierCache.Get(key); ok {
		return cached
	}
	lower := strings.ToLower(s.Content)
	var class string
	switch {
	case containsAny(lower, "create", "build", "implement", "develop"):
		class = "implementation"
	case containsAny(lower, "performance", "speed", "scalability"):
		class = "performance"
	case containsAny(lower, "security", "authentication", "authorization"):
		class = "security"
	case containsAny(lower, "ui", "interface", "design", "user experience"):
		class = "interface"
	default:
		class = "general"
	}
	e.classifierCache.Set(key, class)
	return class
}

func (e *Extractor) qualityAttributes(conv *schemas.Conversation) map[string]bool {
	var b strings.Builder
	for i, stmt := range conv.Statements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.ToLower(stmt.Content))
	}
	full := b.String()

	attrs := make(map[string]bool, len(qualityAttributeNames))
	for _, name := range qualityAttributeNames {
		attrs[name] = strings.Contains(full, name)
	}
	return attrs
}

// parsingConfidence is the fraction of statements carrying an intent keyword.
func (e *Extractor) parsingConfidence(conv *schemas.Conversation) float64 {
	if len(conv.Statements) == 0 {
		return 0
	}
	parsed := 0
	for _, stmt := range conv.Statements {
		if containsAny(strings.ToLower(stmt.Content), intentKeywords...) {
			parsed++
		}
	}
	return float64(parsed) / float64(len(conv.Statements))
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func title(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var _ schemas.RequirementsExtractor = (*Extractor)(nil)
