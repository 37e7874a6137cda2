package schemas

import (
	"fmt"
	"strings"
	"time"
)

// StatementType classifies a single conversational statement.
type StatementType string

const (
	StatementFunctional    StatementType = "functional"
	StatementNonFunctional StatementType = "non_functional"
	StatementConstraint    StatementType = "constraint"
	StatementBusinessRule  StatementType = "business_rule"
	StatementEvolution     StatementType = "evolution"
)

// Valid reports whether t is one of the recognized statement types.
func (t StatementType) Valid() bool {
	switch t {
	case StatementFunctional, StatementNonFunctional, StatementConstraint, StatementBusinessRule, StatementEvolution:
		return true
	}
	return false
}

// Statement is a single utterance with classification metadata. Statements are
// value objects: once constructed they are never mutated, and each one is
// owned exclusively by its Conversation.
type Statement struct {
	Content    string                 `json:"content"`
	Context    map[string]interface{} `json:"context,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
	Speaker    string                 `json:"speaker"`
	Type       StatementType          `json:"statement_type"`
	Confidence float64                `json:"confidence"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// Validate checks the structural invariants of a statement.
func (s Statement) Validate() error {
	if strings.TrimSpace(s.Content) == "" {
		return &StatementParsingError{Msg: "statement content is empty"}
	}
	if !s.Type.Valid() {
		return &StatementParsingError{Msg: fmt.Sprintf("unknown statement type %q", s.Type)}
	}
	if s.Confidence < 0 || s.Confidence > 1 {
		return &StatementParsingError{Msg: fmt.Sprintf("confidence %.2f outside [0,1]", s.Confidence)}
	}
	return nil
}

// NewStatement builds a validated statement stamped with the current time.
func NewStatement(content, speaker string, typ StatementType) (Statement, error) {
	s := Statement{
		Content:    content,
		Context:    map[string]interface{}{},
		Timestamp:  time.Now().UTC(),
		Speaker:    speaker,
		Type:       typ,
		Confidence: 1.0,
	}
	if err := s.Validate(); err != nil {
		return Statement{}, err
	}
	return s, nil
}

// Conversation is an ordered sequence of statements with shared metadata.
type Conversation struct {
	ID         string                 `json:"conversation_id"`
	Statements []Statement            `json:"statements"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// NewConversation builds a validated conversation. It fails on an empty id,
// an empty statement list, or any structurally invalid statement.
func NewConversation(id string, statements []Statement, metadata map[string]interface{}) (*Conversation, error) {
	if id == "" {
		return nil, &ConversationProcessingError{Msg: "conversation id is empty"}
	}
	if len(statements) == 0 {
		return nil, &ConversationProcessingError{Msg: "conversation has no statements"}
	}
	for i, s := range statements {
		if err := s.Validate(); err != nil {
			return nil, &ConversationProcessingError{Msg: fmt.Sprintf("invalid statement at index %d", i), Err: err}
		}
	}
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	now := time.Now().UTC()
	return &Conversation{
		ID:         id,
		Statements: statements,
		Metadata:   metadata,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// AddStatement appends a statement and bumps UpdatedAt. This is the only
// mutation a conversation supports.
func (c *Conversation) AddStatement(s Statement) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.Statements = append(c.Statements, s)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// StatementsByType returns all statements carrying the given type, in order.
func (c *Conversation) StatementsByType(typ StatementType) []Statement {
	var out []Statement
	for _, s := range c.Statements {
		if s.Type == typ {
			out = append(out, s)
		}
	}
	return out
}
