package schemas

import "fmt"

// ConversationProcessingError reports malformed input at the extraction
// boundary. It is fatal to the pipeline run that raised it.
type ConversationProcessingError struct {
	Msg string
	Err error
}

func (e *ConversationProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("conversation processing: %s: %v", e.Msg, e.Err)
	}
	return "conversation processing: " + e.Msg
}

func (e *ConversationProcessingError) Unwrap() error { return e.Err }

// StatementParsingError reports a structurally invalid statement.
type StatementParsingError struct {
	Msg string
}

func (e *StatementParsingError) Error() string { return "statement parsing: " + e.Msg }

// ValidationError reports a broken structural invariant on a value object.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "validation: " + e.Msg }

// ArchitectureInferenceError wraps an unexpected failure inside the
// inference stage.
type ArchitectureInferenceError struct {
	Msg string
	Err error
}

func (e *ArchitectureInferenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("architecture inference: %s: %v", e.Msg, e.Err)
	}
	return "architecture inference: " + e.Msg
}

func (e *ArchitectureInferenceError) Unwrap() error { return e.Err }

// UnsupportedLanguageError is returned when a code generation target is not
// in the supported language set. Callers can recover by picking another
// target.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return "unsupported language: " + e.Language
}

// UnsupportedProviderError is the error counterpart of the deployment
// engine's unsupported-provider result.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return "Unsupported provider: " + e.Provider
}

// DeploymentError reports a failed provider call. The deployment engine folds
// it into a failed DeploymentResult rather than letting it escape.
type DeploymentError struct {
	Provider Provider
	Msg      string
	Err      error
}

func (e *DeploymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deployment to %s: %s: %v", e.Provider, e.Msg, e.Err)
	}
	return fmt.Sprintf("deployment to %s: %s", e.Provider, e.Msg)
}

func (e *DeploymentError) Unwrap() error { return e.Err }

// LLMIntegrationError reports a failed model call. Callers always fall back
// to the keyword pipeline, so this never aborts a run.
type LLMIntegrationError struct {
	Provider string
	Err      error
}

func (e *LLMIntegrationError) Error() string {
	return fmt.Sprintf("llm integration (%s): %v", e.Provider, e.Err)
}

func (e *LLMIntegrationError) Unwrap() error { return e.Err }
