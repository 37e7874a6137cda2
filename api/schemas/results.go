package schemas

// ProcessingResult aggregates everything one pipeline run produced. Errors
// and warnings accumulate instead of aborting the run; Success flips to
// false the moment the first error is added.
type ProcessingResult struct {
	Conversation      *Conversation                 `json:"conversation"`
	Requirements      Requirements                  `json:"requirements"`
	Architecture      *Architecture                 `json:"architecture,omitempty"`
	GeneratedCode     map[Language]*GeneratedCode   `json:"generated_code"`
	DeploymentConfigs map[Provider]DeploymentConfig `json:"deployment_configs,omitempty"`
	ProcessingTime    float64                       `json:"processing_time"`
	Success           bool                          `json:"success"`
	Errors            []string                      `json:"errors"`
	Warnings          []string                      `json:"warnings"`
	Metadata          map[string]interface{}        `json:"metadata,omitempty"`
}

// NewProcessingResult returns an empty successful result for a conversation.
func NewProcessingResult(conv *Conversation) *ProcessingResult {
	return &ProcessingResult{
		Conversation:      conv,
		GeneratedCode:     map[Language]*GeneratedCode{},
		DeploymentConfigs: map[Provider]DeploymentConfig{},
		Success:           true,
		Errors:            []string{},
		Warnings:          []string{},
		Metadata:          map[string]interface{}{},
	}
}

// AddError records an error and marks the result failed.
func (r *ProcessingResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Success = false
}

// AddWarning records a non-fatal warning.
func (r *ProcessingResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// HasErrors reports whether any error was recorded.
func (r *ProcessingResult) HasErrors() bool { return len(r.Errors) > 0 }
