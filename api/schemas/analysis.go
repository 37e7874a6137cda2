package schemas

import "time"

// ConversationAnalysis summarizes the shape and estimated processing cost of
// a conversation.
type ConversationAnalysis struct {
	StatementCount          int                   `json:"statement_count"`
	StatementTypes          map[StatementType]int `json:"statement_types"`
	TotalLength             int                   `json:"total_length"`
	AverageLength           float64               `json:"average_length"`
	ComplexityScore         float64               `json:"complexity_score"`
	EstimatedProcessingTime float64               `json:"estimated_processing_time"`
}

// ConversationSummary pairs the complexity analysis with the key concepts
// extracted from the conversation.
type ConversationSummary struct {
	ConversationID string                 `json:"conversation_id"`
	CreatedAt      time.Time              `json:"created_at"`
	Analysis       ConversationAnalysis   `json:"statement_analysis"`
	KeyConcepts    []string               `json:"key_concepts"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// EnvironmentData is the client-reported runtime environment handed to the
// environment analyzer.
type EnvironmentData struct {
	Platform          string  `json:"platform"`
	Screen            string  `json:"screen"`
	Memory            float64 `json:"memory"`
	Cores             int     `json:"cores"`
	WebGL             bool    `json:"webGL"`
	ServiceWorker     bool    `json:"serviceWorker"`
	PushNotifications bool    `json:"pushNotifications"`
	Geolocation       bool    `json:"geolocation"`
	LocalStorage      bool    `json:"localStorage"`
}

// EnvironmentReport is the analyzer's verdict on an EnvironmentData sample.
type EnvironmentReport struct {
	PlatformOptimization []string          `json:"platform_optimization"`
	ResourceConstraints  map[string]string `json:"resource_constraints"`
	CapabilityDetection  []string          `json:"capability_detection"`
	Recommendations      []string          `json:"recommendations"`
}
