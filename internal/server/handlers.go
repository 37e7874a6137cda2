package server

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// systemEndpoints is the canned surface the conceptual prototype exposes.
var systemEndpoints = []string{
	"/api/parse-conversation",
	"/api/generate-architecture",
	"/api/create-abstractions",
	"/api/synthesize-implementation",
}

type processStatementRequest struct {
	Statement   string                  `json:"statement"`
	Context     map[string]interface{}  `json:"context,omitempty"`
	Timestamp   time.Time               `json:"timestamp,omitempty"`
	Languages   []string                `json:"languages,omitempty"`
	Environment schemas.EnvironmentData `json:"environment,omitempty"`
}

type statementAnalysis struct {
	RequirementsCount      int             `json:"requirements_count"`
	ArchitectureComponents int             `json:"architecture_components"`
	Patterns               []string        `json:"patterns"`
	QualityAttributes      map[string]bool `json:"quality_attributes"`
}

type architectureView struct {
	Components    []string               `json:"components"`
	Relationships []schemas.Relationship `json:"relationships"`
}

type processStatementResponse struct {
	Success       bool                                        `json:"success"`
	Analysis      statementAnalysis                           `json:"analysis"`
	Architecture  architectureView                            `json:"architecture"`
	GeneratedCode map[schemas.Language]*schemas.GeneratedCode `json:"generated_code"`
	SystemStatus  string                                      `json:"system_status"`
	Endpoints     []string                                    `json:"endpoints"`
	Warnings      []string                                    `json:"warnings,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProcessStatement(w http.ResponseWriter, r *http.Request) {
	var req processStatementRequest
	if err := jsonCodec.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Statement) == "" {
		writeError(w, http.StatusBadRequest, "Statement cannot be empty")
		return
	}

	languages, err := parseLanguages(req.Languages)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stmt, err := schemas.NewStatement(req.Statement, "user", schemas.StatementFunctional)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Context) > 0 {
		stmt.Context = req.Context
	}
	if !req.Timestamp.IsZero() {
		stmt.Timestamp = req.Timestamp
	}

	result, err := s.processor.ProcessStatement(r.Context(), stmt, languages)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !result.Success {
		writeError(w, http.StatusInternalServerError, strings.Join(result.Errors, "; "))
		return
	}

	resp := processStatementResponse{
		Success: true,
		Analysis: statementAnalysis{
			RequirementsCount:      result.Requirements.Total(),
			ArchitectureComponents: len(result.Architecture.Components),
			Patterns:               result.Architecture.Patterns,
			QualityAttributes:      result.Requirements.QualityAttributes,
		},
		Architecture: architectureView{
			Components:    componentNames(result.Architecture),
			Relationships: result.Architecture.Relationships,
		},
		GeneratedCode: result.GeneratedCode,
		SystemStatus:  "prototype_ready",
		Endpoints:     systemEndpoints,
		Warnings:      result.Warnings,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnalyzeEnvironment(w http.ResponseWriter, r *http.Request) {
	var env schemas.EnvironmentData
	if err := jsonCodec.NewDecoder(r.Body).Decode(&env); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, AnalyzeEnvironment(env))
}

type evolveRequest struct {
	Statements []struct {
		Content string `json:"content"`
		Speaker string `json:"speaker,omitempty"`
		Type    string `json:"type,omitempty"`
	} `json:"statements"`
	Languages []string `json:"languages,omitempty"`
}

type evolveResponse struct {
	Success       bool          `json:"success"`
	EvolvedSystem evolvedSystem `json:"evolved_system"`
}

type evolvedSystem struct {
	Status           string   `json:"status"`
	NewCapabilities  []string `json:"new_capabilities"`
	UpdatedEndpoints []string `json:"updated_endpoints"`
}

func (s *Server) handleEvolveSystem(w http.ResponseWriter, r *http.Request) {
	var req evolveRequest
	if err := jsonCodec.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	statements := make([]schemas.Statement, 0, len(req.Statements))
	for _, raw := range req.Statements {
		speaker := raw.Speaker
		if speaker == "" {
			speaker = "user"
		}
		typ := schemas.StatementType(raw.Type)
		if raw.Type == "" {
			typ = schemas.StatementEvolution
		}
		stmt, err := schemas.NewStatement(raw.Content, speaker, typ)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		statements = append(statements, stmt)
	}

	languages, err := parseLanguages(req.Languages)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.processor.EvolveSystem(r.Context(), statements, languages)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !result.Success {
		writeError(w, http.StatusInternalServerError, strings.Join(result.Errors, "; "))
		return
	}

	s.logger.Info("System evolved.",
		zap.String("conversation_id", result.Conversation.ID),
		zap.Int("statements", len(statements)))

	writeJSON(w, http.StatusOK, evolveResponse{
		Success: true,
		EvolvedSystem: evolvedSystem{
			Status:           "prototype_ready",
			NewCapabilities:  []string{"Enhanced based on new statements"},
			UpdatedEndpoints: systemEndpoints,
		},
	})
}

func parseLanguages(raw []string) ([]schemas.Language, error) {
	languages := make([]schemas.Language, 0, len(raw))
	for _, name := range raw {
		lang, err := schemas.ParseLanguage(name)
		if err != nil {
			return nil, err
		}
		languages = append(languages, lang)
	}
	return languages, nil
}

func componentNames(arch *schemas.Architecture) []string {
	names := make([]string, 0, len(arch.Components))
	for _, c := range arch.Components {
		names = append(names, c.Name)
	}
	return names
}
