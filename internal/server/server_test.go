package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/config"
	"github.com/xkilldash9x/reify-cli/internal/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.ProcessingCfg.CacheDirectory = t.TempDir()

	components, err := service.NewComponents(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(components.Shutdown)

	processor := service.NewProcessor(components, zap.NewNop())
	return New(cfg.Server(), processor, zap.NewNop())
}

func postJSON(t *testing.T, srv *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProcessStatementEmpty(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/process-statement", map[string]string{"statement": "   "})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Statement cannot be empty"}`, rec.Body.String())
}

func TestProcessStatementOptionalFields(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/process-statement", map[string]interface{}{
		"statement": "Create a REST API for orders",
		"context":   map[string]interface{}{"channel": "web", "session": 7},
		"timestamp": "2026-03-01T12:00:00Z",
		"languages": []string{"go"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestProcessStatement(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/process-statement", map[string]interface{}{
		"statement": "Create a REST API for user management with authentication",
		"languages": []string{"python"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success  bool `json:"success"`
		Analysis struct {
			RequirementsCount      int      `json:"requirements_count"`
			ArchitectureComponents int      `json:"architecture_components"`
			Patterns               []string `json:"patterns"`
		} `json:"analysis"`
		Architecture struct {
			Components []string `json:"components"`
		} `json:"architecture"`
		GeneratedCode map[string]*schemas.GeneratedCode `json:"generated_code"`
		SystemStatus  string                            `json:"system_status"`
		Endpoints     []string                          `json:"endpoints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Positive(t, resp.Analysis.RequirementsCount)
	assert.Positive(t, resp.Analysis.ArchitectureComponents)
	assert.NotEmpty(t, resp.Architecture.Components)
	assert.Equal(t, "prototype_ready", resp.SystemStatus)
	assert.Contains(t, resp.Endpoints, "/api/parse-conversation")

	require.Contains(t, resp.GeneratedCode, "python")
	assert.Equal(t, "main.py", resp.GeneratedCode["python"].EntryPoint)
}

func TestProcessStatementUnknownLanguage(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/process-statement", map[string]interface{}{
		"statement": "Create an api",
		"languages": []string{"cobol"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported language")
}

func TestAnalyzeEnvironment(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/analyze-environment", schemas.EnvironmentData{
		Platform:      "MacIntel",
		Screen:        "640x480",
		Memory:        2,
		Cores:         4,
		LocalStorage:  true,
		ServiceWorker: false,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var report schemas.EnvironmentReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Contains(t, report.PlatformOptimization, "Safari optimization")
	assert.Equal(t, "2 GB available", report.ResourceConstraints["memory"])
	assert.Equal(t, "4 CPU cores", report.ResourceConstraints["cores"])
	assert.Equal(t, "localStorage available", report.ResourceConstraints["storage"])
	assert.Equal(t, "Offline-first recommended", report.ResourceConstraints["network"])
	assert.Contains(t, report.CapabilityDetection, "Local storage persistence")
	assert.Contains(t, report.Recommendations, "Mobile-first responsive design")
	assert.Contains(t, report.Recommendations, "Lightweight implementation recommended")
	assert.Contains(t, report.Recommendations, "Consider offline-first architecture")
}

func TestEvolveSystem(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/evolve-system", map[string]interface{}{
		"statements": []map[string]string{
			{"content": "Add push notification support"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success       bool `json:"success"`
		EvolvedSystem struct {
			Status           string   `json:"status"`
			NewCapabilities  []string `json:"new_capabilities"`
			UpdatedEndpoints []string `json:"updated_endpoints"`
		} `json:"evolved_system"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "prototype_ready", resp.EvolvedSystem.Status)
	assert.Equal(t, []string{"Enhanced based on new statements"}, resp.EvolvedSystem.NewCapabilities)
	assert.NotEmpty(t, resp.EvolvedSystem.UpdatedEndpoints)
}

func TestEvolveSystemWithoutStatements(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/api/evolve-system", map[string]interface{}{"statements": []string{}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/process-statement", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
