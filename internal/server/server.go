package server

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/internal/config"
	"github.com/xkilldash9x/reify-cli/internal/service"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// Server exposes the processing pipeline as a small REST API.
type Server struct {
	cfg       config.ServerConfig
	processor *service.Processor
	logger    *zap.Logger
	httpSrv   *http.Server
}

// New builds the server and its route table.
func New(cfg config.ServerConfig, processor *service.Processor, logger *zap.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		processor: processor,
		logger:    logger.Named("server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/process-statement", s.handleProcessStatement)
	mux.HandleFunc("POST /api/analyze-environment", s.handleAnalyzeEnvironment)
	mux.HandleFunc("POST /api/evolve-system", s.handleEvolveSystem)

	s.httpSrv = &http.Server{
		Addr:         cfg.Address(),
		Handler:      corsMiddleware(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the configured HTTP handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run serves until the context is canceled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening.", zap.String("address", s.cfg.Address()))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server.")
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// corsMiddleware allows the bundled web UI (or any origin) to call the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonCodec.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
