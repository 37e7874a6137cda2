package codegen

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// Service fans generation out over languages with bounded concurrency. A
// failed language is logged and omitted from the result map, never fatal to
// the other targets.
type Service struct {
	generator schemas.CodeGenerator
	limit     int
	logger    *zap.Logger
}

// NewService wraps a generator with a concurrency limit.
func NewService(generator schemas.CodeGenerator, maxConcurrent int, logger *zap.Logger) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	return &Service{
		generator: generator,
		limit:     maxConcurrent,
		logger:    logger.Named("codegen.service"),
	}
}

// GenerateAll produces artifacts for every requested language in parallel.
// Unsupported languages are skipped with a warning.
func (s *Service) GenerateAll(ctx context.Context, arch *schemas.Architecture, languages []schemas.Language) map[schemas.Language]*schemas.GeneratedCode {
	s.logger.Info("Generating code for languages.", zap.Int("count", len(languages)))

	var mu sync.Mutex
	results := map[schemas.Language]*schemas.GeneratedCode{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for _, lang := range languages {
		g.Go(func() error {
			code, err := s.generator.Generate(gctx, arch, lang, "")
			if err != nil {
				s.logger.Error("Code generation failed.",
					zap.String("language", string(lang)), zap.Error(err))
				return nil
			}
			mu.Lock()
			results[lang] = code
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("Code generation finished.", zap.Int("succeeded", len(results)))
	return results
}
