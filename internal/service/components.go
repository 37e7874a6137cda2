// File: internal/service/components.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/architect"
	"github.com/xkilldash9x/reify-cli/internal/cache"
	"github.com/xkilldash9x/reify-cli/internal/codegen"
	"github.com/xkilldash9x/reify-cli/internal/config"
	"github.com/xkilldash9x/reify-cli/internal/deploy"
	"github.com/xkilldash9x/reify-cli/internal/extract"
	"github.com/xkilldash9x/reify-cli/internal/infer"
	"github.com/xkilldash9x/reify-cli/internal/llmclient"
	"github.com/xkilldash9x/reify-cli/internal/metrics"
	"github.com/xkilldash9x/reify-cli/internal/observability"
)

// Components holds all the initialized services required to run the pipeline.
// This struct centralizes the lifecycle management of processing dependencies.
type Components struct {
	Config    config.Interface
	Extractor *extract.Extractor
	Architect *architect.Service
	Generator *codegen.Service
	Deployer  *deploy.Engine
	LLM       schemas.LLMClient
	Metrics   *metrics.Collector
	FileCache *cache.File
}

// NewComponents handles the full dependency injection and initialization of
// the processing components.
func NewComponents(ctx context.Context, cfg config.Interface, logger *zap.Logger) (*Components, error) {
	components := &Components{
		Config:  cfg,
		Metrics: metrics.NewCollector(0),
	}

	// 1. Caching layer (optional)
	if cfg.Processing().EnableCaching && cfg.Processing().CacheDirectory != "" {
		fileCache, err := cache.NewFile(cfg.Processing().CacheDirectory, cfg.Processing().CacheTTL, logger)
		if err != nil {
			// A broken cache directory degrades to uncached operation.
			logger.Warn("File cache unavailable, continuing without it.", zap.Error(err))
		} else {
			components.FileCache = fileCache
			logger.Debug("File cache initialized.", zap.String("dir", cfg.Processing().CacheDirectory))
		}
	}

	// 2. Requirements extraction
	components.Extractor = extract.NewExtractor(logger)
	logger.Debug("Requirements extractor initialized.")

	// 3. Architecture inference and validation
	components.Architect = architect.NewService(infer.NewEngine(logger), logger)
	logger.Debug("Architecture service initialized.")

	// 4. Code generation
	components.Generator = codegen.NewService(
		codegen.NewGenerator(logger),
		cfg.Processing().MaxConcurrentGenerations,
		logger,
	)
	logger.Debug("Code generation service initialized.",
		zap.Int("max_concurrent", cfg.Processing().MaxConcurrentGenerations))

	// 5. Deployment engine
	components.Deployer = deploy.NewEngine(logger, nil)
	logger.Debug("Deployment engine initialized.")

	// 6. Optional LLM collaborator
	llm, err := llmclient.NewClient(ctx, cfg.LLM(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	components.LLM = llm
	if cfg.LLM().Enabled {
		logger.Debug("LLM collaborator initialized.", zap.String("client", llm.Name()))
	}

	logger.Info("All processing components initialized successfully.")
	return components, nil
}

// Shutdown flushes what needs flushing. The pipeline holds no external
// connections, so this is mostly bookkeeping plus a final metrics snapshot.
func (c *Components) Shutdown() {
	logger := observability.GetLogger()
	logger.Debug("Beginning components shutdown sequence.")

	if c.Extractor != nil {
		c.Extractor.PurgeCaches()
		logger.Debug("Extractor caches purged.")
	}

	if c.Metrics != nil {
		summary := c.Metrics.SnapshotSummary()
		logger.Debug("Final metrics snapshot.",
			zap.Int("counters", len(summary.Counters)),
			zap.Int("timed_operations", len(summary.TimingStats)))
	}

	logger.Info("All processing components shut down successfully.")
}
