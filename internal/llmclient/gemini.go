// internal/llmclient/gemini.go
package llmclient

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/config"
)

// GeminiClient implements the LLMClient interface on top of the official
// genai SDK. Requests share a token-bucket limiter sized from the configured
// requests-per-minute budget.
type GeminiClient struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	logger  *zap.Logger
	config  config.LLMConfig
}

// NewGeminiClient initializes the client.
func NewGeminiClient(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API Key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &schemas.LLMIntegrationError{Provider: string(config.ProviderGemini), Err: err}
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}

	return &GeminiClient{
		client:  client,
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		logger:  logger.Named("llm_client.gemini"),
		config:  cfg,
	}, nil
}

// Complete sends the prompt to the Gemini API and returns the generated text.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", &schemas.LLMIntegrationError{Provider: string(config.ProviderGemini), Err: err}
	}

	if c.config.APITimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.APITimeout)
		defer cancel()
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.config.Temperature),
	}
	if c.config.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(c.config.MaxTokens)
	}

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		genCfg,
	)
	if err != nil {
		return "", &schemas.LLMIntegrationError{Provider: string(config.ProviderGemini), Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &schemas.LLMIntegrationError{
			Provider: string(config.ProviderGemini),
			Err:      fmt.Errorf("model returned no content (finish reason: %s)", candidateFinishReason(resp)),
		}
	}

	c.logger.Debug("LLM generation complete",
		zap.String("model", c.model),
		zap.Duration("duration", time.Since(start)))

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Name identifies the backing provider and model.
func (c *GeminiClient) Name() string {
	return "gemini:" + c.model
}

func candidateFinishReason(resp *genai.GenerateContentResponse) genai.FinishReason {
	if len(resp.Candidates) == 0 {
		return ""
	}
	return resp.Candidates[0].FinishReason
}

var _ schemas.LLMClient = (*GeminiClient)(nil)
