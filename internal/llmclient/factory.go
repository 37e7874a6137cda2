// -- internal/llmclient/factory.go --
package llmclient

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/reify-cli/api/schemas"
	"github.com/xkilldash9x/reify-cli/internal/config"
)

// ErrDisabled is returned by the noop client; callers that forget to gate on
// the enabled flag get a well-known error instead of a silent empty string.
var ErrDisabled = errors.New("llm collaborator is disabled")

// NewClient is a factory function that creates an LLMClient based on the
// configuration. A disabled configuration yields the noop client.
func NewClient(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (schemas.LLMClient, error) {
	if !cfg.Enabled {
		return NoopClient{}, nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg, logger)
	case config.ProviderOpenAI, config.ProviderAnthropic:
		return nil, &schemas.LLMIntegrationError{
			Provider: string(cfg.Provider),
			Err:      errors.New("provider not implemented"),
		}
	default:
		return nil, fmt.Errorf("unknown or unsupported LLM provider configured: '%s'. Supported: [%s]", cfg.Provider, config.ProviderGemini)
	}
}

// NoopClient satisfies the client interface for runs without a collaborator.
type NoopClient struct{}

func (NoopClient) Complete(context.Context, string) (string, error) { return "", ErrDisabled }
func (NoopClient) Name() string                                     { return "noop" }

var _ schemas.LLMClient = NoopClient{}
