package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/learnbot/internal/history"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and request-logging middleware.
func NewProvider(ctx context.Context, cfg Config, events history.EventRepo, logger *zap.SugaredLogger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware chain: caller → retry → logging → base.
	logged := WithLogging(base, events, logger)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from LEARNBOT_* env vars, falling
// back to discovery of standard API key variables.
func NewProviderFromEnv(ctx context.Context, events history.EventRepo, logger *zap.SugaredLogger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events, logger)
}
