package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/learninghub/internal/store"
)

// NewProvider creates a Provider from configuration. Real providers are
// wrapped as caller → timeout → retry → logging → base, so every attempt is
// recorded and the timeout covers the backoff sleeps too.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if log != nil {
		log.Debug("llm provider ready",
			zap.String("provider", base.Name()),
			zap.String("model", base.ModelID()))
	}

	logged := WithLogging(base, events, log)
	return WithTimeout(WithRetry(logged, cfg.Retry), cfg.Timeout), nil
}
