package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
// When cfg.LogPath is set, the provider is wrapped with request logging.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
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

	if cfg.LogPath != "" {
		log, logErr := OpenRequestLog(cfg.LogPath)
		if logErr != nil {
			return nil, logErr
		}
		base = WithLogging(base, log)
	}

	return base, nil
}

// NewProviderFromEnv builds a Provider from LEXIZ_* environment variables,
// falling back to bare API key discovery when no provider is selected.
func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		discovered.LogPath = cfg.LogPath
		cfg = discovered
	}
	return NewProvider(ctx, cfg)
}
