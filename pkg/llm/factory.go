package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/venturelens/venture-engine/pkg/config"
)

// NewFromConfig creates the LLM client selected by the AI configuration.
func NewFromConfig(cfg *config.AIConfig, logger *zap.Logger) (Client, error) {
	switch cfg.Provider {
	case "openai", "":
		return NewOpenAIClient(cfg.BaseURL, cfg.Model, cfg.APIKey, logger)
	case "anthropic":
		return NewAnthropicClient(cfg.Model, cfg.APIKey, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
