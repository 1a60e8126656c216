package llm

import (
	"fmt"
	"strings"

	"github.com/Sovrenmirror/sovrenai-workbench/internal/model"
)

// xaiBaseURL is the OpenAI-compatible endpoint for xAI/Grok models.
const xaiBaseURL = "https://api.x.ai/v1"

// NewClient creates a new LLM client based on configuration. An empty
// provider returns a nil client (LLM disabled); an unknown provider is a
// construction-time error.
func NewClient(config Config) (Client, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIClient(config)

	case "xai", "grok":
		if config.BaseURL == "" {
			config.BaseURL = xaiBaseURL
		}
		return NewOpenAIClient(config)

	case "anthropic", "claude":
		return NewAnthropicClient(config)

	case "ollama":
		return NewOllamaClient(config)

	case "":
		// No provider configured - return nil (LLM disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, xai, anthropic, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}
