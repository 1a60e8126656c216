package llm

import "context"

// Client is the single capability every provider adapter implements:
// submit a prompt, get text back. Provider selection is a construction-time
// choice (see NewClient); callers never probe provider identity at runtime.
type Client interface {
	// Name returns the provider name
	Name() string

	// Complete submits a prompt and returns the generated text
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest contains the input for a completion call
type CompletionRequest struct {
	// Prompt is the user-role prompt text
	Prompt string

	// System is an optional system-role instruction
	System string

	// Model overrides the configured model for this call
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling randomness
	Temperature float32
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "xai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/xAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama or OpenAI-compatible proxies)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 500,
	}
}
