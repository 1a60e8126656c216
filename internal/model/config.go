package model

import "time"

// Config is the complete runtime configuration.
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Server      ServerConfig      `yaml:"server"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// LLMConfig selects and configures the external LLM provider.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai", "xai", "anthropic", "ollama", ""
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CacheConfig configures the reasoning-result cache used by the HTTP layer.
// The classification core itself is never cached.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig bounds parallel work and outbound LLM traffic.
type ConcurrencyConfig struct {
	BatchWorkers int     `yaml:"batch_workers"`
	LLMRateRPS   float64 `yaml:"llm_rate_rps"`   // requests per second per provider
	LLMRateBurst int     `yaml:"llm_rate_burst"` // burst size
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
	JSON    bool `yaml:"json"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 500,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8888,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
			LLMRateRPS:   5,
			LLMRateBurst: 8,
		},
		Output: OutputConfig{},
	}
}
