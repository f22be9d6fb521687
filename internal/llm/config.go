package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use. Empty means none is
	// configured.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional, for OpenAI-compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with no provider selected and default
// models for each provider. Chat replies are short, so the timeout is
// tighter than for batch generation.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     4 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// ConfigFromEnv builds a Config from MENDLY_* environment variables. When
// MENDLY_LLM_PROVIDER is unset it falls back to DiscoverConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if p := os.Getenv("MENDLY_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	} else if found, ok := DiscoverConfig(); ok {
		cfg = found
	}

	setenv := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setenv(&cfg.Anthropic.APIKey, "MENDLY_ANTHROPIC_API_KEY")
	setenv(&cfg.Anthropic.Model, "MENDLY_ANTHROPIC_MODEL")
	setenv(&cfg.OpenAI.APIKey, "MENDLY_OPENAI_API_KEY")
	setenv(&cfg.OpenAI.Model, "MENDLY_OPENAI_MODEL")
	setenv(&cfg.OpenAI.BaseURL, "MENDLY_OPENAI_BASE_URL")
	setenv(&cfg.Gemini.APIKey, "MENDLY_GEMINI_API_KEY")
	setenv(&cfg.Gemini.Model, "MENDLY_GEMINI_MODEL")
	setenv(&cfg.OpenRouter.APIKey, "MENDLY_OPENROUTER_API_KEY")
	setenv(&cfg.OpenRouter.Model, "MENDLY_OPENROUTER_MODEL")
	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables in order
// (Gemini, OpenAI, Anthropic, OpenRouter) and selects the first provider
// whose key is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case os.Getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = os.Getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Override applies settings from the config file on top of c. Empty
// values leave c unchanged; model, key and base URL apply to the selected
// provider.
func (c *Config) Override(provider, model, apiKey, baseURL string) {
	if provider != "" {
		c.Provider = provider
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	switch c.Provider {
	case ProviderAnthropic:
		set(&c.Anthropic.Model, model)
		set(&c.Anthropic.APIKey, apiKey)
	case ProviderOpenAI:
		set(&c.OpenAI.Model, model)
		set(&c.OpenAI.APIKey, apiKey)
		set(&c.OpenAI.BaseURL, baseURL)
	case ProviderGemini:
		set(&c.Gemini.Model, model)
		set(&c.Gemini.APIKey, apiKey)
	case ProviderOpenRouter:
		set(&c.OpenRouter.Model, model)
		set(&c.OpenRouter.APIKey, apiKey)
		set(&c.OpenRouter.BaseURL, baseURL)
	}
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	missing := func(env string) error {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	switch c.Provider {
	case "":
		return ErrNotConfigured
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return missing("MENDLY_ANTHROPIC_API_KEY")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return missing("MENDLY_OPENAI_API_KEY")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return missing("MENDLY_GEMINI_API_KEY")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return missing("MENDLY_OPENROUTER_API_KEY")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
