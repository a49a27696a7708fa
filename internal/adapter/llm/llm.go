// Package llm holds the text generators behind port.TextGenerator: an OpenAI
// chat-completions client and a Gemini client. Provider failures are
// reported as *port.UpstreamError so the usecase can recognise exhausted
// quota without knowing which provider served the call.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campaign-studio/internal/config/configs"
	"campaign-studio/internal/core/port"
)

var (
	ErrLLMFailed     = errors.New("LLM request failed")
	ErrInvalidConfig = errors.New("invalid LLM configuration")
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	// SystemPrompt frames every generation request.
	SystemPrompt = "You are a helpful marketing AI."
)

// Config holds the options shared by both providers.
type Config struct {
	// Model is the provider model identifier. Empty selects the provider default.
	Model string
	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64
	// APIKey authenticates against the provider.
	APIKey string
	// BaseURL overrides the provider endpoint. Used by tests and proxies.
	BaseURL string
}

// New builds the generator selected by cfg.Provider.
func New(ctx context.Context, cfg configs.LLM, creds configs.Credentials) (port.TextGenerator, error) {
	c := Config{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		BaseURL:     cfg.BaseURL,
	}
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		c.APIKey = creds.OpenAIAPIKey
		return NewOpenAI(c)
	case ProviderGemini:
		c.APIKey = creds.GeminiAPIKey
		return NewGemini(ctx, c)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}
