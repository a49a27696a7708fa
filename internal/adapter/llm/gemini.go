package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"campaign-studio/internal/core/port"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// Gemini implements port.TextGenerator with Google's GenAI SDK.
type Gemini struct {
	client *genai.Client
	config Config
}

// NewGemini creates a Gemini-backed generator.
func NewGemini(ctx context.Context, config Config) (*Gemini, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key (set GEMINI_API_KEY)", ErrInvalidConfig)
	}
	if config.Model == "" {
		config.Model = DefaultGeminiModel
	}

	cc := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Gemini{client: client, config: config}, nil
}

// Generate sends the prompt and asks for a JSON reply.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", ErrInvalidConfig)
	}

	gc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	if g.config.Temperature > 0 {
		gc.Temperature = genai.Ptr(float32(g.config.Temperature))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(prompt), gc)
	if err != nil {
		return "", geminiError(err)
	}
	text := resp.Text()
	if text == "" {
		return "", &port.UpstreamError{Provider: ProviderGemini, Message: "no response generated", Err: ErrLLMFailed}
	}
	return text, nil
}

func geminiError(err error) error {
	var apierr genai.APIError
	if errors.As(err, &apierr) {
		return &port.UpstreamError{
			Provider:   ProviderGemini,
			StatusCode: apierr.Code,
			Code:       apierr.Status,
			Message:    apierr.Message,
			Err:        fmt.Errorf("%w: %w", ErrLLMFailed, err),
		}
	}
	return &port.UpstreamError{Provider: ProviderGemini, Err: fmt.Errorf("%w: %w", ErrLLMFailed, err)}
}
