package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"campaign-studio/internal/core/port"
)

const DefaultOpenAIModel = "gpt-4.1-mini"

// OpenAI implements port.TextGenerator with the chat completions API.
type OpenAI struct {
	client openai.Client
	config Config
}

// NewOpenAI creates an OpenAI-backed generator. SDK retries are disabled;
// every Generate call is a single round trip.
func NewOpenAI(config Config) (*OpenAI, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key (set OPENAI_API_KEY)", ErrInvalidConfig)
	}
	if config.Model == "" {
		config.Model = DefaultOpenAIModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &OpenAI{
		client: openai.NewClient(opts...),
		config: config,
	}, nil
}

// Generate sends the prompt and returns the first choice's content.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", ErrInvalidConfig)
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(prompt),
		},
	}
	if o.config.Temperature > 0 {
		params.Temperature = openai.Float(o.config.Temperature)
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", openAIError(err)
	}
	if len(completion.Choices) == 0 {
		return "", &port.UpstreamError{Provider: ProviderOpenAI, Message: "no response generated", Err: ErrLLMFailed}
	}
	return completion.Choices[0].Message.Content, nil
}

func openAIError(err error) error {
	var apierr *openai.Error
	if !errors.As(err, &apierr) {
		return &port.UpstreamError{Provider: ProviderOpenAI, Err: fmt.Errorf("%w: %w", ErrLLMFailed, err)}
	}
	return &port.UpstreamError{
		Provider:   ProviderOpenAI,
		StatusCode: apierr.StatusCode,
		Code:       apierr.Code,
		Message:    apierr.Message,
		Err:        fmt.Errorf("%w: %w", ErrLLMFailed, err),
	}
}
