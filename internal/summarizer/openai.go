package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"gitsummary/internal/prompt"
)

const openAITemperature = 0.2

// OpenAIProvider implements Provider via the official OpenAI SDK using
// the chat completions API.
type OpenAIProvider struct {
	client       openai.Client
	model        string
	customPrompt bool
}

// NewOpenAIProvider builds an OpenAIProvider. baseURL may be empty to use
// the default endpoint; customPrompt controls the message framing in
// Summarize.
func NewOpenAIProvider(apiKey, baseURL, model string, customPrompt bool) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is required for provider=openai", ErrMissingCredentials)
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIProvider{
		client:       openai.NewClient(opts...),
		model:        model,
		customPrompt: customPrompt,
	}, nil
}

// Summarize implements Provider.Summarize. With the built-in instruction
// the request carries a system message plus the composed prompt; a custom
// instruction may embed its own system-level directions, so it goes out
// as a single user message.
func (o *OpenAIProvider) Summarize(ctx context.Context, composedPrompt string) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if o.customPrompt {
		messages = []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(composedPrompt),
		}
	} else {
		messages = []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.OpenAISystemMessage),
			openai.UserMessage(composedPrompt),
		}
	}

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    messages,
		Temperature: openai.Float(openAITemperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai API request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("openai API returned no choices")
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("openai returned empty response")
	}
	return text, nil
}

// Available implements Provider.Available by fetching the configured
// model from the models endpoint.
func (o *OpenAIProvider) Available(ctx context.Context) (bool, error) {
	if _, err := o.client.Models.Get(ctx, o.model); err != nil {
		return false, nil
	}
	return true, nil
}

// Name implements Provider.Name.
func (o *OpenAIProvider) Name() string {
	return "openai"
}
