// Package summarizer contains the LLM providers that turn a prompt into
// a summary: Gemini over REST, OpenAI via the official SDK, and a local
// Ollama instance.
package summarizer

import (
	"context"
	"errors"
	"fmt"

	"gitsummary/internal/config"
)

// ErrMissingCredentials marks failures caused by an absent API key. The
// CLI maps it to exit code 2.
var ErrMissingCredentials = errors.New("missing credentials")

// Provider defines a provider-agnostic interface for LLM operations.
type Provider interface {
	// Summarize sends the fully composed prompt to the LLM and returns
	// the generated text.
	Summarize(ctx context.Context, prompt string) (string, error)
	// Available checks if the configured model is accessible.
	Available(ctx context.Context) (bool, error)
	// Name returns the provider name for display purposes.
	Name() string
}

// DefaultModel returns the model used for a provider when neither the
// --model flag nor AI_MODEL is set.
func DefaultModel(providerName string) string {
	switch providerName {
	case "openai":
		return "gpt-4o-mini"
	case "ollama":
		return "llama3.2:latest"
	default:
		return "gemini-1.5-flash-latest"
	}
}

// New builds the provider named by providerName. customPrompt reports
// whether a user-supplied instruction override is active, which changes
// how the OpenAI provider frames its messages.
func New(cfg config.Config, providerName, model string, customPrompt bool) (Provider, error) {
	switch providerName {
	case "gemini":
		key := cfg.GeminiKey()
		if key == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY (or GOOGLE_API_KEY) is required for provider=gemini", ErrMissingCredentials)
		}
		return NewGeminiProvider(key, model), nil
	case "openai":
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, model, customPrompt)
	case "ollama":
		return NewOllamaProvider(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s. Use openai|gemini|ollama|none", providerName)
	}
}
