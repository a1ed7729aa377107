package summarizer

import (
	"context"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

// OllamaClient defines the interface for interacting with Ollama.
// This allows us to mock the client for testing purposes.
type OllamaClient interface {
	Chat(ctx context.Context, req *ollama.ChatRequest, fn func(ollama.ChatResponse) error) error
	List(ctx context.Context) (*ollama.ListResponse, error)
}

type realOllamaClient struct {
	client *ollama.Client
}

func (r *realOllamaClient) Chat(ctx context.Context, req *ollama.ChatRequest, fn func(ollama.ChatResponse) error) error {
	return r.client.Chat(ctx, req, fn)
}

func (r *realOllamaClient) List(ctx context.Context) (*ollama.ListResponse, error) {
	return r.client.List(ctx)
}

// OllamaProvider implements Provider against a local Ollama instance. No
// API key is needed; the endpoint comes from the Ollama environment
// (OLLAMA_HOST).
type OllamaProvider struct {
	client OllamaClient
	model  string
}

// NewOllamaProvider creates an OllamaProvider from the environment.
func NewOllamaProvider(model string) (*OllamaProvider, error) {
	client, err := ollama.ClientFromEnvironment()
	if err != nil {
		return nil, err
	}
	return &OllamaProvider{client: &realOllamaClient{client: client}, model: model}, nil
}

// NewOllamaProviderFromClient creates an OllamaProvider from an existing
// OllamaClient. Used for testing with MockOllamaClient.
func NewOllamaProviderFromClient(client OllamaClient, model string) *OllamaProvider {
	return &OllamaProvider{client: client, model: model}
}

// Summarize implements Provider.Summarize using the Ollama Chat API.
func (o *OllamaProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	falseVar := false
	chatReq := &ollama.ChatRequest{
		Model: o.model,
		Messages: []ollama.Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		Stream: &falseVar,
	}

	var summary strings.Builder
	err := o.client.Chat(ctx, chatReq, func(resp ollama.ChatResponse) error {
		summary.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary.String()), nil
}

// Available implements Provider.Available by checking the Ollama model list.
func (o *OllamaProvider) Available(ctx context.Context) (bool, error) {
	response, err := o.client.List(ctx)
	if err != nil {
		return false, err
	}
	for _, model := range response.Models {
		if model.Name == o.model {
			return true, nil
		}
	}
	return false, nil
}

// Name implements Provider.Name.
func (o *OllamaProvider) Name() string {
	return "ollama"
}
