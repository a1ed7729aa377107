package summarizer

import (
	"context"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	// MockResponses maps prompt snippets to mock summaries.
	MockResponses map[string]string
	// DefaultResponse is returned when no matching snippet is found.
	DefaultResponse string
	// Err is returned from Summarize when set.
	Err error
	// ModelAvailable controls the return value of Available().
	ModelAvailable bool
	// LastPrompt records the prompt of the most recent Summarize call.
	LastPrompt string
}

// NewMockProvider creates a new MockProvider with default settings.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		MockResponses:   make(map[string]string),
		DefaultResponse: "This is a mock summary for testing purposes.",
		ModelAvailable:  true,
	}
}

// Summarize implements Provider.Summarize for the mock.
func (m *MockProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	for key, response := range m.MockResponses {
		if strings.Contains(prompt, key) {
			return response, nil
		}
	}
	return m.DefaultResponse, nil
}

// Available implements Provider.Available for the mock.
func (m *MockProvider) Available(ctx context.Context) (bool, error) {
	return m.ModelAvailable, nil
}

// Name implements Provider.Name for the mock.
func (m *MockProvider) Name() string {
	return "mock"
}

// MockOllamaClient is a mock implementation of OllamaClient for testing.
type MockOllamaClient struct {
	// Map of prompt snippets to mock summaries
	MockResponses map[string]string
	// Default response if no match is found
	DefaultResponse string
	// Available models to return from List()
	AvailableModels []string
}

// NewMockOllamaClient creates a new MockOllamaClient with default responses.
func NewMockOllamaClient() *MockOllamaClient {
	return &MockOllamaClient{
		MockResponses:   make(map[string]string),
		DefaultResponse: "This is a mock summary for testing purposes.",
		AvailableModels: []string{DefaultModel("ollama")},
	}
}

// Chat implements OllamaClient.Chat for the mock.
func (m *MockOllamaClient) Chat(ctx context.Context, req *ollama.ChatRequest, fn func(ollama.ChatResponse) error) error {
	var content string
	if len(req.Messages) > 0 {
		content = req.Messages[0].Content
	}

	summary := m.DefaultResponse
	for key, response := range m.MockResponses {
		if strings.Contains(content, key) {
			summary = response
			break
		}
	}

	resp := ollama.ChatResponse{
		Message: ollama.Message{
			Content: summary,
		},
	}
	return fn(resp)
}

// List implements OllamaClient.List for the mock.
func (m *MockOllamaClient) List(ctx context.Context) (*ollama.ListResponse, error) {
	models := make([]ollama.ListModelResponse, len(m.AvailableModels))
	for i, modelName := range m.AvailableModels {
		models[i] = ollama.ListModelResponse{
			Name: modelName,
		}
	}
	return &ollama.ListResponse{
		Models: models,
	}, nil
}
