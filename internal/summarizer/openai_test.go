package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitsummary/internal/prompt"
)

type capturedChatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func writeChatCompletion(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	resp := map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{
			{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
	assert.NoError(t, json.NewEncoder(w).Encode(resp))
}

func newTestOpenAI(t *testing.T, serverURL string, customPrompt bool) *OpenAIProvider {
	t.Helper()
	p, err := NewOpenAIProvider("sk-test", serverURL, "gpt-4o-mini", customPrompt)
	require.NoError(t, err)
	return p
}

func TestOpenAISummarizeDefaultInstruction(t *testing.T) {
	var captured capturedChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		writeChatCompletion(t, w, "  Two repos saw activity.  ")
	}))
	defer server.Close()

	p := newTestOpenAI(t, server.URL, false)
	summary, err := p.Summarize(context.Background(), "Summarize this.\n\nrepo-a: 3 commits")
	assert.NoError(t, err)
	assert.Equal(t, "Two repos saw activity.", summary)

	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.InDelta(t, 0.2, captured.Temperature, 1e-9)

	// Built-in instruction: system message plus the composed prompt.
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, prompt.OpenAISystemMessage, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "Summarize this.\n\nrepo-a: 3 commits", captured.Messages[1].Content)
}

func TestOpenAISummarizeCustomInstruction(t *testing.T) {
	var captured capturedChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		writeChatCompletion(t, w, "Custom summary.")
	}))
	defer server.Close()

	p := newTestOpenAI(t, server.URL, true)
	summary, err := p.Summarize(context.Background(), "Reply in one line.\n\nrepo-a: 3 commits")
	assert.NoError(t, err)
	assert.Equal(t, "Custom summary.", summary)

	// A custom instruction may carry its own system-level directions, so
	// the request has a single user message and no system message.
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "Reply in one line.\n\nrepo-a: 3 commits", captured.Messages[0].Content)
}

func TestOpenAISummarizeNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	p := newTestOpenAI(t, server.URL, false)
	_, err := p.Summarize(context.Background(), "prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestOpenAISummarizeEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChatCompletion(t, w, "   ")
	}))
	defer server.Close()

	p := newTestOpenAI(t, server.URL, false)
	_, err := p.Summarize(context.Background(), "prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestOpenAISummarizeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	p := newTestOpenAI(t, server.URL, false)
	_, err := p.Summarize(context.Background(), "prompt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "openai API request failed")
}

func TestOpenAIAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path == "/models/gpt-4o-mini" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"gpt-4o-mini","object":"model","owned_by":"openai"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"model not found"}}`))
	}))
	defer server.Close()

	p := newTestOpenAI(t, server.URL, false)
	available, err := p.Available(context.Background())
	assert.NoError(t, err)
	assert.True(t, available)

	p = newTestOpenAI(t, server.URL, false)
	p.model = "gpt-unknown"
	available, err = p.Available(context.Background())
	assert.NoError(t, err)
	assert.False(t, available)
}
