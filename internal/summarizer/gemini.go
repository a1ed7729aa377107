package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

	geminiGenerateTimeout = 60 * time.Second
	geminiListTimeout     = 30 * time.Second
)

// GeminiProvider implements Provider against the Gemini generateContent
// REST API. A failed primary call triggers a one-time model discovery on
// the v1beta listing endpoint followed by a single retry.
type GeminiProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiProvider creates a GeminiProvider for the given key and model.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	return &GeminiProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiModelList struct {
	Models []geminiModel `json:"models"`
}

type geminiModel struct {
	Name                       string   `json:"name"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// Summarize implements Provider.Summarize. The primary call goes to the
// v1 endpoint with the configured model id; on failure the v1beta model
// listing is consulted once for an alternative and the call is retried.
func (g *GeminiProvider) Summarize(ctx context.Context, prompt string) (string, error) {
	text, primaryErr := g.generate(ctx, "/v1/models/"+g.model+":generateContent", prompt)
	if primaryErr == nil {
		return text, nil
	}

	fallback, listErr := g.discoverModel(ctx)
	if listErr != nil {
		return "", fmt.Errorf("gemini REST call failed: %v | %v", primaryErr, listErr)
	}

	// The listing returns full names like "models/gemini-1.5-flash",
	// which the v1beta endpoint expects verbatim.
	text, retryErr := g.generate(ctx, "/v1beta/"+fallback+":generateContent", prompt)
	if retryErr != nil {
		return "", fmt.Errorf("gemini REST call failed: %v | %v", primaryErr, retryErr)
	}
	return text, nil
}

func (g *GeminiProvider) generate(ctx context.Context, path, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, geminiGenerateTimeout)
	defer cancel()

	url := g.baseURL + path + "?key=" + g.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncateBody(respBody, 200))
	}

	var genResp geminiResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	if len(genResp.Candidates) == 0 {
		return "", errors.New("parse error: response has no candidates")
	}

	var sb strings.Builder
	for _, part := range genResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("gemini returned empty response")
	}
	return text, nil
}

// discoverModel lists the v1beta models and picks the first one that
// supports generateContent and looks like a usable Gemini variant.
func (g *GeminiProvider) discoverModel(ctx context.Context) (string, error) {
	models, err := g.listModels(ctx)
	if err != nil {
		return "", err
	}
	for _, m := range models {
		if !supportsGenerateContent(m) {
			continue
		}
		if strings.Contains(m.Name, "gemini-1.5") || strings.Contains(m.Name, "flash") {
			return m.Name, nil
		}
	}
	return "", errors.New("no suitable model found")
}

func (g *GeminiProvider) listModels(ctx context.Context) ([]geminiModel, error) {
	ctx, cancel := context.WithTimeout(ctx, geminiListTimeout)
	defer cancel()

	url := g.baseURL + "/v1beta/models?key=" + g.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list models request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list models HTTP %d", resp.StatusCode)
	}

	var list geminiModelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to parse models response: %w", err)
	}
	return list.Models, nil
}

// Available implements Provider.Available by checking the model listing
// for the configured model.
func (g *GeminiProvider) Available(ctx context.Context) (bool, error) {
	models, err := g.listModels(ctx)
	if err != nil {
		return false, err
	}
	for _, m := range models {
		if m.Name == g.model || strings.HasSuffix(m.Name, "/"+g.model) {
			return true, nil
		}
	}
	return false, nil
}

// Name implements Provider.Name.
func (g *GeminiProvider) Name() string {
	return "gemini"
}

func supportsGenerateContent(m geminiModel) bool {
	for _, method := range m.SupportedGenerationMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

func truncateBody(body []byte, n int) string {
	if len(body) > n {
		body = body[:n]
	}
	// The cut can land inside a multi-byte rune; drop the partial bytes
	// so the error string stays valid UTF-8.
	return strings.ToValidUTF8(string(body), "")
}
