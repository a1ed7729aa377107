package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment-driven settings. Flags may override
// Provider and Model at the command level.
type Config struct {
	Provider          string `env:"AI_PROVIDER" envDefault:"gemini"`
	Model             string `env:"AI_MODEL"`
	GeminiAPIKey      string `env:"GEMINI_API_KEY"`
	GoogleAPIKey      string `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL     string `env:"OPENAI_BASE_URL"`
	SummaryPrompt     string `env:"SUMMARY_PROMPT"`
	SummaryPromptFile string `env:"SUMMARY_PROMPT_FILE"`
	PromptStyle       string `env:"PROMPT_STYLE"`
	SummaryStyle      string `env:"SUMMARY_STYLE"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ProviderName returns the lowercased provider name, defaulting to
// "gemini" when AI_PROVIDER is unset or empty.
func (c Config) ProviderName() string {
	if c.Provider == "" {
		return "gemini"
	}
	return strings.ToLower(c.Provider)
}

// GeminiKey returns the Gemini API key, preferring GEMINI_API_KEY over
// GOOGLE_API_KEY.
func (c Config) GeminiKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return c.GoogleAPIKey
}

// Style returns the lowercased prompt style. PROMPT_STYLE wins over
// SUMMARY_STYLE; the default is "classic".
func (c Config) Style() string {
	style := c.PromptStyle
	if style == "" {
		style = c.SummaryStyle
	}
	if style == "" {
		style = "classic"
	}
	return strings.ToLower(style)
}
