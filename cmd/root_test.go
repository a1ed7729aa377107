package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitsummary/internal/config"
	"gitsummary/internal/summarizer"
)

func resetFlags() {
	textModel, textInput = "", "-"
	summarizeProvider, summarizeModel = "", ""
	checkProvider, checkModel = "", ""
}

// clearEnv blanks every variable the commands read so host settings
// cannot leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "OPENAI_BASE_URL",
		"AI_PROVIDER", "AI_MODEL", "SUMMARY_PROMPT", "SUMMARY_PROMPT_FILE",
		"PROMPT_STYLE", "SUMMARY_STYLE", "ENV_FILE",
	} {
		t.Setenv(key, "")
	}
}

// executeCommand resets flag state and runs the root command with the
// given stdin and arguments, capturing stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	out := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// swapProvider installs a mock provider factory for the duration of a test.
func swapProvider(t *testing.T, mock summarizer.Provider) {
	t.Helper()
	orig := newProvider
	newProvider = func(cfg config.Config, providerName, model string, customPrompt bool) (summarizer.Provider, error) {
		return mock, nil
	}
	t.Cleanup(func() {
		newProvider = orig
	})
}

func TestSummarizeMissingGeminiKey(t *testing.T) {
	clearEnv(t)

	_, err := executeCommand(t, "some activity", "summarize")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, summarizer.ErrMissingCredentials))
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestSummarizeUnknownProvider(t *testing.T) {
	clearEnv(t)

	_, err := executeCommand(t, "some activity", "summarize", "--provider", "claude")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, summarizer.ErrMissingCredentials))
	assert.Contains(t, err.Error(), "unknown provider: claude")
}

func TestExecuteExitCodes(t *testing.T) {
	clearEnv(t)

	// Missing credentials map to exit code 2.
	resetFlags()
	rootCmd.SetIn(strings.NewReader("activity"))
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"summarize", "--provider", "gemini"})
	assert.Equal(t, 2, Execute())

	// Any other failure maps to exit code 1.
	rootCmd.SetIn(strings.NewReader("activity"))
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"summarize", "--provider", "claude"})
	assert.Equal(t, 1, Execute())

	// Passthrough succeeds.
	rootCmd.SetIn(strings.NewReader("activity"))
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"summarize", "--provider", "none"})
	assert.Equal(t, 0, Execute())
}
