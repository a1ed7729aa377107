package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gitsummary/internal/summarizer"
)

var rootCmd = &cobra.Command{
	Use:   "gitsummary",
	Short: "Summarize git activity with AI (Gemini, OpenAI, or Ollama)",
	Long: `Gitsummary forwards a block of text (typically git activity logs) to a
hosted LLM API and prints the returned summary.

Providers are selected with --provider or AI_PROVIDER: gemini (default),
openai, ollama, or none to echo the input unchanged. Prompt templates can
be overridden with SUMMARY_PROMPT or SUMMARY_PROMPT_FILE.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// newProvider is swapped out in tests.
var newProvider = summarizer.New

// Execute runs the root command and returns the process exit code: 0 on
// success, 1 on API or network failure, 2 on missing credentials.
func Execute() int {
	loadDotenv()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, summarizer.ErrMissingCredentials) {
			return 2
		}
		return 1
	}
	return 0
}

// loadDotenv loads ENV_FILE or ./.env when present. A missing file is
// not an error.
func loadDotenv() {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		_ = godotenv.Load(envFile)
		return
	}
	_ = godotenv.Load()
}
