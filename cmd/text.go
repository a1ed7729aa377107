package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitsummary/internal/config"
	"gitsummary/internal/prompt"
	"gitsummary/internal/summarizer"
)

var (
	textModel string
	textInput string
)

// newGemini is swapped out in tests.
var newGemini = func(apiKey, model string) summarizer.Provider {
	return summarizer.NewGeminiProvider(apiKey, model)
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Generate text from a Gemini model",
	Long: `Text sends the input through the Gemini REST API and prints the
generated text. The instruction preface is selected by PROMPT_STYLE (or
SUMMARY_STYLE): "classic" requests a strict Markdown report skeleton,
anything else a concise variant.

If the primary model call fails, the model listing is consulted once for
an alternative that supports generateContent and the call is retried.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		key := cfg.GeminiKey()
		if key == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY (or GOOGLE_API_KEY) is required", summarizer.ErrMissingCredentials)
		}

		model := textModel
		if model == "" {
			model = cfg.Model
		}
		if model == "" {
			model = "gemini-1.5-flash"
		}

		input := textInput
		if input == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			input = string(data)
		}

		fullPrompt := prompt.Compose(prompt.StylePreface(cfg.Style()), input)
		text, err := newGemini(key, model).Summarize(cmd.Context(), fullPrompt)
		if err != nil {
			return err
		}
		// No trailing newline: the output may be piped into a file as-is.
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	textCmd.Flags().StringVar(&textModel, "model", "", "Gemini model id (default: AI_MODEL or gemini-1.5-flash)")
	textCmd.Flags().StringVar(&textInput, "input", "-", "'-' for stdin or literal text")
	rootCmd.AddCommand(textCmd)
}
