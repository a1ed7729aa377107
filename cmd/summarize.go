package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"gitsummary/internal/config"
	"gitsummary/internal/prompt"
	"gitsummary/internal/summarizer"
)

var (
	summarizeProvider string
	summarizeModel    string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize git activity text from stdin",
	Long: `Summarize reads text from stdin, sends it to the selected provider
with a summary instruction, and prints the result.

The instruction is resolved in order of precedence: SUMMARY_PROMPT_FILE,
SUMMARY_PROMPT, then a built-in default. Provider "none" (also "off" or
"disabled") echoes the input unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text := string(data)

		providerName := strings.ToLower(summarizeProvider)
		if providerName == "" {
			providerName = cfg.ProviderName()
		}
		switch providerName {
		case "none", "off", "disabled":
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}

		model := summarizeModel
		if model == "" {
			model = cfg.Model
		}
		if model == "" {
			model = summarizer.DefaultModel(providerName)
		}

		resolved := prompt.ResolveSummary(cfg)
		provider, err := newProvider(cfg, providerName, model, resolved.Custom)
		if err != nil {
			return err
		}

		summary, err := provider.Summarize(cmd.Context(), prompt.Compose(resolved.Instruction, text))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeProvider, "provider", "", "AI provider: openai|gemini|ollama|none (default: AI_PROVIDER or gemini)")
	summarizeCmd.Flags().StringVar(&summarizeModel, "model", "", "model name for the chosen provider")
	rootCmd.AddCommand(summarizeCmd)
}
