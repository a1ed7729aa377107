package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitsummary/internal/config"
	"gitsummary/internal/summarizer"
)

var (
	checkProvider string
	checkModel    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the configured model is available on the provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		providerName := strings.ToLower(checkProvider)
		if providerName == "" {
			providerName = cfg.ProviderName()
		}
		model := checkModel
		if model == "" {
			model = cfg.Model
		}
		if model == "" {
			model = summarizer.DefaultModel(providerName)
		}

		provider, err := newProvider(cfg, providerName, model, false)
		if err != nil {
			return err
		}

		available, err := provider.Available(cmd.Context())
		if err != nil {
			return fmt.Errorf("availability check failed: %w", err)
		}
		if !available {
			return fmt.Errorf("model %q is not available on provider %s", model, provider.Name())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "model %q is available on provider %s\n", model, provider.Name())
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkProvider, "provider", "", "AI provider: openai|gemini|ollama (default: AI_PROVIDER or gemini)")
	checkCmd.Flags().StringVar(&checkModel, "model", "", "model name for the chosen provider")
	rootCmd.AddCommand(checkCmd)
}
