package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/verify"
	"github.com/abhisek/lexiz/internal/wordgen"
)

var rootCmd = &cobra.Command{
	Use:   "lexiz",
	Short: "AI vocabulary drills for CET learners",
	Long:  "Lexiz — AI-native terminal app for drilling CET-4/CET-6 English vocabulary with free-text Chinese answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// runApp builds dependencies and launches the TUI. The app still starts
// without a provider; drills are disabled until one is configured.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	var opts app.Options
	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Drills will be unavailable.")
	} else {
		opts.Source = wordgen.New(provider, wordgen.DefaultConfig())
		opts.Verifier = verify.NewService(verify.NewLLMOracle(provider, verify.DefaultOracleConfig()))
	}

	return app.Run(opts)
}
