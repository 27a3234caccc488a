package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/verify"
	"github.com/abhisek/lexiz/internal/wordgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run a plain-stdin drill without the TUI",
	Long: `Fetch a word batch and drill through it on plain stdin/stdout.

This is a stateless developer tool — no TUI, no score header. Useful for
evaluating batch quality and the answer-checking behavior.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("level", "cet4", "Vocabulary level: cet4 or cet6")
	previewCmd.Flags().Int("count", 5, "Number of words to fetch")
}

func runPreview(cmd *cobra.Command, args []string) error {
	levelVal, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")

	level, err := wordgen.ParseLevel(levelVal)
	if err != nil {
		return err
	}

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	source := wordgen.New(provider, wordgen.DefaultConfig())
	checker := verify.NewService(verify.NewLLMOracle(provider, verify.DefaultOracleConfig()))
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Level: %s\n", level.DisplayName())
	fmt.Printf("Fetching %d words...\n\n", count)

	words, err := source.FetchBatch(ctx, level, count)
	if err != nil {
		return err
	}

	var correct int
	for i, w := range words {
		fmt.Printf("── Word %d/%d ──\n", i+1, len(words))
		fmt.Printf("%s  %s\n", w.Text, w.Phonetic)

		fmt.Print("\n释义: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Printf("(skipped)  %s\n\n", strings.Join(w.Meanings, "；"))
			continue
		}

		outcome := checker.Check(ctx, w, answer)
		if outcome.Correct {
			correct++
			fmt.Println("\033[32m✓ 正确!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ 不对.\033[0m 释义: %s\n", strings.Join(w.Meanings, "；"))
		}
		if outcome.Explanation != "" && outcome.Explanation != verify.ExplanationLocalMatch {
			fmt.Printf("说明: %s\n", outcome.Explanation)
		}
		if outcome.Degraded {
			fmt.Println("(semantic check unavailable; judged by text match only)")
		}
		fmt.Printf("%s\n%s\n\n", w.Example, w.ExampleTranslation)
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(words))
	return nil
}
