package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the configured LLM provider",
}

var llmProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Send a tiny request to verify the provider is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		provider, err := llm.NewProviderFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		fmt.Printf("Model:     %s\n", provider.ModelID())

		start := time.Now()
		resp, err := provider.Generate(llm.WithPurpose(ctx, llm.PurposeProbe), llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: `Reply with the JSON object {"ok": true} and nothing else.`},
			},
			Schema: &llm.Schema{
				Name: "probe",
				Definition: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"ok": map[string]any{"type": "boolean"},
					},
					"required":             []any{"ok"},
					"additionalProperties": false,
				},
			},
			MaxTokens: 64,
		})
		latency := time.Since(start)
		if err != nil {
			return fmt.Errorf("probe request: %w", err)
		}

		var probe struct {
			OK bool `json:"ok"`
		}
		if err := json.Unmarshal(resp.Content, &probe); err != nil {
			return fmt.Errorf("parse probe response: %w", err)
		}

		fmt.Printf("Latency:   %dms\n", latency.Milliseconds())
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		if cost := llm.LookupCost(resp.Model); cost != nil {
			fmt.Printf("Est. cost: $%.6f\n", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
		fmt.Printf("OK:        %v\n", probe.OK)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmProbeCmd)
}
