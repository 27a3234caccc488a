package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/lexiz/internal/llm"
)

// OracleResult is the semantic oracle's judgement of one answer.
type OracleResult struct {
	Correct     bool
	Explanation string
}

// Oracle judges whether an answer is semantically equivalent to one of a
// word's accepted meanings. Implementations may suspend (network-bound)
// and may fail with *OracleError.
type Oracle interface {
	Check(ctx context.Context, word string, meanings []string, answer string) (OracleResult, error)
}

// OracleError indicates the semantic check failed: the oracle was
// unreachable or returned an unparseable response. It is always recovered
// by the Service via the containment fallback, never surfaced to callers.
type OracleError struct {
	Err error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("semantic oracle failed: %v", e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }

// OracleConfig holds configuration for the LLM oracle.
type OracleConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultOracleConfig returns sensible defaults.
func DefaultOracleConfig() OracleConfig {
	return OracleConfig{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// LLMOracle implements Oracle using the LLM provider.
type LLMOracle struct {
	provider llm.Provider
	cfg      OracleConfig
}

// NewLLMOracle creates an LLM-backed semantic oracle.
func NewLLMOracle(provider llm.Provider, cfg OracleConfig) *LLMOracle {
	return &LLMOracle{provider: provider, cfg: cfg}
}

// JudgementSchema defines the JSON schema for oracle responses.
var JudgementSchema = &llm.Schema{
	Name:        "answer-judgement",
	Description: "Verdict on whether a translation is semantically acceptable",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the learner's translation is an acceptable rendering of the word",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One sentence explaining the verdict, in Chinese",
			},
		},
		"required":             []any{"is_correct", "explanation"},
		"additionalProperties": false,
	},
}

// judgementOutput is the raw LLM response.
type judgementOutput struct {
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

const oracleSystemPrompt = `You judge Chinese translations of English words for a vocabulary drill.

Instructions:
- The learner was shown an English word and typed a Chinese translation from memory.
- Accept the translation if it is semantically equivalent to any of the listed accepted meanings, even when the wording differs.
- Reject translations that name a related but different concept, or a much broader or narrower one.
- Ignore punctuation and minor typos in pinyin or particles.
- Keep the explanation to one sentence.`

var oracleUserTemplate = template.Must(template.New("judgement").Parse(`Word: {{.Word}}
Accepted meanings:
{{range .Meanings}}- {{.}}
{{end}}Learner's translation: {{.Answer}}`))

// Check sends one semantic-equivalence judgement to the LLM.
// No retries are performed; any failure is returned as *OracleError.
func (o *LLMOracle) Check(ctx context.Context, word string, meanings []string, answer string) (OracleResult, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeAnswerCheck)

	userMsg, err := buildJudgementMessage(word, meanings, answer)
	if err != nil {
		return OracleResult{}, &OracleError{Err: fmt.Errorf("build judgement prompt: %w", err)}
	}

	req := llm.Request{
		System: oracleSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      JudgementSchema,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return OracleResult{}, &OracleError{Err: err}
	}

	var raw judgementOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return OracleResult{}, &OracleError{Err: fmt.Errorf("parse judgement response: %w", err)}
	}

	return OracleResult{
		Correct:     raw.IsCorrect,
		Explanation: strings.TrimSpace(raw.Explanation),
	}, nil
}

func buildJudgementMessage(word string, meanings []string, answer string) (string, error) {
	var buf bytes.Buffer
	err := oracleUserTemplate.Execute(&buf, struct {
		Word     string
		Meanings []string
		Answer   string
	}{word, meanings, answer})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
