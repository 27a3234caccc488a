package wordgen

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/lexiz/internal/llm"
)

// LLMSource implements Source using the LLM provider.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMSource with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Words []wordOutput `json:"words"`
}

type wordOutput struct {
	Word               string   `json:"word"`
	Phonetic           string   `json:"phonetic"`
	Meanings           []string `json:"meanings"`
	Example            string   `json:"example"`
	ExampleTranslation string   `json:"example_translation"`
}

// FetchBatch generates a batch of count items for the given level.
func (s *LLMSource) FetchBatch(ctx context.Context, level Level, count int) ([]Word, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeWordBatch)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(level, count)},
		},
		Schema:      BatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, genErrf("parse batch response: %w", err)
	}

	if len(raw.Words) == 0 {
		return nil, genErrf("upstream produced an empty batch")
	}

	words := make([]Word, 0, len(raw.Words))
	for i, w := range raw.Words {
		item, err := buildWord(w)
		if err != nil {
			// One malformed item rejects the whole batch.
			return nil, genErrf("malformed item %d (%q): %w", i, w.Word, err)
		}
		words = append(words, item)
	}

	// The model occasionally overshoots the requested count.
	if len(words) > count {
		words = words[:count]
	}

	return words, nil
}

// buildWord validates a raw item and converts it into a Word.
func buildWord(w wordOutput) (Word, error) {
	text := strings.TrimSpace(w.Word)
	if text == "" {
		return Word{}, errEmptyField("word")
	}
	if strings.TrimSpace(w.Example) == "" {
		return Word{}, errEmptyField("example")
	}
	if strings.TrimSpace(w.ExampleTranslation) == "" {
		return Word{}, errEmptyField("example_translation")
	}

	var meanings []string
	for _, m := range w.Meanings {
		if m = strings.TrimSpace(m); m != "" {
			meanings = append(meanings, m)
		}
	}
	if len(meanings) == 0 {
		return Word{}, errEmptyField("meanings")
	}

	return Word{
		Text:               text,
		Phonetic:           strings.TrimSpace(w.Phonetic),
		Meanings:           meanings,
		Example:            strings.TrimSpace(w.Example),
		ExampleTranslation: strings.TrimSpace(w.ExampleTranslation),
	}, nil
}

type errEmptyField string

func (e errEmptyField) Error() string {
	return "missing required field " + string(e)
}
