package wordgen

import "github.com/abhisek/lexiz/internal/llm"

// BatchSchema defines the JSON schema for LLM word batch responses.
var BatchSchema = &llm.Schema{
	Name:        "word-batch",
	Description: "A batch of English vocabulary items with Chinese translations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type":        "array",
				"description": "The generated vocabulary items, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The English word",
						},
						"phonetic": map[string]any{
							"type":        "string",
							"description": "IPA transcription, e.g. /əˈbændən/",
						},
						"meanings": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"minItems":    1,
							"description": "Accepted Chinese translations, each semantically distinct",
						},
						"example": map[string]any{
							"type":        "string",
							"description": "An English example sentence using the word",
						},
						"example_translation": map[string]any{
							"type":        "string",
							"description": "Chinese translation of the example sentence",
						},
					},
					"required":             []any{"word", "phonetic", "meanings", "example", "example_translation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}
