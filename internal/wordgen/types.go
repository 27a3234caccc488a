package wordgen

import (
	"context"
	"fmt"
	"strings"
)

// Word is one vocabulary item ready for drilling.
// Immutable once produced by a Source.
type Word struct {
	// Text is the English word itself, e.g. "abandon".
	Text string

	// Phonetic is the IPA transcription, e.g. "/əˈbændən/".
	Phonetic string

	// Meanings holds the accepted Chinese translations, ordered, at least one.
	// Each entry is a semantically distinct acceptable translation.
	Meanings []string

	// Example is an English example sentence using the word.
	Example string

	// ExampleTranslation is the Chinese translation of Example.
	ExampleTranslation string
}

// Level is the proficiency level a batch is generated for.
type Level string

const (
	// LevelCET4 targets the CET-4 vocabulary range.
	LevelCET4 Level = "cet4"

	// LevelCET6 targets the CET-6 vocabulary range.
	LevelCET6 Level = "cet6"
)

// ParseLevel converts a user-supplied string into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cet4", "cet-4", "4":
		return LevelCET4, nil
	case "cet6", "cet-6", "6":
		return LevelCET6, nil
	default:
		return "", fmt.Errorf("invalid level %q: must be cet4 or cet6", s)
	}
}

// DisplayName returns the human-readable level name.
func (l Level) DisplayName() string {
	switch l {
	case LevelCET4:
		return "CET-4"
	case LevelCET6:
		return "CET-6"
	default:
		return string(l)
	}
}

// Source produces an ordered batch of vocabulary items.
type Source interface {
	// FetchBatch returns count items for the given level. The returned batch
	// is never empty on success; fetch failure, unparseable output, or a
	// malformed item rejects the whole batch with a *GenerationError.
	FetchBatch(ctx context.Context, level Level, count int) ([]Word, error)
}
