package quiz

import (
	"math"

	"github.com/abhisek/lexiz/internal/wordgen"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Level           wordgen.Level
	Correct         int
	Total           int
	AccuracyPercent int
	BestStreak      int
	Missed          []wordgen.Word
}

// Summarize derives final statistics from a finished session. Valid only
// in PhaseFinished. Total is never zero here: Start rejects empty batches,
// so a finished session always drilled at least one word.
func (s *Session) Summarize() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseFinished {
		return Summary{}, ErrNotAccepting
	}

	missed := make([]wordgen.Word, len(s.missed))
	copy(missed, s.missed)

	return Summary{
		Level:           s.level,
		Correct:         s.score,
		Total:           len(s.words),
		AccuracyPercent: int(math.Round(100 * float64(s.score) / float64(len(s.words)))),
		BestStreak:      s.bestStreak,
		Missed:          missed,
	}, nil
}
