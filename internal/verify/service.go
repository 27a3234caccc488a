package verify

import (
	"context"
	"strings"

	"github.com/abhisek/lexiz/internal/wordgen"
)

// Service decides whether a free-text answer is an acceptable translation,
// minimizing calls to the external semantic oracle.
//
// Verification runs in two tiers:
//  1. A synchronous bidirectional-containment heuristic against the word's
//     accepted meanings. A hit short-circuits; the oracle is never invoked.
//  2. The semantic oracle, judging equivalence rather than surface form.
//     At most one oracle call is issued per check, with no retries; a
//     failure falls back to the containment heuristic and the outcome is
//     tagged as degraded.
type Service struct {
	oracle Oracle
}

// NewService creates a verification service. A nil oracle is allowed; all
// non-local decisions then take the degraded fallback path.
func NewService(oracle Oracle) *Service {
	return &Service{oracle: oracle}
}

// Check verifies answer against word's accepted meanings.
// It never fails: oracle errors are absorbed into a degraded outcome.
func (s *Service) Check(ctx context.Context, word wordgen.Word, answer string) Outcome {
	answer = strings.TrimSpace(answer)

	// Tier 1: containment heuristic. Cheap, deterministic, no suspension.
	if containsMatch(word.Meanings, answer) {
		return Outcome{
			Correct:     true,
			Answer:      answer,
			Explanation: ExplanationLocalMatch,
		}
	}

	// Tier 2: semantic oracle.
	if s.oracle != nil {
		res, err := s.oracle.Check(ctx, word.Text, word.Meanings, answer)
		if err == nil {
			return Outcome{
				Correct:     res.Correct,
				Answer:      answer,
				Explanation: res.Explanation,
			}
		}
	}

	return fallbackOutcome(word.Meanings, answer)
}

// containsMatch reports whether the answer is a substring of some accepted
// meaning, or some accepted meaning is a substring of the answer.
func containsMatch(meanings []string, answer string) bool {
	if answer == "" {
		return false
	}
	for _, m := range meanings {
		if strings.Contains(m, answer) || strings.Contains(answer, m) {
			return true
		}
	}
	return false
}

// fallbackOutcome re-evaluates containment when the oracle is unavailable.
// It runs its own normalization pass (case folding on top of trimming), so
// its verdict may differ from tier 1 for mixed-case answers; the two tiers
// are kept as separate evaluations on purpose.
func fallbackOutcome(meanings []string, answer string) Outcome {
	folded := strings.ToLower(answer)
	foldedMeanings := make([]string, len(meanings))
	for i, m := range meanings {
		foldedMeanings[i] = strings.ToLower(m)
	}

	return Outcome{
		Correct:     containsMatch(foldedMeanings, folded),
		Answer:      answer,
		Explanation: "semantic check unavailable; judged by containment only",
		Degraded:    true,
	}
}
