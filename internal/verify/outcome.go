package verify

// Outcome is the result of verifying one submitted answer.
// Produced once per submission and never mutated afterwards.
type Outcome struct {
	// Correct reports whether the answer was accepted.
	Correct bool

	// Answer is the submitted answer after trimming.
	Answer string

	// Explanation describes how the decision was reached. For local
	// matches it is ExplanationLocalMatch; for oracle decisions it is the
	// oracle's own one-line justification.
	Explanation string

	// Degraded is true when the semantic oracle was unreachable and the
	// decision fell back to the containment heuristic. Callers can surface
	// reduced confidence to the learner.
	Degraded bool
}

// ExplanationLocalMatch marks outcomes decided by the containment heuristic
// without consulting the oracle.
const ExplanationLocalMatch = "local-match"
