package quiz

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/verify"
	"github.com/abhisek/lexiz/internal/wordgen"
)

// Phase is the outer lifecycle of a drill session.
type Phase int

const (
	PhaseIdle     Phase = iota // No batch loaded.
	PhaseLoading               // Batch request in flight.
	PhaseReady                 // Batch loaded, drilling through words.
	PhaseFinished              // All words answered.
)

// WordState is the per-word sub-state while the session is in PhaseReady.
type WordState int

const (
	WordPresenting WordState = iota // Current word shown, awaiting an answer.
	WordVerifying                   // Answer submitted, outcome pending.
	WordResolved                    // Outcome available, awaiting Advance.
)

var (
	// ErrNotAccepting is returned when an operation is called outside the
	// state that permits it.
	ErrNotAccepting = errors.New("quiz: operation not valid in current state")

	// ErrEmptyAnswer is returned by Submit for an answer that is empty
	// after trimming.
	ErrEmptyAnswer = errors.New("quiz: answer is empty")

	// ErrStaleResult is returned when a suspended operation resolves after
	// the session has moved on (Reset or a new Start). Its result is
	// discarded, never applied.
	ErrStaleResult = errors.New("quiz: result arrived for a superseded attempt")
)

// Verifier decides whether a free-text answer is acceptable for a word.
// It never fails; oracle problems surface as a degraded Outcome.
type Verifier interface {
	Check(ctx context.Context, word wordgen.Word, answer string) verify.Outcome
}

// Session drills through a fixed word batch, tracking score and streak.
// It is the only entity that mutates drill state. Start and Submit block
// on network-bound work and are safe to run from command goroutines; all
// state transitions happen under the session lock, and results from
// superseded attempts are dropped.
type Session struct {
	mu       sync.Mutex
	source   wordgen.Source
	verifier Verifier

	id        string
	phase     Phase
	wordState WordState
	level     wordgen.Level

	words         []wordgen.Word
	position      int
	score         int
	totalAnswered int
	streak        int
	bestStreak    int
	missed        []wordgen.Word
	lastOutcome   *verify.Outcome

	// attempt is bumped by every Start, Submit, and Reset; suspended
	// operations capture it and re-check on resume to detect staleness.
	attempt uint64
}

// NewSession creates an idle session backed by the given batch source and
// answer verifier.
func NewSession(source wordgen.Source, verifier Verifier) *Session {
	return &Session{source: source, verifier: verifier}
}

// Start fetches a batch of count words at level and arms the session.
// Valid only from PhaseIdle. On any failure the session stays idle and the
// error is a *wordgen.GenerationError; count < 1 and an empty batch are
// generation errors regardless of what the source returns.
func (s *Session) Start(ctx context.Context, level wordgen.Level, count int) error {
	s.mu.Lock()
	if s.phase != PhaseIdle {
		s.mu.Unlock()
		return ErrNotAccepting
	}
	if count < 1 {
		s.mu.Unlock()
		return &wordgen.GenerationError{Err: errors.New("requested word count must be positive")}
	}
	s.phase = PhaseLoading
	s.attempt++
	attempt := s.attempt
	s.id = uuid.NewString()
	id := s.id
	s.mu.Unlock()

	words, err := s.source.FetchBatch(llm.WithSessionID(ctx, id), level, count)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempt != attempt {
		// Reset ran while the fetch was in flight.
		return ErrStaleResult
	}

	if err == nil && len(words) == 0 {
		err = &wordgen.GenerationError{Err: errors.New("source returned an empty batch")}
	}
	if err != nil {
		s.phase = PhaseIdle
		s.id = ""
		return err
	}

	s.level = level
	s.words = words
	s.position = 0
	s.score = 0
	s.totalAnswered = 0
	s.streak = 0
	s.bestStreak = 0
	s.missed = nil
	s.lastOutcome = nil
	s.phase = PhaseReady
	s.wordState = WordPresenting
	return nil
}

// Submit verifies raw against the current word. Valid only while the
// current word is in WordPresenting. The returned outcome is also held by
// the session for the subsequent Advance.
func (s *Session) Submit(ctx context.Context, raw string) (verify.Outcome, error) {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return verify.Outcome{}, ErrEmptyAnswer
	}

	s.mu.Lock()
	if s.phase != PhaseReady || s.wordState != WordPresenting {
		s.mu.Unlock()
		return verify.Outcome{}, ErrNotAccepting
	}
	s.wordState = WordVerifying
	s.attempt++
	attempt := s.attempt
	word := s.words[s.position]
	id := s.id
	s.mu.Unlock()

	outcome := s.verifier.Check(llm.WithSessionID(ctx, id), word, answer)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempt != attempt || s.phase != PhaseReady || s.wordState != WordVerifying {
		return verify.Outcome{}, ErrStaleResult
	}

	s.wordState = WordResolved
	s.lastOutcome = &outcome
	return outcome, nil
}

// Advance applies the resolved outcome to the running totals and moves to
// the next word, or finishes the session after the last one. Valid only in
// WordResolved.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady || s.wordState != WordResolved {
		return ErrNotAccepting
	}

	s.totalAnswered++
	if s.lastOutcome.Correct {
		s.score++
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
	} else {
		s.streak = 0
		s.missed = append(s.missed, s.words[s.position])
	}

	s.position++
	if s.position == len(s.words) {
		s.phase = PhaseFinished
		return nil
	}

	s.wordState = WordPresenting
	s.lastOutcome = nil
	return nil
}

// Reset discards all drill state and returns to PhaseIdle. Any in-flight
// Start or Submit resolves as stale and is dropped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempt++
	s.id = ""
	s.phase = PhaseIdle
	s.wordState = WordPresenting
	s.level = ""
	s.words = nil
	s.position = 0
	s.score = 0
	s.totalAnswered = 0
	s.streak = 0
	s.bestStreak = 0
	s.missed = nil
	s.lastOutcome = nil
}

// State is a point-in-time snapshot of the session for display.
type State struct {
	ID            string
	Phase         Phase
	WordState     WordState
	Level         wordgen.Level
	WordCount     int
	Position      int
	Score         int
	TotalAnswered int
	Streak        int
	BestStreak    int
	Finished      bool
}

// State returns a snapshot of the session's observable state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		ID:            s.id,
		Phase:         s.phase,
		WordState:     s.wordState,
		Level:         s.level,
		WordCount:     len(s.words),
		Position:      s.position,
		Score:         s.score,
		TotalAnswered: s.totalAnswered,
		Streak:        s.streak,
		BestStreak:    s.bestStreak,
		Finished:      s.phase == PhaseFinished,
	}
}

// Current returns the word being drilled, or false when no word is active.
func (s *Session) Current() (wordgen.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady {
		return wordgen.Word{}, false
	}
	return s.words[s.position], true
}

// Outcome returns the resolved outcome for the current word, or nil when
// none is pending display.
func (s *Session) Outcome() *verify.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastOutcome == nil {
		return nil
	}
	o := *s.lastOutcome
	return &o
}
