package drill

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/summary"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/layout"
	"github.com/abhisek/lexiz/internal/verify"
	"github.com/abhisek/lexiz/internal/wordgen"
)

// DrillScreen implements screen.Screen for an active vocabulary drill.
type DrillScreen struct {
	session *quiz.Session
	level   wordgen.Level
	count   int

	input   components.TextInput
	errMsg  string
	loading bool

	verifying          bool
	showingFeedback    bool
	showingQuitConfirm bool
	hintRevealed       bool
	outcome            *verify.Outcome

	spinnerFrame int
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.StatsProvider = (*DrillScreen)(nil)

// New creates a DrillScreen that will fetch count words at level.
func New(source wordgen.Source, verifier quiz.Verifier, level wordgen.Level, count int) *DrillScreen {
	return &DrillScreen{
		session: quiz.NewSession(source, verifier),
		level:   level,
		count:   count,
		loading: true,
		input:   components.NewTextInput("输入中文释义...", 40),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	return tea.Batch(
		d.startSession(),
		spinnerTick(),
		d.input.Init(),
	)
}

func (d *DrillScreen) Title() string {
	return d.level.DisplayName() + " Drill"
}

// HeaderStats feeds the live score and streak into the app header.
func (d *DrillScreen) HeaderStats() (int, int) {
	st := d.session.State()
	return st.Score, st.Streak
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	switch {
	case d.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End drill"},
			{Key: "N", Description: "Keep going"},
		}
	case d.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next word"},
		}
	case d.loading || d.verifying:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (d *DrillScreen) View(width, height int) string {
	switch {
	case d.errMsg != "":
		return renderError(width, height, d.errMsg)
	case d.loading:
		return renderLoading(width, height, d.spinnerFrame)
	case d.showingQuitConfirm:
		return renderQuitConfirm(width, height)
	case d.showingFeedback:
		return d.renderFeedback(width, height)
	default:
		return d.renderWord(width, height)
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		return d.handleBatchReady(msg)

	case outcomeMsg:
		return d.handleOutcome(msg)

	case spinnerTickMsg:
		if d.loading || d.verifying {
			d.spinnerFrame++
			return d, spinnerTick()
		}
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	// Forward to input while a word is presented.
	if d.accepting() {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}

	return d, nil
}

// accepting reports whether the answer input is live.
func (d *DrillScreen) accepting() bool {
	return !d.loading && !d.verifying && !d.showingFeedback && !d.showingQuitConfirm && d.errMsg == ""
}

// startSession fetches the word batch asynchronously.
func (d *DrillScreen) startSession() tea.Cmd {
	session, level, count := d.session, d.level, d.count
	return func() tea.Msg {
		err := session.Start(context.Background(), level, count)
		return batchReadyMsg{Err: err}
	}
}

func (d *DrillScreen) handleBatchReady(msg batchReadyMsg) (screen.Screen, tea.Cmd) {
	d.loading = false
	if msg.Err != nil {
		if errors.Is(msg.Err, quiz.ErrStaleResult) {
			return d, nil
		}
		d.errMsg = msg.Err.Error()
		return d, nil
	}
	d.input = components.NewTextInput("输入中文释义...", 40)
	return d, d.input.Init()
}

func (d *DrillScreen) handleOutcome(msg outcomeMsg) (screen.Screen, tea.Cmd) {
	if !d.verifying {
		return d, nil
	}
	d.verifying = false
	if msg.Err != nil {
		// A stale or rejected submission leaves the word presenting;
		// neither ends the drill.
		if errors.Is(msg.Err, quiz.ErrStaleResult) || errors.Is(msg.Err, quiz.ErrEmptyAnswer) {
			return d, nil
		}
		d.errMsg = msg.Err.Error()
		return d, nil
	}

	d.outcome = &msg.Outcome
	d.input.Submit(msg.Outcome.Correct)
	d.showingFeedback = true
	return d, nil
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if d.errMsg != "" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Quit confirmation dialog.
	if d.showingQuitConfirm {
		switch key {
		case "y", "Y":
			d.session.Reset()
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			d.showingQuitConfirm = false
			return d, nil
		}
		return d, nil
	}

	if key == "esc" {
		d.showingQuitConfirm = true
		return d, nil
	}

	// Feedback overlay — any key advances.
	if d.showingFeedback {
		return d.advance()
	}

	if d.loading || d.verifying {
		return d, nil
	}

	switch key {
	case "enter":
		return d.submitAnswer()
	case "tab":
		d.hintRevealed = true
		return d, nil
	}

	// Forward to text input.
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// submitAnswer kicks off verification of the typed answer. Blank input,
// whitespace included, is ignored rather than submitted.
func (d *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := strings.TrimSpace(d.input.Value())
	if answer == "" {
		return d, nil
	}

	d.verifying = true
	session := d.session
	return d, tea.Batch(
		func() tea.Msg {
			outcome, err := session.Submit(context.Background(), answer)
			return outcomeMsg{Outcome: outcome, Err: err}
		},
		spinnerTick(),
	)
}

// advance applies the outcome and moves to the next word or the summary.
func (d *DrillScreen) advance() (screen.Screen, tea.Cmd) {
	d.showingFeedback = false
	d.outcome = nil
	d.hintRevealed = false

	if err := d.session.Advance(); err != nil {
		d.errMsg = err.Error()
		return d, nil
	}

	if d.session.State().Finished {
		sum, err := d.session.Summarize()
		if err != nil {
			d.errMsg = err.Error()
			return d, nil
		}
		return d, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum)}
		}
	}

	d.input = components.NewTextInput("输入中文释义...", 40)
	return d, d.input.Init()
}

// spinnerTick returns a short tick command for spinner animation.
func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
