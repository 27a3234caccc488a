package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/verify"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderWord renders the word being drilled with the answer input.
func (d *DrillScreen) renderWord(width, height int) string {
	word, ok := d.session.Current()
	if !ok {
		return ""
	}
	st := d.session.State()

	var b strings.Builder

	// Progress line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", d.level.DisplayName()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Word %d/%d", st.Position+1, st.WordCount))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(st.TotalAnswered)/float64(st.WordCount), false, width-8)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n\n")

	// The word itself, with phonetic.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(word.Text))
	b.WriteString("\n")
	b.WriteString(theme.Phonetic.
		Width(width).
		Align(lipgloss.Center).
		Render(word.Phonetic))
	b.WriteString("\n\n")

	// Hint: example sentence, revealed on demand.
	if d.hintRevealed {
		hint := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(word.Example)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n\n")
	}

	// Input area.
	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("释义: " + d.input.View())
	b.WriteString(answerLine)

	if d.verifying {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(spinnerFrames[d.spinnerFrame%len(spinnerFrames)] + " Checking..."))
	}

	return b.String()
}

// renderFeedback renders the outcome overlay for the current word.
func (d *DrillScreen) renderFeedback(width, height int) string {
	word, ok := d.session.Current()
	if !ok || d.outcome == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if d.outcome.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("正确!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("不对"))
	}
	b.WriteString("\n\n")

	// Accepted meanings.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%s %s — %s", word.Text, word.Phonetic, strings.Join(word.Meanings, "；"))))
	b.WriteString("\n\n")

	// Example sentence with translation.
	example := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(word.Example + "\n" + word.ExampleTranslation)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, example))
	b.WriteString("\n\n")

	// Oracle explanation, when it said more than the local heuristic.
	if d.outcome.Explanation != "" && d.outcome.Explanation != verify.ExplanationLocalMatch {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(d.outcome.Explanation)))
		b.WriteString("\n\n")
	}

	if d.outcome.Degraded {
		b.WriteString(theme.Degraded.
			Width(width).
			Align(lipgloss.Center).
			Render("Semantic check was unavailable; judged by text match only."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End drill early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This drill's progress will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, end drill"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the batch-fetch state.
func renderLoading(width, height int, frame int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s Generating your word batch...",
			spinnerFrames[frame%len(spinnerFrames)]))
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
