package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/ui/theme"
)

// Stepper is a left/right adjustable numeric picker.
type Stepper struct {
	Label string
	Value int
	Min   int
	Max   int
	Step  int
}

// NewStepper creates a stepper clamped to [min, max].
func NewStepper(label string, value, min, max, step int) Stepper {
	s := Stepper{Label: label, Value: value, Min: min, Max: max, Step: step}
	s.clamp()
	return s
}

// Update handles left/right adjustment keys.
func (s Stepper) Update(msg tea.Msg) (Stepper, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value -= s.Step
	case "right", "l":
		s.Value += s.Step
	}
	s.clamp()
	return s, nil
}

func (s *Stepper) clamp() {
	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// View renders the stepper as "label  ◂ value ▸".
func (s Stepper) View(focused bool) string {
	arrowStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)

	if focused {
		arrowStyle = arrowStyle.Foreground(theme.Primary).Bold(true)
		valueStyle = valueStyle.Foreground(theme.Primary).Bold(true)
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}

	return fmt.Sprintf("%s  %s %s %s",
		labelStyle.Render(s.Label),
		arrowStyle.Render("◂"),
		valueStyle.Render(fmt.Sprintf("%2d", s.Value)),
		arrowStyle.Render("▸"),
	)
}
