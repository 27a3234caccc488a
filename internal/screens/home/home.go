package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexiz/internal/quiz"
	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
	"github.com/abhisek/lexiz/internal/screens/drill"
	"github.com/abhisek/lexiz/internal/ui/components"
	"github.com/abhisek/lexiz/internal/ui/theme"
	"github.com/abhisek/lexiz/internal/wordgen"
)

const (
	defaultWordCount = 10
	minWordCount     = 5
	maxWordCount     = 25
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	counter    components.Stepper
	source     wordgen.Source
	verifier   quiz.Verifier
	configured bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. A nil source means no LLM backend is
// configured; drill entries are disabled and a hint is shown instead.
func New(source wordgen.Source, verifier quiz.Verifier) *HomeScreen {
	h := &HomeScreen{
		source:     source,
		verifier:   verifier,
		configured: source != nil,
		counter:    components.NewStepper("Words per drill", defaultWordCount, minWordCount, maxWordCount, 5),
	}

	items := []components.MenuItem{
		{Label: "CET-4 DRILL", Disabled: !h.configured, Action: func() tea.Cmd {
			return h.startDrill(wordgen.LevelCET4)
		}},
		{Label: "CET-6 DRILL", Disabled: !h.configured, Action: func() tea.Cmd {
			return h.startDrill(wordgen.LevelCET6)
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startDrill(level wordgen.Level) tea.Cmd {
	count := h.counter.Value
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: drill.New(h.source, h.verifier, level, count),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.counter, _ = h.counter.Update(msg)
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("L E X I Z")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("CET vocabulary drills, one word at a time")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.counter.View(false))
	sections = append(sections, h.menu.View())

	if !h.configured {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true).
			Render("No LLM provider configured.\nSet LEXIZ_LLM_PROVIDER or an API key to enable drills."))
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
