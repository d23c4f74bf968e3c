package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/engine"
	"github.com/akira/toeprep/internal/router"
	"github.com/akira/toeprep/internal/screen"
	"github.com/akira/toeprep/internal/screens/drill"
	"github.com/akira/toeprep/internal/ui/components"
	"github.com/akira/toeprep/internal/ui/theme"
)

// Drill lengths offered from the menu.
const (
	drillCount   = 10
	fullMixCount = 20
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	eng  *engine.Engine
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the shared engine.
func New(eng *engine.Engine) *HomeScreen {
	push := func(kind content.Kind, count int) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: drill.New(eng, kind, content.DifficultyAny, count),
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "VOCABULARY DRILL", Action: push(content.KindVocab, drillCount)},
		{Label: "GRAMMAR DRILL", Action: push(content.KindGrammar, drillCount)},
		{Label: "READING COMPREHENSION", Action: push(content.KindComprehension, drillCount)},
		{Label: "FULL MIX", Action: push(content.KindAny, fullMixCount)},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		eng:  eng,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	stats := h.eng.OverallStats()

	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("ToePrep"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Practice drills for the reading section"))

	// Progress card: coverage bar, accuracy and the score estimate.
	var coverage float64
	if stats.TotalItems > 0 {
		coverage = float64(stats.AnsweredItems) / float64(stats.TotalItems)
	}
	bar := components.NewProgressBar("Coverage", coverage, true, 46).View()
	statsLine := fmt.Sprintf("Answered: %d/%d    Accuracy: %.0f%%    Est. score: %d/495",
		stats.AnsweredItems, stats.TotalItems, stats.OverallAccuracy, stats.EstimatedScore)
	card := theme.Card.Render(bar + "\n" + lipgloss.NewStyle().Foreground(theme.Text).Render(statsLine))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(
		"The score estimate is a rough practice indicator, not an official result."))

	return "\n" + strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
