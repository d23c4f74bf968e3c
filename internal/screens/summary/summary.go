package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akira/toeprep/internal/engine"
	"github.com/akira/toeprep/internal/router"
	"github.com/akira/toeprep/internal/screen"
	"github.com/akira/toeprep/internal/session"
	"github.com/akira/toeprep/internal/ui/layout"
	"github.com/akira/toeprep/internal/ui/theme"
)

// SummaryScreen displays the run's results and the learner's updated
// score estimate.
type SummaryScreen struct {
	summary *session.Summary
	overall engine.OverallStats
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary, overall engine.OverallStats) *SummaryScreen {
	return &SummaryScreen{summary: summary, overall: overall}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Drill Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	// Title.
	title := "Drill complete!"
	if !sum.Completed {
		title = "Drill ended"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Stats line.
	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Answered, sum.Correct, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	// Per-kind breakdown.
	if len(sum.KindResults) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("By question type")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, kr := range sum.KindResults {
			if kr.Attempted == 0 {
				continue
			}
			line := fmt.Sprintf("  %-24s %d/%d correct", kr.Kind.DisplayName(), kr.Correct, kr.Attempted)

			style := lipgloss.NewStyle().Foreground(theme.Text)
			if kr.Correct == kr.Attempted {
				style = style.Foreground(theme.Success)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Updated estimate.
	estLine := fmt.Sprintf("Estimated score: %d / 495", s.overall.EstimatedScore)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(estLine)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("A rough practice indicator, not an official result.")))
	b.WriteString("\n")

	return b.String()
}
