package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/akira/toeprep/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	if d.unavailable {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No questions match this drill yet.\n\n  Press any key to go back.")
	}

	if d.quitConfirm {
		return d.renderQuitConfirm(width)
	}

	cur, ok := d.eng.CurrentItem()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading question...")
	}

	var b strings.Builder

	// Info line.
	stats := d.eng.SessionStats()
	secs := stats.ElapsedMs / 1000
	timerStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", cur.Item.Kind.DisplayName()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %s",
			cur.Index+1,
			cur.Total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			stats.Correct,
			timerStr,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question body, with the passage beside it for comprehension items.
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(cur.Item.Prompt)

	question := prompt + "\n\n" + d.choice.View()

	if d.hasPassage {
		paneWidth := width/2 - 6
		paneHeight := height - 10
		if paneHeight < 4 {
			paneHeight = 4
		}
		if d.paneWidth != paneWidth || d.paneHeight != paneHeight {
			d.passage.SetSize(paneWidth, paneHeight)
			d.paneWidth = paneWidth
			d.paneHeight = paneHeight
		}
		pane := d.passage.View()
		questionCol := lipgloss.NewStyle().
			Width(width - lipgloss.Width(pane) - 6).
			PaddingLeft(2).
			Render(question)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, " "+pane, questionCol))
	} else {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(question))
	}
	b.WriteString("\n")

	// Post-answer feedback.
	if d.choice.Submitted {
		b.WriteString("\n")
		b.WriteString(d.renderFeedback(cur.Item.Explanation, width))
	}

	return b.String()
}

// renderFeedback shows the verdict and explanation after a submission.
func (d *DrillScreen) renderFeedback(explanation string, width int) string {
	var verdict string
	if d.choice.IsCorrect() {
		verdict = lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("  ✓ Correct!")
	} else {
		verdict = lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("  ✗ Not quite.")
	}

	out := verdict
	if explanation != "" {
		out += "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(max(width-6, 0)).
			PaddingLeft(2).
			Render(explanation)
	}
	out += "\n" + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("  → next question")
	return out
}

func (d *DrillScreen) renderQuitConfirm(width int) string {
	stats := d.eng.SessionStats()
	msg := fmt.Sprintf(
		"End this drill?\n\n%d correct, %d incorrect so far.\n\n[Y] End and see results   [N] Keep going",
		stats.Correct, stats.Incorrect,
	)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\n" + msg)
}
