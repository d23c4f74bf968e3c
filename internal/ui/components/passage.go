package components

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akira/toeprep/internal/ui/theme"
)

// PassageView wraps bubbles/viewport so long reading passages scroll
// inside a fixed pane while the question stays visible beside them.
type PassageView struct {
	Model viewport.Model
	title string
	body  string
}

// NewPassageView creates a scrollable pane over a passage.
func NewPassageView(title, body string) PassageView {
	return PassageView{
		Model: viewport.New(),
		title: title,
		body:  body,
	}
}

// SetSize resizes the pane and re-wraps the passage body to fit.
func (p *PassageView) SetSize(width, height int) {
	p.Model.SetWidth(width)
	p.Model.SetHeight(height)
	p.Model.SetContent(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Render(p.body))
}

// Update forwards scroll keys to the viewport.
func (p PassageView) Update(msg tea.Msg) (PassageView, tea.Cmd) {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

// View renders the titled pane.
func (p PassageView) View() string {
	t := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(p.title)
	return theme.PassagePane.Render(t + "\n\n" + p.Model.View())
}
