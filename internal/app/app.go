package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/akira/toeprep/internal/engine"
	"github.com/akira/toeprep/internal/router"
	"github.com/akira/toeprep/internal/screen"
	"github.com/akira/toeprep/internal/screens/home"
	"github.com/akira/toeprep/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	eng    *engine.Engine
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(eng *engine.Engine) AppModel {
	return AppModel{
		eng:    eng,
		router: router.New(home.New(eng)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Esc is screen-local: drills use it for their end-of-run confirm,
	// so it is forwarded rather than handled here.
	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	overall := m.eng.OverallStats()
	header := layout.RenderHeader(title, overall.EstimatedScore, overall.OverallAccuracy, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinted, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hinted.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over an already-wired engine.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(newAppModel(eng))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
