package drill

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/engine"
	"github.com/akira/toeprep/internal/router"
	"github.com/akira/toeprep/internal/screen"
	"github.com/akira/toeprep/internal/screens/summary"
	sess "github.com/akira/toeprep/internal/session"
	"github.com/akira/toeprep/internal/ui/components"
	"github.com/akira/toeprep/internal/ui/layout"
)

// DrillScreen runs one practice session against the engine. The engine
// owns all session semantics; this screen only renders state and maps
// keys onto engine calls.
type DrillScreen struct {
	eng        *engine.Engine
	kind       content.Kind
	difficulty content.Difficulty
	count      int

	choice      components.MultiChoice
	chosen      map[int]int // cursor position -> submitted option this run
	quitConfirm bool
	unavailable bool

	passage    components.PassageView
	hasPassage bool
	paneWidth  int
	paneHeight int
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill screen; the session starts on Init.
func New(eng *engine.Engine, kind content.Kind, difficulty content.Difficulty, count int) *DrillScreen {
	return &DrillScreen{
		eng:        eng,
		kind:       kind,
		difficulty: difficulty,
		count:      count,
		chosen:     make(map[int]int),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	if !d.eng.StartSession(d.kind, d.difficulty, d.count) {
		d.unavailable = true
		return nil
	}
	d.syncChoice()
	return tickCmd()
}

func (d *DrillScreen) Title() string {
	return d.kind.DisplayName()
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.unavailable {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if d.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End drill"},
			{Key: "N", Description: "Keep going"},
		}
	}
	var hints []layout.KeyHint
	if d.answeredCurrent() {
		hints = []layout.KeyHint{
			{Key: "→/n", Description: "Next"},
			{Key: "←/p", Description: "Previous"},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	if d.hasPassage {
		hints = append(hints, layout.KeyHint{Key: "PgUp/PgDn", Description: "Scroll"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "End"})
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if d.eng.SessionState() != sess.StateInProgress {
			return d, nil
		}
		return d, tickCmd()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.unavailable {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if d.quitConfirm {
		switch key {
		case "y", "Y":
			d.quitConfirm = false
			return d.finish()
		case "n", "N", "esc":
			d.quitConfirm = false
		}
		return d, nil
	}

	switch key {
	case "esc":
		d.quitConfirm = true
		return d, nil

	case "left", "p":
		if d.eng.PreviousItem() {
			d.syncChoice()
		}
		return d, nil

	case "pgup", "pgdown":
		if d.hasPassage {
			var cmd tea.Cmd
			d.passage, cmd = d.passage.Update(msg)
			return d, cmd
		}
		return d, nil

	case "right", "n":
		if !d.answeredCurrent() {
			// Answering is required before moving past an item.
			return d, nil
		}
		if d.eng.NextItem() {
			d.syncChoice()
			return d, nil
		}
		// Failed advance on an answered last item: the run is complete.
		return d.finish()
	}

	// Option navigation and submission.
	if !d.choice.Submitted {
		var cmd tea.Cmd
		d.choice, cmd = d.choice.Update(msg)
		if d.choice.Submitted {
			if _, ok := d.eng.SubmitAnswer(d.choice.ChosenIndex); ok {
				if cur, curOK := d.eng.CurrentItem(); curOK {
					d.chosen[cur.Index] = d.choice.ChosenIndex
				}
			}
		}
		return d, cmd
	}

	return d, nil
}

// finish ends the session and swaps in the summary screen.
func (d *DrillScreen) finish() (screen.Screen, tea.Cmd) {
	sum := d.eng.EndSession()
	overall := d.eng.OverallStats()
	return d, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, overall)}
	}
}

// syncChoice rebuilds the choice component for the item at the cursor,
// revealing the recorded selection when the item was already answered
// this run.
func (d *DrillScreen) syncChoice() {
	cur, ok := d.eng.CurrentItem()
	if !ok {
		return
	}
	if cur.Passage != nil {
		d.passage = components.NewPassageView(cur.Passage.Title, cur.Passage.Body)
		d.hasPassage = true
		d.paneWidth = 0 // resize on next render
	} else {
		d.hasPassage = false
	}
	d.choice = components.NewMultiChoice("", cur.Item.Options, cur.Item.Answer)
	if d.eng.CurrentAnswered() {
		if sel, ok := d.chosen[cur.Index]; ok {
			d.choice = d.choice.Reveal(sel)
		} else if rec, ok := d.eng.MasteryOf(cur.Item.ID); ok {
			d.choice = d.choice.Reveal(rec.LastSelected)
		}
	}
}

func (d *DrillScreen) answeredCurrent() bool {
	return d.eng.CurrentAnswered()
}

// tickCmd returns a 1-second tick command for the elapsed display.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
