package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/mastery"
)

// Machine drives one practice run: a fixed item sequence, a cursor, and
// per-run counters. Answering delegates to the tracker; navigation is a
// separate caller-driven action so the front end can show feedback before
// moving on.
type Machine struct {
	repo    *content.Repository
	tracker *mastery.Tracker

	id        string
	state     State
	sequence  []content.ItemID
	cursor    int
	correct   int
	incorrect int

	// answered marks cursor positions already submitted this run; a second
	// submit at the same position is refused so the tracker is updated at
	// most once per presented item.
	answered map[int]bool

	startedAt time.Time
	shownAt   time.Time // When the current item was presented
	elapsed   time.Duration
}

// Current is the item at the cursor plus its passage, if it has one.
type Current struct {
	Item    content.Item
	Passage *content.Passage
	Index   int // Cursor position, zero-based
	Total   int // Sequence length
}

// AnswerResult reports the outcome of one submitted answer.
type AnswerResult struct {
	Correct       bool
	CorrectOption int
	Explanation   string
	ResponseMs    int
}

// Stats is a point-in-time view of the run's counters.
type Stats struct {
	Correct   int
	Incorrect int
	ElapsedMs int64
	Remaining int // Items in the sequence not yet answered
}

// NewMachine creates a machine in the NotStarted state.
func NewMachine(repo *content.Repository, tracker *mastery.Tracker) *Machine {
	return &Machine{
		repo:    repo,
		tracker: tracker,
		state:   StateNotStarted,
	}
}

// Start begins a run over the given sequence, discarding any prior run's
// state. An empty sequence is refused and leaves the machine NotStarted.
func (m *Machine) Start(sequence []content.ItemID) bool {
	if len(sequence) == 0 {
		m.state = StateNotStarted
		return false
	}
	now := time.Now()
	m.id = uuid.NewString()
	m.state = StateInProgress
	m.sequence = sequence
	m.cursor = 0
	m.correct = 0
	m.incorrect = 0
	m.answered = make(map[int]bool, len(sequence))
	m.startedAt = now
	m.shownAt = now
	m.elapsed = 0
	return true
}

// ID returns the run's identifier, empty before the first Start.
func (m *Machine) ID() string {
	return m.id
}

// State returns the lifecycle state.
func (m *Machine) State() State {
	return m.state
}

// Current returns the item (and passage, if any) at the cursor. It reports
// false in any non-InProgress state or if the cursor is out of range.
func (m *Machine) Current() (Current, bool) {
	if m.state != StateInProgress || m.cursor < 0 || m.cursor >= len(m.sequence) {
		return Current{}, false
	}
	item, ok := m.repo.Item(m.sequence[m.cursor])
	if !ok {
		return Current{}, false
	}
	cur := Current{Item: item, Index: m.cursor, Total: len(m.sequence)}
	if p, ok := m.repo.PassageFor(item); ok {
		cur.Passage = &p
	}
	return cur, true
}

// Answered reports whether the current cursor position has been submitted.
func (m *Machine) Answered() bool {
	return m.answered[m.cursor]
}

// Answer submits a choice for the current item. It refuses (reporting
// false, with no state change) when the machine is not InProgress, the
// selected index is outside the item's option list, or this position was
// already answered. It never advances the cursor.
func (m *Machine) Answer(selected int) (AnswerResult, bool) {
	cur, ok := m.Current()
	if !ok {
		return AnswerResult{}, false
	}
	if selected < 0 || selected >= len(cur.Item.Options) {
		return AnswerResult{}, false
	}
	if m.answered[m.cursor] {
		return AnswerResult{}, false
	}

	responseTimeMs := int(time.Since(m.shownAt).Milliseconds())
	correct := m.tracker.RecordAnswer(cur.Item, selected, responseTimeMs)

	m.answered[m.cursor] = true
	if correct {
		m.correct++
	} else {
		m.incorrect++
	}

	return AnswerResult{
		Correct:       correct,
		CorrectOption: cur.Item.Answer,
		Explanation:   cur.Item.Explanation,
		ResponseMs:    responseTimeMs,
	}, true
}

// Advance moves the cursor forward. A false return with the cursor on the
// last item is the completion signal callers use to End the run.
func (m *Machine) Advance() bool {
	if m.state != StateInProgress || m.cursor+1 >= len(m.sequence) {
		return false
	}
	m.cursor++
	m.shownAt = time.Now()
	return true
}

// Retreat moves the cursor backward, available only while cursor > 0.
func (m *Machine) Retreat() bool {
	if m.state != StateInProgress || m.cursor == 0 {
		return false
	}
	m.cursor--
	m.shownAt = time.Now()
	return true
}

// Stats returns the run's counters at any point in its lifecycle.
func (m *Machine) Stats() Stats {
	elapsed := m.elapsed
	if m.state == StateInProgress {
		elapsed = time.Since(m.startedAt)
	}
	return Stats{
		Correct:   m.correct,
		Incorrect: m.incorrect,
		ElapsedMs: elapsed.Milliseconds(),
		Remaining: len(m.sequence) - len(m.answered),
	}
}

// End completes the run unconditionally, freezing the counters. Further
// Answer/Advance/Retreat calls are refused afterwards.
func (m *Machine) End() *Summary {
	if m.state == StateInProgress {
		m.elapsed = time.Since(m.startedAt)
	}
	m.state = StateCompleted
	return m.buildSummary()
}
