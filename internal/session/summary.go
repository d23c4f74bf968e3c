package session

import (
	"time"

	"github.com/akira/toeprep/internal/content"
)

// KindResult is one kind's attempted/correct breakdown within a run.
type KindResult struct {
	Kind      content.Kind
	Attempted int
	Correct   int
}

// Summary holds the data shown on the run's final screen.
type Summary struct {
	SessionID   string
	Duration    time.Duration
	Answered    int
	Correct     int
	Incorrect   int
	Accuracy    float64
	Completed   bool // Every item in the sequence was answered
	KindResults []KindResult
}

// buildSummary derives the summary from the machine's frozen state.
func (m *Machine) buildSummary() *Summary {
	s := &Summary{
		SessionID: m.id,
		Duration:  m.elapsed,
		Answered:  m.correct + m.incorrect,
		Correct:   m.correct,
		Incorrect: m.incorrect,
		Completed: len(m.sequence) > 0 && len(m.answered) == len(m.sequence),
	}
	if s.Answered > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Answered)
	}

	// Per-kind breakdown in display-kind order, from the tracker's
	// last-attempt pair for each answered position.
	byKind := make(map[content.Kind]*KindResult)
	for pos := range m.answered {
		item, ok := m.repo.Item(m.sequence[pos])
		if !ok {
			continue
		}
		kr := byKind[item.Kind]
		if kr == nil {
			kr = &KindResult{Kind: item.Kind}
			byKind[item.Kind] = kr
		}
		kr.Attempted++
		if rec, ok := m.tracker.Record(item.ID); ok && rec.LastCorrect {
			kr.Correct++
		}
	}
	for _, k := range content.AllKinds() {
		if kr, ok := byKind[k]; ok {
			s.KindResults = append(s.KindResults, *kr)
		}
	}
	return s
}
