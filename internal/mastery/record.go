package mastery

import (
	"time"

	"github.com/akira/toeprep/internal/content"
)

// NeutralAccuracy is the accuracy assumed for items never answered.
// Treating unseen items as average keeps them from being starved or
// over-prioritized by the weak-area ordering.
const NeutralAccuracy = 0.5

// Record holds one item's historical performance. Records are created
// lazily on first answer and owned exclusively by the Tracker.
type Record struct {
	ItemID         content.ItemID
	TimesAnswered  int
	CorrectCount   int
	IncorrectCount int

	// AvgResponseMs is the running mean answer latency.
	AvgResponseMs float64

	LastAnsweredAt time.Time

	// Most recent attempt, retained for post-session review.
	LastSelected int
	LastCorrect  bool
}

// Accuracy returns the record's historical accuracy, or NeutralAccuracy
// if nothing has been answered.
func (r *Record) Accuracy() float64 {
	total := r.CorrectCount + r.IncorrectCount
	if total == 0 {
		return NeutralAccuracy
	}
	return float64(r.CorrectCount) / float64(total)
}

// record applies one attempt to the record, updating the running mean
// with the incremental formula newAvg = (oldAvg*(n-1) + sample) / n.
func (r *Record) record(selected int, correct bool, responseTimeMs int, now time.Time) {
	r.TimesAnswered++
	if correct {
		r.CorrectCount++
	} else {
		r.IncorrectCount++
	}
	n := float64(r.TimesAnswered)
	r.AvgResponseMs = (r.AvgResponseMs*(n-1) + float64(responseTimeMs)) / n
	r.LastAnsweredAt = now
	r.LastSelected = selected
	r.LastCorrect = correct
}
