// Package score derives a bounded proficiency estimate from aggregate
// mastery state. The estimate approximates a standardized reading-section
// sub-score for motivational feedback only; it is not a certified score
// and callers must present it as such.
package score

import (
	"math"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/mastery"
)

const (
	// MaxScore is the estimate ceiling, matching the reading-section
	// maximum of the target test.
	MaxScore = 495

	// accuracyWeight scales overall accuracy into the estimate.
	accuracyWeight = 400

	// coverageWeight scales catalog coverage into the estimate.
	coverageWeight = 200

	// bonusThreshold is the per-item accuracy a harder item must reach
	// to earn its difficulty bonus.
	bonusThreshold = 0.7

	// Per-item bonus increments and their overall cap.
	hardBonus   = 5
	mediumBonus = 2
	bonusCap    = 45
)

// Estimator computes the proficiency estimate on demand from the catalog
// and the tracker's aggregate state.
type Estimator struct {
	repo    *content.Repository
	tracker *mastery.Tracker
}

// NewEstimator creates an estimator over the given catalog and tracker.
func NewEstimator(repo *content.Repository, tracker *mastery.Tracker) *Estimator {
	return &Estimator{repo: repo, tracker: tracker}
}

// Estimate returns the current proficiency estimate in [0, MaxScore].
// The accuracy and coverage components plus the difficulty bonus can sum
// past the ceiling; the raw sum is clamped rather than rescaled.
func (e *Estimator) Estimate() int {
	correct, incorrect := e.tracker.Totals()

	var accuracyComponent float64
	if correct+incorrect > 0 {
		accuracyComponent = float64(correct) / float64(correct+incorrect) * accuracyWeight
	}

	var coverageComponent float64
	if e.repo.Len() > 0 {
		coverageComponent = float64(e.tracker.AnsweredCount()) / float64(e.repo.Len()) * coverageWeight
	}

	raw := accuracyComponent + coverageComponent + float64(e.difficultyBonus())
	score := int(math.Round(raw))
	if score > MaxScore {
		score = MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// difficultyBonus awards a small fixed increment for each harder-tagged
// item answered above the accuracy threshold, capped overall.
func (e *Estimator) difficultyBonus() int {
	bonus := 0
	for _, it := range e.repo.Items() {
		rec, ok := e.tracker.Record(it.ID)
		if !ok || rec.Accuracy() < bonusThreshold {
			continue
		}
		switch it.Difficulty {
		case content.DifficultyHard:
			bonus += hardBonus
		case content.DifficultyMedium:
			bonus += mediumBonus
		}
		if bonus >= bonusCap {
			return bonusCap
		}
	}
	return bonus
}
