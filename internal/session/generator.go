package session

import (
	"sort"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/mastery"
)

// Generator selects and orders items for a practice run. Selection is
// weak-area-first: eligible items are stable-sorted by the learner's
// historical accuracy ascending, so frequently missed items come first
// and ties keep catalog order.
type Generator struct {
	repo    *content.Repository
	tracker *mastery.Tracker
}

// NewGenerator creates a generator over the given catalog and tracker.
func NewGenerator(repo *content.Repository, tracker *mastery.Tracker) *Generator {
	return &Generator{repo: repo, tracker: tracker}
}

// Generate returns up to count item IDs matching the filters, ordered
// weakest-first. Fewer than count eligible items yields all of them;
// zero yields an empty sequence, which callers must treat as "no session
// available" rather than a fault.
func (g *Generator) Generate(kind content.Kind, difficulty content.Difficulty, count int) []content.ItemID {
	if count <= 0 {
		return nil
	}

	var eligible []content.Item
	for _, it := range g.repo.Items() {
		if kind != content.KindAny && it.Kind != kind {
			continue
		}
		if difficulty != content.DifficultyAny && it.Difficulty != difficulty {
			continue
		}
		eligible = append(eligible, it)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return g.tracker.AccuracyOf(eligible[i].ID) < g.tracker.AccuracyOf(eligible[j].ID)
	})

	if len(eligible) > count {
		eligible = eligible[:count]
	}

	ids := make([]content.ItemID, len(eligible))
	for i, it := range eligible {
		ids[i] = it.ID
	}
	return ids
}
