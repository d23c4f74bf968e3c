package mastery

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/store"
)

// Tracker owns the per-item mastery records. It is the only component
// permitted to mutate them; everything else reads through its accessors.
type Tracker struct {
	records   map[content.ItemID]*Record
	stateRepo store.StateRepo // nil means in-memory only
}

// NewTracker creates a tracker seeded from a snapshot. A nil snapshot
// starts empty; a nil stateRepo disables durability (the tracker keeps
// working in memory).
func NewTracker(snap *store.MasterySnapshot, stateRepo store.StateRepo) *Tracker {
	t := &Tracker{
		records:   make(map[content.ItemID]*Record),
		stateRepo: stateRepo,
	}
	t.loadSnapshot(snap)
	return t
}

// RecordAnswer applies one attempt at an item, lazily creating its record,
// and triggers a persistence write. The write is fire-and-forget: a failed
// save is logged and the in-memory state stands.
func (t *Tracker) RecordAnswer(item content.Item, selected int, responseTimeMs int) bool {
	correct := selected == item.Answer

	rec, ok := t.records[item.ID]
	if !ok {
		rec = &Record{ItemID: item.ID}
		t.records[item.ID] = rec
	}
	rec.record(selected, correct, responseTimeMs, time.Now())

	t.persist()
	return correct
}

// AccuracyOf returns the historical accuracy for an item, or
// NeutralAccuracy when it has never been answered.
func (t *Tracker) AccuracyOf(id content.ItemID) float64 {
	if rec, ok := t.records[id]; ok {
		return rec.Accuracy()
	}
	return NeutralAccuracy
}

// Record returns a copy of an item's record.
func (t *Tracker) Record(id content.ItemID) (Record, bool) {
	rec, ok := t.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// AnsweredCount returns the number of items with a record.
func (t *Tracker) AnsweredCount() int {
	return len(t.records)
}

// Totals returns the summed correct and incorrect counts across all records.
func (t *Tracker) Totals() (correct, incorrect int) {
	for _, rec := range t.records {
		correct += rec.CorrectCount
		incorrect += rec.IncorrectCount
	}
	return correct, incorrect
}

// Reset clears all records and persists the empty state.
func (t *Tracker) Reset() {
	t.records = make(map[content.ItemID]*Record)
	if t.stateRepo == nil {
		return
	}
	if err := t.stateRepo.ClearMastery(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: clear mastery state: %v\n", err)
	}
}

// persist writes the current snapshot through the state repo.
func (t *Tracker) persist() {
	if t.stateRepo == nil {
		return
	}
	if err := t.stateRepo.SaveMastery(context.Background(), t.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save mastery state: %v\n", err)
	}
}
