package mastery

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/store"
)

// mockStateRepo records calls in memory for save/load assertions.
type mockStateRepo struct {
	snap      *store.MasterySnapshot
	saveCount int
	saveErr   error
	cleared   bool
}

func (m *mockStateRepo) LoadMastery(ctx context.Context) (*store.MasterySnapshot, error) {
	return m.snap, nil
}

func (m *mockStateRepo) SaveMastery(ctx context.Context, snap *store.MasterySnapshot) error {
	m.saveCount++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snap = snap
	return nil
}

func (m *mockStateRepo) ClearMastery(ctx context.Context) error {
	m.snap = nil
	m.cleared = true
	return nil
}

func testItem(id string, answer int) content.Item {
	return content.Item{
		ID:      content.ItemID(id),
		Kind:    content.KindVocab,
		Prompt:  "prompt",
		Options: []string{"a", "b", "c", "d"},
		Answer:  answer,
	}
}

func TestTracker_RecordAnswer(t *testing.T) {
	tr := NewTracker(nil, nil)
	item := testItem("v-1", 2)

	if !tr.RecordAnswer(item, 2, 1200) {
		t.Fatal("correct answer reported as wrong")
	}
	if tr.RecordAnswer(item, 0, 800) {
		t.Fatal("wrong answer reported as correct")
	}

	rec, ok := tr.Record("v-1")
	if !ok {
		t.Fatal("record not created")
	}
	if rec.TimesAnswered != 2 || rec.CorrectCount != 1 || rec.IncorrectCount != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1",
			rec.TimesAnswered, rec.CorrectCount, rec.IncorrectCount)
	}
	if rec.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", rec.Accuracy())
	}
	if rec.LastSelected != 0 || rec.LastCorrect {
		t.Errorf("last attempt = (%d, %v), want (0, false)", rec.LastSelected, rec.LastCorrect)
	}
	if rec.LastAnsweredAt.IsZero() {
		t.Error("LastAnsweredAt not set")
	}
}

func TestTracker_AverageResponseTime(t *testing.T) {
	tr := NewTracker(nil, nil)
	item := testItem("v-1", 0)

	samples := []int{1000, 2000, 6000}
	for _, ms := range samples {
		tr.RecordAnswer(item, 0, ms)
	}

	rec, _ := tr.Record("v-1")
	if math.Abs(rec.AvgResponseMs-3000) > 1e-9 {
		t.Errorf("AvgResponseMs = %v, want 3000", rec.AvgResponseMs)
	}
}

func TestTracker_NeutralAccuracyForUnseen(t *testing.T) {
	tr := NewTracker(nil, nil)
	if got := tr.AccuracyOf("never-seen"); got != NeutralAccuracy {
		t.Errorf("AccuracyOf(unseen) = %v, want %v", got, NeutralAccuracy)
	}
	if _, ok := tr.Record("never-seen"); ok {
		t.Error("Record(unseen) reported found")
	}
}

func TestTracker_SnapshotRoundTrip(t *testing.T) {
	repo := &mockStateRepo{}
	tr := NewTracker(nil, repo)

	tr.RecordAnswer(testItem("v-1", 1), 1, 900)
	tr.RecordAnswer(testItem("v-1", 1), 0, 1100)
	tr.RecordAnswer(testItem("g-1", 0), 0, 2000)

	if repo.saveCount != 3 {
		t.Fatalf("saveCount = %d, want one save per answer", repo.saveCount)
	}

	restored := NewTracker(repo.snap, nil)
	rec, ok := restored.Record("v-1")
	if !ok {
		t.Fatal("v-1 missing after round trip")
	}
	if rec.TimesAnswered != 2 || rec.CorrectCount != 1 {
		t.Errorf("restored counts = %d/%d, want 2/1", rec.TimesAnswered, rec.CorrectCount)
	}
	if rec.LastAnsweredAt.IsZero() {
		t.Error("restored LastAnsweredAt is zero")
	}
	if got := restored.AccuracyOf("g-1"); got != 1.0 {
		t.Errorf("restored accuracy for g-1 = %v, want 1.0", got)
	}
}

func TestTracker_SkipsCorruptSnapshotRecords(t *testing.T) {
	snap := &store.MasterySnapshot{
		Version: 1,
		Records: map[string]*store.MasteryRecordData{
			"good": {TimesAnswered: 2, CorrectCount: 1, IncorrectCount: 1},
			"bad":  {TimesAnswered: 5, CorrectCount: 1, IncorrectCount: 1},
		},
	}

	tr := NewTracker(snap, nil)
	if _, ok := tr.Record("good"); !ok {
		t.Error("consistent record dropped")
	}
	if _, ok := tr.Record("bad"); ok {
		t.Error("inconsistent record restored")
	}
}

func TestTracker_SaveFailureKeepsMemoryState(t *testing.T) {
	repo := &mockStateRepo{saveErr: errors.New("disk full")}
	tr := NewTracker(nil, repo)

	tr.RecordAnswer(testItem("v-1", 0), 0, 500)

	// The in-memory record must survive the failed save.
	if _, ok := tr.Record("v-1"); !ok {
		t.Fatal("record lost after failed save")
	}
}

func TestTracker_Reset(t *testing.T) {
	repo := &mockStateRepo{}
	tr := NewTracker(nil, repo)
	tr.RecordAnswer(testItem("v-1", 0), 0, 500)

	tr.Reset()

	if tr.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount after reset = %d, want 0", tr.AnsweredCount())
	}
	if !repo.cleared {
		t.Error("persisted state not cleared")
	}

	correct, incorrect := tr.Totals()
	if correct != 0 || incorrect != 0 {
		t.Errorf("Totals after reset = %d, %d; want 0, 0", correct, incorrect)
	}
}
