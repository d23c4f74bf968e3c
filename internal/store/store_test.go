package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	// Shared-cache memory DBs persist between tests in the same process;
	// start each test from empty tables.
	if _, err := s.DB().Exec("DELETE FROM learner_state; DELETE FROM answer_events;"); err != nil {
		t.Fatalf("clear tables: %v", err)
	}
	return s
}

func TestStateRepo_LoadEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()

	snap, err := repo.LoadMastery(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot on empty store, got %+v", snap)
	}
}

func TestStateRepo_SaveLoadClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	snap := &MasterySnapshot{
		Version: 1,
		Records: map[string]*MasteryRecordData{
			"v-1": {
				TimesAnswered:  3,
				CorrectCount:   2,
				IncorrectCount: 1,
				AvgResponseMs:  1500,
				LastAnsweredAt: "2026-08-29T10:00:00Z",
				LastSelected:   1,
				LastCorrect:    true,
			},
		},
	}
	if err := repo.SaveMastery(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.LoadMastery(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected snapshot after save")
	}
	rec := loaded.Records["v-1"]
	if rec == nil {
		t.Fatal("record v-1 missing")
	}
	if rec.TimesAnswered != 3 || rec.CorrectCount != 2 || !rec.LastCorrect {
		t.Errorf("round-tripped record = %+v", rec)
	}

	// Save again overwrites rather than duplicating.
	snap.Records["v-1"].TimesAnswered = 4
	snap.Records["v-1"].CorrectCount = 3
	if err := repo.SaveMastery(ctx, snap); err != nil {
		t.Fatalf("second save: %v", err)
	}
	loaded, err = repo.LoadMastery(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Records["v-1"].TimesAnswered != 4 {
		t.Errorf("update not applied: %+v", loaded.Records["v-1"])
	}

	if err := repo.ClearMastery(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	loaded, err = repo.LoadMastery(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if loaded != nil {
		t.Error("snapshot survived clear")
	}
}

func TestEventRepo_RecentSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{SessionID: "run-a", ItemID: "v-1", ItemKind: "vocab", Selected: 0, Correct: true, ResponseMs: 900},
		{SessionID: "run-a", ItemID: "g-1", ItemKind: "grammar", Selected: 2, Correct: false, ResponseMs: 1400},
		{SessionID: "run-b", ItemID: "c-1", ItemKind: "comprehension", Selected: 1, Correct: true, ResponseMs: 3000},
	}
	for _, ev := range events {
		if err := repo.AppendAnswer(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	sessions, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}

	byID := make(map[string]SessionActivity)
	for _, sa := range sessions {
		byID[sa.SessionID] = sa
		if sa.StartedAt.IsZero() {
			t.Errorf("session %s has zero start time", sa.SessionID)
		}
	}
	if a := byID["run-a"]; a.Answered != 2 || a.Correct != 1 {
		t.Errorf("run-a = %d answered, %d correct; want 2, 1", a.Answered, a.Correct)
	}
	if b := byID["run-b"]; b.Answered != 1 || b.Correct != 1 {
		t.Errorf("run-b = %d answered, %d correct; want 1, 1", b.Answered, b.Correct)
	}
}

func TestEventRepo_RecentSessionsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2", "run-3"} {
		ev := AnswerEventData{SessionID: id, ItemID: "v-1", ItemKind: "vocab", Correct: true}
		if err := repo.AppendAnswer(ctx, ev); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	sessions, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("limit ignored: got %d sessions", len(sessions))
	}
}
