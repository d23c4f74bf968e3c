package session

import (
	"testing"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/mastery"
)

// testCatalog builds a repository with two items per kind, easy and hard.
func testCatalog() *content.Repository {
	passages := []content.Passage{
		{ID: "p-1", Title: "Memo", Body: "Please file reports by Friday.", Difficulty: content.DifficultyEasy},
	}
	mk := func(id string, kind content.Kind, diff content.Difficulty, passage content.PassageID) content.Item {
		return content.Item{
			ID:         content.ItemID(id),
			Kind:       kind,
			Prompt:     "prompt " + id,
			Options:    []string{"a", "b", "c"},
			Answer:     0,
			PassageID:  passage,
			Difficulty: diff,
		}
	}
	items := []content.Item{
		mk("v-1", content.KindVocab, content.DifficultyEasy, ""),
		mk("v-2", content.KindVocab, content.DifficultyHard, ""),
		mk("g-1", content.KindGrammar, content.DifficultyEasy, ""),
		mk("g-2", content.KindGrammar, content.DifficultyHard, ""),
		mk("c-1", content.KindComprehension, content.DifficultyEasy, "p-1"),
		mk("c-2", content.KindComprehension, content.DifficultyHard, "p-1"),
	}
	return content.NewRepository(passages, items)
}

func answerTimes(tr *mastery.Tracker, repo *content.Repository, id content.ItemID, correct, wrong int) {
	item, ok := repo.Item(id)
	if !ok {
		panic("unknown test item " + id)
	}
	for i := 0; i < correct; i++ {
		tr.RecordAnswer(item, item.Answer, 1000)
	}
	for i := 0; i < wrong; i++ {
		tr.RecordAnswer(item, item.Answer+1, 1000)
	}
}

func TestGenerator_FiltersByKindAndDifficulty(t *testing.T) {
	repo := testCatalog()
	gen := NewGenerator(repo, mastery.NewTracker(nil, nil))

	ids := gen.Generate(content.KindVocab, content.DifficultyAny, 10)
	if len(ids) != 2 {
		t.Fatalf("vocab/any: got %d items, want 2", len(ids))
	}
	for _, id := range ids {
		it, _ := repo.Item(id)
		if it.Kind != content.KindVocab {
			t.Errorf("item %s has kind %s", id, it.Kind)
		}
	}

	ids = gen.Generate(content.KindAny, content.DifficultyHard, 10)
	if len(ids) != 3 {
		t.Fatalf("any/hard: got %d items, want 3", len(ids))
	}

	ids = gen.Generate(content.KindGrammar, content.DifficultyHard, 10)
	if len(ids) != 1 || ids[0] != "g-2" {
		t.Fatalf("grammar/hard: got %v, want [g-2]", ids)
	}
}

func TestGenerator_WeakestFirst(t *testing.T) {
	repo := testCatalog()
	tr := mastery.NewTracker(nil, nil)

	// v-1 is strong (100%), v-2 is weak (0%); both vocab.
	answerTimes(tr, repo, "v-1", 3, 0)
	answerTimes(tr, repo, "v-2", 0, 3)

	gen := NewGenerator(repo, tr)
	ids := gen.Generate(content.KindVocab, content.DifficultyAny, 10)
	if len(ids) != 2 {
		t.Fatalf("got %d items, want 2", len(ids))
	}
	if ids[0] != "v-2" || ids[1] != "v-1" {
		t.Errorf("order = %v, want weakest first [v-2 v-1]", ids)
	}
}

func TestGenerator_UnseenItemsKeepCatalogOrder(t *testing.T) {
	repo := testCatalog()
	gen := NewGenerator(repo, mastery.NewTracker(nil, nil))

	// All items sit at neutral accuracy, so the stable sort must keep
	// catalog order.
	ids := gen.Generate(content.KindAny, content.DifficultyAny, 10)
	want := []content.ItemID{"v-1", "v-2", "g-1", "g-2", "c-1", "c-2"}
	if len(ids) != len(want) {
		t.Fatalf("got %d items, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("order = %v, want %v", ids, want)
		}
	}
}

func TestGenerator_CountBounds(t *testing.T) {
	repo := testCatalog()
	gen := NewGenerator(repo, mastery.NewTracker(nil, nil))

	if ids := gen.Generate(content.KindAny, content.DifficultyAny, 4); len(ids) != 4 {
		t.Errorf("count 4: got %d items", len(ids))
	}
	if ids := gen.Generate(content.KindAny, content.DifficultyAny, 0); len(ids) != 0 {
		t.Errorf("count 0: got %d items, want 0", len(ids))
	}
	if ids := gen.Generate(content.KindVocab, content.DifficultyMedium, 10); len(ids) != 0 {
		t.Errorf("no eligible items: got %d, want 0", len(ids))
	}
}

func TestGenerator_NoDuplicates(t *testing.T) {
	repo := testCatalog()
	gen := NewGenerator(repo, mastery.NewTracker(nil, nil))

	ids := gen.Generate(content.KindAny, content.DifficultyAny, 10)
	seen := make(map[content.ItemID]bool)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("item %s appears twice", id)
		}
		seen[id] = true
	}
}
