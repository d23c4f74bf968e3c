package content

// builtinRepository returns the minimal built-in catalog used when no bank
// can be loaded. It keeps the engine answerable rather than failing.
func builtinRepository() *Repository {
	passages := []Passage{
		{
			ID:    "p-builtin-memo",
			Title: "Office Relocation Notice",
			Body: "All staff are advised that the accounting department will move to " +
				"the fourth floor on Monday. Telephone extensions will remain the same, " +
				"but the mail room will hold deliveries until Wednesday. Please direct " +
				"any questions to the facilities team.",
			WordCount:  39,
			Difficulty: DifficultyEasy,
			Category:   "notice",
		},
	}
	items := []Item{
		{
			ID:          "b-vocab-1",
			Kind:        KindVocab,
			Prompt:      "The meeting was ------- until next Thursday.",
			Options:     []string{"postponed", "happened", "arrived", "prevented"},
			Answer:      0,
			Explanation: "\"Postponed\" means moved to a later time, which fits a rescheduled meeting.",
			Difficulty:  DifficultyEasy,
		},
		{
			ID:          "b-grammar-1",
			Kind:        KindGrammar,
			Prompt:      "Ms. Okada ------- the quarterly report before the deadline.",
			Options:     []string{"submit", "submitted", "submitting", "to submit"},
			Answer:      1,
			Explanation: "A finished past action takes the simple past form \"submitted\".",
			Difficulty:  DifficultyEasy,
		},
		{
			ID:          "b-comp-1",
			Kind:        KindComprehension,
			Prompt:      "When will the accounting department move?",
			Options:     []string{"On Monday", "On Wednesday", "On Thursday", "Next month"},
			Answer:      0,
			PassageID:   "p-builtin-memo",
			Explanation: "The notice states the move happens on Monday; Wednesday concerns held mail.",
			Difficulty:  DifficultyEasy,
		},
	}
	return NewRepository(passages, items)
}
