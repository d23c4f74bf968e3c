package content

// ItemID identifies a single practice item in the catalog.
type ItemID string

// PassageID identifies a reading passage in the catalog.
type PassageID string

// Kind classifies a practice item.
type Kind string

const (
	KindVocab         Kind = "vocab"         // Vocabulary drill item
	KindGrammar       Kind = "grammar"       // Sentence-completion grammar item
	KindComprehension Kind = "comprehension" // Passage-linked reading item
)

// KindAny is the pass-through kind filter.
const KindAny Kind = "any"

// AllKinds returns the item kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindVocab, KindGrammar, KindComprehension}
}

// DisplayName returns a human-readable name for a kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindVocab:
		return "Vocabulary"
	case KindGrammar:
		return "Grammar"
	case KindComprehension:
		return "Reading Comprehension"
	case KindAny:
		return "Mixed Drill"
	default:
		return string(k)
	}
}

// Difficulty tags an item or passage.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyAny is the pass-through difficulty filter.
const DifficultyAny Difficulty = "any"

// Item is a single answerable practice question. Items are immutable once
// the repository has loaded them.
type Item struct {
	ID          ItemID
	Kind        Kind
	Prompt      string
	Options     []string
	Answer      int       // Index into Options of the correct choice
	PassageID   PassageID // Empty unless Kind is comprehension
	Explanation string
	Difficulty  Difficulty
}

// Passage is a block of reading material referenced by comprehension items.
type Passage struct {
	ID         PassageID
	Title      string
	Body       string
	WordCount  int
	Difficulty Difficulty
	Category   string
	ItemIDs    []ItemID // Derived during load; items that reference this passage
}
