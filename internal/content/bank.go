package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// bankFile is the on-disk shape of a content bank.
type bankFile struct {
	Passages []bankPassage `json:"passages"`
	Items    []bankItem    `json:"items"`
}

type bankPassage struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

type bankItem struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	PassageID   string   `json:"passage_id,omitempty"`
	Explanation string   `json:"explanation"`
	Difficulty  string   `json:"difficulty"`
}

// parseBank decodes and validates a bank file, returning its passages and
// items in catalog order. A bank that fails any structural check is rejected
// wholesale; the caller falls back rather than loading a partial catalog.
func parseBank(data []byte) ([]Passage, []Item, error) {
	var bf bankFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, nil, fmt.Errorf("decode bank: %w", err)
	}
	if len(bf.Items) == 0 {
		return nil, nil, fmt.Errorf("bank contains no items")
	}

	passages := make([]Passage, 0, len(bf.Passages))
	passageIDs := make(map[PassageID]bool, len(bf.Passages))
	for _, bp := range bf.Passages {
		p := Passage{
			ID:         PassageID(bp.ID),
			Title:      bp.Title,
			Body:       bp.Body,
			WordCount:  len(strings.Fields(bp.Body)),
			Difficulty: Difficulty(bp.Difficulty),
			Category:   bp.Category,
		}
		if err := validatePassage(p); err != nil {
			return nil, nil, err
		}
		if passageIDs[p.ID] {
			return nil, nil, fmt.Errorf("duplicate passage id %q", p.ID)
		}
		passageIDs[p.ID] = true
		passages = append(passages, p)
	}

	items := make([]Item, 0, len(bf.Items))
	itemIDs := make(map[ItemID]bool, len(bf.Items))
	for _, bi := range bf.Items {
		it := Item{
			ID:          ItemID(bi.ID),
			Kind:        Kind(bi.Kind),
			Prompt:      bi.Prompt,
			Options:     bi.Options,
			Answer:      bi.Answer,
			PassageID:   PassageID(bi.PassageID),
			Explanation: bi.Explanation,
			Difficulty:  Difficulty(bi.Difficulty),
		}
		if err := validateItem(it, passageIDs); err != nil {
			return nil, nil, err
		}
		if itemIDs[it.ID] {
			return nil, nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		itemIDs[it.ID] = true
		items = append(items, it)
	}

	return passages, items, nil
}

func validatePassage(p Passage) error {
	if p.ID == "" {
		return fmt.Errorf("passage with empty id")
	}
	if strings.TrimSpace(p.Body) == "" {
		return fmt.Errorf("passage %q has empty body", p.ID)
	}
	if !validDifficulty(p.Difficulty) {
		return fmt.Errorf("passage %q has unknown difficulty %q", p.ID, p.Difficulty)
	}
	return nil
}

func validateItem(it Item, passages map[PassageID]bool) error {
	if it.ID == "" {
		return fmt.Errorf("item with empty id")
	}
	switch it.Kind {
	case KindVocab, KindGrammar, KindComprehension:
	default:
		return fmt.Errorf("item %q has unknown kind %q", it.ID, it.Kind)
	}
	if len(it.Options) < 2 {
		return fmt.Errorf("item %q has %d options, need at least 2", it.ID, len(it.Options))
	}
	if it.Answer < 0 || it.Answer >= len(it.Options) {
		return fmt.Errorf("item %q answer index %d out of range [0,%d)", it.ID, it.Answer, len(it.Options))
	}
	if !validDifficulty(it.Difficulty) {
		return fmt.Errorf("item %q has unknown difficulty %q", it.ID, it.Difficulty)
	}
	if it.Kind == KindComprehension {
		if it.PassageID == "" {
			return fmt.Errorf("comprehension item %q has no passage reference", it.ID)
		}
		if !passages[it.PassageID] {
			return fmt.Errorf("item %q references unknown passage %q", it.ID, it.PassageID)
		}
	} else if it.PassageID != "" {
		return fmt.Errorf("%s item %q must not reference a passage", it.Kind, it.ID)
	}
	return nil
}

func validDifficulty(d Difficulty) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}
