package content

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed bank.json
var embeddedBank []byte

// Repository holds the immutable catalog of passages and practice items.
// Built once by Load; read-only afterwards.
type Repository struct {
	items    []Item
	passages []Passage
	itemByID map[ItemID]*Item
	passByID map[PassageID]*Passage
}

// Load builds a repository from the first bank that parses cleanly:
// the file at path (if non-empty), then the embedded bank, then the
// built-in minimal set. A bad bank degrades to the next source with a
// stderr warning; Load itself never fails.
func Load(path string) *Repository {
	if path != "" {
		if data, err := os.ReadFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: read content bank %s: %v, using bundled bank\n", path, err)
		} else if repo, err := build(data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: load content bank %s: %v, using bundled bank\n", path, err)
		} else {
			return repo
		}
	}

	repo, err := build(embeddedBank)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load bundled bank: %v, using built-in items\n", err)
		return builtinRepository()
	}
	return repo
}

// build parses a bank and runs the linkage pass.
func build(data []byte) (*Repository, error) {
	passages, items, err := parseBank(data)
	if err != nil {
		return nil, err
	}
	return NewRepository(passages, items), nil
}

// NewRepository indexes the catalog and denormalizes each passage's
// reverse-reference list in a single pass over the items.
func NewRepository(passages []Passage, items []Item) *Repository {
	r := &Repository{
		items:    items,
		passages: passages,
		itemByID: make(map[ItemID]*Item, len(items)),
		passByID: make(map[PassageID]*Passage, len(passages)),
	}
	for i := range r.passages {
		r.passByID[r.passages[i].ID] = &r.passages[i]
	}
	for i := range r.items {
		it := &r.items[i]
		r.itemByID[it.ID] = it
		if it.PassageID != "" {
			if p, ok := r.passByID[it.PassageID]; ok {
				p.ItemIDs = append(p.ItemIDs, it.ID)
			}
		}
	}
	return r
}

// Item returns the item with the given id.
func (r *Repository) Item(id ItemID) (Item, bool) {
	it, ok := r.itemByID[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Passage returns the passage with the given id.
func (r *Repository) Passage(id PassageID) (Passage, bool) {
	p, ok := r.passByID[id]
	if !ok {
		return Passage{}, false
	}
	return *p, true
}

// PassageFor returns the passage an item references, if any.
func (r *Repository) PassageFor(it Item) (Passage, bool) {
	if it.PassageID == "" {
		return Passage{}, false
	}
	return r.Passage(it.PassageID)
}

// Items returns all items in catalog order. The returned slice is shared;
// callers must not mutate it.
func (r *Repository) Items() []Item {
	return r.items
}

// Passages returns all passages in catalog order.
func (r *Repository) Passages() []Passage {
	return r.passages
}

// Len returns the number of items in the catalog.
func (r *Repository) Len() int {
	return len(r.items)
}
