package state

import (
	"github.com/atomicstack/focuslist/internal/entry"
	"github.com/google/btree"
)

const treeDegree = 8

// ID identifies an entry. IDs order the list.
type ID int

type record struct {
	id     ID
	widget entry.Widget
}

func (r record) Less(than btree.Item) bool {
	return r.id < than.(record).id
}

// Entries is an ordered, persistent map from ID to entry. Mutating methods
// return a new map; the receiver stays valid and unchanged because the
// underlying B-tree is cloned copy-on-write.
type Entries struct {
	tree *btree.BTree
}

// NewEntries builds a map holding the given entries keyed by their position.
func NewEntries(widgets ...entry.Widget) Entries {
	tree := btree.New(treeDegree)
	for i, w := range widgets {
		tree.ReplaceOrInsert(record{id: ID(i), widget: w})
	}
	return Entries{tree: tree}
}

// Len returns the number of entries.
func (e Entries) Len() int {
	if e.tree == nil {
		return 0
	}
	return e.tree.Len()
}

// Get looks up id.
func (e Entries) Get(id ID) (entry.Widget, bool) {
	if e.tree == nil {
		return nil, false
	}
	item := e.tree.Get(record{id: id})
	if item == nil {
		return nil, false
	}
	return item.(record).widget, true
}

// Set returns a map with id bound to w.
func (e Entries) Set(id ID, w entry.Widget) Entries {
	tree := e.cloneTree()
	tree.ReplaceOrInsert(record{id: id, widget: w})
	return Entries{tree: tree}
}

// Each visits entries in ascending ID order until fn returns false.
func (e Entries) Each(fn func(ID, entry.Widget) bool) {
	if e.tree == nil {
		return
	}
	e.tree.Ascend(func(item btree.Item) bool {
		r := item.(record)
		return fn(r.id, r.widget)
	})
}

// IDs returns all keys in ascending order.
func (e Entries) IDs() []ID {
	ids := make([]ID, 0, e.Len())
	e.Each(func(id ID, _ entry.Widget) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// Nth resolves a position in key order to its ID.
func (e Entries) Nth(pos int) (ID, bool) {
	if pos < 0 || pos >= e.Len() {
		return 0, false
	}
	var found ID
	i := 0
	e.Each(func(id ID, _ entry.Widget) bool {
		if i == pos {
			found = id
			return false
		}
		i++
		return true
	})
	return found, true
}

// Min returns the smallest key.
func (e Entries) Min() (ID, bool) {
	if e.Len() == 0 {
		return 0, false
	}
	return e.tree.Min().(record).id, true
}

// Filter returns the entries for which keep reports true.
func (e Entries) Filter(keep func(ID, entry.Widget) bool) Entries {
	tree := btree.New(treeDegree)
	e.Each(func(id ID, w entry.Widget) bool {
		if keep(id, w) {
			tree.ReplaceOrInsert(record{id: id, widget: w})
		}
		return true
	})
	return Entries{tree: tree}
}

// Update returns a map where every entry is replaced by fn's result.
func (e Entries) Update(fn func(ID, entry.Widget) entry.Widget) Entries {
	if e.Len() == 0 {
		return e
	}
	updated := make([]record, 0, e.Len())
	e.Each(func(id ID, w entry.Widget) bool {
		updated = append(updated, record{id: id, widget: fn(id, w)})
		return true
	})
	tree := e.cloneTree()
	for _, r := range updated {
		tree.ReplaceOrInsert(r)
	}
	return Entries{tree: tree}
}

func (e Entries) cloneTree() *btree.BTree {
	if e.tree == nil {
		return btree.New(treeDegree)
	}
	return e.tree.Clone()
}
