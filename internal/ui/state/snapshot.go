package state

import "github.com/atomicstack/focuslist/internal/entry"

// Snapshot is a plain copy of a Model suitable for serialization and
// structural comparison.
type Snapshot struct {
	Focus   *Focus          `yaml:"focus"`
	Search  string          `yaml:"search"`
	Match   MatchMode       `yaml:"match"`
	Entries []EntrySnapshot `yaml:"entries"`
}

// EntrySnapshot pairs an ID with its entry.
type EntrySnapshot struct {
	ID    ID           `yaml:"id"`
	Entry entry.Widget `yaml:"entry"`
}

// Snapshot copies the model.
func (m Model) Snapshot() Snapshot {
	s := Snapshot{
		Focus:   m.FocusRef(),
		Search:  m.search,
		Match:   m.match,
		Entries: make([]EntrySnapshot, 0, m.entries.Len()),
	}
	m.entries.Each(func(id ID, w entry.Widget) bool {
		s.Entries = append(s.Entries, EntrySnapshot{ID: id, Entry: w})
		return true
	})
	return s
}
