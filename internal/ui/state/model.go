package state

import "github.com/atomicstack/focuslist/internal/entry"

// Focus names the outer-focused entry and the optional inner point within it.
type Focus struct {
	Outer ID          `yaml:"outer"`
	Inner entry.Point `yaml:"inner"`
}

// Model is the immutable application state. The zero value is an empty list
// with nothing focused.
type Model struct {
	entries Entries
	focus   *Focus
	search  string
	match   MatchMode
}

// NewModel returns a model over entries with no focus and an empty search.
func NewModel(entries Entries, match MatchMode) Model {
	return Model{entries: entries, match: match}
}

// Example bootstraps count sample entries with sequential IDs and focuses the
// first one.
func Example(count int, match MatchMode) Model {
	widgets := make([]entry.Widget, 0, max(count, 0))
	for i := 0; i < count; i++ {
		widgets = append(widgets, entry.Example(i))
	}
	m := NewModel(NewEntries(widgets...), match)
	if first, ok := m.entries.Min(); ok {
		m.focus = &Focus{Outer: first}
	}
	return m
}

// Entries returns the full, unfiltered entry map.
func (m Model) Entries() Entries {
	return m.entries
}

// Focus returns the current focus, if any.
func (m Model) Focus() (Focus, bool) {
	if m.focus == nil {
		return Focus{}, false
	}
	return *m.focus, true
}

// FocusRef returns a copy of the current focus, or nil.
func (m Model) FocusRef() *Focus {
	if m.focus == nil {
		return nil
	}
	f := *m.focus
	return &f
}

// Search returns the filter string.
func (m Model) Search() string {
	return m.search
}

// Match returns the filter matching mode.
func (m Model) Match() MatchMode {
	return m.match
}

// WithFocus returns the model focused on f.
func (m Model) WithFocus(f Focus) Model {
	m.focus = &f
	return m
}

// WithoutFocus returns the model with nothing focused.
func (m Model) WithoutFocus() Model {
	m.focus = nil
	return m
}

// WithSearch returns the model filtered by search.
func (m Model) WithSearch(search string) Model {
	m.search = search
	return m
}

// StatusOf derives the focus status rendered for id.
func (m Model) StatusOf(id ID) entry.Status {
	if m.focus == nil || m.focus.Outer != id {
		return entry.Status{}
	}
	return entry.Status{Focused: true, Point: m.focus.Inner}
}
