// Package entry implements the list entry widget: a named, collapsible item
// with a counter and a handful of key/value rows that can each take the inner
// focus.
package entry

import (
	"fmt"
	"slices"
)

// Row is a single key/value line shown beneath an expanded entry.
type Row struct {
	Key   string `yaml:"key"`
	Value int    `yaml:"value"`
}

// Widget is the capability set the list core relies on. Entry is the only
// implementation; the core never inspects it beyond these methods.
type Widget interface {
	Name() string
	Kick(rng Rand) Widget
	Apply(action Action, point Point) Widget
	MoveFocus(point Point, dir Direction) Point
	Render(in ViewInput) Fragment
	Equal(other Widget) bool
}

var _ Widget = Entry{}

// Entry is the state of one list item. Values are treated as immutable: every
// operation returns a modified copy.
type Entry struct {
	Label     string `yaml:"name"`
	Collapsed bool   `yaml:"collapsed"`
	Counter   int    `yaml:"counter"`
	Rows      []Row  `yaml:"rows,omitempty"`
}

// New returns an expanded entry with the given name and rows.
func New(name string, rows ...Row) Entry {
	return Entry{Label: name, Rows: slices.Clone(rows)}
}

// Name reports the entry name used for filtering and display.
func (e Entry) Name() string {
	return e.Label
}

// Equal reports whether other is an Entry holding the same values.
func (e Entry) Equal(other Widget) bool {
	o, ok := other.(Entry)
	if !ok {
		return false
	}
	return e.Label == o.Label &&
		e.Collapsed == o.Collapsed &&
		e.Counter == o.Counter &&
		slices.Equal(e.Rows, o.Rows)
}

func (e Entry) clone() Entry {
	e.Rows = slices.Clone(e.Rows)
	return e
}

var exampleNames = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
	"hotel", "india", "juliett", "kilo", "lima", "mike", "november",
	"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
	"victor", "whiskey", "xray", "yankee", "zulu",
}

var exampleRows = []string{"cpu", "mem", "disk"}

// Example builds the n-th bootstrap entry. Names cycle through a fixed word
// list so filtering by prefix has something to bite on.
func Example(n int) Entry {
	if n < 0 {
		n = -n
	}
	word := exampleNames[n%len(exampleNames)]
	rows := make([]Row, len(exampleRows))
	for i, key := range exampleRows {
		rows[i] = Row{Key: key, Value: (n + i) % 10}
	}
	return New(fmt.Sprintf("%s-%d", word, n), rows...)
}
