package state

import (
	"fmt"
	"strings"

	"github.com/atomicstack/focuslist/internal/entry"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchMode selects how the search string is compared against entry names.
type MatchMode int

const (
	// MatchPrefix keeps entries whose name starts with the search string,
	// ignoring case.
	MatchPrefix MatchMode = iota
	// MatchFuzzy keeps entries whose name contains the search characters in
	// order, ignoring case and diacritics.
	MatchFuzzy
)

func (m MatchMode) String() string {
	if m == MatchFuzzy {
		return "fuzzy"
	}
	return "prefix"
}

// MarshalYAML renders the mode by name in state dumps.
func (m MatchMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// ParseMatchMode converts a configuration value into a MatchMode.
func ParseMatchMode(value string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "prefix":
		return MatchPrefix, nil
	case "fuzzy":
		return MatchFuzzy, nil
	}
	return MatchPrefix, fmt.Errorf("unknown match mode %q (want prefix or fuzzy)", value)
}

// Matches reports whether name passes the search filter.
func Matches(mode MatchMode, name, search string) bool {
	if search == "" {
		return true
	}
	if mode == MatchFuzzy {
		return fuzzy.MatchNormalizedFold(search, name)
	}
	return strings.HasPrefix(strings.ToLower(name), strings.ToLower(search))
}

// FilteredEntries returns the entries visible under the model's search
// string. Outer focus navigation moves over this set.
func FilteredEntries(m Model) Entries {
	if m.search == "" {
		return m.entries
	}
	return m.entries.Filter(func(_ ID, w entry.Widget) bool {
		return Matches(m.match, w.Name(), m.search)
	})
}
