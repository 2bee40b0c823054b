package ui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var errNothingFocused = errors.New("nothing focused")

// copyFocusedName puts the name of the outer-focused entry on the system
// clipboard and reports the outcome on the info line.
func (m *Model) copyFocusedName() {
	name, err := m.focusedName()
	if err == nil {
		err = m.copyText(name)
	}
	if err != nil {
		m.setInfo(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	m.setInfo(fmt.Sprintf("Copied %s", name))
}

func (m *Model) focusedName() (string, error) {
	current := m.State()
	focus, ok := current.Focus()
	if !ok {
		return "", errNothingFocused
	}
	w, ok := current.Entries().Get(focus.Outer)
	if !ok {
		return "", errNothingFocused
	}
	return w.Name(), nil
}

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}
