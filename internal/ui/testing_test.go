package ui

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/focuslist/internal/logging"
	"github.com/atomicstack/focuslist/internal/theme"
	"github.com/atomicstack/focuslist/internal/ui/state"
)

type fixedRand struct{}

func (fixedRand) Intn(int) int     { return 0 }
func (fixedRand) Float64() float64 { return 0.99 }

func newTestModel(count, width, height int) *Model {
	return NewModel(state.Example(count, state.MatchPrefix), fixedRand{}, Options{
		Width:  width,
		Height: height,
		Styles: theme.Plain(),
	})
}

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ui.log")
	logging.Configure(path)
	t.Cleanup(func() { logging.Configure("") })
	return path
}

func focusOf(t *testing.T, m *Model) state.Focus {
	t.Helper()
	f, ok := m.State().Focus()
	if !ok {
		t.Fatalf("expected focus to be set")
	}
	return f
}
