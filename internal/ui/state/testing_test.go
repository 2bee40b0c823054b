package state

import (
	"testing"

	"github.com/atomicstack/focuslist/internal/entry"
)

// seqRand replays fixed draws. Intn results are reduced modulo n and the
// number of calls is recorded.
type seqRand struct {
	ints   []int
	floats []float64
	calls  int
}

func (r *seqRand) Intn(n int) int {
	r.calls++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *seqRand) Float64() float64 {
	r.calls++
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func named(names ...string) Model {
	widgets := make([]entry.Widget, len(names))
	for i, name := range names {
		widgets[i] = entry.New(name, entry.Row{Key: "a", Value: 1}, entry.Row{Key: "b", Value: 2})
	}
	return NewModel(NewEntries(widgets...), MatchPrefix)
}

func mustApply(t *testing.T, m Model, actions ...Action) Model {
	t.Helper()
	var err error
	for _, a := range actions {
		m, err = Apply(Env{}, a, m)
		if err != nil {
			t.Fatalf("unexpected error applying %s: %v", Describe(a), err)
		}
	}
	return m
}

func counterOf(m Model, id ID) int {
	w, ok := m.Entries().Get(id)
	if !ok {
		return 0
	}
	return w.(entry.Entry).Counter
}
