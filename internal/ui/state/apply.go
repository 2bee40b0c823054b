package state

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/atomicstack/focuslist/internal/entry"
)

// kickAllSkipChance is the probability that a KickAll does nothing. The draw
// is made once for the whole batch, not per entry.
const kickAllSkipChance = 0.6

var errRaised = errors.New("raised")

// Env supplies the effects Apply may use.
type Env struct {
	// Rand drives KickAll and KickN. A nil Rand uses the math/rand globals.
	Rand entry.Rand
	// Dump receives the model for DumpState. Nil discards it.
	Dump func(Snapshot)
}

type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

func (env Env) rng() entry.Rand {
	if env.Rand == nil {
		return globalRand{}
	}
	return env.Rand
}

// Apply computes the model that results from action. It returns a
// *FatalError for Raise and panics with a runtime.Error for RaiseRuntime;
// every other action succeeds, degrading to a no-op or dropping the focus
// when it refers to something that is not there.
func Apply(env Env, action Action, m Model) (Model, error) {
	switch a := action.(type) {
	case EntryAction:
		return applyEntryAction(a, m), nil
	case SetOuterFocus:
		return setOuterFocus(a.ID, m), nil
	case SetInnerFocus:
		if m.focus == nil {
			return m, nil
		}
		return m.WithFocus(Focus{Outer: m.focus.Outer, Inner: a.Point}), nil
	case MoveOuterFocus:
		return moveOuterFocus(a.Dir, m), nil
	case MoveInnerFocus:
		return moveInnerFocus(a.Dir, m), nil
	case SetSearchString:
		return m.WithSearch(a.Value), nil
	case KickAll:
		return kickAll(env.rng(), m), nil
	case KickN:
		for i := 0; i < a.N; i++ {
			m = kickOne(env.rng(), m)
		}
		return m, nil
	case Raise:
		err := a.Err
		if err == nil {
			err = errRaised
		}
		return m, &FatalError{Err: err}
	case RaiseRuntime:
		raiseRuntime()
		return m, nil
	case DumpState:
		if env.Dump != nil {
			env.Dump(m.Snapshot())
		}
		return m, nil
	case Nop:
		return m, nil
	}
	return m, nil
}

func applyEntryAction(a EntryAction, m Model) Model {
	if a.Focus == nil {
		return m
	}
	w, ok := m.entries.Get(a.Focus.Outer)
	if !ok {
		return m
	}
	m.entries = m.entries.Set(a.Focus.Outer, w.Apply(a.Action, a.Focus.Inner))
	return m
}

func setOuterFocus(id ID, m Model) Model {
	if m.focus == nil {
		return m.WithFocus(Focus{Outer: id})
	}
	return m.WithFocus(Focus{Outer: id, Inner: m.focus.Inner})
}

func moveOuterFocus(dir entry.Direction, m Model) Model {
	ids := FilteredEntries(m).IDs()
	if len(ids) == 0 {
		return m.WithoutFocus()
	}
	if m.focus == nil {
		if dir == entry.Next {
			return m.WithFocus(Focus{Outer: ids[0]})
		}
		return m.WithFocus(Focus{Outer: ids[len(ids)-1]})
	}
	idx := slices.Index(ids, m.focus.Outer)
	if idx < 0 {
		return m.WithoutFocus()
	}
	if dir == entry.Next {
		idx = (idx + 1) % len(ids)
	} else {
		idx = (idx - 1 + len(ids)) % len(ids)
	}
	return m.WithFocus(Focus{Outer: ids[idx], Inner: m.focus.Inner})
}

func moveInnerFocus(dir entry.Direction, m Model) Model {
	if m.focus == nil {
		return m
	}
	w, ok := m.entries.Get(m.focus.Outer)
	if !ok {
		return m.WithoutFocus()
	}
	return m.WithFocus(Focus{Outer: m.focus.Outer, Inner: w.MoveFocus(m.focus.Inner, dir)})
}

func kickAll(rng entry.Rand, m Model) Model {
	if rng.Float64() < kickAllSkipChance {
		return m
	}
	m.entries = m.entries.Update(func(_ ID, w entry.Widget) entry.Widget {
		return w.Kick(rng)
	})
	return m
}

func kickOne(rng entry.Rand, m Model) Model {
	n := m.entries.Len()
	if n == 0 {
		return m
	}
	id, ok := m.entries.Nth(rng.Intn(n))
	if !ok {
		return m
	}
	w, ok := m.entries.Get(id)
	if !ok {
		return m
	}
	m.entries = m.entries.Set(id, w.Kick(rng))
	return m
}

// raiseRuntime faults inside the Go runtime with an index out of range.
func raiseRuntime() {
	var rows []int
	idx := len(rows)
	_ = rows[idx]
}
