// Package dispatcher owns the current application state and applies actions
// to it one at a time.
package dispatcher

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/atomicstack/focuslist/internal/entry"
	"github.com/atomicstack/focuslist/internal/logging"
	"github.com/atomicstack/focuslist/internal/logging/events"
	"github.com/atomicstack/focuslist/internal/ui/state"
	"gopkg.in/yaml.v3"
)

// Result describes what a handled action changed.
type Result struct {
	FocusChanged  bool
	SearchChanged bool
	Dumped        bool
}

type Dispatcher struct {
	current state.Model
	rng     entry.Rand
	dumped  bool
}

func New(initial state.Model, rng entry.Rand) *Dispatcher {
	return &Dispatcher{current: initial, rng: rng}
}

// Current returns the latest model.
func (d *Dispatcher) Current() state.Model {
	return d.current
}

// Handle runs action to completion against the current model. On a fatal
// error the current model is left as it was and the error is a
// *state.FatalError.
func (d *Dispatcher) Handle(action state.Action) (res Result, err error) {
	label := state.Describe(action)
	events.Action.Dispatch(label)
	prev := d.current
	d.dumped = false

	next, err := d.apply(action, prev)
	if err != nil {
		events.Action.Fatal(label, err, isRuntime(err))
		return res, err
	}
	d.current = next

	prevFocus, hadFocus := prev.Focus()
	focus, hasFocus := next.Focus()
	res.FocusChanged = hadFocus != hasFocus || prevFocus != focus
	res.SearchChanged = prev.Search() != next.Search()
	res.Dumped = d.dumped

	if res.FocusChanged {
		if hasFocus {
			events.Focus.Changed(int(focus.Outer), focus.Inner.Row, focus.Inner.Valid)
		} else {
			events.Focus.Cleared()
		}
	}
	if res.SearchChanged {
		events.Filter.Search(next.Search(), state.FilteredEntries(next).Len())
	}
	switch a := action.(type) {
	case state.KickAll:
		events.Kick.All(next.Entries().Len())
	case state.KickN:
		events.Kick.N(a.N)
	}
	return res, nil
}

func (d *Dispatcher) apply(action state.Action, m state.Model) (next state.Model, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rerr, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		next, err = m, &state.FatalError{Err: rerr, Runtime: true}
	}()
	env := state.Env{Rand: d.rng, Dump: d.dump}
	return state.Apply(env, action, m)
}

func (d *Dispatcher) dump(snapshot state.Snapshot) {
	body, err := yaml.Marshal(snapshot)
	if err != nil {
		logging.Error(fmt.Errorf("marshal state dump: %w", err))
		return
	}
	logging.Dump("state", body)
	events.State.Dump(len(snapshot.Entries), len(body))
	d.dumped = true
}

func isRuntime(err error) bool {
	var fatal *state.FatalError
	return errors.As(err, &fatal) && fatal.Runtime
}
