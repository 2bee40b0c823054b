package ui

import (
	"errors"

	"github.com/atomicstack/focuslist/internal/entry"
	"github.com/atomicstack/focuslist/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// errGotX is raised by the ctrl+x binding.
var errGotX = errors.New("got X")

type keyMap struct {
	Prev         key.Binding
	Next         key.Binding
	InnerPrev    key.Binding
	InnerNext    key.Binding
	Toggle       key.Binding
	Incr         key.Binding
	Decr         key.Binding
	Search       key.Binding
	Dump         key.Binding
	Copy         key.Binding
	Nop          key.Binding
	Raise        key.Binding
	RaiseRuntime key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:         key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "prev entry")),
		Next:         key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "next entry")),
		InnerPrev:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "prev row")),
		InnerNext:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "next row")),
		Toggle:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "collapse")),
		Incr:         key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bump up")),
		Decr:         key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "bump down")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Dump:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "dump state")),
		Copy:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy name")),
		Nop:          key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "nop")),
		Raise:        key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "raise")),
		RaiseRuntime: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "runtime fault")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.InnerNext, k.InnerPrev},
		{k.Toggle, k.Incr, k.Decr, k.Search},
		{k.Dump, k.Copy, k.Nop, k.Raise, k.RaiseRuntime},
		{k.Help, k.Quit},
	}
}

// action maps a key press to the state action it dispatches. Entry actions
// carry focus as it stands when the key is pressed.
func (k keyMap) action(msg tea.KeyMsg, focus *state.Focus) (state.Action, bool) {
	switch {
	case key.Matches(msg, k.Prev):
		return state.MoveOuterFocus{Dir: entry.Prev}, true
	case key.Matches(msg, k.Next):
		return state.MoveOuterFocus{Dir: entry.Next}, true
	case key.Matches(msg, k.InnerPrev):
		return state.MoveInnerFocus{Dir: entry.Prev}, true
	case key.Matches(msg, k.InnerNext):
		return state.MoveInnerFocus{Dir: entry.Next}, true
	case key.Matches(msg, k.Raise):
		return state.Raise{Err: errGotX}, true
	case key.Matches(msg, k.RaiseRuntime):
		return state.RaiseRuntime{}, true
	case key.Matches(msg, k.Nop):
		return state.Nop{}, true
	case key.Matches(msg, k.Dump):
		return state.DumpState{}, true
	case key.Matches(msg, k.Toggle):
		return state.EntryAction{Focus: focus, Action: entry.ToggleCollapse{}}, true
	case key.Matches(msg, k.Incr):
		return state.EntryAction{Focus: focus, Action: entry.Bump{Dir: entry.Incr}}, true
	case key.Matches(msg, k.Decr):
		return state.EntryAction{Focus: focus, Action: entry.Bump{Dir: entry.Decr}}, true
	}
	return nil, false
}
