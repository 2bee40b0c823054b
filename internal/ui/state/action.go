package state

import (
	"fmt"

	"github.com/atomicstack/focuslist/internal/entry"
)

// Action is a state transition request. The set of actions is closed.
type Action interface {
	isAction()
}

// EntryAction forwards Action to the entry named by Focus. A nil Focus makes
// it a no-op.
type EntryAction struct {
	Focus  *Focus
	Action entry.Action
}

// SetOuterFocus focuses ID, keeping any inner point.
type SetOuterFocus struct {
	ID ID
}

// SetInnerFocus sets the inner point of the outer-focused entry.
type SetInnerFocus struct {
	Point entry.Point
}

// MoveOuterFocus moves to the adjacent visible entry.
type MoveOuterFocus struct {
	Dir entry.Direction
}

// MoveInnerFocus asks the focused entry for its adjacent inner point.
type MoveInnerFocus struct {
	Dir entry.Direction
}

// SetSearchString replaces the filter.
type SetSearchString struct {
	Value string
}

// KickAll kicks every entry, most of the time doing nothing at all.
type KickAll struct{}

// KickN kicks N randomly chosen entries, with replacement.
type KickN struct {
	N int
}

// Raise aborts with Err.
type Raise struct {
	Err error
}

// RaiseRuntime aborts with a fault raised by the Go runtime.
type RaiseRuntime struct{}

// DumpState writes the full model to the log.
type DumpState struct{}

// Nop does nothing.
type Nop struct{}

func (EntryAction) isAction()     {}
func (SetOuterFocus) isAction()   {}
func (SetInnerFocus) isAction()   {}
func (MoveOuterFocus) isAction()  {}
func (MoveInnerFocus) isAction()  {}
func (SetSearchString) isAction() {}
func (KickAll) isAction()         {}
func (KickN) isAction()           {}
func (Raise) isAction()           {}
func (RaiseRuntime) isAction()    {}
func (DumpState) isAction()       {}
func (Nop) isAction()             {}

// Describe returns a short human readable label for trace logs.
func Describe(action Action) string {
	switch a := action.(type) {
	case EntryAction:
		return fmt.Sprintf("entry %T", a.Action)
	case SetOuterFocus:
		return fmt.Sprintf("set-outer-focus %d", a.ID)
	case SetInnerFocus:
		return fmt.Sprintf("set-inner-focus %+v", a.Point)
	case MoveOuterFocus:
		return "move-outer-focus " + a.Dir.String()
	case MoveInnerFocus:
		return "move-inner-focus " + a.Dir.String()
	case SetSearchString:
		return fmt.Sprintf("set-search %q", a.Value)
	case KickAll:
		return "kick-all"
	case KickN:
		return fmt.Sprintf("kick-n %d", a.N)
	case Raise:
		return "raise"
	case RaiseRuntime:
		return "raise-runtime"
	case DumpState:
		return "dump-state"
	case Nop:
		return "nop"
	}
	return fmt.Sprintf("%T", action)
}
