package command

import (
	"fmt"

	"github.com/atomicstack/focuslist/internal/logging/events"
	"github.com/atomicstack/focuslist/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Msg delivers an action scheduled from outside the update loop.
type Msg struct {
	Action state.Action
}

// Bus collects scheduled actions. Views and key handlers call Schedule while
// a message is being handled; the model drains the queue in order once the
// handler returns.
type Bus struct {
	pending []state.Action
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Schedule queues action for dispatch. It is the schedule callback handed to
// views.
func (b *Bus) Schedule(action state.Action) {
	if action == nil {
		return
	}
	events.Command.Queue(state.Describe(action))
	b.pending = append(b.pending, action)
}

// Drain returns the queued actions and empties the queue.
func (b *Bus) Drain() []state.Action {
	if len(b.pending) == 0 {
		return nil
	}
	out := b.pending
	b.pending = nil
	return out
}

// Deliver wraps action into a Bubble Tea command for producers running
// outside the update loop, such as timers.
func (b *Bus) Deliver(action state.Action) tea.Cmd {
	label := state.Describe(action)
	events.Command.Queue(label)
	return func() tea.Msg {
		msg := Msg{Action: action}
		events.Command.Result(label, fmt.Sprintf("%T", msg))
		return msg
	}
}
