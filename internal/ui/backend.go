package ui

import (
	"github.com/atomicstack/focuslist/internal/backend"
	"github.com/atomicstack/focuslist/internal/logging/events"
	"github.com/atomicstack/focuslist/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForKick(k *backend.Kicker) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-k.Events()
		if !ok {
			return kickDoneMsg{}
		}
		return kickMsg{event: evt}
	}
}

type kickMsg struct {
	event backend.Event
}

type kickDoneMsg struct{}

// handleKickMsg turns a kicker event into a kick action delivered through the
// command bus, then waits for the next event.
func (m *Model) handleKickMsg(msg tea.Msg) tea.Cmd {
	kick, ok := msg.(kickMsg)
	if !ok {
		return nil
	}
	events.Kicker.Event(kick.event.Kind.String(), kick.event.N)
	deliver := m.bus.Deliver(kickAction(kick.event))
	if m.kicker != nil {
		return tea.Batch(deliver, waitForKick(m.kicker))
	}
	return deliver
}

func (m *Model) handleKickDoneMsg(msg tea.Msg) tea.Cmd {
	events.Kicker.Done()
	m.kicker = nil
	return nil
}

func kickAction(evt backend.Event) state.Action {
	if evt.Kind == backend.KindKickN {
		return state.KickN{N: evt.N}
	}
	return state.KickAll{}
}
