package events

import "github.com/atomicstack/focuslist/internal/logging"

type ActionTracer struct{}

type FocusTracer struct{}

type FilterTracer struct{}

type KickTracer struct{}

type StateTracer struct{}

var (
	Action = ActionTracer{}
	Focus  = FocusTracer{}
	Filter = FilterTracer{}
	Kick   = KickTracer{}
	State  = StateTracer{}
)

func (ActionTracer) Dispatch(action string) {
	logging.Trace("action.dispatch", map[string]interface{}{"action": action})
}

func (ActionTracer) Fatal(action string, err error, runtime bool) {
	if err == nil {
		return
	}
	logging.Trace("action.fatal", map[string]interface{}{
		"action":  action,
		"error":   err.Error(),
		"runtime": runtime,
	})
}

func (FocusTracer) Changed(outer int, inner int, hasInner bool) {
	payload := map[string]interface{}{"outer": outer}
	if hasInner {
		payload["inner"] = inner
	}
	logging.Trace("focus.changed", payload)
}

func (FocusTracer) Cleared() {
	logging.Trace("focus.cleared", nil)
}

func (FilterTracer) Search(value string, visible int) {
	logging.Trace("filter.search", map[string]interface{}{"search": value, "visible": visible})
}

func (KickTracer) All(entries int) {
	logging.Trace("kick.all", map[string]interface{}{"entries": entries})
}

func (KickTracer) N(n int) {
	logging.Trace("kick.n", map[string]interface{}{"n": n})
}

func (StateTracer) Dump(entries int, bytes int) {
	logging.Trace("state.dump", map[string]interface{}{"entries": entries, "bytes": bytes})
}
