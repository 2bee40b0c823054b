package events

import "github.com/atomicstack/focuslist/internal/logging"

type CommandTracer struct{}

type KickerTracer struct{}

type ViewTracer struct{}

var (
	Command = CommandTracer{}
	Kicker  = KickerTracer{}
	View    = ViewTracer{}
)

func (CommandTracer) Queue(label string) {
	logging.Trace("command.queue", map[string]interface{}{"action": label})
}

func (CommandTracer) Result(label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"action": label, "msg": msgType})
}

func (KickerTracer) Event(kind string, n int) {
	logging.Trace("kicker.event", map[string]interface{}{"kind": kind, "n": n})
}

func (KickerTracer) Done() {
	logging.Trace("kicker.done", nil)
}

func (ViewTracer) Render(rendered, reused int) {
	logging.Trace("view.render", map[string]interface{}{"rendered": rendered, "reused": reused})
}
