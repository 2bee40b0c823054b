package ui

import (
	"github.com/atomicstack/focuslist/internal/entry"
	"github.com/atomicstack/focuslist/internal/theme"
	"github.com/atomicstack/focuslist/internal/ui/state"
)

// fragmentInput is everything an entry fragment depends on. A fragment is
// reused while its input compares equal.
type fragmentInput struct {
	widget entry.Widget
	status entry.Status
	search string
	width  int
}

func (in fragmentInput) equal(other fragmentInput) bool {
	if in.status != other.status || in.search != other.search || in.width != other.width {
		return false
	}
	if in.widget == nil || other.widget == nil {
		return in.widget == nil && other.widget == nil
	}
	return in.widget.Equal(other.widget)
}

type cachedFragment struct {
	input    fragmentInput
	fragment entry.Fragment
}

type fragmentCache map[state.ID]cachedFragment

// entryView is the rendered entry list. clicks is parallel to lines.
type entryView struct {
	lines       []string
	clicks      []func()
	focusLine   int
	focusHeight int
	visible     int
	rendered    int
	reused      int
}

// renderEntries renders the filtered entries of m in id order. Fragments from
// prev are reused when their inputs are unchanged; slots for entries that
// are no longer visible are not carried into the returned cache.
func renderEntries(m state.Model, width int, styles *theme.Styles, prev fragmentCache, schedule func(state.Action)) (entryView, fragmentCache) {
	view := entryView{focusLine: -1}
	next := make(fragmentCache, len(prev))
	state.FilteredEntries(m).Each(func(id state.ID, w entry.Widget) bool {
		input := fragmentInput{
			widget: w,
			status: m.StatusOf(id),
			search: m.Search(),
			width:  width,
		}
		slot, ok := prev[id]
		if ok && slot.input.equal(input) {
			view.reused++
		} else {
			slot = cachedFragment{
				input:    input,
				fragment: w.Render(viewInput(id, input, styles, schedule)),
			}
			view.rendered++
		}
		next[id] = slot
		if input.status.Focused {
			view.focusLine = len(view.lines)
			view.focusHeight = len(slot.fragment.Lines)
		}
		view.lines = append(view.lines, slot.fragment.Lines...)
		for i := range slot.fragment.Lines {
			var click func()
			if i < len(slot.fragment.Clicks) {
				click = slot.fragment.Clicks[i]
			}
			view.clicks = append(view.clicks, click)
		}
		view.visible++
		return true
	})
	return view, next
}

func viewInput(id state.ID, in fragmentInput, styles *theme.Styles, schedule func(state.Action)) entry.ViewInput {
	vi := entry.ViewInput{
		Status: in.status,
		Width:  in.width,
		Styles: styles,
	}
	if schedule != nil {
		vi.FocusMe = func() { schedule(state.SetOuterFocus{ID: id}) }
		vi.SetInnerFocus = func(p entry.Point) { schedule(state.SetInnerFocus{Point: p}) }
	}
	return vi
}
