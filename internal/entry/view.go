package entry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/focuslist/internal/format/table"
	"github.com/atomicstack/focuslist/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Status is the focus information derived for one entry.
type Status struct {
	Focused bool
	Point   Point
}

// ViewInput carries everything Render needs. FocusMe and SetInnerFocus are
// the host callbacks bound to clicks on the rendered lines; either may be nil.
type ViewInput struct {
	Status        Status
	Width         int
	Styles        *theme.Styles
	FocusMe       func()
	SetInnerFocus func(Point)
}

// Fragment is the rendered form of an entry. Clicks[i] handles a click on
// Lines[i] and may be nil.
type Fragment struct {
	Lines  []string
	Clicks []func()
}

const (
	indicator     = "▌"
	glyphExpanded = "▾"
	glyphFolded   = "▸"
	rowIndent     = "    "
)

// Render draws the entry header and, unless collapsed, one line per row.
func (e Entry) Render(in ViewInput) Fragment {
	styles := in.Styles
	if styles == nil {
		styles = theme.Default()
	}
	frag := Fragment{
		Lines:  make([]string, 0, 1+len(e.Rows)),
		Clicks: make([]func(), 0, 1+len(e.Rows)),
	}
	frag.Lines = append(frag.Lines, e.renderHeader(in, styles))
	frag.Clicks = append(frag.Clicks, in.FocusMe)
	if e.Collapsed {
		return frag
	}
	cells := make([][]string, len(e.Rows))
	for i, row := range e.Rows {
		cells[i] = []string{row.Key, strconv.Itoa(row.Value)}
	}
	formatted := table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignRight})
	focusedRow, hasRow := -1, false
	if in.Status.Focused {
		focusedRow, hasRow = in.Status.Point.RowIndex()
	}
	for i, text := range formatted {
		marker := "  "
		style := styles.Row
		if hasRow && i == focusedRow {
			marker = "› "
			style = styles.FocusedRow
		}
		frag.Lines = append(frag.Lines, rowIndent+marker+render(style, text))
		frag.Clicks = append(frag.Clicks, rowClick(in, i))
	}
	return frag
}

func (e Entry) renderHeader(in ViewInput, styles *theme.Styles) string {
	glyph := glyphExpanded
	if e.Collapsed {
		glyph = glyphFolded
	}
	text := fmt.Sprintf(" %s %s", glyph, e.Label)
	counter := fmt.Sprintf("  [%d]", e.Counter)
	lineStyle, indicatorStyle := styles.Entry, styles.EntryIndicator
	if in.Status.Focused {
		lineStyle, indicatorStyle = styles.FocusedEntry, styles.FocusedIndicator
	}
	used := lipgloss.Width(indicator + text + counter)
	pad := ""
	if in.Width > used {
		pad = strings.Repeat(" ", in.Width-used)
	}
	return render(indicatorStyle, indicator) +
		render(lineStyle, text) +
		render(styles.Counter, counter) +
		render(lineStyle, pad)
}

func rowClick(in ViewInput, row int) func() {
	if in.FocusMe == nil && in.SetInnerFocus == nil {
		return nil
	}
	return func() {
		if in.FocusMe != nil {
			in.FocusMe()
		}
		if in.SetInnerFocus != nil {
			in.SetInnerFocus(At(row))
		}
	}
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
