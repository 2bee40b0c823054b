package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/focuslist/internal/logging/events"
	"github.com/atomicstack/focuslist/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// View renders the header, the visible part of the entry list, the search
// box and the footer. It also records which screen row runs which click
// handler.
func (m *Model) View() string {
	current := m.State()
	body, next := renderEntries(current, m.width, m.styles, m.cache, m.schedule)
	m.cache = next
	events.View.Render(body.rendered, body.reused)

	header := m.styles.Header.Render(fmt.Sprintf("%s  %d/%d", appTitle, body.visible, current.Entries().Len()))
	bottom := m.bottomLines(current, body)

	lines := []string{header}
	clicks := []func(){nil}
	rows := m.bodyRows(len(bottom))
	m.offset = ensureVisible(m.offset, len(body.lines), rows, body.focusLine, body.focusHeight)
	bodyLines, bodyClicks := window(body, m.offset, rows)
	lines = append(lines, bodyLines...)
	clicks = append(clicks, bodyClicks...)
	lines = append(lines, bottom...)
	// rows past the terminal height are cut from the bottom so screen rows
	// keep matching click rows
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
		if len(clicks) > m.height {
			clicks = clicks[:m.height]
		}
	}
	m.screen = clicks

	return strings.Join(applyWidth(lines, m.width), "\n")
}

func (m *Model) bottomLines(current state.Model, body entryView) []string {
	var lines []string
	if body.visible == 0 {
		if current.Entries().Len() == 0 {
			lines = append(lines, m.styles.Info.Render("No entries"))
		} else {
			lines = append(lines, m.styles.Info.Render(fmt.Sprintf("No matches for %q", current.Search())))
		}
	}
	if m.infoMsg != "" {
		lines = append(lines, m.styles.Info.Render(m.infoMsg))
	}
	if m.fatal != nil {
		lines = append(lines, m.styles.Error.Render("Error: "+m.fatal.Error()))
	}
	lines = append(lines, m.search.View())
	if m.showFooter {
		if footer := m.help.View(m.keys); footer != "" {
			lines = append(lines, strings.Split(footer, "\n")...)
		}
	}
	return lines
}

// bodyRows returns how many entry lines fit on screen, or -1 when the height
// is unknown. At least one entry line is kept; View drops bottom lines that
// no longer fit.
func (m *Model) bodyRows(reserved int) int {
	if m.height <= 0 {
		return -1
	}
	remain := m.height - 1 - reserved
	if remain < 1 {
		return 1
	}
	return remain
}

// ensureVisible adjusts offset so the focused block starting at line, of the
// given height, is on screen. The block's first line wins when the block is
// taller than the window.
func ensureVisible(offset, total, rows, line, height int) int {
	if rows <= 0 || total <= rows {
		return 0
	}
	if line >= 0 {
		if height > rows {
			height = rows
		}
		if height < 1 {
			height = 1
		}
		if line+height > offset+rows {
			offset = line + height - rows
		}
		if line < offset {
			offset = line
		}
	}
	if maxOffset := total - rows; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func window(body entryView, offset, rows int) ([]string, []func()) {
	if rows < 0 || len(body.lines) <= rows {
		return body.lines, body.clicks
	}
	end := offset + rows
	if end > len(body.lines) {
		end = len(body.lines)
	}
	return body.lines[offset:end], body.clicks[offset:end]
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	result := make([]string, len(lines))
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			line = truncate.StringWithTail(line, uint(width), "…")
		}
		result[i] = line
	}
	return result
}

// handleMouseMsg runs the click handler of the line under a left click.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	if ev.Y < 0 || ev.Y >= len(m.screen) {
		return nil
	}
	if click := m.screen[ev.Y]; click != nil {
		m.clearInfo()
		click()
	}
	return nil
}
