package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header            *lipgloss.Style
	Entry             *lipgloss.Style
	EntryIndicator    *lipgloss.Style
	FocusedEntry      *lipgloss.Style
	FocusedIndicator  *lipgloss.Style
	Counter           *lipgloss.Style
	Row               *lipgloss.Style
	FocusedRow        *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Entry: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	EntryIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	FocusedEntry: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	FocusedIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Counter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	FocusedRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set with every entry unstyled, which keeps rendered
// output free of escape sequences.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header:            ptr(plain),
		Entry:             ptr(plain),
		EntryIndicator:    ptr(plain),
		FocusedEntry:      ptr(plain),
		FocusedIndicator:  ptr(plain),
		Counter:           ptr(plain),
		Row:               ptr(plain),
		FocusedRow:        ptr(plain),
		Error:             ptr(plain),
		Info:              ptr(plain),
		Footer:            ptr(plain),
		Filter:            ptr(plain),
		FilterPrompt:      ptr(plain),
		FilterPlaceholder: ptr(plain),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
