package tui

import "charm.land/lipgloss/v2"

// Styles groups the lipgloss styles the widget view uses. A NoColor theme
// keeps layout markers but drops all color so snapshots stay readable.
type Styles struct {
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style
	Item        lipgloss.Style
	Highlighted lipgloss.Style
	Selected    lipgloss.Style
	Both        lipgloss.Style
	Chip        lipgloss.Style
	ChipFocused lipgloss.Style
	Helper      lipgloss.Style
	Status      lipgloss.Style
}

// DefaultStyles returns the standard theme.
func DefaultStyles() Styles {
	return Styles{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Highlighted: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("24")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Both:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Background(lipgloss.Color("24")),
		Chip:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		ChipFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("24")),
		Helper:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	}
}

// PlainStyles returns a colorless theme for --no-color and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Prompt:      plain,
		Placeholder: plain,
		Item:        plain,
		Highlighted: plain,
		Selected:    plain,
		Both:        plain,
		Chip:        plain,
		ChipFocused: plain,
		Helper:      plain,
		Status:      plain,
	}
}
