package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	colorAccent  lipgloss.Color
	colorMuted   lipgloss.Color
	colorWarning lipgloss.Color
	colorLocked  lipgloss.Color

	TitleStyle    lipgloss.Style
	TimeStyle     lipgloss.Style
	DurationStyle lipgloss.Style
	SelectedStyle lipgloss.Style
	LockedStyle   lipgloss.Style
	GapStyle      lipgloss.Style
	StatusStyle   lipgloss.Style
	WarningStyle  lipgloss.Style
	HelpStyle     lipgloss.Style
	InputStyle    lipgloss.Style
	SettingsStyle lipgloss.Style
}

// NewStyles creates the style set.
func NewStyles() Styles {
	s := Styles{
		colorAccent:  lipgloss.Color("12"),
		colorMuted:   lipgloss.Color("8"),
		colorWarning: lipgloss.Color("11"),
		colorLocked:  lipgloss.Color("14"),
	}

	s.TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.TimeStyle = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.DurationStyle = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	s.LockedStyle = lipgloss.NewStyle().Foreground(s.colorLocked).Bold(true)
	s.GapStyle = lipgloss.NewStyle().Foreground(s.colorMuted).Faint(true)
	s.StatusStyle = lipgloss.NewStyle().Foreground(s.colorAccent)
	s.WarningStyle = lipgloss.NewStyle().Foreground(s.colorWarning)
	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.InputStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	s.SettingsStyle = lipgloss.NewStyle().Foreground(s.colorMuted)

	return s
}

// blockStyle returns the style for a block's title, tinted with the
// block's own color.
func (s Styles) blockStyle(hex string, selected bool) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	if selected {
		st = st.Bold(true).Reverse(true)
	}
	return st
}
