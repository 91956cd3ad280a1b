package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StatCard renders the body of a stat slide: icon, label, the counting
// value, unit and an optional comment
type StatCard struct {
	Icon    string
	Label   string
	Value   string
	Unit    string
	Comment string
	Width   int

	LabelStyle   lipgloss.Style
	ValueStyle   lipgloss.Style
	UnitStyle    lipgloss.Style
	CommentStyle lipgloss.Style
}

// NewStatCard creates a stat card with the default colors
func NewStatCard(icon, label, value, unit string) *StatCard {
	infoColor := lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}
	bodyColor := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	return &StatCard{
		Icon:         icon,
		Label:        label,
		Value:        value,
		Unit:         unit,
		Width:        40,
		LabelStyle:   lipgloss.NewStyle().Foreground(bodyColor),
		ValueStyle:   lipgloss.NewStyle().Foreground(infoColor).Bold(true),
		UnitStyle:    lipgloss.NewStyle().Foreground(bodyColor),
		CommentStyle: lipgloss.NewStyle().Foreground(bodyColor).Italic(true),
	}
}

// SetComment sets the line shown under the unit
func (s *StatCard) SetComment(comment string) *StatCard {
	s.Comment = comment
	return s
}

// Render renders the stat card
func (s *StatCard) Render() string {
	lines := []string{}
	if s.Icon != "" {
		lines = append(lines, s.Icon, "")
	}
	lines = append(lines,
		s.LabelStyle.Render(s.Label),
		"",
		s.ValueStyle.Render(s.Value),
		s.UnitStyle.Render(s.Unit),
	)
	if s.Comment != "" {
		lines = append(lines, "", s.CommentStyle.Render(s.Comment))
	}

	return lipgloss.NewStyle().
		Width(s.Width).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
