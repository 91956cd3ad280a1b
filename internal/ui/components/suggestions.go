package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Suggestion is a shortcut card that fills the prompt and starts playback
type Suggestion struct {
	Label  string
	Prompt string
}

// SuggestionList is the row of shortcut cards on the main surface.
// Selected is -1 while no card is highlighted.
type SuggestionList struct {
	Items    []Suggestion
	Selected int
	Width    int

	Style         lipgloss.Style
	SelectedStyle lipgloss.Style
}

// NewSuggestionList creates a list with nothing selected
func NewSuggestionList(items []Suggestion, width int) *SuggestionList {
	return &SuggestionList{
		Items:         items,
		Selected:      -1,
		Width:         width,
		Style:         lipgloss.NewStyle().Faint(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true).Bold(true),
	}
}

// Next highlights the next card, wrapping back to no selection
func (l *SuggestionList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.Selected++
	if l.Selected >= len(l.Items) {
		l.Selected = -1
	}
}

// Previous highlights the previous card, wrapping back to no selection
func (l *SuggestionList) Previous() {
	if len(l.Items) == 0 {
		return
	}
	l.Selected--
	if l.Selected < -1 {
		l.Selected = len(l.Items) - 1
	}
}

// Clear drops the highlight
func (l *SuggestionList) Clear() {
	l.Selected = -1
}

// Current returns the highlighted card
func (l *SuggestionList) Current() (Suggestion, bool) {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return Suggestion{}, false
	}
	return l.Items[l.Selected], true
}

// At returns the card rendered on the given line of Render output
func (l *SuggestionList) At(line int) (Suggestion, bool) {
	if line < 0 || line >= len(l.Items) {
		return Suggestion{}, false
	}
	return l.Items[line], true
}

// Render renders one card per line
func (l *SuggestionList) Render() string {
	lines := make([]string, 0, len(l.Items))
	for i, item := range l.Items {
		prefix := "  "
		style := l.Style
		if i == l.Selected {
			prefix = "▶ "
			style = l.SelectedStyle
		}
		text := fmt.Sprintf("%s%s  %s", prefix, item.Label, item.Prompt)
		if l.Width > 0 {
			style = style.MaxWidth(l.Width)
		}
		lines = append(lines, style.Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
