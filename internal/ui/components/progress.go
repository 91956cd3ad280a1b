package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders the presentation progress indicator
type ProgressBar struct {
	Width   int
	Percent float64
	Label   string

	Filled lipgloss.Style
	Empty  lipgloss.Style
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{
		Width:  width,
		Filled: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

// SetPercent updates the progress, clamped to [0, 100]
func (p *ProgressBar) SetPercent(percent float64) {
	switch {
	case percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}
	p.Percent = percent
}

// FilledWidth returns how many cells of the bar are filled
func (p *ProgressBar) FilledWidth() int {
	if p.Width <= 0 {
		return 0
	}
	return int(float64(p.Width) * p.Percent / 100)
}

// Render renders the progress bar
func (p *ProgressBar) Render() string {
	if p.Width <= 0 {
		return ""
	}

	filledWidth := p.FilledWidth()
	bar := p.Filled.Render(strings.Repeat("█", filledWidth)) +
		p.Empty.Render(strings.Repeat("░", p.Width-filledWidth))

	if p.Label == "" {
		return bar
	}
	return fmt.Sprintf("%s %s", bar, p.Label)
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is the loading indicator
type Spinner struct {
	Frame int
	Label string
	Style lipgloss.Style
}

// NewSpinner creates a new spinner
func NewSpinner() *Spinner {
	return &Spinner{
		Style: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true),
	}
}

// SetLabel sets the spinner label
func (s *Spinner) SetLabel(label string) {
	s.Label = label
}

// Tick advances the spinner animation
func (s *Spinner) Tick() {
	s.Frame = (s.Frame + 1) % len(spinnerFrames)
}

// Render renders the spinner
func (s *Spinner) Render() string {
	spinner := s.Style.Render(spinnerFrames[s.Frame])
	if s.Label != "" {
		return fmt.Sprintf("%s %s", spinner, s.Label)
	}
	return spinner
}
