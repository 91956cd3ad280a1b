package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// shade is a light/dark color pair
type shade [2]string

func (s shade) color() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: s[0], Dark: s[1]}
}

// Palette names theme colors by the part of the presentation they paint
type Palette struct {
	Year     shade // intro year and main surface header
	Heading  shade // team name, slide titles, outro thanks
	Caption  shade // subtitles, photo captions, stat comments
	Text     shade // text slide content, stat labels, outro message
	Counter  shade // stat value while counting and at rest
	Dim      shade // units, hints, slide counter, photo frame
	Frame    shade // slide border
	Control  shade // close and replay buttons, prompt border
	Progress shade // filled part of the progress bar
	Picked   shade // background of the highlighted suggestion
}

// Theme is a resolved palette
type Theme struct {
	Name string

	Year     lipgloss.AdaptiveColor
	Heading  lipgloss.AdaptiveColor
	Caption  lipgloss.AdaptiveColor
	Text     lipgloss.AdaptiveColor
	Counter  lipgloss.AdaptiveColor
	Dim      lipgloss.AdaptiveColor
	Frame    lipgloss.AdaptiveColor
	Control  lipgloss.AdaptiveColor
	Progress lipgloss.AdaptiveColor
	Picked   lipgloss.AdaptiveColor
}

// Theme resolves the palette under name
func (p Palette) Theme(name string) Theme {
	return Theme{
		Name:     name,
		Year:     p.Year.color(),
		Heading:  p.Heading.color(),
		Caption:  p.Caption.color(),
		Text:     p.Text.color(),
		Counter:  p.Counter.color(),
		Dim:      p.Dim.color(),
		Frame:    p.Frame.color(),
		Control:  p.Control.color(),
		Progress: p.Progress.color(),
		Picked:   p.Picked.color(),
	}
}

// Warm stage colors: amber year, coral counters on a deep plum frame
var defaultPalette = Palette{
	Year:     shade{"#B45309", "#FBBF24"},
	Heading:  shade{"#3F1D5C", "#F5E9FF"},
	Caption:  shade{"#7A5C8E", "#C4A8DA"},
	Text:     shade{"#2E2533", "#E9E3EE"},
	Counter:  shade{"#C2410C", "#FB7A4B"},
	Dim:      shade{"#8A8093", "#7D7486"},
	Frame:    shade{"#C9B6DA", "#4C2F66"},
	Control:  shade{"#9D174D", "#F472B6"},
	Progress: shade{"#D97706", "#F59E0B"},
	Picked:   shade{"#FDE7C7", "#3B2151"},
}

// Projector friendly: pure black and white with a yellow counter
var highContrastPalette = Palette{
	Year:     shade{"#000000", "#FFFF00"},
	Heading:  shade{"#000000", "#FFFFFF"},
	Caption:  shade{"#1A1A1A", "#F0F0F0"},
	Text:     shade{"#000000", "#FFFFFF"},
	Counter:  shade{"#0000CC", "#FFFF00"},
	Dim:      shade{"#404040", "#C8C8C8"},
	Frame:    shade{"#000000", "#FFFFFF"},
	Control:  shade{"#0000CC", "#00FFFF"},
	Progress: shade{"#0000CC", "#FFFF00"},
	Picked:   shade{"#FFFF00", "#0000CC"},
}

// Grayscale with a single teal accent on the counter and progress
var minimalPalette = Palette{
	Year:     shade{"#4B4B4B", "#BDBDBD"},
	Heading:  shade{"#1F1F1F", "#EDEDED"},
	Caption:  shade{"#6B6B6B", "#A3A3A3"},
	Text:     shade{"#2B2B2B", "#DADADA"},
	Counter:  shade{"#0F766E", "#5EEAD4"},
	Dim:      shade{"#9A9A9A", "#6E6E6E"},
	Frame:    shade{"#D4D4D4", "#3A3A3A"},
	Control:  shade{"#2B2B2B", "#DADADA"},
	Progress: shade{"#0F766E", "#5EEAD4"},
	Picked:   shade{"#ECECEC", "#2E2E2E"},
}

// themeNames lists themes in the order help texts show them
var themeNames = []string{"default", "high-contrast", "minimal"}

var palettes = map[string]Palette{
	"default":       defaultPalette,
	"high-contrast": highContrastPalette,
	"minimal":       minimalPalette,
}

var currentTheme = defaultPalette.Theme("default")

// GetTheme returns the active theme
func GetTheme() Theme {
	return currentTheme
}

// SetThemeByName activates a theme; unknown names leave it unchanged
func SetThemeByName(name string) bool {
	p, ok := palettes[name]
	if !ok {
		return false
	}
	currentTheme = p.Theme(name)
	return true
}

// GetAvailableThemes returns the theme names
func GetAvailableThemes() []string {
	return append([]string(nil), themeNames...)
}

// IsColorDisabled reports whether NO_COLOR is set
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Styles are the lipgloss styles of every slide part
type Styles struct {
	Theme Theme

	Year     lipgloss.Style
	Team     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Value    lipgloss.Style

	Control lipgloss.Style
	Prompt  lipgloss.Style
	Slide   lipgloss.Style

	Suggestion       lipgloss.Style
	PickedSuggestion lipgloss.Style
}

// GetStyles builds the styles of the active theme
func GetStyles() *Styles {
	t := GetTheme()

	return &Styles{
		Theme: t,

		Year:     lipgloss.NewStyle().Foreground(t.Year).Bold(true),
		Team:     lipgloss.NewStyle().Foreground(t.Heading).Bold(true),
		Title:    lipgloss.NewStyle().Foreground(t.Heading).Bold(true).Padding(0, 1),
		Subtitle: lipgloss.NewStyle().Foreground(t.Caption).Italic(true),
		Body:     lipgloss.NewStyle().Foreground(t.Text),
		Muted:    lipgloss.NewStyle().Foreground(t.Dim),
		Value:    lipgloss.NewStyle().Foreground(t.Counter).Bold(true),

		Control: lipgloss.NewStyle().Foreground(t.Control).Bold(true),
		Prompt: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Control).
			Padding(0, 1),
		Slide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Frame).
			Padding(1, 4),

		Suggestion:       lipgloss.NewStyle().Foreground(t.Caption),
		PickedSuggestion: lipgloss.NewStyle().Background(t.Picked).Foreground(t.Heading).Bold(true),
	}
}
