package config

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/yildizm/recap/internal/deck"
)

// Config holds the complete application configuration
type Config struct {
	Version      string             `yaml:"version" json:"version"`
	Presentation PresentationConfig `yaml:"presentation" json:"presentation"`
	Display      DisplayConfig      `yaml:"display" json:"display"`
	Suggestions  []Suggestion       `yaml:"suggestions" json:"suggestions"`
	Slides       []deck.Descriptor  `yaml:"slides" json:"slides"`
}

// PresentationConfig configures playback
type PresentationConfig struct {
	Year            string        `yaml:"year" json:"year" env:"RECAP_YEAR"`
	TeamName        string        `yaml:"team_name" json:"team_name" env:"RECAP_TEAM_NAME"`
	LoadingDuration time.Duration `yaml:"loading_duration" json:"loading_duration" env:"RECAP_LOADING_DURATION"`
	AutoAdvance     time.Duration `yaml:"auto_advance" json:"auto_advance" env:"RECAP_AUTO_ADVANCE"` // 0 disables
	CounterDuration time.Duration `yaml:"counter_duration" json:"counter_duration" env:"RECAP_COUNTER_DURATION"`
	Locale          string        `yaml:"locale" json:"locale" env:"RECAP_LOCALE"` // BCP 47 tag for number formatting
}

// DisplayConfig configures the terminal renderer
type DisplayConfig struct {
	Theme        string `yaml:"theme" json:"theme" env:"RECAP_THEME"`                // default|high-contrast|minimal
	ColorMode    string `yaml:"color_mode" json:"color_mode" env:"RECAP_COLOR_MODE"` // auto|always|never
	NoEmoji      bool   `yaml:"no_emoji" json:"no_emoji" env:"RECAP_NO_EMOJI"`
	FrameRate    int    `yaml:"frame_rate" json:"frame_rate" env:"RECAP_FRAME_RATE"` // counter frames per second
	DisableMouse bool   `yaml:"disable_mouse" json:"disable_mouse" env:"RECAP_DISABLE_MOUSE"`
}

// Suggestion is a shortcut card on the main surface
type Suggestion struct {
	Label  string `yaml:"label" json:"label"`
	Prompt string `yaml:"prompt" json:"prompt"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Presentation: PresentationConfig{
			Year:            "2025",
			TeamName:        "The Lab",
			LoadingDuration: 1500 * time.Millisecond,
			AutoAdvance:     0,
			CounterDuration: 1500 * time.Millisecond,
			Locale:          "en",
		},
		Display: DisplayConfig{
			Theme:     "default",
			ColorMode: "auto",
			FrameRate: 60,
		},
		Suggestions: DefaultSuggestions(),
		Slides:      DefaultSlides(),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validatePresentationConfig(); err != nil {
		return err
	}
	if err := c.validateDisplayConfig(); err != nil {
		return err
	}
	if _, err := c.Deck(); err != nil {
		return err
	}
	return nil
}

// Deck builds the slide deck described by the configuration
func (c *Config) Deck() (*deck.Deck, error) {
	return deck.FromDescriptors(c.Slides)
}

// LocaleTag returns the parsed locale, English when unset or invalid
func (p PresentationConfig) LocaleTag() language.Tag {
	if p.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(p.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// validatePresentationConfig validates playback-related configuration
func (c *Config) validatePresentationConfig() error {
	if c.Presentation.LoadingDuration < 0 {
		return fmt.Errorf("loading_duration must be non-negative")
	}
	if c.Presentation.AutoAdvance < 0 {
		return fmt.Errorf("auto_advance must be non-negative")
	}
	if c.Presentation.CounterDuration < 0 {
		return fmt.Errorf("counter_duration must be non-negative")
	}
	if c.Presentation.Locale != "" {
		if _, err := language.Parse(c.Presentation.Locale); err != nil {
			return fmt.Errorf("invalid locale: %s", c.Presentation.Locale)
		}
	}
	return nil
}

// validateDisplayConfig validates display-related configuration
func (c *Config) validateDisplayConfig() error {
	if c.Display.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.Display.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.Display.Theme)
		}
	}
	if c.Display.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Display.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Display.ColorMode)
		}
	}
	if c.Display.FrameRate < 1 || c.Display.FrameRate > 240 {
		return fmt.Errorf("frame_rate must be between 1 and 240")
	}
	return nil
}
