package formatter

import (
	"fmt"

	"github.com/yildizm/recap/internal/deck"
)

// Formatter defines the interface for deck outline output
type Formatter interface {
	Format(outline *Outline) ([]byte, error)
}

// Outline is a deck together with the presentation it belongs to
type Outline struct {
	Year     string
	TeamName string
	Deck     *deck.Deck
}

// New returns the formatter for the named output format
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "text", "terminal", "":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown", "md":
		return NewMarkdown(), nil
	case "csv":
		return NewCSV(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (must be one of: text, json, markdown, csv)", format)
	}
}
