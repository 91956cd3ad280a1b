package deck

import (
	"strconv"
	"strings"
)

// Deck is the ordered, immutable sequence of slides for one presentation
type Deck struct {
	slides []Slide
}

// Build creates a deck from the given slides. The slice is copied, so later
// changes by the caller do not reach the deck.
func Build(slides []Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, newConfigurationError(-1, "at least one slide is required", ErrEmptyDeck)
	}

	cp := make([]Slide, len(slides))
	for i, s := range slides {
		if s == nil {
			return nil, newConfigurationError(i, "slide is nil", nil)
		}
		cp[i] = s
	}

	return &Deck{slides: cp}, nil
}

// Len returns the number of slides
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.slides)
}

// At returns the slide at index i, or nil when i is out of range
func (d *Deck) At(i int) Slide {
	if i < 0 || i >= d.Len() {
		return nil
	}
	return d.slides[i]
}

// Slides returns a copy of the slides in order
func (d *Deck) Slides() []Slide {
	out := make([]Slide, d.Len())
	if d != nil {
		copy(out, d.slides)
	}
	return out
}

// Counts returns how many slides of each kind the deck holds
func (d *Deck) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, s := range d.Slides() {
		counts[s.Kind()]++
	}
	return counts
}

// ParseStatValue strips thousands separators and parses the remainder as a
// non-negative integer. It reports false when the value is not a plain
// number, in which case the raw string is displayed unchanged.
func ParseStatValue(raw string) (int, bool) {
	clean := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if clean == "" {
		return 0, false
	}
	n, err := strconv.Atoi(clean)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
