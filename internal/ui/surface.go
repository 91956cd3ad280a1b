package ui

import (
	"github.com/yildizm/recap/internal/deck"
	"github.com/yildizm/recap/internal/player"
)

// surface is the renderer the controller writes to. It only records state;
// View turns it into text.
type surface struct {
	loading bool
	playing bool

	deck       *deck.Deck
	positions  []player.Position
	progress   float64
	statValues map[int]string
}

func newSurface() *surface {
	return &surface{statValues: make(map[int]string)}
}

func (s *surface) ShowLoading(visible bool) {
	s.loading = visible
}

func (s *surface) ShowPlayer(visible bool) {
	s.playing = visible
}

// RenderDeck resets every slide to its configured content
func (s *surface) RenderDeck(d *deck.Deck) {
	s.deck = d
	s.positions = make([]player.Position, d.Len())
	for i := range s.positions {
		s.positions[i] = player.PositionAfter
	}
	s.statValues = make(map[int]string)
	for i, sl := range d.Slides() {
		if stat, ok := sl.(deck.Stat); ok {
			s.statValues[i] = stat.Value
		}
	}
}

func (s *surface) Position(index int, _ deck.Slide, pos player.Position) {
	if index >= 0 && index < len(s.positions) {
		s.positions[index] = pos
	}
}

func (s *surface) SetProgress(percent float64) {
	s.progress = percent
}

func (s *surface) SetStatValue(index int, text string) {
	s.statValues[index] = text
}

// active returns the index of the slide marked active
func (s *surface) active() (int, bool) {
	for i, p := range s.positions {
		if p == player.PositionActive {
			return i, true
		}
	}
	return 0, false
}
