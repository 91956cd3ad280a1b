package player

import (
	"time"

	"github.com/yildizm/recap/internal/deck"
)

// State is the lifecycle state of the player
type State int

const (
	StateClosed State = iota
	StateLoading
	StatePlaying
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Command is a navigation command consumed by the controller
type Command int

const (
	CommandNone Command = iota
	CommandOpen
	CommandClose
	CommandAdvance
	CommandRetreat
	CommandReplay
)

// String returns the command name
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandOpen:
		return "open"
	case CommandClose:
		return "close"
	case CommandAdvance:
		return "advance"
	case CommandRetreat:
		return "retreat"
	case CommandReplay:
		return "replay"
	default:
		return "unknown"
	}
}

// Position places a slide relative to the active one
type Position int

const (
	PositionBefore Position = iota
	PositionActive
	PositionAfter
)

// String returns the position name
func (p Position) String() string {
	switch p {
	case PositionBefore:
		return "before"
	case PositionActive:
		return "active"
	case PositionAfter:
		return "after"
	default:
		return "unknown"
	}
}

// PositionOf returns where slide i sits relative to the active index
func PositionOf(i, active int) Position {
	switch {
	case i < active:
		return PositionBefore
	case i > active:
		return PositionAfter
	default:
		return PositionActive
	}
}

// Renderer applies controller output to a display surface
type Renderer interface {
	ShowLoading(visible bool)
	// ShowPlayer toggles between the player and the main surface
	ShowPlayer(visible bool)
	RenderDeck(d *deck.Deck)
	Position(index int, slide deck.Slide, pos Position)
	SetProgress(percent float64)
	SetStatValue(index int, text string)
}

// PromptField is the prompt input of the main surface
type PromptField interface {
	SetPrompt(text string)
	ClearPrompt()
}

// Scheduler runs fn once after d, on the same goroutine that drives the
// controller
type Scheduler interface {
	After(d time.Duration, fn func())
}
