// Package input maps raw key, pointer and control events to navigation
// commands for the player.
package input

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/yildizm/recap/internal/player"
)

// Result is the outcome of dispatching one event
type Result struct {
	Command player.Command
	// PreventDefault asks the host to suppress the event's own effect
	PreventDefault bool
}

// OK reports whether the event produced a command
func (r Result) OK() bool {
	return r.Command != player.CommandNone
}

// Dispatcher turns events into at most one command each
type Dispatcher struct {
	keys   KeyMap
	prompt player.PromptField
}

// NewDispatcher creates a dispatcher. prompt receives the text of
// suggestion cards and may be nil.
func NewDispatcher(keys KeyMap, prompt player.PromptField) *Dispatcher {
	return &Dispatcher{keys: keys, prompt: prompt}
}

// KeyMap returns the bindings in use
func (d *Dispatcher) KeyMap() KeyMap {
	return d.keys
}

// Dispatch maps ev to a command given the current player state. Key and
// pointer events are ignored unless the player is playing.
func (d *Dispatcher) Dispatch(state player.State, ev Event) Result {
	switch ev := ev.(type) {
	case KeyEvent:
		if state != player.StatePlaying {
			return Result{}
		}
		return d.dispatchKey(ev)
	case PointerEvent:
		if state != player.StatePlaying {
			return Result{}
		}
		return dispatchPointer(ev)
	case ControlEvent:
		return d.dispatchControl(state, ev)
	}
	return Result{}
}

func (d *Dispatcher) dispatchKey(ev KeyEvent) Result {
	switch {
	case key.Matches(ev, d.keys.Advance):
		return Result{Command: player.CommandAdvance, PreventDefault: true}
	case key.Matches(ev, d.keys.Retreat):
		return Result{Command: player.CommandRetreat, PreventDefault: true}
	case key.Matches(ev, d.keys.Cancel):
		return Result{Command: player.CommandClose}
	}
	return Result{}
}

// dispatchPointer splits the surface at its horizontal midpoint, measured
// at the center of the clicked cell. On an even width the first cell of the
// right half advances.
func dispatchPointer(ev PointerEvent) Result {
	if ev.OnControl || ev.Width <= 0 {
		return Result{}
	}
	if 2*ev.X+1 > ev.Width {
		return Result{Command: player.CommandAdvance}
	}
	return Result{Command: player.CommandRetreat}
}

func (d *Dispatcher) dispatchControl(state player.State, ev ControlEvent) Result {
	switch ev.Action {
	case ActionSubmit:
		if state == player.StateClosed {
			return Result{Command: player.CommandOpen}
		}
	case ActionSuggestion:
		if state == player.StateClosed {
			if d.prompt != nil {
				d.prompt.SetPrompt(ev.Prompt)
			}
			return Result{Command: player.CommandOpen}
		}
	case ActionReplay:
		return Result{Command: player.CommandReplay}
	case ActionClose:
		return Result{Command: player.CommandClose}
	}
	return Result{}
}
