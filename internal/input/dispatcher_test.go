package input

import (
	"testing"

	"github.com/yildizm/recap/internal/player"
)

type promptStub struct {
	text string
	sets int
}

func (p *promptStub) SetPrompt(text string) {
	p.text = text
	p.sets++
}

func (p *promptStub) ClearPrompt() { p.text = "" }

func TestDispatchKeys(t *testing.T) {
	d := NewDispatcher(DefaultKeyMap(), nil)

	tests := []struct {
		key         string
		want        player.Command
		wantPrevent bool
	}{
		{"right", player.CommandAdvance, true},
		{" ", player.CommandAdvance, true},
		{"space", player.CommandAdvance, true},
		{"left", player.CommandRetreat, true},
		{"esc", player.CommandClose, false},
		{"up", player.CommandNone, false},
		{"x", player.CommandNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := d.Dispatch(player.StatePlaying, KeyEvent{Key: tt.key})
			if got.Command != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got.Command)
			}
			if got.PreventDefault != tt.wantPrevent {
				t.Errorf("Expected PreventDefault=%v, got %v", tt.wantPrevent, got.PreventDefault)
			}
			if got.OK() != (tt.want != player.CommandNone) {
				t.Errorf("OK() inconsistent with command %s", got.Command)
			}
		})
	}
}

func TestDispatchIgnoresNavigationWhenNotPlaying(t *testing.T) {
	d := NewDispatcher(DefaultKeyMap(), nil)

	events := []Event{
		KeyEvent{Key: "right"},
		KeyEvent{Key: "left"},
		KeyEvent{Key: "esc"},
		PointerEvent{X: 90, Width: 100},
		PointerEvent{X: 10, Width: 100},
	}
	for _, state := range []player.State{player.StateClosed, player.StateLoading} {
		for _, ev := range events {
			if got := d.Dispatch(state, ev); got.OK() {
				t.Errorf("%s: %#v produced %s", state, ev, got.Command)
			}
		}
	}
}

func TestDispatchPointerZones(t *testing.T) {
	d := NewDispatcher(DefaultKeyMap(), nil)

	tests := []struct {
		name string
		ev   PointerEvent
		want player.Command
	}{
		{"right half", PointerEvent{X: 75, Width: 100}, player.CommandAdvance},
		{"left half", PointerEvent{X: 10, Width: 100}, player.CommandRetreat},
		{"first cell of right half", PointerEvent{X: 50, Width: 100}, player.CommandAdvance},
		{"last cell of left half", PointerEvent{X: 49, Width: 100}, player.CommandRetreat},
		{"center cell of odd width", PointerEvent{X: 40, Width: 81}, player.CommandRetreat},
		{"just right of odd midpoint", PointerEvent{X: 41, Width: 81}, player.CommandAdvance},
		{"on a control", PointerEvent{X: 90, Width: 100, OnControl: true}, player.CommandNone},
		{"unknown width", PointerEvent{X: 10, Width: 0}, player.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Dispatch(player.StatePlaying, tt.ev); got.Command != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got.Command)
			}
		})
	}
}

func TestDispatchControls(t *testing.T) {
	prompt := &promptStub{}
	d := NewDispatcher(DefaultKeyMap(), prompt)

	if got := d.Dispatch(player.StateClosed, ControlEvent{Action: ActionSubmit}); got.Command != player.CommandOpen {
		t.Errorf("Submit while closed: expected open, got %s", got.Command)
	}
	if got := d.Dispatch(player.StatePlaying, ControlEvent{Action: ActionSubmit}); got.OK() {
		t.Errorf("Submit while playing: expected nothing, got %s", got.Command)
	}

	got := d.Dispatch(player.StateClosed, ControlEvent{Action: ActionSuggestion, Prompt: "Our year"})
	if got.Command != player.CommandOpen {
		t.Errorf("Suggestion: expected open, got %s", got.Command)
	}
	if prompt.text != "Our year" {
		t.Errorf("Suggestion: expected prompt to be set, got %q", prompt.text)
	}

	d.Dispatch(player.StateLoading, ControlEvent{Action: ActionSuggestion, Prompt: "ignored"})
	if prompt.sets != 1 {
		t.Errorf("Suggestion while loading wrote the prompt")
	}

	if got := d.Dispatch(player.StatePlaying, ControlEvent{Action: ActionReplay}); got.Command != player.CommandReplay {
		t.Errorf("Replay: expected replay, got %s", got.Command)
	}
	if got := d.Dispatch(player.StatePlaying, ControlEvent{Action: ActionClose}); got.Command != player.CommandClose {
		t.Errorf("Close: expected close, got %s", got.Command)
	}
}
