package input

// Event is a raw input event handed to the dispatcher
type Event interface {
	isEvent()
}

// KeyEvent is a key press, named the way bubbletea names keys ("right",
// "left", " ", "esc", ...)
type KeyEvent struct {
	Key string
}

// String returns the key name so KeyEvent can be matched against bindings
func (k KeyEvent) String() string {
	return k.Key
}

// PointerEvent is a click inside the playback surface
type PointerEvent struct {
	X     int
	Width int
	// OnControl is set when the click landed on an interactive control
	OnControl bool
}

// Action is an explicit control action
type Action int

const (
	// ActionSubmit is the submit button or a confirmed prompt input
	ActionSubmit Action = iota
	// ActionSuggestion is a suggestion shortcut card
	ActionSuggestion
	ActionReplay
	ActionClose
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionSubmit:
		return "submit"
	case ActionSuggestion:
		return "suggestion"
	case ActionReplay:
		return "replay"
	case ActionClose:
		return "close"
	default:
		return "unknown"
	}
}

// ControlEvent is an action triggered by a control of the hosting UI
type ControlEvent struct {
	Action Action
	// Prompt is the text a suggestion card puts into the prompt field
	Prompt string
}

func (KeyEvent) isEvent()     {}
func (PointerEvent) isEvent() {}
func (ControlEvent) isEvent() {}
