package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the navigation bindings
type KeyMap struct {
	Advance key.Binding
	Retreat key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns arrow keys and space for navigation and esc to close
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Advance: key.NewBinding(
			key.WithKeys("right", " ", "space"),
			key.WithHelp("→/space", "next"),
		),
		Retreat: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp returns the bindings shown in the player footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retreat, k.Advance, k.Cancel}
}
