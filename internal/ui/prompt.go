package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptField is the prompt input of the main surface
type promptField struct {
	input textinput.Model
}

func newPromptField(placeholder string) *promptField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Prompt = "› "
	ti.Focus()
	return &promptField{input: ti}
}

// SetPrompt implements player.PromptField
func (p *promptField) SetPrompt(text string) {
	p.input.SetValue(text)
	p.input.CursorEnd()
}

// ClearPrompt implements player.PromptField
func (p *promptField) ClearPrompt() {
	p.input.Reset()
}

func (p *promptField) Value() string {
	return p.input.Value()
}

func (p *promptField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *promptField) View() string {
	return p.input.View()
}

func (p *promptField) setWidth(w int) {
	p.input.Width = w
}
