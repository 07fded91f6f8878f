package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GuessSubmittedMsg is sent when the player presses enter.
type GuessSubmittedMsg struct {
	Raw string
}

// InputField is a text input component for entering guesses.
type InputField struct {
	input  textinput.Model
	width  int
	accent lipgloss.Color
}

// NewInputField creates a new InputField.
func NewInputField() *InputField {
	ti := textinput.New()
	ti.Placeholder = "Type a number and press Enter..."
	ti.Focus()
	ti.CharLimit = 12
	ti.Width = 36

	return &InputField{
		input:  ti,
		width:  40,
		accent: lipgloss.Color("39"),
	}
}

// SetWidth sets the width of the input field.
func (f *InputField) SetWidth(width int) {
	f.width = width
	f.input.Width = width - 4 // Account for prompt and padding
}

// SetAccent sets the prompt color.
func (f *InputField) SetAccent(c lipgloss.Color) {
	f.accent = c
}

// Update handles messages for the input field.
func (f *InputField) Update(msg tea.Msg) (*InputField, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		raw := f.input.Value()
		f.input.Reset()
		return f, func() tea.Msg {
			return GuessSubmittedMsg{Raw: raw}
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the input field.
func (f *InputField) View() string {
	promptStyle := lipgloss.NewStyle().
		Foreground(f.accent).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(f.width - 2)

	prompt := promptStyle.Render("> ")
	return boxStyle.Render(prompt + f.input.View())
}

// Value returns the current, unsubmitted text.
func (f *InputField) Value() string {
	return f.input.Value()
}

// Focus sets focus on the input field.
func (f *InputField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the input field.
func (f *InputField) Blur() {
	f.input.Blur()
}
