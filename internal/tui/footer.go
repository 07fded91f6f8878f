package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Footer renders the status bar and keyboard hints.
type Footer struct {
	attempts int
	won      bool
	width    int

	successStyle   lipgloss.Style
	hintStyle      lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewFooter creates a new Footer instance.
func NewFooter() *Footer {
	return &Footer{
		successStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("28")).
			Bold(true),

		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		separatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
	}
}

// SetAttempts sets the number of valid guesses shown.
func (f *Footer) SetAttempts(n int) {
	f.attempts = n
}

// SetWon switches the hints to the post-game prompt.
func (f *Footer) SetWon(won bool) {
	f.won = won
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// View renders the footer.
func (f *Footer) View() string {
	sep := f.separatorStyle.Render(" | ")
	attempts := fmt.Sprintf("Attempts: %d", f.attempts)

	var line string
	if f.won {
		line = f.successStyle.Render(attempts) + sep + f.hintStyle.Render("press any key to exit")
	} else {
		line = f.hintStyle.Render(attempts) + sep + f.hintStyle.Render("enter: guess  ctrl+c: quit")
	}
	if f.width > 0 {
		return lipgloss.NewStyle().Width(f.width).Render(line)
	}
	return line
}
