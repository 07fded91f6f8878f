package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/guess/internal/game"
	"github.com/ShayCichocki/guess/pkg/models"
)

// ErrAborted is returned by Run when the player quits before winning.
var ErrAborted = errors.New("game aborted")

// maxScrollback bounds the number of guess lines kept on screen.
const maxScrollback = 12

// Options controls the TUI presentation.
type Options struct {
	RevealSecret bool
	// AccentColor is a lipgloss color for the title and prompt. Empty keeps the default.
	AccentColor string
}

// entry is one evaluated guess shown in the scrollback.
type entry struct {
	raw     string
	outcome models.Outcome
}

// GameApp is the bubbletea model for one game session.
type GameApp struct {
	session *game.Session
	opts    Options

	input  *InputField
	footer *Footer
	width  int

	entries  []entry
	won      bool
	quitting bool
	aborted  bool

	titleStyle  lipgloss.Style
	secretStyle lipgloss.Style
	rawStyle    lipgloss.Style
	smallStyle  lipgloss.Style
	bigStyle    lipgloss.Style
	winStyle    lipgloss.Style
}

// NewGameApp creates a model that plays session.
func NewGameApp(session *game.Session, opts Options) *GameApp {
	accent := lipgloss.Color("39")
	if opts.AccentColor != "" {
		accent = lipgloss.Color(opts.AccentColor)
	}

	input := NewInputField()
	input.SetAccent(accent)

	return &GameApp{
		session: session,
		opts:    opts,
		input:   input,
		footer:  NewFooter(),

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),
		secretStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true),
		rawStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		smallStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")), // Yellow
		bigStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")), // Red
		winStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")). // Green
			Bold(true),
	}
}

// Init implements tea.Model.
func (a *GameApp) Init() tea.Cmd {
	return a.input.Focus()
}

// Update implements tea.Model.
func (a *GameApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		width := min(msg.Width, 60)
		a.input.SetWidth(width)
		a.footer.SetWidth(width)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if !a.won {
				a.session.Abort()
				a.aborted = true
			}
			a.quitting = true
			return a, tea.Quit
		}
		if a.won {
			a.quitting = true
			return a, tea.Quit
		}

	case GuessSubmittedMsg:
		return a.submit(msg.Raw)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit evaluates a guess. Invalid input produces no scrollback line.
func (a *GameApp) submit(raw string) (tea.Model, tea.Cmd) {
	r, err := a.session.Submit(raw)
	if err != nil {
		return a, nil
	}
	a.footer.SetAttempts(r.Attempt)

	if r.Outcome == models.OutcomeInvalid {
		return a, nil
	}

	a.entries = append(a.entries, entry{raw: strings.TrimSpace(raw), outcome: r.Outcome})
	if len(a.entries) > maxScrollback {
		a.entries = a.entries[len(a.entries)-maxScrollback:]
	}

	if r.Outcome == models.OutcomeEqual {
		a.won = true
		a.footer.SetWon(true)
		a.input.Blur()
	}
	return a, nil
}

// View implements tea.Model.
func (a *GameApp) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.titleStyle.Render(fmt.Sprintf("Guess the number (%d-%d)", models.MinTarget, models.MaxTarget)))
	b.WriteString("\n")
	if a.opts.RevealSecret {
		b.WriteString(a.secretStyle.Render(fmt.Sprintf("The secret number is: %d", a.session.Target())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, e := range a.entries {
		b.WriteString(a.rawStyle.Render(fmt.Sprintf("You guess: %-6s", e.raw)))
		b.WriteString(" ")
		b.WriteString(a.outcomeStyle(e.outcome).Render(e.outcome.Feedback()))
		b.WriteString("\n")
	}
	if len(a.entries) > 0 {
		b.WriteString("\n")
	}

	if !a.won {
		b.WriteString(a.input.View())
		b.WriteString("\n")
	}
	b.WriteString(a.footer.View())
	b.WriteString("\n")
	return b.String()
}

func (a *GameApp) outcomeStyle(o models.Outcome) lipgloss.Style {
	switch o {
	case models.OutcomeLess:
		return a.smallStyle
	case models.OutcomeGreater:
		return a.bigStyle
	default:
		return a.winStyle
	}
}

// Won reports whether the session was won.
func (a *GameApp) Won() bool {
	return a.won
}

// Aborted reports whether the player quit before winning.
func (a *GameApp) Aborted() bool {
	return a.aborted
}

// Run plays session in a full-screen program until the player wins or quits.
// It returns ErrAborted if the player quit first.
func Run(session *game.Session, opts Options, progOpts ...tea.ProgramOption) error {
	app := NewGameApp(session, opts)
	final, err := tea.NewProgram(app, progOpts...).Run()
	if err != nil {
		session.Abort()
		return fmt.Errorf("run tui: %w", err)
	}
	m, ok := final.(*GameApp)
	if ok && m.Won() {
		return nil
	}
	if !ok || !m.Aborted() {
		// The program ended without Ctrl+C, e.g. on a signal.
		session.Abort()
	}
	return ErrAborted
}
