package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ShayCichocki/guess/pkg/models"
)

// LoopOptions controls what the line loop prints besides feedback.
type LoopOptions struct {
	// RevealSecret prints the target before the first prompt.
	RevealSecret bool
	// EchoGuess repeats each raw input line back to the player.
	EchoGuess bool
	// Color enables colored feedback. Color is also suppressed when the
	// process output is not a terminal.
	Color bool
}

// Loop drives a Session from a line-oriented reader and writer.
type Loop struct {
	in   *bufio.Reader
	out  io.Writer
	opts LoopOptions

	small *color.Color
	big   *color.Color
	win   *color.Color
}

// NewLoop creates a loop that reads guesses from in and writes prompts and
// feedback to out.
func NewLoop(in io.Reader, out io.Writer, opts LoopOptions) *Loop {
	l := &Loop{
		in:    bufio.NewReader(in),
		out:   out,
		opts:  opts,
		small: color.New(color.FgYellow),
		big:   color.New(color.FgRed),
		win:   color.New(color.FgGreen, color.Bold),
	}
	if !opts.Color {
		l.small.DisableColor()
		l.big.DisableColor()
		l.win.DisableColor()
	}
	return l
}

// Run plays s to completion. It returns nil once a guess wins. A read
// failure, including end of input before a win, aborts the session and
// returns an error wrapping ErrInputStream.
func (l *Loop) Run(s *Session) error {
	if l.opts.RevealSecret {
		fmt.Fprintf(l.out, "The secret number is: %d\n", s.Target())
	}

	for !s.State().Terminal() {
		fmt.Fprintln(l.out, "Guess the number")
		fmt.Fprintln(l.out, "Please input your guess.")

		line, err := l.readLine()
		if err != nil {
			s.Abort()
			return fmt.Errorf("%w: %w", ErrInputStream, err)
		}
		if l.opts.EchoGuess {
			fmt.Fprintf(l.out, "You guess: %s\n", line)
		}

		r, err := s.Submit(line)
		if err != nil {
			return fmt.Errorf("submit guess: %w", err)
		}
		l.feedback(r.Outcome)
	}
	return nil
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned before io.EOF is reported.
func (l *Loop) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *Loop) feedback(o models.Outcome) {
	var c *color.Color
	switch o {
	case models.OutcomeLess:
		c = l.small
	case models.OutcomeGreater:
		c = l.big
	case models.OutcomeEqual:
		c = l.win
	default:
		return
	}
	c.Fprintln(l.out, o.Feedback())
}
