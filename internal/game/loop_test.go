package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ShayCichocki/guess/pkg/models"
)

// feedbackLines keeps only the feedback lines from loop output.
func feedbackLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		switch line {
		case "Too small!", "Too big!", "You win!":
			lines = append(lines, line)
		}
	}
	return lines
}

func TestLoop_WinScenario(t *testing.T) {
	var out bytes.Buffer
	loop := NewLoop(strings.NewReader("10\n90\n50\n"), &out, LoopOptions{})
	s := NewSession(WithTarget(50))

	if err := loop.Run(s); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if s.State() != StateWon {
		t.Errorf("expected state %q, got %q", StateWon, s.State())
	}

	want := []string{"Too small!", "Too big!", "You win!"}
	if diff := cmp.Diff(want, feedbackLines(out.String())); diff != "" {
		t.Errorf("feedback mismatch (-want +got):\n%s", diff)
	}
}

func TestLoop_InvalidInputIgnored(t *testing.T) {
	var out bytes.Buffer
	loop := NewLoop(strings.NewReader("abc\n7\n"), &out, LoopOptions{})
	s := NewSession(WithTarget(7))

	if err := loop.Run(s); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := []string{"You win!"}
	if diff := cmp.Diff(want, feedbackLines(out.String())); diff != "" {
		t.Errorf("feedback mismatch (-want +got):\n%s", diff)
	}
	if got := strings.Count(out.String(), "Please input your guess."); got != 2 {
		t.Errorf("expected 2 prompts, got %d", got)
	}
	if s.Attempts() != 1 {
		t.Errorf("expected 1 attempt, got %d", s.Attempts())
	}
}

func TestLoop_FullTranscript(t *testing.T) {
	var out bytes.Buffer
	loop := NewLoop(strings.NewReader("abc\r\n7\n"), &out, LoopOptions{RevealSecret: true, EchoGuess: true})
	s := NewSession(WithTarget(7))

	if err := loop.Run(s); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := strings.Join([]string{
		"The secret number is: 7",
		"Guess the number",
		"Please input your guess.",
		"You guess: abc",
		"Guess the number",
		"Please input your guess.",
		"You guess: 7",
		"You win!",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestLoop_HiddenSecret(t *testing.T) {
	var out bytes.Buffer
	loop := NewLoop(strings.NewReader("7\n"), &out, LoopOptions{RevealSecret: false})

	if err := loop.Run(NewSession(WithTarget(7))); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.Contains(out.String(), "secret") {
		t.Errorf("expected no secret line, got %q", out.String())
	}
}

func TestLoop_FinalLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	loop := NewLoop(strings.NewReader("7"), &out, LoopOptions{})

	if err := loop.Run(NewSession(WithTarget(7))); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestLoop_EOFBeforeWin(t *testing.T) {
	var out bytes.Buffer
	obs := &recordingObserver{}
	loop := NewLoop(strings.NewReader("1\n2\n"), &out, LoopOptions{})
	s := NewSession(WithTarget(50), WithObserver(obs))

	err := loop.Run(s)
	if !errors.Is(err, ErrInputStream) {
		t.Fatalf("expected ErrInputStream, got %v", err)
	}
	if s.State() != StateAwaitingInput {
		t.Errorf("expected state %q, got %q", StateAwaitingInput, s.State())
	}
	if len(obs.ended) != 1 || obs.ended[0] != models.SessionAborted {
		t.Errorf("expected one aborted end event, got %v", obs.ended)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestLoop_ReadError(t *testing.T) {
	var out bytes.Buffer
	loop := NewLoop(failingReader{}, &out, LoopOptions{})

	err := loop.Run(NewSession(WithTarget(50)))
	if !errors.Is(err, ErrInputStream) {
		t.Fatalf("expected ErrInputStream, got %v", err)
	}
	if !strings.Contains(err.Error(), "device gone") {
		t.Errorf("expected underlying error in message, got %q", err.Error())
	}
}

func TestLoop_AlreadyWonSession(t *testing.T) {
	s := NewSession(WithTarget(5))
	if _, err := s.Submit("5"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	var out bytes.Buffer
	if err := NewLoop(strings.NewReader(""), &out, LoopOptions{}).Run(s); err != nil {
		t.Fatalf("expected nil error for finished session, got %v", err)
	}
	if strings.Contains(out.String(), "Please input") {
		t.Errorf("expected no prompt for finished session, got %q", out.String())
	}
}
