package models

import "time"

const (
	// MinTarget is the smallest value a target can take.
	MinTarget = 1
	// MaxTarget is the largest value a target can take.
	MaxTarget = 100
)

// SessionStatus represents the lifecycle state of a recorded game session.
type SessionStatus string

const (
	// SessionActive indicates the game is still awaiting guesses.
	SessionActive SessionStatus = "active"
	// SessionWon indicates a guess matched the target.
	SessionWon SessionStatus = "won"
	// SessionAborted indicates the input stream ended or the player quit before winning.
	SessionAborted SessionStatus = "aborted"
)

// Valid returns true if the status is a known value.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionActive, SessionWon, SessionAborted:
		return true
	default:
		return false
	}
}

// Session is a finished or in-progress game as persisted in history.
type Session struct {
	// ID is the unique identifier for this session.
	ID string `json:"id" yaml:"id"`
	// Target is the secret value for this session.
	Target uint32 `json:"target" yaml:"target"`
	// Status is the current state of the session.
	Status SessionStatus `json:"status" yaml:"status"`
	// Attempts counts the guesses that parsed as numbers.
	Attempts int `json:"attempts" yaml:"attempts"`
	// StartedAt is when the target was drawn.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	// FinishedAt is when the session was won or aborted.
	FinishedAt *time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
}

// Guess is one line of player input as persisted in history.
type Guess struct {
	SessionID string    `json:"session_id" yaml:"session_id"`
	Seq       int       `json:"seq" yaml:"seq"`
	Raw       string    `json:"raw" yaml:"raw"`
	Value     *uint32   `json:"value,omitempty" yaml:"value,omitempty"`
	Outcome   Outcome   `json:"outcome" yaml:"outcome"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Stats aggregates history across sessions.
type Stats struct {
	Played       int     `json:"played" yaml:"played"`
	Won          int     `json:"won" yaml:"won"`
	BestAttempts int     `json:"best_attempts" yaml:"best_attempts"`
	AvgAttempts  float64 `json:"avg_attempts" yaml:"avg_attempts"`
}
