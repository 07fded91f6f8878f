package state

import (
	"io"
	"time"

	"github.com/ShayCichocki/guess/pkg/models"
)

// SessionStore handles session-related persistence operations.
type SessionStore interface {
	CreateSession(s *models.Session) error
	GetSession(id string) (*models.Session, error)
	FinishSession(id string, status models.SessionStatus, attempts int, at time.Time) error
	ListSessions(limit int) ([]models.Session, error)
	FindSession(idPrefix string) (*models.Session, error)
}

// GuessStore handles guess-related persistence operations.
type GuessStore interface {
	RecordGuess(g *models.Guess) error
	ListGuesses(sessionID string) ([]models.Guess, error)
}

// Migrator handles database schema migrations.
type Migrator interface {
	// Migrate applies all pending schema migrations.
	Migrate() error
}

// HistoryStore composes everything the CLI needs from a history backend.
type HistoryStore interface {
	io.Closer
	Migrator
	SessionStore
	GuessStore
	Stats() (*models.Stats, error)
}

// Compile-time verification that DB implements all interfaces.
var (
	_ HistoryStore = (*DB)(nil)
	_ Migrator     = (*DB)(nil)
	_ SessionStore = (*DB)(nil)
	_ GuessStore   = (*DB)(nil)
)
