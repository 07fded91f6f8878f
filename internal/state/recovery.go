package state

import (
	"fmt"
	"time"

	"github.com/ShayCichocki/guess/pkg/models"
)

// RecoverInterrupted marks sessions left active by a process that exited
// without finishing them. Sessions started within grace are left alone,
// since another process may still be playing them. Returns the number of
// sessions marked aborted.
func (db *DB) RecoverInterrupted(grace time.Duration) (int, error) {
	active, err := db.ListActiveSessions()
	if err != nil {
		return 0, fmt.Errorf("list active sessions: %w", err)
	}

	cutoff := time.Now().Add(-grace)
	recovered := 0
	for _, s := range active {
		if s.StartedAt.After(cutoff) {
			continue
		}
		attempts, err := db.countValidGuesses(s.ID)
		if err != nil {
			return recovered, err
		}
		if err := db.FinishSession(s.ID, models.SessionAborted, attempts, time.Now()); err != nil {
			return recovered, fmt.Errorf("recover session %s: %w", s.ID, err)
		}
		recovered++
	}
	return recovered, nil
}

func (db *DB) countValidGuesses(sessionID string) (int, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM guesses WHERE session_id = ? AND outcome != ?
	`, sessionID, string(models.OutcomeInvalid)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count guesses: %w", err)
	}
	return n, nil
}
