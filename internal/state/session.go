package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ShayCichocki/guess/pkg/models"
)

// Session CRUD operations

// CreateSession inserts a new session row.
func (db *DB) CreateSession(s *models.Session) error {
	_, err := db.Exec(`
		INSERT INTO sessions (id, target, status, attempts, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, s.ID, s.Target, string(s.Status), s.Attempts, formatTime(s.StartedAt))
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID. It returns nil, nil when no row matches.
func (db *DB) GetSession(id string) (*models.Session, error) {
	row := db.QueryRow(`
		SELECT id, target, status, attempts, started_at, finished_at
		FROM sessions WHERE id = ?
	`, id)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

// ErrAmbiguousID is returned by FindSession when a prefix matches several sessions.
var ErrAmbiguousID = errors.New("ambiguous session id")

// FindSession resolves a full session ID or a unique ID prefix, such as the
// short form shown by 'guess history'. It returns nil, nil when nothing matches.
func (db *DB) FindSession(idPrefix string) (*models.Session, error) {
	if idPrefix == "" {
		return nil, nil
	}
	if s, err := db.GetSession(idPrefix); err != nil || s != nil {
		return s, err
	}

	rows, err := db.Query(`
		SELECT id, target, status, attempts, started_at, finished_at
		FROM sessions WHERE substr(id, 1, ?) = ? LIMIT 2
	`, len(idPrefix), idPrefix)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	defer rows.Close()

	var matches []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("find session: %w", err)
		}
		matches = append(matches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousID, idPrefix)
	}
}

// FinishSession records the terminal status and attempt count for a session.
func (db *DB) FinishSession(id string, status models.SessionStatus, attempts int, at time.Time) error {
	if !status.Valid() || status == models.SessionActive {
		return fmt.Errorf("finish session: invalid terminal status %q", status)
	}
	res, err := db.Exec(`
		UPDATE sessions SET status = ?, attempts = ?, finished_at = ?
		WHERE id = ? AND status = ?
	`, string(status), attempts, formatTime(at), id, string(models.SessionActive))
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish session %s: not found or already finished", id)
	}
	return nil
}

// ListSessions returns the most recent sessions first. A limit <= 0 returns all.
func (db *DB) ListSessions(limit int) ([]models.Session, error) {
	query := `
		SELECT id, target, status, attempts, started_at, finished_at
		FROM sessions ORDER BY started_at DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// ListActiveSessions returns sessions whose status is still active.
func (db *DB) ListActiveSessions() ([]models.Session, error) {
	rows, err := db.Query(`
		SELECT id, target, status, attempts, started_at, finished_at
		FROM sessions WHERE status = ? ORDER BY started_at DESC
	`, string(models.SessionActive))
	if err != nil {
		return nil, fmt.Errorf("list active sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("list active sessions: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (*models.Session, error) {
	var s models.Session
	var startedAt string
	var finishedAt sql.NullString
	if err := r.Scan(&s.ID, &s.Target, &s.Status, &s.Attempts, &startedAt, &finishedAt); err != nil {
		return nil, err
	}
	var err error
	if s.StartedAt, err = parseTime(startedAt); err != nil {
		return nil, fmt.Errorf("scan session %s: started_at: %w", s.ID, err)
	}
	if s.FinishedAt, err = parseNullableTime(finishedAt); err != nil {
		return nil, fmt.Errorf("scan session %s: finished_at: %w", s.ID, err)
	}
	return &s, nil
}

// Guess operations

// RecordGuess stores one line of input for a session.
func (db *DB) RecordGuess(g *models.Guess) error {
	var value sql.NullInt64
	if g.Value != nil {
		value = sql.NullInt64{Int64: int64(*g.Value), Valid: true}
	}
	_, err := db.Exec(`
		INSERT INTO guesses (session_id, seq, raw, value, outcome, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, g.SessionID, g.Seq, g.Raw, value, string(g.Outcome), formatTime(g.CreatedAt))
	if err != nil {
		return fmt.Errorf("record guess: %w", err)
	}
	return nil
}

// ListGuesses returns the guesses for a session in submission order.
func (db *DB) ListGuesses(sessionID string) ([]models.Guess, error) {
	rows, err := db.Query(`
		SELECT session_id, seq, raw, value, outcome, created_at
		FROM guesses WHERE session_id = ? ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list guesses: %w", err)
	}
	defer rows.Close()

	var guesses []models.Guess
	for rows.Next() {
		var g models.Guess
		var value sql.NullInt64
		var createdAt string
		if err := rows.Scan(&g.SessionID, &g.Seq, &g.Raw, &value, &g.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("scan guess: %w", err)
		}
		if value.Valid {
			v := uint32(value.Int64)
			g.Value = &v
		}
		t, err := parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan guess %d: created_at: %w", g.Seq, err)
		}
		g.CreatedAt = t
		guesses = append(guesses, g)
	}
	return guesses, rows.Err()
}

// Stats aggregates all recorded sessions. Best and average attempts are
// computed over won sessions only.
func (db *DB) Stats() (*models.Stats, error) {
	row := db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(MIN(CASE WHEN status = ? THEN attempts END), 0),
			COALESCE(AVG(CASE WHEN status = ? THEN attempts END), 0)
		FROM sessions
	`, string(models.SessionWon), string(models.SessionWon), string(models.SessionWon))

	var st models.Stats
	if err := row.Scan(&st.Played, &st.Won, &st.BestAttempts, &st.AvgAttempts); err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}
	return &st, nil
}
