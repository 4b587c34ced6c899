package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/nxcube"
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrSessionNotFound is returned when a session ID does not exist.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session is a recorded practice session on a cube of one size.
type Session struct {
	SessionID    string
	Size         int
	ScrambleText *string
	StartedAt    time.Time
	EndedAt      *time.Time
	Solved       bool
	Notes        *string
}

// Duration returns the session length, or zero while it is still open.
func (s Session) Duration() time.Duration {
	if s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db  *DB
	now func() time.Time
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

// Create starts a new session and returns its ID.
func (r *SessionRepository) Create(size int, scramble, notes string) (string, error) {
	if size < nxcube.MinSize {
		return "", &nxcube.ConfigurationError{Field: "size", Value: size, Reason: fmt.Sprintf("must be at least %d", nxcube.MinSize)}
	}

	id := uuid.New().String()
	startedAt := r.now().UTC()

	var scramblePtr, notesPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, size, scramble_text, started_at, notes)
		VALUES (?, ?, ?, ?, ?)
	`, id, size, scramblePtr, startedAt.Format(timeLayout), notesPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End closes a session and records whether the cube finished solved.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	endedAt := r.now().UTC()

	result, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(timeLayout), solved, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	return nil
}

const sessionColumns = `session_id, size, scramble_text, started_at, ended_at, solved, notes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	if err := row.Scan(&s.SessionID, &s.Size, &s.ScrambleText, &startedAtStr, &endedAtStr, &s.Solved, &s.Notes); err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(timeLayout, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(timeLayout, endedAtStr.String)
		s.EndedAt = &t
	}

	return &s, nil
}

// Get retrieves a session by ID. It returns ErrSessionNotFound when the ID
// is unknown.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE session_id = ?
	`, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// Last retrieves the most recent session.
func (r *SessionRepository) Last() (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT ` + sessionColumns + `
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its moves.
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
