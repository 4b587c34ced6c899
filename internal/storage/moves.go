package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxcube"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Face      string
	Modifier  int
	Notation  string
}

// Move converts the record back to an engine move.
func (m MoveRecord) Move() (nxcube.Move, error) {
	return nxcube.ParseMove(m.Notation)
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db  *DB
	now func() time.Time
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db, now: time.Now}
}

// CreateBatch appends moves to a session in a single transaction, numbering
// them from startIndex.
func (r *MoveRepository) CreateBatch(sessionID string, startIndex int, moves []nxcube.Move) error {
	tsMs := r.now().UnixMilli()
	return r.db.Transaction(func(tx *sql.Tx) error {
		return insertMoves(tx, sessionID, startIndex, tsMs, moves)
	})
}

// Append adds moves after the last recorded move of a session. The index
// lookup and the inserts share one transaction.
func (r *MoveRepository) Append(sessionID string, moves []nxcube.Move) error {
	tsMs := r.now().UnixMilli()
	return r.db.Transaction(func(tx *sql.Tx) error {
		var maxIndex int
		err := tx.QueryRow(`
			SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
		`, sessionID).Scan(&maxIndex)
		if err != nil {
			return fmt.Errorf("failed to get max move index: %w", err)
		}
		return insertMoves(tx, sessionID, maxIndex+1, tsMs, moves)
	})
}

func insertMoves(tx *sql.Tx, sessionID string, startIndex int, tsMs int64, moves []nxcube.Move) error {
	for i, move := range moves {
		_, err := tx.Exec(`
			INSERT INTO moves (session_id, move_index, ts_ms, face, modifier, notation)
			VALUES (?, ?, ?, ?, ?, ?)
		`, sessionID, startIndex+i, tsMs, move.Face.String(), int(move.Modifier), move.Notation())
		if err != nil {
			return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
		}
	}
	return nil
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, face, modifier, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Face, &m.Modifier, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// NextIndex returns the next move index for a session.
func (r *MoveRepository) NextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts move records to engine moves.
func ToMoves(records []MoveRecord) ([]nxcube.Move, error) {
	moves := make([]nxcube.Move, len(records))
	for i, r := range records {
		m, err := r.Move()
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, err)
		}
		moves[i] = m
	}
	return moves, nil
}
