package storage

import (
	"github.com/SeamusWaldron/nxcube"
)

// Recorder records live sessions: one session per scramble, with every
// subsequent move appended to it.
type Recorder struct {
	sessions *SessionRepository
	moves    *MoveRepository
}

// NewRecorder creates a recorder backed by db.
func NewRecorder(db *DB) *Recorder {
	return &Recorder{
		sessions: NewSessionRepository(db),
		moves:    NewMoveRepository(db),
	}
}

// StartSession opens a session for a freshly scrambled cube.
func (r *Recorder) StartSession(size int, scramble string) (string, error) {
	return r.sessions.Create(size, scramble, "")
}

// RecordMoves appends moves to an open session.
func (r *Recorder) RecordMoves(sessionID string, moves []nxcube.Move) error {
	return r.moves.Append(sessionID, moves)
}

// EndSession closes a session.
func (r *Recorder) EndSession(sessionID string, solved bool) error {
	return r.sessions.End(sessionID, solved)
}
