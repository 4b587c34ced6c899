package storage

import (
	"fmt"

	"github.com/SeamusWaldron/nxcube"
)

// ReplaySession rebuilds the final cube of a session by applying its
// scramble and then its recorded moves to a fresh engine.
func ReplaySession(db *DB, sessionID string, opts ...nxcube.Option) (*nxcube.Engine, error) {
	session, err := NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return nil, err
	}

	engine, err := nxcube.New(session.Size, opts...)
	if err != nil {
		return nil, err
	}

	if session.ScrambleText != nil {
		if err := engine.ApplyNotation(*session.ScrambleText); err != nil {
			return nil, fmt.Errorf("session %s scramble: %w", sessionID, err)
		}
	}

	records, err := NewMoveRepository(db).GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	moves, err := ToMoves(records)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	engine.Apply(moves...)

	return engine, nil
}
