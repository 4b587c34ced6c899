package server

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/solver"
)

// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "healthy",
		Uptime: time.Since(s.startTime).Round(time.Second).String(),
	})
}

// GET /api/v1/cube
func (s *Server) handleGetCube(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view := s.snapshot()
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, view)
}

// POST /api/v1/cube/moves
func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrTypeInvalidRequest, "invalid JSON body")
		return
	}

	moves, err := nxcube.ParseMoves(req.Moves)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, ErrTypeInvalidMove, err.Error())
		return
	}

	// Moves are recorded under mu so the stored order is the applied order.
	s.mu.Lock()
	s.engine.Apply(moves...)
	if s.recorder != nil && s.sessionID != "" && len(moves) > 0 {
		if err := s.recorder.RecordMoves(s.sessionID, moves); err != nil {
			s.logger.Warn("failed to record moves", zap.String("session_id", s.sessionID), zap.Error(err))
		}
		if s.engine.IsSolved() {
			s.endSession(true)
		}
	}
	view := s.snapshot()
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, view)
}

// POST /api/v1/cube/scramble
//
// The cube is reset before scrambling so the returned scramble describes the
// whole state.
func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	var req ScrambleRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrTypeInvalidRequest, "invalid JSON body")
		return
	}

	count := s.scrambleLength
	if req.Count != nil {
		count = *req.Count
	}
	if count < 0 {
		s.writeError(w, http.StatusBadRequest, ErrTypeInvalidRequest, "count must not be negative")
		return
	}

	s.mu.Lock()
	s.endSession(false)
	s.engine.Reset()
	scramble := s.engine.Scramble(count)
	s.scramble = scramble
	size := s.engine.Size()

	resp := ScrambleResponse{Scramble: scramble}
	if s.recorder != nil {
		id, err := s.recorder.StartSession(size, scramble)
		if err != nil {
			s.logger.Warn("failed to start session", zap.Error(err))
		} else {
			s.sessionID = id
			resp.SessionID = id
		}
	}
	resp.Cube = s.snapshot()
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, resp)
}

// POST /api/v1/cube/reset
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, ErrTypeInvalidRequest, "invalid JSON body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.engine.Size()
	if req.Size != nil {
		size = *req.Size
	}

	if size != s.engine.Size() {
		if err := s.checkSize(size); err != nil {
			s.writeError(w, http.StatusBadRequest, ErrTypeInvalidConfig, err.Error())
			return
		}
		engine, err := s.newEngine(size)
		if err != nil {
			if errors.Is(err, nxcube.ErrConfiguration) {
				s.writeError(w, http.StatusBadRequest, ErrTypeInvalidConfig, err.Error())
				return
			}
			s.writeError(w, http.StatusInternalServerError, "internal", err.Error())
			return
		}
		s.endSession(false)
		s.engine = engine
	} else {
		s.endSession(false)
		s.engine.Reset()
	}

	s.scramble = ""
	s.writeJSON(w, http.StatusOK, s.snapshot())
}

// POST /api/v1/solve
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	req := solver.Request{Size: s.engine.Size(), Scramble: s.scramble}
	s.mu.Unlock()

	if req.Scramble == "" {
		s.writeError(w, http.StatusConflict, ErrTypeNoScramble, "the cube has not been scrambled")
		return
	}

	s.writeJSON(w, http.StatusOK, s.solver.SolveOrFallback(r.Context(), req))
}
