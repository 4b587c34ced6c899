package server

import (
	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/solver"
)

// Error types returned in APIError.Type.
const (
	ErrTypeInvalidMove    = "invalid_move"
	ErrTypeInvalidConfig  = "invalid_config"
	ErrTypeInvalidRequest = "invalid_request"
	ErrTypeNoScramble     = "no_scramble"
)

// APIError is the body of every error response.
type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// CubeletView is the wire form of one cubelet.
type CubeletView struct {
	ID       string             `json:"id"`
	Class    string             `json:"class"`
	Position [3]float64         `json:"position"`
	Colors   map[string]*string `json:"colors"`
}

// CubeView is the wire form of a cube snapshot.
type CubeView struct {
	Size     int           `json:"size"`
	Solved   bool          `json:"solved"`
	Cubelets []CubeletView `json:"cubelets"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// MovesRequest is the body of POST /api/v1/cube/moves.
type MovesRequest struct {
	Moves string `json:"moves"`
}

// ScrambleRequest is the body of POST /api/v1/cube/scramble.
type ScrambleRequest struct {
	Count *int `json:"count,omitempty"`
}

// ScrambleResponse is returned by POST /api/v1/cube/scramble.
type ScrambleResponse struct {
	Scramble  string   `json:"scramble"`
	SessionID string   `json:"session_id,omitempty"`
	Cube      CubeView `json:"cube"`
}

// ResetRequest is the body of POST /api/v1/cube/reset.
type ResetRequest struct {
	Size *int `json:"size,omitempty"`
}

// NewCubeView converts an engine snapshot to its wire form.
func NewCubeView(size int, solved bool, cubelets []nxcube.Cubelet) CubeView {
	view := CubeView{
		Size:     size,
		Solved:   solved,
		Cubelets: make([]CubeletView, len(cubelets)),
	}
	for i, c := range cubelets {
		x, y, z := c.Position.Coords()
		colors := make(map[string]*string, len(nxcube.Faces))
		for _, f := range nxcube.Faces {
			if col, ok := c.Color(f); ok {
				hex := col.Hex()
				colors[f.String()] = &hex
			} else {
				colors[f.String()] = nil
			}
		}
		view.Cubelets[i] = CubeletView{
			ID:       c.ID,
			Class:    c.Class.String(),
			Position: [3]float64{x, y, z},
			Colors:   colors,
		}
	}
	return view
}

// SolveResponse is returned by POST /api/v1/solve.
type SolveResponse = solver.Response
