// Package analysis computes statistics over recorded move logs.
package analysis

import (
	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/notation"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// SessionSummary contains statistics for a single session.
type SessionSummary struct {
	SessionID         string  `json:"session_id"`
	Size              int     `json:"size"`
	Solved            bool    `json:"solved"`
	DurationMs        int64   `json:"duration_ms"`
	TotalMoves        int     `json:"total_moves"`
	OptimizedMoves    int     `json:"optimized_moves"`
	Efficiency        float64 `json:"efficiency"`
	TPS               float64 `json:"tps"`
	LongestPauseMs    int64   `json:"longest_pause_ms"`
	PauseCountOver    int     `json:"pause_count_over_threshold"`
	AvgMoveDurationMs float64 `json:"avg_move_duration_ms"`
}

// PauseThresholdMs is the gap between moves counted as a pause.
const PauseThresholdMs = 1500

// PauseInfo is a pause between two recorded moves.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// Summarize computes the summary of a session from its move records.
func Summarize(s storage.Session, records []storage.MoveRecord) (SessionSummary, error) {
	moves, err := storage.ToMoves(records)
	if err != nil {
		return SessionSummary{}, err
	}

	sum := SessionSummary{
		SessionID:         s.SessionID,
		Size:              s.Size,
		Solved:            s.Solved,
		DurationMs:        s.Duration().Milliseconds(),
		TotalMoves:        len(moves),
		OptimizedMoves:    len(notation.Simplify(moves)),
		LongestPauseMs:    FindLongestPause(records),
		PauseCountOver:    len(AnalyzePauses(records, PauseThresholdMs)),
		AvgMoveDurationMs: CalculateAvgMoveDuration(records),
	}
	if sum.TotalMoves > 0 {
		sum.Efficiency = float64(sum.OptimizedMoves) / float64(sum.TotalMoves)
	}
	sum.TPS = CalculateTPS(len(moves), sum.DurationMs)

	return sum, nil
}

// AnalyzePauses finds all gaps of at least thresholdMs between moves.
func AnalyzePauses(records []storage.MoveRecord, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(records); i++ {
		gap := records[i].TsMs - records[i-1].TsMs
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
				TsMs:           records[i-1].TsMs,
			})
		}
	}

	return pauses
}

// CalculateTPS returns turns per second.
func CalculateTPS(moveCount int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moveCount) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration returns the average time between moves.
func CalculateAvgMoveDuration(records []storage.MoveRecord) float64 {
	if len(records) < 2 {
		return 0
	}

	totalGap := records[len(records)-1].TsMs - records[0].TsMs
	return float64(totalGap) / float64(len(records)-1)
}

// FindLongestPause returns the longest gap between consecutive moves.
func FindLongestPause(records []storage.MoveRecord) int64 {
	var longest int64

	for i := 1; i < len(records); i++ {
		gap := records[i].TsMs - records[i-1].TsMs
		if gap > longest {
			longest = gap
		}
	}

	return longest
}

// MovementProfile counts how faces and modifiers are used.
type MovementProfile struct {
	FaceCounts     map[nxcube.Face]int     `json:"face_counts"`
	ModifierCounts map[nxcube.Modifier]int `json:"modifier_counts"`
	MostUsedFace   nxcube.Face             `json:"most_used_face"`
	FacePairs      map[string]int          `json:"face_pairs"` // "RU" -> count
}

// AnalyzeMovementProfile counts face and modifier usage.
func AnalyzeMovementProfile(moves []nxcube.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts:     make(map[nxcube.Face]int),
		ModifierCounts: make(map[nxcube.Modifier]int),
		FacePairs:      make(map[string]int),
	}

	for i, m := range moves {
		profile.FaceCounts[m.Face]++
		profile.ModifierCounts[m.Modifier]++

		if i > 0 {
			profile.FacePairs[moves[i-1].Face.String()+m.Face.String()]++
		}
	}

	// Iterate in face order so ties resolve the same way every time.
	maxFaceCount := 0
	for _, f := range nxcube.Faces {
		if c := profile.FaceCounts[f]; c > maxFaceCount {
			maxFaceCount = c
			profile.MostUsedFace = f
		}
	}

	return profile
}
