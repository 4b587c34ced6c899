package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/analysis"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-id]",
	Short: "Show statistics for recorded sessions",
	Long: `Show move statistics for one session, or the most frequent repeated move
sequences across recent sessions when no session is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

var (
	statsLimit int
	statsMinN  int
	statsMaxN  int
	statsTopK  int
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVarP(&statsLimit, "limit", "l", 50, "Number of recent sessions to mine")
	statsCmd.Flags().IntVar(&statsMinN, "min", 4, "Shortest sequence length to mine")
	statsCmd.Flags().IntVar(&statsMaxN, "max", 8, "Longest sequence length to mine")
	statsCmd.Flags().IntVar(&statsTopK, "top", 5, "Sequences to show per length")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	moveRepo := storage.NewMoveRepository(db)

	if len(args) == 1 {
		session, err := storage.NewSessionRepository(db).Get(args[0])
		if err != nil {
			return err
		}
		records, err := moveRepo.GetBySession(session.SessionID)
		if err != nil {
			return err
		}
		return printSessionStats(out, *session, records)
	}

	sessions, err := storage.NewSessionRepository(db).List(statsLimit)
	if err != nil {
		return err
	}

	logs := make(map[string][]nxcube.Move, len(sessions))
	for _, s := range sessions {
		records, err := moveRepo.GetBySession(s.SessionID)
		if err != nil {
			return err
		}
		moves, err := storage.ToMoves(records)
		if err != nil {
			return err
		}
		logs[s.SessionID] = moves
	}

	report := analysis.MineSessions(logs, statsMinN, statsMaxN, statsTopK)
	if len(report.TopNGrams) == 0 {
		fmt.Fprintf(out, "No repeated sequences in %d sessions.\n", len(sessions))
		return nil
	}

	lengths := make([]int, 0, len(report.TopNGrams))
	for n := range report.TopNGrams {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)

	fmt.Fprintf(out, "Repeated sequences across %d sessions\n", len(sessions))
	for _, n := range lengths {
		fmt.Fprintf(out, "\n%d moves:\n", n)
		for _, ng := range report.TopNGrams[n] {
			fmt.Fprintf(out, "  %4dx  %s\n", ng.Count, ng.Sequence)
		}
	}
	return nil
}

func printSessionStats(out io.Writer, s storage.Session, records []storage.MoveRecord) error {
	sum, err := analysis.Summarize(s, records)
	if err != nil {
		return err
	}
	moves, err := storage.ToMoves(records)
	if err != nil {
		return err
	}
	profile := analysis.AnalyzeMovementProfile(moves)

	fmt.Fprintf(out, "Session:        %s (%dx%d)\n", sum.SessionID, sum.Size, sum.Size)
	fmt.Fprintf(out, "Solved:         %t\n", sum.Solved)
	fmt.Fprintf(out, "Duration:       %s\n", (time.Duration(sum.DurationMs) * time.Millisecond).String())
	fmt.Fprintf(out, "Moves:          %d (%d after merging)\n", sum.TotalMoves, sum.OptimizedMoves)
	fmt.Fprintf(out, "Efficiency:     %.0f%%\n", sum.Efficiency*100)
	fmt.Fprintf(out, "TPS:            %.2f\n", sum.TPS)
	fmt.Fprintf(out, "Longest pause:  %dms (%d over %dms)\n", sum.LongestPauseMs, sum.PauseCountOver, analysis.PauseThresholdMs)
	if sum.TotalMoves > 0 {
		fmt.Fprintf(out, "Most used face: %s\n", profile.MostUsedFace)
		fmt.Fprint(out, "Face counts:   ")
		for _, f := range nxcube.Faces {
			fmt.Fprintf(out, " %s=%d", f, profile.FaceCounts[f])
		}
		fmt.Fprintln(out)
	}
	return nil
}
