package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded sessions",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Number of sessions to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet. Start one with: nxcube scramble --save")
		return nil
	}

	moveRepo := storage.NewMoveRepository(db)

	fmt.Fprintf(out, "%-36s  %-4s  %-19s  %5s  %-8s  %s\n", "SESSION", "SIZE", "STARTED", "MOVES", "DURATION", "SOLVED")
	for _, s := range sessions {
		count, err := moveRepo.Count(s.SessionID)
		if err != nil {
			return err
		}

		duration := "-"
		if s.EndedAt != nil {
			duration = s.Duration().Round(time.Second).String()
		}
		solved := "no"
		if s.Solved {
			solved = "yes"
		}

		fmt.Fprintf(out, "%-36s  %-4s  %-19s  %5d  %-8s  %s\n",
			s.SessionID,
			fmt.Sprintf("%dx%d", s.Size, s.Size),
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			count,
			duration,
			solved,
		)
	}

	return nil
}
