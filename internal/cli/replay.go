package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/notation"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Rebuild a recorded session from its scramble and moves and print the final
cube.

Usage:
  nxcube replay <session-id>    # Replay a specific session
  nxcube replay --last          # Replay the most recent session
  nxcube replay --last --step   # Step through the moves one at a time`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

var (
	replayLast bool
	replayStep bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent session")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves interactively")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !replayLast {
		return errors.New("give a session ID or --last")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	var session *storage.Session
	if len(args) == 1 {
		session, err = sessions.Get(args[0])
	} else {
		session, err = sessions.Last()
	}
	if err != nil {
		return err
	}

	if replayStep {
		records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
		if err != nil {
			return err
		}
		moves, err := storage.ToMoves(records)
		if err != nil {
			return err
		}
		model, err := newReplayModel(session, moves)
		if err != nil {
			return err
		}
		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("replay error: %w", err)
		}
		return nil
	}

	e, err := storage.ReplaySession(db, session.SessionID, nxcube.WithLogger(newLogger()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session:  %s\n", session.SessionID)
	fmt.Fprintf(out, "Size:     %d\n", session.Size)
	fmt.Fprintf(out, "Started:  %s\n", session.StartedAt.Local().Format(time.RFC3339))
	if session.ScrambleText != nil {
		fmt.Fprintf(out, "Scramble: %s\n", *session.ScrambleText)
	}
	history := e.History()
	if session.ScrambleText != nil {
		scramble, _ := nxcube.ParseMoves(*session.ScrambleText)
		history = history[len(scramble):]
	}
	fmt.Fprintf(out, "Moves:    %d\n", len(history))
	if len(history) > 0 {
		fmt.Fprintf(out, "Solution: %s\n", nxcube.FormatMoves(notation.Simplify(history)))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, e.String())
	fmt.Fprintf(out, "\n%s\n", solvedLabel(e.IsSolved()))

	return nil
}

// Replay model
type replayModel struct {
	session  *storage.Session
	engine   *nxcube.Engine
	moves    []nxcube.Move
	index    int
	quitting bool
}

func newReplayModel(session *storage.Session, moves []nxcube.Move) (*replayModel, error) {
	e, err := nxcube.New(session.Size)
	if err != nil {
		return nil, err
	}
	m := &replayModel{session: session, engine: e, moves: moves}
	if err := m.reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// reset returns to the scrambled starting position.
func (m *replayModel) reset() error {
	m.engine.Reset()
	m.index = 0
	if m.session.ScrambleText == nil {
		return nil
	}
	return m.engine.ApplyNotation(*m.session.ScrambleText)
}

func (m *replayModel) Init() tea.Cmd {
	return nil
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case " ", "n", "right":
		if m.index < len(m.moves) {
			m.engine.ApplyMove(m.moves[m.index])
			m.index++
		}

	case "p", "left":
		if m.index > 0 {
			m.index--
			m.engine.ApplyMove(m.moves[m.index].Inverse())
		}

	case "r":
		_ = m.reset()

	case "e":
		for m.index < len(m.moves) {
			m.engine.ApplyMove(m.moves[m.index])
			m.index++
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("nxcube Session Replay"))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("Session %s  Move %d/%d", m.session.SessionID, m.index, len(m.moves))))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.engine))
	b.WriteString("\n")
	b.WriteString(solvedLabel(m.engine.IsSolved()))
	b.WriteString("\n")

	if m.index > 0 {
		b.WriteString(moveStyle.Render(recentMoves(m.moves[:m.index], 20)))
		b.WriteString("\n")
	}
	if m.index < len(m.moves) {
		next := m.moves[m.index]
		b.WriteString(statusStyle.Render(fmt.Sprintf("Next: %s (%s)", next, notation.Describe(next))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("SPACE/n=next  p=previous  e=end  r=restart  q=quit"))
	b.WriteString("\n")

	return b.String()
}
