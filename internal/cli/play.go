package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/notation"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn a cube interactively in the terminal",
	Long: `Open an interactive cube in the terminal.

Keys:
  u d l r f b   turn that face clockwise
  U D L R F B   turn that face counter-clockwise
  s             scramble
  x             reset
  z             undo
  q             quit

With --save every scramble starts a new recorded session.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var (
	playSize int
	playSave bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playSize, "size", "n", 0, "Cube size (default from config)")
	playCmd.Flags().BoolVar(&playSave, "save", false, "Record sessions to the database")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	size := cfg.Size
	if playSize != 0 {
		size = playSize
	}

	model, err := newPlayModel(size, cfg.ScrambleLength)
	if err != nil {
		return err
	}

	if playSave {
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		model.recorder = storage.NewRecorder(db)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	model.endSession()
	return nil
}

// sessionRecorder is the part of storage.Recorder the TUI needs.
type sessionRecorder interface {
	StartSession(size int, scramble string) (string, error)
	RecordMoves(sessionID string, moves []nxcube.Move) error
	EndSession(sessionID string, solved bool) error
}

// Play model
type playModel struct {
	tracker        *nxcube.Tracker
	scrambleLength int
	scramble       string
	moves          []nxcube.Move
	solvedAfter    int // moves made when the cube was last solved, -1 if never
	recorder       sessionRecorder
	sessionID      string
	err            error
	quitting       bool
}

func newPlayModel(size, scrambleLength int, opts ...nxcube.Option) (*playModel, error) {
	tracker, err := nxcube.NewTracker(size, opts...)
	if err != nil {
		return nil, err
	}
	m := &playModel{
		tracker:        tracker,
		scrambleLength: scrambleLength,
		solvedAfter:    -1,
	}
	tracker.OnSolvedChange(func(solved bool) {
		if solved && m.scramble != "" {
			m.solvedAfter = len(m.moves)
		}
	})
	return m, nil
}

var faceKeys = map[string]nxcube.Move{
	"u": nxcube.U, "U": nxcube.UPrime,
	"d": nxcube.D, "D": nxcube.DPrime,
	"l": nxcube.L, "L": nxcube.LPrime,
	"r": nxcube.R, "R": nxcube.RPrime,
	"f": nxcube.F, "F": nxcube.FPrime,
	"b": nxcube.B, "B": nxcube.BPrime,
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if mv, ok := faceKeys[key.String()]; ok {
		m.turn(mv)
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "s":
		m.endSession()
		m.tracker.Reset()
		m.moves = nil
		m.solvedAfter = -1
		m.scramble = ""
		m.scramble = m.tracker.Scramble(m.scrambleLength)
		m.startSession()

	case "x":
		m.endSession()
		m.tracker.Reset()
		m.moves = nil
		m.scramble = ""
		m.solvedAfter = -1

	case "z":
		if len(m.moves) == 0 {
			return m, nil
		}
		m.moves = m.moves[:len(m.moves)-1]
		if last, ok := m.tracker.Undo(); ok {
			m.record(last.Inverse())
		}
	}

	return m, nil
}

func (m *playModel) turn(mv nxcube.Move) {
	m.moves = append(m.moves, mv)
	m.tracker.ApplyMove(mv)
	m.record(mv)
}

func (m *playModel) startSession() {
	if m.recorder == nil {
		return
	}
	id, err := m.recorder.StartSession(m.tracker.Engine().Size(), m.scramble)
	if err != nil {
		m.err = err
		return
	}
	m.sessionID = id
}

func (m *playModel) record(mv nxcube.Move) {
	if m.recorder == nil || m.sessionID == "" {
		return
	}
	if err := m.recorder.RecordMoves(m.sessionID, []nxcube.Move{mv}); err != nil {
		m.err = err
	}
}

func (m *playModel) endSession() {
	if m.recorder == nil || m.sessionID == "" {
		return
	}
	if err := m.recorder.EndSession(m.sessionID, m.tracker.IsSolved()); err != nil {
		m.err = err
	}
	m.sessionID = ""
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	e := m.tracker.Engine()

	b.WriteString(titleStyle.Render(fmt.Sprintf("nxcube %d×%d×%d", e.Size(), e.Size(), e.Size())))
	b.WriteString("\n\n")
	b.WriteString(renderNet(e))
	b.WriteString("\n")

	if m.scramble != "" {
		b.WriteString(statusStyle.Render("Scramble: " + m.scramble))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("Moves: %d  %s\n", len(m.moves), solvedLabel(m.tracker.IsSolved())))
	if m.solvedAfter >= 0 {
		b.WriteString(solvedStyle.Render(fmt.Sprintf("Solved in %d moves!", m.solvedAfter)))
		b.WriteString("\n")
	}

	if len(m.moves) > 0 {
		b.WriteString(moveStyle.Render(recentMoves(notation.Simplify(m.moves), 20)))
		b.WriteString("\n")
	}
	if m.sessionID != "" {
		b.WriteString(statusStyle.Render("Recording session " + m.sessionID))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("udlrfb=turn  shift=prime  s=scramble  x=reset  z=undo  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// recentMoves formats the last n moves, prefixed by "... " when truncated.
func recentMoves(moves []nxcube.Move, n int) string {
	if len(moves) <= n {
		return nxcube.FormatMoves(moves)
	}
	return "... " + nxcube.FormatMoves(moves[len(moves)-n:])
}
