package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/notation"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply moves in standard notation (for example "R U R' U'") to a solved cube,
optionally after a scramble, and print the resulting cube.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var invertCmd = &cobra.Command{
	Use:   "invert <moves>",
	Short: "Print the inverse of a move sequence",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInvert,
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify <moves>",
	Short: "Merge consecutive turns of the same face",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSimplify,
}

var (
	applySize     int
	applyScramble string
	applyColor    bool
	applyDescribe bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(invertCmd)
	rootCmd.AddCommand(simplifyCmd)
	applyCmd.Flags().IntVarP(&applySize, "size", "n", 0, "Cube size (default from config)")
	applyCmd.Flags().StringVar(&applyScramble, "scramble", "", "Scramble to apply first")
	applyCmd.Flags().BoolVar(&applyColor, "color", false, "Draw the cube with colored stickers")
	applyCmd.Flags().BoolVar(&applyDescribe, "describe", false, "Spell out each move")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	size := cfg.Size
	if applySize != 0 {
		size = applySize
	}

	e, err := nxcube.New(size, nxcube.WithLogger(newLogger()))
	if err != nil {
		return err
	}

	if err := e.ApplyNotation(applyScramble); err != nil {
		return fmt.Errorf("scramble: %w", err)
	}

	moves, err := nxcube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	e.Apply(moves...)

	out := cmd.OutOrStdout()
	if applyDescribe {
		for i, m := range moves {
			fmt.Fprintf(out, "%3d. %-3s %s\n", i+1, m, notation.Describe(m))
		}
		fmt.Fprintln(out)
	}
	printCube(cmd, e, applyColor)
	fmt.Fprintf(out, "\nMoves: %d  %s\n", len(moves), solvedLabel(e.IsSolved()))
	return nil
}

func runInvert(cmd *cobra.Command, args []string) error {
	moves, err := nxcube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), nxcube.FormatMoves(nxcube.InvertMoves(moves)))
	return nil
}

func runSimplify(cmd *cobra.Command, args []string) error {
	s, err := notation.SimplifyString(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}
