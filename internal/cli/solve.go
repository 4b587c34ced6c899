package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble>",
	Short: "Ask the remote solver for a solution",
	Long: `Send a scramble to the remote solving service and print its solution.

When the service cannot be reached a fixed placeholder solution is printed
instead, marked with method "mock". With --verify the solution is applied to
the scrambled cube to check that it really solves it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

var (
	solveSize   int
	solveURL    string
	solveVerify bool
)

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveSize, "size", "n", 0, "Cube size (default from config)")
	solveCmd.Flags().StringVar(&solveURL, "url", "", "Solver base URL (default from config)")
	solveCmd.Flags().BoolVar(&solveVerify, "verify", false, "Check the solution against the scramble")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	size := cfg.Size
	if solveSize != 0 {
		size = solveSize
	}
	url := cfg.SolverURL
	if solveURL != "" {
		url = solveURL
	}

	moves, err := nxcube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}
	scramble := nxcube.FormatMoves(moves)

	client := solver.New(url, solver.WithTimeout(cfg.SolverTimeout), solver.WithLogger(newLogger()))
	resp := client.SolveOrFallback(context.Background(), solver.Request{Size: size, Scramble: scramble})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Solution: %s\n", resp.Solution)
	fmt.Fprintf(out, "Length:   %d\n", resp.Length)
	fmt.Fprintf(out, "Method:   %s\n", resp.Method)

	if solveVerify {
		ok, err := solver.Verify(size, scramble, resp.Solution)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		fmt.Fprintf(out, "Verified: %t\n", ok)
	}

	return nil
}
