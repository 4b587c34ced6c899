package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble and print it with the resulting cube.

The same --seed always produces the same scramble, so a scramble can be shared
and replayed. With --save the scramble opens a new session in the database.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

var (
	scrambleSize   int
	scrambleLength int
	scrambleSeed   uint64
	scrambleSave   bool
	scrambleColor  bool
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleSize, "size", "n", 0, "Cube size (default from config)")
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "l", -1, "Number of moves (default from config)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Record the scramble as a new session")
	scrambleCmd.Flags().BoolVar(&scrambleColor, "color", false, "Draw the cube with colored stickers")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	size := cfg.Size
	if scrambleSize != 0 {
		size = scrambleSize
	}
	length := cfg.ScrambleLength
	if scrambleLength >= 0 {
		length = scrambleLength
	}

	opts := []nxcube.Option{nxcube.WithLogger(newLogger())}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, nxcube.WithRand(rand.New(rand.NewPCG(scrambleSeed, scrambleSeed))))
	}

	e, err := nxcube.New(size, opts...)
	if err != nil {
		return err
	}
	scramble := e.Scramble(length)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, scramble)
	fmt.Fprintln(out)
	printCube(cmd, e, scrambleColor)

	if scrambleSave {
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewSessionRepository(db).Create(size, scramble, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nSaved session %s\n", id)
	}

	return nil
}

// printCube writes the net of e, plain or colored.
func printCube(cmd *cobra.Command, e *nxcube.Engine, color bool) {
	if color {
		fmt.Fprint(cmd.OutOrStdout(), renderNet(e))
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), e.String())
}
