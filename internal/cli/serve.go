package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/nxcube/internal/server"
	"github.com/SeamusWaldron/nxcube/internal/solver"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cube over an HTTP API",
	Long: `Run an HTTP API that holds one cube and lets a renderer read its state,
apply moves, scramble, reset and request a solution.

With --record every scramble opens a session in the database and the moves
that follow are appended to it.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr   string
	serveSize   int
	serveRecord bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().IntVarP(&serveSize, "size", "n", 0, "Initial cube size (default from config)")
	serveCmd.Flags().BoolVar(&serveRecord, "record", false, "Record scrambles and moves to the database")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()
	if !verbose {
		logger, err = zap.NewProduction()
		if err != nil {
			return err
		}
	}
	defer logger.Sync()

	addr := cfg.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}
	size := cfg.Size
	if serveSize != 0 {
		size = serveSize
	}

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithMaxSize(cfg.MaxSize),
		server.WithScrambleLength(cfg.ScrambleLength),
		server.WithSolver(solver.New(cfg.SolverURL,
			solver.WithTimeout(cfg.SolverTimeout),
			solver.WithLogger(logger),
		)),
	}

	if serveRecord {
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		opts = append(opts, server.WithRecorder(storage.NewRecorder(db)))
	}

	srv, err := server.New(size, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx, addr)
}
