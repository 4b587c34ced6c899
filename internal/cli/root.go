// Package cli implements the command-line interface for nxcube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/nxcube/internal/config"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxcube",
	Short: "N×N×N cube simulator",
	Long: `nxcube - A Rubik's cube simulator for any size from 2×2×2 up.

Apply moves in standard notation, generate reproducible scrambles, play
interactively in the terminal, record sessions to a local database and serve
the cube state over HTTP to a renderer.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.nxcube/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.nxcube/nxcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig reads the config file named by --config, or the default one,
// and applies --db on top.
func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

// newLogger returns a development logger with --verbose and a no-op logger
// otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openDB opens and migrates the configured database.
func openDB(cfg config.Config) (*storage.DB, error) {
	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
