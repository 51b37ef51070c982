// pacman is a maze arcade game for the terminal.
//
// Usage:
//
//	pacman [play]            - Play (default command)
//	pacman maze              - Print the parsed maze and entity counts
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--seed <value>       - RNG seed for reproducible ghosts
//	--strict-map         - Reject malformed maze layouts
//	--log-file <path>    - Write logs to a file (the TUI owns the terminal)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/KuberLakshman/PacMan/internal/config"
	"github.com/KuberLakshman/PacMan/internal/games/pacman"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagStrictMap  bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `Guide Pac-Man through the maze, eat every pellet and keep away
from the four ghosts.

Controls:
  WASD/Arrows  - Move (the first move starts the game)
  Any key      - Restart after game over
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  pacman
  pacman --difficulty easy
  pacman --seed 42 --log-file pacman.log --log-level debug
  pacman maze --strict-map`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagStrictMap, "strict-map", false, "Reject unknown symbols and ragged rows in the maze")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mazeCmd)
}

// loadOptions reads the config, applies flags and converts the result to
// game options.
func loadOptions() (config.PacmanConfig, pacman.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PacmanConfig{}, pacman.Options{}, err
	}

	cfg, err := config.LoadPacman(flagConfig)
	if err != nil {
		return cfg, pacman.Options{}, err
	}
	config.ApplyPacmanPreset(&cfg, preset)
	if flagStrictMap {
		cfg.Gameplay.StrictMap = true
	}

	opts := pacman.DefaultOptions()
	opts.TileSize = cfg.Board.TileSize
	opts.Lives = cfg.Gameplay.Lives
	opts.PelletPoints = cfg.Gameplay.PelletPoints
	opts.StrictMap = cfg.Gameplay.StrictMap
	return cfg, opts, nil
}

// newLogger builds the program logger. Without a log file output is
// discarded so it cannot corrupt the TUI.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens --log-file for appending, or returns io.Discard.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	if dir := filepath.Dir(flagLogFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
