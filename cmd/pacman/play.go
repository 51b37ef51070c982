package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/KuberLakshman/PacMan/internal/core"
	"github.com/KuberLakshman/PacMan/internal/games/pacman"
	"github.com/KuberLakshman/PacMan/internal/platform/tui"
	"github.com/KuberLakshman/PacMan/internal/registry"
	"github.com/KuberLakshman/PacMan/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game (default)",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, opts, err := loadOptions()
	if err != nil {
		return err
	}

	// Fail before the TUI starts if the maze cannot be loaded
	if _, err := pacman.LoadMaze(opts.Layout, opts.TileSize, opts.StrictMap); err != nil {
		return err
	}

	w, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(w)
	if err != nil {
		return err
	}

	pacman.SetOptions(opts)
	game, err := registry.Create(pacman.ID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = tw, th
	}
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Gameplay.TickRate,
		Seed:     flagSeed,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Scores live only as long as the process
	store, err := storage.OpenSession(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scoreboard disabled: %v\n", err)
		store = nil
	}

	logger.Info("starting", "lives", opts.Lives, "tick_rate", runtime.TickRate, "strict_map", opts.StrictMap)
	runErr := tui.Run(game, store, logger, runtime)

	if store != nil {
		summary, err := tui.SessionSummary(ctx, store, pacman.ID)
		if err != nil {
			logger.Warn("cannot read session scores", "error", err)
		} else if summary != "" {
			fmt.Print(summary)
		}
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
