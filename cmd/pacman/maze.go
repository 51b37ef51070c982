package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KuberLakshman/PacMan/internal/core"
	"github.com/KuberLakshman/PacMan/internal/games/pacman"
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print the maze and its entity counts",
	Long: `Loads the built-in maze with the current configuration and prints it
as the game draws it, followed by the number of walls, pellets and ghosts.

Combine with --strict-map to validate the layout.`,
	Args: cobra.NoArgs,
	RunE: runMaze,
}

func runMaze(cmd *cobra.Command, args []string) error {
	_, opts, err := loadOptions()
	if err != nil {
		return err
	}

	maze, err := pacman.LoadMaze(opts.Layout, opts.TileSize, opts.StrictMap)
	if err != nil {
		return err
	}

	game := pacman.New(opts)
	game.Reset(core.RuntimeConfig{Seed: flagSeed})
	w, h := game.MinScreenSize()
	screen := core.NewScreen(w, h)
	game.Render(screen)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  grid      %dx%d tiles, %dpx each (%dx%d px)\n", maze.Cols, maze.Rows, maze.TileSize, maze.Width(), maze.Height())
	fmt.Fprintf(out, "  walls     %d\n", len(maze.Walls))
	fmt.Fprintf(out, "  pellets   %d (%d points)\n", len(maze.Pellets), len(maze.Pellets)*opts.PelletPoints)
	fmt.Fprintf(out, "  ghosts    %d\n", len(maze.Enemies))
	fmt.Fprintf(out, "  spawn     (%d, %d)\n", maze.Player.X, maze.Player.Y)
	return nil
}
