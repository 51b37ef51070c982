// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// PacmanConfig contains all configuration for the maze game.
type PacmanConfig struct {
	Board    PacmanBoard    `yaml:"board"`
	Gameplay PacmanGameplay `yaml:"gameplay"`
}

// PacmanBoard defines board geometry.
type PacmanBoard struct {
	TileSize int `yaml:"tile_size"` // pixels per tile, movement step is a quarter of it
}

// PacmanGameplay defines rules and timing.
type PacmanGameplay struct {
	Lives        int  `yaml:"lives"`
	PelletPoints int  `yaml:"pellet_points"`
	TickRate     int  `yaml:"tick_rate"` // ticks per second
	StrictMap    bool `yaml:"strict_map"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the values can drive a game.
func (c PacmanConfig) Validate() error {
	switch {
	case c.Board.TileSize < 8 || c.Board.TileSize%4 != 0:
		return fmt.Errorf("%w: tile_size %d must be a multiple of 4 and at least 8", ErrInvalidConfig, c.Board.TileSize)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives %d must be positive", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Gameplay.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d must be positive", ErrInvalidConfig, c.Gameplay.TickRate)
	case c.Gameplay.PelletPoints < 0:
		return fmt.Errorf("%w: pellet_points %d must not be negative", ErrInvalidConfig, c.Gameplay.PelletPoints)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// LivesForPreset returns the starting lives for a difficulty preset.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}
