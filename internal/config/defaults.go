package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the built-in configuration, used when no
// YAML source can be read.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Board: PacmanBoard{
			TileSize: 32,
		},
		Gameplay: PacmanGameplay{
			Lives:        3,
			PelletPoints: 10,
			TickRate:     20,
			StrictMap:    false,
		},
	}
}
