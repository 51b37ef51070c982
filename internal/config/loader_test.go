package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pacman.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadPacman("")
	if err != nil {
		t.Fatalf("LoadPacman() error = %v", err)
	}
	if cfg != DefaultPacmanConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultPacmanConfig())
	}
}

func TestLoadPacmanCustomPath(t *testing.T) {
	path := writeConfig(t, "gameplay:\n  lives: 7\n  strict_map: true\n")

	cfg, err := LoadPacman(path)
	if err != nil {
		t.Fatalf("LoadPacman() error = %v", err)
	}
	if cfg.Gameplay.Lives != 7 || !cfg.Gameplay.StrictMap {
		t.Errorf("gameplay = %+v, expected lives 7 and strict map", cfg.Gameplay)
	}
	// Unset keys keep their defaults
	if cfg.Board.TileSize != 32 || cfg.Gameplay.TickRate != 20 || cfg.Gameplay.PelletPoints != 10 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadPacmanLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "pacman.yaml"), []byte("gameplay:\n  tick_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPacman("")
	if err != nil {
		t.Fatalf("LoadPacman() error = %v", err)
	}
	if cfg.Gameplay.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30 from ./configs", cfg.Gameplay.TickRate)
	}
}

func TestLoadPacmanErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"malformed yaml", "board: [", false},
		{"odd tile size", "board:\n  tile_size: 30\n", true},
		{"tiny tile size", "board:\n  tile_size: 4\n", true},
		{"no lives", "gameplay:\n  lives: 0\n", true},
		{"zero tick rate", "gameplay:\n  tick_rate: 0\n", true},
		{"negative points", "gameplay:\n  pellet_points: -5\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadPacman(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}

	if _, err := LoadPacman(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}
}

func TestApplyPacmanPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
	}{
		{"", 4},
		{DifficultyEasy, 5},
		{DifficultyNormal, 3},
		{DifficultyHard, 2},
		{DifficultyFixed, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			cfg.Gameplay.Lives = 4
			ApplyPacmanPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
