package pacman

import (
	"strings"
	"testing"

	"github.com/KuberLakshman/PacMan/internal/core"
)

func TestRenderStartScreen(t *testing.T) {
	g := newTestGame(t, DefaultLayout, 3)
	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	for _, want := range []string{"GAME START", "Press WASD or Arrow keys to begin", "x3 Score: 0", "Level 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen should contain %q", want)
		}
	}

	// Board is centered: 38 columns wide, one HUD row above 21 maze rows.
	offX, offY := (80-38)/2, 2
	if c := s.GetCell(offX, offY); c.Rune != '█' || c.Color != core.ColorBlue {
		t.Errorf("top-left wall cell = %+v", c)
	}
	if c := s.GetCell(offX+3, offY+1); c.Rune != pelletRune {
		t.Errorf("first pellet cell = %+v", c)
	}
	if c := s.GetCell(offX+18, offY+15); c.Rune != '<' || c.Color != core.ColorYellow {
		t.Errorf("player cell = %+v", c)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, DefaultLayout, 3)
	w := g.World()
	w.Phase = PhaseGameOver
	w.Score = 730

	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()

	for _, want := range []string{"GAME OVER", "Final Score: 730", "Press any key to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen should contain %q", want)
		}
	}
	if strings.Contains(out, "GAME START") {
		t.Error("start banner should not show after game over")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, DefaultLayout, 3)
	s := core.NewScreen(30, 10)
	g.Render(s)

	out := s.String()
	if !strings.Contains(out, "Terminal too small") {
		t.Errorf("expected too-small notice, got:\n%s", out)
	}
	if strings.ContainsRune(out, '█') {
		t.Error("board should not be drawn on a small terminal")
	}
}

func TestRenderLayoutError(t *testing.T) {
	g := New(Options{Layout: nil, TileSize: TileSize, Lives: 3})
	g.Reset(core.DefaultConfig())

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.String(), "Cannot load maze") {
		t.Error("layout errors should be shown on screen")
	}
}
