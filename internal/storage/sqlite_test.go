package storage

import (
	"context"
	"testing"
	"time"
)

func openSession(t *testing.T) *Store {
	t.Helper()
	store, err := OpenSession(context.Background())
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenSessionIsolated(t *testing.T) {
	ctx := context.Background()
	first := openSession(t)
	second := openSession(t)

	if _, err := first.SaveScore(ctx, "pacman", 320, 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	high, err := second.HighScore(ctx, "pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("second session high score = %d, expected 0", high)
	}
	if high, _ := first.HighScore(ctx, "pacman"); high != 320 {
		t.Errorf("first session high score = %d, expected 320", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	ctx := context.Background()
	store := openSession(t)

	games := []struct {
		score, level int
	}{
		{100, 1},
		{50, 1},
		{200, 2},
		{200, 3},
	}
	for _, g := range games {
		if _, err := store.SaveScore(ctx, "pacman", g.score, g.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore(ctx, "other", 500, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(ctx, "pacman", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct{ score, level int }{{200, 2}, {200, 3}, {100, 1}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Level != w.level {
			t.Errorf("scores[%d] = %d (level %d), expected %d (level %d)",
				i, scores[i].Score, scores[i].Level, w.score, w.level)
		}
		if scores[i].GameID != "pacman" {
			t.Errorf("scores[%d] game = %q", i, scores[i].GameID)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	ctx := context.Background()
	store := openSession(t)

	high, err := store.HighScore(ctx, "pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, expected 0", high)
	}

	for _, s := range []int{30, 90, 60} {
		if _, err := store.SaveScore(ctx, "pacman", s, s/30); err != nil {
			t.Fatal(err)
		}
	}

	high, err = store.HighScore(ctx, "pacman")
	if err != nil {
		t.Fatal(err)
	}
	if high != 90 {
		t.Errorf("HighScore() = %d, expected 90", high)
	}

	stats, err := store.GameStats(ctx, "pacman")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 90 || stats.AvgScore != 60 || stats.BestLevel != 3 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSessionStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := openSession(t)
	b := openSession(t)

	if _, err := a.SaveScore(ctx, "pacman", 10, 1); err != nil {
		t.Fatal(err)
	}
	scores, err := b.TopScores(ctx, "pacman", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("second session sees %d scores, expected none", len(scores))
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", ts, ts},
		{"sqlite string", "2024-05-01 12:30:00", ts},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(tc.want) {
				t.Errorf("parseTime(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}
