package pacman

// Snapshot is a read-only copy of the world for rendering and for
// determinism checks.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Score   int
	Lives   int
	Level   int
	Player  Entity
	Enemies []Entity
	Walls   []Entity
	Pellets []Entity

	Started  bool
	Playing  bool
	GameOver bool
}

// Snapshot returns a copy of the current world. It is the zero Snapshot
// before Reset or after a failed one.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return g.world.Snapshot()
}

// Snapshot returns a copy of the world.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:     w.Ticks,
		Phase:    w.Phase,
		Score:    w.Score,
		Lives:    w.Lives,
		Level:    w.Level,
		Player:   w.Player,
		Enemies:  clone(w.Enemies),
		Walls:    clone(w.Walls),
		Pellets:  clone(w.Pellets),
		Started:  w.Started(),
		Playing:  w.Phase == PhasePlaying,
		GameOver: w.GameOver(),
	}
}
