package pacman

import "testing"

func tile(x, y int) Entity {
	return newEntity(SpriteWall, x, y, TileSize, TileSize)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Entity
		want bool
	}{
		{"same tile", tile(0, 0), tile(0, 0), true},
		{"one step into wall", tile(24, 0), tile(0, 0), true},
		{"touching right edge", tile(32, 0), tile(0, 0), false},
		{"touching bottom edge", tile(0, 32), tile(0, 0), false},
		{"diagonal neighbour", tile(32, 32), tile(0, 0), false},
		{"pellet inside tile", tile(32, 32), newEntity(SpriteNone, 46, 46, 4, 4), true},
		{"pellet just outside", tile(0, 0), newEntity(SpriteNone, 32, 14, 4, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Errorf("Overlaps(a, b) = %v, expected %v", got, tc.want)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Errorf("Overlaps(b, a) = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestOverlapEmptySet(t *testing.T) {
	if overlapsAny(tile(0, 0), nil) {
		t.Error("no entity should overlap an empty set")
	}
	if i := firstOverlap(tile(0, 0), []Entity{}); i != -1 {
		t.Errorf("firstOverlap() = %d, expected -1", i)
	}
}

func TestSetDirectionVelocity(t *testing.T) {
	tests := []struct {
		dir    Direction
		vx, vy int
	}{
		{Up, 0, -8},
		{Down, 0, 8},
		{Left, -8, 0},
		{Right, 8, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			e := tile(64, 64)
			if !SetDirection(&e, tc.dir, nil, TileSize/4) {
				t.Fatal("move without walls should commit")
			}
			if e.Dir != tc.dir {
				t.Errorf("Dir = %v, expected %v", e.Dir, tc.dir)
			}
			if e.VelocityX != tc.vx || e.VelocityY != tc.vy {
				t.Errorf("velocity = (%d, %d), expected (%d, %d)", e.VelocityX, e.VelocityY, tc.vx, tc.vy)
			}
			if (e.VelocityX != 0) == (e.VelocityY != 0) {
				t.Error("exactly one velocity component should be nonzero")
			}
			if e.X != 64+tc.vx || e.Y != 64+tc.vy {
				t.Errorf("position = (%d, %d), expected one step from (64, 64)", e.X, e.Y)
			}
		})
	}
}

func TestSetDirectionRollback(t *testing.T) {
	walls := []Entity{tile(0, 0), tile(32, 32)}

	tests := []struct {
		name      string
		dir       Direction
		committed bool
		x, y      int
		wantDir   Direction
	}{
		{"left into wall", Left, false, 32, 0, Right},
		{"down into wall below", Down, false, 32, 0, Right},
		{"right is open", Right, true, 40, 0, Right},
		{"up off board is not a wall", Up, true, 32, -8, Up},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := tile(32, 0)
			e.Dir = Right
			e.setVelocity(8)

			got := SetDirection(&e, tc.dir, walls, 8)
			if got != tc.committed {
				t.Fatalf("SetDirection() = %v, expected %v", got, tc.committed)
			}
			if e.X != tc.x || e.Y != tc.y {
				t.Errorf("position = (%d, %d), expected (%d, %d)", e.X, e.Y, tc.x, tc.y)
			}
			if e.Dir != tc.wantDir {
				t.Errorf("Dir = %v, expected %v", e.Dir, tc.wantDir)
			}
			dx, dy := e.Dir.Delta()
			if e.VelocityX != dx*8 || e.VelocityY != dy*8 {
				t.Errorf("velocity (%d, %d) does not match %v", e.VelocityX, e.VelocityY, e.Dir)
			}
		})
	}
}

func TestSetDirectionRollbackFromRest(t *testing.T) {
	// A blocked request leaves the entity facing its old direction with
	// that direction's velocity.
	e := tile(32, 32)
	walls := []Entity{tile(32, 0)}

	if SetDirection(&e, Up, walls, 8) {
		t.Fatal("move into wall should roll back")
	}
	if e.X != 32 || e.Y != 32 || e.Dir != Up {
		t.Errorf("entity = (%d, %d) %v, expected (32, 32) up", e.X, e.Y, e.Dir)
	}
	if e.VelocityX != 0 || e.VelocityY != -8 {
		t.Errorf("velocity = (%d, %d), expected (0, -8)", e.VelocityX, e.VelocityY)
	}
}

func TestEntityAdvanceUndoReset(t *testing.T) {
	e := tile(64, 96)
	e.Dir = Left
	e.setVelocity(8)

	e.Advance()
	e.Advance()
	if e.X != 48 || e.Y != 96 {
		t.Errorf("after two advances = (%d, %d), expected (48, 96)", e.X, e.Y)
	}
	e.Undo()
	if e.X != 56 {
		t.Errorf("after undo x = %d, expected 56", e.X)
	}
	e.Reset()
	e.Stop()
	if e.X != 64 || e.Y != 96 || e.VelocityX != 0 || e.Dir != Left {
		t.Errorf("after reset = %+v, expected spawn at rest facing left", e)
	}
}
