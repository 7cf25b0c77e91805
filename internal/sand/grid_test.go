package sand

import (
	"errors"
	"testing"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid(4, 3)

	if _, err := g.Get(-1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Get(-1,0) err = %v, want ErrOutOfBounds", err)
	}
	if _, err := g.Get(4, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Get(4,0) err = %v, want ErrOutOfBounds", err)
	}
	if _, err := g.Get(0, 3); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Get(0,3) err = %v, want ErrOutOfBounds", err)
	}
	if err := g.Set(0, -1, nil); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Set(0,-1) err = %v, want ErrOutOfBounds", err)
	}
	if p := g.At(99, 99); p != nil {
		t.Fatalf("At out of range returned %v, want nil", p)
	}
}

func TestGridSetMaintainsCountAndCoords(t *testing.T) {
	g := NewGrid(5, 5)
	p := &Particle{Type: Sand}

	if err := g.Set(2, 3, p); err != nil {
		t.Fatal(err)
	}
	if g.Count() != 1 {
		t.Fatalf("count = %d, want 1", g.Count())
	}
	if p.X != 2 || p.Y != 3 {
		t.Fatalf("particle coords = (%d,%d), want (2,3)", p.X, p.Y)
	}

	// Replacing an occupant keeps the count consistent.
	q := &Particle{Type: Water}
	if err := g.Set(2, 3, q); err != nil {
		t.Fatal(err)
	}
	if g.Count() != 1 {
		t.Fatalf("count after replace = %d, want 1", g.Count())
	}

	if err := g.Set(2, 3, nil); err != nil {
		t.Fatal(err)
	}
	if g.Count() != 0 {
		t.Fatalf("count after clear = %d, want 0", g.Count())
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, &Particle{Type: Wall})
		}
	}
	g.Clear()
	if g.Count() != 0 {
		t.Fatalf("count after Clear = %d, want 0", g.Count())
	}
	if g.At(1, 1) != nil {
		t.Fatal("cell not empty after Clear")
	}
}

// checkPositionInvariant verifies grid[y][x] == p implies p.X == x, p.Y == y
// and that the count matches the occupied cells.
func checkPositionInvariant(t *testing.T, w *World) {
	t.Helper()
	occupied := 0
	size := w.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			p := w.grid.At(x, y)
			if p == nil {
				continue
			}
			occupied++
			if p.X != x || p.Y != y {
				t.Fatalf("particle at cell (%d,%d) reports coords (%d,%d)", x, y, p.X, p.Y)
			}
		}
	}
	if occupied != w.ParticleCount() {
		t.Fatalf("particle count %d != occupied cells %d", w.ParticleCount(), occupied)
	}
}
