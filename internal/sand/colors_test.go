package sand

import "testing"

func TestColorAtEmptyCell(t *testing.T) {
	w := newTestWorld(8, 8)
	if _, ok := w.ColorAt(3, 3); ok {
		t.Fatal("empty cell must report no color")
	}
	if _, ok := w.ColorAt(-1, 0); ok {
		t.Fatal("out-of-range cell must report no color")
	}
}

func TestFireColorGrades(t *testing.T) {
	w := newTestWorld(8, 8)
	w.rng = stubRand{} // no jitter

	p := w.spawn(Fire, 2, 2)
	p.Span = 100

	p.Life = 90
	young, _ := w.ColorAt(2, 2)
	p.Life = 50
	mid, _ := w.ColorAt(2, 2)
	p.Life = 10
	old, _ := w.ColorAt(2, 2)

	if young == mid || mid == old {
		t.Fatal("fire color must change as life burns down")
	}
	if !(young.G > mid.G && mid.G > old.G) {
		t.Fatalf("expected yellow > orange > red green channels, got %d %d %d",
			young.G, mid.G, old.G)
	}
}

func TestBurningWoodDarkens(t *testing.T) {
	w := newTestWorld(8, 8)
	p := w.spawn(Wood, 2, 2)
	p.ColorShift = 0

	fresh, _ := w.ColorAt(2, 2)
	p.Burning = w.cfg.Params.WoodIgnition / 2
	charred, _ := w.ColorAt(2, 2)

	if charred.R >= fresh.R || charred.G >= fresh.G || charred.B >= fresh.B {
		t.Fatal("burning wood must be darker than fresh wood")
	}
}

func TestCorrodingMetalShiftsGreen(t *testing.T) {
	w := newTestWorld(8, 8)
	p := w.spawn(Metal, 2, 2)
	p.ColorShift = 0

	clean, _ := w.ColorAt(2, 2)
	p.Corrosion = 0.8
	pitted, _ := w.ColorAt(2, 2)

	if pitted.G <= clean.G {
		t.Fatal("corroding metal must gain green")
	}
}

func TestColorShiftApplied(t *testing.T) {
	w := newTestWorld(8, 8)
	p := w.spawn(Sand, 2, 2)

	p.ColorShift = 0
	base, _ := w.ColorAt(2, 2)
	p.ColorShift = 15
	lighter, _ := w.ColorAt(2, 2)

	if lighter.R != base.R+15 {
		t.Fatalf("shift of +15 gave R %d from base %d", lighter.R, base.R)
	}
}

func TestShadeClamps(t *testing.T) {
	if got := clamp8(300); got != 255 {
		t.Fatalf("clamp8(300) = %d", got)
	}
	if got := clamp8(-10); got != 0 {
		t.Fatalf("clamp8(-10) = %d", got)
	}
}
