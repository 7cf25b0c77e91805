package sand

import (
	core "sandfall/internal/core"
	pkgcore "sandfall/pkg/core"
)

// Gravity selects the direction particles settle toward.
type Gravity uint8

const (
	GravityDown Gravity = iota
	GravityUp
	GravityLeft
	GravityRight
	GravityNone
)

// String names the gravity direction for HUD and log output.
func (g Gravity) String() string {
	switch g {
	case GravityDown:
		return "down"
	case GravityUp:
		return "up"
	case GravityLeft:
		return "left"
	case GravityRight:
		return "right"
	default:
		return "none"
	}
}

// vector returns the unit settling direction, (0, 0) for GravityNone.
func (g Gravity) vector() (int, int) {
	switch g {
	case GravityDown:
		return 0, 1
	case GravityUp:
		return 0, -1
	case GravityLeft:
		return -1, 0
	case GravityRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Rand supplies the randomness used by behaviors and reactions. Tests swap in
// a stub to pin probabilistic choices.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

const (
	minSpeed = 0.25
	maxSpeed = 4.0

	// fullScanInterval is how often a full raster scan replaces the
	// active-set visit. The periodic rescan catches regions that should
	// reactivate outside tracked activity, at the cost of up to that many
	// ticks of staleness.
	fullScanInterval = 5
)

var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// World is the falling-sand simulation: grid store, element table, active
// region tracking, and undo history behind the mutation entry points.
type World struct {
	cfg   Config
	elems [elementCount]Element

	grid *Grid

	// active holds the packed y*w+x indices worth visiting this tick;
	// pending collects indices touched by mutations, absorbed into active
	// at the start of the next tick.
	active  map[int]struct{}
	pending map[int]struct{}
	order   []int

	gravity Gravity
	speed   float64
	running bool

	tick      uint64
	processed int

	history *History
	rng     Rand
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:     cfg,
		elems:   tunedElements(cfg.Params),
		grid:    NewGrid(cfg.Width, cfg.Height),
		active:  make(map[int]struct{}),
		pending: make(map[int]struct{}),
		gravity: GravityDown,
		speed:   1,
		running: true,
		history: newHistory(cfg.Params.HistoryLimit),
		rng:     pkgcore.NewRNG(cfg.Seed),
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: w.grid.Width(), H: w.grid.Height()}
}

// Grid exposes the underlying grid store for read access.
func (w *World) Grid() *Grid { return w.grid }

// ParticleCount reports the number of occupied cells, for HUD display.
func (w *World) ParticleCount() int { return w.grid.Count() }

// ActiveCells reports the size of the current active-region set.
func (w *World) ActiveCells() int { return len(w.active) + len(w.pending) }

// Tick returns the number of completed simulation ticks.
func (w *World) Tick() uint64 { return w.tick }

// ProcessedLastTick reports how many particles the previous tick visited.
func (w *World) ProcessedLastTick() int { return w.processed }

// Element returns the tuned definition for t.
func (w *World) Element(t ElementType) *Element {
	if !t.Valid() {
		return nil
	}
	return &w.elems[t]
}

func (w *World) elem(t ElementType) *Element { return &w.elems[t] }

// Reset discards all particles, history, and active regions, reseeding the
// RNG with the provided seed (or the config seed when zero).
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = pkgcore.NewRNG(seed)
	w.grid.Clear()
	clear(w.active)
	clear(w.pending)
	w.tick = 0
	w.processed = 0
	w.history.reset()
}

// SetGravity switches the settling direction. Invalid values are ignored.
func (w *World) SetGravity(g Gravity) {
	if g > GravityNone {
		return
	}
	w.gravity = g
}

// GravityDirection returns the current settling direction.
func (w *World) GravityDirection() Gravity { return w.gravity }

// SetSpeed sets the tick-rate multiplier, clamped to the supported range.
func (w *World) SetSpeed(m float64) {
	if m < minSpeed {
		m = minSpeed
	}
	if m > maxSpeed {
		m = maxSpeed
	}
	w.speed = m
}

// Speed returns the current tick-rate multiplier.
func (w *World) Speed() float64 { return w.speed }

// Play resumes tick processing.
func (w *World) Play() { w.running = true }

// Pause stops ticks from being requested; in-flight ticks always complete.
func (w *World) Pause() { w.running = false }

// TogglePause flips between running and paused.
func (w *World) TogglePause() { w.running = !w.running }

// Running reports whether the simulation should be advanced by the harness.
func (w *World) Running() bool { return w.running }

// Step advances the simulation by one tick: absorb pending activity, visit
// cells in gravity order (full raster every fifth tick or when the active set
// is empty, the sampled active set otherwise), resolve interactions before
// movement, and collect the next tick's active set.
func (w *World) Step() {
	for idx := range w.pending {
		w.active[idx] = struct{}{}
	}
	clear(w.pending)

	stamp := w.tick + 1
	full := w.tick%fullScanInterval == 0 || len(w.active) == 0
	order := w.visitOrder(full)

	w.processed = 0
	for _, idx := range order {
		p := w.grid.cells[idx]
		if p == nil || p.tick == stamp {
			continue
		}
		p.tick = stamp
		w.processed++

		x, y := p.X, p.Y
		def := w.elem(p.Type)

		changed := w.processInteractions(p)
		if !changed && def.Behavior != nil {
			changed = def.Behavior(w, p)
		}
		if changed {
			w.markRegion(x, y)
		} else if !def.Static {
			// A particle whose probabilistic move failed retries next tick;
			// only idle statics go dormant.
			w.touch(x, y)
		}
		if def.Special() {
			// Sources and voids act probabilistically every tick, so they
			// never go dormant.
			w.touch(x, y)
		}
	}

	w.active, w.pending = w.pending, w.active
	clear(w.pending)
	w.tick++
}

// visitOrder computes the cell visit order for this tick. Raster order is
// gravity-consistent: processing the far row first prevents one particle from
// free-falling several rows in a single tick.
func (w *World) visitOrder(full bool) []int {
	w.order = w.order[:0]
	gw, gh := w.grid.Width(), w.grid.Height()

	if !full {
		for idx := range w.active {
			w.order = append(w.order, idx)
		}
		if w.gravity == GravityNone {
			w.shuffleOrder()
		}
		return w.order
	}

	switch w.gravity {
	case GravityDown:
		for y := gh - 1; y >= 0; y-- {
			base := y * gw
			for x := 0; x < gw; x++ {
				w.order = append(w.order, base+x)
			}
		}
	case GravityUp:
		for y := 0; y < gh; y++ {
			base := y * gw
			for x := 0; x < gw; x++ {
				w.order = append(w.order, base+x)
			}
		}
	case GravityLeft:
		for x := 0; x < gw; x++ {
			for y := 0; y < gh; y++ {
				w.order = append(w.order, y*gw+x)
			}
		}
	case GravityRight:
		for x := gw - 1; x >= 0; x-- {
			for y := 0; y < gh; y++ {
				w.order = append(w.order, y*gw+x)
			}
		}
	default:
		for i := 0; i < gw*gh; i++ {
			w.order = append(w.order, i)
		}
		w.shuffleOrder()
	}
	return w.order
}

func (w *World) shuffleOrder() {
	for i := len(w.order) - 1; i > 0; i-- {
		j := w.rng.IntN(i + 1)
		w.order[i], w.order[j] = w.order[j], w.order[i]
	}
}

// touch marks a single coordinate active for the next tick.
func (w *World) touch(x, y int) {
	if !w.grid.InBounds(x, y) {
		return
	}
	w.pending[w.grid.Index(x, y)] = struct{}{}
}

// markRegion marks the 3x3 neighborhood of a changed cell active.
func (w *World) markRegion(x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			w.touch(x+dx, y+dy)
		}
	}
}

// --- mutation primitives ---
//
// Behaviors and reactions go through these; each one keeps the position
// invariant and feeds the active-region set. All reject out-of-range
// coordinates silently, since shape enumeration routinely clips grid edges.

func (w *World) particleAt(x, y int) *Particle { return w.grid.At(x, y) }

func (w *World) isEmpty(x, y int) bool {
	return w.grid.InBounds(x, y) && w.grid.At(x, y) == nil
}

// moveTo relocates p to (nx, ny) if that cell is empty and in bounds.
func (w *World) moveTo(p *Particle, nx, ny int) bool {
	if !w.isEmpty(nx, ny) {
		return false
	}
	ox, oy := p.X, p.Y
	w.grid.Set(ox, oy, nil)
	w.grid.Set(nx, ny, p)
	w.markRegion(ox, oy)
	w.markRegion(nx, ny)
	return true
}

// moveBy relocates p by the given cell offset.
func (w *World) moveBy(p *Particle, dx, dy int) bool {
	return w.moveTo(p, p.X+dx, p.Y+dy)
}

// swap exchanges the positions of two live particles.
func (w *World) swap(a, b *Particle) {
	ax, ay := a.X, a.Y
	bx, by := b.X, b.Y
	w.grid.Set(ax, ay, nil)
	w.grid.Set(bx, by, a)
	w.grid.Set(ax, ay, b)
	w.markRegion(ax, ay)
	w.markRegion(bx, by)
}

// remove deletes the particle at (x, y); false if the cell is empty or out
// of bounds.
func (w *World) remove(x, y int) bool {
	if w.grid.At(x, y) == nil {
		return false
	}
	w.grid.Set(x, y, nil)
	w.markRegion(x, y)
	return true
}

// spawn creates a particle of type t at (x, y) when the cell is empty.
func (w *World) spawn(t ElementType, x, y int) *Particle {
	if !t.Valid() || !w.isEmpty(x, y) {
		return nil
	}
	p := w.NewParticle(t, x, y)
	w.grid.Set(x, y, p)
	w.markRegion(x, y)
	return p
}

// changeType transforms p into element t in place, resampling lifespan and
// color variation. Transient accumulators are cleared: a particle that turns
// into something else starts its new life fresh.
func (w *World) changeType(p *Particle, t ElementType) bool {
	if !t.Valid() {
		return false
	}
	def := w.elem(t)
	p.Type = t
	p.Life, p.Span = 0, 0
	p.Burning = 0
	p.Corrosion = 0
	if def.LifeMax > 0 {
		p.Life = w.randRange(def.LifeMin, def.LifeMax)
		p.Span = p.Life
	}
	if def.ColorVar > 0 {
		p.ColorShift = w.rng.IntN(2*def.ColorVar+1) - def.ColorVar
	} else {
		p.ColorShift = 0
	}
	w.markRegion(p.X, p.Y)
	return true
}

// --- randomness helpers ---

// chance reports true with probability p. Values at or above 1 always
// succeed, so intentionally uncapped probabilities act as certainties.
func (w *World) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return w.rng.Float64() < p
}

// randSign returns -1 or +1 with equal probability.
func (w *World) randSign() int {
	if w.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

// randRange returns a uniform int in [min, max].
func (w *World) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + w.rng.IntN(max-min+1)
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
