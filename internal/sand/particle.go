package sand

// Particle is one typed occupant of a grid cell. Its X, Y always mirror the
// storage location: grid.At(p.X, p.Y) == p for every live particle.
type Particle struct {
	Type ElementType
	X, Y int

	// Life counts down for ephemeral elements (fire, spark, smoke); the
	// particle is destroyed or transformed once it drops to zero. Span keeps
	// the originally sampled lifespan so smoke can scale its dissipation
	// chance by the remaining fraction.
	Life int
	Span int

	// Burning accumulates sustained fire exposure on flammable statics.
	Burning int

	// Corrosion accumulates acid contact in [0, 1); the particle is removed
	// once it reaches 1.
	Corrosion float64

	// ColorShift is a cosmetic per-particle offset sampled at creation.
	// Rendering only, never consulted by behaviors.
	ColorShift int

	// tick stamps the last simulation tick that processed this particle,
	// so a particle moved downward is not re-processed when the scheduler
	// reaches its new position later in the same tick.
	tick uint64

	// contactTick stamps the last tick a contact accumulator (burning,
	// corrosion) advanced. Both partners of a pair scan their neighbors, so
	// without the stamp sustained contact would count twice per tick.
	contactTick uint64
}

// NewParticle builds a particle of the given type at (x, y), sampling its
// lifespan and color variation from the element definition. Returns nil for
// an unknown type.
func (w *World) NewParticle(t ElementType, x, y int) *Particle {
	if !t.Valid() {
		return nil
	}
	def := &w.elems[t]
	p := &Particle{Type: t, X: x, Y: y}
	if def.LifeMax > 0 {
		p.Life = w.randRange(def.LifeMin, def.LifeMax)
		p.Span = p.Life
	}
	if def.ColorVar > 0 {
		p.ColorShift = w.rng.IntN(2*def.ColorVar+1) - def.ColorVar
	}
	return p
}
