package sand

// ReactionFunc applies a pairwise neighbor reaction. The argument order is
// fixed by the registered pair: a is always the first-named type. It returns
// whether the reaction actually fired, so probabilistic no-ops let the
// neighbor scan continue.
type ReactionFunc func(w *World, a, b *Particle) bool

type pairKey [2]ElementType

type reactionEntry struct {
	fn      ReactionFunc
	swapped bool
}

// reactionTable is keyed by the (processed, neighbor) type pair. Both
// orderings are inserted at build time, canonicalized to one handler with a
// fixed argument order, so lookup is a single map probe. Explicit rows win
// over auto-filled reverses: fire+oil and oil+fire deliberately differ.
var reactionTable map[pairKey]reactionEntry

func init() {
	rows := []struct {
		a, b ElementType
		fn   ReactionFunc
	}{
		{Water, Fire, reactWaterFire},
		{Oil, Fire, reactOilIgniteCertain},
		{Water, Acid, reactWaterAcid},
		{Acid, Metal, reactAcidMetal},
		{Acid, Sand, reactAcidSand},
		{Water, Steam, reactWaterSteam},
		{Water, Oil, reactWaterOil},
		{Fire, Wood, reactFireWood},
		{Spark, Metal, reactSparkMetal},
		{Spark, Oil, reactIgniteOil},
		{Fire, Oil, reactIgniteOil},
		{Acid, Wall, reactInert},
		{Steam, Fire, reactSteamFire},
	}

	reactionTable = make(map[pairKey]reactionEntry, 2*len(rows))
	for _, r := range rows {
		reactionTable[pairKey{r.a, r.b}] = reactionEntry{fn: r.fn}
	}
	for _, r := range rows {
		k := pairKey{r.b, r.a}
		if _, ok := reactionTable[k]; !ok {
			reactionTable[k] = reactionEntry{fn: r.fn, swapped: true}
		}
	}
}

// processInteractions scans the 8-neighborhood of p for a defined reaction
// and applies the first one that fires. A particle that reacts does not also
// move in the same tick.
func (w *World) processInteractions(p *Particle) bool {
	for _, off := range neighborOffsets {
		n := w.particleAt(p.X+off[0], p.Y+off[1])
		if n == nil {
			continue
		}
		entry, ok := reactionTable[pairKey{p.Type, n.Type}]
		if !ok {
			continue
		}
		var fired bool
		if entry.swapped {
			fired = entry.fn(w, n, p)
		} else {
			fired = entry.fn(w, p, n)
		}
		if fired {
			return true
		}
	}
	return false
}

// reactWaterFire: the fire is always put out; the water has a 70% chance of
// boiling into steam.
func reactWaterFire(w *World, water, fire *Particle) bool {
	if w.chance(0.7) {
		w.changeType(water, Steam)
	}
	w.remove(fire.X, fire.Y)
	return true
}

// reactOilIgniteCertain: oil touching fire always catches, taking a fresh
// fire lifespan.
func reactOilIgniteCertain(w *World, oil, _ *Particle) bool {
	w.changeType(oil, Fire)
	return true
}

// reactWaterAcid: 25% chance the acid is neutralized.
func reactWaterAcid(w *World, _, acid *Particle) bool {
	if !w.chance(0.25) {
		return false
	}
	w.remove(acid.X, acid.Y)
	return true
}

// reactAcidMetal: corrosion accumulates 0.1 per tick of contact; the metal
// dissolves exactly when it reaches 1, with a 30% chance of spending the acid.
func reactAcidMetal(w *World, acid, metal *Particle) bool {
	if !w.contactOnce(metal) {
		// Another partner already advanced this contact this tick. Report
		// the pair as handled anyway: falling through to the movement
		// behavior would let a second acid dissolve the metal outright,
		// bypassing the accumulator.
		return true
	}
	metal.Corrosion += 0.1
	// Ten exact 0.1 steps land a hair under 1.0 in float64; the epsilon
	// keeps removal at the tick corrosion crosses 1, never later.
	if metal.Corrosion >= 1-1e-9 {
		w.remove(metal.X, metal.Y)
		if w.chance(0.3) {
			w.remove(acid.X, acid.Y)
		}
	} else {
		w.markRegion(metal.X, metal.Y)
	}
	return true
}

// reactAcidSand: 4% chance per tick the sand grain dissolves; a dissolve has
// a 20% chance of spending the acid too.
func reactAcidSand(w *World, acid, sand *Particle) bool {
	if !w.chance(0.04) {
		return false
	}
	w.remove(sand.X, sand.Y)
	if w.chance(0.2) {
		w.remove(acid.X, acid.Y)
	}
	return true
}

// reactWaterSteam: 30% chance the steam is absorbed.
func reactWaterSteam(w *World, _, steam *Particle) bool {
	if !w.chance(0.3) {
		return false
	}
	w.remove(steam.X, steam.Y)
	return true
}

// reactWaterOil: oil floats, so water directly above oil swaps with it.
func reactWaterOil(w *World, water, oil *Particle) bool {
	if water.X != oil.X || water.Y != oil.Y-1 {
		return false
	}
	w.swap(water, oil)
	return true
}

// reactFireWood: sustained contact accumulates a burning counter on the
// wood; at the ignition threshold the wood becomes fire, with a 40% chance of
// puffing smoke into the cell above. While still smoldering there is a 5%
// chance per tick of a stray flame appearing above instead.
func reactFireWood(w *World, _, wood *Particle) bool {
	if !w.contactOnce(wood) {
		// Already counted this tick; handled, so a second fire does not
		// fall through to its flammability roll and ignite the wood early.
		return true
	}
	wood.Burning++
	wx, wy := wood.X, wood.Y
	if wood.Burning >= w.cfg.Params.WoodIgnition {
		w.changeType(wood, Fire)
		if w.chance(0.4) {
			w.spawn(Smoke, wx, wy-1)
		}
		return true
	}
	w.markRegion(wx, wy)
	if w.chance(0.05) {
		w.spawn(Fire, wx, wy-1)
	}
	return true
}

// reactSparkMetal: the spark travels along the conductor, teleporting to a
// random empty cell adjacent to the metal 70% of the time; otherwise it
// bleeds a life point and stays put.
func reactSparkMetal(w *World, spark, metal *Particle) bool {
	if w.chance(0.7) && w.hopAlong(spark, metal.X, metal.Y) {
		return true
	}
	spark.Life--
	if spark.Life <= 0 {
		w.remove(spark.X, spark.Y)
	} else {
		w.markRegion(spark.X, spark.Y)
	}
	return true
}

// reactIgniteOil: energetic contact ignites oil 80% of the time. Shared by
// the spark+oil and fire+oil pairs.
func reactIgniteOil(w *World, _, oil *Particle) bool {
	if !w.chance(0.8) {
		return false
	}
	w.changeType(oil, Fire)
	return true
}

// contactOnce reports whether p's contact accumulator may advance this tick,
// stamping it so the second partner of the pair does not count the same
// contact again.
func (w *World) contactOnce(p *Particle) bool {
	stamp := w.tick + 1
	if p.contactTick == stamp {
		return false
	}
	p.contactTick = stamp
	return true
}

// reactInert exists to document immunity: the pair is defined but never
// fires, so scanning continues.
func reactInert(*World, *Particle, *Particle) bool { return false }

// reactSteamFire: 40% chance the steam is burned off.
func reactSteamFire(w *World, steam, _ *Particle) bool {
	if !w.chance(0.4) {
		return false
	}
	w.remove(steam.X, steam.Y)
	return true
}
