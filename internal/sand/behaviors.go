package sand

// Movement rules. Each one is a pure function of the grid contents around the
// particle plus randomness, mutating only through the world's primitives, and
// reports whether anything changed. "Down" follows the current gravity
// direction; with gravity off, settling rules do nothing.

// behaviorStatic never relocates the particle. Reactions may still mutate it.
func behaviorStatic(*World, *Particle) bool { return false }

// behaviorPowder settles sand-like grains: straight down when possible, else
// a probabilistic diagonal slide toward a randomly preferred side.
func behaviorPowder(w *World, p *Particle) bool {
	gx, gy := w.gravity.vector()
	if gx == 0 && gy == 0 {
		return false
	}
	if w.moveBy(p, gx, gy) {
		return true
	}
	def := w.elem(p.Type)
	px, py := gy, gx
	d := w.randSign()
	if w.chance(def.SpreadChance) && w.moveBy(p, gx+px*d, gy+py*d) {
		return true
	}
	if w.chance(def.SpreadChance) && w.moveBy(p, gx-px*d, gy-py*d) {
		return true
	}
	return false
}

// behaviorLiquid falls straight down with priority, then tries both
// diagonals, then disperses horizontally.
func behaviorLiquid(w *World, p *Particle) bool {
	gx, gy := w.gravity.vector()
	if gx == 0 && gy == 0 {
		return false
	}
	if w.moveBy(p, gx, gy) {
		return true
	}
	def := w.elem(p.Type)
	px, py := gy, gx
	d := w.randSign()
	if w.moveBy(p, gx+px*d, gy+py*d) {
		return true
	}
	if w.moveBy(p, gx-px*d, gy-py*d) {
		return true
	}
	if w.chance(def.Dispersion) {
		if w.moveBy(p, px*d, py*d) {
			return true
		}
	} else if w.moveBy(p, -px*d, -py*d) {
		return true
	}
	return false
}

// behaviorAcid dissolves vulnerable neighbors before falling through to the
// liquid movement rule. A successful dissolve has a 30% chance of consuming
// the acid itself, which ends processing immediately.
func behaviorAcid(w *World, p *Particle) bool {
	def := w.elem(p.Type)
	dissolved := false
	for _, off := range neighborOffsets {
		n := w.particleAt(p.X+off[0], p.Y+off[1])
		if n == nil || n.Type == Acid {
			continue
		}
		nd := w.elem(n.Type)
		if nd.AcidImmune || nd.Special() {
			continue
		}
		if !w.chance(def.CorrosionRate) {
			continue
		}
		w.remove(n.X, n.Y)
		dissolved = true
		if w.chance(0.3) {
			w.remove(p.X, p.Y)
			return true
		}
	}
	moved := behaviorLiquid(w, p)
	return dissolved || moved
}

// gasRise implements the shared rising movement of steam and smoke: straight
// up, diagonal up toward a random preferred side (gated by dispersion), the
// other diagonal, then horizontal drift (gated by dispersion).
func gasRise(w *World, p *Particle) bool {
	gx, gy := w.gravity.vector()
	if gx == 0 && gy == 0 {
		return false
	}
	rx, ry := -gx, -gy
	if w.moveBy(p, rx, ry) {
		return true
	}
	def := w.elem(p.Type)
	px, py := gy, gx
	d := w.randSign()
	if w.chance(def.Dispersion) && w.moveBy(p, rx+px*d, ry+py*d) {
		return true
	}
	if w.moveBy(p, rx-px*d, ry-py*d) {
		return true
	}
	if w.chance(def.Dispersion) && w.moveBy(p, px*d, py*d) {
		return true
	}
	return false
}

// behaviorSteam has a 1% chance per tick to vanish outright, otherwise rises.
func behaviorSteam(w *World, p *Particle) bool {
	if w.chance(0.01) {
		w.remove(p.X, p.Y)
		return true
	}
	return gasRise(w, p)
}

// behaviorSmoke rises like steam but counts down a lifespan; its dissipation
// chance grows as the remaining life fraction shrinks.
func behaviorSmoke(w *World, p *Particle) bool {
	p.Life--
	if p.Life <= 0 {
		w.remove(p.X, p.Y)
		return true
	}
	if p.Span > 0 {
		frac := float64(p.Life) / float64(p.Span)
		if w.chance((1 - frac) * 0.05) {
			w.remove(p.X, p.Y)
			return true
		}
	}
	return gasRise(w, p)
}

// behaviorFire burns down its lifespan, ignites flammable neighbors, is
// extinguished on water contact, and flickers upward or sideways.
func behaviorFire(w *World, p *Particle) bool {
	p.Life--
	if p.Life <= 0 {
		if w.chance(0.5) {
			w.changeType(p, Smoke)
		} else {
			w.remove(p.X, p.Y)
		}
		return true
	}

	changed := false
	for _, off := range neighborOffsets {
		n := w.particleAt(p.X+off[0], p.Y+off[1])
		if n == nil {
			continue
		}
		nd := w.elem(n.Type)
		if nd.Flammable && w.chance(nd.Flammability) {
			w.changeType(n, Fire)
			changed = true
			continue
		}
		if n.Type == Water {
			// Water wins: the fire goes out immediately and no further
			// neighbors are considered.
			if w.chance(0.7) {
				w.changeType(n, Steam)
			} else {
				w.remove(n.X, n.Y)
			}
			w.remove(p.X, p.Y)
			return true
		}
	}

	gx, gy := w.gravity.vector()
	if w.chance(0.4) && w.moveBy(p, -gx, -gy) {
		return true
	}
	if w.chance(0.3) {
		d := w.randSign()
		if w.moveBy(p, gy*d, gx*d) {
			return true
		}
	}
	return changed
}

// behaviorSpark counts down a short lifespan, ignites flammable neighbors at
// double their flammability (uncapped), and prefers travelling along
// conductive neighbors over a random drift.
func behaviorSpark(w *World, p *Particle) bool {
	p.Life--
	if p.Life <= 0 {
		w.remove(p.X, p.Y)
		return true
	}

	changed := false
	var conductive []*Particle
	for _, off := range neighborOffsets {
		n := w.particleAt(p.X+off[0], p.Y+off[1])
		if n == nil {
			continue
		}
		nd := w.elem(n.Type)
		if nd.Conductive {
			conductive = append(conductive, n)
		}
		if nd.Flammable && w.chance(nd.Flammability*2) {
			w.changeType(n, Fire)
			changed = true
		}
	}

	if w.chance(0.7) && len(conductive) > 0 {
		target := conductive[w.rng.IntN(len(conductive))]
		if w.hopAlong(p, target.X, target.Y) {
			return true
		}
	} else {
		off := neighborOffsets[w.rng.IntN(len(neighborOffsets))]
		if w.moveBy(p, off[0], off[1]) {
			return true
		}
	}
	return changed
}

// hopAlong teleports p to a random empty cell adjacent to (tx, ty),
// excluding its own position.
func (w *World) hopAlong(p *Particle, tx, ty int) bool {
	var open [][2]int
	for _, off := range neighborOffsets {
		nx, ny := tx+off[0], ty+off[1]
		if nx == p.X && ny == p.Y {
			continue
		}
		if w.isEmpty(nx, ny) {
			open = append(open, [2]int{nx, ny})
		}
	}
	if len(open) == 0 {
		return false
	}
	dst := open[w.rng.IntN(len(open))]
	return w.moveTo(p, dst[0], dst[1])
}

// behaviorSource probabilistically emits its configured element into the
// first empty cardinal neighbor, trying the four sides in random order.
func behaviorSource(w *World, p *Particle) bool {
	def := w.elem(p.Type)
	if !w.chance(def.EmitRate) {
		return false
	}
	dirs := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for i := len(dirs) - 1; i > 0; i-- {
		j := w.rng.IntN(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	for _, d := range dirs {
		if w.spawn(def.Emits, p.X+d[0], p.Y+d[1]) != nil {
			return true
		}
	}
	return false
}

// behaviorVoid deletes everything within its radius except other specials.
func behaviorVoid(w *World, p *Particle) bool {
	r := w.elem(p.Type).VoidRadius
	if r < 1 {
		r = 1
	}
	deleted := false
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := w.particleAt(p.X+dx, p.Y+dy)
			if n == nil || w.elem(n.Type).Special() {
				continue
			}
			w.remove(n.X, n.Y)
			deleted = true
		}
	}
	return deleted
}
