package sand

import "errors"

// ErrOutOfBounds is returned by accessors given coordinates outside the grid.
var ErrOutOfBounds = errors.New("sand: coordinates out of bounds")

// Grid stores a 2D field of particle-or-empty cells in row-major order.
// Each cell holds at most one particle; nil means empty.
type Grid struct {
	w, h  int
	cells []*Particle
	count int
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]*Particle, w*h)}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.h }

// Count returns the number of occupied cells.
func (g *Grid) Count() int { return g.count }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// At returns the particle at (x, y), or nil when the cell is empty or the
// coordinates are out of bounds.
func (g *Grid) At(x, y int) *Particle {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[g.Index(x, y)]
}

// Get returns the particle at (x, y). A nil particle with a nil error means
// the cell is empty.
func (g *Grid) Get(x, y int) (*Particle, error) {
	if !g.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	return g.cells[g.Index(x, y)], nil
}

// Set stores p at (x, y), replacing any existing occupant. A nil p empties
// the cell. The particle's coordinates are updated to match its storage slot.
func (g *Grid) Set(x, y int, p *Particle) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	idx := g.Index(x, y)
	if g.cells[idx] != nil {
		g.count--
	}
	g.cells[idx] = p
	if p != nil {
		p.X, p.Y = x, y
		g.count++
	}
	return nil
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = nil
	}
	g.count = 0
}
