package sand

import "math"

// Point is a grid coordinate produced by the shape enumerators. Enumerated
// points may fall outside the grid near edges; the mutation primitives clip
// them silently.
type Point struct {
	X, Y int
}

// LinePoints enumerates the cells of a line between two grid points using
// Bresenham's algorithm.
func LinePoints(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	var pts []Point
	for {
		pts = append(pts, Point{x0, y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// RectPoints enumerates a rectangle spanned by two corners, filled or
// outline only.
func RectPoints(x0, y0, x1, y1 int, filled bool) []Point {
	minX, maxX := minMax(x0, x1)
	minY, maxY := minMax(y0, y1)
	var pts []Point
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if filled || x == minX || x == maxX || y == minY || y == maxY {
				pts = append(pts, Point{x, y})
			}
		}
	}
	return pts
}

// EllipsePoints enumerates an ellipse centered at (cx, cy) with radii rx, ry.
// Filled ellipses use the normalized-distance test over the bounding box;
// outlines sample the parametric angle.
func EllipsePoints(cx, cy, rx, ry int, filled bool) []Point {
	if rx < 1 {
		rx = 1
	}
	if ry < 1 {
		ry = 1
	}
	var pts []Point
	if filled {
		fx, fy := float64(rx), float64(ry)
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				nx := float64(dx) / fx
				ny := float64(dy) / fy
				if nx*nx+ny*ny <= 1 {
					pts = append(pts, Point{cx + dx, cy + dy})
				}
			}
		}
		return pts
	}

	steps := 4 * (rx + ry)
	if steps < 16 {
		steps = 16
	}
	seen := make(map[Point]struct{}, steps)
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		pt := Point{
			X: cx + int(math.Round(float64(rx)*math.Cos(theta))),
			Y: cy + int(math.Round(float64(ry)*math.Sin(theta))),
		}
		if _, ok := seen[pt]; ok {
			continue
		}
		seen[pt] = struct{}{}
		pts = append(pts, pt)
	}
	return pts
}

// brushPoints enumerates the filled circle of the brush around (x, y).
func brushPoints(x, y, r int) []Point {
	if r <= 1 {
		return []Point{{x, y}}
	}
	var pts []Point
	r2 := (r - 1) * (r - 1)
	for dy := -r + 1; dy <= r-1; dy++ {
		for dx := -r + 1; dx <= r-1; dx++ {
			if dx*dx+dy*dy <= r2 {
				pts = append(pts, Point{x + dx, y + dy})
			}
		}
	}
	return pts
}

// Paint places the element in a brush-radius circle around (x, y), filling
// only empty cells. Each call records its own history entry, so a drag
// gesture produces one entry per interpolated point.
func (w *World) Paint(x, y int, t ElementType) bool {
	if !t.Valid() {
		return false
	}
	w.beginMutation()
	return w.stamp(brushPoints(x, y, w.cfg.Params.BrushRadius), t)
}

// Erase removes particles in a brush-radius circle around (x, y).
func (w *World) Erase(x, y int) bool {
	w.beginMutation()
	any := false
	for _, pt := range brushPoints(x, y, w.cfg.Params.BrushRadius) {
		if w.remove(pt.X, pt.Y) {
			any = true
		}
	}
	return any
}

// DrawLine places the element along the line between two grid points.
func (w *World) DrawLine(x0, y0, x1, y1 int, t ElementType) bool {
	if !t.Valid() {
		return false
	}
	w.beginMutation()
	return w.stamp(LinePoints(x0, y0, x1, y1), t)
}

// DrawRect places the element in a rectangle spanned by two corners.
func (w *World) DrawRect(x0, y0, x1, y1 int, t ElementType, filled bool) bool {
	if !t.Valid() {
		return false
	}
	w.beginMutation()
	return w.stamp(RectPoints(x0, y0, x1, y1, filled), t)
}

// DrawEllipse places the element in an ellipse around a center point.
func (w *World) DrawEllipse(cx, cy, rx, ry int, t ElementType, filled bool) bool {
	if !t.Valid() {
		return false
	}
	w.beginMutation()
	return w.stamp(EllipsePoints(cx, cy, rx, ry, filled), t)
}

// Clear removes every particle as a single undoable operation.
func (w *World) Clear() {
	w.beginMutation()
	w.grid.Clear()
	clear(w.active)
	clear(w.pending)
}

func (w *World) stamp(pts []Point, t ElementType) bool {
	any := false
	for _, pt := range pts {
		if w.spawn(t, pt.X, pt.Y) != nil {
			any = true
		}
	}
	return any
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
