package sand

import "image/color"

// ColorAt resolves the display color for the cell at (x, y). The second
// return is false for empty cells. Transient properties drive the tint: fire
// grades from yellow through orange to red as its life burns down, burning
// wood darkens with progress, and corroding metal shifts toward green.
func (w *World) ColorAt(x, y int) (color.RGBA, bool) {
	p := w.grid.At(x, y)
	if p == nil {
		return color.RGBA{}, false
	}

	switch p.Type {
	case Fire:
		return w.fireColor(p), true
	case Wood:
		if p.Burning > 0 {
			return w.charColor(p), true
		}
	case Metal:
		if p.Corrosion > 0 {
			return w.corrodedColor(p), true
		}
	}

	c := w.elem(p.Type).Color
	return shade(c, p.ColorShift), true
}

func (w *World) fireColor(p *Particle) color.RGBA {
	frac := 0.0
	if p.Span > 0 {
		frac = float64(p.Life) / float64(p.Span)
	}
	var base color.RGBA
	switch {
	case frac > 0.7:
		base = color.RGBA{R: 0xFF, G: 0xC8, B: 0x3C, A: 0xFF}
	case frac > 0.3:
		base = color.RGBA{R: 0xFF, G: 0x78, B: 0x1E, A: 0xFF}
	default:
		base = color.RGBA{R: 0xC8, G: 0x28, B: 0x19, A: 0xFF}
	}
	jitter := w.rng.IntN(21) - 10
	return shade(base, jitter)
}

// charColor darkens wood linearly with burn progress, down to half
// brightness at the ignition threshold.
func (w *World) charColor(p *Particle) color.RGBA {
	limit := w.cfg.Params.WoodIgnition
	if limit <= 0 {
		limit = 100
	}
	prog := float64(p.Burning) / float64(limit)
	if prog > 1 {
		prog = 1
	}
	base := w.elem(Wood).Color
	f := 1 - 0.5*prog
	return color.RGBA{
		R: uint8(float64(base.R) * f),
		G: uint8(float64(base.G) * f),
		B: uint8(float64(base.B) * f),
		A: base.A,
	}
}

// corrodedColor shifts metal toward acid green linearly with corrosion.
func (w *World) corrodedColor(p *Particle) color.RGBA {
	base := w.elem(Metal).Color
	target := w.elem(Acid).Color
	f := p.Corrosion
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: lerp8(base.R, target.R, f),
		G: lerp8(base.G, target.G, f),
		B: lerp8(base.B, target.B, f),
		A: base.A,
	}
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f)
}

// shade adds a clamped offset to each RGB channel.
func shade(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: clamp8(int(c.R) + delta),
		G: clamp8(int(c.G) + delta),
		B: clamp8(int(c.B) + delta),
		A: c.A,
	}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
