package render

import "image/color"

// ColorSource resolves per-cell display colors. Empty cells report false and
// receive the background color.
type ColorSource interface {
	ColorAt(x, y int) (color.RGBA, bool)
}

// FillRGBA converts a w-by-h cell field into RGBA pixels in buf, which must
// hold at least w*h*4 bytes.
func FillRGBA(buf []byte, w, h int, src ColorSource, background color.RGBA) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, ok := src.ColorAt(x, y)
			if !ok {
				c = background
			}
			base := (y*w + x) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}
