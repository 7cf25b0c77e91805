//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter owns the offscreen image and pixel buffer used to blit a cell
// field onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for the given cell dimensions.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, w*h*4),
	}
}

// Blit renders the source colors to the screen at the given integer scale.
func (gp *GridPainter) Blit(screen *ebiten.Image, src ColorSource, background color.RGBA, scale int) {
	FillRGBA(gp.buf, gp.w, gp.h, src, background)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(gp.img, op)
}
