//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads binary cell data into a single RGBA image and draws it
// scaled onto a destination. One painter serves one fixed board size and one
// pair of cell colors.
type GridPainter struct {
	w, h  int
	alive color.Color
	dead  color.Color
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a board of w*h cells drawn with the
// given live and dead cell colors.
func NewGridPainter(w, h int, alive, dead color.Color) *GridPainter {
	gp := &GridPainter{
		w:     w,
		h:     h,
		alive: alive,
		dead:  dead,
		buf:   make([]byte, 4*w*h),
	}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads cells into the painter image and draws it onto dst with each
// cell covering scale*scale pixels. Cell slices of the wrong length are
// ignored rather than partially drawn.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, gp.alive, gp.dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
