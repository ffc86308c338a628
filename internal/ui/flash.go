//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Flash briefly tints freshly seeded rows so a notification reads as an
// event even when the board is already busy.
type Flash struct {
	pixel *ebiten.Image
	tint  color.NRGBA

	rows  int
	total time.Duration
	until time.Time
}

// NewFlash constructs the highlight layer with the given tint.
func NewFlash(tint color.NRGBA) *Flash {
	f := &Flash{tint: tint}
	f.pixel = ebiten.NewImage(1, 1)
	f.pixel.Fill(color.White)
	return f
}

// Trigger lights the bottom rows for the given duration starting at now.
func (f *Flash) Trigger(rows int, d time.Duration, now time.Time) {
	if f == nil || rows <= 0 || d <= 0 {
		return
	}
	f.rows = rows
	f.total = d
	f.until = now.Add(d)
}

// Draw paints the fading band over the bottom rows. Board dimensions are in
// cells, scale is pixels per cell.
func (f *Flash) Draw(screen *ebiten.Image, w, h, scale int, now time.Time) {
	if f == nil || f.rows <= 0 || f.total <= 0 {
		return
	}
	remain := f.until.Sub(now)
	if remain <= 0 {
		return
	}
	frac := float64(remain) / float64(f.total)

	rows := f.rows
	if rows > h {
		rows = h
	}
	bandW := float64(w * scale)
	bandH := float64(rows * scale)
	top := float64((h - rows) * scale)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bandW, bandH)
	op.GeoM.Translate(0, top)
	op.ColorM.Scale(
		float64(f.tint.R)/255.0,
		float64(f.tint.G)/255.0,
		float64(f.tint.B)/255.0,
		float64(f.tint.A)/255.0*frac,
	)
	screen.DrawImage(f.pixel, op)
}
