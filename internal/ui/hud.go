//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Stats is the board readout the HUD renders each frame.
type Stats struct {
	Generation int64
	Alive      int64
	Paused     bool
	Dissolving bool
}

// HUD paints a small stats box in the top-left corner of the overlay. It
// starts hidden so the widget stays unobtrusive on the desktop.
type HUD struct {
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs the readout layer.
func NewHUD() *HUD {
	h := &HUD{}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle flips visibility and returns the new state.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Visible reports whether the readout is showing.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Draw paints the readout when visible.
func (h *HUD) Draw(screen *ebiten.Image, s Stats) {
	if h == nil || !h.visible {
		return
	}

	lines := []string{
		fmt.Sprintf("gen   %d", s.Generation),
		fmt.Sprintf("alive %d", s.Alive),
	}
	if s.Paused {
		lines = append(lines, "paused")
	}
	if s.Dissolving {
		lines = append(lines, "dissolving")
	}

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	boxW := width + 2*hudPadding
	boxH := len(lines)*hudLineHeight + 2*hudPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(boxW), float64(boxH))
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorM.Scale(0.06, 0.06, 0.08, 0.82)
	screen.DrawImage(h.pixel, op)

	for i, line := range lines {
		y := hudMargin + hudPadding + hudBaseline + i*hudLineHeight
		text.Draw(screen, line, face, hudMargin+hudPadding, y, color.RGBA{R: 220, G: 230, B: 220, A: 255})
	}
}

const (
	hudMargin     = 8
	hudPadding    = 6
	hudLineHeight = 14
	hudBaseline   = 11
)
