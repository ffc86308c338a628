//go:build !ebiten

package ui

import (
	"image/color"
	"time"
)

// Flash is a no-op placeholder for headless builds.
type Flash struct{}

// NewFlash returns nil in the headless build.
func NewFlash(color.NRGBA) *Flash { return nil }

// Trigger is a no-op in the headless build.
func (f *Flash) Trigger(int, time.Duration, time.Time) {}

// Draw is a no-op in the headless build.
func (f *Flash) Draw(any, int, int, int, time.Time) {}
