package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 1}
	buf := make([]byte, 4*len(cells))

	alive := color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}
	dead := color.NRGBA{}
	fillBinaryRGBA(buf, cells, alive, dead)

	want := []byte{
		0xff, 0x80, 0x00, 0xff,
		0x00, 0x00, 0x00, 0x00,
		0xff, 0x80, 0x00, 0xff,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillBinaryRGBAPremultipliesAlpha(t *testing.T) {
	cells := []uint8{1}
	buf := make([]byte, 4)

	// Half-transparent pure red premultiplies to half-intensity red.
	fillBinaryRGBA(buf, cells, color.NRGBA{R: 0xff, A: 0x80}, color.NRGBA{})

	want := []byte{0x80, 0x00, 0x00, 0x80}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want premultiplied %v", buf, want)
	}
}
