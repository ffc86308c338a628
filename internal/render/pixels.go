package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// The two cell colors are resolved once and stamped per cell. Channel values
// are alpha-premultiplied, the layout the image upload expects.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	var px [2][4]byte
	for i, c := range []color.Color{off, on} {
		r, g, b, a := c.RGBA()
		px[i] = [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	for i, c := range cells {
		v := 0
		if c != 0 {
			v = 1
		}
		copy(buf[i*4:i*4+4], px[v][:])
	}
}
