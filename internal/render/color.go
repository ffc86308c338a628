package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseColor interprets a color literal from configuration. Accepted forms
// are #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b) and rgba(r, g, b, a). Color
// channels are integers in 0-255; the rgba alpha is a float in 0-1, CSS
// style. Short hex digits repeat, so #f80 means #ff8800, and hex colors
// without an alpha component are opaque.
func ParseColor(s string) (color.NRGBA, error) {
	lit := strings.TrimSpace(s)
	lower := strings.ToLower(lit)
	switch {
	case strings.HasPrefix(lit, "#"):
		return parseHex(lit)
	case strings.HasPrefix(lower, "rgba("):
		return parseChannels(lit, lit[5:], 4)
	case strings.HasPrefix(lower, "rgb("):
		return parseChannels(lit, lit[4:], 3)
	}
	return color.NRGBA{}, fmt.Errorf("color %q: unrecognized format", lit)
}

// HexString renders a color as #rrggbb, or #rrggbbaa when it is not fully
// opaque. The output round-trips through ParseColor.
func HexString(c color.NRGBA) string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func parseHex(lit string) (color.NRGBA, error) {
	digits := lit[1:]
	if len(digits) == 3 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}
	if len(digits) != 6 && len(digits) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want 3, 6 or 8 hex digits", lit)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: invalid hex digits", lit)
	}
	c := color.NRGBA{A: 0xff}
	if len(digits) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}

func parseChannels(lit, args string, want int) (color.NRGBA, error) {
	args, ok := strings.CutSuffix(strings.TrimSpace(args), ")")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("color %q: missing closing parenthesis", lit)
	}
	parts := strings.Split(args, ",")
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("color %q: want %d channels, got %d", lit, want, len(parts))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		p := strings.TrimSpace(parts[i])
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("color %q: channel %q is not an integer in 0-255", lit, p)
		}
		ch[i] = uint8(n)
	}
	a := uint8(255)
	if want == 4 {
		p := strings.TrimSpace(parts[3])
		f, err := strconv.ParseFloat(p, 64)
		if err != nil || f < 0 || f > 1 {
			return color.NRGBA{}, fmt.Errorf("color %q: alpha %q is not a number in 0-1", lit, p)
		}
		a = uint8(math.Round(f * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}
