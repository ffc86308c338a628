package render

import (
	"image/color"
	"testing"
)

func TestParseColorForms(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f80", color.NRGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}},
		{"#00ff00", color.NRGBA{G: 0xff, A: 0xff}},
		{"#ABCDEF", color.NRGBA{R: 0xab, G: 0xcd, B: 0xef, A: 0xff}},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{"rgb(255, 0, 128)", color.NRGBA{R: 255, B: 128, A: 255}},
		{"RGB(1,2,3)", color.NRGBA{R: 1, G: 2, B: 3, A: 255}},
		{"rgba(10, 20, 30, 0.5)", color.NRGBA{R: 10, G: 20, B: 30, A: 128}},
		{"rgba(255, 255, 255, 1)", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"  #fff  ", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"rgba(0,0,0,0)", color.NRGBA{}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseColorRejectsMalformedLiterals(t *testing.T) {
	bad := []string{
		"",
		"blue",
		"#ff",
		"#fffff",
		"#ggg",
		"rgb(1,2)",
		"rgb(1,2,3,4)",
		"rgb(256,0,0)",
		"rgb(-1,0,0)",
		"rgb(0.5,0,0)",
		"rgba(0,0,0,1.5)",
		"rgba(0,0,0,-0.1)",
		"rgb(1,2,3",
	}
	for _, in := range bad {
		if _, err := ParseColor(in); err == nil {
			t.Fatalf("ParseColor(%q) accepted a malformed literal", in)
		}
	}
}

func TestHexStringRoundTrips(t *testing.T) {
	cases := []struct {
		c    color.NRGBA
		want string
	}{
		{color.NRGBA{R: 0xff, G: 0x88, A: 0xff}, "#ff8800"},
		{color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, "#11223344"},
		{color.NRGBA{A: 0xff}, "#000000"},
	}
	for _, tc := range cases {
		s := HexString(tc.c)
		if s != tc.want {
			t.Fatalf("HexString(%+v) = %q, want %q", tc.c, s, tc.want)
		}
		back, err := ParseColor(s)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", s, err)
		}
		if back != tc.c {
			t.Fatalf("round trip %+v -> %q -> %+v", tc.c, s, back)
		}
	}
}
