package pattern

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/WaterKat/CGOL-Widget/internal/life"
)

func writePatterns(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTable(t *testing.T) {
	path := writePatterns(t, `
patterns:
  - name: blinker
    cells:
      - "###"
  - name: glider
    cells:
      - ".#."
      - "..#"
      - "###"
`)

	tbl, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if tbl.Count() != 2 {
		t.Fatalf("count = %d, want 2", tbl.Count())
	}
	if !slices.Equal(tbl.Names(), []string{"blinker", "glider"}) {
		t.Fatalf("names = %v", tbl.Names())
	}

	g, ok := tbl.Get("glider")
	if !ok {
		t.Fatal("glider missing")
	}
	if g.W != 3 || g.H != 3 {
		t.Fatalf("glider size = %dx%d, want 3x3", g.W, g.H)
	}
	want := []uint8{0, 1, 0, 0, 0, 1, 1, 1, 1}
	if !slices.Equal(g.cells, want) {
		t.Fatalf("glider cells = %v, want %v", g.cells, want)
	}

	if _, ok := tbl.Get("toad"); ok {
		t.Fatal("undefined pattern should not resolve")
	}
}

func TestLoadTableRejectsMalformedStencils(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing name", "patterns:\n  - cells: [\"#\"]\n"},
		{"no cells", "patterns:\n  - name: empty\n"},
		{"empty row", "patterns:\n  - name: hollow\n    cells: [\"\"]\n"},
		{"ragged rows", "patterns:\n  - name: ragged\n    cells: [\"##\", \"#\"]\n"},
		{"bad character", "patterns:\n  - name: bad\n    cells: [\"#x\"]\n"},
		{"duplicate name", "patterns:\n  - name: twin\n    cells: [\"#\"]\n  - name: twin\n    cells: [\"#\"]\n"},
	}
	for _, tc := range cases {
		path := writePatterns(t, tc.body)
		if _, err := LoadTable(path); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestStampPrintsLiveCellsOnly(t *testing.T) {
	g, err := life.New(life.Config{Width: 5, Height: 5, Seed: 1, SeedDensity: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	// Pre-existing cell under a dead stencil position must survive.
	base := make([]uint8, 25)
	base[1*5+1] = 1
	if err := g.SetCells(base); err != nil {
		t.Fatal(err)
	}

	s := &Stencil{Name: "corner", W: 2, H: 2, cells: []uint8{1, 0, 0, 1}}
	if err := s.Stamp(g, 1, 1); err != nil {
		t.Fatalf("Stamp: %v", err)
	}

	cells := g.Cells()
	if cells[1*5+1] != 1 || cells[2*5+2] != 1 {
		t.Fatalf("stamped cells missing: %v", cells)
	}
	if cells[1*5+2] != 0 || cells[2*5+1] != 0 {
		t.Fatalf("dead stencil cells must not clear the board: %v", cells)
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	g, err := life.New(life.Config{Width: 3, Height: 3, Seed: 1, SeedDensity: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	s := &Stencil{Name: "bar", W: 3, H: 1, cells: []uint8{1, 1, 1}}
	if err := s.Stamp(g, -1, 0); err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if !slices.Equal(g.Cells(), []uint8{1, 1, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("left-clipped stamp = %v", g.Cells())
	}

	if err := s.Stamp(g, 2, 2); err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if !slices.Equal(g.Cells(), []uint8{1, 1, 0, 0, 0, 0, 0, 0, 1}) {
		t.Fatalf("right-clipped stamp = %v", g.Cells())
	}

	off := &Stencil{Name: "far", W: 1, H: 1, cells: []uint8{1}}
	before := append([]uint8(nil), g.Cells()...)
	if err := off.Stamp(g, 40, 40); err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if !slices.Equal(g.Cells(), before) {
		t.Fatal("fully off-board stamp changed the board")
	}
}
