package pattern

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/WaterKat/CGOL-Widget/internal/life"
)

// Stencil is a named rectangular arrangement of cells that can be stamped
// onto a board. Rows use '#' for a live cell and '.' for a dead one.
type Stencil struct {
	Name  string
	W, H  int
	cells []uint8 // row-major, 0/1
}

type stencilEntry struct {
	Name  string   `yaml:"name"`
	Cells []string `yaml:"cells"`
}

type stencilFile struct {
	Patterns []stencilEntry `yaml:"patterns"`
}

// Table holds all loaded stencils indexed by name.
type Table struct {
	stencils map[string]*Stencil
}

// Get returns the named stencil, or false if none is defined.
func (t *Table) Get(name string) (*Stencil, bool) {
	s, ok := t.stencils[name]
	return s, ok
}

// Count returns the number of loaded stencils.
func (t *Table) Count() int {
	return len(t.stencils)
}

// Names returns the stencil names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.stencils))
	for name := range t.stencils {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadTable loads stencil definitions from a YAML file.
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patterns: %w", err)
	}
	var f stencilFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse patterns: %w", err)
	}
	t := &Table{stencils: make(map[string]*Stencil, len(f.Patterns))}
	for i, entry := range f.Patterns {
		s, err := compile(entry)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", i, err)
		}
		if _, dup := t.stencils[s.Name]; dup {
			return nil, fmt.Errorf("pattern %q defined twice", s.Name)
		}
		t.stencils[s.Name] = s
	}
	return t, nil
}

func compile(e stencilEntry) (*Stencil, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if len(e.Cells) == 0 {
		return nil, fmt.Errorf("%s: cells are required", name)
	}
	w := len(e.Cells[0])
	if w == 0 {
		return nil, fmt.Errorf("%s: rows must not be empty", name)
	}
	cells := make([]uint8, 0, w*len(e.Cells))
	for _, row := range e.Cells {
		if len(row) != w {
			return nil, fmt.Errorf("%s: rows must share one width, got %d and %d", name, w, len(row))
		}
		for i := 0; i < len(row); i++ {
			switch row[i] {
			case '#':
				cells = append(cells, 1)
			case '.':
				cells = append(cells, 0)
			default:
				return nil, fmt.Errorf("%s: cells use '#' and '.', got %q", name, string(row[i]))
			}
		}
	}
	return &Stencil{Name: name, W: w, H: len(e.Cells), cells: cells}, nil
}

// Stamp prints the stencil's live cells onto the board with the top-left
// corner at (x, y). Dead stencil cells leave the board alone, and parts
// falling outside the board clip away. Like any bulk write, the engine's
// cached live count is left to the caller to refresh.
func (s *Stencil) Stamp(g *life.Grid, x, y int) error {
	next := append([]uint8(nil), g.Cells()...)
	w, h := g.Width(), g.Height()
	for sy := 0; sy < s.H; sy++ {
		gy := y + sy
		if gy < 0 || gy >= h {
			continue
		}
		for sx := 0; sx < s.W; sx++ {
			gx := x + sx
			if gx < 0 || gx >= w {
				continue
			}
			if s.cells[sy*s.W+sx] != 0 {
				next[gy*w+gx] = 1
			}
		}
	}
	return g.SetCells(next)
}
