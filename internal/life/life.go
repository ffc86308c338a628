package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension reports a non-positive width or height at construction.
	ErrInvalidDimension = errors.New("life: grid dimensions must be positive")
	// ErrShapeMismatch reports a bulk cell write whose size differs from the grid.
	ErrShapeMismatch = errors.New("life: cell buffer shape mismatch")
)

// Config controls the grid dimensions and seeding behaviour.
type Config struct {
	Width  int
	Height int

	// Seed initialises the engine RNG. The engine uses it verbatim; callers
	// that want a fresh board per run substitute their own entropy first.
	Seed int64

	// SeedDensity is the probability that Randomize assigns a live cell.
	SeedDensity float64

	RandomizeOnCreate bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       96,
		Height:      54,
		Seed:        1337,
		SeedDensity: 0.5,
	}
}

// Grid implements Conway's Game of Life on a bounded board. It keeps exactly
// two row-major cell buffers and flips an active index on every generation;
// the non-active buffer is scratch and is rewritten in full by each Step.
type Grid struct {
	w, h int

	bufs   [2][]uint8
	active int

	alive   int
	gen     int
	density float64

	rng *RNG
}

// New returns a Grid configured from cfg. Non-positive dimensions are a
// caller error and fail fast with ErrInvalidDimension.
func New(cfg Config) (*Grid, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, cfg.Width, cfg.Height)
	}
	density := cfg.SeedDensity
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	total := cfg.Width * cfg.Height
	g := &Grid{
		w:       cfg.Width,
		h:       cfg.Height,
		density: density,
		rng:     NewRNG(cfg.Seed),
	}
	g.bufs[0] = make([]uint8, total)
	g.bufs[1] = make([]uint8, total)
	if cfg.RandomizeOnCreate {
		g.Randomize()
	}
	return g, nil
}

// Width returns the fixed board width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the fixed board height in cells.
func (g *Grid) Height() int { return g.h }

// LiveCount returns the number of live cells in the current generation, as of
// the last Randomize or Step. SetCells deliberately does not refresh it.
func (g *Grid) LiveCount() int { return g.alive }

// Generation returns how many Steps the board has taken since construction.
// Randomize and SetCells rewrite cells without advancing it.
func (g *Grid) Generation() int { return g.gen }

// Cells exposes the current generation's cell values in row-major order.
// Readers must treat the slice as valid only until the next Step.
func (g *Grid) Cells() []uint8 { return g.bufs[g.active] }

// Cell returns the value at (x, y) in the current generation.
func (g *Grid) Cell(x, y int) uint8 { return g.bufs[g.active][y*g.w+x] }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Randomize reseeds the entire board.
func (g *Grid) Randomize() {
	g.RandomizeRegion(0, 0, g.w, g.h)
}

// RandomizeRegion reseeds every cell inside [left,right)x[top,bottom) with a
// live value at the configured seed density. Bounds outside the board are
// clipped rather than rejected, so callers may pass unclamped values such as
// "height-4" for the last rows without checking them. Cells outside the
// region keep their values; the live count is recomputed over the whole
// board so those survivors stay counted.
func (g *Grid) RandomizeRegion(left, top, right, bottom int) {
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > g.w {
		right = g.w
	}
	if bottom > g.h {
		bottom = g.h
	}

	cur := g.bufs[g.active]
	for y := top; y < bottom; y++ {
		row := y * g.w
		for x := left; x < right; x++ {
			if g.rng.Float64() < g.density {
				cur[row+x] = 1
			} else {
				cur[row+x] = 0
			}
		}
	}

	alive := 0
	for _, c := range cur {
		alive += int(c)
	}
	g.alive = alive
}

// Step advances the board by one generation. Neighbor counting uses the
// Moore neighborhood with clipped bounds: coordinates off the board
// contribute nothing, so edges and corners see fewer than eight neighbors.
// When dissolve is set, each computed cell is independently forced dead with
// probability dissolveChance after the Conway rule is applied. The live
// count is accumulated in the same pass and the active buffer flips on
// completion.
func (g *Grid) Step(dissolve bool, dissolveChance float64) {
	if dissolveChance < 0 {
		dissolveChance = 0
	}
	if dissolveChance > 1 {
		dissolveChance = 1
	}

	cur := g.bufs[g.active]
	nxt := g.bufs[1-g.active]
	w, h := g.w, g.h

	alive := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					neighbors += int(cur[ny*w+nx])
				}
			}

			idx := y*w + x
			next := uint8(0)
			if neighbors == 3 || (cur[idx] == 1 && neighbors == 2) {
				next = 1
			}
			if dissolve && g.rng.Float64() < dissolveChance {
				next = 0
			}
			nxt[idx] = next
			alive += int(next)
		}
	}

	g.alive = alive
	g.gen++
	g.active = 1 - g.active
}

// SetCells copies src into the current generation's buffer cell by cell.
// Non-zero source values are stored as 1 so the board stays binary. The
// source length must match the board exactly; otherwise nothing is written
// and ErrShapeMismatch is returned. LiveCount is left untouched: callers
// that need an accurate count immediately after a bulk write recount on
// their side, and the next Randomize or Step corrects it anyway.
func (g *Grid) SetCells(src []uint8) error {
	if len(src) != g.w*g.h {
		return fmt.Errorf("%w: got %d cells, want %d", ErrShapeMismatch, len(src), g.w*g.h)
	}
	cur := g.bufs[g.active]
	for i, v := range src {
		if v != 0 {
			cur[i] = 1
		} else {
			cur[i] = 0
		}
	}
	return nil
}
