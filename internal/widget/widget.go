package widget

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/WaterKat/CGOL-Widget/internal/config"
	"github.com/WaterKat/CGOL-Widget/internal/life"
	"github.com/WaterKat/CGOL-Widget/internal/pattern"
)

// SeedRequest asks the widget to inject fresh cells into the board. An empty
// Pattern reseeds bottom rows; otherwise the named stencil is stamped at a
// random spot along the bottom edge. Rows overrides how many rows a reseed
// touches, zero meaning the configured default. Clear wipes the board
// instead of seeding.
type SeedRequest struct {
	Source  string
	Pattern string
	Rows    int
	Clear   bool
}

// State owns the board and everything that mutates it. Tick and the board
// accessors run on the render loop's goroutine only. Enqueue, HasPattern,
// Generation and Alive are safe from any goroutine, which is how the notify
// service talks to a running widget.
type State struct {
	cfg      *config.Config
	log      *zap.Logger
	grid     *life.Grid
	patterns *pattern.Table
	timer    *FixedStep
	rng      *life.RNG

	intake    chan SeedRequest
	lastEvent time.Time

	paused     bool
	dissolving bool
	seeds      int64

	generation atomic.Int64
	alive      atomic.Int64
}

// New builds the widget state from configuration. A zero grid seed is
// replaced with the current clock so each launch differs. The patterns table
// may be nil, in which case every seed request falls back to row reseeding.
func New(cfg *config.Config, log *zap.Logger, patterns *pattern.Table) (*State, error) {
	seed := cfg.Grid.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid, err := life.New(life.Config{
		Width:             cfg.Grid.Width,
		Height:            cfg.Grid.Height,
		Seed:              seed,
		SeedDensity:       cfg.Grid.SeedDensity,
		RandomizeOnCreate: cfg.Grid.RandomizeOnCreate,
	})
	if err != nil {
		return nil, err
	}

	queue := cfg.Notify.QueueSize
	if queue <= 0 {
		queue = 1
	}
	s := &State{
		cfg:      cfg,
		log:      log,
		grid:     grid,
		patterns: patterns,
		timer:    NewFixedStep(cfg.StepInterval()),
		// Placement draws use a separate stream from the board's seeding.
		rng:    life.NewRNG(seed + 1),
		intake: make(chan SeedRequest, queue),
	}
	s.alive.Store(int64(grid.LiveCount()))
	return s, nil
}

// Enqueue hands a seed request to the render loop without blocking. It
// reports false when the intake queue is full and the request was dropped.
func (s *State) Enqueue(req SeedRequest) bool {
	select {
	case s.intake <- req:
		return true
	default:
		return false
	}
}

// HasPattern reports whether name resolves in the loaded pattern table.
func (s *State) HasPattern(name string) bool {
	if s.patterns == nil {
		return false
	}
	_, ok := s.patterns.Get(name)
	return ok
}

// Tick drains pending seed requests and advances the board when the pacing
// timer fires. It reports whether the visible state changed.
func (s *State) Tick(now time.Time) bool {
	if s.lastEvent.IsZero() {
		s.lastEvent = now
	}

	changed := false
drain:
	for {
		select {
		case req := <-s.intake:
			if req.Clear {
				s.Clear()
				s.lastEvent = now
				s.log.Debug("cleared board", zap.String("source", req.Source))
			} else {
				s.applySeed(req, now)
			}
			changed = true
		default:
			break drain
		}
	}

	if s.paused {
		return changed
	}
	if !s.timer.ShouldStep(now) {
		return changed
	}

	s.step(now)
	return true
}

// StepOnce advances exactly one generation at the given clock reading,
// bypassing the pacing timer and the pause flag. It backs the single-step
// key.
func (s *State) StepOnce(now time.Time) {
	if s.lastEvent.IsZero() {
		s.lastEvent = now
	}
	s.step(now)
}

func (s *State) step(now time.Time) {
	s.dissolving = now.Sub(s.lastEvent) >= s.cfg.Dissolve.IdleAfter
	s.grid.Step(s.dissolving, s.cfg.Dissolve.Chance)
	s.generation.Store(int64(s.grid.Generation()))
	s.alive.Store(int64(s.grid.LiveCount()))
}

func (s *State) applySeed(req SeedRequest, now time.Time) {
	s.lastEvent = now
	s.dissolving = false
	s.seeds++

	if req.Pattern != "" && s.patterns != nil {
		if st, ok := s.patterns.Get(req.Pattern); ok {
			x := s.rng.IntN(s.grid.Width() - st.W + 1)
			y := s.grid.Height() - st.H - 1
			if y < 0 {
				y = 0
			}
			if err := st.Stamp(s.grid, x, y); err != nil {
				s.log.Warn("stamp failed", zap.String("pattern", req.Pattern), zap.Error(err))
				return
			}
			// Bulk writes leave the engine's cached count alone, so the
			// published counter recounts here.
			s.alive.Store(countCells(s.grid.Cells()))
			s.log.Debug("stamped pattern",
				zap.String("pattern", req.Pattern),
				zap.String("source", req.Source),
				zap.Int("x", x),
				zap.Int("y", y))
			return
		}
		s.log.Warn("unknown pattern, reseeding rows instead",
			zap.String("pattern", req.Pattern),
			zap.String("source", req.Source))
	}

	rows := req.Rows
	if rows <= 0 {
		rows = s.cfg.Notify.Rows
	}
	s.grid.RandomizeRegion(0, s.grid.Height()-rows, s.grid.Width(), s.grid.Height())
	s.alive.Store(int64(s.grid.LiveCount()))
	s.log.Debug("reseeded rows",
		zap.Int("rows", rows),
		zap.String("source", req.Source))
}

// Reseed rebuilds the whole board from a fresh clock seed and restarts the
// generation counter.
func (s *State) Reseed() {
	grid, err := life.New(life.Config{
		Width:             s.grid.Width(),
		Height:            s.grid.Height(),
		Seed:              time.Now().UnixNano(),
		SeedDensity:       s.cfg.Grid.SeedDensity,
		RandomizeOnCreate: true,
	})
	if err != nil {
		return
	}
	s.grid = grid
	s.generation.Store(0)
	s.alive.Store(int64(grid.LiveCount()))
	s.lastEvent = time.Time{}
	s.dissolving = false
}

// Clear empties the board and restarts the generation counter.
func (s *State) Clear() {
	grid, err := life.New(life.Config{
		Width:       s.grid.Width(),
		Height:      s.grid.Height(),
		Seed:        time.Now().UnixNano(),
		SeedDensity: s.cfg.Grid.SeedDensity,
	})
	if err != nil {
		return
	}
	s.grid = grid
	s.generation.Store(0)
	s.alive.Store(0)
	s.dissolving = false
}

// TogglePause flips stepping on or off and returns the new paused state.
// Seed requests keep applying while paused.
func (s *State) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Paused reports whether stepping is suspended.
func (s *State) Paused() bool { return s.paused }

// Dissolving reports whether the last step ran with decay enabled.
func (s *State) Dissolving() bool { return s.dissolving }

// Cells exposes the current board for rendering. The slice belongs to the
// engine; treat it as read-only outside tests.
func (s *State) Cells() []uint8 { return s.grid.Cells() }

// Size returns the board dimensions in cells.
func (s *State) Size() (int, int) { return s.grid.Width(), s.grid.Height() }

// StepInterval returns the pacing between generations.
func (s *State) StepInterval() time.Duration { return s.timer.Interval() }

// Seeds counts the seed events applied since start. The render loop watches
// it to know when a highlight is due.
func (s *State) Seeds() int64 { return s.seeds }

// Generation returns the published generation counter.
func (s *State) Generation() int64 { return s.generation.Load() }

// Alive returns the published live cell count.
func (s *State) Alive() int64 { return s.alive.Load() }

func countCells(cells []uint8) int64 {
	var n int64
	for _, c := range cells {
		n += int64(c)
	}
	return n
}
