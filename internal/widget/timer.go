package widget

import "time"

// FixedStep paces generations at a steady wall-clock interval. Long gaps,
// such as the process being suspended, collapse into a single pending step
// instead of a fast-forward burst.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller that fires every interval. The first
// ShouldStep call fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = time.Second / 8
	}
	return &FixedStep{step: interval, accumulator: interval}
}

// Interval returns the configured step period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether one generation should advance at the given
// clock reading. Callers pass the same value they use for idle tracking.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator > 2*f.step {
		f.accumulator = 2 * f.step
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
