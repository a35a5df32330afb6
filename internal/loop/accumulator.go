package loop

import "time"

// FixedStep is one simulation tick at 60 Hz.
const FixedStep = 16666667 * time.Nanosecond

// Accumulator stores unconsumed wall-clock time and releases it in Step-sized ticks.
type Accumulator struct {
	Step    time.Duration
	pending time.Duration
}

// NewAccumulator returns an empty accumulator releasing ticks of size step.
func NewAccumulator(step time.Duration) *Accumulator {
	return &Accumulator{Step: step}
}

// Add banks elapsed wall-clock time. Negative durations are ignored.
func (a *Accumulator) Add(elapsed time.Duration) {
	if elapsed > 0 {
		a.pending += elapsed
	}
}

// Next consumes one step and reports true if at least a full step was banked.
func (a *Accumulator) Next() bool {
	if a.Step <= 0 || a.pending < a.Step {
		return false
	}
	a.pending -= a.Step
	return true
}

// Pending returns the banked time not yet consumed.
func (a *Accumulator) Pending() time.Duration {
	return a.pending
}

// Reset discards banked time.
func (a *Accumulator) Reset() {
	a.pending = 0
}
