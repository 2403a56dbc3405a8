package core

// StepTimer gates simulation steps on an accumulated, externally supplied
// frame delta. Time is measured in seconds.
type StepTimer struct {
	interval float64
	elapsed  float64
}

// NewStepTimer constructs a timer that fires once per interval seconds.
func NewStepTimer(interval float64) *StepTimer {
	t := &StepTimer{}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the step interval. Non-positive values fall back to 0.5s.
func (t *StepTimer) SetInterval(interval float64) {
	if interval <= 0 {
		interval = 0.5
	}
	t.interval = interval
}

// Interval returns the configured step interval.
func (t *StepTimer) Interval() float64 { return t.interval }

// Elapsed returns the time accumulated since the last step.
func (t *StepTimer) Elapsed() float64 { return t.elapsed }

// Advance accumulates dt and reports whether a step is due. When it fires the
// accumulator is reset to zero rather than carried over.
func (t *StepTimer) Advance(dt float64) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.interval {
		t.elapsed = 0
		return true
	}
	return false
}

// Reset zeroes the accumulator.
func (t *StepTimer) Reset() { t.elapsed = 0 }
