package core

// EdgeTrigger turns a level signal (key held) into a single event on the
// frame the signal first goes high.
type EdgeTrigger struct {
	down bool
}

// Update records the current level and reports whether this is a fresh press.
func (e *EdgeTrigger) Update(down bool) bool {
	fresh := down && !e.down
	e.down = down
	return fresh
}
