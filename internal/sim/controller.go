// Package sim decides when the automaton advances.
package sim

import (
	"strconv"

	"lifescope/internal/core"
)

// Stepper advances a grid by one generation.
type Stepper interface {
	Step()
	Population() int
	Clear()
}

// Controller owns pause state, the step timer and the generation counter.
type Controller struct {
	grid       Stepper
	timer      *core.StepTimer
	paused     bool
	generation int
}

// NewController constructs a running controller stepping every interval seconds.
func NewController(grid Stepper, interval float64) *Controller {
	return &Controller{grid: grid, timer: core.NewStepTimer(interval)}
}

// Paused reports whether the simulation is paused.
func (c *Controller) Paused() bool { return c.paused }

// Generation returns the number of generations stepped so far.
func (c *Controller) Generation() int { return c.generation }

// Elapsed returns the time accumulated toward the next step.
func (c *Controller) Elapsed() float64 { return c.timer.Elapsed() }

// TogglePause flips between running and paused.
func (c *Controller) TogglePause() { c.paused = !c.paused }

// SetPaused forces the pause state.
func (c *Controller) SetPaused(paused bool) { c.paused = paused }

// Advance feeds one frame's delta time. While running it steps at most once
// per call and reports whether a generation was produced.
func (c *Controller) Advance(dt float64) bool {
	if c.paused {
		return false
	}
	if !c.timer.Advance(dt) {
		return false
	}
	c.grid.Step()
	c.generation++
	return true
}

// StepOnce advances exactly one generation regardless of pause state.
func (c *Controller) StepOnce() {
	c.grid.Step()
	c.generation++
	c.timer.Reset()
}

// Clear kills every cell and restarts the step timer. The generation counter
// keeps counting from where it was.
func (c *Controller) Clear() {
	c.grid.Clear()
	c.timer.Reset()
}

// Parameters reports the controller state for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	state := "RUNNING"
	if c.paused {
		state = "PAUSED"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Simulation",
		Params: []core.Parameter{
			{Key: "state", Label: "State", Type: core.ParamTypeString, Value: state},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(c.generation)},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(c.grid.Population())},
			{Key: "interval", Label: "Interval", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.timer.Interval(), 'f', 2, 64)},
		},
	}}}
}
