package app

import (
	"strconv"

	"lifescope/internal/core"
	"lifescope/internal/input"
	"lifescope/internal/life"
	"lifescope/internal/sim"
	"lifescope/internal/view"
)

// Session wires the grid, controller, transform and input handler together
// and advances them once per frame. It has no dependency on a window.
type Session struct {
	cfg        Config
	life       *life.Life
	controller *sim.Controller
	transform  *view.Transform
	input      *input.Handler
}

// NewSession builds a session from a validated configuration.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := life.New(cfg.GridWidth, cfg.GridHeight, cfg.Workers)
	if cfg.Density > 0 {
		l.Randomize(cfg.Seed, cfg.Density)
	}
	ctrl := sim.NewController(l, cfg.Interval)
	tr := view.NewTransform(
		core.Size{W: cfg.ScreenWidth, H: cfg.ScreenHeight},
		core.Size{W: cfg.GridWidth, H: cfg.GridHeight},
		cfg.ZoomMin, cfg.ZoomMax,
	)
	settings := input.Settings{ZoomSensitivity: cfg.ZoomSensitivity, PanSpeed: cfg.PanSpeed}
	h := input.NewHandler(tr, tr.Centered(cfg.Zoom), settings, l, ctrl)
	return &Session{cfg: cfg, life: l, controller: ctrl, transform: tr, input: h}, nil
}

// Tick applies one frame of input and then lets the controller advance, so
// edits made this frame are visible to the step that follows. It reports
// whether a generation was produced.
//
// The step interval is measured in the sum of sample.DT values, not wall-clock
// time. The GUI feeds 1/TPS per tick, so a slow frame still counts as one tick.
func (s *Session) Tick(sample input.Sample) bool {
	s.input.Apply(sample)
	return s.controller.Advance(sample.DT)
}

// Life exposes the grid for rendering.
func (s *Session) Life() *life.Life { return s.life }

// Controller exposes the simulation controller.
func (s *Session) Controller() *sim.Controller { return s.controller }

// Transform exposes the grid/screen mapping.
func (s *Session) Transform() *view.Transform { return s.transform }

// Viewport returns the current pan/zoom state.
func (s *Session) Viewport() view.Viewport { return s.input.Viewport() }

// Config returns the configuration the session was built from.
func (s *Session) Config() Config { return s.cfg }

// Parameters returns the controller snapshot extended with viewport values.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.controller.Parameters()
	v := s.Viewport()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Viewport",
		Params: []core.Parameter{
			{Key: "zoom", Label: "Zoom", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v.Zoom, 'f', 1, 64)},
		},
	})
	return snap
}
