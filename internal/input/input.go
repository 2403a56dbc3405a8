// Package input turns per-frame input samples into viewport changes, cell
// edits and simulation commands.
package input

import (
	"lifescope/internal/core"
	"lifescope/internal/view"
)

// Key identifies a logical key the handler understands.
type Key uint16

const (
	KeyUp Key = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyCenter
	KeyPause
	KeyStep
	KeyClear
)

// KeySet is the set of keys held during a frame.
type KeySet uint16

// Keys builds a KeySet from the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s |= KeySet(k)
	}
	return s
}

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool { return s&KeySet(k) != 0 }

// Any reports whether any of keys is held.
func (s KeySet) Any(keys ...Key) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// Sample is one frame's worth of raw input.
type Sample struct {
	ScrollDelta  float64
	Pointer      core.Vec2
	PointerDelta core.Vec2
	Primary      bool
	PanButton    bool
	Keys         KeySet
	DT           float64
}

// Painter receives cell edits.
type Painter interface {
	Set(x, y int) bool
}

// Commands receives simulation-level commands.
type Commands interface {
	TogglePause()
	StepOnce()
	Clear()
}

// Settings tunes how raw input maps onto the viewport.
type Settings struct {
	ZoomSensitivity float64
	PanSpeed        float64
}

// Handler owns the viewport and applies input samples to it.
type Handler struct {
	transform *view.Transform
	viewport  view.Viewport
	settings  Settings

	painter  Painter
	commands Commands

	center core.EdgeTrigger
	pause  core.EdgeTrigger
	step   core.EdgeTrigger
	clear  core.EdgeTrigger
}

// NewHandler constructs a Handler starting from the given viewport.
func NewHandler(t *view.Transform, v view.Viewport, s Settings, p Painter, c Commands) *Handler {
	v.Zoom = t.Clamp(v.Zoom)
	return &Handler{transform: t, viewport: v, settings: s, painter: p, commands: c}
}

// Viewport returns the current viewport.
func (h *Handler) Viewport() view.Viewport { return h.viewport }

// Apply consumes one frame of input. Edits and commands are applied in a
// fixed order: zoom, drag pan, key pan, paint, center, then commands.
func (h *Handler) Apply(s Sample) {
	h.zoom(s)
	h.pan(s)
	h.paint(s)
	if h.center.Update(s.Keys.Has(KeyCenter)) {
		h.viewport = h.transform.Center(h.viewport)
	}
	if h.pause.Update(s.Keys.Has(KeyPause)) {
		h.commands.TogglePause()
	}
	if h.step.Update(s.Keys.Has(KeyStep)) {
		h.commands.StepOnce()
	}
	if h.clear.Update(s.Keys.Has(KeyClear)) {
		h.commands.Clear()
	}
}

func (h *Handler) zoom(s Sample) {
	if s.ScrollDelta == 0 {
		return
	}
	h.viewport = h.transform.ZoomAt(h.viewport, s.Pointer, s.ScrollDelta, h.settings.ZoomSensitivity)
}

func (h *Handler) pan(s Sample) {
	if s.PanButton {
		h.viewport = h.transform.Pan(h.viewport, s.PointerDelta)
	}
	var d core.Vec2
	speed := h.settings.PanSpeed
	if s.Keys.Any(KeyW, KeyUp) {
		d.Y += speed
	}
	if s.Keys.Any(KeyS, KeyDown) {
		d.Y -= speed
	}
	if s.Keys.Any(KeyA, KeyLeft) {
		d.X += speed
	}
	if s.Keys.Any(KeyD, KeyRight) {
		d.X -= speed
	}
	if d != (core.Vec2{}) {
		h.viewport = h.transform.Pan(h.viewport, d)
	}
}

func (h *Handler) paint(s Sample) {
	if !s.Primary {
		return
	}
	world := h.transform.ScreenToGrid(s.Pointer, h.viewport)
	// Truncation toward zero; Set discards anything outside the grid.
	h.painter.Set(int(world.X), int(world.Y))
}
