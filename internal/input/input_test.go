package input

import (
	"math"
	"testing"

	"lifescope/internal/core"
	"lifescope/internal/view"
)

type recordingPainter struct {
	w, h int
	set  [][2]int
}

func (p *recordingPainter) Set(x, y int) bool {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return false
	}
	p.set = append(p.set, [2]int{x, y})
	return true
}

type countingCommands struct {
	pauses, steps, clears int
}

func (c *countingCommands) TogglePause() { c.pauses++ }
func (c *countingCommands) StepOnce()    { c.steps++ }
func (c *countingCommands) Clear()       { c.clears++ }

func newTestHandler(v view.Viewport) (*Handler, *recordingPainter, *countingCommands) {
	tr := view.NewTransform(core.Size{W: 100, H: 100}, core.Size{W: 100, H: 100}, 1, 20)
	p := &recordingPainter{w: 100, h: 100}
	c := &countingCommands{}
	return NewHandler(tr, v, Settings{ZoomSensitivity: 0.1, PanSpeed: 10}, p, c), p, c
}

func TestZoomAnchorsPointer(t *testing.T) {
	h, _, _ := newTestHandler(view.Viewport{Offset: core.Vec2{X: -30, Y: 12}, Zoom: 4})
	pointer := core.Vec2{X: 63, Y: 41}
	g := h.transform.ScreenToGrid(pointer, h.Viewport())
	h.Apply(Sample{ScrollDelta: 2, Pointer: pointer})
	if h.Viewport().Zoom <= 4 {
		t.Fatalf("zoom = %v, expected it to grow", h.Viewport().Zoom)
	}
	s := h.transform.GridToScreen(g, h.Viewport())
	if math.Abs(s.X-pointer.X) > 1e-9 || math.Abs(s.Y-pointer.Y) > 1e-9 {
		t.Fatalf("anchored grid point drifted to %+v", s)
	}
}

func TestDragPan(t *testing.T) {
	h, _, _ := newTestHandler(view.Viewport{Zoom: 1})
	h.Apply(Sample{PointerDelta: core.Vec2{X: 5, Y: -3}})
	if h.Viewport().Offset != (core.Vec2{}) {
		t.Fatal("pointer motion without the pan button moved the viewport")
	}
	h.Apply(Sample{PanButton: true, PointerDelta: core.Vec2{X: 5, Y: -3}})
	if h.Viewport().Offset != (core.Vec2{X: 5, Y: -3}) {
		t.Fatalf("offset = %+v, want {5 -3}", h.Viewport().Offset)
	}
}

func TestKeyPan(t *testing.T) {
	cases := []struct {
		keys KeySet
		want core.Vec2
	}{
		{Keys(KeyW), core.Vec2{Y: 10}},
		{Keys(KeyUp), core.Vec2{Y: 10}},
		{Keys(KeyS), core.Vec2{Y: -10}},
		{Keys(KeyDown), core.Vec2{Y: -10}},
		{Keys(KeyA), core.Vec2{X: 10}},
		{Keys(KeyLeft), core.Vec2{X: 10}},
		{Keys(KeyD), core.Vec2{X: -10}},
		{Keys(KeyRight), core.Vec2{X: -10}},
		{Keys(KeyW, KeyUp), core.Vec2{Y: 10}},
		{Keys(KeyW, KeyD), core.Vec2{X: -10, Y: 10}},
		{Keys(KeyA, KeyD), core.Vec2{}},
	}
	for _, tc := range cases {
		h, _, _ := newTestHandler(view.Viewport{Zoom: 1})
		h.Apply(Sample{Keys: tc.keys})
		if got := h.Viewport().Offset; got != tc.want {
			t.Fatalf("keys %b: offset = %+v, want %+v", tc.keys, got, tc.want)
		}
	}
}

func TestKeyPanRepeatsWhileHeld(t *testing.T) {
	h, _, _ := newTestHandler(view.Viewport{Zoom: 1})
	for i := 0; i < 3; i++ {
		h.Apply(Sample{Keys: Keys(KeyRight)})
	}
	if got := h.Viewport().Offset.X; got != -30 {
		t.Fatalf("offset.x = %v after three held frames, want -30", got)
	}
}

func TestPaintTruncatesAndBoundsChecks(t *testing.T) {
	h, p, _ := newTestHandler(view.Viewport{Offset: core.Vec2{X: 10, Y: 10}, Zoom: 2})
	h.Apply(Sample{Primary: true, Pointer: core.Vec2{X: 15.9, Y: 13.1}})
	h.Apply(Sample{Primary: true, Pointer: core.Vec2{X: 500, Y: 20}})
	h.Apply(Sample{Primary: true, Pointer: core.Vec2{X: -50, Y: 20}})
	h.Apply(Sample{Primary: false, Pointer: core.Vec2{X: 20, Y: 20}})
	if len(p.set) != 1 || p.set[0] != [2]int{2, 1} {
		t.Fatalf("painted %v, want only (2,1)", p.set)
	}
}

func TestPaintWhileHeld(t *testing.T) {
	h, p, _ := newTestHandler(view.Viewport{Zoom: 1})
	for x := 0; x < 4; x++ {
		h.Apply(Sample{Primary: true, Pointer: core.Vec2{X: float64(x) + 0.5, Y: 7.5}})
	}
	if len(p.set) != 4 {
		t.Fatalf("painted %d cells while held, want 4", len(p.set))
	}
}

func TestCenterIsEdgeTriggered(t *testing.T) {
	h, _, _ := newTestHandler(view.Viewport{Zoom: 2})
	h.Apply(Sample{Keys: Keys(KeyCenter)})
	want := core.Vec2{X: -50, Y: -50}
	if h.Viewport().Offset != want {
		t.Fatalf("centered offset = %+v, want %+v", h.Viewport().Offset, want)
	}
	// Panning while Center stays held must not snap back.
	h.Apply(Sample{Keys: Keys(KeyCenter, KeyA)})
	if h.Viewport().Offset != want.Add(core.Vec2{X: 10}) {
		t.Fatalf("held center re-fired: offset = %+v", h.Viewport().Offset)
	}
}

func TestPauseIsEdgeTriggered(t *testing.T) {
	h, _, c := newTestHandler(view.Viewport{Zoom: 1})
	for i := 0; i < 5; i++ {
		h.Apply(Sample{Keys: Keys(KeyPause)})
	}
	if c.pauses != 1 {
		t.Fatalf("holding pause toggled %d times, want 1", c.pauses)
	}
	h.Apply(Sample{})
	h.Apply(Sample{Keys: Keys(KeyPause)})
	if c.pauses != 2 {
		t.Fatalf("fresh press toggled %d times total, want 2", c.pauses)
	}
}

func TestStepAndClearCommands(t *testing.T) {
	h, _, c := newTestHandler(view.Viewport{Zoom: 1})
	h.Apply(Sample{Keys: Keys(KeyStep, KeyClear)})
	h.Apply(Sample{Keys: Keys(KeyStep, KeyClear)})
	if c.steps != 1 || c.clears != 1 {
		t.Fatalf("steps=%d clears=%d, want 1 and 1", c.steps, c.clears)
	}
}

func TestInitialZoomClamped(t *testing.T) {
	h, _, _ := newTestHandler(view.Viewport{Zoom: 500})
	if h.Viewport().Zoom != 20 {
		t.Fatalf("zoom = %v, want clamp to 20", h.Viewport().Zoom)
	}
}
