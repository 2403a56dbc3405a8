// Package view maps between grid cell coordinates and screen pixels under a
// pan offset and zoom factor.
package view

import (
	"math"

	"lifescope/internal/core"
)

// Viewport is the mutable pan/zoom state.
type Viewport struct {
	Offset core.Vec2
	Zoom   float64
}

// Transform holds the fixed quantities of the grid-to-screen mapping.
type Transform struct {
	Screen core.Size
	Grid   core.Size

	// BaseScale is screen/grid per axis and never changes after construction.
	BaseScale core.Vec2

	ZoomMin float64
	ZoomMax float64
}

// NewTransform derives the base scale from the screen and grid dimensions.
func NewTransform(screen, grid core.Size, zoomMin, zoomMax float64) *Transform {
	if zoomMin > zoomMax {
		zoomMin, zoomMax = zoomMax, zoomMin
	}
	return &Transform{
		Screen:    screen,
		Grid:      grid,
		BaseScale: core.Vec2{X: float64(screen.W) / float64(grid.W), Y: float64(screen.H) / float64(grid.H)},
		ZoomMin:   zoomMin,
		ZoomMax:   zoomMax,
	}
}

// GridToScreen returns p * BaseScale * zoom + offset.
func (t *Transform) GridToScreen(p core.Vec2, v Viewport) core.Vec2 {
	return p.Mul(t.CellSize(v)).Add(v.Offset)
}

// ScreenToGrid is the inverse of GridToScreen.
func (t *Transform) ScreenToGrid(s core.Vec2, v Viewport) core.Vec2 {
	return s.Sub(v.Offset).Div(t.CellSize(v))
}

// CellSize is the on-screen size of a single cell.
func (t *Transform) CellSize(v Viewport) core.Vec2 {
	return t.BaseScale.Scale(v.Zoom)
}

// Clamp limits z to [ZoomMin, ZoomMax].
func (t *Transform) Clamp(z float64) float64 {
	return math.Max(t.ZoomMin, math.Min(t.ZoomMax, z))
}

// ZoomAt scales the zoom multiplicatively by delta*sensitivity while keeping
// the grid point under anchor fixed on screen.
func (t *Transform) ZoomAt(v Viewport, anchor core.Vec2, delta, sensitivity float64) Viewport {
	if delta == 0 {
		return v
	}
	world := t.ScreenToGrid(anchor, v)
	v.Zoom = t.Clamp(v.Zoom + delta*sensitivity*v.Zoom)
	moved := t.GridToScreen(world, v)
	v.Offset = v.Offset.Add(anchor.Sub(moved))
	return v
}

// Pan shifts the offset by d screen pixels.
func (t *Transform) Pan(v Viewport, d core.Vec2) Viewport {
	v.Offset = v.Offset.Add(d)
	return v
}

// Center places the whole grid in the middle of the screen at the current zoom.
func (t *Transform) Center(v Viewport) Viewport {
	extent := core.Vec2{X: float64(t.Grid.W), Y: float64(t.Grid.H)}.Mul(t.CellSize(v))
	screen := core.Vec2{X: float64(t.Screen.W), Y: float64(t.Screen.H)}
	v.Offset = screen.Sub(extent).Scale(0.5)
	return v
}

// Centered returns a viewport at the given zoom with the grid centered.
func (t *Transform) Centered(zoom float64) Viewport {
	return t.Center(Viewport{Zoom: t.Clamp(zoom)})
}

// Rect is a half-open integer cell rectangle [X0,X1)×[Y0,Y1).
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// VisibleCells returns the cells that intersect the screen, clamped to the grid.
func (t *Transform) VisibleCells(v Viewport) Rect {
	lo := t.ScreenToGrid(core.Vec2{}, v)
	hi := t.ScreenToGrid(core.Vec2{X: float64(t.Screen.W), Y: float64(t.Screen.H)}, v)
	return Rect{
		X0: clampInt(int(math.Floor(lo.X)), 0, t.Grid.W),
		Y0: clampInt(int(math.Floor(lo.Y)), 0, t.Grid.H),
		X1: clampInt(int(math.Ceil(hi.X)), 0, t.Grid.W),
		Y1: clampInt(int(math.Ceil(hi.Y)), 0, t.Grid.H),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
