package render

import (
	"lifescope/internal/core"
	"lifescope/internal/view"
)

// MinGridLineSpacing is the smallest on-screen cell size, in pixels, at which
// grid lines are still drawn.
const MinGridLineSpacing = 4.0

// Line is a screen-space segment.
type Line struct {
	From, To core.Vec2
}

// GridLines returns the cell boundaries that cross the screen. Lines are
// omitted entirely once cells shrink below MinGridLineSpacing.
func GridLines(t *view.Transform, v view.Viewport) []Line {
	cell := t.CellSize(v)
	if cell.X < MinGridLineSpacing || cell.Y < MinGridLineSpacing {
		return nil
	}
	r := t.VisibleCells(v)
	if r.Empty() {
		return nil
	}
	lines := make([]Line, 0, (r.X1-r.X0+1)+(r.Y1-r.Y0+1))
	y0, y1 := float64(r.Y0), float64(r.Y1)
	for x := r.X0; x <= r.X1; x++ {
		fx := float64(x)
		lines = append(lines, Line{
			From: t.GridToScreen(core.Vec2{X: fx, Y: y0}, v),
			To:   t.GridToScreen(core.Vec2{X: fx, Y: y1}, v),
		})
	}
	x0, x1 := float64(r.X0), float64(r.X1)
	for y := r.Y0; y <= r.Y1; y++ {
		fy := float64(y)
		lines = append(lines, Line{
			From: t.GridToScreen(core.Vec2{X: x0, Y: fy}, v),
			To:   t.GridToScreen(core.Vec2{X: x1, Y: fy}, v),
		})
	}
	return lines
}

// CellAt returns the integer cell under a screen point and whether it lies on
// the grid.
func CellAt(t *view.Transform, v view.Viewport, p core.Vec2) (int, int, bool) {
	g := t.ScreenToGrid(p, v)
	if g.X < 0 || g.Y < 0 {
		return 0, 0, false
	}
	x, y := int(g.X), int(g.Y)
	return x, y, x < t.Grid.W && y < t.Grid.H
}
