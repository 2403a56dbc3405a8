// Package life implements Conway's Game of Life on a bounded, double-buffered
// grid. Cells on the outer border never see their neighbors.
package life

import (
	"golang.org/x/sync/errgroup"

	"lifescope/internal/core"
)

// Life owns the current and next generation buffers.
type Life struct {
	w, h    int
	cur     *core.BoolGrid
	nxt     *core.BoolGrid
	workers int
}

// New returns an all-dead Life grid with the provided dimensions. workers > 1
// splits each sweep into row bands evaluated concurrently.
func New(w, h, workers int) *Life {
	cur := core.NewBoolGrid(w, h)
	if workers < 1 {
		workers = 1
	}
	return &Life{w: cur.W, h: cur.H, cur: cur, nxt: core.NewBoolGrid(cur.W, cur.H), workers: workers}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current generation in row-major order. Callers must treat
// it as read-only; it is replaced on every Step.
func (l *Life) Cells() []bool { return l.cur.Cells() }

// Alive reports whether (x, y) is alive in the current generation.
func (l *Life) Alive(x, y int) bool { return l.cur.Get(x, y) }

// Set marks (x, y) alive. Out-of-bounds coordinates are ignored.
func (l *Life) Set(x, y int) bool { return l.cur.Set(x, y, true) }

// Clear kills every cell.
func (l *Life) Clear() { l.cur.Clear() }

// Population returns the number of alive cells.
func (l *Life) Population() int { return l.cur.Count() }

// Randomize fills the board using the provided seed and density.
func (l *Life) Randomize(seed int64, density float64) {
	core.FillDensity(core.NewRNG(seed), l.cur.Cells(), density)
}

// CountLivingNeighbors counts alive cells in the Moore neighborhood of (x, y).
// Border cells always report zero.
func (l *Life) CountLivingNeighbors(x, y int) int {
	if x <= 0 || y <= 0 || x >= l.w-1 || y >= l.h-1 {
		return 0
	}
	cells := l.cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		row := (y + dy) * l.w
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if cells[row+x+dx] {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.nxt.Clear()
	if l.workers <= 1 || l.h < 2*l.workers {
		l.sweep(0, l.h)
	} else {
		var eg errgroup.Group
		rows := (l.h + l.workers - 1) / l.workers
		for start := 0; start < l.h; start += rows {
			start, end := start, min(start+rows, l.h)
			eg.Go(func() error {
				l.sweep(start, end)
				return nil
			})
		}
		// Bands never fail; Wait is the barrier before the swap.
		_ = eg.Wait()
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// sweep writes rows [y0, y1) of the next generation.
func (l *Life) sweep(y0, y1 int) {
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < l.w; x++ {
			idx := y*l.w + x
			if rule(cur[idx], l.CountLivingNeighbors(x, y)) {
				nxt[idx] = true
			}
		}
	}
}

// rule is B3/S23.
func rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
