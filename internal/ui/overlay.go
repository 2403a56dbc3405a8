//go:build ebiten

package ui

import (
	"image/color"

	"lifescope/internal/core"
	"lifescope/internal/render"
	"lifescope/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	gridLineColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	hoverColor    = color.RGBA{R: 80, G: 160, B: 255, A: 96}
)

// Overlay draws grid lines and highlights the cell under the cursor.
type Overlay struct {
	showGrid  bool
	showHover bool
}

// NewOverlay constructs a new overlay instance with grid lines enabled.
func NewOverlay() *Overlay {
	return &Overlay{showGrid: true, showHover: true}
}

// Update handles the overlay toggles: G for grid lines, H for the hover cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHover = !o.showHover
	}
}

// Draw renders the enabled layers on top of the cells.
func (o *Overlay) Draw(screen *ebiten.Image, t *view.Transform, v view.Viewport, cursor core.Vec2) {
	if o.showGrid {
		for _, l := range render.GridLines(t, v) {
			vector.StrokeLine(screen, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y), 1, gridLineColor, false)
		}
	}
	if !o.showHover {
		return
	}
	x, y, ok := render.CellAt(t, v, cursor)
	if !ok {
		return
	}
	pos := t.GridToScreen(core.Vec2{X: float64(x), Y: float64(y)}, v)
	size := t.CellSize(v)
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(size.X), float32(size.Y), hoverColor, false)
}
