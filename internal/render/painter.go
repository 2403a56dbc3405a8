//go:build ebiten

package render

import (
	"image/color"

	"lifescope/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell state into a one-pixel-per-cell image and draws it
// through the viewport transform.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Draw uploads cells and blits them scaled by the cell size and shifted by
// the viewport offset.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells []bool, t *view.Transform, v view.Viewport, on, off color.Color) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	cell := t.CellSize(v)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cell.X, cell.Y)
	op.GeoM.Translate(v.Offset.X, v.Offset.Y)
	dst.DrawImage(gp.img, op)
}
