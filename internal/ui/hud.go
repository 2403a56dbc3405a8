//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifescope/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD draws the run state in the top-left corner and counters in the top-right.
type HUD struct {
	provider parameterProvider
	width    int
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD for a screen of the given width.
func NewHUD(provider parameterProvider, width int) *HUD {
	return &HUD{provider: provider, width: width}
}

// Update refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil || h.provider == nil {
		return
	}
	h.snapshot = h.provider.Parameters()
}

// Draw paints the HUD text.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil()

	text.Draw(screen, h.value("state"), face, 10, 10+lineH, color.White)

	right := []string{
		fmt.Sprintf("GENERATION: %s", h.value("generation")),
		fmt.Sprintf("POPULATION: %s", h.value("population")),
		fmt.Sprintf("ZOOM: %s", h.value("zoom")),
	}
	for i, line := range right {
		text.Draw(screen, line, face, h.width-200, 10+lineH*(i+1), color.White)
	}
}

func (h *HUD) value(key string) string {
	p, ok := h.snapshot.Lookup(key)
	if !ok {
		return "--"
	}
	return p.Value
}
