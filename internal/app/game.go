//go:build ebiten

package app

import (
	"image/color"

	"lifescope/internal/core"
	"lifescope/internal/input"
	"lifescope/internal/render"
	"lifescope/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	key  ebiten.Key
	mask input.Key
}{
	{ebiten.KeyUp, input.KeyUp},
	{ebiten.KeyDown, input.KeyDown},
	{ebiten.KeyLeft, input.KeyLeft},
	{ebiten.KeyRight, input.KeyRight},
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyD, input.KeyD},
	{ebiten.KeyC, input.KeyCenter},
	{ebiten.KeySpace, input.KeyPause},
	{ebiten.KeyN, input.KeyStep},
	{ebiten.KeyX, input.KeyClear},
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color
	bgColor  color.Color

	cursor     core.Vec2
	haveCursor bool
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	size := s.Life().Size()
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(s, s.Config().ScreenWidth),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		bgColor:  color.RGBA{R: 16, G: 16, B: 20, A: 255},
	}
}

// Update samples input and advances the session by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.overlay.Update()
	g.session.Tick(g.sample())
	g.hud.Update()
	return nil
}

func (g *Game) sample() input.Sample {
	mx, my := ebiten.CursorPosition()
	pointer := core.Vec2{X: float64(mx), Y: float64(my)}
	var delta core.Vec2
	if g.haveCursor {
		delta = pointer.Sub(g.cursor)
	}
	g.cursor, g.haveCursor = pointer, true

	var keys input.KeySet
	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.key) {
			keys |= input.Keys(b.mask)
		}
	}
	_, wheel := ebiten.Wheel()
	// DT is a fixed tick length; see Session.Tick.
	return input.Sample{
		ScrollDelta:  wheel,
		Pointer:      pointer,
		PointerDelta: delta,
		Primary:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		PanButton:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Keys:         keys,
		DT:           1 / float64(ebiten.TPS()),
	}
}

// Draw renders the current grid, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bgColor)
	v := g.session.Viewport()
	t := g.session.Transform()
	g.painter.Draw(screen, g.session.Life().Cells(), t, v, g.onColor, g.offColor)
	g.overlay.Draw(screen, t, v, g.cursor)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}
