//go:build ebiten

package app

import (
	"image/color"

	"lifebox/internal/render"
	"lifebox/internal/ui"
	"lifebox/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = map[ebiten.Key]Action{
	ebiten.KeySpace: ActionToggleRun,
	ebiten.KeyN:     ActionStep,
	ebiten.KeyR:     ActionRandomize,
	ebiten.KeyC:     ActionClear,
	ebiten.KeyT:     ActionModeToggle,
	ebiten.KeyS:     ActionModeSingle,
	ebiten.KeyG:     ActionModeGlider,
	ebiten.KeyM:     ActionToggleSound,
	ebiten.KeyUp:    ActionFaster,
	ebiten.KeyEqual: ActionFaster,
	ebiten.KeyDown:  ActionSlower,
	ebiten.KeyMinus: ActionSlower,
}

var patternKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color
	cell     int
}

// New constructs a Game for the provided controller.
func New(ctl *Controller, cfg *Config) *Game {
	size := ctl.Session().Grid().Size()
	return &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(ctl, "Game of Life", cfg.HUDWidth),
		overlay:  ui.NewOverlay(ctl.Session().Config().CellSize),
		onColor:  cfg.LiveColor(),
		offColor: color.Black,
		cell:     ctl.Session().Config().CellSize,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.ctl.Do(action)
		}
	}
	names := life.Names()
	for i, key := range patternKeys {
		if i < len(names) && inpututil.IsKeyJustPressed(key) {
			_ = g.ctl.SelectPattern(names[i])
		}
	}

	size := g.ctl.Session().Grid().Size()
	consumed := g.hud.Update(size.W * g.cell)
	if !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctl.PressPixel(ebiten.CursorPosition())
	}
	g.updatePreview(size)

	g.ctl.Tick()
	return nil
}

func (g *Game) updatePreview(size life.Size) {
	x, y, ok := g.ctl.CellAt(ebiten.CursorPosition())
	mode, name := g.ctl.Session().Mode()
	switch mode {
	case life.ModeSingle:
		name = life.PatternSingle
	case life.ModeToggle:
		ok = false
	}
	p, found := life.Lookup(name)
	g.overlay.Update(size, x, y, p, ok && found)
}

// Draw renders the grid, the placement preview and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.ctl.Session().Grid()
	g.painter.Resize(grid.Width(), grid.Height())
	g.painter.Blit(screen, grid.Cells(), g.onColor, g.offColor, g.cell)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, grid.Width()*g.cell, screen.Bounds().Dy())
}

// Layout resizes the grid to follow the window and returns the logical
// screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctl.Viewport(outsideWidth-g.hud.Width(), outsideHeight)
	return outsideWidth, outsideHeight
}
