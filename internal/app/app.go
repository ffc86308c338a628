//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/WaterKat/CGOL-Widget/internal/config"
	"github.com/WaterKat/CGOL-Widget/internal/render"
	"github.com/WaterKat/CGOL-Widget/internal/ui"
	"github.com/WaterKat/CGOL-Widget/internal/widget"
)

const flashDuration = 600 * time.Millisecond

// Game adapts the widget state to the ebiten.Game interface. All board
// mutation happens here on the update goroutine.
type Game struct {
	state   *widget.State
	painter *render.GridPainter
	hud     *ui.HUD
	flash   *ui.Flash

	scale     int
	flashRows int
	lastSeeds int64
}

// New constructs the overlay game from a widget state and its configuration.
func New(state *widget.State, cfg *config.Config) (*Game, error) {
	alive, err := render.ParseColor(cfg.Render.AliveColor)
	if err != nil {
		return nil, err
	}
	dead, err := render.ParseColor(cfg.Render.DeadColor)
	if err != nil {
		return nil, err
	}

	tint := alive
	tint.A /= 3
	w, h := state.Size()
	return &Game{
		state:     state,
		painter:   render.NewGridPainter(w, h, alive, dead),
		hud:       ui.NewHUD(),
		flash:     ui.NewFlash(tint),
		scale:     cfg.Render.Scale,
		flashRows: cfg.Notify.Rows,
	}, nil
}

// Update handles keys, drains seed requests and advances the board.
func (g *Game) Update() error {
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.state.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.state.StepOnce(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.state.Enqueue(widget.SeedRequest{Source: "keyboard"})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.state.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.state.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.state.Tick(now)
	if seeds := g.state.Seeds(); seeds != g.lastSeeds {
		g.lastSeeds = seeds
		g.flash.Trigger(g.flashRows, flashDuration, now)
	}
	return nil
}

// Draw renders the board, the seed highlight and the stats readout.
func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	g.painter.Blit(screen, g.state.Cells(), g.scale)
	w, h := g.state.Size()
	g.flash.Draw(screen, w, h, g.scale, now)
	g.hud.Draw(screen, ui.Stats{
		Generation: g.state.Generation(),
		Alive:      g.state.Alive(),
		Paused:     g.state.Paused(),
		Dissolving: g.state.Dissolving(),
	})
}

// Layout returns the logical screen size in pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.state.Size()
	return w * g.scale, h * g.scale
}
