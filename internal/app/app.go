package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Garsondee/Bounce-Lab/internal/sim"
)

// simDT is the fixed simulation timestep. Ebiten paces Update at 60 TPS, so
// one tick per frame keeps simulated time aligned with wall time.
const simDT = 1.0 / 60

// hudTailLines is how many recent sim log entries the HUD shows.
const hudTailLines = 5

// App adapts the simulation core to ebiten's Update/Draw loop. Ebiten acts
// as the frame clock: Update runs exactly one fixed-step tick per frame and
// Draw runs the render phase against the pixel surface.
type App struct {
	world   *sim.World
	surface *PixelSurface
	input   Keyboard

	showHUD  bool
	prevHKey bool // for edge-triggered HUD toggle
}

// New builds the world from cfg and wires the platform collaborators.
func New(cfg sim.Config) (*App, error) {
	world, err := cfg.Build(sim.NewSimLog(false))
	if err != nil {
		return nil, err
	}
	return &App{
		world:   world,
		surface: NewPixelSurface(int(cfg.World.Width), int(cfg.World.Height)),
		showHUD: true,
	}, nil
}

// Update polls the input source and runs one simulation tick. Returning
// ebiten.Termination on the exit key ends the loop cleanly.
func (a *App) Update() error {
	in := a.input.Poll()
	if in.Exit {
		return ebiten.Termination
	}

	// H toggles the HUD, edge-triggered so holding it does not flicker.
	hKey := ebiten.IsKeyPressed(ebiten.KeyH)
	if hKey && !a.prevHKey {
		a.showHUD = !a.showHUD
	}
	a.prevHKey = hKey

	a.world.Step(simDT, in)
	return nil
}

// Draw runs the render phase: clear, entity render hooks, present, blit.
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.Clear()
	a.world.Render(a.surface)
	if err := a.surface.Present(); err != nil {
		// PixelSurface.Present never fails; keep the contract visible.
		panic(err)
	}
	screen.DrawImage(a.surface.Image(), nil)

	if a.showHUD {
		a.drawHUD(screen)
	}
}

// drawHUD prints a per-ball state readout and the tail of the sim log.
func (a *App) drawHUD(screen *ebiten.Image) {
	y := 4
	for _, e := range a.world.Entities() {
		body := e.Body()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s pos=(%.0f,%.0f) speed=%.0f grounded=%v",
				e.Label(), body.Pos.X, body.Pos.Y, body.Speed(), body.Grounded),
			4, y)
		y += 14
	}
	for _, entry := range a.world.Log().Tail(hudTailLines) {
		ebitenutil.DebugPrintAt(screen, entry.String(), 4, y)
		y += 14
	}
}

// Layout renders at the playfield's native resolution; ebiten scales it to
// the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.surface.Size()
}
