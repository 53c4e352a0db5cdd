package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Bounce-Lab/internal/sim"
)

// Keyboard samples ebiten's key state into a sim.InputState. The core polls
// it once per tick; there are no event queue semantics, only current-state
// sampling. A/← and D/→ move, W/Space jump, Escape exits.
type Keyboard struct{}

func (Keyboard) Poll() sim.InputState {
	return sim.InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace),
		Exit:  ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
}
