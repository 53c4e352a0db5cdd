package sim

import (
	"fmt"
	"image/color"
	"math"
)

const (
	// ballMoveBoost is the horizontal velocity added per tick a move key is held.
	ballMoveBoost = 6.0
	// ballJumpImpulse is the upward launch speed of a jump from the ground.
	ballJumpImpulse = 340.0
)

// Ball is a bouncing circle driven by gravity and the move/jump keys. It is
// the only entity variant so far; Entity is the seam for adding more.
type Ball struct {
	label string
	body  *Body
	shape Circle
	color color.RGBA
}

// NewBall builds a ball from its initial state and material constants.
// Invalid constants (weight, coefficients, radius) fail construction.
func NewBall(label string, pos, vel Vec, radius float64, m Material, col color.RGBA) (*Ball, error) {
	body, err := NewBody(pos, vel, m)
	if err != nil {
		return nil, fmt.Errorf("ball %s: %w", label, err)
	}
	shape, err := NewCircle(radius)
	if err != nil {
		return nil, fmt.Errorf("ball %s: %w", label, err)
	}
	return &Ball{label: label, body: body, shape: shape, color: col}, nil
}

func (b *Ball) Label() string { return b.label }

func (b *Ball) Body() *Body { return b.body }

func (b *Ball) Shape() Circle { return b.shape }

// HandleInput nudges the ball horizontally and launches a jump. A jump is
// only honoured while grounded; pressing it mid-air is a no-op.
func (b *Ball) HandleInput(in InputState) {
	if in.Left {
		b.body.Vel.X -= ballMoveBoost
	}
	if in.Right {
		b.body.Vel.X += ballMoveBoost
	}
	if in.Jump && b.body.Grounded {
		b.body.Vel.Y = -ballJumpImpulse
		b.body.Grounded = false
	}
}

// Render rasterises the ball as a filled circle, one pixel at a time.
// Pixels are tested at their centre so the disc stays symmetric.
func (b *Ball) Render(s Surface) {
	r := b.shape.Radius
	cx, cy := b.body.Pos.X, b.body.Pos.Y
	minX := int(math.Floor(cx - r))
	maxX := int(math.Ceil(cx + r))
	minY := int(math.Floor(cy - r))
	maxY := int(math.Ceil(cy + r))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				s.SetPixel(x, y, b.color)
			}
		}
	}
}
