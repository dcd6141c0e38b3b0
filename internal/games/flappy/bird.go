package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player-controlled entity. X stays fixed for the whole run.
type Bird struct {
	X, Y     float64 // top-left corner of the hitbox
	Width    float64
	Height   float64
	Velocity float64 // vertical, positive = down
	Rotation float64 // degrees, derived from Velocity
}

func newBird(p config.FlappyPlayer) Bird {
	return Bird{
		X:      p.X,
		Y:      p.Y,
		Width:  p.Width,
		Height: p.Height,
	}
}

// update applies one tick of gravity.
func (b *Bird) update(p config.FlappyPhysics) {
	b.Velocity += p.Gravity
	b.Y += b.Velocity
	b.Rotation = core.ClampF(b.Velocity*p.RotationGain, p.RotationMin, p.RotationMax)
}

// Rect returns the bird's hitbox.
func (b Bird) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// outOfBounds reports whether the bird touched the ceiling or the floor.
func (b Bird) outOfBounds(playfieldHeight float64) bool {
	return b.Y <= 0 || b.Y+b.Height >= playfieldHeight
}
