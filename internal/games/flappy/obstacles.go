package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the bird to pass through.
// TopHeight + Gap + BottomHeight always equals the playfield height.
type Pipe struct {
	X            float64 // Horizontal position (left edge)
	Width        float64
	TopHeight    float64 // Height of the upper segment
	Gap          float64 // Height of the passable gap
	BottomHeight float64 // Height of the lower segment
	Scored       bool    // Whether the bird has cleared this pipe
}

// NewPipe generates a pipe at x with a uniformly random gap position.
// Each segment is at least minHeight tall. If the playfield is too short for
// that, the gap is centered instead.
func NewPipe(rng *rand.Rand, x, width, playfieldHeight, gap, minHeight float64) Pipe {
	lo := minHeight
	hi := playfieldHeight - gap - minHeight

	var top float64
	if hi >= lo {
		top = lo + rng.Float64()*(hi-lo)
	} else {
		top = math.Max(0, (playfieldHeight-gap)/2)
	}

	return Pipe{
		X:            x,
		Width:        width,
		TopHeight:    top,
		Gap:          gap,
		BottomHeight: playfieldHeight - top - gap,
	}
}

// Right returns the x-coordinate of the trailing edge.
func (p Pipe) Right() float64 {
	return p.X + p.Width
}

// TopRect returns the collision rectangle for the upper segment.
func (p Pipe) TopRect() core.RectF {
	return core.NewRectF(p.X, 0, p.Width, p.TopHeight)
}

// BottomRect returns the collision rectangle for the lower segment.
func (p Pipe) BottomRect(playfieldHeight float64) core.RectF {
	return core.NewRectF(p.X, playfieldHeight-p.BottomHeight, p.Width, p.BottomHeight)
}

// Blocks reports whether the hitbox overlaps the pipe horizontally while
// sticking out of the gap vertically.
// The hitbox is assumed to lie inside the playfield.
func (p Pipe) Blocks(hitbox core.RectF, playfieldHeight float64) bool {
	return hitbox.Intersects(p.TopRect()) || hitbox.Intersects(p.BottomRect(playfieldHeight))
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
// Pipes are kept in spawn order; the newest one is last.
type PipeManager struct {
	pipes     []Pipe
	rng       *rand.Rand
	fieldW    float64
	fieldH    float64
	width     float64
	minHeight float64
}

// NewPipeManager creates a pipe manager for a playfield of the given size.
func NewPipeManager(seed int64, fieldW, fieldH, pipeWidth, minHeight float64) *PipeManager {
	return &PipeManager{
		pipes:     make([]Pipe, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		fieldW:    fieldW,
		fieldH:    fieldH,
		width:     pipeWidth,
		minHeight: minHeight,
	}
}

// Reset removes all pipes. The RNG keeps its position so every run gets a
// fresh layout while the sequence stays reproducible from the seed.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
}

// MaybeSpawn appends a pipe at the right edge when there is none yet or the
// newest one has moved further than spacing from the right edge.
// Returns true if a pipe was spawned.
func (pm *PipeManager) MaybeSpawn(spacing, gap float64) bool {
	if n := len(pm.pipes); n > 0 && pm.pipes[n-1].X >= pm.fieldW-spacing {
		return false
	}
	pm.pipes = append(pm.pipes, NewPipe(pm.rng, pm.fieldW, pm.width, pm.fieldH, gap, pm.minHeight))
	return true
}

// Update moves every pipe left by speed, marks pipes whose trailing edge
// passed birdX as scored, then drops pipes that left the playfield.
// Returns the number of pipes scored this tick.
func (pm *PipeManager) Update(speed, birdX float64) int {
	passed := 0
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= speed

		// Score before removal: a pipe leaving the playfield this tick still counts.
		if !p.Scored && p.Right() < birdX {
			p.Scored = true
			passed++
		}

		if p.Right() < 0 {
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept
	return passed
}

// CheckCollision tests whether the hitbox hits any pipe.
func (pm *PipeManager) CheckCollision(hitbox core.RectF) bool {
	for _, p := range pm.pipes {
		if p.Blocks(hitbox, pm.fieldH) {
			return true
		}
	}
	return false
}

// Pipes returns the current pipes. The slice must not be modified.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
