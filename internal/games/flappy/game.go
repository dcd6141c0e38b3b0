// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// The simulation runs on a fixed logical playfield (pixels) with a fixed
// per-tick step; presentation scales it to whatever terminal is attached.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameID identifies the game in score storage.
const GameID = "flappy"

// BestScorer is the best-score collaborator consulted when a run ends.
type BestScorer interface {
	Best() int
	MaybeUpdateBest(score int) bool
}

// sessionBest keeps the best score for the lifetime of the process only.
type sessionBest struct {
	best int
}

func (s *sessionBest) Best() int {
	return s.best
}

func (s *sessionBest) MaybeUpdateBest(score int) bool {
	if score <= s.best {
		return false
	}
	s.best = score
	return true
}

// Game owns the whole simulation state: bird, pipes, run state and score.
// It is not safe for concurrent use; the platform drives it from one loop.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	best       BestScorer

	bird    Bird
	pipes   *PipeManager
	state   RunState
	paused  bool
	score   int
	newBest bool   // the last finished run raised the best score
	ticks   uint64 // ticks spent playing in the current run

	pending []core.Event // events raised since the last Advance
}

// New creates a game in the Menu state.
// A nil best keeps the best score in memory only.
func New(cfg config.FlappyConfig, best BestScorer, seed int64) *Game {
	if best == nil {
		best = &sessionBest{}
	}

	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		best:       best,
		pipes: NewPipeManager(seed,
			cfg.Playfield.Width, cfg.Playfield.Height,
			cfg.Obstacles.PipeWidth, cfg.Obstacles.MinHeight),
	}
	g.Reset()
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset clears the pipes, puts the bird back at its start position, zeroes
// the score and returns to the Menu.
func (g *Game) Reset() {
	g.pipes.Reset()
	g.bird = newBird(g.cfg.Player)
	g.state = StateMenu
	g.paused = false
	g.score = 0
	g.newBest = false
	g.ticks = 0
}

// Start begins a run. From GameOver the game is reset first.
// Starting while already playing does nothing.
func (g *Game) Start() {
	switch g.state {
	case StateMenu:
		g.state = StatePlaying
	case StateGameOver:
		g.Reset()
		g.state = StatePlaying
	}
}

// Jump sets the bird's velocity to the jump impulse. Only valid while playing.
func (g *Game) Jump() {
	if g.state != StatePlaying || g.paused {
		return
	}
	g.bird.Velocity = g.cfg.Physics.JumpImpulse
	g.emit(core.EventJump)
}

// TogglePause pauses or resumes a run in progress.
func (g *Game) TogglePause() {
	if g.state != StatePlaying {
		return
	}
	g.paused = !g.paused
}

// Step applies the commands of one input frame, then advances one tick.
// Back returns a finished run to the Menu.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionBack) && g.state == StateGameOver {
		g.Reset()
	}
	if in.Has(core.ActionConfirm) {
		g.Start()
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Has(core.ActionJump) {
		g.Jump()
	}
	return g.Advance()
}

// Advance runs one fixed simulation tick. Outside of an unpaused run nothing
// moves. The result carries every event raised since the previous Advance.
func (g *Game) Advance() core.StepResult {
	if g.state == StatePlaying && !g.paused {
		g.tick()
	}

	result := core.StepResult{State: g.State(), Events: g.pending}
	g.pending = nil
	return result
}

func (g *Game) tick() {
	g.ticks++

	g.bird.update(g.cfg.Physics)
	if g.bird.outOfBounds(g.cfg.Playfield.Height) {
		g.endRun()
		return
	}

	ticks := int(g.ticks)
	speed := g.difficulty.Speed(g.cfg.Physics.PipeSpeed, g.score, ticks)
	spacing := g.difficulty.Spacing(g.cfg.Obstacles.SpawnSpacing, g.score, ticks)
	gap := g.difficulty.GapSize(g.cfg.Obstacles.GapSize, g.score, ticks)

	g.pipes.MaybeSpawn(spacing, gap)

	passed := g.pipes.Update(speed, g.bird.X)
	for i := 0; i < passed; i++ {
		g.score++
		g.emit(core.EventScore)
	}

	if g.pipes.CheckCollision(g.bird.Rect()) {
		g.endRun()
	}
}

// endRun freezes the run and records the best score.
func (g *Game) endRun() {
	g.state = StateGameOver
	g.paused = false

	g.newBest = g.best.MaybeUpdateBest(g.score)
	g.emit(core.EventGameOver)
	if g.newBest {
		g.emit(core.EventNewBest)
	}
}

func (g *Game) emit(kind core.EventKind) {
	g.pending = append(g.pending, core.Event{Kind: kind, Score: g.score})
}

// RunState returns the current phase of the run.
func (g *Game) RunState() RunState {
	return g.state
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.state.String(),
		Score:    g.score,
		Best:     g.best.Best(),
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
	}
}
