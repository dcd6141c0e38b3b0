package flappy

// Snapshot is a read-only copy of everything the presentation needs for one
// frame. Mutating it has no effect on the game.
type Snapshot struct {
	Tick    uint64
	State   RunState
	Paused  bool
	Score   int
	Best    int
	NewBest bool // the finished run raised the best score

	FieldW float64 // playfield width
	FieldH float64 // playfield height

	Bird  Bird
	Pipes []Pipe
}

// Snapshot returns the current render feed.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]Pipe, len(g.pipes.Pipes()))
	copy(pipes, g.pipes.Pipes())

	return Snapshot{
		Tick:    g.ticks,
		State:   g.state,
		Paused:  g.paused,
		Score:   g.score,
		Best:    g.best.Best(),
		NewBest: g.newBest,
		FieldW:  g.cfg.Playfield.Width,
		FieldH:  g.cfg.Playfield.Height,
		Bird:    g.bird,
		Pipes:   pipes,
	}
}
