package flappy

// RunState is the phase of the current run.
type RunState int

const (
	StateMenu     RunState = iota // waiting for the player to start
	StatePlaying                  // simulation advancing
	StateGameOver                 // run ended, frozen until the next start
)

// String returns the state name used in core.GameState.Phase.
func (s RunState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
