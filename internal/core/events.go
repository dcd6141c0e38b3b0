package core

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventJump     EventKind = iota // bird flapped
	EventScore                     // a pipe was cleared
	EventGameOver                  // the run ended
	EventNewBest                   // the run raised the best score
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventScore:
		return "score"
	case EventGameOver:
		return "game_over"
	case EventNewBest:
		return "new_best"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation. Score carries the run score at the
// moment the event fired.
type Event struct {
	Kind  EventKind
	Score int
}
