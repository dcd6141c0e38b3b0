// Package highscore tracks the best score ever achieved across runs.
//
// The tracker fails open: when the backend cannot be read the best score
// starts at 0, and when it cannot be written the new best is kept in memory.
// Either way the game carries on.
package highscore

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultKey is the fixed identifier the best score is stored under.
const DefaultKey = "flappy"

// Backend persists a single non-negative integer per key.
// LoadBest must return 0 and a nil error when nothing was stored yet.
type Backend interface {
	LoadBest(key string) (int, error)
	SaveBest(key string, value int) error
}

// Tracker exposes the best score and raises it when a run beats it.
// It is driven from the single-threaded game loop and does no locking.
type Tracker struct {
	key     string
	backend Backend
	logger  *log.Logger
	best    int
}

// NewTracker loads the persisted best score for key from backend.
// A nil backend keeps the best score in memory only; a nil logger discards logs.
func NewTracker(backend Backend, key string, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if key == "" {
		key = DefaultKey
	}

	t := &Tracker{
		key:     key,
		backend: backend,
		logger:  logger,
	}

	if backend != nil {
		best, err := backend.LoadBest(key)
		switch {
		case err != nil:
			logger.Warn("best score unavailable, starting from 0", "key", key, "error", err)
		case best < 0:
			logger.Warn("ignoring negative stored best score", "key", key, "value", best)
		default:
			t.best = best
		}
	}

	return t
}

// Best returns the last known best score (0 if none was ever recorded).
func (t *Tracker) Best() int {
	return t.best
}

// MaybeUpdateBest raises the best score to score if it is higher and
// reports whether it did. A failed write is logged and the new best is kept
// in memory.
func (t *Tracker) MaybeUpdateBest(score int) bool {
	if score <= t.best {
		return false
	}
	t.best = score

	if t.backend != nil {
		if err := t.backend.SaveBest(t.key, score); err != nil {
			t.logger.Warn("could not persist best score", "key", t.key, "score", score, "error", err)
		}
	}
	t.logger.Debug("new best score", "key", t.key, "score", score)
	return true
}
