package tui

import (
	"io"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// bel is the ASCII bell; the terminal decides how it sounds.
const bel = "\a"

// Bell is the only sound output: it rings the terminal bell on scoring and
// on game over. The mute flag is read when the event fires.
type Bell struct {
	out   io.Writer
	muted bool
}

// NewBell creates a bell writing to out. A nil out never rings.
func NewBell(out io.Writer, muted bool) *Bell {
	if out == nil {
		out = io.Discard
	}
	return &Bell{out: out, muted: muted}
}

// Muted reports whether the bell is silenced.
func (b *Bell) Muted() bool {
	return b.muted
}

// ToggleMute flips the mute flag and returns the new value.
func (b *Bell) ToggleMute() bool {
	b.muted = !b.muted
	return b.muted
}

// Play rings for events that have a sound. Write errors are ignored.
func (b *Bell) Play(e core.Event) {
	if b.muted {
		return
	}
	switch e.Kind {
	case core.EventScore, core.EventGameOver:
		//nolint:errcheck // Best-effort, a silent bell is fine
		io.WriteString(b.out, bel)
	}
}
