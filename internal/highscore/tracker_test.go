package highscore_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// failingBackend simulates persistence being unavailable.
type failingBackend struct {
	loadErr error
	saveErr error
	saves   int
}

func (f *failingBackend) LoadBest(string) (int, error) { return 7, f.loadErr }

func (f *failingBackend) SaveBest(string, int) error {
	f.saves++
	return f.saveErr
}

func TestTrackerMonotonic(t *testing.T) {
	tr := highscore.NewTracker(highscore.NewMemoryBackend(), highscore.DefaultKey, nil)

	if tr.Best() != 0 {
		t.Fatalf("Best() on a fresh backend = %d, expected 0", tr.Best())
	}
	if !tr.MaybeUpdateBest(12) {
		t.Error("MaybeUpdateBest(12) should report a new best")
	}
	if tr.MaybeUpdateBest(7) {
		t.Error("MaybeUpdateBest(7) should not report a new best")
	}
	if tr.MaybeUpdateBest(12) {
		t.Error("equalling the best is not a new best")
	}
	if tr.Best() != 12 {
		t.Errorf("Best() = %d, expected 12", tr.Best())
	}
	if tr.MaybeUpdateBest(-3) {
		t.Error("negative scores must never update the best")
	}
}

func TestTrackerNilBackendIsInMemory(t *testing.T) {
	tr := highscore.NewTracker(nil, "", nil)

	if !tr.MaybeUpdateBest(3) {
		t.Error("in-memory tracker should still accept a new best")
	}
	if tr.Best() != 3 {
		t.Errorf("Best() = %d, expected 3", tr.Best())
	}
}

func TestTrackerFailsOpen(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	backend := &failingBackend{
		loadErr: errors.New("disk on fire"),
		saveErr: errors.New("read-only filesystem"),
	}
	tr := highscore.NewTracker(backend, highscore.DefaultKey, logger)

	// Read failure: start from 0, not the value the backend returned
	if tr.Best() != 0 {
		t.Errorf("Best() after load failure = %d, expected 0", tr.Best())
	}

	// Write failure: still a new best in memory
	if !tr.MaybeUpdateBest(5) {
		t.Error("MaybeUpdateBest should succeed even if the write fails")
	}
	if tr.Best() != 5 {
		t.Errorf("Best() = %d, expected 5", tr.Best())
	}
	if backend.saves != 1 {
		t.Errorf("expected one save attempt, got %d", backend.saves)
	}
	if !strings.Contains(buf.String(), "could not persist best score") {
		t.Errorf("write failure should be logged, log = %q", buf.String())
	}
}

func TestTrackerWithSQLiteSurvivesRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	tr := highscore.NewTracker(store, highscore.DefaultKey, nil)
	tr.MaybeUpdateBest(12)
	tr.MaybeUpdateBest(7)
	store.Close()

	reopened, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer reopened.Close()

	tr = highscore.NewTracker(reopened, highscore.DefaultKey, nil)
	if tr.Best() != 12 {
		t.Errorf("Best() after reopen = %d, expected 12", tr.Best())
	}
}
