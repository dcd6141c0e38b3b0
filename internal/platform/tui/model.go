package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Options holds the optional collaborators of a Model.
type Options struct {
	Store         *storage.Store // run history; nil disables it
	Logger        *log.Logger    // nil discards logs
	Bell          *Bell          // nil never rings
	ScreenshotDir string         // default ~/.arcade/screenshots
}

// restartGrace is the number of ticks after a game over during which the
// primary trigger does not restart, so a held flap key cannot skip the
// game over screen. Enter still confirms at once.
const restartGrace = 30

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	bell       *Bell
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	shotDir    string
	sinceOver  int // ticks since the run ended
	stopped    bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The bottom terminal row is kept for the help bar.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bell := opts.Bell
	if bell == nil {
		bell = NewBell(nil, true)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".arcade", "screenshots")
		} else {
			logger.Warn("screenshots disabled", "error", err)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:      opts.Store,
		logger:     logger,
		bell:       bell,
		keys:       NewKeyMapper(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		shotDir:    shotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Stop ends the tick loop: a stopped model schedules no further ticks.
// Calling it more than once is harmless.
func (m *Model) Stop() {
	m.stopped = true
}

// Stopped reports whether Stop was called.
func (m Model) Stopped() bool {
	return m.stopped
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg, m.game.RunState()); !m.restartLocked(action) {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game commands are queued in the input
// frame and applied at the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg, m.game.RunState()); action {
	case core.ActionQuit:
		m.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionMute:
		m.logger.Debug("mute toggled", "muted", m.bell.ToggleMute())
	default:
		if key.Matches(msg, m.keys.Keys().Start) || !m.restartLocked(action) {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// restartLocked reports whether a confirm from the primary trigger falls
// inside the grace period after a game over.
func (m Model) restartLocked(action core.Action) bool {
	return action == core.ActionConfirm && m.gameState.GameOver && m.sinceOver < restartGrace
}

// handleResize rescales the presentation. The playfield has a fixed logical
// size, so the run is never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick simulates one frame, then schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	switch {
	case result.Has(core.EventGameOver):
		m.sinceOver = 0
	case m.gameState.GameOver:
		m.sinceOver++
	}

	for _, e := range result.Events {
		m.handleEvent(e)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) handleEvent(e core.Event) {
	m.bell.Play(e)

	switch e.Kind {
	case core.EventGameOver:
		m.logger.Info("run finished", "score", e.Score)
		if m.store == nil || e.Score <= 0 {
			return
		}
		if _, err := m.store.SaveScore(m.game.ID(), e.Score); err != nil {
			m.logger.Warn("could not record run", "score", e.Score, "error", err)
		}
	case core.EventNewBest:
		m.logger.Info("new best score", "score", e.Score)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", errors.New("no screenshot directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	bar := helpStyle.Render(m.help.View(m.keys.Keys()))
	if m.bell.Muted() {
		bar += " " + mutedStyle.Render("[muted]")
	}
	return RenderScreen(m.screen) + "\n" + bar
}

// Run starts the Bubble Tea program for the given game.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
