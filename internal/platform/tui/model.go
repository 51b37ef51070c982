package tui

import (
	"context"
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

	"github.com/KuberLakshman/PacMan/internal/core"
	"github.com/KuberLakshman/PacMan/internal/registry"
	"github.com/KuberLakshman/PacMan/internal/storage"
)

// statusLines is the number of rows below the game screen.
const statusLines = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model

	state      core.GameState
	gen        int  // current tick loop
	ticking    bool // a tick of loop gen is scheduled
	scoreSaved bool // score recorded for the current game over
	best       int
	notice     string
	quitting   bool
}

// NewModel creates a model and resets the game. A nil store disables the
// session scoreboard; a nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Debug("game reset", "game", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-statusLines, 1)),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		state:  game.State(),
	}
}

// Init waits for input; the clock starts with the first move.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.notice = "screenshot failed"
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.notice = "saved " + path
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score)
		return m, tea.Quit
	}

	frame := core.FrameOf(action)
	if frame.Empty() {
		return m, nil
	}
	m.notice = ""
	m.apply(m.game.HandleInput(frame))
	return m, m.armTick()
}

// handleResize keeps the game running and only resizes the buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-statusLines, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and schedules the next while the
// game is running. Ticks from an earlier loop are dropped.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.ticking {
		return m, nil
	}
	m.ticking = false

	m.apply(m.game.Step())
	return m, m.armTick()
}

// armTick starts a tick loop if the game is running and none is pending.
func (m *Model) armTick() tea.Cmd {
	if !m.state.Running || m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.config.TickRate, m.gen)
}

// apply records the result of input or a step and reacts to its events.
func (m *Model) apply(res core.StepResult) {
	m.state = res.State

	for _, e := range res.Events {
		switch e.Kind {
		case core.EventStarted:
			m.gen++
			m.logger.Info("round started", "level", e.Value)
		case core.EventPelletsEaten:
			m.logger.Debug("pellets eaten", "count", e.Value, "score", res.State.Score)
		case core.EventLifeLost:
			m.logger.Info("life lost", "lives", res.State.Lives)
		case core.EventLevelCleared:
			m.logger.Info("level cleared", "level", e.Value, "score", res.State.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "score", res.State.Score, "level", res.State.Level)
			m.recordScore()
		case core.EventRestart:
			m.logger.Info("restart", "previous_score", e.Value)
			m.scoreSaved = false
		}
	}
}

// recordScore saves the finished game once. Storage errors are logged and
// play continues.
func (m *Model) recordScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.best = max(m.best, m.state.Score)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(context.Background(), m.game.ID(), m.state.Score, m.state.Level); err != nil {
		m.logger.Warn("cannot record score", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game screen and the status lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	status := fmt.Sprintf("Session best: %d", m.best)
	if m.notice != "" {
		status += "  " + noticeStyle.Render(m.notice)
	}
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status) + "\n" + m.help.View(m.keys)
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
