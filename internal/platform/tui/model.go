package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/superhero-arcade/internal/core"
	"github.com/vovakirdan/superhero-arcade/internal/registry"
	"github.com/vovakirdan/superhero-arcade/internal/storage"
)

// footerRows is the space reserved below the playfield for short help or status.
const footerRows = 1

// Options configures a terminal game session.
type Options struct {
	Store      *storage.Store // Nil disables score and run persistence
	Runtime    core.RuntimeConfig
	Difficulty string // Recorded with each run
	Logger     *log.Logger
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	latch     *KeyLatch
	keys      GameKeyMap
	help      help.Model
	log       *log.Logger
	gameState core.GameState

	difficulty string
	runSaved   bool // Whether the current finished run has been stored
	status     string
	statusAt   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		store:      opts.Store,
		config:     cfg,
		latch:      NewKeyLatch(cfg.TickRate / 4),
		keys:       DefaultGameKeyMap(),
		help:       h,
		log:        logger,
		difficulty: opts.Difficulty,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyFrame()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	m.latch.Press(m.keys.ActionFor(msg))
	return m, nil
}

// handleResize processes window resize events.
// The simulated world has a fixed size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the playfield to whatever the footer leaves.
func (m *Model) layout() {
	footer := footerRows
	if m.help.ShowAll {
		footer = lipgloss.Height(m.help.FullHelpView(m.keys.FullHelp()))
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 1))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.latch.Frame())
	m.gameState = result.State

	// A restart starts a new run
	if wasOver && !m.gameState.GameOver {
		m.runSaved = false
		m.latch.Release()
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Failures are logged, the game goes on.
func (m *Model) saveRun() {
	run := storage.FinishedRun(m.game.ID(), m.gameState, m.config.Seed, m.difficulty)
	m.log.Info("run over", "game", run.GameID, "outcome", run.Outcome, "score", run.Score)

	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(run.GameID)
	if err != nil {
		m.log.Warn("cannot read high score", "err", err)
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.log.Error("cannot save run", "err", err)
		return
	}
	m.log.Debug("run saved", "run", id)
	if run.Score > best {
		m.setStatus(fmt.Sprintf("New high score: %d", run.Score))
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.setStatus("screenshot failed: " + err.Error())
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("screenshot failed: " + err.Error())
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("screenshot failed: " + err.Error())
		return
	}
	m.setStatus("saved " + path)
}

// copyFrame puts the current frame on the system clipboard as plain text.
func (m *Model) copyFrame() {
	m.game.Render(m.screen)
	if err := clipboardWrite(m.screen.String()); err != nil {
		m.log.Warn("clipboard unavailable", "err", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("frame copied")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" && time.Since(m.statusAt) < statusTTL {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
