package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/registry"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

// EventSink receives the events of every game tick, e.g. to play sound cues.
type EventSink interface {
	Handle(ev core.Event)
}

// Options configures a game Model beyond the game itself.
type Options struct {
	Store      *storage.Store
	Player     string      // Name recorded with results
	Difficulty string      // Preset for games that support per-game presets
	Sounds     EventSink   // Optional
	Logger     *log.Logger // Optional; discarded when nil
	Embedded   bool        // Hosted by a SessionModel: Back returns to its menu instead of quitting
}

// Games implementing these get the matching treatment from the model.
type (
	resizer interface {
		Resize(w, h int)
	}
	presetter interface {
		SetPreset(name string)
	}
	difficultyReporter interface {
		Difficulty() string
	}
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	log        *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	recorder   *storage.Recorder
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		log:        logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		recorder:   storage.NewRecorder(opts.Store, game.ID(), opts.Player),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	if p, ok := m.game.(presetter); ok && m.opts.Difficulty != "" {
		p.SetPreset(m.opts.Difficulty)
	}
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
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("could not save screenshot", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Leave only from a stopped game so a stray B does not end a run
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.log.Debug("game event", "kind", ev.Kind, "value", ev.Value)
		if m.opts.Sounds != nil {
			m.opts.Sounds.Handle(ev)
		}
	}

	m.recordResult()

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordResult saves a finished run once. Failures are logged, never fatal.
func (m *Model) recordResult() {
	difficulty := ""
	if d, ok := m.game.(difficultyReporter); ok {
		difficulty = d.Difficulty()
	}

	saved, err := m.recorder.Observe(m.gameState, difficulty)
	if err != nil {
		m.log.Warn("could not save result", "err", err)
		return
	}
	if saved != nil {
		m.log.Info("result saved", "run", saved.RunID, "player", saved.Player,
			"score", saved.Score, "outcome", saved.Outcome)
	}
}

// saveScreenshot writes the current screen to ~/.crossing/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".crossing", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: cannot write %s: %w", path, err)
	}
	return path, nil
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// BackToMenu reports whether the player asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a Bubble Tea program for one game and blocks until it ends.
// It reports whether the player left with Back rather than Quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (back bool, err error) {
	opts.Embedded = false
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
