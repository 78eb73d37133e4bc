// Package crossing implements Gem Crossing: a tile-grid arcade game where
// the player crosses an 8x7 board, dodging bugs and water, to collect gems
// and then a key that opens the next level.
package crossing

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/registry"
)

// GameID is the registry and score-store identifier.
const GameID = "crossing"

// Phase is where the engine is in its state machine.
type Phase uint8

const (
	PhaseSelect Phase = iota // Character selection
	PhaseLoading             // "Level N" banner
	PhasePlaying
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhaseSelect:
		return "select"
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives phase transitions; discarded unless the CLI sets one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok && preset != "" {
		difficultyPreset = p
		return
	}
	difficultyPreset = ""
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Option customizes a Game.
type Option func(*Game)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithConfig uses cfg instead of loading one on Reset.
func WithConfig(cfg config.CrossingConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixedCfg = true
	}
}

// WithLogger overrides the package logger for this game.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// Game drives a Session through the phase state machine. It implements
// registry.Game and reads elapsed time from its clock.
type Game struct {
	cfg      config.CrossingConfig
	fixedCfg bool
	preset   config.DifficultyPreset // Per-game override of difficultyPreset
	clock    core.Clock
	log      *log.Logger
	runtime  core.RuntimeConfig

	session  *Session
	phase    Phase
	selector int // Index into Skins()
	tick     uint64

	lastTick time.Time // Previous tick, for dt
	levelEnd time.Time // Start of the current loading wait
	paused   bool
	pausedAt time.Time
}

// New creates a crossing game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{clock: core.SystemClock{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gem Crossing"
}

// Reset starts over at character selection.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.log == nil {
		g.log = logger
	}

	if !g.fixedCfg {
		cfg, err := config.LoadCrossing(configPath)
		if err != nil {
			g.log.Warn("using default config", "err", err)
			cfg = config.DefaultCrossingConfig()
		}
		preset := difficultyPreset
		if g.preset != "" {
			preset = g.preset
		}
		if preset != "" {
			config.ApplyCrossingPreset(&cfg, preset)
		}
		g.cfg = cfg
	}

	g.session = NewSession(g.cfg, runtime.Seed, SpriteBoy)
	g.phase = PhaseSelect
	g.selector = 0
	g.tick = 0
	g.paused = false
	g.lastTick = g.clock.Now()
	g.levelEnd = g.lastTick
}

// SetPreset picks the difficulty for this game only, taking effect on the
// next Reset. Sessions served over SSH use it instead of SetDifficultyPreset.
func (g *Game) SetPreset(name string) {
	if p, ok := config.ParsePreset(name); ok && name != "" {
		g.preset = p
	}
}

// Difficulty returns the preset name recorded with scores.
func (g *Game) Difficulty() string {
	return g.cfg.Difficulty
}

// Resize updates the screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the engine by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	now := g.clock.Now()

	if in.Has(core.ActionPause) && (g.phase == PhaseLoading || g.phase == PhasePlaying) {
		g.togglePause(now)
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	switch g.phase {
	case PhaseSelect:
		g.stepSelect(in, now)
	case PhaseVictory, PhaseDefeat:
		if in.Has(core.ActionRestart) {
			g.restart(now)
		}
	default:
		events = g.stepRun(in, now)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) stepSelect(in core.InputFrame, now time.Time) {
	switch {
	case in.Has(core.ActionLeft):
		g.selector = max(0, g.selector-1)
	case in.Has(core.ActionRight):
		g.selector = min(len(skins)-1, g.selector+1)
	case in.Has(core.ActionConfirm):
		g.session.Player.Skin = skins[g.selector]
		g.session.Player.ResetToStart()
		g.levelEnd = now
		g.lastTick = now
		g.setPhase(PhaseLoading)
	}
}

// stepRun checks victory, then defeat, then loading, else plays a tick.
func (g *Game) stepRun(in core.InputFrame, now time.Time) []core.Event {
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now

	if events := g.checkTerminal(); events != nil {
		return events
	}

	st := &g.session.State
	if st.Loading {
		if now.Sub(g.levelEnd) >= g.loadDuration() {
			g.session.StartLevel()
			g.setPhase(PhasePlaying)
		} else {
			g.setPhase(PhaseLoading)
		}
		return nil
	}

	g.session.Player.HandleInput(directionOf(in))
	events := g.session.Update(dt, now)

	if st.Toast.Active && now.Sub(st.Toast.Since) >= g.toastDuration() {
		st.Toast.Active = false
	}
	if st.Loading {
		g.levelEnd = now
		g.setPhase(PhaseLoading)
	}
	return append(events, g.checkTerminal()...)
}

// checkTerminal moves to victory or defeat when the run is over.
func (g *Game) checkTerminal() []core.Event {
	st := &g.session.State
	switch {
	case st.Level > g.cfg.Gameplay.MaxLevel:
		g.setPhase(PhaseVictory)
		return []core.Event{{Kind: core.EventVictory, Value: st.Score}}
	case st.Lives <= 0:
		g.setPhase(PhaseDefeat)
		return []core.Event{{Kind: core.EventDefeat, Value: st.Score}}
	}
	return nil
}

func (g *Game) restart(now time.Time) {
	g.session.FullReset()
	g.lastTick = now
	g.levelEnd = now
	if g.cfg.Gameplay.ReselectOnRestart {
		g.selector = 0
		g.setPhase(PhaseSelect)
		return
	}
	g.setPhase(PhaseLoading)
}

// togglePause freezes the run. On resume every timer moves forward by the
// paused duration.
func (g *Game) togglePause(now time.Time) {
	if !g.paused {
		g.paused = true
		g.pausedAt = now
		g.log.Debug("paused", "level", g.session.State.Level)
		return
	}
	shift := now.Sub(g.pausedAt)
	g.paused = false
	g.lastTick = g.lastTick.Add(shift)
	g.levelEnd = g.levelEnd.Add(shift)
	if t := &g.session.State.Toast; t.Active {
		t.Since = t.Since.Add(shift)
	}
	g.log.Debug("resumed", "paused_for", shift)
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	st := &g.session.State
	g.log.Debug("phase", "from", g.phase, "to", p, "level", st.Level, "score", st.Score, "lives", st.Lives)
	g.phase = p
}

func (g *Game) loadDuration() time.Duration {
	return time.Duration(g.cfg.Gameplay.LevelLoadMS) * time.Millisecond
}

func (g *Game) toastDuration() time.Duration {
	return time.Duration(g.cfg.Gameplay.ToastMS) * time.Millisecond
}

func directionOf(in core.InputFrame) Direction {
	switch {
	case in.Has(core.ActionUp):
		return DirUp
	case in.Has(core.ActionDown):
		return DirDown
	case in.Has(core.ActionLeft):
		return DirLeft
	case in.Has(core.ActionRight):
		return DirRight
	}
	return DirNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := &g.session.State
	return core.GameState{
		Score:    st.Score,
		Level:    min(st.Level, g.cfg.Gameplay.MaxLevel),
		Lives:    st.Lives,
		GameOver: g.phase == PhaseVictory || g.phase == PhaseDefeat,
		Won:      g.phase == PhaseVictory,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session exposes the run for frontends and tests.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the rules in effect.
func (g *Game) Config() config.CrossingConfig {
	return g.cfg
}
