// Package window runs Gem Crossing in a desktop window with Ebitengine,
// drawing the board at its native 707x760 pixel size.
package window

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

// EventSink receives the events of every game tick, e.g. to play sound cues.
type EventSink interface {
	Handle(ev core.Event)
}

// Options configures the window beyond the game itself.
type Options struct {
	Store      *storage.Store
	Player     string
	Difficulty string
	Sounds     EventSink
	Logger     *log.Logger
	Scale      float64 // Window size multiplier; 0 means 1
}

// Window adapts a crossing game to ebiten.Game.
type Window struct {
	game     *crossing.Game
	opts     Options
	log      *log.Logger
	recorder *storage.Recorder
	text     textCache
	state    core.GameState
}

// New wraps game. The game is reset by Run.
func New(game *crossing.Game, opts Options) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:     game,
		opts:     opts,
		log:      logger,
		recorder: storage.NewRecorder(opts.Store, game.ID(), opts.Player),
		text:     make(textCache),
	}
}

// Update advances the game by one frame.
func (w *Window) Update() error {
	in := actionsFor(inpututil.AppendJustPressedKeys(nil))
	return w.step(in)
}

// step runs one frame with the given input. It returns ebiten.Termination
// when the player quits.
func (w *Window) step(in core.InputFrame) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionBack) && (w.state.GameOver || w.state.Paused) {
		return ebiten.Termination
	}

	result := w.game.Step(in)
	w.state = result.State

	for _, ev := range result.Events {
		w.log.Debug("game event", "kind", ev.Kind, "value", ev.Value)
		if w.opts.Sounds != nil {
			w.opts.Sounds.Handle(ev)
		}
	}

	saved, err := w.recorder.Observe(w.state, w.game.Difficulty())
	if err != nil {
		w.log.Warn("could not save result", "err", err)
	} else if saved != nil {
		w.log.Info("result saved", "run", saved.RunID, "score", saved.Score, "outcome", saved.Outcome)
	}
	return nil
}

// Draw renders the current scene.
func (w *Window) Draw(screen *ebiten.Image) {
	w.drawScene(screen, w.game.Scene())
}

// Layout keeps the logical canvas fixed; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return crossing.CanvasWidth, crossing.CanvasHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *crossing.Game, cfg core.RuntimeConfig, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	ebiten.SetWindowSize(int(crossing.CanvasWidth*scale), int(crossing.CanvasHeight*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if opts.Difficulty != "" {
		game.SetPreset(opts.Difficulty)
	}
	game.Reset(cfg)

	w := New(game, opts)
	w.log.Info("window opened", "difficulty", game.Difficulty())
	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	return nil
}
