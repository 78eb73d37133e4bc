package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

// scriptedGame ends after a fixed number of steps with a fixed score.
type scriptedGame struct {
	stepsToEnd int
	score      int
	won        bool
	preset     string
	resized    [2]int
	resets     int
	steps      int
	paused     bool
	lastInput  core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.lastInput = in
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && g.steps >= g.stepsToEnd {
		g.steps = 0
		return core.StepResult{State: g.State()}
	}
	g.steps++
	var events []core.Event
	if g.steps == g.stepsToEnd {
		events = append(events, core.Event{Kind: core.EventDefeat})
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	over := g.steps >= g.stepsToEnd
	return core.GameState{Score: g.score, Level: 3, GameOver: over, Won: over && g.won, Paused: g.paused}
}

func (g *scriptedGame) Resize(w, h int)       { g.resized = [2]int{w, h} }
func (g *scriptedGame) SetPreset(name string) { g.preset = name }
func (g *scriptedGame) Difficulty() string    { return "hard" }

type recordingSink struct {
	events []core.Event
}

func (s *recordingSink) Handle(ev core.Event) { s.events = append(s.events, ev) }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func newTestModel(game *scriptedGame, opts Options) Model {
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m
}

func TestModelSavesResultOnceOnGameOver(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{stepsToEnd: 2, score: 140, won: true}
	m := newTestModel(game, Options{Store: store, Player: "ada", Difficulty: "hard"})

	if game.preset != "hard" || game.resets != 1 {
		t.Fatalf("Init should apply preset then reset: preset=%q resets=%d", game.preset, game.resets)
	}

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	results, err := store.TopScores("scripted", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one saved result, got %d", len(results))
	}
	r := results[0]
	if r.Player != "ada" || r.Score != 140 || r.Level != 3 || r.Outcome != storage.OutcomeVictory || r.Difficulty != "hard" {
		t.Errorf("unexpected result: %+v", r)
	}
	if r.RunID == "" {
		t.Error("result should carry a run id")
	}
}

func TestModelSavesAgainAfterRestart(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{stepsToEnd: 1, score: 50}
	m := newTestModel(game, Options{Store: store})

	m = tick(t, m)
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	if m.State().GameOver {
		t.Fatal("restart should clear game over")
	}
	m = tick(t, m)

	results, err := store.TopScores("scripted", "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("expected a result per finished run, got %d", len(results))
	}
	if results[0].Outcome != storage.OutcomeDefeat {
		t.Errorf("Outcome = %q, expected defeat", results[0].Outcome)
	}
}

func TestModelSkipsNonPositiveScores(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{stepsToEnd: 1, score: -30}
	m := newTestModel(game, Options{Store: store})
	m = tick(t, m)
	_ = m

	best, err := store.HighScore("scripted", "")
	if err != nil {
		t.Fatal(err)
	}
	if best != 0 {
		t.Errorf("negative score should not be saved, best = %d", best)
	}
}

func TestModelForwardsEvents(t *testing.T) {
	sink := &recordingSink{}
	game := &scriptedGame{stepsToEnd: 2}
	m := newTestModel(game, Options{Sounds: sink})

	m = tick(t, m)
	m = tick(t, m)
	_ = m

	if len(sink.events) != 1 || sink.events[0].Kind != core.EventDefeat {
		t.Errorf("sink got %v, expected one defeat event", sink.events)
	}
}

func TestModelInputReachesGameOnce(t *testing.T) {
	game := &scriptedGame{stepsToEnd: 100}
	m := newTestModel(game, Options{})

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m)
	if !game.lastInput.Has(core.ActionLeft) {
		t.Error("left should reach the game")
	}
	m = tick(t, m)
	_ = m
	if game.lastInput.Has(core.ActionLeft) {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &scriptedGame{stepsToEnd: 100}
	m := newTestModel(game, Options{})
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if game.resized != [2]int{120, 40} {
		t.Errorf("Resize not forwarded: %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", game.resets)
	}
}

func TestModelQuitAndBack(t *testing.T) {
	game := &scriptedGame{stepsToEnd: 100}
	m := newTestModel(game, Options{Embedded: true})

	// Back is ignored mid-run
	m, _ = pressKey(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m, _ = pressKey(t, m, runeKey('p'))
	m = tick(t, m)
	m, cmd := pressKey(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Fatal("back should leave a paused game")
	}
	if cmd != nil {
		t.Error("embedded models should not quit the program")
	}

	m, cmd = pressKey(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	game := &scriptedGame{stepsToEnd: 100}
	m := newTestModel(game, Options{})
	if v := m.View(); v == "" {
		t.Error("View() should render the game")
	}
}
