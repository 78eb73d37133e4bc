package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	clock := core.NewManualClock(time.Unix(1_700_000_000, 0))
	g := crossing.New(crossing.WithClock(clock), crossing.WithConfig(config.DefaultCrossingConfig()))
	g.Reset(core.RuntimeConfig{Seed: 7})
	return New(g, Options{})
}

func TestActionsFor(t *testing.T) {
	in := actionsFor([]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowRight, ebiten.KeyF1})
	if !in.Has(core.ActionUp) || !in.Has(core.ActionRight) {
		t.Error("expected up and right")
	}
	if in.Has(core.ActionDown) || in.Has(core.ActionQuit) {
		t.Error("unbound key produced an action")
	}

	tests := []struct {
		key  ebiten.Key
		want core.Action
	}{
		{ebiten.KeyS, core.ActionDown},
		{ebiten.KeyA, core.ActionLeft},
		{ebiten.KeyEnter, core.ActionConfirm},
		{ebiten.KeySpace, core.ActionRestart},
		{ebiten.KeyEscape, core.ActionPause},
		{ebiten.KeyB, core.ActionBack},
		{ebiten.KeyQ, core.ActionQuit},
	}
	for _, tt := range tests {
		if !actionsFor([]ebiten.Key{tt.key}).Has(tt.want) {
			t.Errorf("key %v should map to %v", tt.key, tt.want)
		}
	}
}

func TestStepQuitTerminates(t *testing.T) {
	w := newTestWindow(t)
	if err := w.step(actionsFor([]ebiten.Key{ebiten.KeyQ})); !errors.Is(err, ebiten.Termination) {
		t.Errorf("step(quit) = %v, expected termination", err)
	}
}

func TestStepBackOnlyWhenStopped(t *testing.T) {
	w := newTestWindow(t)
	back := actionsFor([]ebiten.Key{ebiten.KeyB})

	if err := w.step(back); err != nil {
		t.Fatalf("back during select should be ignored, got %v", err)
	}

	w.step(actionsFor([]ebiten.Key{ebiten.KeyEnter}))
	w.step(actionsFor([]ebiten.Key{ebiten.KeyP}))
	if !w.state.Paused {
		t.Fatal("expected paused")
	}
	if err := w.step(back); !errors.Is(err, ebiten.Termination) {
		t.Errorf("back while paused = %v, expected termination", err)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	w := newTestWindow(t)
	gw, gh := w.Layout(1920, 1080)
	if gw != crossing.CanvasWidth || gh != crossing.CanvasHeight {
		t.Errorf("Layout() = %dx%d", gw, gh)
	}
}

func TestGeometry(t *testing.T) {
	x, y, cw, ch := tileRect(2, 3)
	if x != 303 || y != 2*83+boardTop || cw != crossing.CellWidth || ch != crossing.CellHeight {
		t.Errorf("tileRect(2,3) = %v,%v %vx%v", x, y, cw, ch)
	}

	cx, cy := spriteCenter(crossing.Position{Row: 1, Col: 0.5})
	if cx != 50.5+50 || cy != float32(83-crossing.SpriteLift+spriteBodyY) {
		t.Errorf("spriteCenter = %v,%v", cx, cy)
	}

	// The bottom row and its side stay on the canvas
	_, y, _, ch = tileRect(crossing.Rows-1, 0)
	if bottom := y + ch + tileDepth; bottom > crossing.CanvasHeight {
		t.Errorf("board bottom %v exceeds canvas height", bottom)
	}
}

func TestPaletteCoversSprites(t *testing.T) {
	for _, c := range core.Colors() {
		if _, ok := palette[c]; !ok {
			t.Errorf("no canvas color for core color %d", c)
		}
	}
	all := append(crossing.Skins(), crossing.SpriteBug, crossing.SpriteGem, crossing.SpriteKey, crossing.SpriteHeart)
	for _, sp := range all {
		if _, ok := palette[sp.Color()]; !ok {
			t.Errorf("no canvas color for %v", sp)
		}
	}
	for _, kind := range []crossing.CellKind{crossing.CellGrass, crossing.CellStone, crossing.CellWater} {
		if _, ok := tileColors[kind]; !ok {
			t.Errorf("no tile colors for kind %v", kind)
		}
	}
}
