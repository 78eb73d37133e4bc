package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

func menuKey(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuItems(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), MenuOptions{})
	if len(m.items) != 3 {
		t.Fatalf("expected Play/High scores/Quit, got %v", m.items)
	}

	m = NewMenuModel(nil, core.DefaultConfig(), MenuOptions{AllowWindow: true})
	if len(m.items) != 4 || m.items[1].Choice != ChoiceWindow {
		t.Errorf("window item missing: %v", m.items)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), MenuOptions{})
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyDown}) // Clamped at the last item
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().Choice != ChoiceScores {
		t.Errorf("Selected() = %v, expected scores", m.Selected())
	}
}

func TestMenuQuitItem(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), MenuOptions{})
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < 2; i++ {
		m = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("Quit item should quit without a selection")
	}
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), MenuOptions{Difficulty: "fixed"})
	if m.Difficulty() != "fixed" {
		t.Fatalf("Difficulty() = %q, expected fixed", m.Difficulty())
	}

	m = menuKey(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Difficulty() != "easy" {
		t.Errorf("right from fixed should wrap to easy, got %q", m.Difficulty())
	}
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Difficulty() != "hard" {
		t.Errorf("Difficulty() = %q, expected hard", m.Difficulty())
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: "crossing", Score: 230, Level: 4,
		Outcome: storage.OutcomeDefeat, Difficulty: "normal"}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, core.DefaultConfig(), MenuOptions{})
	if !strings.Contains(m.View(), "Best: 230") {
		t.Error("menu should show the best normal score")
	}

	m = menuKey(m, tea.KeyMsg{Type: tea.KeyRight})
	if strings.Contains(m.View(), "Best:") {
		t.Error("hard has no scores yet")
	}
}

func sessionKey(m SessionModel, msg tea.KeyMsg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionPlayAndQuit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m := NewSessionModel(nil, core.DefaultConfig(), SessionOptions{Player: "ada"})
	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.gameModel == nil {
		t.Fatalf("Enter on Play should start a game, view = %v", m.view)
	}
	if m.gameModel.opts.Player != "ada" || !m.gameModel.opts.Embedded {
		t.Errorf("game options not passed through: %+v", m.gameModel.opts)
	}
	if !strings.Contains(m.View(), "Choose your character") {
		t.Error("a new game should open on character selection")
	}

	m = sessionKey(m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in game should end the session")
	}
}

func TestSessionScoresAndBack(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), SessionOptions{Difficulty: "hard"})
	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewScores {
		t.Fatalf("expected scoreboard, view = %v", m.view)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard should render its title")
	}

	m = sessionKey(m, runeKey('b'))
	if m.view != viewMenu || m.quitting {
		t.Fatal("back should return to the menu")
	}
	if m.menu.Difficulty() != "hard" {
		t.Errorf("menu lost difficulty: %q", m.menu.Difficulty())
	}
}
