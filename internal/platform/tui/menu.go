package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
	"github.com/vovakirdan/gem-crossing/internal/storage"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceWindow
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

// MenuOptions configures the title menu.
type MenuOptions struct {
	Difficulty  string // Preselected preset; empty means normal
	AllowWindow bool   // Offer the pixel window (local sessions only)
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	presets    []config.DifficultyPreset
	difficulty int // Index into presets
	width      int
	height     int
	store      *storage.Store
	highScore  int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) MenuModel {
	items := []MenuItem{{Choice: ChoicePlay, Title: "Play"}}
	if opts.AllowWindow {
		items = append(items, MenuItem{Choice: ChoiceWindow, Title: "Play in window"})
	}
	items = append(items,
		MenuItem{Choice: ChoiceScores, Title: "High scores"},
		MenuItem{Choice: ChoiceQuit, Title: "Quit"},
	)

	presets := config.Presets()
	want, _ := config.ParsePreset(opts.Difficulty)
	difficulty := 0
	for i, p := range presets {
		if p == want {
			difficulty = i
		}
	}

	m := MenuModel{
		items:      items,
		presets:    presets,
		difficulty: difficulty,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
	}
	m.loadHighScore()
	return m
}

// loadHighScore refreshes the best score for the selected difficulty.
func (m *MenuModel) loadHighScore() {
	m.highScore = 0
	if m.store == nil {
		return
	}
	if best, err := m.store.HighScore(crossing.GameID, m.Difficulty()); err == nil {
		m.highScore = best
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.difficulty = (m.difficulty + len(m.presets) - 1) % len(m.presets)
		m.loadHighScore()

	case MenuActionRight:
		m.difficulty = (m.difficulty + 1) % len(m.presets)
		m.loadHighScore()

	case MenuActionScoreboard:
		m.selected = &MenuItem{Choice: ChoiceScores, Title: "High scores"}
		return m, tea.Quit

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Choice == ChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	gemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G E M   C R O S S I N G"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(gemStyle.Render("<>  Cross the board, grab the gems, find the key  <>"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Difficulty()), m.width))
	b.WriteString("\n")
	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.highScore), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the selected difficulty preset name.
func (m MenuModel) Difficulty() string {
	return string(m.presets[m.difficulty])
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty string
	Config     core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, opts MenuOptions) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	result := MenuResult{
		Choice:     ChoiceQuit,
		Difficulty: m.Difficulty(),
		Config:     m.Config(),
	}
	if !m.IsQuitting() && m.Selected() != nil {
		result.Choice = m.Selected().Choice
	}
	return result, nil
}
