package crossing

import "fmt"

// Pixel geometry of the board.
const (
	CellWidth    = 101
	CellHeight   = 83
	SpriteLift   = 22 // Sprites are drawn this far above their tile
	CanvasWidth  = 707
	CanvasHeight = 760
)

// PixelPos maps a board position to the top-left pixel of its image,
// lifted by offset.
func PixelPos(row int, col float64, offset float64) (x, y float64) {
	return col * CellWidth, float64(row)*CellHeight - offset
}

// ToastPixelPos returns where a toast anchored at (row, col) is centered.
func ToastPixelPos(row, col int) (x, y float64) {
	return float64(col)*CellWidth + CellWidth/2, float64(row)*CellHeight + 100
}

// SpriteDraw is one sprite in the display list.
type SpriteDraw struct {
	Sprite Sprite
	Pos    Position
}

// HUD is the status line shown while playing.
type HUD struct {
	Lives    int
	Score    int
	GemsLeft int
	Level    int
}

// Banner is a full-screen message: loading, victory, defeat or pause.
type Banner struct {
	Title string
	Lines []string
}

// Scene is everything a frontend needs to draw one frame. Sprites are in
// draw order: active collectible, heart, enemies, player.
type Scene struct {
	Phase   Phase
	Paused  bool
	Tiles   [Rows][Cols]CellKind
	Sprites []SpriteDraw
	HUD     HUD
	Toast   *Toast // nil when no toast is showing
	Banner  *Banner

	// Character selection
	Skins    []Sprite
	Selector int
}

// Scene builds the display list for the current frame.
func (g *Game) Scene() Scene {
	st := &g.session.State
	sc := Scene{
		Phase:  g.phase,
		Paused: g.paused,
		Tiles:  st.Board.Tiles(),
		HUD: HUD{
			Lives:    st.Lives,
			Score:    st.Score,
			GemsLeft: st.GemsLeft(),
			Level:    st.Level,
		},
	}

	switch g.phase {
	case PhaseSelect:
		sc.Skins = Skins()
		sc.Selector = g.selector
		sc.Banner = &Banner{Title: "Choose your character", Lines: []string{"Press Enter"}}
		return sc
	case PhaseLoading:
		sc.Banner = &Banner{Title: fmt.Sprintf("Level %d", st.Level)}
		return sc
	case PhaseVictory:
		sc.Banner = &Banner{Title: "Congratulations!", Lines: []string{
			fmt.Sprintf("Your score: %d", st.Score),
			fmt.Sprintf("Level: %d", g.cfg.Gameplay.MaxLevel),
			"Press Space to restart",
		}}
		return sc
	case PhaseDefeat:
		sc.Banner = &Banner{Title: "Game Over", Lines: []string{
			fmt.Sprintf("Score: %d", st.Score),
			fmt.Sprintf("Level: %d", st.Level),
			"Press Space to restart",
		}}
		return sc
	}

	for _, e := range g.session.Entities() {
		sc.Sprites = append(sc.Sprites, SpriteDraw{Sprite: e.Sprite(), Pos: e.Pos()})
	}
	if st.Toast.Active {
		t := st.Toast
		sc.Toast = &t
	}
	if g.paused {
		sc.Banner = &Banner{Title: "Paused", Lines: []string{"Press P to continue"}}
	}
	return sc
}
