package crossing

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/gem-crossing/internal/core"
)

// Terminal cell size in characters.
const (
	TermCellW = 6
	TermCellH = 2
	boardW    = Cols * TermCellW
	boardH    = Rows * TermCellH
	hudHeight = 2
)

// MinScreenW and MinScreenH fit the board and the HUD.
const (
	MinScreenW = boardW + 2
	MinScreenH = boardH + hudHeight + 1
)

// tileLook is how a terrain kind fills a terminal cell.
var tileLook = map[CellKind]struct {
	fill  rune
	color core.Color
}{
	CellGrass: {'"', core.ColorGreen},
	CellStone: {'.', core.ColorGray},
	CellWater: {'~', core.ColorBrightBlue},
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		drawOverlay(dst, &Banner{Title: "Window too small", Lines: []string{"Resize to continue"}})
		return
	}
	RenderScene(dst, g.Scene())
}

// RenderScene draws a scene into a character screen.
func RenderScene(dst *core.Screen, sc Scene) {
	ox := (dst.Width() - boardW) / 2
	oy := hudHeight

	switch sc.Phase {
	case PhaseSelect:
		drawSelect(dst, sc)
		return
	case PhaseLoading, PhaseVictory, PhaseDefeat:
		drawOverlay(dst, sc.Banner)
		return
	}

	drawHUD(dst, ox, sc.HUD)
	drawTiles(dst, ox, oy, sc.Tiles)
	for _, sp := range sc.Sprites {
		drawSprite(dst, ox, oy, sp)
	}
	if sc.Toast != nil {
		drawToast(dst, ox, oy, sc.Toast)
	}
	if sc.Banner != nil {
		drawOverlay(dst, sc.Banner)
	}
}

func drawHUD(dst *core.Screen, ox int, hud HUD) {
	dst.DrawTextColored(ox, 0, strings.Repeat("<3", hud.Lives), core.ColorBrightRed)

	gems := strconv.Itoa(hud.GemsLeft) + " Gem Left"
	dst.DrawTextColored(ox+(boardW-len(gems))/2, 0, gems, core.ColorRed)

	score := "Score: " + strconv.Itoa(hud.Score)
	dst.DrawTextColored(ox+boardW-len(score), 0, score, core.ColorRed)

	dst.DrawHLine(ox, 1, boardW, '─', core.ColorDarkGray)
}

func drawTiles(dst *core.Screen, ox, oy int, tiles [Rows][Cols]CellKind) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			look := tileLook[tiles[row][col]]
			r := core.NewRect(ox+col*TermCellW, oy+row*TermCellH, TermCellW, TermCellH)
			dst.FillRect(r, look.fill, look.color)
		}
	}
}

// drawSprite centers the glyph on the top line of its cell. Enemies at
// fractional columns are clipped at the board edges.
func drawSprite(dst *core.Screen, ox, oy int, sp SpriteDraw) {
	glyph := sp.Sprite.Glyph()
	n := utf8.RuneCountInString(glyph)
	x := int(math.Round(sp.Pos.Col*TermCellW)) + (TermCellW-n)/2
	y := oy + sp.Pos.Row*TermCellH

	i := 0
	for _, r := range glyph {
		if bx := x + i; bx >= 0 && bx < boardW {
			dst.SetColored(ox+bx, y, r, sp.Sprite.Color())
		}
		i++
	}
}

func drawToast(dst *core.Screen, ox, oy int, t *Toast) {
	n := utf8.RuneCountInString(t.Message)
	x := ox + t.Col*TermCellW + (TermCellW-n)/2
	x = core.Clamp(x, ox, ox+boardW-n)
	dst.DrawTextColored(x, oy+t.Row*TermCellH+1, t.Message, core.ColorBrightRed)
}

func drawSelect(dst *core.Screen, sc Scene) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, sc.Banner.Title, core.ColorBrightWhite)

	slot := TermCellW + 2
	left := (dst.Width() - slot*len(sc.Skins)) / 2
	for i, skin := range sc.Skins {
		glyph := skin.Glyph()
		x := left + i*slot + (slot-utf8.RuneCountInString(glyph))/2
		dst.DrawTextColored(x, mid, glyph, skin.Color())
		if i == sc.Selector {
			sel := SpriteSelector.Glyph()
			dst.DrawTextColored(left+i*slot+(slot-len(sel))/2, mid+1, sel, SpriteSelector.Color())
		}
	}

	dst.DrawTextCentered(mid+3, sc.Skins[sc.Selector].Name(), core.ColorGray)
	for i, line := range sc.Banner.Lines {
		dst.DrawTextCentered(mid+5+i, line, core.ColorBrightWhite)
	}
}

// drawOverlay draws a centered box with a title and lines.
func drawOverlay(dst *core.Screen, b *Banner) {
	if b == nil {
		return
	}
	width := utf8.RuneCountInString(b.Title)
	for _, l := range b.Lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 6
	boxH := 4 + len(b.Lines)
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, b.Title, core.ColorBrightYellow)
	for i, l := range b.Lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
