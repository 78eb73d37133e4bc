package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gem-crossing/internal/core"
	"github.com/vovakirdan/gem-crossing/internal/games/crossing"
)

// Board geometry on the canvas. Tile faces start boardTop below the image
// row origin, like the classic 101x171 tile art.
const (
	boardTop    = 50
	tileDepth   = 40 // Visible side of the bottom row
	spriteBodyY = 105
	glyphW      = 6 // ebitenutil debug font cell
	glyphH      = 16
)

// palette maps terminal colors to canvas colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:           {0xc6, 0x28, 0x28, 0xff},
	core.ColorGreen:         {0x4c, 0xaf, 0x50, 0xff},
	core.ColorYellow:        {0xf9, 0xa8, 0x25, 0xff},
	core.ColorBlue:          {0x1e, 0x88, 0xe5, 0xff},
	core.ColorMagenta:       {0x8e, 0x24, 0xaa, 0xff},
	core.ColorCyan:          {0x00, 0xac, 0xc1, 0xff},
	core.ColorWhite:         {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorBrightRed:     {0xef, 0x53, 0x50, 0xff},
	core.ColorBrightGreen:   {0x81, 0xc7, 0x84, 0xff},
	core.ColorBrightYellow:  {0xff, 0xee, 0x58, 0xff},
	core.ColorBrightBlue:    {0x42, 0xa5, 0xf5, 0xff},
	core.ColorBrightMagenta: {0xce, 0x93, 0xd8, 0xff},
	core.ColorBrightCyan:    {0x80, 0xde, 0xea, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x8f, 0x00, 0xff},
	core.ColorGray:          {0x9e, 0x9e, 0x9e, 0xff},
	core.ColorPink:          {0xf4, 0x8f, 0xb1, 0xff},
	core.ColorDarkGray:      {0x42, 0x42, 0x42, 0xff},
}

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	hudText    = core.ColorDarkGray
	shadow     = color.RGBA{0, 0, 0, 0x40}
	overlay    = color.RGBA{0, 0, 0, 0xa0}
)

// tileColors are the top face and side of each terrain.
var tileColors = map[crossing.CellKind][2]color.RGBA{
	crossing.CellGrass: {{0x6a, 0xbf, 0x4b, 0xff}, {0x3e, 0x7d, 0x2a, 0xff}},
	crossing.CellStone: {{0xa1, 0x98, 0x8e, 0xff}, {0x6d, 0x64, 0x5a, 0xff}},
	crossing.CellWater: {{0x4f, 0x8f, 0xe8, 0xff}, {0x2a, 0x5c, 0xb0, 0xff}},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// spriteCenter is where a sprite's body is drawn for a board position.
func spriteCenter(p crossing.Position) (x, y float32) {
	px, py := crossing.PixelPos(p.Row, p.Col, crossing.SpriteLift)
	return float32(px + crossing.CellWidth/2), float32(py + spriteBodyY)
}

// tileRect is the top face of a board cell.
func tileRect(row, col int) (x, y, w, h float32) {
	px, py := crossing.PixelPos(row, float64(col), 0)
	return float32(px), float32(py + boardTop), crossing.CellWidth, crossing.CellHeight
}

// textCache keeps rendered debug-font strings between frames.
type textCache map[string]*ebiten.Image

func (tc textCache) get(s string) *ebiten.Image {
	if img, ok := tc[s]; ok {
		return img
	}
	img := ebiten.NewImage(max(len(s), 1)*glyphW, glyphH)
	ebitenutil.DebugPrint(img, s)
	tc[s] = img
	return img
}

// drawText draws s centered on cx with its top at y, scaled and tinted.
func (tc textCache) drawText(dst *ebiten.Image, s string, cx, y, scale float64, c color.RGBA) {
	img := tc.get(s)
	w := float64(img.Bounds().Dx()) * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w/2, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(img, op)
}

// drawScene draws one frame of the game.
func (w *Window) drawScene(dst *ebiten.Image, sc crossing.Scene) {
	dst.Fill(background)

	if sc.Phase == crossing.PhaseSelect {
		w.drawSelect(dst, sc)
		return
	}

	drawTiles(dst, sc.Tiles)
	if sc.Phase == crossing.PhasePlaying {
		w.drawHUD(dst, sc.HUD)
		for _, sp := range sc.Sprites {
			drawSprite(dst, sp)
		}
		if sc.Toast != nil {
			x, y := crossing.ToastPixelPos(sc.Toast.Row, sc.Toast.Col)
			w.text.drawText(dst, sc.Toast.Message, x, y, 3, palette[core.ColorBrightRed])
		}
	}

	if sc.Banner != nil {
		w.drawBanner(dst, sc.Banner)
	}
}

func drawTiles(dst *ebiten.Image, tiles [crossing.Rows][crossing.Cols]crossing.CellKind) {
	for row := range crossing.Rows {
		for col := range crossing.Cols {
			faces := tileColors[tiles[row][col]]
			x, y, cw, ch := tileRect(row, col)
			vector.DrawFilledRect(dst, x, y, cw, ch, faces[0], false)
			if row == crossing.Rows-1 {
				vector.DrawFilledRect(dst, x, y+ch, cw, tileDepth, faces[1], false)
			}
			vector.StrokeRect(dst, x, y, cw, ch, 1, shadow, false)
		}
	}
}

// drawSprite draws an entity with simple shapes.
func drawSprite(dst *ebiten.Image, sp crossing.SpriteDraw) {
	cx, cy := spriteCenter(sp.Pos)
	c := rgba(sp.Sprite.Color())

	vector.DrawFilledRect(dst, cx-30, cy+26, 60, 8, shadow, true)

	switch sp.Sprite {
	case crossing.SpriteBug:
		vector.DrawFilledRect(dst, cx-36, cy-14, 72, 36, c, true)
		vector.DrawFilledCircle(dst, cx+36, cy+4, 18, c, true)
		vector.DrawFilledCircle(dst, cx+42, cy-2, 4, palette[core.ColorBrightWhite], true)
		vector.DrawFilledCircle(dst, cx-20, cy+24, 6, palette[core.ColorDarkGray], true)
		vector.DrawFilledCircle(dst, cx+16, cy+24, 6, palette[core.ColorDarkGray], true)
	case crossing.SpriteGem:
		vector.DrawFilledCircle(dst, cx, cy, 22, c, true)
		vector.DrawFilledCircle(dst, cx-6, cy-6, 8, palette[core.ColorBrightWhite], true)
	case crossing.SpriteKey:
		vector.StrokeCircle(dst, cx-16, cy, 12, 6, c, true)
		vector.DrawFilledRect(dst, cx-4, cy-3, 34, 6, c, true)
		vector.DrawFilledRect(dst, cx+20, cy, 6, 12, c, true)
	case crossing.SpriteHeart:
		vector.DrawFilledCircle(dst, cx-10, cy-6, 12, c, true)
		vector.DrawFilledCircle(dst, cx+10, cy-6, 12, c, true)
		vector.DrawFilledRect(dst, cx-14, cy-4, 28, 20, c, true)
	default:
		if sp.Sprite.IsSkin() {
			drawCharacter(dst, cx, cy, c)
		}
	}
}

// drawCharacter draws a player skin: body, head and eyes.
func drawCharacter(dst *ebiten.Image, cx, cy float32, c color.RGBA) {
	skin := color.RGBA{0xff, 0xe0, 0xc0, 0xff}
	eye := palette[core.ColorDarkGray]

	vector.DrawFilledRect(dst, cx-16, cy, 32, 30, c, true)
	vector.DrawFilledCircle(dst, cx, cy-14, 20, c, true)
	vector.DrawFilledCircle(dst, cx, cy-12, 15, skin, true)
	vector.DrawFilledCircle(dst, cx-6, cy-14, 3, eye, true)
	vector.DrawFilledCircle(dst, cx+6, cy-14, 3, eye, true)
}

// drawHUD draws lives, gems left and score above the board.
func (w *Window) drawHUD(dst *ebiten.Image, hud crossing.HUD) {
	for i := range hud.Lives {
		x := float32(20 + i*30)
		vector.DrawFilledCircle(dst, x-5, 18, 7, palette[core.ColorBrightRed], true)
		vector.DrawFilledCircle(dst, x+5, 18, 7, palette[core.ColorBrightRed], true)
		vector.DrawFilledRect(dst, x-8, 18, 16, 10, palette[core.ColorBrightRed], true)
	}

	w.text.drawText(dst, fmt.Sprintf("%d Gem Left", hud.GemsLeft), crossing.CanvasWidth/2, 8, 2, rgba(hudText))
	score := fmt.Sprintf("Score: %d", hud.Score)
	w.text.drawText(dst, score, crossing.CanvasWidth-10-float64(len(score)*glyphW), 8, 2, rgba(hudText))
}

// drawSelect draws the skins in a row with the selector under the chosen one.
func (w *Window) drawSelect(dst *ebiten.Image, sc crossing.Scene) {
	mid := float64(crossing.CanvasHeight) / 2
	w.text.drawText(dst, sc.Banner.Title, crossing.CanvasWidth/2, mid-160, 3, rgba(hudText))

	left := (crossing.CanvasWidth - len(sc.Skins)*crossing.CellWidth) / 2
	for i, skin := range sc.Skins {
		cx := float32(left + i*crossing.CellWidth + crossing.CellWidth/2)
		if i == sc.Selector {
			vector.DrawFilledRect(dst, cx-45, float32(mid)-50, 90, 110, palette[core.ColorBrightYellow], true)
		}
		drawCharacter(dst, cx, float32(mid), rgba(skin.Color()))
	}

	w.text.drawText(dst, sc.Skins[sc.Selector].Name(), crossing.CanvasWidth/2, mid+80, 2, rgba(core.ColorGray))
	for i, line := range sc.Banner.Lines {
		w.text.drawText(dst, line, crossing.CanvasWidth/2, mid+130+float64(i)*40, 2, rgba(hudText))
	}
}

// drawBanner dims the board and shows a title with lines under it.
func (w *Window) drawBanner(dst *ebiten.Image, b *crossing.Banner) {
	vector.DrawFilledRect(dst, 0, 0, crossing.CanvasWidth, crossing.CanvasHeight, overlay, false)

	top := float64(crossing.CanvasHeight)/2 - float64(len(b.Lines)+1)*24
	w.text.drawText(dst, strings.ToUpper(b.Title), crossing.CanvasWidth/2, top, 4, palette[core.ColorBrightWhite])
	for i, line := range b.Lines {
		w.text.drawText(dst, line, crossing.CanvasWidth/2, top+90+float64(i)*44, 2.5, palette[core.ColorWhite])
	}
}
