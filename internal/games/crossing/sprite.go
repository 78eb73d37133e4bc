package crossing

import "github.com/vovakirdan/gem-crossing/internal/core"

// Sprite identifies what a frontend should draw for an entity.
type Sprite uint8

const (
	SpriteNone Sprite = iota
	SpriteBoy
	SpriteCatGirl
	SpriteHornGirl
	SpritePinkGirl
	SpritePrincessGirl
	SpriteBug
	SpriteGem
	SpriteKey
	SpriteHeart
	SpriteSelector
)

// spriteInfo is the terminal look of a sprite.
type spriteInfo struct {
	name  string
	glyph string // At most 3 runes, centered in a cell
	color core.Color
}

var sprites = map[Sprite]spriteInfo{
	SpriteBoy:          {"boy", "@", core.ColorBrightWhite},
	SpriteCatGirl:      {"cat girl", "^@^", core.ColorBrightYellow},
	SpriteHornGirl:     {"horn girl", "v@v", core.ColorMagenta},
	SpritePinkGirl:     {"pink girl", "(@)", core.ColorPink},
	SpritePrincessGirl: {"princess", "*@*", core.ColorBrightCyan},
	SpriteBug:          {"bug", "<#>", core.ColorRed},
	SpriteGem:          {"gem", "<>", core.ColorOrange},
	SpriteKey:          {"key", "o-m", core.ColorYellow},
	SpriteHeart:        {"heart", "<3", core.ColorBrightRed},
	SpriteSelector:     {"selector", "^^^", core.ColorBrightWhite},
}

var skins = []Sprite{SpriteBoy, SpriteCatGirl, SpriteHornGirl, SpritePinkGirl, SpritePrincessGirl}

// Skins returns the selectable player sprites in selector order.
func Skins() []Sprite {
	out := make([]Sprite, len(skins))
	copy(out, skins)
	return out
}

// Name returns a display name.
func (s Sprite) Name() string {
	if info, ok := sprites[s]; ok {
		return info.name
	}
	return "none"
}

// Glyph returns the terminal glyph.
func (s Sprite) Glyph() string {
	return sprites[s].glyph
}

// Color returns the terminal color.
func (s Sprite) Color() core.Color {
	if info, ok := sprites[s]; ok {
		return info.color
	}
	return core.ColorDefault
}

// IsSkin reports whether s is one of the player skins.
func (s Sprite) IsSkin() bool {
	return s >= SpriteBoy && s <= SpritePrincessGirl
}

func (s Sprite) String() string {
	return s.Name()
}
