package crossing

import (
	"math/rand"

	"github.com/vovakirdan/gem-crossing/internal/config"
)

// Kind distinguishes collectible variants.
type Kind uint8

const (
	KindGem Kind = iota
	KindKey
	KindHeart
)

// kindBehavior holds what differs between collectible kinds.
type kindBehavior struct {
	name   string
	sprite Sprite
	value  func(config.CrossingScoring) int
}

var behaviors = [...]kindBehavior{
	KindGem:   {"gem", SpriteGem, func(s config.CrossingScoring) int { return s.Gem }},
	KindKey:   {"key", SpriteKey, func(s config.CrossingScoring) int { return s.Key }},
	KindHeart: {"heart", SpriteHeart, func(s config.CrossingScoring) int { return s.Heart }},
}

func (k Kind) String() string {
	if int(k) < len(behaviors) {
		return behaviors[k].name
	}
	return "unknown"
}

// Collectible is a gem, key or heart sitting on an interior cell.
type Collectible struct {
	Kind    Kind
	Row     int
	Col     int
	Value   int
	Present bool // Only hearts hide; gems and keys are always present
}

// NewCollectible creates a collectible of kind k at a random dry cell.
func NewCollectible(k Kind, scoring config.CrossingScoring, rng *rand.Rand, board *Board) Collectible {
	c := Collectible{
		Kind:    k,
		Value:   behaviors[k].value(scoring),
		Present: k != KindHeart,
	}
	c.Reset(rng, board)
	return c
}

// Reset moves the collectible to a random interior cell that is not water.
// The board must have at least one dry interior cell.
func (c *Collectible) Reset(rng *rand.Rand, board *Board) {
	c.Row, c.Col = randomInteriorCell(rng)
	for board.IsWater(c.Row, c.Col) {
		c.Row, c.Col = randomInteriorCell(rng)
	}
}

// CheckPickup adds the value to the score and moves the collectible when
// the player stands on it.
func (c *Collectible) CheckPickup(st *GameState, p *Player, rng *rand.Rand) bool {
	if c.Row != p.Row || c.Col != p.Col {
		return false
	}
	st.Score += c.Value
	c.Reset(rng, &st.Board)
	return true
}

// MaybeAppear rolls whether a heart shows up this tick. The roll range
// shrinks as the level rises and no heart appears at max lives.
func (c *Collectible) MaybeAppear(rng *rand.Rand, level, lives int, rules config.CrossingHeart) {
	hi := (rules.LevelCap - level) * rules.Odds / 4
	c.Present = RandInt(rng, 0, hi) == 0 && lives < rules.MaxLives
}

// Pos implements Entity.
func (c *Collectible) Pos() Position {
	return Cell(c.Row, c.Col)
}

// Sprite implements Entity.
func (c *Collectible) Sprite() Sprite {
	return behaviors[c.Kind].sprite
}
