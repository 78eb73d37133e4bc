package crossing

import (
	"math/rand"

	"github.com/vovakirdan/gem-crossing/internal/config"
)

// Enemy lanes and edges.
const (
	laneTop    = 2
	laneBottom = 5
	enemyEntry = -1.0
	enemyExit  = 7.0
)

// Spawner picks a fresh lane and speed for an enemy that (re)enters the board.
type Spawner interface {
	SpawnLane() (row int, speed float64)
}

// SpeedTable samples enemy speeds. The sampled index grows with the level
// when scaling is on and is clamped to the last entry.
type SpeedTable struct {
	speeds  []float64
	span    int
	scaling bool
}

// NewSpeedTable builds a table from config.
func NewSpeedTable(cfg config.CrossingEnemies) SpeedTable {
	speeds := cfg.Speeds
	if len(speeds) == 0 {
		speeds = config.DefaultCrossingConfig().Enemies.Speeds
	}
	return SpeedTable{speeds: speeds, span: cfg.SpeedSpan, scaling: cfg.LevelScaling}
}

// Sample draws a speed for the given level.
func (t SpeedTable) Sample(rng *rand.Rand, level int) float64 {
	hi := t.span
	if t.scaling {
		hi += level
	}
	idx := min(RandInt(rng, 0, hi), len(t.speeds)-1)
	return t.speeds[idx]
}

// Enemy is a bug crossing one lane from left to right.
type Enemy struct {
	Row   int
	Col   float64
	Speed float64 // Cells per second
}

// NewEnemy creates an enemy just off the left edge.
func NewEnemy(sp Spawner) *Enemy {
	e := &Enemy{}
	e.Reset(sp)
	return e
}

// Update moves the enemy dt seconds forward and respawns it once it
// passes the right edge.
func (e *Enemy) Update(dt float64, sp Spawner) {
	e.Col += e.Speed * dt
	if e.Col > enemyExit {
		e.Reset(sp)
	}
}

// Reset puts the enemy back at the left edge on a new lane and speed.
func (e *Enemy) Reset(sp Spawner) {
	e.Row, e.Speed = sp.SpawnLane()
	e.Col = enemyEntry
}

// Hits reports whether the enemy overlaps the player cell within tolerance.
func (e *Enemy) Hits(row, col int, tolerance float64) bool {
	if e.Row != row {
		return false
	}
	c := float64(col)
	return c-tolerance < e.Col && c+tolerance > e.Col
}

// Pos implements Entity.
func (e *Enemy) Pos() Position {
	return Position{Row: e.Row, Col: e.Col}
}

// Sprite implements Entity.
func (e *Enemy) Sprite() Sprite {
	return SpriteBug
}
