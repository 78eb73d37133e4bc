package crossing

import (
	"fmt"
	"math/rand"
)

// Board dimensions in cells.
const (
	Rows = 8
	Cols = 7
)

// Rows that can hold water and collectibles.
const (
	interiorTop    = 1
	interiorBottom = 6
	interiorCells  = (interiorBottom - interiorTop + 1) * Cols
)

// CellKind is the terrain of one board cell.
type CellKind uint8

const (
	CellGrass CellKind = iota
	CellStone          // Enemy lanes
	CellWater          // Kills the player
)

func (k CellKind) String() string {
	switch k {
	case CellGrass:
		return "grass"
	case CellStone:
		return "stone"
	case CellWater:
		return "water"
	default:
		return "unknown"
	}
}

// Board is the terrain grid. It changes only between levels.
type Board struct {
	cells [Rows][Cols]CellKind
}

// NewBoard returns a board with the default lane pattern.
func NewBoard() Board {
	var b Board
	b.Reset()
	return b
}

// Reset restores the lane pattern and removes all water:
// two grass rows, four stone rows, two grass rows.
func (b *Board) Reset() {
	for row := 0; row < Rows; row++ {
		kind := CellGrass
		if row >= 2 && row <= 5 {
			kind = CellStone
		}
		for col := 0; col < Cols; col++ {
			b.cells[row][col] = kind
		}
	}
}

// PlaceWaterHazards floods count new distinct cells in rows 1-6.
// Existing water plus count must fit in the 42 interior cells; exceeding
// that is a programming error and panics.
func (b *Board) PlaceWaterHazards(rng *rand.Rand, count int) {
	if free := interiorCells - b.WaterCount(); count > free {
		panic(fmt.Sprintf("crossing: cannot place %d water cells, only %d free", count, free))
	}
	for i := 0; i < count; i++ {
		row, col := randomInteriorCell(rng)
		for b.cells[row][col] == CellWater {
			row, col = randomInteriorCell(rng)
		}
		b.cells[row][col] = CellWater
	}
}

// Kind returns the terrain at (row, col). Out-of-range cells read as grass.
func (b *Board) Kind(row, col int) CellKind {
	if !InBounds(row, col) {
		return CellGrass
	}
	return b.cells[row][col]
}

// IsWater reports whether (row, col) is a water hazard.
func (b *Board) IsWater(row, col int) bool {
	return b.Kind(row, col) == CellWater
}

// WaterCount returns the number of water cells.
func (b *Board) WaterCount() int {
	n := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.cells[row][col] == CellWater {
				n++
			}
		}
	}
	return n
}

// Tiles returns a copy of the grid for renderers.
func (b *Board) Tiles() [Rows][Cols]CellKind {
	return b.cells
}

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func randomInteriorCell(rng *rand.Rand) (int, int) {
	return RandInt(rng, interiorTop, interiorBottom), RandInt(rng, 0, Cols-1)
}
