package crossing

// Position is a board location. Enemies move in fractional columns;
// everything else sits on whole cells.
type Position struct {
	Row int
	Col float64
}

// Cell returns the position of a whole cell.
func Cell(row, col int) Position {
	return Position{Row: row, Col: float64(col)}
}

// Entity is anything drawn on the board.
type Entity interface {
	Pos() Position
	Sprite() Sprite
}

// Direction is a one-cell player move.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
