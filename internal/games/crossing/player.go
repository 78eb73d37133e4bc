package crossing

// Spawn cell of the player.
const (
	StartRow = 7
	StartCol = 3
)

// Player is the sprite steered by the user.
type Player struct {
	Row  int
	Col  int
	Skin Sprite
}

// NewPlayer creates a player at the spawn cell.
func NewPlayer(skin Sprite) Player {
	return Player{Row: StartRow, Col: StartCol, Skin: skin}
}

// HandleInput moves one cell in dir. Moves off the board are ignored.
func (p *Player) HandleInput(dir Direction) {
	switch dir {
	case DirLeft:
		if p.Col > 0 {
			p.Col--
		}
	case DirRight:
		if p.Col < Cols-1 {
			p.Col++
		}
	case DirUp:
		if p.Row > 0 {
			p.Row--
		}
	case DirDown:
		if p.Row < Rows-1 {
			p.Row++
		}
	}
}

// ResetToStart puts the player back on the spawn cell.
func (p *Player) ResetToStart() {
	p.Row = StartRow
	p.Col = StartCol
}

// Pos implements Entity.
func (p *Player) Pos() Position {
	return Cell(p.Row, p.Col)
}

// Sprite implements Entity.
func (p *Player) Sprite() Sprite {
	return p.Skin
}
