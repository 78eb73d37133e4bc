package crossing

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Level         int
	Score         int
	Lives         int
	GemsCollected int
	Loading       bool
	PlayerRow     int
	PlayerCol     int
	Skin          Sprite
	Gem           Collectible
	Key           Collectible
	Heart         Collectible
	Enemies       []Enemy
	Tiles         [Rows][Cols]CellKind
	Toast         string // Message of the active toast, empty when none
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	st := &s.State

	enemies := make([]Enemy, len(s.Enemies))
	for i, e := range s.Enemies {
		enemies[i] = *e
	}

	toast := ""
	if st.Toast.Active {
		toast = st.Toast.Message
	}

	return Snapshot{
		Tick:          g.tick,
		Phase:         g.phase,
		Level:         st.Level,
		Score:         st.Score,
		Lives:         st.Lives,
		GemsCollected: st.GemsCollected,
		Loading:       st.Loading,
		PlayerRow:     s.Player.Row,
		PlayerCol:     s.Player.Col,
		Skin:          s.Player.Skin,
		Gem:           s.Gem,
		Key:           s.Key,
		Heart:         s.Heart,
		Enemies:       enemies,
		Tiles:         st.Board.Tiles(),
		Toast:         toast,
	}
}
