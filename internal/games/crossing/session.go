package crossing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/gem-crossing/internal/config"
	"github.com/vovakirdan/gem-crossing/internal/core"
)

// Session owns everything one player's run needs. Nothing in the package
// is global; frontends hold a Session through the Game that drives it.
type Session struct {
	cfg    config.CrossingConfig
	rng    *rand.Rand
	speeds SpeedTable

	State   GameState
	Player  Player
	Enemies []*Enemy
	Gem     Collectible
	Key     Collectible
	Heart   Collectible
}

// NewSession creates a fully reset session.
func NewSession(cfg config.CrossingConfig, seed int64, skin Sprite) *Session {
	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		speeds: NewSpeedTable(cfg.Enemies),
		State:  NewGameState(cfg.Gameplay),
		Player: NewPlayer(skin),
	}
	s.Gem = NewCollectible(KindGem, cfg.Scoring, s.rng, &s.State.Board)
	s.Key = NewCollectible(KindKey, cfg.Scoring, s.rng, &s.State.Board)
	s.Heart = NewCollectible(KindHeart, cfg.Scoring, s.rng, &s.State.Board)
	s.FullReset()
	return s
}

// SpawnLane implements Spawner: a random lane and a speed for the current level.
func (s *Session) SpawnLane() (int, float64) {
	row := RandInt(s.rng, laneTop, laneBottom)
	return row, s.speeds.Sample(s.rng, s.State.Level)
}

// FullReset returns to level 1 with a fresh enemy roster. The skin is kept.
func (s *Session) FullReset() {
	s.State.FullReset()
	s.Player.ResetToStart()
	s.Enemies = s.Enemies[:0]
	for i, n := 0, s.cfg.Gameplay.InitialEnemies; i < n; i++ {
		s.Enemies = append(s.Enemies, NewEnemy(s))
	}
}

// StartLevel runs once the loading wait is over: new terrain, fresh
// collectible spots, the player on spawn and one more enemy.
func (s *Session) StartLevel() {
	s.State.InitializeLevel(s.rng)
	s.Heart.Reset(s.rng, &s.State.Board)
	s.Gem.Reset(s.rng, &s.State.Board)
	s.Key.Reset(s.rng, &s.State.Board)
	s.Player.ResetToStart()
	s.Enemies = append(s.Enemies, NewEnemy(s))
}

// Active returns the gem or the key, whichever the player is hunting.
func (s *Session) Active() *Collectible {
	if s.State.ActiveCollectible() == KindGem {
		return &s.Gem
	}
	return &s.Key
}

// Update advances one playing tick of dt seconds and reports what happened.
func (s *Session) Update(dt float64, now time.Time) []core.Event {
	var events []core.Event

	for _, e := range s.Enemies {
		e.Update(dt, s)
	}

	if s.checkCollisions(now) {
		events = append(events, core.Event{Kind: core.EventDeath, Value: -s.cfg.Gameplay.DeathPenalty})
	}

	st := &s.State
	switch st.ActiveCollectible() {
	case KindGem:
		if s.Gem.CheckPickup(st, &s.Player, s.rng) {
			st.GemsCollected++
			s.toast(fmt.Sprintf("+%d", s.Gem.Value), now)
			events = append(events, core.Event{Kind: core.EventPickup, Value: s.Gem.Value})
		}
	case KindKey:
		if s.Key.CheckPickup(st, &s.Player, s.rng) {
			s.toast(fmt.Sprintf("+%d", s.Key.Value), now)
			st.Loading = true
			st.Level++
			events = append(events,
				core.Event{Kind: core.EventPickup, Value: s.Key.Value},
				core.Event{Kind: core.EventLevelUp, Value: st.Level})
		}
	}

	if s.Heart.Present {
		if s.Heart.CheckPickup(st, &s.Player, s.rng) {
			s.toast(fmt.Sprintf("+%d", s.Heart.Value), now)
			st.Lives++
			s.Heart.Present = false
			events = append(events, core.Event{Kind: core.EventPickup, Value: s.Heart.Value})
		}
	} else {
		s.Heart.MaybeAppear(s.rng, st.Level, st.Lives, s.cfg.Heart)
	}

	return events
}

// checkCollisions kills the player on water or on contact with an enemy.
func (s *Session) checkCollisions(now time.Time) bool {
	p := &s.Player
	if !s.State.Board.IsWater(p.Row, p.Col) && !s.enemyHit() {
		return false
	}
	s.toast(fmt.Sprintf("Ouch -%d", s.cfg.Gameplay.DeathPenalty), now)
	s.State.OnPlayerDeath()
	p.ResetToStart()
	return true
}

func (s *Session) enemyHit() bool {
	for _, e := range s.Enemies {
		if e.Hits(s.Player.Row, s.Player.Col, s.cfg.Enemies.CollisionTolerance) {
			return true
		}
	}
	return false
}

func (s *Session) toast(msg string, now time.Time) {
	s.State.SetToast(msg, s.Player.Row, s.Player.Col, now)
}

// Entities returns what stands on the board in draw order: the active
// collectible, the heart when shown, the enemies, then the player.
func (s *Session) Entities() []Entity {
	out := make([]Entity, 0, len(s.Enemies)+3)
	out = append(out, s.Active())
	if s.Heart.Present {
		out = append(out, &s.Heart)
	}
	for _, e := range s.Enemies {
		out = append(out, e)
	}
	return append(out, &s.Player)
}
