// Package sound plays short synthesized cues for game events.
// Audio is optional: every method is safe to call before Init or after
// Close, and a machine without an audio device just stays silent.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/gem-crossing/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue is one of the sounds the game can make.
type Cue int

const (
	CuePickup Cue = iota
	CueDeath
	CueLevelUp
	CueVictory
	CueDefeat
)

func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueDeath:
		return "death"
	case CueLevelUp:
		return "level_up"
	case CueVictory:
		return "victory"
	case CueDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// note is a tone of a given frequency; zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// melodies holds the notes of each cue.
var melodies = map[Cue][]note{
	CuePickup: {
		{880, 60 * time.Millisecond},
		{1320, 90 * time.Millisecond},
	},
	CueDeath: {
		{220, 90 * time.Millisecond},
		{146.8, 160 * time.Millisecond},
	},
	CueLevelUp: {
		{523.3, 80 * time.Millisecond},
		{659.3, 80 * time.Millisecond},
		{784, 80 * time.Millisecond},
		{1046.5, 160 * time.Millisecond},
	},
	CueVictory: {
		{523.3, 120 * time.Millisecond},
		{659.3, 120 * time.Millisecond},
		{784, 120 * time.Millisecond},
		{0, 60 * time.Millisecond},
		{784, 100 * time.Millisecond},
		{1046.5, 400 * time.Millisecond},
	},
	CueDefeat: {
		{392, 180 * time.Millisecond},
		{329.6, 180 * time.Millisecond},
		{261.6, 180 * time.Millisecond},
		{196, 420 * time.Millisecond},
	},
}

// CueFor maps a game event to its cue.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventPickup:
		return CuePickup, true
	case core.EventDeath:
		return CueDeath, true
	case core.EventLevelUp:
		return CueLevelUp, true
	case core.EventVictory:
		return CueVictory, true
	case core.EventDefeat:
		return CueDefeat, true
	}
	return 0, false
}

// Streamer returns a finite streamer that plays the cue once.
func (c Cue) Streamer(sr beep.SampleRate) beep.Streamer {
	notes := melodies[c]
	tones := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tones = append(tones, tone(sr, n))
	}
	return beep.Seq(tones...)
}

// Player plays cues through the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: 0.25,
	}
}

// Init opens the audio device. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences all cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play starts a cue; cues overlap through the mixer.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	// Gain scales by 1+Gain
	s := &effects.Gain{Streamer: c.Streamer(sampleRate), Gain: p.volume - 1}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Handle plays the cue for a game event, if it has one.
func (p *Player) Handle(ev core.Event) {
	if c, ok := CueFor(ev.Kind); ok {
		p.Play(c)
	}
}

// tone renders one note: a sine with a quieter octave on top, shaped so
// it does not click. Zero frequency is silence.
func tone(sr beep.SampleRate, n note) beep.Streamer {
	length := sr.N(n.dur)
	if n.freq <= 0 {
		return beep.Silence(length)
	}

	fund, err := generators.SineTone(sr, n.freq)
	if err != nil {
		return beep.Silence(length)
	}
	over, err := generators.SineTone(sr, 2*n.freq)
	if err != nil {
		return beep.Silence(length)
	}

	// Gain scales by 1+Gain: 0.65 fundamental, 0.3 octave
	mixed := beep.Mix(
		&effects.Gain{Streamer: fund, Gain: -0.35},
		&effects.Gain{Streamer: over, Gain: -0.7},
	)
	return &envelope{
		s:       beep.Take(length, mixed),
		length:  length,
		attack:  sr.N(5 * time.Millisecond),
		release: sr.N(20 * time.Millisecond),
	}
}

// envelope fades a finite streamer in and out linearly.
type envelope struct {
	s       beep.Streamer
	pos     int
	length  int
	attack  int
	release int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := range samples[:n] {
		a := math.Min(float64(e.pos)/float64(e.attack+1), 1)
		r := math.Min(float64(e.length-e.pos)/float64(e.release+1), 1)
		samples[i][0] *= a * r
		samples[i][1] *= a * r
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}
