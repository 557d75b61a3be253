// Package sound plays short synthesized cues for game events.
// When audio is disabled or the output device cannot be opened the player
// stays silent; the game never depends on it.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	CueStart Cue = iota
	CueEat
	CueCrash
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueEat:
		return "eat"
	case CueCrash:
		return "crash"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// CueForEvent maps an engine event to its cue.
func CueForEvent(kind snake.EventKind) (Cue, bool) {
	switch kind {
	case snake.EventStarted:
		return CueStart, true
	case snake.EventAte:
		return CueEat, true
	case snake.EventCrashed:
		return CueCrash, true
	case snake.EventWon:
		return CueWin, true
	}
	return 0, false
}

// note is one segment of a cue.
type note struct {
	freq     float64
	duration time.Duration
}

var cues = map[Cue][]note{
	CueStart: {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 90 * time.Millisecond}},
	CueEat:   {{880, 50 * time.Millisecond}, {1318.5, 40 * time.Millisecond}},
	CueCrash: {{196, 120 * time.Millisecond}, {98, 220 * time.Millisecond}},
	CueWin:   {{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 90 * time.Millisecond}, {1046.5, 200 * time.Millisecond}},
}

// Stream builds the finite streamer for a cue at the given sample rate.
func Stream(c Cue, sr beep.SampleRate) beep.Streamer {
	notes := cues[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, beep.Take(sr.N(n.duration), newTone(n.freq, sr.N(n.duration), sr)))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}
}

// tone is a sine wave with a linear fade-out over length samples.
type tone struct {
	step   float64
	phase  float64
	pos    int
	length int
}

func newTone(freq float64, length int, sr beep.SampleRate) *tone {
	return &tone{step: freq / float64(sr), length: max(length, 1)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		fade := 1 - float64(t.pos)/float64(t.length)
		v := math.Sin(2*math.Pi*t.phase) * fade
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Player plays cues on the default output device.
type Player struct {
	mu      sync.Mutex
	enabled bool
	logger  *log.Logger
}

var speakerInit = sync.OnceValue(func() error {
	return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
})

// NewPlayer returns a player. With enabled false, or when the speaker cannot
// be initialized, the player is silent.
func NewPlayer(enabled bool, logger *log.Logger) *Player {
	p := &Player{logger: logger}
	if !enabled {
		return p
	}
	if err := speakerInit(); err != nil {
		if logger != nil {
			logger.Warn("sound disabled", "error", err)
		}
		return p
	}
	p.enabled = true
	return p
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	enabled := p.enabled
	p.mu.Unlock()
	if !enabled {
		return
	}
	speaker.Play(Stream(c, sampleRate))
}

// HandleEvent plays the cue for an engine event. It can be passed to
// snake.WithEventHandler directly.
func (p *Player) HandleEvent(ev snake.Event) {
	if c, ok := CueForEvent(ev.Kind); ok {
		p.Play(c)
	}
}

// Close stops every playing cue and silences the player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled {
		speaker.Clear()
		p.enabled = false
	}
}
