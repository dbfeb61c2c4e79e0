// Package audio plays short synthesized sound cues for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a named sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueEat
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueLevelUp:
		return "level_up"
	case CueGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// CueFor maps a session event to its sound cue.
func CueFor(e snake.Event) (Cue, bool) {
	switch e.Kind {
	case snake.EventEat:
		return CueEat, true
	case snake.EventLevelUp:
		return CueLevelUp, true
	case snake.EventGameOver:
		return CueGameOver, true
	default:
		return CueNone, false
	}
}

// note is one tone of a cue; freq 0 is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueEat: {
		{880, 40 * time.Millisecond},
		{1320, 50 * time.Millisecond},
	},
	CueLevelUp: {
		{523, 80 * time.Millisecond},
		{659, 80 * time.Millisecond},
		{784, 80 * time.Millisecond},
		{1047, 160 * time.Millisecond},
	},
	CueGameOver: {
		{392, 150 * time.Millisecond},
		{0, 30 * time.Millisecond},
		{330, 150 * time.Millisecond},
		{0, 30 * time.Millisecond},
		{220, 350 * time.Millisecond},
	},
}

// Duration returns how long a cue plays.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

// Streamer builds a finite streamer for the cue at the given volume
// (base-2 exponent, 0 = unchanged). It returns nil for CueNone.
func (c Cue) Streamer(sr beep.SampleRate, volume float64) beep.Streamer {
	notes := cueNotes[c]
	if len(notes) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		parts = append(parts, beep.Take(samples, newTone(sr, n.freq, samples)))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}
}

// tone is a sine with a third harmonic, a short attack and a linear release.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

func newTone(sr beep.SampleRate, freq float64, total int) *tone {
	return &tone{sr: sr, freq: freq, total: total}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(5 * time.Millisecond))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.1*math.Sin(2*math.Pi*g.freq*3*t)

		env := 1.0
		if p := float64(g.pos); p < attack {
			env = p / attack
		}
		if g.total > 0 {
			env *= 1 - float64(g.pos)/float64(g.total)
		}
		sample *= math.Max(env, 0)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}
