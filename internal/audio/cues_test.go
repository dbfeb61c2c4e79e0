package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCueStreamersAreFinite(t *testing.T) {
	for _, c := range []Cue{CueEat, CueLevelUp, CueGameOver} {
		t.Run(c.String(), func(t *testing.T) {
			s := c.Streamer(sampleRate, 0)
			if s == nil {
				t.Fatal("expected streamer")
			}

			total, peak := drain(s)

			want := sampleRate.N(c.Duration())
			// Per-note rounding may differ by a sample per note.
			if diff := total - want; diff < -8 || diff > 8 {
				t.Errorf("streamed %d samples, want about %d", total, want)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak amplitude %f out of range", peak)
			}
		})
	}
}

func TestCueNoneHasNoStreamer(t *testing.T) {
	if s := CueNone.Streamer(sampleRate, 0); s != nil {
		t.Error("expected nil streamer for CueNone")
	}
}

func TestCueVolume(t *testing.T) {
	_, loud := drain(CueEat.Streamer(sampleRate, 0))
	_, quiet := drain(CueEat.Streamer(sampleRate, -2))

	if quiet >= loud {
		t.Errorf("volume -2 peak %f should be below volume 0 peak %f", quiet, loud)
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind snake.EventKind
		want Cue
		ok   bool
	}{
		{snake.EventEat, CueEat, true},
		{snake.EventLevelUp, CueLevelUp, true},
		{snake.EventGameOver, CueGameOver, true},
		{snake.EventUpdated, CueNone, false},
		{snake.EventPhase, CueNone, false},
	}

	for _, tc := range tests {
		got, ok := CueFor(snake.Event{Kind: tc.kind})
		if got != tc.want || ok != tc.ok {
			t.Errorf("CueFor(%v) = %v, %v; want %v, %v", tc.kind, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPlayerWithoutSpeakerIsSilent(t *testing.T) {
	p := NewPlayer(0)
	// Not initialized: must not touch the speaker.
	p.Listen(snake.Event{Kind: snake.EventEat})
	p.Play(CueGameOver)
	p.Close()
}

func TestPlayerCloseIsRepeatable(t *testing.T) {
	p := NewPlayer(0)
	p.Close()
	p.Close()
	if p.initialized {
		t.Error("player reports initialized after Close")
	}
	// Cues after Close are dropped instead of reaching a released device.
	p.Play(CueEat)
}
