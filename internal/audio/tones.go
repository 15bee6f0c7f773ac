// Package audio plays the short synthesized cues of the game: the launcher thump,
// the hit chime and the end-of-round stings.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is a sine whose frequency glides from `from` to `to` and whose amplitude
// decays exponentially over its length.
type tone struct {
	from, to float64
	decay    float64
	length   int
	pos      int
	phase    float64
	rate     beep.SampleRate
}

func newTone(from, to float64, length time.Duration, decay float64, rate beep.SampleRate) *tone {
	return &tone{from: from, to: to, decay: decay, length: rate.N(length), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		u := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*u
		val := math.Sin(2*math.Pi*t.phase) * math.Exp(-t.decay*u)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Thump is the launcher firing: a quick downward sweep.
func Thump(rate beep.SampleRate) beep.Streamer {
	return withVolume(newTone(180, 55, 120*time.Millisecond, 5, rate), 0.6)
}

// Chime is a hit. Bigger scores ring higher.
func Chime(rate beep.SampleRate, points int) beep.Streamer {
	base := 660.0
	switch {
	case points >= 150:
		base = 1046.5
	case points >= 100:
		base = 880
	}
	fund := newTone(base, base, 300*time.Millisecond, 4, rate)
	over := newTone(2*base, 2*base, 300*time.Millisecond, 7, rate)
	return withVolume(beep.Mix(withVolume(fund, 0.7), withVolume(over, 0.3)), 0.5)
}

// Fanfare plays a rising triad for a won round.
func Fanfare(rate beep.SampleRate) beep.Streamer {
	note := func(f float64) beep.Streamer {
		return newTone(f, f, 180*time.Millisecond, 2, rate)
	}
	return withVolume(beep.Seq(note(523.25), note(659.25), note(783.99), note(1046.5)), 0.5)
}

// Drone plays a falling tone for a lost round.
func Drone(rate beep.SampleRate) beep.Streamer {
	return withVolume(newTone(220, 110, 700*time.Millisecond, 1.5, rate), 0.5)
}
