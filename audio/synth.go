package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/Cookseyyyyyy/musicballs/notes"
)

// toneStreamer generates a plucked tone: a sine fundamental plus a
// faster-decaying second harmonic under an exponential envelope.
type toneStreamer struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

func (g *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-4 * t)

		v := 0.7 * math.Sin(2*math.Pi*g.freq*t) * env
		v += 0.3 * math.Sin(4*math.Pi*g.freq*t) * env * env

		// Short attack ramp to avoid a click at onset
		if g.pos < 64 {
			v *= float64(g.pos) / 64
		}

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneStreamer) Err() error { return nil }

// renderTone pre-renders a note's fallback tone into a buffer so
// triggering stays allocation-light.
func renderTone(n notes.Note, rate beep.SampleRate, durationSec float64) *beep.Buffer {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)
	buf.Append(&toneStreamer{
		sr:      rate,
		freq:    n.Frequency(),
		samples: int(float64(rate) * durationSec),
	})
	return buf
}
