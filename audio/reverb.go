package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ReverbParams holds the shared reverb send settings. They are fixed
// when the output chain is built; triggers cannot change them.
type ReverbParams struct {
	Duration float64 // Impulse tail length in seconds
	Decay    float64 // Decay exponent; higher dies off faster
	Mix      float64 // Wet/dry mix in [0, 1]
}

// Schroeder comb delays (seconds), detuned against each other so the
// tail stays dense.
var combDelays = [4]float64{0.0297, 0.0371, 0.0411, 0.0437}

var allpassDelays = [2]float64{0.0050, 0.0017}

type combFilter struct {
	buffer   []float64
	pos      int
	feedback float64
}

func (c *combFilter) process(in float64) float64 {
	out := c.buffer[c.pos]
	c.buffer[c.pos] = in + out*c.feedback
	c.pos = (c.pos + 1) % len(c.buffer)
	return out
}

type allpassFilter struct {
	buffer []float64
	pos    int
}

func (a *allpassFilter) process(in float64) float64 {
	delayed := a.buffer[a.pos]
	a.buffer[a.pos] = in + delayed*0.5
	a.pos = (a.pos + 1) % len(a.buffer)
	return delayed - in
}

// Reverb is a comb/allpass network applied to everything the voice
// mixer produces. One instance sits between the mixer and the speaker.
type Reverb struct {
	src beep.Streamer
	mix float64

	combs   [2][4]combFilter
	allpass [2][2]allpassFilter
}

// NewReverb wraps src with the shared reverb. The effective tail time
// is Duration/Decay: longer Duration rings longer, higher Decay kills
// the tail faster.
func NewReverb(src beep.Streamer, rate beep.SampleRate, p ReverbParams) *Reverb {
	r := &Reverb{src: src, mix: p.Mix}

	tail := p.Duration
	if p.Decay > 0 {
		tail = p.Duration / p.Decay
	}
	if tail <= 0 {
		tail = 0.5
	}

	for ch := 0; ch < 2; ch++ {
		for i, d := range combDelays {
			size := int(d * float64(rate))
			if size < 1 {
				size = 1
			}
			// Feedback tuned so the comb decays ~60dB over the tail
			fb := math.Pow(10, -3*d/tail)
			r.combs[ch][i] = combFilter{buffer: make([]float64, size), feedback: fb}
		}
		for i, d := range allpassDelays {
			size := int(d * float64(rate))
			if size < 1 {
				size = 1
			}
			r.allpass[ch][i] = allpassFilter{buffer: make([]float64, size)}
		}
	}
	return r
}

func (r *Reverb) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.src.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			dry := samples[i][ch]
			wet := 0.0
			for k := range r.combs[ch] {
				wet += r.combs[ch][k].process(dry)
			}
			for k := range r.allpass[ch] {
				wet = r.allpass[ch][k].process(wet)
			}
			samples[i][ch] = dry*(1-r.mix) + wet*0.3*r.mix
		}
	}
	return n, ok
}

func (r *Reverb) Err() error { return r.src.Err() }
