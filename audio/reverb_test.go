package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

// impulse streams a single full-scale sample followed by silence.
type impulse struct{ pos int }

func (s *impulse) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := 0.0
		if s.pos == 0 {
			v = 1.0
		}
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *impulse) Err() error { return nil }

func TestReverbProducesTail(t *testing.T) {
	p := ReverbParams{Duration: 2.0, Decay: 2.0, Mix: 0.5}
	r := NewReverb(&impulse{}, beep.SampleRate(44100), p)

	buf := make([][2]float64, 4096)
	n, ok := r.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(buf))
	}

	// Well after the impulse the wet signal should still ring.
	tail := 0.0
	for i := 2048; i < 4096; i++ {
		tail += math.Abs(buf[i][0])
	}
	if tail == 0 {
		t.Error("no reverb tail after impulse")
	}

	for i := range buf {
		if math.IsNaN(buf[i][0]) || math.IsInf(buf[i][0], 0) {
			t.Fatalf("unstable output at sample %d", i)
		}
	}
}

func TestReverbDryWhenMixZero(t *testing.T) {
	p := ReverbParams{Duration: 2.0, Decay: 2.0, Mix: 0}
	r := NewReverb(&impulse{}, beep.SampleRate(44100), p)

	buf := make([][2]float64, 256)
	r.Stream(buf)

	if buf[0][0] != 1.0 {
		t.Errorf("impulse sample = %f, want untouched 1.0", buf[0][0])
	}
	for i := 1; i < 256; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("wet bleed at sample %d with zero mix", i)
		}
	}
}

func TestReverbDecays(t *testing.T) {
	p := ReverbParams{Duration: 1.0, Decay: 4.0, Mix: 1.0}
	r := NewReverb(&impulse{}, beep.SampleRate(44100), p)

	early := make([][2]float64, 8192)
	r.Stream(early)
	late := make([][2]float64, 8192)
	for i := 0; i < 40; i++ {
		r.Stream(late)
	}

	sum := func(b [][2]float64) float64 {
		total := 0.0
		for i := range b {
			total += math.Abs(b[i][0])
		}
		return total
	}

	if sum(late) >= sum(early) {
		t.Errorf("tail energy %f not below early energy %f", sum(late), sum(early))
	}
}
