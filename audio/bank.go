// Package audio owns sample loading and polyphonic voice playback.
package audio

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/Cookseyyyyyy/musicballs/notes"
)

// SampleBank maps notes to decoded, play-ready sample buffers.
// Loading runs asynchronously per note; a note whose sample failed to
// load simply stays absent, and triggers for it are skipped.
type SampleBank struct {
	dir        string
	sampleRate beep.SampleRate
	synthDur   float64

	loadOnce sync.Once

	mu      sync.RWMutex
	samples map[notes.Note]*beep.Buffer
}

// NewSampleBank creates a bank that decodes WAV files from dir, one per
// note (e.g. "Cs3.wav" for C#3). With an empty dir the bank synthesizes
// a decaying tone per note instead, so the simulation is playable
// without any assets on disk.
func NewSampleBank(dir string, rate beep.SampleRate, synthDur float64) *SampleBank {
	return &SampleBank{
		dir:        dir,
		sampleRate: rate,
		synthDur:   synthDur,
		samples:    make(map[notes.Note]*beep.Buffer),
	}
}

// EnsureLoaded kicks off loading of every note in the set, once. Each
// note loads in its own goroutine; callers never wait on completion.
func (b *SampleBank) EnsureLoaded(set []notes.Note) {
	b.loadOnce.Do(func() {
		for _, n := range set {
			go b.loadNote(n)
		}
	})
}

// Lookup returns the decoded sample for a note. A false result is a
// normal transient state while loading is in flight (or permanent if
// that note's decode failed).
func (b *SampleBank) Lookup(n notes.Note) (*beep.Buffer, bool) {
	b.mu.RLock()
	buf, ok := b.samples[n]
	b.mu.RUnlock()
	return buf, ok
}

// Len returns the number of loaded entries.
func (b *SampleBank) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.samples)
}

func (b *SampleBank) loadNote(n notes.Note) {
	var buf *beep.Buffer
	var err error

	if b.dir == "" {
		buf = renderTone(n, b.sampleRate, b.synthDur)
	} else {
		buf, err = b.decodeFile(n)
		if err != nil {
			slog.Error("sample load failed", "note", string(n), "error", err)
			return
		}
	}

	b.mu.Lock()
	b.samples[n] = buf
	b.mu.Unlock()
}

func (b *SampleBank) decodeFile(n notes.Note) (*beep.Buffer, error) {
	path := filepath.Join(b.dir, sampleFileName(n))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sample: %w", err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer streamer.Close()

	bankFormat := beep.Format{SampleRate: b.sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(bankFormat)
	if format.SampleRate != b.sampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, b.sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	return buf, nil
}

// sampleFileName maps a note to its file name, with '#' spelled "s"
// to stay filesystem-friendly: C#3 -> Cs3.wav.
func sampleFileName(n notes.Note) string {
	return strings.ReplaceAll(string(n), "#", "s") + ".wav"
}
