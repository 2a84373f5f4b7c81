package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/Cookseyyyyyy/musicballs/notes"
)

// Params fixes the allocator's policy at construction time.
type Params struct {
	MaxPolyphony  int
	MaxVolume     float64
	MinGain       float64 // Gain floor for the smallest balls
	InitialRadius float64 // Reference radius for full gain
}

// Stats receives voice lifecycle events. All methods may be called
// with the allocator's lock held and must not call back in.
type Stats interface {
	RecordTrigger()
	RecordTriggerSkipped()
	RecordVoiceStolen()
	RecordVoiceEvicted()
}

// Voice is one sounding instance of a note's sample.
type Voice struct {
	Note notes.Note
	Pan  float64
	Gain float64

	created time.Time
	ctrl    *beep.Ctrl
}

// VoiceAllocator maps collision triggers onto a bounded set of
// playing voices. At most one voice per note is ever active, and the
// total never exceeds MaxPolyphony; beyond that the earliest-created
// voice is cut regardless of its note.
type VoiceAllocator struct {
	bank   *SampleBank
	params Params
	stats  Stats

	mu     sync.Mutex
	mixer  *beep.Mixer
	active []*Voice // insertion order; index 0 is the eviction candidate
	byNote map[notes.Note]*Voice

	// deviceLock serializes mixer and ctrl edits against the streaming
	// goroutine. No-ops until StartSpeaker installs the speaker lock.
	// Lock order is device lock first, then mu: completion callbacks
	// run on the streaming goroutine and take mu with the device lock
	// already held.
	deviceLock   func()
	deviceUnlock func()
}

// NewVoiceAllocator creates an allocator over the given bank. It is
// usable immediately; without StartSpeaker it tracks voices silently,
// which is what headless and muted runs do.
func NewVoiceAllocator(bank *SampleBank, p Params, stats Stats) *VoiceAllocator {
	return &VoiceAllocator{
		bank:         bank,
		params:       p,
		stats:        stats,
		mixer:        &beep.Mixer{},
		byNote:       make(map[notes.Note]*Voice),
		deviceLock:   func() {},
		deviceUnlock: func() {},
	}
}

// StartSpeaker opens the audio device and routes the voice mixer
// through the shared reverb. Reverb parameters are fixed here.
func (va *VoiceAllocator) StartSpeaker(rate beep.SampleRate, bufferMs int, rev ReverbParams) error {
	if err := speaker.Init(rate, rate.N(time.Duration(bufferMs)*time.Millisecond)); err != nil {
		return err
	}
	va.deviceLock = speaker.Lock
	va.deviceUnlock = speaker.Unlock
	speaker.Play(NewReverb(va.mixer, rate, rev))
	return nil
}

// Trigger starts playback for a collision. It never blocks and never
// fails: a note outside the bank (still loading, or its decode failed)
// is silently skipped.
func (va *VoiceAllocator) Trigger(note notes.Note, impactX, radius, arenaWidth float32) {
	buf, ok := va.bank.Lookup(note)
	if !ok {
		if va.stats != nil {
			va.stats.RecordTriggerSkipped()
		}
		return
	}

	pan := PanForImpact(impactX, arenaWidth)
	gain := va.gainFor(radius)

	va.deviceLock()
	defer va.deviceUnlock()
	va.mu.Lock()
	defer va.mu.Unlock()

	// Hard-cut any voice already sounding this note.
	if prev := va.byNote[note]; prev != nil {
		va.cutLocked(prev)
		if va.stats != nil {
			va.stats.RecordVoiceStolen()
		}
	}

	// Insertion-order eviction keeps the bank bounded.
	for len(va.active) >= va.params.MaxPolyphony {
		va.cutLocked(va.active[0])
		if va.stats != nil {
			va.stats.RecordVoiceEvicted()
		}
	}

	v := &Voice{Note: note, Pan: pan, Gain: gain, created: time.Now()}

	sample := buf.Streamer(0, buf.Len())
	panned := &effects.Pan{Streamer: sample, Pan: pan}
	leveled := newVolume(panned, gain)
	v.ctrl = &beep.Ctrl{Streamer: beep.Seq(leveled, beep.Callback(func() {
		va.release(v)
	}))}

	va.active = append(va.active, v)
	va.byNote[note] = v
	va.mixer.Add(v.ctrl)

	if va.stats != nil {
		va.stats.RecordTrigger()
	}
}

// ActiveCount returns the number of currently sounding voices.
func (va *VoiceAllocator) ActiveCount() int {
	va.mu.Lock()
	defer va.mu.Unlock()
	return len(va.active)
}

// ActiveNotes returns the sounding notes in creation order.
func (va *VoiceAllocator) ActiveNotes() []notes.Note {
	va.mu.Lock()
	defer va.mu.Unlock()
	out := make([]notes.Note, len(va.active))
	for i, v := range va.active {
		out[i] = v.Note
	}
	return out
}

// VoiceFor returns the active voice for a note, if any.
func (va *VoiceAllocator) VoiceFor(note notes.Note) (*Voice, bool) {
	va.mu.Lock()
	defer va.mu.Unlock()
	v, ok := va.byNote[note]
	return v, ok
}

// release drops a voice whose playback completed naturally. Runs on
// the speaker goroutine; a voice already cut by eviction or retrigger
// is a no-op.
func (va *VoiceAllocator) release(v *Voice) {
	va.mu.Lock()
	defer va.mu.Unlock()
	va.removeLocked(v)
}

// cutLocked hard-stops a voice, no fade. The nil streamer drains the
// ctrl from the mixer on its next read. Caller holds mu and the
// device lock.
func (va *VoiceAllocator) cutLocked(v *Voice) {
	v.ctrl.Streamer = nil
	va.removeLocked(v)
}

func (va *VoiceAllocator) removeLocked(v *Voice) {
	for i, cur := range va.active {
		if cur == v {
			va.active = append(va.active[:i], va.active[i+1:]...)
			break
		}
	}
	if va.byNote[v.Note] == v {
		delete(va.byNote, v.Note)
	}
}

func (va *VoiceAllocator) gainFor(radius float32) float64 {
	g := float64(radius) / va.params.InitialRadius
	if g < va.params.MinGain {
		g = va.params.MinGain
	}
	if g > 1 {
		g = 1
	}
	return g * va.params.MaxVolume
}

// PanForImpact maps an impact x in [0, arenaWidth] linearly onto
// [-1, 1].
func PanForImpact(impactX, arenaWidth float32) float64 {
	return float64(impactX)/float64(arenaWidth)*2 - 1
}

// newVolume wraps a streamer with a perceptual volume control.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
