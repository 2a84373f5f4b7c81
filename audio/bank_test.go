package audio

import (
	"testing"
	"time"

	"github.com/Cookseyyyyyy/musicballs/notes"
)

func TestSynthesizedBankLoadsAllNotes(t *testing.T) {
	b := NewSampleBank("", testRate, 0.05)
	b.EnsureLoaded(notes.Set)

	deadline := time.Now().Add(5 * time.Second)
	for b.Len() < len(notes.Set) {
		if time.Now().After(deadline) {
			t.Fatalf("loaded %d of %d notes before deadline", b.Len(), len(notes.Set))
		}
		time.Sleep(10 * time.Millisecond)
	}

	buf, ok := b.Lookup("A4")
	if !ok {
		t.Fatal("A4 absent after load")
	}
	want := int(float64(testRate) * 0.05)
	if buf.Len() != want {
		t.Errorf("buffer length = %d, want %d", buf.Len(), want)
	}
}

func TestEnsureLoadedIdempotent(t *testing.T) {
	b := NewSampleBank("", testRate, 0.01)
	// Repeated calls must not re-dispatch loads or race the map.
	for i := 0; i < 10; i++ {
		b.EnsureLoaded(notes.Set)
	}

	deadline := time.Now().Add(5 * time.Second)
	for b.Len() < len(notes.Set) {
		if time.Now().After(deadline) {
			t.Fatal("load did not complete")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if b.Len() != len(notes.Set) {
		t.Errorf("Len = %d, want %d", b.Len(), len(notes.Set))
	}
}

func TestMissingFileLeavesEntryAbsent(t *testing.T) {
	b := NewSampleBank(t.TempDir(), testRate, 0.1)
	b.EnsureLoaded([]notes.Note{"C3"})

	// Load failure is logged and the entry stays absent; give the
	// goroutine a moment to run.
	time.Sleep(100 * time.Millisecond)
	if _, ok := b.Lookup("C3"); ok {
		t.Error("C3 present despite missing sample file")
	}
}

func TestSampleFileName(t *testing.T) {
	tests := []struct {
		note notes.Note
		want string
	}{
		{"C3", "C3.wav"},
		{"C#3", "Cs3.wav"},
		{"A#4", "As4.wav"},
	}
	for _, tt := range tests {
		if got := sampleFileName(tt.note); got != tt.want {
			t.Errorf("sampleFileName(%q) = %q, want %q", tt.note, got, tt.want)
		}
	}
}
