// Package notes defines the fixed note set the simulation plays from.
package notes

import "math"

// Note identifies one pitched sample, e.g. "C3" or "F#4".
type Note string

// Set is the fixed ordered note set: two octaves, C3 through B4.
// The position of a note in this sequence is its stable index, used
// for hue mapping by the renderer.
var Set = []Note{
	"C3", "C#3", "D3", "D#3", "E3", "F3", "F#3", "G3", "G#3", "A3", "A#3", "B3",
	"C4", "C#4", "D4", "D#4", "E4", "F4", "F#4", "G4", "G#4", "A4", "A#4", "B4",
}

var indexByNote = func() map[Note]int {
	m := make(map[Note]int, len(Set))
	for i, n := range Set {
		m[n] = i
	}
	return m
}()

// MIDI numbers for the note names, anchored at C3 = 48.
var midiBySemitone = map[string]int{
	"C": 0, "C#": 1, "D": 2, "D#": 3, "E": 4, "F": 5,
	"F#": 6, "G": 7, "G#": 8, "A": 9, "A#": 10, "B": 11,
}

// Index returns the note's position within Set, or false if the note
// is not part of the fixed set.
func Index(n Note) (int, bool) {
	i, ok := indexByNote[n]
	return i, ok
}

// Valid reports whether n belongs to the fixed note set.
func Valid(n Note) bool {
	_, ok := indexByNote[n]
	return ok
}

// Frequency returns the equal-temperament frequency in Hz (A4 = 440).
// Returns 0 for notes outside the fixed set.
func (n Note) Frequency() float64 {
	if !Valid(n) {
		return 0
	}
	name := string(n[:len(n)-1])
	octave := int(n[len(n)-1] - '0')
	midi := 12*(octave+1) + midiBySemitone[name]
	return 440 * math.Pow(2, float64(midi-69)/12)
}
