package notes

import (
	"math"
	"testing"
)

func TestSetIsTwoOctaves(t *testing.T) {
	if len(Set) != 24 {
		t.Fatalf("len(Set) = %d, want 24", len(Set))
	}

	seen := make(map[Note]bool)
	for _, n := range Set {
		if seen[n] {
			t.Errorf("duplicate note %q in set", n)
		}
		seen[n] = true
	}
}

func TestIndexStable(t *testing.T) {
	for i, n := range Set {
		got, ok := Index(n)
		if !ok {
			t.Fatalf("Index(%q) not found", n)
		}
		if got != i {
			t.Errorf("Index(%q) = %d, want %d", n, got, i)
		}
	}

	if _, ok := Index("C7"); ok {
		t.Error("Index(C7) = ok, want not found")
	}
}

func TestValid(t *testing.T) {
	if !Valid("A4") {
		t.Error("Valid(A4) = false")
	}
	if Valid("H3") {
		t.Error("Valid(H3) = true")
	}
	if Valid("") {
		t.Error("Valid(\"\") = true")
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		note Note
		want float64
	}{
		{"A4", 440.0},
		{"A3", 220.0},
		{"C4", 261.626},
		{"B4", 493.883},
	}

	for _, tt := range tests {
		got := tt.note.Frequency()
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("Frequency(%q) = %f, want %f", tt.note, got, tt.want)
		}
	}

	if f := Note("Z9").Frequency(); f != 0 {
		t.Errorf("Frequency(Z9) = %f, want 0", f)
	}
}
