// Package components defines ECS components for the simulation.
package components

import "github.com/Cookseyyyyyy/musicballs/notes"

// Position represents a ball's world position.
type Position struct {
	X, Y float32
}

// Velocity represents a ball's velocity in world units per tick.
type Velocity struct {
	X, Y float32
}

// Ball holds the ball's body and its note binding.
// Radius only ever decreases; the store removes the ball once it
// drops to or below the configured minimum.
type Ball struct {
	Radius    float32
	Note      notes.Note
	NoteIndex uint8 // Position within the fixed note set, for hue mapping
}
