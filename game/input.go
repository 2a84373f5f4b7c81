package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Cookseyyyyyy/musicballs/notes"
	"github.com/Cookseyyyyyy/musicballs/systems"
)

// keyNoteIndex maps the classic two-row musical keyboard layout onto
// the note set: Z-row plays the lower octave, Q-row the upper, with
// the number row as the upper octave's black keys.
var keyNoteIndex = map[int32]int{
	rl.KeyZ: 0, rl.KeyS: 1, rl.KeyX: 2, rl.KeyD: 3, rl.KeyC: 4, rl.KeyV: 5,
	rl.KeyG: 6, rl.KeyB: 7, rl.KeyH: 8, rl.KeyN: 9, rl.KeyJ: 10, rl.KeyM: 11,
	rl.KeyQ: 12, rl.KeyTwo: 13, rl.KeyW: 14, rl.KeyThree: 15, rl.KeyE: 16,
	rl.KeyR: 17, rl.KeyFive: 18, rl.KeyT: 19, rl.KeySix: 20, rl.KeyY: 21,
	rl.KeySeven: 22, rl.KeyU: 23,
}

// handleInput processes keyboard input and window resizes.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Musical keys spawn a ball for their note.
	for key, idx := range keyNoteIndex {
		if rl.IsKeyPressed(key) {
			g.selected = idx
			g.Spawn(notes.Set[idx])
		}
	}

	// Arrow keys move the armed note; Enter spawns it.
	if rl.IsKeyPressed(rl.KeyRight) {
		g.selected = (g.selected + 1) % len(notes.Set)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		g.selected = (g.selected + len(notes.Set) - 1) % len(notes.Set)
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		g.Spawn(notes.Set[g.selected])
	}
}

// handleResize re-derives the arena bounds from the window. Runs
// before the tick so bounds never change mid-step.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.bounds = systems.Bounds{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}
}
