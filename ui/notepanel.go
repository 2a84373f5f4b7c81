// Package ui holds the note selection panel.
package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Cookseyyyyyy/musicballs/notes"
)

const (
	buttonWidth  = 42
	buttonHeight = 26
	buttonGap    = 3
)

// NotePanel renders one button per note, upper octave on top, and
// reports clicks so the caller can spawn a ball.
type NotePanel struct {
	x, y float32
}

// NewNotePanel creates a panel anchored at the given screen position.
func NewNotePanel(x, y float32) *NotePanel {
	return &NotePanel{x: x, y: y}
}

// Draw renders the panel and returns the clicked note, if any. The
// armed note gets a highlight outline.
func (p *NotePanel) Draw(selected int) (notes.Note, bool) {
	var clicked notes.Note
	hit := false

	for i, n := range notes.Set {
		col := i % 12
		row := 1 - i/12 // upper octave drawn on the top row

		bounds := rl.Rectangle{
			X:      p.x + float32(col)*(buttonWidth+buttonGap),
			Y:      p.y + float32(row)*(buttonHeight+buttonGap),
			Width:  buttonWidth,
			Height: buttonHeight,
		}

		if gui.Button(bounds, string(n)) {
			clicked = n
			hit = true
		}

		if i == selected {
			rl.DrawRectangleLinesEx(bounds, 2, rl.Gold)
		}
	}

	return clicked, hit
}
