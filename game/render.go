package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Cookseyyyyyy/musicballs/notes"
)

// noteHue maps a note index onto the color wheel.
func noteHue(index uint8) float32 {
	return float32(index) / float32(len(notes.Set)) * 360
}

// Draw renders the arena, balls, and the note panel.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 16, G: 18, B: 24, A: 255})

	balls := 0
	query := g.ballFilter.Query()
	for query.Next() {
		pos, _, ball := query.Get()

		color := rl.ColorFromHSV(noteHue(ball.NoteIndex), 0.65, 0.95)
		rl.DrawCircle(int32(pos.X), int32(pos.Y), ball.Radius, color)

		// Faint rim so overlapping same-hue balls stay readable
		rim := rl.ColorFromHSV(noteHue(ball.NoteIndex), 0.4, 1.0)
		rim.A = 160
		rl.DrawCircleLines(int32(pos.X), int32(pos.Y), ball.Radius, rim)
		balls++
	}

	if note, clicked := g.panel.Draw(g.selected); clicked {
		if idx, ok := notes.Index(note); ok {
			g.selected = idx
		}
		g.Spawn(note)
	}

	hud := fmt.Sprintf("balls %d | voices %d | loaded %d/%d | fps %d",
		balls, g.voices.ActiveCount(), g.bank.Len(), len(notes.Set), rl.GetFPS())
	rl.DrawText(hud, 10, int32(g.bounds.Height)-24, 18, rl.LightGray)

	if g.paused {
		rl.DrawText("paused", int32(g.bounds.Width)/2-34, 10, 20, rl.RayWhite)
	}

	rl.EndDrawing()
}
