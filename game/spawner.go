package game

import (
	"github.com/Cookseyyyyyy/musicballs/components"
	"github.com/Cookseyyyyyy/musicballs/config"
	"github.com/Cookseyyyyyy/musicballs/notes"
	"github.com/Cookseyyyyyy/musicballs/systems"
)

// Spawn creates a new ball for the given note. Notes outside the fixed
// set are rejected. A sample-bank load is kicked off on first use;
// spawning never waits for it, so early collisions may be silent until
// the bank catches up.
func (g *Game) Spawn(note notes.Note) bool {
	idx, ok := notes.Index(note)
	if !ok {
		return false
	}

	g.bank.EnsureLoaded(notes.Set)

	cfg := config.Cfg()
	initial := cfg.Derived.InitialRadius32

	// Current ball centers for the placement check.
	xs := make([]float32, 0, len(g.entities))
	ys := make([]float32, 0, len(g.entities))
	query := g.ballFilter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		xs = append(xs, pos.X)
		ys = append(ys, pos.Y)
	}

	x, y := systems.PickSpawnPoint(g.rng, g.bounds, xs, ys, systems.SpawnParams{
		Attempts:      cfg.Balls.SpawnAttempts,
		Margin:        float32(cfg.Balls.SpawnMargin),
		MinSeparation: 2 * initial,
	})
	vx, vy := systems.SpawnVelocity(g.rng, float32(cfg.Balls.InitialVelocity))

	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{X: vx, Y: vy}
	ball := components.Ball{
		Radius:    systems.SpawnRadius(g.rng, initial),
		Note:      note,
		NoteIndex: uint8(idx),
	}
	g.ballMapper.NewEntity(&pos, &vel, &ball)
	g.collector.RecordSpawn()

	return true
}
