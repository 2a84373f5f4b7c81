package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/Cookseyyyyyy/musicballs/config"
	"github.com/Cookseyyyyyy/musicballs/systems"
)

// simulationStep runs a single tick, synchronously: removal of
// shrunk-out balls, then the ordered collision pass, then stats.
func (g *Game) simulationStep() {
	g.removeExhausted()
	g.resolveCollisions()
	g.flushStats()
	g.tick++
}

// removeExhausted drops balls whose radius fell to or below the
// minimum. Runs at the top of the tick, so a ball's final collision
// still sounded on the tick that shrank it out.
func (g *Game) removeExhausted() {
	minRadius := config.Cfg().Derived.MinRadius32

	// Collect first; structural changes invalidate the query.
	var toRemove []ecs.Entity
	query := g.ballFilter.Query()
	for query.Next() {
		_, _, ball := query.Get()
		if ball.Radius <= minRadius {
			toRemove = append(toRemove, query.Entity())
		}
	}

	for _, e := range toRemove {
		g.ballMapper.Remove(e)
		g.collector.RecordRemoval()
	}
}

// resolveCollisions runs the ordered per-ball pass. Balls are resolved
// in sequence against the live view, so a ball later in the pass sees
// the already-updated state of earlier ones.
func (g *Game) resolveCollisions() {
	cfg := config.Cfg()
	params := systems.CollisionParams{
		RadiusDecrease:   float32(cfg.Balls.RadiusDecreaseFactor),
		VelocityIncrease: float32(cfg.Balls.VelocityIncreaseFactor),
	}

	g.entities = g.entities[:0]
	g.posPtrs = g.posPtrs[:0]
	g.velPtrs = g.velPtrs[:0]
	g.ballPtrs = g.ballPtrs[:0]

	query := g.ballFilter.Query()
	for query.Next() {
		pos, vel, ball := query.Get()
		g.entities = append(g.entities, query.Entity())
		g.posPtrs = append(g.posPtrs, pos)
		g.velPtrs = append(g.velPtrs, vel)
		g.ballPtrs = append(g.ballPtrs, ball)
	}

	for i := range g.entities {
		pos, vel := g.posPtrs[i], g.velPtrs[i]
		g.turbulence.Perturb(&vel.X, &vel.Y, pos.X, pos.Y, g.tick)

		contact, hit := systems.ResolveBall(i, g.posPtrs, g.velPtrs, g.ballPtrs, g.bounds, params)
		if !hit {
			continue
		}

		if contact.Wall {
			g.collector.RecordWallHit()
		} else {
			g.collector.RecordBallHit()
		}

		g.voices.Trigger(g.ballPtrs[i].Note, contact.ImpactX, contact.Radius, g.bounds.Width)
	}
}

// flushStats emits window stats when the current window closes.
func (g *Game) flushStats() {
	if !g.collector.WindowComplete(g.tick) {
		return
	}

	g.radii = g.radii[:0]
	balls := 0
	query := g.ballFilter.Query()
	for query.Next() {
		_, _, ball := query.Get()
		g.radii = append(g.radii, float64(ball.Radius))
		balls++
	}

	stats := g.collector.Flush(g.tick, balls, g.voices.ActiveCount(), g.radii)

	if g.logStats {
		stats.Log()
	}
	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("telemetry write failed", "error", err)
		}
	}
}
