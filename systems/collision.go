// Package systems contains the physics systems for the simulation.
package systems

import (
	"math"

	"github.com/Cookseyyyyyy/musicballs/components"
)

// Bounds represents the arena bounds.
type Bounds struct {
	Width, Height float32
}

// CollisionParams holds the per-collision lifecycle adjustments.
type CollisionParams struct {
	RadiusDecrease   float32 // Radius multiplier per colliding tick (<1)
	VelocityIncrease float32 // Speed multiplier per colliding tick (>1)
}

// Contact describes where a collision happened, for spatialization.
type Contact struct {
	ImpactX float32
	Radius  float32 // Radius before the post-collision shrink
	Wall    bool    // True if any wall was struck this tick
}

// ResolveBall advances ball i by one tick against the current view of
// all balls. Balls earlier in this tick's pass have already been
// updated; later balls see those updates. That ordering is part of the
// simulation's observable behavior, so callers must resolve balls in a
// fixed sequence rather than batching.
//
// On any collision the ball does not advance (beyond overlap
// separation), its velocity is reflected or given an elastic impulse,
// and a single Contact is reported. The radius shrink and speed gain
// are then applied once for the tick.
func ResolveBall(i int, pos []*components.Position, vel []*components.Velocity, balls []*components.Ball, bounds Bounds, p CollisionParams) (Contact, bool) {
	pi, vi, bi := pos[i], vel[i], balls[i]
	r := bi.Radius

	nextX := pi.X + vi.X
	nextY := pi.Y + vi.Y

	collided := false
	wall := false
	var impactX float32

	// Walls. A vertical-wall strike reports the pre-motion x as the
	// impact location; a horizontal-wall strike reports the clamped
	// next x. The asymmetry is intentional.
	if nextX-r <= 0 || nextX+r >= bounds.Width {
		vi.X = -vi.X
		impactX = clamp32(nextX, r, bounds.Width-r)
		collided = true
		wall = true
	}
	if nextY-r <= 0 || nextY+r >= bounds.Height {
		vi.Y = -vi.Y
		impactX = pi.X
		collided = true
		wall = true
	}

	// Pairs: tentative position of this ball against the current
	// position of every other. The other ball reacts in its own pass.
	for j := range balls {
		if j == i {
			continue
		}
		pj, vj, bj := pos[j], vel[j], balls[j]

		dx := nextX - pj.X
		dy := nextY - pj.Y
		dist := float32(math.Hypot(float64(dx), float64(dy)))
		minDist := r + bj.Radius
		if dist >= minDist || dist == 0 {
			continue
		}

		nx := dx / dist
		ny := dy / dist

		// Elastic impulse along the collision normal, applied to this
		// ball only.
		rvx := vi.X - vj.X
		rvy := vi.Y - vj.Y
		velAlong := rvx*nx + rvy*ny
		impulse := 2 * velAlong / (1/r + 1/bj.Radius)
		vi.X -= impulse * nx / r
		vi.Y -= impulse * ny / r

		// Push this ball half the overlap out; the other ball pushes
		// itself when its turn comes.
		overlap := minDist - dist
		pi.X += nx * overlap / 2
		pi.Y += ny * overlap / 2

		impactX = pi.X
		collided = true
	}

	if !collided {
		pi.X = nextX
		pi.Y = nextY
		return Contact{}, false
	}

	contact := Contact{ImpactX: impactX, Radius: bi.Radius, Wall: wall}

	bi.Radius *= p.RadiusDecrease

	// Speed up without changing direction. A ball at exactly zero
	// speed stays at zero rather than dividing by it.
	speed := float32(math.Hypot(float64(vi.X), float64(vi.Y)))
	if speed > 0 {
		vi.X *= p.VelocityIncrease
		vi.Y *= p.VelocityIncrease
	}

	return contact, true
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
