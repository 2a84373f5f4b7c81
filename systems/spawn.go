package systems

import "math/rand"

// SpawnParams holds placement parameters for new balls.
type SpawnParams struct {
	Attempts      int     // Rejection sampling attempts before the center fallback
	Margin        float32 // Inset from each edge as a fraction of arena width
	MinSeparation float32 // Required distance to every existing ball center
}

// PickSpawnPoint chooses a position for a new ball by rejection
// sampling: a uniform point inside the inset region whose distance to
// every existing ball exceeds MinSeparation. If no attempt lands clear,
// it falls back to the arena center rather than failing.
func PickSpawnPoint(rng *rand.Rand, bounds Bounds, existingX, existingY []float32, p SpawnParams) (float32, float32) {
	inset := bounds.Width * p.Margin

	for attempt := 0; attempt < p.Attempts; attempt++ {
		x := inset + rng.Float32()*(bounds.Width-2*inset)
		y := inset + rng.Float32()*(bounds.Height-2*inset)

		clear := true
		for k := range existingX {
			dx := x - existingX[k]
			dy := y - existingY[k]
			if dx*dx+dy*dy <= p.MinSeparation*p.MinSeparation {
				clear = false
				break
			}
		}
		if clear {
			return x, y
		}
	}

	return bounds.Width / 2, bounds.Height / 2
}

// SpawnVelocity draws independent uniform components in ±spread/2.
func SpawnVelocity(rng *rand.Rand, spread float32) (float32, float32) {
	vx := (rng.Float32() - 0.5) * spread
	vy := (rng.Float32() - 0.5) * spread
	return vx, vy
}

// SpawnRadius draws a radius uniform in [0.7, 1.0] of the initial radius.
func SpawnRadius(rng *rand.Rand, initial float32) float32 {
	return initial * (0.7 + rng.Float32()*0.3)
}
