package systems

import (
	"math"
	"math/rand"
	"testing"
)

func TestPickSpawnPointRespectsSeparation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bounds := Bounds{Width: 1000, Height: 800}
	p := SpawnParams{Attempts: 100, Margin: 0.2, MinSeparation: 120}

	existingX := []float32{500, 300, 700}
	existingY := []float32{400, 300, 500}

	for i := 0; i < 50; i++ {
		x, y := PickSpawnPoint(rng, bounds, existingX, existingY, p)

		inset := bounds.Width * p.Margin
		if x < inset || x > bounds.Width-inset || y < inset || y > bounds.Height-inset {
			t.Fatalf("spawn (%f, %f) outside inset region", x, y)
		}
		for k := range existingX {
			dx := float64(x - existingX[k])
			dy := float64(y - existingY[k])
			if math.Hypot(dx, dy) <= float64(p.MinSeparation) {
				t.Fatalf("spawn (%f, %f) too close to ball %d", x, y, k)
			}
		}
	}
}

func TestPickSpawnPointCenterFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	bounds := Bounds{Width: 1000, Height: 800}
	// Separation larger than the arena diagonal: every attempt fails.
	p := SpawnParams{Attempts: 100, Margin: 0.2, MinSeparation: 5000}

	x, y := PickSpawnPoint(rng, bounds, []float32{10}, []float32{10}, p)
	if x != 500 || y != 400 {
		t.Errorf("fallback = (%f, %f), want arena center (500, 400)", x, y)
	}
}

func TestSpawnVelocityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		vx, vy := SpawnVelocity(rng, 4.0)
		if vx < -2 || vx > 2 || vy < -2 || vy > 2 {
			t.Fatalf("velocity (%f, %f) outside ±2", vx, vy)
		}
	}
}

func TestSpawnRadiusRange(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		r := SpawnRadius(rng, 60)
		if r < 42 || r > 60 {
			t.Fatalf("radius %f outside [42, 60]", r)
		}
	}
}
