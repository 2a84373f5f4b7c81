package systems

import (
	"math"
	"testing"
)

func TestNoise3DDeterministic(t *testing.T) {
	a := NewPerlinNoise(42)
	b := NewPerlinNoise(42)

	for i := 0; i < 100; i++ {
		x := float64(i) * 0.13
		va := a.Noise3D(x, x*0.7, x*0.3)
		vb := b.Noise3D(x, x*0.7, x*0.3)
		if va != vb {
			t.Fatalf("same seed diverged at %f: %f vs %f", x, va, vb)
		}
	}
}

func TestNoise3DBounded(t *testing.T) {
	n := NewPerlinNoise(7)
	for i := 0; i < 1000; i++ {
		v := n.Noise3D(float64(i)*0.31, float64(i)*0.17, float64(i)*0.05)
		if math.Abs(v) > 1.5 {
			t.Fatalf("noise value %f out of expected range", v)
		}
	}
}

func TestTurbulenceScaledByStrength(t *testing.T) {
	weak := NewTurbulenceField(9, 0.1, 0.005)
	strong := NewTurbulenceField(9, 1.0, 0.005)

	for i := 0; i < 50; i++ {
		x := float32(i) * 37.0
		y := float32(i) * 11.0
		wx, wy := weak.Sample(x, y, int32(i))
		sx, sy := strong.Sample(x, y, int32(i))

		if math.Abs(float64(wx)*10-float64(sx)) > 1e-5 {
			t.Fatalf("x perturbation not linear in strength: %f vs %f", wx, sx)
		}
		if math.Abs(float64(wy)*10-float64(sy)) > 1e-5 {
			t.Fatalf("y perturbation not linear in strength: %f vs %f", wy, sy)
		}
	}
}

func TestPerturbAddsSample(t *testing.T) {
	f := NewTurbulenceField(3, 0.5, 0.005)

	dx, dy := f.Sample(123, 456, 10)
	vx, vy := float32(1.0), float32(-2.0)
	f.Perturb(&vx, &vy, 123, 456, 10)

	if vx != 1.0+dx || vy != -2.0+dy {
		t.Errorf("Perturb = (%f, %f), want (%f, %f)", vx, vy, 1.0+dx, -2.0+dy)
	}
}
