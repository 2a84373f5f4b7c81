package telemetry

import (
	"math"
	"testing"
)

func TestRadiusStats(t *testing.T) {
	radii := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	mean, p10, p50, p90 := RadiusStats(radii)

	if math.Abs(mean-55) > 0.001 {
		t.Errorf("mean = %v, want 55", mean)
	}
	if p10 > 20 || p10 < 10 {
		t.Errorf("p10 = %v, want within [10, 20]", p10)
	}
	if math.Abs(p50-55) > 5.001 {
		t.Errorf("p50 = %v, want ~55", p50)
	}
	if p90 < 90 || p90 > 100 {
		t.Errorf("p90 = %v, want within [90, 100]", p90)
	}
}

func TestRadiusStatsEmpty(t *testing.T) {
	mean, p10, p50, p90 := RadiusStats(nil)
	if mean != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("empty input = (%v, %v, %v, %v), want zeros", mean, p10, p50, p90)
	}
}

func TestRadiusStatsDoesNotMutateInput(t *testing.T) {
	radii := []float64{50, 10, 30}
	RadiusStats(radii)
	if radii[0] != 50 || radii[1] != 10 || radii[2] != 30 {
		t.Errorf("input mutated: %v", radii)
	}
}

func TestCollectorWindowBoundaries(t *testing.T) {
	c := NewCollector(5.0, 1.0/60.0)

	if c.WindowComplete(299) {
		t.Error("window complete at tick 299, want tick 300")
	}
	if !c.WindowComplete(300) {
		t.Error("window not complete at tick 300")
	}

	c.RecordWallHit()
	c.RecordWallHit()
	c.RecordBallHit()
	c.RecordTrigger()
	c.RecordSpawn()

	stats := c.Flush(300, 7, 3, []float64{40, 50, 60})

	if stats.WallHits != 2 || stats.BallHits != 1 || stats.Triggers != 1 || stats.Spawns != 1 {
		t.Errorf("counts = %+v, want recorded events", stats)
	}
	if stats.Balls != 7 || stats.ActiveVoices != 3 {
		t.Errorf("snapshot = (%d, %d), want (7, 3)", stats.Balls, stats.ActiveVoices)
	}
	if math.Abs(stats.SimTimeSec-5.0) > 0.001 {
		t.Errorf("SimTimeSec = %v, want 5.0", stats.SimTimeSec)
	}

	// Flush resets counters and rebases the window.
	if c.WindowComplete(599) {
		t.Error("next window complete at 599, want 600")
	}
	next := c.Flush(600, 0, 0, nil)
	if next.WallHits != 0 || next.Triggers != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	// Sub-tick windows clamp to one tick.
	c := NewCollector(0.001, 1.0/60.0)
	if !c.WindowComplete(1) {
		t.Error("clamped window not complete after one tick")
	}
}
