// Package telemetry aggregates simulation events into windowed stats.
package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for current window
	wallHits        int
	ballHits        int
	triggers        int
	triggersSkipped int
	voicesStolen    int
	voicesEvicted   int
	spawns          int
	removals        int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordWallHit records a ball striking an arena wall.
func (c *Collector) RecordWallHit() {
	c.wallHits++
}

// RecordBallHit records a ball-ball collision.
func (c *Collector) RecordBallHit() {
	c.ballHits++
}

// RecordTrigger records a collision that started a voice.
func (c *Collector) RecordTrigger() {
	c.triggers++
}

// RecordTriggerSkipped records a trigger dropped because its sample
// was not loaded.
func (c *Collector) RecordTriggerSkipped() {
	c.triggersSkipped++
}

// RecordVoiceStolen records a retrigger hard-cutting a same-note voice.
func (c *Collector) RecordVoiceStolen() {
	c.voicesStolen++
}

// RecordVoiceEvicted records an oldest-voice eviction at the
// polyphony cap.
func (c *Collector) RecordVoiceEvicted() {
	c.voicesEvicted++
}

// RecordSpawn records a new ball entering the arena.
func (c *Collector) RecordSpawn() {
	c.spawns++
}

// RecordRemoval records a ball dropped after shrinking out.
func (c *Collector) RecordRemoval() {
	c.removals++
}

// WindowComplete reports whether the current window ends at this tick.
func (c *Collector) WindowComplete(tick int32) bool {
	return tick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces stats for the completed window and starts the next
// one. The radii slice is the current radius of every live ball.
func (c *Collector) Flush(tick int32, balls, activeVoices int, radii []float64) WindowStats {
	mean, p10, p50, p90 := RadiusStats(radii)

	stats := WindowStats{
		WindowEndTick:   tick,
		SimTimeSec:      float64(tick) * c.dt,
		Balls:           balls,
		ActiveVoices:    activeVoices,
		WallHits:        c.wallHits,
		BallHits:        c.ballHits,
		Triggers:        c.triggers,
		TriggersSkipped: c.triggersSkipped,
		VoicesStolen:    c.voicesStolen,
		VoicesEvicted:   c.voicesEvicted,
		Spawns:          c.spawns,
		Removals:        c.removals,
		RadiusMean:      mean,
		RadiusP10:       p10,
		RadiusP50:       p50,
		RadiusP90:       p90,
	}

	c.windowStartTick = tick
	c.wallHits = 0
	c.ballHits = 0
	c.triggers = 0
	c.triggersSkipped = 0
	c.voicesStolen = 0
	c.voicesEvicted = 0
	c.spawns = 0
	c.removals = 0

	return stats
}
