package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	// Counts at window end
	Balls        int `csv:"balls"`
	ActiveVoices int `csv:"active_voices"`

	// Events during window
	WallHits        int `csv:"wall_hits"`
	BallHits        int `csv:"ball_hits"`
	Triggers        int `csv:"triggers"`
	TriggersSkipped int `csv:"triggers_skipped"`
	VoicesStolen    int `csv:"voices_stolen"`
	VoicesEvicted   int `csv:"voices_evicted"`
	Spawns          int `csv:"spawns"`
	Removals        int `csv:"removals"`

	// Radius distribution (sampled at window end)
	RadiusMean float64 `csv:"radius_mean"`
	RadiusP10  float64 `csv:"radius_p10"`
	RadiusP50  float64 `csv:"radius_p50"`
	RadiusP90  float64 `csv:"radius_p90"`
}

// RadiusStats computes the mean and the 10th/50th/90th percentiles of
// the given radii. Returns zeros for an empty slice.
func RadiusStats(radii []float64) (mean, p10, p50, p90 float64) {
	if len(radii) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(radii))
	copy(sorted, radii)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.1, stat.LinInterp, sorted, nil)
	p50 = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.9, stat.LinInterp, sorted, nil)
	return mean, p10, p50, p90
}

// Log emits the window via slog.
func (s WindowStats) Log() {
	slog.Info("window stats",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"balls", s.Balls,
		"active_voices", s.ActiveVoices,
		"wall_hits", s.WallHits,
		"ball_hits", s.BallHits,
		"triggers", s.Triggers,
		"triggers_skipped", s.TriggersSkipped,
		"voices_stolen", s.VoicesStolen,
		"voices_evicted", s.VoicesEvicted,
		"spawns", s.Spawns,
		"removals", s.Removals,
		"radius_mean", s.RadiusMean,
		"radius_p50", s.RadiusP50,
	)
}
