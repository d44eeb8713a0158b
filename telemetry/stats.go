package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Census at window end
	Fish    int `csv:"fish"`
	Food    int `csv:"food"`
	Bubbles int `csv:"bubbles"`

	// Events during window
	FishAdded      int     `csv:"fish_added"`
	FoodSpawned    int     `csv:"food_spawned"`
	FoodEaten      int     `csv:"food_eaten"`
	ChasesStarted  int     `csv:"chases_started"`
	ChasesLost     int     `csv:"chases_lost"`
	BubblesSpawned int     `csv:"bubbles_spawned"`
	BubblesPopped  int     `csv:"bubbles_popped"`
	CatchRate      float64 `csv:"catch_rate"` // food eaten per chase started

	// Fish speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// Percentile returns the empirical p-quantile of a sorted slice.
// Returns 0 if the slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	p = min(max(p, 0), 1)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeSpeedStats calculates mean and percentiles from speed values.
func ComputeSpeedStats(values []float64) (mean, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	return mean, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("fish", s.Fish),
		slog.Int("food", s.Food),
		slog.Int("bubbles", s.Bubbles),
		slog.Int("fish_added", s.FishAdded),
		slog.Int("food_spawned", s.FoodSpawned),
		slog.Int("food_eaten", s.FoodEaten),
		slog.Int("chases_started", s.ChasesStarted),
		slog.Int("chases_lost", s.ChasesLost),
		slog.Int("bubbles_spawned", s.BubblesSpawned),
		slog.Int("bubbles_popped", s.BubblesPopped),
		slog.Float64("catch_rate", s.CatchRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"fish", s.Fish,
		"food", s.Food,
		"bubbles", s.Bubbles,
		"fish_added", s.FishAdded,
		"food_spawned", s.FoodSpawned,
		"food_eaten", s.FoodEaten,
		"chases_started", s.ChasesStarted,
		"chases_lost", s.ChasesLost,
		"catch_rate", s.CatchRate,
		"speed_mean", s.SpeedMean,
		"speed_p90", s.SpeedP90,
	)
}
