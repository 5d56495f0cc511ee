package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick uint64 `csv:"-"`
	WindowEndTick   uint64 `csv:"window_end"`

	// Population and resources at window end
	Alive  int `csv:"alive"`
	Food   int `csv:"food"`
	Poison int `csv:"poison"`

	// Events during window
	Births            int `csv:"births"`
	Fights            int `csv:"fights"`
	Deaths            int `csv:"deaths"`
	PlacementFailures int `csv:"placement_failures"`
	Exhausted         int `csv:"exhausted"`
	FoodGrown         int `csv:"food_grown"`
	PoisonGrown       int `csv:"poison_grown"`

	// Health distribution (sampled at window end)
	HealthMean float64 `csv:"health_mean"`
	HealthStd  float64 `csv:"health_std"`
	HealthP10  float64 `csv:"health_p10"`
	HealthP50  float64 `csv:"health_p50"`
	HealthP90  float64 `csv:"health_p90"`

	// Trait means (integer, as in the metrics log)
	MeanVision     int `csv:"mean_vision"`
	MeanSpeed      int `csv:"mean_speed"`
	MeanDrive      int `csv:"mean_drive"`
	MeanAggression int `csv:"mean_aggression"`
}

// HealthStats summarizes a health distribution.
type HealthStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// ComputeHealthStats calculates mean, sample standard deviation and
// empirical percentiles. Empty input yields zeros; a single value has
// zero spread.
func ComputeHealthStats(values []float64) HealthStats {
	n := len(values)
	if n == 0 {
		return HealthStats{}
	}

	var hs HealthStats
	if n == 1 {
		hs.Mean = values[0]
	} else {
		hs.Mean, hs.Std = stat.MeanStdDev(values, nil)
	}

	// Sort for percentiles
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	hs.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	hs.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	hs.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return hs
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStartTick),
		slog.Uint64("window_end", s.WindowEndTick),
		slog.Int("alive", s.Alive),
		slog.Int("food", s.Food),
		slog.Int("poison", s.Poison),
		slog.Int("births", s.Births),
		slog.Int("fights", s.Fights),
		slog.Int("deaths", s.Deaths),
		slog.Int("placement_failures", s.PlacementFailures),
		slog.Int("exhausted", s.Exhausted),
		slog.Int("food_grown", s.FoodGrown),
		slog.Int("poison_grown", s.PoisonGrown),
		slog.Float64("health_mean", s.HealthMean),
		slog.Float64("health_std", s.HealthStd),
		slog.Float64("health_p10", s.HealthP10),
		slog.Float64("health_p50", s.HealthP50),
		slog.Float64("health_p90", s.HealthP90),
		slog.Int("mean_vision", s.MeanVision),
		slog.Int("mean_speed", s.MeanSpeed),
		slog.Int("mean_drive", s.MeanDrive),
		slog.Int("mean_aggression", s.MeanAggression),
	)
}

// LogStats logs the window summary using slog.
func (s WindowStats) LogStats() {
	slog.Info("window",
		"window_end", s.WindowEndTick,
		"alive", s.Alive,
		"births", s.Births,
		"fights", s.Fights,
		"deaths", s.Deaths,
		"placement_failures", s.PlacementFailures,
		"exhausted", s.Exhausted,
		"health_mean", s.HealthMean,
		"health_p50", s.HealthP50,
	)
}
