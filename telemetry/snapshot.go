package telemetry

import "log/slog"

// Snapshot is the per-tick population summary published after each tick.
// The first five fields form the metrics log row, in order.
type Snapshot struct {
	Alive          int    `csv:"alive"`
	Tick           uint64 `csv:"tick"`
	MeanHealth     int    `csv:"mean_health"`
	MeanDrive      int    `csv:"mean_drive"`
	MeanAggression int    `csv:"mean_aggression"`

	MeanVision int `csv:"-"`
	MeanSpeed  int `csv:"-"`
	Food       int `csv:"-"`
	Poison     int `csv:"-"`
}

// Extinct reports whether no organism is alive.
func (s Snapshot) Extinct() bool {
	return s.Alive == 0
}

// LogValue implements slog.LogValuer for structured logging.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("tick", s.Tick),
		slog.Int("alive", s.Alive),
		slog.Int("mean_health", s.MeanHealth),
		slog.Int("mean_drive", s.MeanDrive),
		slog.Int("mean_aggression", s.MeanAggression),
		slog.Int("mean_vision", s.MeanVision),
		slog.Int("mean_speed", s.MeanSpeed),
		slog.Int("food", s.Food),
		slog.Int("poison", s.Poison),
	)
}
