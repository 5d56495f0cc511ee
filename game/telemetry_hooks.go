package game

import "github.com/pthm-cable/bugworld/telemetry"

// afterTick writes the per-tick metrics line and flushes the telemetry
// window when it is due.
func (g *Game) afterTick(snap telemetry.Snapshot) {
	g.writeMetrics(snap)
	g.flushTelemetry(snap)
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry(snap telemetry.Snapshot) {
	c := g.sim.Collector()
	if !c.ShouldFlush(snap.Tick) {
		return
	}

	stats := c.Flush(snap, g.sim.Store().Healths())
	perf := g.perf.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perf.LogStats(snap.Tick)
	}

	for _, b := range g.bookmarks.Check(stats) {
		b.LogBookmark()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		logOutputError("telemetry", err)
	}
	if err := g.outputManager.WritePerf(perf, snap.Tick); err != nil {
		logOutputError("perf", err)
	}
}

// writeMetrics appends a metrics log line.
func (g *Game) writeMetrics(snap telemetry.Snapshot) {
	if err := g.metrics.Write(snap); err != nil {
		logOutputError("metrics", err)
	}
}
