package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     uint64
	windowStartTick uint64

	// Event counters for current window
	births            int
	fights            int
	deaths            int
	placementFailures int
	exhausted         int
	foodGrown         int
	poisonGrown       int
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: uint64(windowTicks)}
}

// RecordBirth records a newborn placed on the grid.
func (c *Collector) RecordBirth() {
	c.births++
}

// RecordFight records a resolved fight.
func (c *Collector) RecordFight() {
	c.fights++
}

// RecordDeaths records n deaths from any cause.
func (c *Collector) RecordDeaths(n int) {
	c.deaths += n
}

// RecordPlacementFailure records a birth with no empty cell for the child.
func (c *Collector) RecordPlacementFailure() {
	c.placementFailures++
}

// RecordExhausted records a birth refused because the store is full.
func (c *Collector) RecordExhausted() {
	c.exhausted++
}

// RecordRegrowth records resources grown on empty cells this tick.
func (c *Collector) RecordRegrowth(food, poison int) {
	c.foodGrown += food
	c.poisonGrown += poison
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick uint64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats from the window counters and the snapshot
// taken at the window end, then resets counters for the next window.
// healths holds the health of every living organism, for the distribution.
func (c *Collector) Flush(snap Snapshot, healths []float64) WindowStats {
	hs := ComputeHealthStats(healths)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   snap.Tick,

		Alive:  snap.Alive,
		Food:   snap.Food,
		Poison: snap.Poison,

		Births:            c.births,
		Fights:            c.fights,
		Deaths:            c.deaths,
		PlacementFailures: c.placementFailures,
		Exhausted:         c.exhausted,
		FoodGrown:         c.foodGrown,
		PoisonGrown:       c.poisonGrown,

		HealthMean: hs.Mean,
		HealthStd:  hs.Std,
		HealthP10:  hs.P10,
		HealthP50:  hs.P50,
		HealthP90:  hs.P90,

		MeanVision:     snap.MeanVision,
		MeanSpeed:      snap.MeanSpeed,
		MeanDrive:      snap.MeanDrive,
		MeanAggression: snap.MeanAggression,
	}

	// Reset for next window
	c.windowStartTick = snap.Tick
	c.births = 0
	c.fights = 0
	c.deaths = 0
	c.placementFailures = 0
	c.exhausted = 0
	c.foodGrown = 0
	c.poisonGrown = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() uint64 {
	return c.windowTicks
}
