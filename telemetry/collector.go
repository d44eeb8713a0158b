package telemetry

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	fishAdded      int
	foodSpawned    int
	foodEaten      int
	chasesStarted  int
	chasesLost     int
	bubblesSpawned int
	bubblesPopped  int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(1)
	if dt > 0 {
		ticksPerWindow = int32(windowDurationSec / dt)
	}
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordFishAdded records a fish entering the tank.
func (c *Collector) RecordFishAdded() {
	c.fishAdded++
}

// RecordFoodSpawned records a pellet dropped into the tank.
func (c *Collector) RecordFoodSpawned() {
	c.foodSpawned++
}

// RecordFoodEaten records a pellet consumed by a fish.
func (c *Collector) RecordFoodEaten() {
	c.foodEaten++
}

// RecordChaseStarted records a fish switching to feeding.
func (c *Collector) RecordChaseStarted() {
	c.chasesStarted++
}

// RecordChaseLost records a chase that ended without the fish eating.
func (c *Collector) RecordChaseLost() {
	c.chasesLost++
}

// RecordBubbleSpawned records a bubble emitted by a fish.
func (c *Collector) RecordBubbleSpawned() {
	c.bubblesSpawned++
}

// RecordBubblePopped records a bubble leaving through the surface.
func (c *Collector) RecordBubblePopped() {
	c.bubblesPopped++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Population is the entity census taken at the end of a window.
type Population struct {
	Fish    int
	Food    int
	Bubbles int
}

// Flush produces a WindowStats and resets counters for the next window.
// fishSpeeds are the per-fish speeds sampled at currentTick.
func (c *Collector) Flush(currentTick int32, pop Population, fishSpeeds []float64) WindowStats {
	var catchRate float64
	if c.chasesStarted > 0 {
		catchRate = float64(c.foodEaten) / float64(c.chasesStarted)
	}

	mean, p50, p90 := ComputeSpeedStats(fishSpeeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Fish:    pop.Fish,
		Food:    pop.Food,
		Bubbles: pop.Bubbles,

		FishAdded:      c.fishAdded,
		FoodSpawned:    c.foodSpawned,
		FoodEaten:      c.foodEaten,
		ChasesStarted:  c.chasesStarted,
		ChasesLost:     c.chasesLost,
		BubblesSpawned: c.bubblesSpawned,
		BubblesPopped:  c.bubblesPopped,
		CatchRate:      catchRate,

		SpeedMean: mean,
		SpeedP50:  p50,
		SpeedP90:  p90,
	}

	c.windowStartTick = currentTick
	c.fishAdded = 0
	c.foodSpawned = 0
	c.foodEaten = 0
	c.chasesStarted = 0
	c.chasesLost = 0
	c.bubblesSpawned = 0
	c.bubblesPopped = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
