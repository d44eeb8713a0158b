package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	speeds := g.sampleFishSpeeds()
	fish, food, bubbles := g.scene.Counts()
	stats := g.collector.Flush(g.tick, telemetry.Population{Fish: fish, Food: food, Bubbles: bubbles}, speeds)
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if g.outputManager != nil {
			if err := g.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
	}
}

// sampleFishSpeeds collects the current speed of every fish.
func (g *Game) sampleFishSpeeds() []float64 {
	g.speedScratch = g.speedScratch[:0]
	g.scene.Each(func(e ecs.Entity) {
		if !g.scene.IsFish(e) {
			return
		}
		if tr := g.scene.Transform(e); tr != nil {
			g.speedScratch = append(g.speedScratch, tr.Vel.Len())
		}
	})
	return g.speedScratch
}
