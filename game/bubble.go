package game

import "github.com/mlange-42/ark/ecs"

// updateBubble rises and pops once above the visible area.
func (g *Game) updateBubble(e ecs.Entity) {
	tr := g.scene.Transform(e)
	if tr == nil {
		return
	}
	tr.Vel.X, tr.Vel.Y = 0, -g.cfg.Bubble.RiseSpeed
	tr.Integrate()
	if tr.Pos.Y < g.cfg.Bubble.RemoveAbove {
		g.scene.Remove(e)
		g.collector.RecordBubblePopped()
	}
}
