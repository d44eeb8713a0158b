package game

import "github.com/mlange-42/ark/ecs"

// updateFood sinks the pellet until it reaches the resting depth.
func (g *Game) updateFood(e ecs.Entity) {
	tr := g.scene.Transform(e)
	if tr == nil {
		return
	}
	if tr.Pos.Y > g.cfg.Food.RestDepth {
		tr.Vel.X, tr.Vel.Y = 0, 0
	}
	tr.Integrate()
}

// FoodAvailable reports whether e is live food that has not been eaten.
func (g *Game) FoodAvailable(e ecs.Entity) bool {
	if !g.scene.Alive(e) {
		return false
	}
	food := g.scene.Food(e)
	return food != nil && !food.Dead
}

// EatFood marks e dead and removes it from the scene. Eating food that is
// already dead, removed, or not food at all does nothing and returns false.
func (g *Game) EatFood(e ecs.Entity) bool {
	if !g.FoodAvailable(e) {
		return false
	}
	g.scene.Food(e).Dead = true
	g.scene.Remove(e)
	g.collector.RecordFoodEaten()
	return true
}
