package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/behavior"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/geom"
)

// idleKind is what a fish does when it is not feeding.
type idleKind uint8

const (
	idleWait idleKind = iota
	idleCruise
)

// Fish modes, shown by the inspector.
const (
	modeWait   = "wait"
	modeCruise = "cruise"
	modeFeed   = "feed"
)

// updateFish runs the fish decision procedure for one tick:
//  1. replace a finished behavior, eating the pursued food if there was one
//  2. start chasing a random nearby food if not already chasing
//  3. advance the behavior
//  4. face the direction of travel
//  5. apply velocity, emit bubbles, integrate
func (g *Game) updateFish(e ecs.Entity) {
	f := g.scene.Fish(e)
	if f == nil {
		return
	}

	if f.Behavior == nil || f.Behavior.Done() {
		if f.Chasing {
			target := f.Target
			f.Target = ecs.Entity{}
			f.Chasing = false
			ate := g.EatFood(target)
			// Eating removes an entity; re-fetch storage pointers.
			f = g.scene.Fish(e)
			if ate {
				f.Eaten++
			} else {
				g.collector.RecordChaseLost()
			}
		}
		f.Behavior, f.Mode = g.idleBehavior(e)
	}

	if !f.Chasing {
		g.foodScratch = g.scene.QueryNearbyFoodInto(g.foodScratch[:0], g.MouthPoint(e), g.cfg.Fish.DetectionRadius)
		if len(g.foodScratch) > 0 {
			target := g.foodScratch[g.rng.Intn(len(g.foodScratch))]
			f.Target = target
			f.Chasing = true
			f.Behavior = g.feedBehavior(e, target)
			f.Mode = modeFeed
			g.collector.RecordChaseStarted()
		}
	}

	f.Behavior.Update()
	vel := f.Behavior.Velocity()

	tr := g.scene.Transform(e)
	if !g.holdFacing(f, tr) {
		g.faceVelocity(e, f, vel)
	}

	tr.Vel = vel
	bubbleAt, emit := f.Bubbles.Update()
	tr.Integrate()

	if emit {
		g.spawnBubble(bubbleAt)
	}
}

// idleBehavior draws the next non-feeding behavior from the idle table.
func (g *Game) idleBehavior(e ecs.Entity) (behavior.Behavior, string) {
	switch g.idle.Pick(g.rng) {
	case idleCruise:
		size := g.cfg.Derived.FishSize
		dest := geom.V(
			g.rng.Float64()*max(g.cfg.Derived.TankW-size.X, 0),
			g.rng.Float64()*max(g.cfg.Derived.TankH-size.Y, 0),
		)
		return behavior.NewMoveToPoint(behavior.MoveParams{
			StartFunc: g.positionFunc(e),
			Target:    dest,
			Speed:     g.cfg.Fish.Speed,
		}), modeCruise
	default:
		ticks := g.cfg.Fish.WaitMin
		if g.cfg.Fish.WaitJitter > 0 {
			ticks += g.rng.Intn(g.cfg.Fish.WaitJitter)
		}
		return behavior.NewWait(ticks), modeWait
	}
}

// feedBehavior chases food with the mouth, ending early if the food is eaten
// or removed by someone else.
func (g *Game) feedBehavior(e, food ecs.Entity) behavior.Behavior {
	return behavior.NewMoveToPoint(behavior.MoveParams{
		StartFunc:  func() geom.Vec2 { return g.MouthPoint(e) },
		TargetFunc: g.lastKnownPosition(food),
		Speed:      g.cfg.Fish.FeedSpeed,
		Stop:       func() bool { return !g.FoodAvailable(food) },
	})
}

// positionFunc returns a live reader of e's position.
func (g *Game) positionFunc(e ecs.Entity) behavior.PointFunc {
	return func() geom.Vec2 {
		if tr := g.scene.Transform(e); tr != nil {
			return tr.Pos
		}
		return geom.Vec2{}
	}
}

// lastKnownPosition reads e's position while it lives and keeps returning the
// last value seen after it is gone.
func (g *Game) lastKnownPosition(e ecs.Entity) behavior.PointFunc {
	var last geom.Vec2
	if tr := g.scene.Transform(e); tr != nil {
		last = tr.Pos
	}
	return func() geom.Vec2 {
		if g.scene.Alive(e) {
			if tr := g.scene.Transform(e); tr != nil {
				last = tr.Pos
			}
		}
		return last
	}
}

// MouthPoint is the facing-dependent anchor for feeding and bubbles.
func (g *Game) MouthPoint(e ecs.Entity) geom.Vec2 {
	tr, f := g.scene.Transform(e), g.scene.Fish(e)
	if tr == nil || f == nil {
		return geom.Vec2{}
	}
	if f.FacingRight {
		return tr.Pos.Add(g.cfg.Derived.MouthRight)
	}
	return tr.Pos.Add(g.cfg.Derived.MouthLeft)
}

// targeter is a behavior steering toward a point it can report.
type targeter interface {
	Target() geom.Vec2
}

// holdFacing reports whether the fish is hovering over its food, in which case
// flipping on every small velocity change would flicker. The food position is
// read through the feeding behavior, which keeps the last known position once
// the food is gone.
func (g *Game) holdFacing(f *components.Fish, tr *components.Transform) bool {
	if !f.Chasing {
		return false
	}
	t, ok := f.Behavior.(targeter)
	if !ok {
		return false
	}
	foodX, x := t.Target().X, tr.Pos.X
	return foodX > x && foodX <= x+g.cfg.Fish.TurnGuardWidth
}

// faceVelocity turns the fish toward its horizontal direction of travel.
func (g *Game) faceVelocity(e ecs.Entity, f *components.Fish, vel geom.Vec2) {
	switch {
	case vel.X < 0:
		f.FacingRight = false
	case vel.X > 0:
		f.FacingRight = true
	default:
		return
	}
	if sp := g.scene.Sprite(e); sp != nil {
		sp.FlipX = !f.FacingRight
	}
}
