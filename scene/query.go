package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/geom"
)

// QueryNearbyFood returns live, uneaten food whose position is strictly closer
// than radius to p, in scene order.
func (s *Scene) QueryNearbyFood(p geom.Vec2, radius float64) []ecs.Entity {
	return s.QueryNearbyFoodInto(nil, p, radius)
}

// QueryNearbyFoodInto is QueryNearbyFood appending into dst. Reuse dst across
// calls to avoid allocations.
func (s *Scene) QueryNearbyFoodInto(dst []ecs.Entity, p geom.Vec2, radius float64) []ecs.Entity {
	for _, e := range s.order {
		if !s.Alive(e) || !s.foodMap.Has(e) {
			continue
		}
		if s.foodMap.Get(e).Dead {
			continue
		}
		if p.DistanceTo(s.transformMap.Get(e).Pos) < radius {
			dst = append(dst, e)
		}
	}
	return dst
}

// Counts returns the number of live fish, food and bubbles.
func (s *Scene) Counts() (fish, food, bubbles int) {
	for e := range s.members {
		switch {
		case s.fishMap.Has(e):
			fish++
		case s.foodMap.Has(e):
			food++
		case s.bubbleMap.Has(e):
			bubbles++
		}
	}
	return fish, food, bubbles
}

// Collides reports whether the world-space colliders of a and b overlap.
// Entities without a collider never collide.
func (s *Scene) Collides(a, b ecs.Entity) bool {
	ca, cb := s.Collider(a), s.Collider(b)
	if ca == nil || cb == nil {
		return false
	}
	ra := ca.World(s.transformMap.Get(a).Pos)
	rb := cb.World(s.transformMap.Get(b).Pos)
	return ra.Overlaps(rb)
}

// Click offers a click at p to every button in scene order until one consumes it.
// Returns true if a button handled the click.
func (s *Scene) Click(p geom.Vec2) bool {
	snapshot := make([]ecs.Entity, len(s.order))
	copy(snapshot, s.order)

	for _, e := range snapshot {
		if !s.Alive(e) {
			continue
		}
		if b := s.Button(e); b != nil && b.Click(p) {
			return true
		}
	}
	return false
}

// EntityAt returns the topmost live entity of those accepted by match whose
// sprite bounds strictly contain p.
func (s *Scene) EntityAt(p geom.Vec2, match func(e ecs.Entity) bool) (ecs.Entity, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		e := s.order[i]
		if !s.Alive(e) || (match != nil && !match(e)) {
			continue
		}
		tr, sp := s.Transform(e), s.Sprite(e)
		if tr == nil || sp == nil {
			continue
		}
		if geom.R(tr.Pos.X, tr.Pos.Y, sp.Size.X, sp.Size.Y).ContainsPoint(p) {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// IsFish reports whether e carries fish state.
func (s *Scene) IsFish(e ecs.Entity) bool {
	return s.Fish(e) != nil
}
