package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
)

// Component accessors return nil when the entity is not alive or lacks the
// component. Returned pointers point into ECS storage and are only valid until
// the next Create, Attach, or Remove.

// Kind returns the variant tag of e.
func (s *Scene) Kind(e ecs.Entity) (components.Kind, bool) {
	if !s.Alive(e) {
		return 0, false
	}
	return s.tagMap.Get(e).Kind, true
}

// Transform returns the transform of e.
func (s *Scene) Transform(e ecs.Entity) *components.Transform {
	if !s.world.Alive(e) || !s.transformMap.Has(e) {
		return nil
	}
	return s.transformMap.Get(e)
}

// Sprite returns the sprite of e.
func (s *Scene) Sprite(e ecs.Entity) *components.Sprite {
	if !s.world.Alive(e) || !s.spriteMap.Has(e) {
		return nil
	}
	return s.spriteMap.Get(e)
}

// Fish returns the fish component of e.
func (s *Scene) Fish(e ecs.Entity) *components.Fish {
	if !s.world.Alive(e) || !s.fishMap.Has(e) {
		return nil
	}
	return s.fishMap.Get(e)
}

// Food returns the food component of e.
func (s *Scene) Food(e ecs.Entity) *components.Food {
	if !s.world.Alive(e) || !s.foodMap.Has(e) {
		return nil
	}
	return s.foodMap.Get(e)
}

// Button returns the button component of e.
func (s *Scene) Button(e ecs.Entity) *components.Button {
	if !s.world.Alive(e) || !s.buttonMap.Has(e) {
		return nil
	}
	return s.buttonMap.Get(e)
}

// Collider returns the collider of e.
func (s *Scene) Collider(e ecs.Entity) *components.Collider {
	if !s.world.Alive(e) || !s.colliderMap.Has(e) {
		return nil
	}
	return s.colliderMap.Get(e)
}

// AttachFish adds fish state to e.
func (s *Scene) AttachFish(e ecs.Entity, f components.Fish) {
	s.fishMap.Add(e, &f)
}

// AttachFood adds food state to e.
func (s *Scene) AttachFood(e ecs.Entity, f components.Food) {
	s.foodMap.Add(e, &f)
}

// AttachBubble marks e as a bubble.
func (s *Scene) AttachBubble(e ecs.Entity) {
	s.bubbleMap.Add(e, &components.Bubble{})
}

// AttachButton adds button state to e.
func (s *Scene) AttachButton(e ecs.Entity, b components.Button) {
	s.buttonMap.Add(e, &b)
}

// AttachDecoration marks e as scenery.
func (s *Scene) AttachDecoration(e ecs.Entity) {
	s.decorationMap.Add(e, &components.Decoration{})
}

// AttachCollider adds a local collision rectangle to e.
func (s *Scene) AttachCollider(e ecs.Entity, c components.Collider) {
	s.colliderMap.Add(e, &c)
}
