// Package scene owns the ordered set of live aquarium entities.
//
// Entity data lives in an ark ECS world; the scene adds a registration order on
// top of it, which is both the update order and the draw order. All structural
// changes go through Create/Add/Remove. Removal is safe during UpdateAll: the
// entity is destroyed at once (so liveness checks and queries stop seeing it),
// while the order slice is compacted after the pass finishes.
package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
)

// Scene is the live entity set.
type Scene struct {
	world *ecs.World

	order   []ecs.Entity
	members map[ecs.Entity]struct{}
	passing bool
	dirty   bool

	baseMapper *ecs.Map3[components.Tag, components.Transform, components.Sprite]

	tagMap        *ecs.Map[components.Tag]
	transformMap  *ecs.Map[components.Transform]
	spriteMap     *ecs.Map[components.Sprite]
	colliderMap   *ecs.Map[components.Collider]
	fishMap       *ecs.Map[components.Fish]
	foodMap       *ecs.Map[components.Food]
	bubbleMap     *ecs.Map[components.Bubble]
	buttonMap     *ecs.Map[components.Button]
	decorationMap *ecs.Map[components.Decoration]
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:         world,
		members:       make(map[ecs.Entity]struct{}),
		baseMapper:    ecs.NewMap3[components.Tag, components.Transform, components.Sprite](world),
		tagMap:        ecs.NewMap[components.Tag](world),
		transformMap:  ecs.NewMap[components.Transform](world),
		spriteMap:     ecs.NewMap[components.Sprite](world),
		colliderMap:   ecs.NewMap[components.Collider](world),
		fishMap:       ecs.NewMap[components.Fish](world),
		foodMap:       ecs.NewMap[components.Food](world),
		bubbleMap:     ecs.NewMap[components.Bubble](world),
		buttonMap:     ecs.NewMap[components.Button](world),
		decorationMap: ecs.NewMap[components.Decoration](world),
	}
}

// Create allocates an entity with the base components. It is not part of the
// scene until Add is called.
func (s *Scene) Create(kind components.Kind, tr components.Transform, sprite components.Sprite) ecs.Entity {
	tag := components.Tag{Kind: kind}
	return s.baseMapper.NewEntity(&tag, &tr, &sprite)
}

// Add appends e to the live set. Unknown, dead, or already registered entities are ignored.
func (s *Scene) Add(e ecs.Entity) {
	if !s.world.Alive(e) {
		return
	}
	if _, ok := s.members[e]; ok {
		return
	}
	s.members[e] = struct{}{}
	s.order = append(s.order, e)
}

// Remove destroys e. Removing an entity that is not in the scene is a no-op.
func (s *Scene) Remove(e ecs.Entity) {
	if _, ok := s.members[e]; !ok {
		return
	}
	delete(s.members, e)
	if s.world.Alive(e) {
		s.world.RemoveEntity(e)
	}
	if s.passing {
		s.dirty = true
		return
	}
	s.compact()
}

// Alive reports whether e is still a member of the scene.
func (s *Scene) Alive(e ecs.Entity) bool {
	if e.IsZero() {
		return false
	}
	_, ok := s.members[e]
	return ok
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return len(s.members)
}

// UpdateAll calls update once for every entity registered before the call, in
// registration order. Entities added during the pass wait for the next pass;
// entities removed during the pass are not visited afterwards.
func (s *Scene) UpdateAll(update func(e ecs.Entity)) {
	snapshot := make([]ecs.Entity, len(s.order))
	copy(snapshot, s.order)

	s.passing = true
	for _, e := range snapshot {
		if !s.Alive(e) {
			continue
		}
		update(e)
	}
	s.passing = false

	if s.dirty {
		s.compact()
	}
}

// Each calls fn for every live entity in registration order.
func (s *Scene) Each(fn func(e ecs.Entity)) {
	for _, e := range s.order {
		if s.Alive(e) {
			fn(e)
		}
	}
}

// compact drops removed entities from the order, preserving relative order.
func (s *Scene) compact() {
	kept := s.order[:0]
	for _, e := range s.order {
		if _, ok := s.members[e]; ok {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.order); i++ {
		s.order[i] = ecs.Entity{}
	}
	s.order = kept
	s.dirty = false
}
