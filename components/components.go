// Package components defines ECS components for the aquarium.
package components

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/behavior"
	"github.com/pthm-cable/aquarium/geom"
)

// Kind tags an entity with the variant that decides its per-tick update policy.
type Kind uint8

const (
	KindDecoration Kind = iota // Static scenery, integrates velocity only
	KindFish                   // Autonomous swimmer driven by behaviors
	KindFood                   // Sinks, gets eaten
	KindBubble                 // Rises, pops above the surface
	KindButton                 // UI click target, not simulated
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindDecoration:
		return "Decoration"
	case KindFish:
		return "Fish"
	case KindFood:
		return "Food"
	case KindBubble:
		return "Bubble"
	case KindButton:
		return "Button"
	}
	return "Unknown"
}

// Tag is carried by every scene entity.
type Tag struct {
	Kind Kind `inspect:"label"`
}

// Transform holds world position (top-left of the sprite) and per-tick velocity.
type Transform struct {
	Pos geom.Vec2 `inspect:"label,fmt:%.1f"`
	Vel geom.Vec2 `inspect:"label,fmt:%.2f"`
}

// Integrate advances position by one tick of velocity.
func (t *Transform) Integrate() {
	t.Pos = t.Pos.Add(t.Vel)
}

// Sprite is the visual handle. The simulation only flips it; drawing is the renderer's job.
type Sprite struct {
	Name  string    `inspect:"label"`
	Size  geom.Vec2 `inspect:"skip"`
	FlipX bool      `inspect:"bool"`
	FlipY bool      `inspect:"skip"`
}

// Collider is a collision rectangle in entity-local space.
type Collider struct {
	Local geom.Rect
}

// World returns the collider in world space for an entity at pos.
func (c Collider) World(pos geom.Vec2) geom.Rect {
	return c.Local.Offset(pos)
}

// Fish holds the steering state of a fish.
// Target is a weak handle: the food may be removed by anyone, so it must be
// revalidated before every use.
type Fish struct {
	Behavior    behavior.Behavior `inspect:"skip"`
	Mode        string            `inspect:"label"`
	FacingRight bool              `inspect:"bool"`
	Target      ecs.Entity        `inspect:"skip"`
	Chasing     bool              `inspect:"bool"`
	Bubbles     BubbleMaker       `inspect:"skip"`
	Eaten       int               `inspect:"label"`
}

// Food is a sinking pellet. Dead flips exactly once, when it is eaten.
type Food struct {
	Dead bool
}

// Bubble marks a rising bubble.
type Bubble struct{}

// Decoration marks static scenery.
type Decoration struct{}
