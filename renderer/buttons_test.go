package renderer

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/scene"
)

func newButton(s *scene.Scene) ecs.Entity {
	return s.Create(components.KindButton, components.Transform{}, components.Sprite{})
}

func TestButtonAnimatorEasesToTarget(t *testing.T) {
	e := newButton(scene.New())
	b := NewButtonAnimator(0.2)

	if got := b.Update(e, false, 0.1); got != 0 {
		t.Fatalf("idle level = %v, want 0", got)
	}

	mid := b.Update(e, true, 0.1)
	if mid <= 0 || mid >= 1 {
		t.Errorf("halfway level = %v, want in (0, 1)", mid)
	}
	if got := b.Update(e, true, 0.2); got != 1 {
		t.Errorf("settled level = %v, want 1", got)
	}

	// Leaving eases back down from wherever it was
	down := b.Update(e, false, 0.05)
	if down >= 1 || down <= 0 {
		t.Errorf("fading level = %v, want in (0, 1)", down)
	}
	if got := b.Update(e, false, 1); got != 0 {
		t.Errorf("faded level = %v, want 0", got)
	}
}

func TestButtonAnimatorZeroDurationSnaps(t *testing.T) {
	e := newButton(scene.New())
	b := NewButtonAnimator(0)

	if got := b.Update(e, true, 0); got != 1 {
		t.Errorf("level = %v, want 1", got)
	}
}

func TestButtonAnimatorPrune(t *testing.T) {
	s := scene.New()
	keep, drop := newButton(s), newButton(s)
	b := NewButtonAnimator(0.1)
	b.Update(keep, true, 0.01)
	b.Update(drop, true, 0.01)

	b.Prune(func(e ecs.Entity) bool { return e == keep })
	if _, ok := b.states[drop]; ok {
		t.Error("pruned button still tracked")
	}
	if _, ok := b.states[keep]; !ok {
		t.Error("live button forgotten")
	}
}
