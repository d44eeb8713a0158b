package renderer

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// hoverState eases one button's highlight level between 0 and 1.
type hoverState struct {
	level   float32
	hovered bool
	tween   *gween.Tween
}

// ButtonAnimator tracks hover highlight per button entity.
type ButtonAnimator struct {
	duration float32
	states   map[ecs.Entity]*hoverState
}

// NewButtonAnimator creates an animator whose highlight fades over duration seconds.
func NewButtonAnimator(duration float32) *ButtonAnimator {
	return &ButtonAnimator{
		duration: duration,
		states:   make(map[ecs.Entity]*hoverState),
	}
}

// Update advances e's highlight by dt seconds and returns the level in [0, 1].
// A change of hover starts a new ease from the current level.
func (b *ButtonAnimator) Update(e ecs.Entity, hovered bool, dt float32) float32 {
	st, ok := b.states[e]
	if !ok {
		st = &hoverState{}
		b.states[e] = st
	}

	if hovered != st.hovered {
		st.hovered = hovered
		target := float32(0)
		if hovered {
			target = 1
		}
		if b.duration <= 0 {
			st.level, st.tween = target, nil
		} else {
			st.tween = gween.New(st.level, target, b.duration, ease.OutQuad)
		}
	}

	if st.tween != nil {
		level, done := st.tween.Update(dt)
		st.level = level
		if done {
			st.tween = nil
		}
	}
	return st.level
}

// Prune forgets buttons for which alive reports false.
func (b *ButtonAnimator) Prune(alive func(ecs.Entity) bool) {
	for e := range b.states {
		if !alive(e) {
			delete(b.states, e)
		}
	}
}
