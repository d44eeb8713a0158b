package components

import (
	"math/rand"

	"github.com/pthm-cable/aquarium/behavior"
	"github.com/pthm-cable/aquarium/geom"
)

// BubbleMaker is a jittered periodic timer that emits bubbles at a source point.
type BubbleMaker struct {
	Time   int                `inspect:"label"`
	Period int                `inspect:"label"`
	Source behavior.PointFunc `inspect:"skip"`
}

// NewBubbleMaker starts the timer at a random phase in [0, period) so that
// makers created together do not fire in lockstep.
func NewBubbleMaker(rng *rand.Rand, period int, source behavior.PointFunc) BubbleMaker {
	start := 0
	if period > 0 {
		start = rng.Intn(period)
	}
	return BubbleMaker{Time: start, Period: period, Source: source}
}

// Update advances the timer by one tick. When it passes the period it resets and
// returns the point where a bubble should appear.
func (b *BubbleMaker) Update() (geom.Vec2, bool) {
	b.Time++
	if b.Time <= b.Period {
		return geom.Vec2{}, false
	}
	b.Time = 0
	if b.Source == nil {
		return geom.Vec2{}, false
	}
	return b.Source(), true
}
