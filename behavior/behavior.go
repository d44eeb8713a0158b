// Package behavior implements the steering behaviors that drive entity motion.
//
// A Behavior is a time-boxed motion strategy. Each tick its owner calls Update,
// reads Velocity, and applies it to its transform. When Done reports true the
// owner replaces the behavior wholesale; behaviors never touch position directly.
package behavior

import "github.com/pthm-cable/aquarium/geom"

// Behavior produces a per-tick velocity and a completion signal.
type Behavior interface {
	// Update advances internal state by one tick and recomputes the velocity.
	Update()
	// Velocity returns the velocity computed by the last Update.
	Velocity() geom.Vec2
	// Done reports whether the behavior has finished.
	Done() bool
}

// PointFunc returns a live position, re-evaluated on every call.
type PointFunc func() geom.Vec2

// clock is the elapsed-tick counter for behaviors with an optional tick cap.
// A limit of zero means no tick limit.
type clock struct {
	elapsed int
	limit   int
}

func (c *clock) tick() {
	c.elapsed++
}

func (c *clock) expired() bool {
	return c.limit > 0 && c.elapsed > c.limit
}

// Elapsed returns the number of ticks this behavior has been updated.
func (c *clock) Elapsed() int {
	return c.elapsed
}

// MoveToward returns the velocity that moves cur toward target at most speed units per tick.
// When the target is closer than speed, the raw difference is returned so the move lands exactly.
// A zero difference yields a zero velocity.
func MoveToward(cur, target geom.Vec2, speed float64) geom.Vec2 {
	d := target.Sub(cur)
	dist := d.Len()
	if dist == 0 {
		return geom.Vec2{}
	}
	if dist < speed {
		return d
	}
	return d.Scale(speed / dist)
}
