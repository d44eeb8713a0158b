package behavior

import "github.com/pthm-cable/aquarium/geom"

// Wait idles for a fixed number of ticks with zero velocity.
type Wait struct {
	elapsed  int
	duration int
}

// NewWait returns a Wait that is done after ticks+1 updates. Negative ticks
// count as zero.
func NewWait(ticks int) *Wait {
	return &Wait{duration: max(ticks, 0)}
}

// Update counts one tick.
func (w *Wait) Update() {
	w.elapsed++
}

// Velocity is always zero.
func (w *Wait) Velocity() geom.Vec2 {
	return geom.Vec2{}
}

// Done reports whether more than the configured ticks have passed.
func (w *Wait) Done() bool {
	return w.elapsed > w.duration
}

// Elapsed returns the number of ticks this wait has been updated.
func (w *Wait) Elapsed() int {
	return w.elapsed
}
