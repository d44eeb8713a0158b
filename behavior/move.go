package behavior

import "github.com/pthm-cable/aquarium/geom"

// MoveParams configures a MoveToPoint.
//
// StartFunc and TargetFunc take precedence over Start and Target. Without a
// StartFunc the behavior tracks its own position from Start, assuming the owner
// integrates every velocity it reports. Stop, if set, ends the behavior early.
// Limit caps the number of ticks; zero means unlimited.
type MoveParams struct {
	Start      geom.Vec2
	StartFunc  PointFunc
	Target     geom.Vec2
	TargetFunc PointFunc
	Speed      float64
	Stop       func() bool
	Limit      int
}

// MoveToPoint steers toward a fixed or moving target at a capped speed.
type MoveToPoint struct {
	clock

	startFn  PointFunc
	cur      geom.Vec2
	targetFn PointFunc
	target   geom.Vec2
	speed    float64
	stop     func() bool
	velocity geom.Vec2
}

// NewMoveToPoint creates a MoveToPoint from p.
func NewMoveToPoint(p MoveParams) *MoveToPoint {
	return &MoveToPoint{
		clock:    clock{limit: p.Limit},
		startFn:  p.StartFunc,
		cur:      p.Start,
		targetFn: p.TargetFunc,
		target:   p.Target,
		speed:    p.Speed,
		stop:     p.Stop,
	}
}

// Update advances one tick and steers toward the current target.
func (m *MoveToPoint) Update() {
	m.tick()
	if m.startFn == nil {
		m.cur = m.cur.Add(m.velocity)
	}
	m.velocity = MoveToward(m.current(), m.Target(), m.speed)
}

// Velocity returns the step computed by the last Update.
func (m *MoveToPoint) Velocity() geom.Vec2 {
	return m.velocity
}

// Done reports true once Stop fires, the tick limit passes, or the current position is within
// arrival tolerance of the target.
func (m *MoveToPoint) Done() bool {
	if m.stop != nil && m.stop() {
		return true
	}
	if m.expired() {
		return true
	}
	return m.position().Near(m.Target())
}

// Target returns the current target, evaluating TargetFunc if set.
func (m *MoveToPoint) Target() geom.Vec2 {
	if m.targetFn != nil {
		return m.targetFn()
	}
	return m.target
}

// current is the position used to steer this tick.
func (m *MoveToPoint) current() geom.Vec2 {
	if m.startFn != nil {
		return m.startFn()
	}
	return m.cur
}

// position is where the owner is after integrating the last reported velocity.
func (m *MoveToPoint) position() geom.Vec2 {
	if m.startFn != nil {
		return m.startFn()
	}
	return m.cur.Add(m.velocity)
}
