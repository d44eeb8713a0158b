package behavior

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/aquarium/geom"
)

func TestMoveToward(t *testing.T) {
	tests := []struct {
		name        string
		cur, target geom.Vec2
		speed       float64
		want        geom.Vec2
	}{
		{"capped", geom.V(0, 0), geom.V(10, 0), 2, geom.V(2, 0)},
		{"diagonal capped", geom.V(0, 0), geom.V(30, 40), 5, geom.V(3, 4)},
		{"closer than speed snaps", geom.V(0, 0), geom.V(0.5, 0), 2, geom.V(0.5, 0)},
		{"exactly speed away", geom.V(2, 0), geom.V(3, 0), 1, geom.V(1, 0)},
		{"already there", geom.V(4, 4), geom.V(4, 4), 1, geom.V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveToward(tt.cur, tt.target, tt.speed)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("MoveToward = %v, want %v", got, tt.want)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("MoveToward produced NaN: %v", got)
			}
		})
	}
}

func TestWaitDeterminism(t *testing.T) {
	for _, n := range []int{0, 1, 5, 30} {
		t.Run(fmt.Sprintf("wait_%d", n), func(t *testing.T) {
			w := NewWait(n)

			for tick := 1; tick <= n; tick++ {
				w.Update()
				if w.Done() {
					t.Fatalf("tick %d: done too early", tick)
				}
				if !w.Velocity().IsZero() {
					t.Fatalf("tick %d: velocity %v, want zero", tick, w.Velocity())
				}
			}

			w.Update()
			if !w.Done() {
				t.Errorf("tick %d: expected done", n+1)
			}
			if w.Elapsed() != n+1 {
				t.Errorf("Elapsed() = %d, want %d", w.Elapsed(), n+1)
			}
			if !w.Velocity().IsZero() {
				t.Errorf("velocity %v, want zero", w.Velocity())
			}
		})
	}
}

func TestWaitNegativeIsZero(t *testing.T) {
	w := NewWait(-3)
	w.Update()
	if !w.Done() {
		t.Error("NewWait(-3) not done after one tick")
	}
}

// TestMoveToPointScenario walks a three-unit move at speed 1.
func TestMoveToPointScenario(t *testing.T) {
	pos := geom.V(0, 0)
	m := NewMoveToPoint(MoveParams{
		StartFunc: func() geom.Vec2 { return pos },
		Target:    geom.V(3, 0),
		Speed:     1,
	})

	wantPos := []geom.Vec2{geom.V(1, 0), geom.V(2, 0), geom.V(3, 0)}
	for i, want := range wantPos {
		m.Update()
		if v := m.Velocity(); v != geom.V(1, 0) {
			t.Fatalf("tick %d: velocity = %v, want (1,0)", i+1, v)
		}
		pos = pos.Add(m.Velocity())
		if pos != want {
			t.Fatalf("tick %d: pos = %v, want %v", i+1, pos, want)
		}
	}

	if !m.Done() {
		t.Error("expected done after reaching target")
	}
}

func TestMoveToPointConvergence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		start := geom.V(rng.Float64()*600, rng.Float64()*400)
		target := geom.V(rng.Float64()*600, rng.Float64()*400)
		speed := 0.25 + rng.Float64()*4

		pos := start
		m := NewMoveToPoint(MoveParams{
			StartFunc: func() geom.Vec2 { return pos },
			Target:    target,
			Speed:     speed,
		})

		bound := int(math.Ceil(start.DistanceTo(target)/speed)) + 1
		prevDist := pos.DistanceTo(target)
		ticks := 0
		for !m.Done() {
			if ticks > bound {
				t.Fatalf("case %d: no arrival within %d ticks (start %v target %v speed %v)", i, bound, start, target, speed)
			}
			m.Update()
			pos = pos.Add(m.Velocity())
			ticks++

			d := pos.DistanceTo(target)
			if d > prevDist+1e-9 {
				t.Fatalf("case %d: distance increased from %v to %v", i, prevDist, d)
			}
			prevDist = d
		}

		if !pos.Near(target) {
			t.Errorf("case %d: finished at %v, target %v", i, pos, target)
		}
	}
}

func TestMoveToPointFixedStartTracksItself(t *testing.T) {
	m := NewMoveToPoint(MoveParams{
		Start:  geom.V(0, 0),
		Target: geom.V(10, 0),
		Speed:  2,
	})

	owner := geom.V(0, 0)
	ticks := 0
	for !m.Done() && ticks < 20 {
		m.Update()
		owner = owner.Add(m.Velocity())
		ticks++
	}

	if !owner.Near(geom.V(10, 0)) {
		t.Errorf("owner at %v, want near (10,0)", owner)
	}
	if ticks > 5 {
		t.Errorf("took %d ticks, want at most 5", ticks)
	}
}

func TestMoveToPointChasesMovingTarget(t *testing.T) {
	pos := geom.V(0, 0)
	target := geom.V(20, 0)
	m := NewMoveToPoint(MoveParams{
		StartFunc:  func() geom.Vec2 { return pos },
		TargetFunc: func() geom.Vec2 { return target },
		Speed:      2,
	})

	m.Update()
	pos = pos.Add(m.Velocity())

	// Target jumps below us; the next velocity must point at the new spot.
	target = geom.V(2, 30)
	m.Update()
	if v := m.Velocity(); v.X != 0 || v.Y <= 0 {
		t.Errorf("velocity %v does not point at moved target", v)
	}
}

func TestMoveToPointStopFunc(t *testing.T) {
	stopped := false
	m := NewMoveToPoint(MoveParams{
		Start:  geom.V(0, 0),
		Target: geom.V(100, 100),
		Speed:  1,
		Stop:   func() bool { return stopped },
	})

	m.Update()
	if m.Done() {
		t.Fatal("done before stop signal")
	}
	stopped = true
	if !m.Done() {
		t.Error("expected done after stop signal")
	}
}

func TestMoveToPointLimit(t *testing.T) {
	m := NewMoveToPoint(MoveParams{
		Start:  geom.V(0, 0),
		Target: geom.V(1000, 0),
		Speed:  1,
		Limit:  3,
	})

	for i := 0; i < 3; i++ {
		m.Update()
	}
	if m.Done() {
		t.Fatal("done at limit, want done only after it")
	}
	m.Update()
	if !m.Done() {
		t.Error("expected done after tick limit")
	}
	if m.Elapsed() != 4 {
		t.Errorf("Elapsed() = %d, want 4", m.Elapsed())
	}
}

func TestTablePick(t *testing.T) {
	table := NewTable(
		Option[string]{Value: "wait", Weight: 1},
		Option[string]{Value: "never", Weight: 0},
		Option[string]{Value: "move", Weight: 3},
	)
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	rng := rand.New(rand.NewSource(1))
	counts := map[string]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		counts[table.Pick(rng)]++
	}

	if counts["never"] != 0 {
		t.Errorf("zero-weight option picked %d times", counts["never"])
	}
	frac := float64(counts["move"]) / n
	if math.Abs(frac-0.75) > 0.02 {
		t.Errorf("move fraction = %v, want ~0.75", frac)
	}
}

func TestTableEmpty(t *testing.T) {
	var table Table[int]
	if got := table.Pick(rand.New(rand.NewSource(1))); got != 0 {
		t.Errorf("empty Pick() = %d, want 0", got)
	}
}
