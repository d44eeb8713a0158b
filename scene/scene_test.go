package scene

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/geom"
)

func spawn(s *Scene, kind components.Kind, pos geom.Vec2) ecs.Entity {
	e := s.Create(kind, components.Transform{Pos: pos}, components.Sprite{Size: geom.V(10, 10)})
	s.Add(e)
	return e
}

func spawnFood(s *Scene, pos geom.Vec2) ecs.Entity {
	e := s.Create(components.KindFood, components.Transform{Pos: pos}, components.Sprite{})
	s.AttachFood(e, components.Food{})
	s.Add(e)
	return e
}

func TestRemovalDuringPassVisitsSiblingsOnce(t *testing.T) {
	const n = 6
	for k := 0; k < n; k++ {
		s := New()
		entities := make([]ecs.Entity, n)
		for i := range entities {
			entities[i] = spawn(s, components.KindDecoration, geom.V(float64(i), 0))
		}

		visits := map[ecs.Entity]int{}
		s.UpdateAll(func(e ecs.Entity) {
			visits[e]++
			if e == entities[k] {
				s.Remove(e)
			}
		})

		for i, e := range entities {
			if visits[e] != 1 {
				t.Errorf("k=%d: entity %d visited %d times", k, i, visits[e])
			}
		}
		if s.Len() != n-1 {
			t.Errorf("k=%d: Len() = %d, want %d", k, s.Len(), n-1)
		}
		if s.Alive(entities[k]) {
			t.Errorf("k=%d: removed entity still alive", k)
		}
	}
}

func TestRemovalOfLaterSiblingSkipsIt(t *testing.T) {
	s := New()
	a := spawn(s, components.KindDecoration, geom.V(0, 0))
	b := spawn(s, components.KindDecoration, geom.V(1, 0))
	c := spawn(s, components.KindDecoration, geom.V(2, 0))

	var visited []ecs.Entity
	s.UpdateAll(func(e ecs.Entity) {
		visited = append(visited, e)
		if e == a {
			s.Remove(b)
		}
	})

	if len(visited) != 2 || visited[0] != a || visited[1] != c {
		t.Errorf("visited %v, want [a c]", visited)
	}
}

func TestAddDuringPassWaitsForNextPass(t *testing.T) {
	s := New()
	first := spawn(s, components.KindDecoration, geom.V(0, 0))

	var added ecs.Entity
	visits := 0
	s.UpdateAll(func(e ecs.Entity) {
		visits++
		if e == first {
			added = spawn(s, components.KindBubble, geom.V(5, 5))
		}
	})
	if visits != 1 {
		t.Fatalf("first pass visited %d entities, want 1", visits)
	}
	if !s.Alive(added) {
		t.Fatal("entity added during pass is not live")
	}

	var second []ecs.Entity
	s.UpdateAll(func(e ecs.Entity) { second = append(second, e) })
	if len(second) != 2 || second[1] != added {
		t.Errorf("second pass visited %v, want added entity last", second)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := New()
	a := spawn(s, components.KindDecoration, geom.V(0, 0))
	s.Remove(a)
	s.Remove(a)
	s.Remove(ecs.Entity{})
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestAddIsIdempotent(t *testing.T) {
	s := New()
	a := spawn(s, components.KindDecoration, geom.V(0, 0))
	s.Add(a)

	count := 0
	s.Each(func(ecs.Entity) { count++ })
	if count != 1 {
		t.Errorf("entity registered %d times", count)
	}
}

func TestQueryNearbyFoodRadius(t *testing.T) {
	s := New()
	mouth := geom.V(100, 100)

	inside := spawnFood(s, geom.V(299.9, 100))
	boundary := spawnFood(s, geom.V(300, 100))
	far := spawnFood(s, geom.V(100, 400))
	near := spawnFood(s, geom.V(100, 150))

	got := s.QueryNearbyFood(mouth, 200)
	if len(got) != 2 || got[0] != inside || got[1] != near {
		t.Errorf("QueryNearbyFood = %v, want [inside near] in scene order", got)
	}
	for _, e := range got {
		if e == boundary || e == far {
			t.Errorf("query included %v", e)
		}
	}
}

func TestQueryNearbyFoodSkipsDeadAndRemoved(t *testing.T) {
	s := New()
	dead := spawnFood(s, geom.V(10, 0))
	s.Food(dead).Dead = true
	removed := spawnFood(s, geom.V(20, 0))
	s.Remove(removed)

	if got := s.QueryNearbyFood(geom.V(0, 0), 200); len(got) != 0 {
		t.Errorf("QueryNearbyFood = %v, want empty", got)
	}
}

func TestCollides(t *testing.T) {
	s := New()
	a := spawn(s, components.KindFish, geom.V(0, 0))
	b := spawn(s, components.KindFish, geom.V(10, 0))
	c := spawn(s, components.KindFish, geom.V(5, 5))
	for _, e := range []ecs.Entity{a, b, c} {
		s.AttachCollider(e, components.Collider{Local: geom.R(0, 0, 10, 10)})
	}
	plain := spawn(s, components.KindDecoration, geom.V(0, 0))

	if s.Collides(a, b) {
		t.Error("edge-touching colliders reported as colliding")
	}
	if !s.Collides(a, c) {
		t.Error("overlapping colliders not reported")
	}
	if s.Collides(a, plain) {
		t.Error("entity without collider reported as colliding")
	}
}

func TestClickStopsAtFirstConsumer(t *testing.T) {
	s := New()
	var calls []string
	for _, name := range []string{"first", "second"} {
		e := s.Create(components.KindButton, components.Transform{}, components.Sprite{})
		s.AttachButton(e, components.Button{
			Rect:    geom.R(10, 10, 50, 20),
			Label:   name,
			OnClick: func() { calls = append(calls, name) },
		})
		s.Add(e)
	}

	if s.Click(geom.V(5, 5)) {
		t.Error("click outside all buttons was consumed")
	}
	if !s.Click(geom.V(30, 20)) {
		t.Error("click inside button was not consumed")
	}
	if len(calls) != 1 || calls[0] != "first" {
		t.Errorf("calls = %v, want [first]", calls)
	}
}

func TestEntityAtPrefersTopmost(t *testing.T) {
	s := New()
	bottom := spawn(s, components.KindFish, geom.V(0, 0))
	top := spawn(s, components.KindFish, geom.V(5, 5))

	got, ok := s.EntityAt(geom.V(7, 7), nil)
	if !ok || got != top {
		t.Errorf("EntityAt = %v, want top", got)
	}
	got, ok = s.EntityAt(geom.V(2, 2), nil)
	if !ok || got != bottom {
		t.Errorf("EntityAt = %v, want bottom", got)
	}
	if _, ok := s.EntityAt(geom.V(50, 50), nil); ok {
		t.Error("EntityAt found an entity in empty space")
	}
}
