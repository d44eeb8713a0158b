package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/geom"
)

// CreateFish adds a fish at a random point in the spawn area.
func (g *Game) CreateFish() ecs.Entity {
	cfg := g.cfg
	pos := geom.V(
		g.rng.Float64()*cfg.Fish.SpawnArea[0],
		g.rng.Float64()*cfg.Fish.SpawnArea[1],
	)
	return g.SpawnFish(pos)
}

// SpawnFish adds a fish at pos, facing right and with no behavior yet.
func (g *Game) SpawnFish(pos geom.Vec2) ecs.Entity {
	cfg := g.cfg
	size := cfg.Derived.FishSize

	e := g.scene.Create(components.KindFish,
		components.Transform{Pos: pos},
		components.Sprite{Name: cfg.Assets.Sprites.Fish, Size: size},
	)
	g.scene.AttachCollider(e, components.Collider{Local: geom.R(0, 0, size.X, size.Y)})
	g.scene.AttachFish(e, components.Fish{
		FacingRight: true,
		Bubbles: components.NewBubbleMaker(g.rng, cfg.Fish.BubblePeriod, func() geom.Vec2 {
			return g.MouthPoint(e)
		}),
	})
	g.scene.Add(e)

	g.collector.RecordFishAdded()
	slog.Debug("fish created", "entity", e.ID(), "x", pos.X, "y", pos.Y)
	return e
}

// CreateFood drops a pellet at a random x along the surface.
func (g *Game) CreateFood() ecs.Entity {
	x := g.rng.Float64() * g.cfg.Food.SpawnWidth
	return g.SpawnFood(geom.V(x, 0))
}

// SpawnFood drops a pellet at pos with a random sprite orientation.
func (g *Game) SpawnFood(pos geom.Vec2) ecs.Entity {
	cfg := g.cfg
	size := cfg.Derived.FoodSize

	e := g.scene.Create(components.KindFood,
		components.Transform{Pos: pos, Vel: geom.V(0, cfg.Food.SinkSpeed)},
		components.Sprite{
			Name:  cfg.Assets.Sprites.Food,
			Size:  size,
			FlipX: g.rng.Intn(2) == 1,
			FlipY: g.rng.Intn(2) == 1,
		},
	)
	g.scene.AttachCollider(e, components.Collider{Local: geom.R(0, 0, size.X, size.Y)})
	g.scene.AttachFood(e, components.Food{})
	g.scene.Add(e)

	if cfg.Audio.Enabled && cfg.Audio.Splash != "" {
		g.sound.Play(cfg.Audio.Splash)
	}
	g.collector.RecordFoodSpawned()
	return e
}

// spawnBubble adds a bubble at p.
func (g *Game) spawnBubble(p geom.Vec2) ecs.Entity {
	cfg := g.cfg
	e := g.scene.Create(components.KindBubble,
		components.Transform{Pos: p, Vel: geom.V(0, -cfg.Bubble.RiseSpeed)},
		components.Sprite{Name: cfg.Assets.Sprites.Bubble, Size: cfg.Derived.BubbleSize},
	)
	g.scene.AttachBubble(e)
	g.scene.Add(e)

	g.collector.RecordBubbleSpawned()
	return e
}

// createBackground adds the tank backdrop.
func (g *Game) createBackground() ecs.Entity {
	cfg := g.cfg
	off := cfg.Aquarium.BackgroundOffset
	e := g.scene.Create(components.KindDecoration,
		components.Transform{Pos: geom.V(off[0], off[1])},
		components.Sprite{
			Name: cfg.Assets.Sprites.Background,
			Size: geom.V(cfg.Derived.TankW, cfg.Derived.TankH-off[1]),
		},
	)
	g.scene.AttachDecoration(e)
	g.scene.Add(e)
	return e
}

// addButton adds a panel button bound to its configured action.
func (g *Game) addButton(b config.ButtonConfig) ecs.Entity {
	rect := geom.R(b.Rect[0], b.Rect[1], b.Rect[2], b.Rect[3])
	e := g.scene.Create(components.KindButton,
		components.Transform{Pos: geom.V(rect.X, rect.Y)},
		components.Sprite{Size: geom.V(rect.W, rect.H)},
	)
	g.scene.AttachButton(e, components.Button{
		Rect:    rect,
		Label:   b.Label,
		OnClick: g.action(b.Action),
	})
	g.scene.Add(e)
	return e
}

// action maps a configured button action to its factory.
func (g *Game) action(name string) func() {
	switch name {
	case config.ActionAddFish:
		return func() { g.CreateFish() }
	case config.ActionFeedFish:
		return func() { g.CreateFood() }
	}
	slog.Warn("unknown button action", "action", name)
	return nil
}
