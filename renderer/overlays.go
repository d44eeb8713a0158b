package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/geom"
	"github.com/pthm-cable/aquarium/ui"
)

var (
	colliderColor  = rl.Color{R: 230, G: 60, B: 60, A: 200}
	detectionColor = rl.Color{R: 60, G: 160, B: 230, A: 120}
	chaseColor     = rl.Color{R: 250, G: 200, B: 40, A: 220}
)

// drawOverlays draws every enabled debug overlay over the tank.
func (r *Renderer) drawOverlays(g *game.Game) {
	s := g.Scene()
	colliders := r.overlays.IsEnabled(ui.OverlayColliders)
	detection := r.overlays.IsEnabled(ui.OverlayDetection)
	chase := r.overlays.IsEnabled(ui.OverlayChaseLines)
	tags := r.overlays.IsEnabled(ui.OverlayBehaviorTag)
	if !colliders && !detection && !chase && !tags {
		return
	}
	radius := float32(g.Config().Fish.DetectionRadius)

	s.Each(func(e ecs.Entity) {
		tr := s.Transform(e)
		if tr == nil {
			return
		}
		if colliders {
			if c := s.Collider(e); c != nil {
				rl.DrawRectangleLinesEx(rect(c.World(tr.Pos)), 1, colliderColor)
			}
		}

		f := s.Fish(e)
		if f == nil {
			return
		}
		mouth := vec(g.MouthPoint(e))
		if detection {
			rl.DrawCircleLinesV(mouth, radius, detectionColor)
		}
		if chase && f.Chasing && s.Alive(f.Target) {
			if target := s.Transform(f.Target); target != nil {
				rl.DrawLineEx(mouth, vec(target.Pos), 2, chaseColor)
				rl.DrawCircleV(vec(target.Pos), 3, chaseColor)
			}
		}
		if tags && f.Mode != "" {
			rl.DrawText(f.Mode, int32(tr.Pos.X), int32(tr.Pos.Y)-12, 10, rl.Black)
		}
	})
}

func vec(v geom.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

func rect(r geom.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}

// spriteRect is the screen rectangle an entity's sprite covers.
func spriteRect(tr *components.Transform, sp *components.Sprite) rl.Rectangle {
	return rect(geom.R(tr.Pos.X, tr.Pos.Y, sp.Size.X, sp.Size.Y))
}
