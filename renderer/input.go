package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/geom"
)

// HandleInput polls the window and forwards input to g. Call once per frame
// before g.Update.
//
// A left-button release on the logical screen is a click. Right-click selects
// the fish under the cursor for inspection, or clears the selection.
func (r *Renderer) HandleInput(g *game.Game) {
	r.cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	raw := rl.GetMousePosition()
	wx, wy := r.cam.ScreenToWorld(raw.X, raw.Y)
	r.mouse = geom.V(float64(wx), float64(wy))
	inView := r.cam.InView(raw.X, raw.Y)

	if inView && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		g.Click(r.mouse)
	}

	if inView && rl.IsMouseButtonPressed(rl.MouseRightButton) {
		s := g.Scene()
		if e, ok := s.EntityAt(r.mouse, s.IsFish); ok {
			r.inspector.Select(e)
		} else {
			r.inspector.Deselect()
		}
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		switch key {
		case rl.KeySpace:
			g.TogglePause()
		case rl.KeyComma:
			g.SetStepsPerUpdate(g.StepsPerUpdate() - 1)
		case rl.KeyPeriod:
			g.SetStepsPerUpdate(g.StepsPerUpdate() + 1)
		default:
			if id, on, ok := r.overlays.HandleKeyPress(key); ok {
				slog.Debug("overlay toggled", "overlay", id, "enabled", on)
			}
		}
	}
}
