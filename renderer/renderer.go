package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/geom"
	"github.com/pthm-cable/aquarium/inspector"
	"github.com/pthm-cable/aquarium/ui"
)

const (
	maxStepsPerUpdate = 10
	hoverFade         = 0.15 // Seconds for a button highlight to settle
	hudWidth          = 170
	hudHeight         = 188
	panelBorder       = 4
	helpText          = "Space pause  ,/. speed  right-click inspect"
)

// Renderer owns the window-side state: the letterbox camera, loaded assets,
// panel widgets and debug overlays. The logical screen is the configured
// screen size; the window may be any size.
type Renderer struct {
	cfg    *config.Config
	cam    *camera.Camera
	assets *Assets

	ui        *ui.Renderer
	hud       *ui.HUD
	controls  *ui.ControlsPanel
	overlays  *ui.OverlayRegistry
	inspector *inspector.Inspector
	buttons   *ButtonAnimator
	water     *WaterSurface

	mouse   geom.Vec2 // Logical mouse position this frame
	elapsed float32
}

// New creates a renderer for cfg. Must be called after the window exists.
func New(cfg *config.Config) *Renderer {
	w, h := float32(cfg.Screen.Width), float32(cfg.Screen.Height)
	r := &Renderer{
		cfg:       cfg,
		cam:       camera.New(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()), w, h),
		assets:    NewAssets(cfg.Assets.Dir),
		ui:        ui.NewRenderer(),
		hud:       ui.NewHUD(),
		controls:  ui.NewControlsPanel(maxStepsPerUpdate),
		overlays:  ui.NewOverlayRegistry(),
		inspector: inspector.NewInspector(int32(cfg.Derived.TankW)-inspector.PanelWidth-10, 10),
		buttons:   NewButtonAnimator(hoverFade),
		water:     NewWaterSurface(float32(cfg.Derived.TankW), 10),
	}
	if font, ok := r.assets.Font(cfg.Assets.Font); ok {
		r.ui.Font = &font
	}
	r.assets.SetWindowIcon(cfg.Assets.Icon)
	return r
}

// Draw renders one frame of g.
func (r *Renderer) Draw(g *game.Game) {
	s := g.Scene()
	dt := rl.GetFrameTime()
	r.elapsed += dt

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	r.cam.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))

	rl.BeginMode2D(rl.Camera2D{
		Offset: rl.Vector2{X: r.cam.OffsetX, Y: r.cam.OffsetY},
		Zoom:   r.cam.Zoom,
	})
	rl.BeginScissorMode(int32(r.cam.OffsetX), int32(r.cam.OffsetY),
		int32(r.cam.WorldW*r.cam.Zoom), int32(r.cam.WorldH*r.cam.Zoom))

	rl.DrawRectangle(0, 0, int32(r.cfg.Screen.Width), int32(r.cfg.Screen.Height), rl.White)
	r.drawPanel()

	// Scene order is draw order
	s.Each(func(e ecs.Entity) {
		r.drawEntity(g, e, dt)
	})
	r.buttons.Prune(s.Alive)

	r.water.Draw(r.elapsed)
	r.drawOverlays(g)
	r.inspector.Draw(s)
	r.drawHUD(g)
	r.drawControls(g)

	r.hud.DrawHelp(10, int32(r.cfg.Screen.Height)-18, helpText)

	rl.EndScissorMode()
	rl.EndMode2D()
	rl.EndDrawing()
}

// drawPanel fills the button panel to the right of the tank.
func (r *Renderer) drawPanel() {
	x := float32(r.cfg.Derived.TankW)
	rec := rl.Rectangle{X: x, Y: 0, Width: float32(r.cfg.Aquarium.PanelWidth), Height: float32(r.cfg.Screen.Height)}
	rl.DrawRectangleRec(rec, r.ui.Theme.PanelBg)
	rl.DrawRectangleLinesEx(rec, panelBorder, r.ui.Theme.PanelBorder)
}

// drawEntity draws one entity by kind. Entities without a loaded texture fall
// back to a plain shape of the sprite's size.
func (r *Renderer) drawEntity(g *game.Game, e ecs.Entity, dt float32) {
	s := g.Scene()
	kind, ok := s.Kind(e)
	if !ok {
		return
	}

	if kind == components.KindButton {
		b := s.Button(e)
		if b == nil {
			return
		}
		hovered := b.Rect.ContainsPoint(r.mouse)
		r.ui.DrawButton(rect(b.Rect), b.Label, r.buttons.Update(e, hovered, dt))
		return
	}

	tr, sp := s.Transform(e), s.Sprite(e)
	if tr == nil || sp == nil {
		return
	}
	dest := spriteRect(tr, sp)
	if !r.cam.IsVisible(dest.X, dest.Y, dest.Width, dest.Height) {
		return
	}

	if tex, ok := r.assets.Texture(sp.Name); ok {
		src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
		if sp.FlipX {
			src.Width = -src.Width
		}
		if sp.FlipY {
			src.Height = -src.Height
		}
		rl.DrawTexturePro(tex, src, dest, rl.Vector2{}, 0, rl.White)
		return
	}

	switch kind {
	case components.KindDecoration:
		rl.DrawRectangleRec(dest, rl.Color{R: 120, G: 190, B: 230, A: 255})
	case components.KindFish:
		center := rl.Vector2{X: dest.X + dest.Width/2, Y: dest.Y + dest.Height/2}
		rl.DrawEllipse(int32(center.X), int32(center.Y), dest.Width/2, dest.Height/4, rl.Orange)
		tail := dest.X + dest.Width*0.1
		if sp.FlipX {
			tail = dest.X + dest.Width*0.9
		}
		rl.DrawCircleV(rl.Vector2{X: tail, Y: center.Y}, dest.Height/6, rl.Orange)
	case components.KindFood:
		rl.DrawCircleV(rl.Vector2{X: dest.X + dest.Width/2, Y: dest.Y + dest.Height/2}, dest.Width/3, rl.Brown)
	case components.KindBubble:
		rl.DrawCircleLinesV(rl.Vector2{X: dest.X + dest.Width/2, Y: dest.Y + dest.Height/2}, dest.Width/2, rl.SkyBlue)
	}
}

// drawHUD draws the census and timing readout in the tank's top-left corner.
func (r *Renderer) drawHUD(g *game.Game) {
	s := g.Scene()
	fish, food, bubbles := s.Counts()
	eaten := 0
	s.Each(func(e ecs.Entity) {
		if f := s.Fish(e); f != nil {
			eaten += f.Eaten
		}
	})

	rl.DrawRectangle(6, 6, hudWidth, hudHeight, rl.Fade(r.ui.Theme.PanelBg, 0.8))
	rl.DrawRectangleLines(6, 6, hudWidth, hudHeight, r.ui.Theme.PanelBorder)
	r.hud.Draw(6, 6, hudWidth, ui.HUDData{
		Fish:    fish,
		Food:    food,
		Bubbles: bubbles,
		Eaten:   eaten,
		Tick:    g.Tick(),
		Speed:   g.StepsPerUpdate(),
		FPS:     rl.GetFPS(),
		Paused:  g.Paused(),
		Perf:    g.PerfStats(),
	})
}

// drawControls draws the raygui controls below the buttons and applies any
// edits to the game. raygui reads the raw mouse, so the camera transform is
// applied to it for the duration.
func (r *Renderer) drawControls(g *game.Game) {
	top := int32(0)
	for _, b := range r.cfg.Buttons {
		top = max(top, int32(b.Rect[1]+b.Rect[3]))
	}

	rl.SetMouseOffset(-int(r.cam.OffsetX), -int(r.cam.OffsetY))
	rl.SetMouseScale(1/r.cam.Zoom, 1/r.cam.Zoom)
	state, _ := r.controls.Draw(int32(r.cfg.Derived.TankW), top+4, int32(r.cfg.Aquarium.PanelWidth), ui.ControlsState{
		Paused: g.Paused(),
		Steps:  g.StepsPerUpdate(),
	}, r.overlays)
	rl.SetMouseOffset(0, 0)
	rl.SetMouseScale(1, 1)

	if state.Paused != g.Paused() {
		g.TogglePause()
	}
	if state.Steps != g.StepsPerUpdate() {
		g.SetStepsPerUpdate(state.Steps)
	}
}

// Unload frees textures and fonts.
func (r *Renderer) Unload() {
	r.assets.Unload()
}

