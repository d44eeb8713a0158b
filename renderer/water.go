package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WaterSurface draws a slow shimmering band along the top of the tank, where
// bubbles pop.
type WaterSurface struct {
	width     float32
	depth     float32
	amplitude float32
	segments  int
	color     rl.Color
}

// NewWaterSurface creates a surface band width units wide and depth units deep.
func NewWaterSurface(width, depth float32) *WaterSurface {
	return &WaterSurface{
		width:     width,
		depth:     depth,
		amplitude: 3,
		segments:  48,
		color:     rl.Color{R: 200, G: 230, B: 255, A: 90},
	}
}

// height returns the band's lower edge at x for time t in seconds.
func (w *WaterSurface) height(x, t float32) float32 {
	phase := float64(x)/60 + float64(t)*1.5
	return w.depth + w.amplitude*float32(math.Sin(phase)+0.5*math.Sin(phase*2.3+1))
}

// Draw renders the band at time t.
func (w *WaterSurface) Draw(t float32) {
	if w.segments < 1 || w.width <= 0 {
		return
	}
	step := w.width / float32(w.segments)
	for i := 0; i < w.segments; i++ {
		x0 := float32(i) * step
		x1 := x0 + step
		h0, h1 := w.height(x0, t), w.height(x1, t)

		// Two triangles per segment, counter-clockwise
		rl.DrawTriangle(rl.Vector2{X: x0, Y: 0}, rl.Vector2{X: x0, Y: h0}, rl.Vector2{X: x1, Y: h1}, w.color)
		rl.DrawTriangle(rl.Vector2{X: x0, Y: 0}, rl.Vector2{X: x1, Y: h1}, rl.Vector2{X: x1, Y: 0}, w.color)
		rl.DrawLineEx(rl.Vector2{X: x0, Y: h0}, rl.Vector2{X: x1, Y: h1}, 1.5, rl.Fade(rl.White, 0.5))
	}
}
