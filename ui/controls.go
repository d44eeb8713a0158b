package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsState is what the controls panel reads and edits.
type ControlsState struct {
	Paused bool
	Steps  int
}

// ControlsPanel renders the raygui speed and pause controls plus the overlay legend.
type ControlsPanel struct {
	renderer *Renderer
	maxSteps int
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(maxSteps int) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		maxSteps: max(maxSteps, 1),
	}
}

// Draw renders the controls at (x, y) and returns the edited state and the Y below it.
func (c *ControlsPanel) Draw(x, y, width int32, state ControlsState, overlays *OverlayRegistry) (ControlsState, int32) {
	r := c.renderer
	pad := r.Theme.Padding
	inner := float32(width - 2*pad)
	fx, fy := float32(x+pad), float32(y+pad)

	rl.DrawText(fmt.Sprintf("Speed %dx", state.Steps), x+pad, int32(fy), r.Theme.FontSize, r.Theme.LabelColor)
	fy += float32(r.Theme.LineHeight)
	steps := gui.SliderBar(
		rl.Rectangle{X: fx + 12, Y: fy, Width: inner - 24, Height: 14},
		"1", fmt.Sprint(c.maxSteps),
		float32(state.Steps), 1, float32(c.maxSteps),
	)
	state.Steps = int(steps + 0.5)
	fy += 22

	label := "Pause"
	if state.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: fx, Y: fy, Width: inner, Height: 22}, label) {
		state.Paused = !state.Paused
	}
	fy += 30

	y = int32(fy)
	for _, desc := range overlays.All() {
		c.drawToggle(x+pad, y, desc, overlays.IsEnabled(desc.ID), width-2*pad)
		y += r.Theme.LineHeight
	}
	return state, y
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = rl.Color{R: 40, G: 160, B: 60, A: 255}
		nameColor = r.Theme.ValueColor
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.DarkGray)
	}
}
