package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/telemetry"
)

// HUDData holds all the data needed to render the side-panel readout.
type HUDData struct {
	Fish    int
	Food    int
	Bubbles int
	Eaten   int
	Tick    int32
	Speed   int
	FPS     int32
	Paused  bool
	Perf    telemetry.PerfStats
}

// HUD renders the tank readout in the side panel.
type HUD struct {
	renderer *Renderer
	sections []SectionDescriptor
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		sections: hudSections(),
	}
}

func hudData(data any) HUDData {
	d, _ := data.(HUDData)
	return d
}

// hudSections describes the readout: tank census, then timing.
func hudSections() []SectionDescriptor {
	count := func(label string, get func(HUDData) int) FieldDescriptor {
		return FieldDescriptor{
			Label:  label,
			Widget: WidgetText,
			Format: "%.0f",
			Getter: func(data any) float32 { return float32(get(hudData(data))) },
		}
	}
	return []SectionDescriptor{
		{
			Title: "Tank",
			Fields: []FieldDescriptor{
				count("Fish", func(d HUDData) int { return d.Fish }),
				count("Food", func(d HUDData) int { return d.Food }),
				count("Bubbles", func(d HUDData) int { return d.Bubbles }),
				count("Eaten", func(d HUDData) int { return d.Eaten }),
			},
		},
		{
			Title: "Sim",
			Fields: []FieldDescriptor{
				{
					Label:  "Tick",
					Widget: WidgetText,
					TextGetter: func(data any) string {
						d := hudData(data)
						if d.Paused {
							return fmt.Sprintf("%d (paused)", d.Tick)
						}
						return fmt.Sprintf("%d", d.Tick)
					},
				},
				{
					Label:  "Speed",
					Widget: WidgetText,
					TextGetter: func(data any) string {
						d := hudData(data)
						return fmt.Sprintf("%dx @ %d fps", d.Speed, d.FPS)
					},
				},
				{
					Label:  "Update",
					Widget: WidgetBar,
					Range:  FieldRange{Min: 0, Max: 100},
					Getter: func(data any) float32 {
						return float32(hudData(data).Perf.UpdatePct())
					},
					Visible: func(data any) bool { return hudData(data).Perf.AvgTickDuration > 0 },
				},
				{
					Label:  "Fish",
					Widget: WidgetBar,
					Range:  FieldRange{Min: 0, Max: 100},
					Getter: func(data any) float32 {
						return float32(hudData(data).Perf.PhasePct[telemetry.PhaseFish])
					},
					Visible: func(data any) bool { return hudData(data).Perf.AvgTickDuration > 0 },
				},
			},
		},
	}
}

// Draw renders the HUD at (x, y) and returns the Y below it.
func (h *HUD) Draw(x, y, width int32, data HUDData) int32 {
	r := h.renderer
	pad := r.Theme.Padding
	y += pad
	for _, sd := range h.sections {
		y = r.DrawSection(x+pad, y, sd, data, width-2*pad)
	}
	return y
}

// DrawHelp renders the key legend.
func (h *HUD) DrawHelp(x, y int32, text string) {
	rl.DrawText(text, x, y, h.renderer.Theme.FontSize, rl.Fade(rl.Black, 0.6))
}
