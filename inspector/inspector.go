package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/scene"
)

// Panel dimensions
const (
	PanelWidth   = 220
	PanelPadding = 10
	HeaderHeight = 26
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 230}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
	ColorHighlight   = rl.Color{R: 255, G: 220, B: 90, A: 255}
)

// Inspector tracks the selected fish and renders its components.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector whose panel sits at (x, y) in the tank.
func NewInspector(x, y int32) *Inspector {
	return &Inspector{panelX: x, panelY: y}
}

// Select makes e the inspected entity.
func (ins *Inspector) Select(e ecs.Entity) {
	ins.selected = e
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.selected = ecs.Entity{}
	ins.hasSelected = false
}

// Selected returns the inspected entity, if any.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Sections collects the inspectable components of the selection. A selection
// that has left the scene is dropped.
func (ins *Inspector) Sections(s *scene.Scene) []Section {
	if !ins.hasSelected {
		return nil
	}
	if !s.Alive(ins.selected) {
		ins.Deselect()
		return nil
	}

	var sections []Section
	add := func(title string, component any) {
		if fields := ExtractFields(component); len(fields) > 0 {
			sections = append(sections, Section{Title: title, Fields: fields})
		}
	}
	if tr := s.Transform(ins.selected); tr != nil {
		add("Transform", tr)
	}
	if f := s.Fish(ins.selected); f != nil {
		add("Fish", f)
		add("Bubbles", &f.Bubbles)
	}
	if sp := s.Sprite(ins.selected); sp != nil {
		add("Sprite", sp)
	}
	return sections
}

// Draw renders the panel for the selection and outlines it in the tank.
func (ins *Inspector) Draw(s *scene.Scene) {
	sections := ins.Sections(s)
	if sections == nil {
		return
	}

	if tr, sp := s.Transform(ins.selected), s.Sprite(ins.selected); tr != nil && sp != nil {
		rl.DrawRectangleLinesEx(rl.Rectangle{
			X: float32(tr.Pos.X), Y: float32(tr.Pos.Y),
			Width: float32(sp.Size.X), Height: float32(sp.Size.Y),
		}, 2, ColorHighlight)
	}

	height := int32(HeaderHeight + PanelPadding)
	for _, sec := range sections {
		height += 18 + int32(len(sec.Fields))*18
	}

	x, y := ins.panelX, ins.panelY
	rl.DrawRectangle(x, y, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLines(x, y, PanelWidth, height, ColorPanelBorder)
	rl.DrawRectangle(x, y, PanelWidth, HeaderHeight, ColorPanelHeader)

	kind, _ := s.Kind(ins.selected)
	rl.DrawText(fmt.Sprintf("%s #%d", kind, ins.selected.ID()), x+PanelPadding, y+6, 16, ColorHeaderText)

	y += HeaderHeight + 4
	for _, sec := range sections {
		rl.DrawText(sec.Title, x+PanelPadding, y, 14, ColorSectionText)
		y += 18
		for _, field := range sec.Fields {
			y += DrawField(x+PanelPadding, y, field)
		}
	}
}
