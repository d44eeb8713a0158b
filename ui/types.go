// Package ui provides the side-panel HUD, debug overlays and styled widgets.
// Panels are described by field metadata so new readouts need no layout code.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText    WidgetType = iota // Plain text with format string
	WidgetBar                       // Progress bar over Range
	WidgetSection                   // Section header
	WidgetSpacer                    // Vertical spacing
)

// FieldRange defines the value range for bar widgets.
type FieldRange struct {
	Min float32
	Max float32
}

// DefaultRange returns a [0, 1] range.
func DefaultRange() FieldRange {
	return FieldRange{Min: 0, Max: 1}
}

// FieldDescriptor defines how to display a single piece of data.
type FieldDescriptor struct {
	Label      string            // Display label
	Widget     WidgetType        // How to render
	Format     string            // Printf format for text (e.g., "%.2f")
	Range      FieldRange        // Value range for bars
	Visible    func(any) bool    // Optional visibility check (nil = always visible)
	Getter     func(any) float32 // Value extractor (for numeric fields)
	TextGetter func(any) string  // Value extractor (for text fields)
}

// SectionDescriptor defines a group of fields with a header.
type SectionDescriptor struct {
	Title   string            // Section header text
	Fields  []FieldDescriptor // Fields in this section
	Visible func(any) bool    // Optional visibility check for entire section
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	ButtonIdle     rl.Color
	ButtonHover    rl.Color
	ButtonText     rl.Color
	ButtonBorder   float32
	ButtonFontSize int32
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 150, G: 150, B: 150, A: 255},
		PanelBorder:    rl.Color{R: 20, G: 20, B: 20, A: 255},
		SectionHeader:  rl.Color{R: 20, G: 20, B: 20, A: 255},
		LabelColor:     rl.Color{R: 50, G: 50, B: 50, A: 255},
		ValueColor:     rl.Black,
		BarBg:          rl.Color{R: 120, G: 120, B: 120, A: 255},
		BarFill:        rl.Color{R: 60, G: 110, B: 170, A: 255},
		ButtonIdle:     rl.Color{R: 150, G: 150, B: 150, A: 255},
		ButtonHover:    rl.Color{R: 170, G: 170, B: 170, A: 255},
		ButtonText:     rl.Black,
		ButtonBorder:   5,
		ButtonFontSize: 20,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     70,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
