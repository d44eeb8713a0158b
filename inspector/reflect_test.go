package inspector

import (
	"testing"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/geom"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag     string
		widget  Widget
		options map[string]string
	}{
		{"", WidgetAuto, nil},
		{"label", WidgetLabel, nil},
		{"label,fmt:%.1f", WidgetLabel, map[string]string{"fmt": "%.1f"}},
		{"bool", WidgetBool, nil},
		{"skip", WidgetSkip, nil},
		{"mystery", WidgetAuto, nil},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			widget, options := ParseTag(tt.tag)
			if widget != tt.widget {
				t.Errorf("widget = %v, want %v", widget, tt.widget)
			}
			for k, v := range tt.options {
				if options[k] != v {
					t.Errorf("option %s = %q, want %q", k, options[k], v)
				}
			}
		})
	}
}

func TestExtractFieldsFish(t *testing.T) {
	f := &components.Fish{Mode: "feed", FacingRight: true, Chasing: true, Eaten: 3}
	fields := ExtractFields(f)

	byName := map[string]Field{}
	for _, field := range fields {
		byName[field.Name] = field
	}

	for _, hidden := range []string{"Behavior", "Target", "Bubbles"} {
		if _, ok := byName[hidden]; ok {
			t.Errorf("field %s should be skipped", hidden)
		}
	}
	if byName["Mode"].Value != "feed" {
		t.Errorf("Mode = %v", byName["Mode"].Value)
	}
	if byName["Chasing"].Widget != WidgetBool {
		t.Errorf("Chasing widget = %v, want bool", byName["Chasing"].Widget)
	}
	if byName["Eaten"].Value != 3 {
		t.Errorf("Eaten = %v", byName["Eaten"].Value)
	}
}

func TestExtractFieldsSkipsFuncs(t *testing.T) {
	bm := &components.BubbleMaker{Time: 5, Period: 280, Source: func() geom.Vec2 { return geom.Vec2{} }}
	for _, field := range ExtractFields(bm) {
		if field.Name == "Source" {
			t.Error("func field was extracted")
		}
	}
}

func TestExtractFieldsNonStruct(t *testing.T) {
	if ExtractFields(42) != nil {
		t.Error("expected nil for non-struct")
	}
	var tr *components.Transform
	if ExtractFields(tr) != nil {
		t.Error("expected nil for nil pointer")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		fmt   string
		want  string
	}{
		{geom.V(1.26, 40), "%.1f", "(1.3, 40.0)"},
		{geom.V(1, 2), "", "(1.00, 2.00)"},
		{0.5, "", "0.50"},
		{7, "", "7"},
		{"wait", "", "wait"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.value, tt.fmt); got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.value, tt.fmt, got, tt.want)
		}
	}
}
