package components

import "github.com/pthm-cable/aquarium/geom"

// Button is a clickable UI rectangle bound to a zero-argument callback.
type Button struct {
	Rect    geom.Rect
	Label   string
	OnClick func()
}

// Click invokes the callback if p lies strictly inside the button.
// Returns true when the click was consumed.
func (b *Button) Click(p geom.Vec2) bool {
	if !b.Rect.ContainsPoint(p) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}
