// Package camera maps the fixed-size aquarium onto a resizable window.
package camera

// Camera scales the logical screen uniformly into the window and centers it,
// leaving letterbox bars on the long axis.
type Camera struct {
	// Zoom is window pixels per logical unit
	Zoom float32

	// Offset of the logical origin in window pixels
	OffsetX, OffsetY float32

	// Viewport dimensions (window size)
	ViewportW, ViewportH float32

	// Logical screen dimensions
	WorldW, WorldH float32
}

// New creates a camera fitting a worldW x worldH screen into the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates viewport dimensions and refits the logical screen.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	c.Zoom = 1
	if c.WorldW > 0 && c.WorldH > 0 && viewportW > 0 && viewportH > 0 {
		c.Zoom = min(viewportW/c.WorldW, viewportH/c.WorldH)
	}
	c.OffsetX = (viewportW - c.WorldW*c.Zoom) / 2
	c.OffsetY = (viewportH - c.WorldH*c.Zoom) / 2
}

// WorldToScreen converts logical coordinates to window coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.OffsetX + wx*c.Zoom, c.OffsetY + wy*c.Zoom
}

// ScreenToWorld converts window coordinates to logical coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx - c.OffsetX) / c.Zoom, (sy - c.OffsetY) / c.Zoom
}

// InView reports whether a window point falls on the logical screen rather
// than on a letterbox bar.
func (c *Camera) InView(sx, sy float32) bool {
	wx, wy := c.ScreenToWorld(sx, sy)
	return wx >= 0 && wy >= 0 && wx < c.WorldW && wy < c.WorldH
}

// IsVisible returns true if a w x h box at (wx, wy) overlaps the logical
// screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, w, h float32) bool {
	return wx+w > 0 && wy+h > 0 && wx < c.WorldW && wy < c.WorldH
}
