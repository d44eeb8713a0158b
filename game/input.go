package game

import "github.com/pthm-cable/aquarium/geom"

// Click records that a click happened at screen point p. The click is offered
// to the scene's buttons at the start of the next tick; a newer click before
// then replaces it.
func (g *Game) Click(p geom.Vec2) {
	g.click = p
	g.hasClick = true
}

// handleClick consumes the pending click, if any.
func (g *Game) handleClick() {
	if !g.hasClick {
		return
	}
	g.hasClick = false
	g.scene.Click(g.click)
}
