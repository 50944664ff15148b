package workshop

import (
	"fmt"

	"github.com/ImTheSquid/shuriken-workshop/internal/core"
)

// Visual characters for rendering
const (
	TargetChar   = '█'
	ShurikenChar = '*'
	PaddleChar   = '='
	MarkerChar   = '▄'
)

// Minimum screen size for a legible arena
const (
	minScreenW = 40
	minScreenH = 12
)

// hudRows is the number of rows reserved above the arena box.
const hudRows = 1

// Render draws the current game state to the screen. The simulation runs
// in world units; rendering squeezes the arena into whatever cell grid is
// available, so a resize never disturbs the game itself.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	// Draw HUD
	g.renderHUD(dst)

	// Draw arena border
	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows), core.ColorDefault)

	pf := g.playfield(dst)
	g.renderTargets(dst, pf)
	g.renderHealth(dst, pf)
	g.renderPaddle(dst, pf)
	g.renderProjectiles(dst, pf)

	// Draw overlay messages
	g.renderOverlay(dst)
}

// renderHUD draws the blocked count, lives, and current spawn period.
func (g *Game) renderHUD(dst *core.Screen) {
	blockedText := fmt.Sprintf("Blocked: %d", g.blocked)
	dst.DrawText(1, 0, blockedText)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextCentered(0, livesText)

	periodText := fmt.Sprintf("Period: %dms", g.timer.Period.Milliseconds())
	dst.DrawText(dst.Width()-len(periodText)-1, 0, periodText)
}

// renderTargets draws the ninja columns.
func (g *Game) renderTargets(dst *core.Screen, pf core.Rect) {
	for _, id := range g.world.TargetIDs() {
		dst.DrawRect(g.cellRect(pf, g.targetRect(id)), TargetChar, core.ColorCyan)
	}
}

// renderHealth draws the markers for the remaining lives.
func (g *Game) renderHealth(dst *core.Screen, pf core.Rect) {
	for _, id := range g.world.HealthMarkerIDs() {
		if !g.HealthVisible(g.world.MarkerIndex(id)) {
			continue
		}
		pos := g.world.Position(id)
		r := core.RectFCenter(pos.X, pos.Y, g.cfg.Health.Width, g.cfg.Health.Height)
		dst.DrawRect(g.cellRect(pf, r), MarkerChar, core.ColorGreen)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, pf core.Rect) {
	dst.DrawRect(g.cellRect(pf, g.paddleRect()), PaddleChar, core.ColorBlue)
}

// renderProjectiles draws the shurikens, dim on the way up and bright on
// the way down when they become dangerous.
func (g *Game) renderProjectiles(dst *core.Screen, pf core.Rect) {
	for _, id := range g.world.ProjectileIDs() {
		pos := g.world.Position(id)
		x, y := g.worldToCell(pf, pos.X, pos.Y)

		color := core.ColorGray
		if Descending(g.world.velocities[id]) {
			color = core.ColorBrightWhite
		}
		dst.SetColored(x, y, ShurikenChar, color)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.gameOver:
		subtitle := fmt.Sprintf("You blocked %d shuriken(s)  |  Press R to restart", g.blocked)
		g.drawCenteredBox(dst, "GAME OVER!", core.ColorRed, subtitle)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", core.ColorYellow, "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title string, titleColor core.Color, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, titleColor)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// playfield returns the cell-space interior of the arena box.
func (g *Game) playfield(dst *core.Screen) core.Rect {
	return core.NewRect(1, hudRows+1, dst.Width()-2, dst.Height()-hudRows-2)
}

// worldToCell maps a world-space point to a cell inside the playfield.
// World y grows upward, screen y grows downward.
func (g *Game) worldToCell(pf core.Rect, x, y float64) (int, int) {
	a := g.cfg.Arena
	fx := (x - a.LeftWall) / (a.RightWall - a.LeftWall)
	fy := (a.TopWall - y) / (a.TopWall - a.BottomWall)

	sx := pf.X + int(fx*float64(pf.W))
	sy := pf.Y + int(fy*float64(pf.H))
	return core.Clamp(sx, pf.X, pf.Right()-1), core.Clamp(sy, pf.Y, pf.Bottom()-1)
}

// cellRect maps a world-space box to a cell rectangle, at least one cell
// in each dimension so thin shapes stay visible.
func (g *Game) cellRect(pf core.Rect, r core.RectF) core.Rect {
	x0, y0 := g.worldToCell(pf, r.X, r.Top())
	x1, y1 := g.worldToCell(pf, r.Right(), r.Y)
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}
