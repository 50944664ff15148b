package workshop

import (
	"github.com/ImTheSquid/shuriken-workshop/internal/core"
)

// resolveCollisions tests every descending projectile against the paddle
// first, then the ninja columns in creation order. A block destroys the
// projectile, counts it, and rescales the spawn timer. A projectile that
// slips past the paddle hits the first overlapping ninja only; later
// columns are not consulted once a hit lands. Ascending projectiles are
// exempt, so a freshly launched shuriken passes out through its own
// column unharmed.
func (g *Game) resolveCollisions() []core.Event {
	var events []core.Event
	paddle := g.paddleRect()

	for _, id := range g.world.ProjectileIDs() {
		if !Descending(g.world.velocities[id]) {
			continue
		}
		shuriken := g.projectileRect(id)

		if shuriken.Intersects(paddle) {
			g.world.Destroy(id)
			g.blocked++
			g.timer.Rescale(g.cfg.Spawn, g.blocked)
			events = append(events, core.Event{Kind: core.EventBlocked, Value: g.blocked})
			continue
		}

		for _, tid := range g.world.TargetIDs() {
			if shuriken.Intersects(g.targetRect(tid)) {
				g.world.Destroy(id)
				if g.lives > 0 {
					g.lives--
				}
				events = append(events, core.Event{Kind: core.EventLifeLost, Value: g.lives})
				break
			}
		}
	}

	return events
}

// projectileRect returns a projectile's box at its current position.
func (g *Game) projectileRect(id EntityID) core.RectF {
	pos := g.world.Position(id)
	return core.RectFCenter(pos.X, pos.Y, g.cfg.Projectile.Width, g.cfg.Projectile.Height)
}

// targetRect returns a ninja's box.
func (g *Game) targetRect(id EntityID) core.RectF {
	pos := g.world.Position(id)
	return core.RectFCenter(pos.X, pos.Y, g.cfg.Targets.Width, g.cfg.Targets.Height)
}
