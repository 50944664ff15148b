package workshop

// Descending reports a projectile's visual phase: true once its velocity
// has gone negative. A pure function of the sign, recomputed wherever it
// is needed, never stored.
func Descending(v float64) bool {
	return v < 0
}

// integrate advances every projectile by one tick: position by the
// current velocity, then velocity by gravity. Velocities are in world
// units per tick, so no time scaling appears here.
func (g *Game) integrate() {
	floor := g.cullFloor()
	var fallen []EntityID

	for _, id := range g.world.ProjectileIDs() {
		pos := g.world.positions[id]
		pos.Y += g.world.velocities[id]
		g.world.positions[id] = pos
		g.world.velocities[id] -= g.cfg.Physics.Gravity

		if pos.Y < floor {
			fallen = append(fallen, id)
		}
	}

	for _, id := range fallen {
		g.world.Destroy(id)
	}
}

// cullFloor returns the despawn bound: two arena heights below the bottom
// wall. A shuriken falling from any reachable apex crosses the ninja row
// long before this, so the bound only keeps the live set finite under
// pathological overrides.
func (g *Game) cullFloor() float64 {
	height := g.cfg.Arena.TopWall - g.cfg.Arena.BottomWall
	return g.cfg.Arena.BottomWall - 2*height
}
