package workshop

import (
	"math"
	"time"

	"github.com/ImTheSquid/shuriken-workshop/internal/core"
)

// Snapshot contains the complete session state for replay/save.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	PaddleSlot int
	Debounced  bool
	Blocked    int
	Lives      int
	GameOver   bool
	Paused     bool

	// Spawn timer state in nanoseconds
	PeriodNs  int64
	ElapsedNs int64

	// Identifier allocator position
	NextID int

	// Live projectiles in identifier order
	ProjectileCount int
	Projectiles     []ProjectileState
}

// ProjectileState captures one live shuriken.
type ProjectileState struct {
	ID int
	X  float64
	Y  float64
	VY float64
}

// Snapshot returns the current session state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ids := g.world.ProjectileIDs()
	projectiles := make([]ProjectileState, len(ids))
	for i, id := range ids {
		pos := g.world.Position(id)
		projectiles[i] = ProjectileState{
			ID: int(id),
			X:  pos.X,
			Y:  pos.Y,
			VY: g.world.velocities[id],
		}
	}

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleSlot:      g.paddleSlot,
		Debounced:       g.debounced,
		Blocked:         g.blocked,
		Lives:           g.lives,
		GameOver:        g.gameOver,
		Paused:          g.paused,
		PeriodNs:        int64(g.timer.Period),
		ElapsedNs:       int64(g.timer.Elapsed),
		NextID:          int(g.world.nextID),
		ProjectileCount: len(projectiles),
		Projectiles:     projectiles,
	}
}

// ApplySnapshot restores session state from a snapshot. The receiver must
// have been Reset first so the arena, ninjas, and markers exist. The RNG
// stream is not captured; a restored session continues with the live
// generator.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.paddleSlot = snap.PaddleSlot
	g.debounced = snap.Debounced
	g.blocked = snap.Blocked
	g.lives = snap.Lives
	g.gameOver = snap.GameOver
	g.paused = snap.Paused

	g.timer.Period = time.Duration(snap.PeriodNs)
	g.timer.Elapsed = time.Duration(snap.ElapsedNs)

	// Replace the live projectile set with the snapshot's
	for _, id := range g.world.ProjectileIDs() {
		g.world.Destroy(id)
	}
	for _, p := range snap.Projectiles {
		id := EntityID(p.ID)
		g.world.Restore(id, KindProjectile, core.Vec2{X: p.X, Y: p.Y})
		g.world.SetVelocity(id, p.VY)
	}
	if next := EntityID(snap.NextID); next > g.world.nextID {
		g.world.nextID = next
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleSlot) //#nosec G115 -- hash computation
	h = h*31 + flag(snap.Debounced)
	h = h*31 + uint64(snap.Blocked) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + flag(snap.GameOver)
	h = h*31 + flag(snap.Paused)
	h = h*31 + uint64(snap.PeriodNs)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ElapsedNs)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextID)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation

	for _, p := range snap.Projectiles {
		h = h*31 + uint64(p.ID) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
		h = h*31 + math.Float64bits(p.VY)
	}

	return h
}

func flag(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
