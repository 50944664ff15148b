package workshop

import (
	"math"
	"time"

	"github.com/ImTheSquid/shuriken-workshop/internal/config"
)

// SpawnTimer fires spawn events on an adaptive period. Firing clears the
// accumulator completely; a remainder is never carried into the next
// period.
type SpawnTimer struct {
	Period  time.Duration
	Elapsed time.Duration
}

// Advance accumulates one tick of duration dt and reports whether the
// timer fired. At most one fire per call, however large dt is.
func (t *SpawnTimer) Advance(dt time.Duration) bool {
	t.Elapsed += dt
	if t.Elapsed < t.Period {
		return false
	}
	t.Elapsed = 0
	return true
}

// Reset restores the given period and clears the accumulator.
func (t *SpawnTimer) Reset(period time.Duration) {
	t.Period = period
	t.Elapsed = 0
}

// Rescale sets the period for the current blocked-count and clears the
// accumulator. Called only when a block lands; hits never touch the timer.
func (t *SpawnTimer) Rescale(cfg config.SpawnConfig, blocked int) {
	t.Period = PeriodAfter(cfg, blocked)
	t.Elapsed = 0
}

// PeriodAfter returns the spawn period once blocked projectiles have
// accumulated: difficulty_base^(1/blocked) * base_period_ms. The exponent
// decays toward zero with every block, so the period shrinks toward the
// base and never reaches it. The formula is undefined at zero blocks;
// before the first block the period is exactly the base.
func PeriodAfter(cfg config.SpawnConfig, blocked int) time.Duration {
	if blocked < 1 {
		return BasePeriod(cfg)
	}
	ms := math.Pow(cfg.DifficultyBase, 1/float64(blocked)) * cfg.BasePeriodMs
	return time.Duration(ms * float64(time.Millisecond))
}

// BasePeriod returns the configured base spawn period as a duration.
func BasePeriod(cfg config.SpawnConfig) time.Duration {
	return time.Duration(cfg.BasePeriodMs * float64(time.Millisecond))
}

// advanceSpawn drives the timer by one tick and launches a shuriken when
// it fires.
func (g *Game) advanceSpawn() {
	if !g.timer.Advance(g.tickStep) {
		return
	}
	g.launch()
}

// launch creates exactly one projectile at a uniformly chosen target's
// position with the configured upward velocity.
func (g *Game) launch() {
	targets := g.world.TargetIDs()
	if len(targets) == 0 {
		// Config validation guarantees at least one column; reaching
		// this is a programming error, not a runtime condition.
		panic("workshop: no target columns to spawn from")
	}

	src := targets[g.rng.Intn(len(targets))]
	id := g.world.Spawn(KindProjectile, g.world.Position(src))
	g.world.SetVelocity(id, g.cfg.Physics.LaunchVelocity)
}
