package workshop

import (
	"testing"
	"time"

	"github.com/ImTheSquid/shuriken-workshop/internal/core"
)

func TestPaddleBlocksDescendingShuriken(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)

	id := g.world.Spawn(KindProjectile, core.Vec2{X: g.SlotX(0), Y: g.cfg.Paddle.Y})
	g.world.SetVelocity(id, -5)

	events := g.resolveCollisions()

	if g.blocked != 1 {
		t.Errorf("Block should increment the counter, got %d", g.blocked)
	}
	if g.world.ProjectileCount() != 0 {
		t.Error("Blocked shuriken should be destroyed")
	}
	if g.timer.Period != 1650*time.Millisecond {
		t.Errorf("First block should rescale the period to 1650ms, got %v", g.timer.Period)
	}
	if g.timer.Elapsed != 0 {
		t.Errorf("Rescale should restart the accumulator, got %v", g.timer.Elapsed)
	}
	if len(events) != 1 || events[0].Kind != core.EventBlocked || events[0].Value != 1 {
		t.Errorf("Expected a single block event with count 1, got %+v", events)
	}
}

func TestRisingShurikenPassesThroughPaddle(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"rising", 5},
		{"apex", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := core.RuntimeConfig{
				ScreenW:  80,
				ScreenH:  24,
				TickRate: 60,
				Seed:     1,
			}

			g := New()
			g.Reset(cfg)

			id := g.world.Spawn(KindProjectile, core.Vec2{X: g.SlotX(0), Y: g.cfg.Paddle.Y})
			g.world.SetVelocity(id, tt.v)

			events := g.resolveCollisions()

			if len(events) != 0 {
				t.Errorf("A non-descending shuriken should collide with nothing, got %+v", events)
			}
			if g.world.ProjectileCount() != 1 {
				t.Error("A non-descending shuriken should survive the paddle overlap")
			}
			if g.blocked != 0 {
				t.Errorf("Blocked count should stay zero, got %d", g.blocked)
			}
		})
	}
}

func TestPaddleWinsOverNinja(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)

	// Drop the paddle onto the ninja row so one shuriken overlaps both
	ninja := g.world.TargetIDs()[0]
	g.cfg.Paddle.Y = g.world.Position(ninja).Y

	id := g.world.Spawn(KindProjectile, g.world.Position(ninja))
	g.world.SetVelocity(id, -5)

	events := g.resolveCollisions()

	if g.blocked != 1 {
		t.Errorf("The paddle should claim the shuriken, blocked=%d", g.blocked)
	}
	if g.lives != g.cfg.Rules.MaxLives {
		t.Errorf("No life should be lost when the paddle blocks, lives=%d", g.lives)
	}
	if len(events) != 1 || events[0].Kind != core.EventBlocked {
		t.Errorf("Expected only a block event, got %+v", events)
	}
}

func TestNinjaHitCostsLife(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)

	// Paddle sits at slot 0; drop on the middle column instead
	ninja := g.world.TargetIDs()[2]
	id := g.world.Spawn(KindProjectile, g.world.Position(ninja))
	g.world.SetVelocity(id, -5)

	g.timer.Elapsed = 700 * time.Millisecond

	events := g.resolveCollisions()

	if g.lives != 2 {
		t.Errorf("Hit should cost one life, got %d", g.lives)
	}
	if g.world.ProjectileCount() != 0 {
		t.Error("The shuriken is spent on the ninja")
	}
	if g.blocked != 0 {
		t.Errorf("A hit is not a block, blocked=%d", g.blocked)
	}
	if g.timer.Period != 1500*time.Millisecond || g.timer.Elapsed != 700*time.Millisecond {
		t.Errorf("A hit must not touch the spawn timer, period=%v elapsed=%v", g.timer.Period, g.timer.Elapsed)
	}
	if len(events) != 1 || events[0].Kind != core.EventLifeLost || events[0].Value != 2 {
		t.Errorf("Expected a single life-lost event with 2 lives left, got %+v", events)
	}
}

func TestOneHitPerShuriken(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)

	// Widen the shuriken so it overlaps two ninjas at once
	g.cfg.Projectile.Width = 400

	ninjaY := g.world.Position(g.world.TargetIDs()[0]).Y
	midX := (g.SlotX(0) + g.SlotX(1)) / 2
	id := g.world.Spawn(KindProjectile, core.Vec2{X: midX, Y: ninjaY})
	g.world.SetVelocity(id, -5)

	events := g.resolveCollisions()

	if g.lives != g.cfg.Rules.MaxLives-1 {
		t.Errorf("A shuriken spends itself on the first ninja only, lives=%d", g.lives)
	}
	if len(events) != 1 {
		t.Errorf("Expected exactly one event, got %+v", events)
	}
}

func TestLivesFloorAtZero(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	g.lives = 0

	ninja := g.world.TargetIDs()[2]
	id := g.world.Spawn(KindProjectile, g.world.Position(ninja))
	g.world.SetVelocity(id, -5)

	events := g.resolveCollisions()

	if g.lives != 0 {
		t.Errorf("Lives must never go negative, got %d", g.lives)
	}
	if len(events) != 1 || events[0].Kind != core.EventLifeLost || events[0].Value != 0 {
		t.Errorf("Expected a life-lost event at zero lives, got %+v", events)
	}
}

func TestMissedShurikenKeepsFalling(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)

	// Mid-air over the middle column: below the paddle, above the ninjas
	id := g.world.Spawn(KindProjectile, core.Vec2{X: 0, Y: -100})
	g.world.SetVelocity(id, -5)

	events := g.resolveCollisions()

	if len(events) != 0 {
		t.Errorf("Nothing should happen in open air, got %+v", events)
	}
	if g.world.ProjectileCount() != 1 {
		t.Error("The shuriken should keep falling")
	}
}

func TestEveryBlockTightensTheTimer(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}

	g := New()
	g.Reset(cfg)
	base := BasePeriod(g.cfg.Spawn)

	id := g.world.Spawn(KindProjectile, core.Vec2{X: g.SlotX(0), Y: g.cfg.Paddle.Y})
	g.world.SetVelocity(id, -5)
	g.resolveCollisions()
	first := g.timer.Period

	id = g.world.Spawn(KindProjectile, core.Vec2{X: g.SlotX(0), Y: g.cfg.Paddle.Y})
	g.world.SetVelocity(id, -5)
	g.resolveCollisions()
	second := g.timer.Period

	if g.blocked != 2 {
		t.Fatalf("Expected two blocks, got %d", g.blocked)
	}
	if first != 1650*time.Millisecond {
		t.Errorf("First block should set 1650ms, got %v", first)
	}
	if second >= first || second <= base {
		t.Errorf("Second block should land between the base and the first period, got %v", second)
	}
}
