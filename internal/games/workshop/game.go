// Package workshop implements the Shuriken Workshop game.
// A row of ninjas along the workshop floor launches shurikens straight up;
// gravity brings each one back down, and the player slides a slotted
// paddle between the columns to block them before they strike the ninjas.
// Every block shortens the spawn period, every miss costs a life, and the
// session ends when the lives run out.
package workshop

import (
	"math/rand"
	"time"

	"github.com/ImTheSquid/shuriken-workshop/internal/config"
	"github.com/ImTheSquid/shuriken-workshop/internal/core"
	"github.com/ImTheSquid/shuriken-workshop/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p := config.DifficultyPreset(preset)
	if config.ValidPreset(p) {
		difficultyPreset = p
	} else {
		difficultyPreset = ""
	}
}

// Game implements the Shuriken Workshop game logic.
type Game struct {
	// Simulation state
	world *World
	timer SpawnTimer
	rng   *rand.Rand

	// Paddle state
	paddleSlot int
	debounced  bool

	// Session state
	blocked   int
	lives     int
	gameOver  bool
	paused    bool
	tickCount int

	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.Config
	tickStep time.Duration
}

// New creates a new Shuriken Workshop game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "workshop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shuriken Workshop"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickStep = time.Second / time.Duration(tickRate)

	g.world = NewWorld()
	g.placeTargets()
	g.placeHealthMarkers()

	g.paddleSlot = 0
	g.debounced = false
	g.blocked = 0
	g.lives = cfg.Rules.MaxLives
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	g.timer.Reset(BasePeriod(cfg.Spawn))
	g.rng = rand.New(rand.NewSource(runtime.Seed))
}

// placeTargets creates one ninja per column along the workshop floor.
func (g *Game) placeTargets() {
	y := g.cfg.Arena.BottomWall + g.cfg.Targets.Offset
	for i := range g.cfg.Targets.Count {
		g.world.Spawn(KindTarget, core.Vec2{X: g.SlotX(i), Y: y})
	}
}

// placeHealthMarkers creates one marker per life along the bottom edge.
// Markers use the same column mapping as the ninjas, scaled to the life
// count instead of the column count.
func (g *Game) placeHealthMarkers() {
	a := g.cfg.Arena
	n := float64(g.cfg.Rules.MaxLives)
	y := a.BottomWall + g.cfg.Health.Offset
	for i := range g.cfg.Rules.MaxLives {
		x := a.LeftWall + a.RightWall/n + 2*a.RightWall*float64(i)/n
		id := g.world.Spawn(KindHealthMarker, core.Vec2{X: x, Y: y})
		g.world.SetIndex(id, i)
	}
}

// HealthVisible reports whether the marker at the given index should be
// drawn. Markers vanish from the right as lives are lost: index i stays
// visible while at least i+1 lives remain.
func (g *Game) HealthVisible(index int) bool {
	return index < g.lives
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// A finished session never mutates again
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Fixed per-tick pipeline: move everything, resolve what the moves
	// produced, then run the spawn and paddle controllers.
	g.integrate()
	events := g.resolveCollisions()
	g.advanceSpawn()
	g.movePaddle(in)

	// Terminal check runs after the full pipeline, so the tick that
	// spends the last life still completes normally.
	if g.lives == 0 {
		g.gameOver = true
		events = append(events, core.Event{Kind: core.EventSessionEnded, Value: g.blocked})
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.blocked,
		Lives:    g.lives,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("workshop", func() registry.Game {
		return New()
	})
}
