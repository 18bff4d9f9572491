// Package game implements the Star Blitz simulation: a fixed-tick top-down
// wave shooter built on a small entity store and a synchronous event bus.
// The package contains pure logic with no platform dependencies; the TUI
// layer handles input mapping, timing, and terminal output.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-starblitz/internal/config"
	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
	"github.com/vovakirdan/tui-starblitz/internal/events"
	"github.com/vovakirdan/tui-starblitz/internal/registry"
)

// Game wires the simulation systems together and drives them in a fixed
// per-tick order. It implements registry.Game.
type Game struct {
	rt     core.RuntimeConfig
	cfg    config.ShooterConfig
	bounds Bounds

	world *ecs.World
	bus   *events.Bus
	rng   *rand.Rand
	tick  uint64

	session   *SessionMachine
	player    *PlayerSystem
	ai        *AISystem
	weapons   *WeaponSystem
	movement  *MovementSystem
	collision *CollisionSystem
	damage    *DamageSystem
	powerups  *PowerUpSystem
	waves     *WaveDirector
	score     *ScoreSystem

	highScore int
}

// New creates a new Star Blitz instance with the given gameplay config.
func New(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "starblitz"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Blitz"
}

// Bus exposes the event bus so the platform layer can listen for
// simulation events (explosions, pickups, state changes). The bus is
// rebuilt on Reset; subscribe after calling Reset.
func (g *Game) Bus() *events.Bus {
	return g.bus
}

// SetHighScore seeds the best-score display, typically from storage.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// HighScore returns the best score seen this process, including the
// seeded value.
func (g *Game) HighScore() int {
	return g.highScore
}

// Reset builds a fresh simulation in the menu state. All systems, the
// entity store, and the event bus are recreated so that no state leaks
// between runs.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.bounds = Bounds{W: float64(rt.ScreenW), H: float64(rt.ScreenH)}
	g.world = ecs.NewWorld()
	g.bus = events.NewBus()
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0

	g.session = NewSessionMachine(g.bus)
	g.waves = NewWaveDirector(g.world, g.bus, g.cfg.Waves, g.bounds)
	g.damage = NewDamageSystem(g.world, g.bus, g.rng, g.cfg.PowerUps.DropChance)
	g.powerups = NewPowerUpSystem(g.world, g.bus, g.cfg.PowerUps, g.rng, func() ecs.Entity {
		return g.player.Entity()
	})
	g.player = NewPlayerSystem(g.world, g.bus, g.cfg.Player, g.cfg.Weapons, g.bounds, g.powerups, g.damage)
	g.ai = NewAISystem(g.world, g.bounds, g.cfg.Weapons, g.player.Pos, g.waves.BulletSpeedMul, g.waves.SpawnRateMul)
	g.weapons = NewWeaponSystem(g.world, g.cfg.Weapons.BulletSpeed, g.cfg.Weapons.BulletDamage, g.player.Entity)
	g.movement = NewMovementSystem(g.world, g.bounds, g.cfg.Collision.CullMargin, g.player.Entity)
	g.collision = NewCollisionSystem(g.world, g.cfg.Collision.CellSize)
	g.score = NewScoreSystem(g.bus, g.cfg.Score, g.powerups.Multiplier)

	events.Subscribe(g.bus, func(PlayerDied) {
		g.session.ToGameOver(g.score.Score())
		if g.score.Score() > g.highScore {
			g.highScore = g.score.Score()
		}
	})
}

// startRun clears any previous run and launches a new one.
func (g *Game) startRun() {
	g.world.Clear()
	g.ai.Reset()
	g.powerups.Reset()
	g.score.Reset()
	g.waves.Reset()
	g.player.Spawn()
	g.session.To(StatePlaying)
}

// Step advances the simulation by one fixed tick. System order is fixed:
// player input, enemy AI, weapons, movement, collision, damage, power-ups,
// wave direction, score easing, then a single store flush.
func (g *Game) Step(in core.InputSnapshot) core.StepResult {
	dt := 1.0 / float64(g.rt.TickRate)
	g.tick++

	switch g.session.Current() {
	case StateMenu:
		if in.ConfirmPressed || in.FirePressed {
			g.startRun()
		}
		return core.StepResult{State: g.State()}

	case StatePaused:
		if in.PausePressed {
			g.session.To(StatePlaying)
		} else if in.BackPressed {
			g.world.Clear()
			g.session.To(StateMenu)
		}
		return core.StepResult{State: g.State()}

	case StateGameOver:
		if in.ConfirmPressed {
			g.startRun()
		} else if in.BackPressed {
			g.world.Clear()
			g.session.To(StateMenu)
		}
		return core.StepResult{State: g.State()}
	}

	if in.PausePressed {
		g.session.To(StatePaused)
		return core.StepResult{State: g.State()}
	}

	g.player.Update(dt, in)
	g.ai.Update(dt)
	g.weapons.Update(dt, in)
	g.movement.Update(dt)
	pairs := g.collision.Resolve()
	g.damage.Resolve(pairs)
	g.powerups.Update(dt)
	g.waves.Update(dt)
	g.score.Update(dt)
	g.world.Flush()

	return core.StepResult{State: g.State()}
}

// State returns the current game state snapshot.
func (g *Game) State() core.GameState {
	s := g.session.Current()
	return core.GameState{
		Score:    g.score.Score(),
		Wave:     g.waves.Wave(),
		GameOver: s == StateGameOver,
		Paused:   s == StatePaused,
		InMenu:   s == StateMenu,
	}
}

var (
	configPath string
	difficulty config.DifficultyPreset
)

// SetConfigPath points the registry factory at a custom gameplay config
// file. Call before the game is created.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty selects a difficulty preset applied on top of the loaded
// config. Call before the game is created.
func SetDifficulty(preset config.DifficultyPreset) {
	difficulty = preset
}

// Register the game with the registry. The factory loads gameplay config
// lazily so CLI flags can point at a custom file before the first Create.
func init() {
	registry.Register("starblitz", func() registry.Game {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultShooterConfig()
		}
		if difficulty != "" {
			config.ApplyPreset(&cfg, difficulty)
		}
		return New(cfg)
	})
}
