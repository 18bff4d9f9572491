package game

import (
	"github.com/vovakirdan/tui-starblitz/internal/config"
	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
	"github.com/vovakirdan/tui-starblitz/internal/events"
)

// waveState is the director's two-state machine.
type waveState int

const (
	waveActive       waveState = iota // Enemies remain; the director is idle
	waveIntermission                  // Pause timer counting down to the next spawn
)

// WaveDirector owns difficulty progression. It counts living enemies via
// destroyed events; the counter reaching zero while Active starts an
// intermission, and the intermission expiring spawns exactly one new wave.
type WaveDirector struct {
	world  *ecs.World
	bus    *events.Bus
	cfg    config.WaveConfig
	bounds Bounds

	state waveState
	wave  int // Index of the last spawned wave, 0 before the first
	alive int
	timer float64

	// Global escalation multipliers. Monotonic; reset only with the
	// session.
	bulletSpeedMul float64
	spawnRateMul   float64

	dispose func()
}

// NewWaveDirector creates the director and subscribes it to enemy-destroyed
// events.
func NewWaveDirector(world *ecs.World, bus *events.Bus, cfg config.WaveConfig, bounds Bounds) *WaveDirector {
	d := &WaveDirector{world: world, bus: bus, cfg: cfg, bounds: bounds}
	d.resetState()
	d.dispose = events.Subscribe(bus, d.onEnemyDestroyed)
	return d
}

// Reset returns the director to its pre-wave-1 state.
func (d *WaveDirector) Reset() {
	d.resetState()
}

func (d *WaveDirector) resetState() {
	d.state = waveIntermission
	d.wave = 0
	d.alive = 0
	d.timer = firstWaveDelay
	d.bulletSpeedMul = 1
	d.spawnRateMul = 1
}

// firstWaveDelay gives the player a moment before wave 1 arrives.
const firstWaveDelay = 1.0

// Wave returns the current wave index (the last spawned wave).
func (d *WaveDirector) Wave() int { return d.wave }

// BulletSpeedMul returns the global enemy bullet-speed multiplier.
func (d *WaveDirector) BulletSpeedMul() float64 { return d.bulletSpeedMul }

// SpawnRateMul returns the global spawn-rate multiplier. It scales both
// wave composition and enemy fire rates.
func (d *WaveDirector) SpawnRateMul() float64 { return d.spawnRateMul }

// Intermission reports whether the director is between waves.
func (d *WaveDirector) Intermission() bool { return d.state == waveIntermission }

func (d *WaveDirector) onEnemyDestroyed(EnemyDestroyed) {
	if d.alive > 0 {
		d.alive--
	}
	// Reaching zero while Active triggers exactly one transition; further
	// destroyed events in the same tick find the director already in
	// intermission.
	if d.alive == 0 && d.state == waveActive {
		d.state = waveIntermission
		d.timer = d.cfg.IntermissionSecs
		next := d.wave + 1
		if d.isBossWave(next) {
			events.Publish(d.bus, BossWarning{Wave: next})
		}
	}
}

// Update counts the intermission down and spawns the next wave when it
// expires. During an active wave there is nothing to advance; only
// enemy deaths move the director forward.
func (d *WaveDirector) Update(dt float64) {
	if d.state != waveIntermission {
		return
	}
	d.timer -= dt
	if d.timer > 0 {
		return
	}
	d.spawnWave(d.wave + 1)
}

func (d *WaveDirector) isBossWave(wave int) bool {
	return d.cfg.MiniBossEvery > 0 && wave%d.cfg.MiniBossEvery == 0
}

// spawnWave composes and places the wave's roster and returns the director
// to Active. Escalation steps are applied first so they affect the wave
// they gate.
func (d *WaveDirector) spawnWave(wave int) {
	d.wave = wave
	d.state = waveActive

	if d.cfg.EscalateEvery > 0 && wave > 1 && wave%d.cfg.EscalateEvery == 0 {
		d.bulletSpeedMul = core.ClampF(d.bulletSpeedMul+d.cfg.BulletSpeedStep, 1, d.cfg.BulletSpeedCap)
		d.spawnRateMul = core.ClampF(d.spawnRateMul+d.cfg.SpawnRateStep, 1, d.cfg.SpawnRateCap)
	}

	var roster []Archetype
	for _, a := range archetypes {
		count := int(float64(a.CountFor(wave)) * d.spawnRateMul)
		for i := 0; i < count; i++ {
			roster = append(roster, a)
		}
	}

	n := len(roster)
	for i, a := range roster {
		d.spawnEnemy(a, formationPos(i, n, d.bounds.W), wave)
	}
	if d.isBossWave(wave) {
		boss := miniBoss
		boss.Health += 2 * float64(wave) // bosses outgrow the player's damage curve
		d.spawnEnemy(boss, core.Vec2{X: d.bounds.W / 2, Y: -5}, wave)
	}

	d.alive = n
	if d.isBossWave(wave) {
		d.alive++
	}

	events.Publish(d.bus, WaveStarted{Wave: wave})
}

func (d *WaveDirector) spawnEnemy(a Archetype, pos core.Vec2, wave int) ecs.Entity {
	e := d.world.Create()
	d.world.Add(e, TagTransform, &Transform{Pos: pos, ScaleX: 1, ScaleY: 1})
	d.world.Add(e, TagVelocity, &Velocity{})
	d.world.Add(e, TagHealth, &Health{Current: a.Health, Max: a.Health})
	d.world.Add(e, TagCollider, &Collider{Radius: a.Radius, Layer: LayerEnemy})
	d.world.Add(e, TagEnemy, &Enemy{Faction: a.Faction, Behavior: a.Behavior, ScoreValue: a.ScoreValue})
	d.world.Add(e, TagSprite, &Sprite{Mesh: a.Mesh, R: a.R, G: a.G, B: a.B, A: 1})
	return e
}

// formationPos is a pure function of (index-in-wave, wave size) producing
// deterministic starting coordinates: rows of up to eight units, evenly
// spread, stacked above the visible area.
func formationPos(i, n int, screenW float64) core.Vec2 {
	cols := n
	if cols > 8 {
		cols = 8
	}
	if cols < 1 {
		cols = 1
	}
	row := i / cols
	col := i % cols
	spacing := screenW / float64(cols+1)
	return core.Vec2{
		X: spacing * float64(col+1),
		Y: -(3 + float64(row)*3),
	}
}
