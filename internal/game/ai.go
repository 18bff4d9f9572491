package game

import (
	"math"

	"github.com/vovakirdan/tui-starblitz/internal/config"
	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
)

// BehaviorID selects which per-tick update function governs an enemy.
// Assigned at spawn from the unit's archetype.
type BehaviorID int

const (
	BehaviorDrift BehaviorID = iota
	BehaviorStrafe
	BehaviorDive
	BehaviorGunner
	BehaviorBoss
)

// aiState is the per-entity behavior state, created lazily on the first
// tick an enemy is updated. Entries for destroyed entities are pruned every
// tick; a dangling entry would silently operate on garbage.
type aiState struct {
	fireCooldown  float64
	phase         int
	timer         float64
	strafeDir     float64 // -1 or +1
	diveTarget    core.Vec2
	hasDiveTarget bool
}

type behaviorFunc func(s *AISystem, st *aiState, tr *Transform, vel *Velocity, arch Archetype, dt float64)

// Escaped units are recycled rather than culled. reentryMargin is how far
// past the bottom edge a unit may travel before it wraps; reentryY is the
// off-screen height it re-enters at.
const (
	reentryMargin = 4.0
	reentryY      = -4.0
)

// AISystem drives every enemy through a dispatch table from behavior id to
// a per-tick update function. Behaviors are phase-based state machines
// writing only Transform/Velocity plus the entity's aiState.
type AISystem struct {
	world     *ecs.World
	bounds    Bounds
	states    map[ecs.Entity]*aiState
	behaviors map[BehaviorID]behaviorFunc

	playerPos func() (core.Vec2, bool)

	// Global difficulty multipliers, owned by the wave director.
	bulletSpeedMul func() float64
	fireRateMul    func() float64

	enemyBulletSpeed  float64
	enemyBulletDamage float64
}

// NewAISystem creates the behavior engine.
func NewAISystem(world *ecs.World, bounds Bounds, cfg config.WeaponConfig, playerPos func() (core.Vec2, bool), bulletSpeedMul, fireRateMul func() float64) *AISystem {
	s := &AISystem{
		world:             world,
		bounds:            bounds,
		states:            make(map[ecs.Entity]*aiState),
		playerPos:         playerPos,
		bulletSpeedMul:    bulletSpeedMul,
		fireRateMul:       fireRateMul,
		enemyBulletSpeed:  cfg.EnemyBulletSpeed,
		enemyBulletDamage: cfg.EnemyBulletDamage,
	}
	s.behaviors = map[BehaviorID]behaviorFunc{
		BehaviorDrift:  (*AISystem).drift,
		BehaviorStrafe: (*AISystem).strafe,
		BehaviorDive:   (*AISystem).dive,
		BehaviorGunner: (*AISystem).gunner,
		BehaviorBoss:   (*AISystem).boss,
	}
	return s
}

// Reset drops all per-entity state (session restart).
func (s *AISystem) Reset() {
	s.states = make(map[ecs.Entity]*aiState)
}

// Update runs every enemy's behavior and then prunes state entries whose
// entity no longer exists in the store.
func (s *AISystem) Update(dt float64) {
	for _, e := range s.world.Query(TagEnemy, TagTransform, TagVelocity) {
		if s.world.Doomed(e) {
			continue
		}
		en, _ := ecs.Get[*Enemy](s.world, e, TagEnemy)
		tr, _ := ecs.Get[*Transform](s.world, e, TagTransform)
		vel, _ := ecs.Get[*Velocity](s.world, e, TagVelocity)

		st, ok := s.states[e]
		if !ok {
			st = &aiState{strafeDir: 1}
			if tr.Pos.X > s.bounds.W/2 {
				st.strafeDir = -1
			}
			s.states[e] = st
		}

		// A unit that slips past the bottom edge re-enters above the
		// screen for another pass, with fresh behavior state so divers
		// re-aim. Player bullets only travel upward; an enemy allowed to
		// fall away would be unkillable and its wave unfinishable.
		if tr.Pos.Y > s.bounds.H+reentryMargin {
			tr.Pos = core.Vec2{
				X: core.ClampF(tr.Pos.X, 2, s.bounds.W-2),
				Y: reentryY,
			}
			vel.Vel = core.Vec2{}
			dir := 1.0
			if tr.Pos.X > s.bounds.W/2 {
				dir = -1
			}
			*st = aiState{strafeDir: dir}
		}

		arch := archetypeByFaction(en.Faction)
		fn := s.behaviors[en.Behavior]
		if fn == nil {
			fn = (*AISystem).drift
		}
		st.timer += dt
		fn(s, st, tr, vel, arch, dt)
		s.updateFiring(st, tr, arch, dt)
	}

	// Prune state for entities the store no longer knows. Diffing against
	// the authoritative existence set is what keeps this side table from
	// outliving its entities.
	for e := range s.states {
		if !s.world.Has(e, TagEnemy) {
			delete(s.states, e)
		}
	}
}

// drift: slow descent with a lateral sway.
func (s *AISystem) drift(st *aiState, tr *Transform, vel *Velocity, arch Archetype, dt float64) {
	vel.Vel.Y = arch.Speed * 0.45
	vel.Vel.X = math.Sin(st.timer*1.3) * arch.Speed * 0.4 * st.strafeDir
}

// strafe: descend into formation, then oscillate horizontally, flipping
// direction on the screen-edge thresholds.
func (s *AISystem) strafe(st *aiState, tr *Transform, vel *Velocity, arch Archetype, dt float64) {
	const formationY = 5.0
	if st.phase == 0 {
		vel.Vel = core.Vec2{Y: arch.Speed}
		if tr.Pos.Y >= formationY {
			st.phase = 1
		}
		return
	}
	if tr.Pos.X < 3 {
		st.strafeDir = 1
	} else if tr.Pos.X > s.bounds.W-3 {
		st.strafeDir = -1
	}
	vel.Vel = core.Vec2{X: arch.Speed * st.strafeDir}
}

// dive: phase 0 is a slow lateral drift; once a time or depth threshold is
// crossed, the unit locks a target point and flies a straight vector toward
// it. The transition is one-way and the target is captured once, never
// re-aimed.
func (s *AISystem) dive(st *aiState, tr *Transform, vel *Velocity, arch Archetype, dt float64) {
	const (
		diveDelay = 2.0
		diveDepth = 0.25
		diveBoost = 2.2
	)
	switch st.phase {
	case 0:
		vel.Vel = core.Vec2{
			X: arch.Speed * 0.5 * st.strafeDir,
			Y: arch.Speed * 0.25,
		}
		if st.timer >= diveDelay || tr.Pos.Y > s.bounds.H*diveDepth {
			st.phase = 1
		}
	case 1:
		if !st.hasDiveTarget {
			target := core.Vec2{X: tr.Pos.X, Y: s.bounds.H + 10}
			if p, ok := s.playerPos(); ok {
				target = p
			}
			st.diveTarget = target
			st.hasDiveTarget = true
			vel.Vel = st.diveTarget.Sub(tr.Pos).Normalized().Scale(arch.Speed * diveBoost)
		}
		// Velocity stays locked on the captured vector.
	}
}

// gunner: descend to a firing line, hold there with a slight strafe.
func (s *AISystem) gunner(st *aiState, tr *Transform, vel *Velocity, arch Archetype, dt float64) {
	holdY := s.bounds.H * 0.3
	if st.phase == 0 {
		vel.Vel = core.Vec2{Y: arch.Speed}
		if tr.Pos.Y >= holdY {
			st.phase = 1
		}
		return
	}
	if tr.Pos.X < 5 {
		st.strafeDir = 1
	} else if tr.Pos.X > s.bounds.W-5 {
		st.strafeDir = -1
	}
	vel.Vel = core.Vec2{X: arch.Speed * 0.4 * st.strafeDir}
}

// boss: descend to the top band, then sweep the full width, flipping on the
// edge thresholds.
func (s *AISystem) boss(st *aiState, tr *Transform, vel *Velocity, arch Archetype, dt float64) {
	holdY := s.bounds.H * 0.18
	if st.phase == 0 {
		vel.Vel = core.Vec2{Y: arch.Speed * 0.7}
		if tr.Pos.Y >= holdY {
			st.phase = 1
		}
		return
	}
	if tr.Pos.X < 6 {
		st.strafeDir = 1
	} else if tr.Pos.X > s.bounds.W-6 {
		st.strafeDir = -1
	}
	vel.Vel = core.Vec2{X: arch.Speed * st.strafeDir}
}

// updateFiring gates shots on a cooldown exactly like the player weapon,
// scaled by the global fire-rate multiplier. Units only fire once they are
// on-screen.
func (s *AISystem) updateFiring(st *aiState, tr *Transform, arch Archetype, dt float64) {
	if arch.FireMode == FireNone || arch.FireRate <= 0 {
		return
	}
	st.fireCooldown -= dt
	if st.fireCooldown > 0 || tr.Pos.Y < 0 {
		return
	}
	rate := arch.FireRate * s.fireRateMul()
	st.fireCooldown = 1.0 / rate

	speed := s.enemyBulletSpeed * s.bulletSpeedMul()
	switch arch.FireMode {
	case FireDown:
		spawnBullet(s.world, tr.Pos, math.Pi/2, speed, s.enemyBulletDamage, OwnerEnemy)
	case FireAimed:
		angle := math.Pi / 2
		if p, ok := s.playerPos(); ok {
			angle = p.Sub(tr.Pos).Angle()
		}
		spawnBullet(s.world, tr.Pos, angle, speed, s.enemyBulletDamage, OwnerEnemy)
	case FireFan:
		for _, offset := range []float64{-0.5, -0.25, 0, 0.25, 0.5} {
			spawnBullet(s.world, tr.Pos, math.Pi/2+offset, speed, s.enemyBulletDamage, OwnerEnemy)
		}
	}
}

// stateCount reports how many entities currently hold AI state. Used by
// tests to verify pruning.
func (s *AISystem) stateCount() int {
	return len(s.states)
}
