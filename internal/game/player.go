package game

import (
	"github.com/vovakirdan/tui-starblitz/internal/config"
	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
	"github.com/vovakirdan/tui-starblitz/internal/events"
)

// bombDamage is dealt to every live enemy when a bomb detonates.
const bombDamage = 3.0

// PlayerSystem owns the single player entity: it translates movement
// intents into velocity, runs the invincibility window, applies damage
// events (through the shield first) and detonates bombs.
type PlayerSystem struct {
	world   *ecs.World
	bus     *events.Bus
	cfg     config.PlayerConfig
	weapons config.WeaponConfig
	bounds  Bounds

	powerups *PowerUpSystem
	damage   *DamageSystem

	entity ecs.Entity

	disposers []func()
}

// NewPlayerSystem creates the player system and subscribes it to damage
// events.
func NewPlayerSystem(world *ecs.World, bus *events.Bus, cfg config.PlayerConfig, weapons config.WeaponConfig, bounds Bounds, powerups *PowerUpSystem, damage *DamageSystem) *PlayerSystem {
	s := &PlayerSystem{
		world:    world,
		bus:      bus,
		cfg:      cfg,
		weapons:  weapons,
		bounds:   bounds,
		powerups: powerups,
		damage:   damage,
	}
	s.disposers = append(s.disposers, events.Subscribe(bus, s.onDamaged))
	return s
}

// Entity returns the current player entity, or zero when none exists.
func (s *PlayerSystem) Entity() ecs.Entity {
	return s.entity
}

// Pos returns the player position, if a player exists.
func (s *PlayerSystem) Pos() (core.Vec2, bool) {
	if s.entity == 0 || !s.world.Alive(s.entity) {
		return core.Vec2{}, false
	}
	tr, ok := ecs.Get[*Transform](s.world, s.entity, TagTransform)
	if !ok {
		return core.Vec2{}, false
	}
	return tr.Pos, true
}

// Spawn creates a fresh player entity at the bottom center. Exactly one
// entity at a time is the player, tracked by this reference.
func (s *PlayerSystem) Spawn() ecs.Entity {
	e := s.world.Create()
	s.world.Add(e, TagTransform, &Transform{
		Pos:    core.Vec2{X: s.bounds.W / 2, Y: s.bounds.H - 3},
		ScaleX: 1, ScaleY: 1,
	})
	s.world.Add(e, TagVelocity, &Velocity{})
	s.world.Add(e, TagHealth, &Health{Current: float64(s.cfg.Health), Max: float64(s.cfg.Health)})
	s.world.Add(e, TagCollider, &Collider{Radius: s.cfg.Radius, Layer: LayerPlayer})
	s.world.Add(e, TagWeapon, &Weapon{
		Pattern:  PatternSingle,
		FireRate: s.weapons.BaseFireRate,
	})
	s.world.Add(e, TagSprite, &Sprite{Mesh: MeshPlayer, R: 0.3, G: 0.9, B: 0.4, A: 1})
	s.entity = e
	return e
}

// Update applies movement intent, keeps the ship on screen, runs the
// invincibility countdown and handles the bomb intent.
func (s *PlayerSystem) Update(dt float64, in core.InputSnapshot) {
	if s.entity == 0 || !s.world.Alive(s.entity) {
		return
	}
	tr, _ := ecs.Get[*Transform](s.world, s.entity, TagTransform)
	vel, _ := ecs.Get[*Velocity](s.world, s.entity, TagVelocity)
	h, _ := ecs.Get[*Health](s.world, s.entity, TagHealth)

	speed := s.cfg.Speed * (1 + s.powerups.SpeedBonus())
	vel.Vel = core.Vec2{X: in.MoveX * speed, Y: in.MoveY * speed}

	// Clamp to the visible area; integration happened last tick so the
	// position is at most one step outside.
	tr.Pos.X = core.ClampF(tr.Pos.X, 1, s.bounds.W-1)
	tr.Pos.Y = core.ClampF(tr.Pos.Y, 1, s.bounds.H-1)

	if h.Invincible {
		h.InvTimer -= dt
		if h.InvTimer <= 0 {
			h.Invincible = false
			h.InvTimer = 0
		}
	}

	if in.BombPressed && s.powerups.ConsumeBomb() {
		s.detonateBomb()
	}

	// Weapon fire-rate tracks the upgrade tier.
	if w, ok := ecs.Get[*Weapon](s.world, s.entity, TagWeapon); ok {
		w.FireRate = s.weapons.BaseFireRate + float64(w.Level)*s.weapons.FireRatePerTier
	}
}

// detonateBomb clears every enemy bullet and damages every live enemy.
func (s *PlayerSystem) detonateBomb() {
	for _, e := range s.world.Query(TagBullet) {
		bl, _ := ecs.Get[*Bullet](s.world, e, TagBullet)
		if bl.Owner == OwnerEnemy {
			s.world.Destroy(e)
		}
	}
	for _, e := range s.world.Query(TagEnemy, TagHealth) {
		s.damage.DamageEnemy(e, bombDamage)
	}
	events.Publish(s.bus, BombDetonated{Remaining: s.powerups.Bombs()})
}

// onDamaged applies a damage event: the shield absorbs it if charged,
// otherwise health drops and the invincibility window restarts. Reaching
// zero publishes PlayerDied exactly once (the window guard in the damage
// resolver prevents re-entry for the rest of the window).
func (s *PlayerSystem) onDamaged(ev PlayerDamaged) {
	if s.entity == 0 || !s.world.Alive(s.entity) {
		return
	}
	h, ok := ecs.Get[*Health](s.world, s.entity, TagHealth)
	if !ok {
		return
	}

	if s.powerups.ConsumeShieldHit() {
		events.Publish(s.bus, ShieldAbsorbed{Remaining: s.powerups.ShieldHits()})
		return
	}

	dead := h.Damage(ev.Amount)
	h.Invincible = true
	h.InvTimer = s.cfg.InvincibilitySecs
	if dead {
		events.Publish(s.bus, PlayerDied{})
	}
}
