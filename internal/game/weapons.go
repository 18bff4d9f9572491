package game

import (
	"math"

	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
)

// WeaponPattern selects the bullet fan fired per shot.
type WeaponPattern int

const (
	PatternSingle WeaponPattern = iota
	PatternSpread3
	PatternSpread5
	PatternSpread7
)

// maxWeaponLevel is the highest upgrade tier; upgrades saturate here.
const maxWeaponLevel = 3

// patternSpread is the angular step between adjacent bullets in a fan.
const patternSpread = 0.16 // radians

// PatternForLevel maps an upgrade tier to its pattern. Tiers advance
// Single -> Spread3 -> Spread5 -> Spread7 and saturate.
func PatternForLevel(level int) WeaponPattern {
	switch {
	case level <= 0:
		return PatternSingle
	case level == 1:
		return PatternSpread3
	case level == 2:
		return PatternSpread5
	default:
		return PatternSpread7
	}
}

// Angles returns the fan's angular offsets, symmetric around zero and in
// ascending order. Single fires one bullet at offset zero.
func (p WeaponPattern) Angles() []float64 {
	var n int
	switch p {
	case PatternSingle:
		n = 1
	case PatternSpread3:
		n = 3
	case PatternSpread5:
		n = 5
	default:
		n = 7
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i-n/2) * patternSpread
	}
	return out
}

// Upgrade advances the weapon by exactly one tier, capped at the highest.
// It never regresses and never skips tiers.
func (w *Weapon) Upgrade() {
	if w.Level < maxWeaponLevel {
		w.Level++
	}
	w.Pattern = PatternForLevel(w.Level)
}

// WeaponSystem fires the player weapon. Enemy firing lives in the AI
// behavior engine; both share spawnBullet.
type WeaponSystem struct {
	world        *ecs.World
	bulletSpeed  float64
	bulletDamage float64
	player       func() ecs.Entity
}

// NewWeaponSystem creates the player weapon system.
func NewWeaponSystem(world *ecs.World, bulletSpeed, bulletDamage float64, player func() ecs.Entity) *WeaponSystem {
	return &WeaponSystem{
		world:        world,
		bulletSpeed:  bulletSpeed,
		bulletDamage: bulletDamage,
		player:       player,
	}
}

// Update decrements the cooldown and, when the fire intent is held and the
// cooldown has elapsed, resets it to 1/fireRate and spawns one bullet per
// angle in the current pattern.
func (s *WeaponSystem) Update(dt float64, in core.InputSnapshot) {
	p := s.player()
	if p == 0 || !s.world.Alive(p) {
		return
	}
	w, ok := ecs.Get[*Weapon](s.world, p, TagWeapon)
	if !ok {
		return
	}

	w.Cooldown -= dt
	if !in.Fire || w.Cooldown > 0 {
		return
	}
	w.Cooldown = 1.0 / w.FireRate

	tr, _ := ecs.Get[*Transform](s.world, p, TagTransform)
	for _, offset := range w.Pattern.Angles() {
		angle := -math.Pi/2 + offset // player bullets travel up
		spawnBullet(s.world, tr.Pos, angle, s.bulletSpeed, s.bulletDamage, OwnerPlayer)
	}
}

// spawnBullet creates a projectile entity. The collider layer always
// matches the owner.
func spawnBullet(world *ecs.World, pos core.Vec2, angle, speed, damage float64, owner Owner) ecs.Entity {
	e := world.Create()
	world.Add(e, TagTransform, &Transform{Pos: pos, Rotation: angle, ScaleX: 1, ScaleY: 1})
	world.Add(e, TagVelocity, &Velocity{Vel: core.FromAngle(angle).Scale(speed)})
	world.Add(e, TagBullet, &Bullet{Owner: owner, Damage: damage})

	layer := LayerPlayerBullet
	mesh := MeshPlayerBullet
	sprite := Sprite{Mesh: mesh, R: 0.3, G: 0.9, B: 0.9, A: 1, Emissive: true}
	if owner == OwnerEnemy {
		layer = LayerEnemyBullet
		sprite = Sprite{Mesh: MeshEnemyBullet, R: 0.9, G: 0.3, B: 0.2, A: 1, Emissive: true}
	}
	world.Add(e, TagCollider, &Collider{Radius: 0.5, Layer: layer})
	world.Add(e, TagSprite, &sprite)
	return e
}
