// Package game implements the Star Blitz simulation core: a fixed-tick,
// single-threaded, deterministic top-down shooter. All state lives in the
// entity/component store; systems run once per tick in a fixed order and
// communicate across subsystem boundaries through the event bus.
package game

import (
	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
)

// Component tags. A component is present on an entity iff a value is stored
// for the (entity, tag) pair; absence is meaningful and used for queries.
const (
	TagTransform ecs.Tag = iota
	TagVelocity
	TagSprite
	TagHealth
	TagWeapon
	TagCollider
	TagEnemy
	TagBullet
	TagPowerUp
)

// Transform is an entity's position and orientation in world units
// (terminal cells, float precision).
type Transform struct {
	Pos      core.Vec2
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// Velocity is an entity's linear and angular velocity per second.
type Velocity struct {
	Vel     core.Vec2
	Angular float64
}

// MeshID selects the drawable shape for a sprite. The renderer maps mesh
// ids to terminal glyphs; the simulation never draws.
type MeshID int

const (
	MeshPlayer MeshID = iota
	MeshPlayerBullet
	MeshEnemyBullet
	MeshDrone
	MeshDiver
	MeshStrafer
	MeshGunner
	MeshMiniBoss
	MeshPowerUp
)

// Sprite describes how an entity is drawn: mesh reference plus color.
type Sprite struct {
	Mesh       MeshID
	R, G, B, A float64
	Emissive   bool
}

// Health tracks hit points and the post-hit invincibility window.
// Current never exceeds Max.
type Health struct {
	Current    float64
	Max        float64
	Invincible bool
	InvTimer   float64 // Seconds remaining in the invincibility window
}

// Damage applies a hit, clamping at zero. Returns true if health reached zero.
func (h *Health) Damage(amount float64) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current <= 0
}

// Heal restores hit points, capped at Max.
func (h *Health) Heal(amount float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Weapon is a cooldown-gated gun. Cooldown counts down against dt and is
// reset to 1/FireRate on firing.
type Weapon struct {
	Pattern  WeaponPattern
	FireRate float64 // Shots per second
	Cooldown float64 // Seconds until the next shot is allowed
	Level    int     // Upgrade tier, drives Pattern
}

// Collider is a circle collider on a collision layer.
type Collider struct {
	Radius float64
	Layer  Layer
}

// Faction identifies an enemy family for scoring and event payloads.
type Faction int

const (
	FactionDrone Faction = iota
	FactionDiver
	FactionStrafer
	FactionGunner
	FactionBoss
)

// String returns a human-readable faction name.
func (f Faction) String() string {
	switch f {
	case FactionDrone:
		return "drone"
	case FactionDiver:
		return "diver"
	case FactionStrafer:
		return "strafer"
	case FactionGunner:
		return "gunner"
	case FactionBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Enemy marks an entity as AI-controlled and carries its scoring data.
type Enemy struct {
	Faction    Faction
	Behavior   BehaviorID
	ScoreValue int
}

// Owner identifies which side fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet is a projectile. Its collider layer always matches Owner
// (PlayerBullet vs EnemyBullet).
type Bullet struct {
	Owner  Owner
	Damage float64
}

// PowerUpKind enumerates pickup payloads.
type PowerUpKind int

const (
	PowerUpUpgrade    PowerUpKind = iota // Permanent: weapon tier +1
	PowerUpShield                        // Resource: absorbs hits
	PowerUpBomb                          // Resource: screen-clearing charge
	PowerUpSpeed                         // Timed: move-speed bonus
	PowerUpMultiplier                    // Timed: score multiplier
	PowerUpRepair                        // Instant: restore health
)

// String returns a human-readable power-up name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpUpgrade:
		return "upgrade"
	case PowerUpShield:
		return "shield"
	case PowerUpBomb:
		return "bomb"
	case PowerUpSpeed:
		return "speed"
	case PowerUpMultiplier:
		return "multiplier"
	case PowerUpRepair:
		return "repair"
	default:
		return "unknown"
	}
}

// PowerUp marks a falling pickup entity.
type PowerUp struct {
	Kind PowerUpKind
}
