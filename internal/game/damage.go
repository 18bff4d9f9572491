package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-starblitz/internal/ecs"
	"github.com/vovakirdan/tui-starblitz/internal/events"
)

// DamageSystem consumes the collision pair list and dispatches on the layer
// combination. It mutates only the two entities of each pair; everything
// else reacts through events.
type DamageSystem struct {
	world      *ecs.World
	bus        *events.Bus
	rng        *rand.Rand
	dropChance float64
}

// NewDamageSystem creates the damage resolver. The RNG drives power-up
// drop rolls and is seeded by the session for determinism.
func NewDamageSystem(world *ecs.World, bus *events.Bus, rng *rand.Rand, dropChance float64) *DamageSystem {
	return &DamageSystem{world: world, bus: bus, rng: rng, dropChance: dropChance}
}

// Resolve processes every colliding pair exactly once.
func (s *DamageSystem) Resolve(pairs []Pair) {
	for _, p := range pairs {
		ca, _ := ecs.Get[*Collider](s.world, p.A, TagCollider)
		cb, _ := ecs.Get[*Collider](s.world, p.B, TagCollider)
		a, b := p.A, p.B
		la, lb := ca.Layer, cb.Layer
		// Normalize so the lower layer value comes first; the matrix is
		// symmetric and this halves the dispatch cases.
		if lb < la {
			a, b = b, a
			la, lb = lb, la
		}

		switch {
		case la == LayerPlayer && lb == LayerEnemy:
			s.hitPlayer(a, 1)
		case la == LayerPlayer && lb == LayerEnemyBullet:
			bl, _ := ecs.Get[*Bullet](s.world, b, TagBullet)
			s.world.Destroy(b)
			s.hitPlayer(a, bl.Damage)
		case la == LayerPlayer && lb == LayerPowerUp:
			s.collect(b)
		case la == LayerPlayerBullet && lb == LayerEnemy:
			bl, _ := ecs.Get[*Bullet](s.world, a, TagBullet)
			s.world.Destroy(a) // the bullet dies no matter what it hit
			s.DamageEnemy(b, bl.Damage)
		}
	}
}

// hitPlayer emits a damage event unless the player is inside its
// invincibility window. The player-owning system applies the actual health
// loss and restarts the window.
func (s *DamageSystem) hitPlayer(player ecs.Entity, amount float64) {
	h, ok := ecs.Get[*Health](s.world, player, TagHealth)
	if !ok || h.Invincible {
		return
	}
	events.Publish(s.bus, PlayerDamaged{Amount: amount})
}

// collect destroys the pickup and announces its payload.
func (s *DamageSystem) collect(pickup ecs.Entity) {
	if s.world.Doomed(pickup) {
		return
	}
	pu, _ := ecs.Get[*PowerUp](s.world, pickup, TagPowerUp)
	tr, _ := ecs.Get[*Transform](s.world, pickup, TagTransform)
	s.world.Destroy(pickup)
	events.Publish(s.bus, PowerUpCollected{X: tr.Pos.X, Y: tr.Pos.Y, Kind: pu.Kind})
}

// DamageEnemy applies damage to an enemy. A lethal hit publishes the
// destroyed event (position, faction, score), rolls the power-up drop and
// marks the enemy for destruction; a non-lethal hit publishes a flash
// event only. Also used by the bomb detonation path.
func (s *DamageSystem) DamageEnemy(e ecs.Entity, amount float64) {
	if s.world.Doomed(e) {
		return // already killed earlier this tick
	}
	h, ok := ecs.Get[*Health](s.world, e, TagHealth)
	if !ok {
		return
	}
	tr, _ := ecs.Get[*Transform](s.world, e, TagTransform)
	if !h.Damage(amount) {
		events.Publish(s.bus, EnemyHit{X: tr.Pos.X, Y: tr.Pos.Y})
		return
	}

	en, _ := ecs.Get[*Enemy](s.world, e, TagEnemy)
	s.world.Destroy(e)
	events.Publish(s.bus, EnemyDestroyed{
		X:       tr.Pos.X,
		Y:       tr.Pos.Y,
		Faction: en.Faction,
		Score:   en.ScoreValue,
	})
	if s.rng.Float64() < s.dropChance {
		events.Publish(s.bus, PowerUpDropped{X: tr.Pos.X, Y: tr.Pos.Y})
	}
}
