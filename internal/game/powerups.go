package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-starblitz/internal/config"
	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
	"github.com/vovakirdan/tui-starblitz/internal/events"
)

// TimedEffect is one entry in the active-effects ledger.
type TimedEffect struct {
	Kind      PowerUpKind
	Remaining float64
	Duration  float64
}

// PowerUpSystem spawns pickups for drop events, applies collected payloads
// and maintains the effect ledger. Effects fall into three categories:
// permanent (weapon upgrades), resource (shield hits, bomb charges,
// decremented by consumption rather than time) and timed (speed, score
// multiplier; picking up the same type replaces the running timer).
type PowerUpSystem struct {
	world *ecs.World
	bus   *events.Bus
	cfg   config.PowerUpConfig
	rng   *rand.Rand

	player func() ecs.Entity

	effects    []TimedEffect
	shieldHits int
	bombs      int

	disposers []func()
}

// NewPowerUpSystem creates the system and subscribes it to drop and collect
// events.
func NewPowerUpSystem(world *ecs.World, bus *events.Bus, cfg config.PowerUpConfig, rng *rand.Rand, player func() ecs.Entity) *PowerUpSystem {
	s := &PowerUpSystem{world: world, bus: bus, cfg: cfg, rng: rng, player: player}
	s.disposers = append(s.disposers,
		events.Subscribe(bus, s.onDropped),
		events.Subscribe(bus, s.onCollected),
	)
	return s
}

// Reset clears the active ledger and resource counts.
func (s *PowerUpSystem) Reset() {
	s.effects = s.effects[:0]
	s.shieldHits = 0
	s.bombs = 0
}

// Update decays the timed-effect ledger.
func (s *PowerUpSystem) Update(dt float64) {
	kept := s.effects[:0]
	for _, ef := range s.effects {
		ef.Remaining -= dt
		if ef.Remaining > 0 {
			kept = append(kept, ef)
		}
	}
	s.effects = kept
}

func (s *PowerUpSystem) onDropped(ev PowerUpDropped) {
	kind := s.rollKind()

	e := s.world.Create()
	s.world.Add(e, TagTransform, &Transform{Pos: core.Vec2{X: ev.X, Y: ev.Y}, ScaleX: 1, ScaleY: 1})
	s.world.Add(e, TagVelocity, &Velocity{Vel: core.Vec2{Y: s.cfg.FallSpeed}})
	s.world.Add(e, TagPowerUp, &PowerUp{Kind: kind})
	s.world.Add(e, TagCollider, &Collider{Radius: 0.8, Layer: LayerPowerUp})
	s.world.Add(e, TagSprite, spriteForPowerUp(kind))
}

// rollKind selects a pickup type by relative weight.
func (s *PowerUpSystem) rollKind() PowerUpKind {
	weights := []struct {
		kind   PowerUpKind
		weight int
	}{
		{PowerUpUpgrade, s.cfg.WeightUpgrade},
		{PowerUpShield, s.cfg.WeightShield},
		{PowerUpBomb, s.cfg.WeightBomb},
		{PowerUpSpeed, s.cfg.WeightSpeed},
		{PowerUpMultiplier, s.cfg.WeightMultiplier},
		{PowerUpRepair, s.cfg.WeightRepair},
	}
	total := 0
	for _, w := range weights {
		total += w.weight
	}
	if total <= 0 {
		return PowerUpUpgrade
	}
	roll := s.rng.Intn(total)
	cumulative := 0
	for _, w := range weights {
		cumulative += w.weight
		if roll < cumulative {
			return w.kind
		}
	}
	return PowerUpUpgrade
}

func (s *PowerUpSystem) onCollected(ev PowerUpCollected) {
	switch ev.Kind {
	case PowerUpUpgrade:
		if p := s.player(); p != 0 {
			if w, ok := ecs.Get[*Weapon](s.world, p, TagWeapon); ok {
				w.Upgrade()
			}
		}
	case PowerUpShield:
		s.shieldHits = s.cfg.ShieldHits // replenished, not stacked
	case PowerUpBomb:
		s.bombs += s.cfg.BombCharges
		if s.bombs > s.cfg.MaxBombs {
			s.bombs = s.cfg.MaxBombs
		}
	case PowerUpSpeed:
		s.addTimed(PowerUpSpeed, s.cfg.SpeedDurationSecs)
	case PowerUpMultiplier:
		s.addTimed(PowerUpMultiplier, s.cfg.MultiplierDurationSecs)
	case PowerUpRepair:
		if p := s.player(); p != 0 {
			if h, ok := ecs.Get[*Health](s.world, p, TagHealth); ok {
				h.Heal(1)
			}
		}
	}
}

// addTimed starts a timed effect; a new pickup of a running type replaces
// the existing timer rather than stacking.
func (s *PowerUpSystem) addTimed(kind PowerUpKind, duration float64) {
	for i := range s.effects {
		if s.effects[i].Kind == kind {
			s.effects[i].Remaining = duration
			s.effects[i].Duration = duration
			return
		}
	}
	s.effects = append(s.effects, TimedEffect{Kind: kind, Remaining: duration, Duration: duration})
}

// Effects returns the active timed-effect ledger for HUD display.
func (s *PowerUpSystem) Effects() []TimedEffect {
	return s.effects
}

func (s *PowerUpSystem) hasTimed(kind PowerUpKind) bool {
	for _, ef := range s.effects {
		if ef.Kind == kind {
			return true
		}
	}
	return false
}

// SpeedBonus returns the fractional move-speed bonus while the speed effect
// is active, zero otherwise.
func (s *PowerUpSystem) SpeedBonus() float64 {
	if s.hasTimed(PowerUpSpeed) {
		return s.cfg.SpeedBonus
	}
	return 0
}

// Multiplier returns the current score multiplier (1 when no multiplier
// effect is active).
func (s *PowerUpSystem) Multiplier() int {
	if s.hasTimed(PowerUpMultiplier) {
		return s.cfg.MultiplierValue
	}
	return 1
}

// ShieldHits returns the remaining shield hit count.
func (s *PowerUpSystem) ShieldHits() int { return s.shieldHits }

// Bombs returns the carried bomb charges.
func (s *PowerUpSystem) Bombs() int { return s.bombs }

// ConsumeShieldHit spends one shield hit; returns false if none remain.
func (s *PowerUpSystem) ConsumeShieldHit() bool {
	if s.shieldHits <= 0 {
		return false
	}
	s.shieldHits--
	return true
}

// ConsumeBomb spends one bomb charge; returns false if none remain.
func (s *PowerUpSystem) ConsumeBomb() bool {
	if s.bombs <= 0 {
		return false
	}
	s.bombs--
	return true
}

func spriteForPowerUp(kind PowerUpKind) *Sprite {
	sp := &Sprite{Mesh: MeshPowerUp, A: 1, Emissive: true}
	switch kind {
	case PowerUpUpgrade:
		sp.R, sp.G, sp.B = 0.2, 0.9, 0.9
	case PowerUpShield:
		sp.R, sp.G, sp.B = 0.2, 0.4, 0.9
	case PowerUpBomb:
		sp.R, sp.G, sp.B = 0.9, 0.5, 0.1
	case PowerUpSpeed:
		sp.R, sp.G, sp.B = 0.2, 0.9, 0.2
	case PowerUpMultiplier:
		sp.R, sp.G, sp.B = 0.9, 0.9, 0.2
	case PowerUpRepair:
		sp.R, sp.G, sp.B = 0.9, 0.2, 0.3
	}
	return sp
}
