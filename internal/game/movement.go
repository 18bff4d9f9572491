package game

import (
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
)

// MovementSystem applies velocity to transforms (Euler integration, fine at
// a fixed 60 Hz tick) and culls transient entities that leave the screen
// plus a margin. The player and anything carrying the Enemy tag are exempt:
// enemies spawn above the visible area and must survive until their
// behavior brings them on-screen, and units that slip past the bottom are
// recycled by the behavior engine rather than culled.
type MovementSystem struct {
	world  *ecs.World
	bounds Bounds
	margin float64
	player func() ecs.Entity
}

// Bounds is the visible play area in world units.
type Bounds struct {
	W, H float64
}

// NewMovementSystem creates a movement integrator. The player accessor is a
// func because the player entity changes across session resets.
func NewMovementSystem(world *ecs.World, bounds Bounds, margin float64, player func() ecs.Entity) *MovementSystem {
	return &MovementSystem{world: world, bounds: bounds, margin: margin, player: player}
}

// Update integrates one tick and marks out-of-bounds transients for
// destruction.
func (s *MovementSystem) Update(dt float64) {
	player := s.player()
	for _, e := range s.world.Query(TagTransform, TagVelocity) {
		tr, _ := ecs.Get[*Transform](s.world, e, TagTransform)
		vel, _ := ecs.Get[*Velocity](s.world, e, TagVelocity)

		tr.Pos = tr.Pos.Add(vel.Vel.Scale(dt))
		tr.Rotation += vel.Angular * dt

		if e == player || s.world.Has(e, TagEnemy) {
			continue
		}
		if tr.Pos.X < -s.margin || tr.Pos.X > s.bounds.W+s.margin ||
			tr.Pos.Y < -s.margin || tr.Pos.Y > s.bounds.H+s.margin {
			s.world.Destroy(e)
		}
	}
}
