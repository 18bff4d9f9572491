package game

import (
	"testing"

	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	world := ecs.NewWorld()
	ms := NewMovementSystem(world, Bounds{W: 80, H: 24}, 6, func() ecs.Entity { return 0 })

	e := world.Create()
	world.Add(e, TagTransform, &Transform{Pos: core.Vec2{X: 10, Y: 10}, ScaleX: 1, ScaleY: 1})
	world.Add(e, TagVelocity, &Velocity{Vel: core.Vec2{X: 60, Y: -30}, Angular: 1})

	ms.Update(0.5)
	tr, _ := ecs.Get[*Transform](world, e, TagTransform)
	if tr.Pos.X != 40 || tr.Pos.Y != -5 {
		t.Errorf("position %+v, want (40, -5)", tr.Pos)
	}
	if tr.Rotation != 0.5 {
		t.Errorf("rotation %v, want 0.5", tr.Rotation)
	}
}

func TestBulletsCulledBeyondMargin(t *testing.T) {
	world := ecs.NewWorld()
	ms := NewMovementSystem(world, Bounds{W: 80, H: 24}, 6, func() ecs.Entity { return 0 })

	inside := spawnTestBullet(world, core.Vec2{X: 40, Y: -4}, OwnerPlayer)
	outside := spawnTestBullet(world, core.Vec2{X: 40, Y: -20}, OwnerPlayer)

	ms.Update(1.0 / 60.0)
	if world.Doomed(inside) {
		t.Error("bullet inside the margin was culled")
	}
	if !world.Doomed(outside) {
		t.Error("bullet far outside the margin survived")
	}
}

func TestEnemiesAndPlayerAreNeverCulled(t *testing.T) {
	world := ecs.NewWorld()

	player := world.Create()
	world.Add(player, TagTransform, &Transform{Pos: core.Vec2{X: -50, Y: -50}, ScaleX: 1, ScaleY: 1})
	world.Add(player, TagVelocity, &Velocity{})

	ms := NewMovementSystem(world, Bounds{W: 80, H: 24}, 6, func() ecs.Entity { return player })

	// Enemies spawn above the screen on purpose; they must survive there.
	enemy := spawnTaggedEnemy(world, core.Vec2{X: 40, Y: -9}, 1)
	world.Add(enemy, TagVelocity, &Velocity{})

	ms.Update(1.0 / 60.0)
	if world.Doomed(player) {
		t.Error("player culled")
	}
	if world.Doomed(enemy) {
		t.Error("off-screen enemy culled during formation entry")
	}
}
