package game

import (
	"testing"

	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
)

func spawnTestCollider(w *ecs.World, pos core.Vec2, radius float64, layer Layer) ecs.Entity {
	e := w.Create()
	w.Add(e, TagTransform, &Transform{Pos: pos, ScaleX: 1, ScaleY: 1})
	w.Add(e, TagCollider, &Collider{Radius: radius, Layer: layer})
	return e
}

func TestOverlappingCompatibleLayersCollide(t *testing.T) {
	world := ecs.NewWorld()
	cs := NewCollisionSystem(world, 4)

	a := spawnTestCollider(world, core.Vec2{X: 10, Y: 10}, 1, LayerPlayerBullet)
	b := spawnTestCollider(world, core.Vec2{X: 10.5, Y: 10}, 1, LayerEnemy)

	pairs := cs.Resolve()
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	if pairs[0].A != lo || pairs[0].B != hi {
		t.Errorf("pair not normalized: %+v", pairs[0])
	}
}

func TestBulletsNeverCollideWithBullets(t *testing.T) {
	world := ecs.NewWorld()
	cs := NewCollisionSystem(world, 4)

	spawnTestBullet(world, core.Vec2{X: 10, Y: 10}, OwnerPlayer)
	spawnTestBullet(world, core.Vec2{X: 10, Y: 10}, OwnerEnemy)
	spawnTestBullet(world, core.Vec2{X: 10, Y: 10}, OwnerPlayer)

	if pairs := cs.Resolve(); len(pairs) != 0 {
		t.Errorf("bullet-on-bullet pairs reported: %v", pairs)
	}
}

func TestEnemiesPassThroughEachOther(t *testing.T) {
	world := ecs.NewWorld()
	cs := NewCollisionSystem(world, 4)

	spawnTestCollider(world, core.Vec2{X: 10, Y: 10}, 2, LayerEnemy)
	spawnTestCollider(world, core.Vec2{X: 11, Y: 10}, 2, LayerEnemy)

	if pairs := cs.Resolve(); len(pairs) != 0 {
		t.Errorf("enemy-on-enemy pairs reported: %v", pairs)
	}
}

func TestCellBoundaryStraddlersStillPair(t *testing.T) {
	world := ecs.NewWorld()
	cs := NewCollisionSystem(world, 4)

	// Straddle the x=4 cell boundary.
	spawnTestCollider(world, core.Vec2{X: 3.9, Y: 2}, 1, LayerPlayer)
	spawnTestCollider(world, core.Vec2{X: 4.1, Y: 2}, 1, LayerEnemy)

	pairs := cs.Resolve()
	if len(pairs) != 1 {
		t.Fatalf("boundary pair missed or duplicated: got %d pairs", len(pairs))
	}
}

func TestTouchingCirclesDoNotCollide(t *testing.T) {
	world := ecs.NewWorld()
	cs := NewCollisionSystem(world, 4)

	// Distance exactly equals the radius sum: strict inequality, no pair.
	spawnTestCollider(world, core.Vec2{X: 10, Y: 10}, 1, LayerPlayer)
	spawnTestCollider(world, core.Vec2{X: 12, Y: 10}, 1, LayerEnemy)

	if pairs := cs.Resolve(); len(pairs) != 0 {
		t.Errorf("exactly-touching circles reported as colliding: %v", pairs)
	}
}

func TestDoomedEntitiesProduceNoPairs(t *testing.T) {
	world := ecs.NewWorld()
	cs := NewCollisionSystem(world, 4)

	spawnTestCollider(world, core.Vec2{X: 10, Y: 10}, 1, LayerPlayer)
	e := spawnTestCollider(world, core.Vec2{X: 10, Y: 10}, 1, LayerEnemy)
	world.Destroy(e) // marked this tick, not yet flushed

	if pairs := cs.Resolve(); len(pairs) != 0 {
		t.Errorf("doomed entity still collides: %v", pairs)
	}
}

func TestResolveIsReusableAcrossTicks(t *testing.T) {
	world := ecs.NewWorld()
	cs := NewCollisionSystem(world, 4)

	spawnTestCollider(world, core.Vec2{X: 10, Y: 10}, 1, LayerPlayer)
	b := spawnTestCollider(world, core.Vec2{X: 10, Y: 10}, 1, LayerEnemy)

	if got := len(cs.Resolve()); got != 1 {
		t.Fatalf("tick 1: got %d pairs", got)
	}

	world.Destroy(b)
	world.Flush()
	if got := len(cs.Resolve()); got != 0 {
		t.Fatalf("tick 2 after flush: got %d pairs", got)
	}
}

func TestLayerMatrixIsSymmetric(t *testing.T) {
	for a := Layer(0); a < layerCount; a++ {
		for b := Layer(0); b < layerCount; b++ {
			if LayersCollide(a, b) != LayersCollide(b, a) {
				t.Fatalf("matrix asymmetric for %d/%d", a, b)
			}
		}
	}
}
