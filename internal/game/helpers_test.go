package game

import (
	"github.com/vovakirdan/tui-starblitz/internal/core"
	"github.com/vovakirdan/tui-starblitz/internal/ecs"
)

// spawnTestEnemy creates a bare enemy-layer collider for damage tests. It
// deliberately omits TagEnemy so the AI and wave director leave it alone.
func spawnTestEnemy(w *ecs.World, pos core.Vec2) ecs.Entity {
	e := w.Create()
	w.Add(e, TagTransform, &Transform{Pos: pos, ScaleX: 1, ScaleY: 1})
	w.Add(e, TagHealth, &Health{Current: 1, Max: 1})
	w.Add(e, TagCollider, &Collider{Radius: 1, Layer: LayerEnemy})
	return e
}

// spawnTestBullet creates a bullet entity on the requested layer.
func spawnTestBullet(w *ecs.World, pos core.Vec2, owner Owner) ecs.Entity {
	layer := LayerPlayerBullet
	if owner == OwnerEnemy {
		layer = LayerEnemyBullet
	}
	e := w.Create()
	w.Add(e, TagTransform, &Transform{Pos: pos, ScaleX: 1, ScaleY: 1})
	w.Add(e, TagVelocity, &Velocity{})
	w.Add(e, TagBullet, &Bullet{Owner: owner, Damage: 1})
	w.Add(e, TagCollider, &Collider{Radius: 0.5, Layer: layer})
	return e
}
