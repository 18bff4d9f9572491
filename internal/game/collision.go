package game

import (
	"math"

	"github.com/vovakirdan/tui-starblitz/internal/ecs"
)

// Pair is one colliding entity pair for the current tick, with A created
// before B (store order).
type Pair struct {
	A, B ecs.Entity
}

// CollisionSystem finds colliding pairs with a uniform-grid broad phase and
// a circle narrow phase. The grid and pair cache are rebuilt from scratch
// every tick; with the entity turnover of a shooter, persistence would cost
// more in bookkeeping than it saves.
type CollisionSystem struct {
	world    *ecs.World
	cellSize float64

	// Reused across ticks to limit allocation churn.
	grid  map[gridKey][]ecs.Entity
	seen  map[Pair]struct{}
	pairs []Pair
}

type gridKey struct {
	X, Y int
}

// NewCollisionSystem creates a collision resolver. Cell size should be
// roughly 3-4x the typical collider radius.
func NewCollisionSystem(world *ecs.World, cellSize float64) *CollisionSystem {
	return &CollisionSystem{
		world:    world,
		cellSize: cellSize,
		grid:     make(map[gridKey][]ecs.Entity),
		seen:     make(map[Pair]struct{}),
	}
}

// Resolve returns the full set of colliding pairs for this tick. Each pair
// appears exactly once. Doomed-but-unflushed entities are skipped: a kill
// earlier in the tick must not produce further contacts.
func (s *CollisionSystem) Resolve() []Pair {
	for k := range s.grid {
		delete(s.grid, k)
	}
	for k := range s.seen {
		delete(s.seen, k)
	}
	s.pairs = s.pairs[:0]

	// Broad phase: insert every collider into its own cell and the 8
	// neighbors, so boundary-straddling pairs always share a cell.
	for _, e := range s.world.Query(TagTransform, TagCollider) {
		if s.world.Doomed(e) {
			continue
		}
		tr, _ := ecs.Get[*Transform](s.world, e, TagTransform)
		cx := int(math.Floor(tr.Pos.X / s.cellSize))
		cy := int(math.Floor(tr.Pos.Y / s.cellSize))
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				k := gridKey{cx + dx, cy + dy}
				s.grid[k] = append(s.grid[k], e)
			}
		}
	}

	// Narrow phase: unique pairs sharing a cell, layer-filtered, then the
	// exact circle test. The 9-cell insertion makes pairs show up in
	// several cells; the seen set deduplicates them.
	for _, cell := range s.grid {
		for i := 0; i < len(cell); i++ {
			for j := i + 1; j < len(cell); j++ {
				a, b := cell[i], cell[j]
				if b < a {
					a, b = b, a
				}
				p := Pair{A: a, B: b}
				if _, dup := s.seen[p]; dup {
					continue
				}
				s.seen[p] = struct{}{}

				ca, _ := ecs.Get[*Collider](s.world, a, TagCollider)
				cb, _ := ecs.Get[*Collider](s.world, b, TagCollider)
				if !LayersCollide(ca.Layer, cb.Layer) {
					continue
				}

				ta, _ := ecs.Get[*Transform](s.world, a, TagTransform)
				tb, _ := ecs.Get[*Transform](s.world, b, TagTransform)
				r := ca.Radius + cb.Radius
				if ta.Pos.Sub(tb.Pos).LenSq() < r*r {
					s.pairs = append(s.pairs, p)
				}
			}
		}
	}

	return s.pairs
}
