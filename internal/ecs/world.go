// Package ecs provides a small entity/component store for the simulation.
// Entities are opaque identifiers; components are arbitrary values keyed by
// (entity, tag). The store has no game knowledge.
//
// Destruction is deferred: Destroy marks an entity and Flush performs the
// actual removal. Between the two, the entity remains fully queryable so
// that systems running later in the same tick can still observe it.
package ecs

// Entity is an opaque identifier with no inherent data. The zero value is
// never returned by Create and can be used as "no entity".
type Entity uint64

// Tag identifies a component kind. Consumers define their own tag constants
// starting from 0.
type Tag uint8

// MaxTags is the number of distinct component tags the store supports.
const MaxTags = 32

// World owns all entity and component data.
type World struct {
	nextID Entity
	order  []Entity       // live entities in creation order
	index  map[Entity]int // entity -> position in order
	comps  [MaxTags]map[Entity]any
	doomed map[Entity]bool // marked for destruction, swept by Flush
}

// NewWorld creates an empty store.
func NewWorld() *World {
	w := &World{
		index:  make(map[Entity]int),
		doomed: make(map[Entity]bool),
	}
	for i := range w.comps {
		w.comps[i] = make(map[Entity]any)
	}
	return w
}

// Create allocates a new entity with no components.
func (w *World) Create() Entity {
	w.nextID++
	e := w.nextID
	w.index[e] = len(w.order)
	w.order = append(w.order, e)
	return e
}

// Destroy marks an entity for removal at the next Flush. Safe to call more
// than once; the entity stays queryable until the flush point.
func (w *World) Destroy(e Entity) {
	if _, ok := w.index[e]; ok {
		w.doomed[e] = true
	}
}

// Alive reports whether the entity exists in the store. Entities marked by
// Destroy remain alive until Flush.
func (w *World) Alive(e Entity) bool {
	_, ok := w.index[e]
	return ok
}

// Doomed reports whether the entity is marked for destruction.
func (w *World) Doomed(e Entity) bool {
	return w.doomed[e]
}

// Add stores a component value for (entity, tag), replacing any previous
// value. Adding to an unknown entity is a no-op.
func (w *World) Add(e Entity, t Tag, v any) {
	if _, ok := w.index[e]; !ok {
		return
	}
	w.comps[t][e] = v
}

// Get returns the raw component value for (entity, tag).
func (w *World) Get(e Entity, t Tag) (any, bool) {
	v, ok := w.comps[t][e]
	return v, ok
}

// Has reports whether the entity holds a component with the given tag.
func (w *World) Has(e Entity, t Tag) bool {
	_, ok := w.comps[t][e]
	return ok
}

// Remove deletes a single component from an entity without destroying it.
func (w *World) Remove(e Entity, t Tag) {
	delete(w.comps[t], e)
}

// Query returns all entities holding every listed tag, in creation order.
// The order is stable within a tick, which keeps iteration deterministic.
// Entities marked by Destroy are included until Flush.
func (w *World) Query(tags ...Tag) []Entity {
	var out []Entity
	for _, e := range w.order {
		match := true
		for _, t := range tags {
			if _, ok := w.comps[t][e]; !ok {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// Flush performs all deferred destructions: doomed entities and their
// components are removed and cease to appear in queries. Called exactly
// once per tick, after every system has run.
func (w *World) Flush() {
	if len(w.doomed) == 0 {
		return
	}
	kept := w.order[:0]
	for _, e := range w.order {
		if w.doomed[e] {
			delete(w.index, e)
			for i := range w.comps {
				delete(w.comps[i], e)
			}
			continue
		}
		w.index[e] = len(kept)
		kept = append(kept, e)
	}
	w.order = kept
	w.doomed = make(map[Entity]bool)
}

// Clear resets the store to empty. ID allocation continues from where it
// was, so entity identifiers are never reused within a session.
func (w *World) Clear() {
	w.order = w.order[:0]
	w.index = make(map[Entity]int)
	w.doomed = make(map[Entity]bool)
	for i := range w.comps {
		w.comps[i] = make(map[Entity]any)
	}
}

// Len returns the number of live entities, including doomed-but-unflushed.
func (w *World) Len() int {
	return len(w.order)
}

// Get retrieves a typed component for (entity, tag). The second return is
// false if the component is absent or holds a different type.
func Get[T any](w *World, e Entity, t Tag) (T, bool) {
	v, ok := w.comps[t][e]
	if !ok {
		var zero T
		return zero, false
	}
	tv, ok := v.(T)
	return tv, ok
}
