package workshop

import (
	"sort"

	"github.com/ImTheSquid/shuriken-workshop/internal/core"
)

// EntityID is a stable identifier for a live entity.
// Identifiers are never reused within a session.
type EntityID int

// Kind tags what an entity is.
type Kind uint8

const (
	KindProjectile Kind = iota
	KindTarget
	KindHealthMarker
)

// World is the entity registry: stable integer identifiers with parallel
// typed attribute maps. Iterating a capability means walking the map that
// stores it, so "every projectile" is "every identifier with a velocity".
type World struct {
	nextID EntityID

	kinds      map[EntityID]Kind
	positions  map[EntityID]core.Vec2 // entity centers, world units
	velocities map[EntityID]float64   // projectiles only: vertical units per tick
	indices    map[EntityID]int       // health markers only: display index

	// Creation order of the targets, the fixed enumeration order for
	// collision resolution.
	targetIDs []EntityID
}

// NewWorld creates an empty registry.
func NewWorld() *World {
	return &World{
		kinds:      make(map[EntityID]Kind),
		positions:  make(map[EntityID]core.Vec2),
		velocities: make(map[EntityID]float64),
		indices:    make(map[EntityID]int),
	}
}

// Spawn creates an entity of the given kind at a position and returns its
// identifier.
func (w *World) Spawn(kind Kind, pos core.Vec2) EntityID {
	id := w.nextID
	w.nextID++

	w.kinds[id] = kind
	w.positions[id] = pos
	if kind == KindTarget {
		w.targetIDs = append(w.targetIDs, id)
	}
	return id
}

// Restore inserts an entity under a specific identifier, advancing the
// allocator past it. Used when rebuilding from a snapshot.
func (w *World) Restore(id EntityID, kind Kind, pos core.Vec2) {
	w.kinds[id] = kind
	w.positions[id] = pos
	if id >= w.nextID {
		w.nextID = id + 1
	}
}

// Destroy removes an entity and all of its attributes.
func (w *World) Destroy(id EntityID) {
	if w.kinds[id] == KindTarget {
		for i, tid := range w.targetIDs {
			if tid == id {
				w.targetIDs = append(w.targetIDs[:i], w.targetIDs[i+1:]...)
				break
			}
		}
	}
	delete(w.kinds, id)
	delete(w.positions, id)
	delete(w.velocities, id)
	delete(w.indices, id)
}

// Position returns an entity's center.
func (w *World) Position(id EntityID) core.Vec2 {
	return w.positions[id]
}

// SetVelocity gives an entity a vertical velocity, making it a live
// projectile for iteration purposes.
func (w *World) SetVelocity(id EntityID, v float64) {
	w.velocities[id] = v
}

// Velocity returns an entity's vertical velocity and whether it has one.
func (w *World) Velocity(id EntityID) (float64, bool) {
	v, ok := w.velocities[id]
	return v, ok
}

// SetIndex assigns an entity a display index.
func (w *World) SetIndex(id EntityID, idx int) {
	w.indices[id] = idx
}

// ProjectileIDs returns every identifier present in the velocity mapping,
// in ascending order so each tick visits projectiles deterministically.
// The slice is a snapshot; destroying entries while walking it is safe.
func (w *World) ProjectileIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.velocities))
	for id := range w.velocities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ProjectileCount returns the number of live projectiles.
func (w *World) ProjectileCount() int {
	return len(w.velocities)
}

// TargetIDs returns the targets in creation order.
func (w *World) TargetIDs() []EntityID {
	return w.targetIDs
}

// HealthMarkerIDs returns the health markers in display-index order.
func (w *World) HealthMarkerIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.indices))
	for id := range w.indices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return w.indices[ids[i]] < w.indices[ids[j]] })
	return ids
}

// MarkerIndex returns a health marker's display index.
func (w *World) MarkerIndex(id EntityID) int {
	return w.indices[id]
}
