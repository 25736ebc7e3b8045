package superhero

import "fmt"

// World owns every non-player entity. Each entity is held in the "all"
// list and in exactly one role partition, both in spawn order.
type World struct {
	all          []*Entity
	projectiles  []*Entity
	enemies      []*Entity
	collectibles []*Entity
	effects      []*Entity
	nextSeq      uint64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Add registers an entity in "all" and in its role partition.
func (w *World) Add(e *Entity) {
	w.nextSeq++
	e.Seq = w.nextSeq
	w.all = append(w.all, e)

	p := w.partition(e.Kind)
	*p = append(*p, e)
}

func (w *World) partition(k Kind) *[]*Entity {
	switch k {
	case KindProjectile:
		return &w.projectiles
	case KindEnemy:
		return &w.enemies
	case KindCollectible:
		return &w.collectibles
	case KindEffect:
		return &w.effects
	default:
		panic(fmt.Sprintf("superhero: no partition for entity kind %d", k))
	}
}

// Update advances every live entity present at the start of the call.
func (w *World) Update(a Arena) {
	for _, e := range w.all {
		if e.Alive {
			e.Update(a)
		}
	}
}

// Sweep drops dead entities from every list and returns how many were removed.
func (w *World) Sweep() int {
	before := len(w.all)
	w.all = compact(w.all)
	w.projectiles = compact(w.projectiles)
	w.enemies = compact(w.enemies)
	w.collectibles = compact(w.collectibles)
	w.effects = compact(w.effects)
	return before - len(w.all)
}

// compact filters dead entities in place, keeping order.
func compact(list []*Entity) []*Entity {
	kept := list[:0]
	for _, e := range list {
		if e.Alive {
			kept = append(kept, e)
		}
	}
	// Release pointers past the new length.
	clear(list[len(kept):])
	return kept
}

// Clear kills every entity of the given kind. They are removed on the next Sweep.
func (w *World) Clear(k Kind) {
	for _, e := range *w.partition(k) {
		e.Kill()
	}
}

// Reset empties the world.
func (w *World) Reset() {
	*w = World{}
}

func (w *World) All() []*Entity { return w.all }
func (w *World) Projectiles() []*Entity { return w.projectiles }
func (w *World) Enemies() []*Entity { return w.enemies }
func (w *World) Collectibles() []*Entity { return w.collectibles }
func (w *World) Effects() []*Entity { return w.effects }

// Boss returns the live boss, or nil.
func (w *World) Boss() *Entity {
	for _, e := range w.enemies {
		if e.Alive && e.IsBoss() {
			return e
		}
	}
	return nil
}
