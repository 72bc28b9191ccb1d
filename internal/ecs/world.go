package ecs

import "sort"

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Transform      map[EntityID]Transform
	Sprite         map[EntityID]Sprite
	ProjectileData map[EntityID]Projectile

	// Tags
	IsActor      map[EntityID]struct{}
	IsProjectile map[EntityID]struct{}

	// Singleton references
	ActorID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:         1, // 0 is "nil"
		Transform:      make(map[EntityID]Transform),
		Sprite:         make(map[EntityID]Sprite),
		ProjectileData: make(map[EntityID]Projectile),
		IsActor:        make(map[EntityID]struct{}),
		IsProjectile:   make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Transform, id)
	delete(w.Sprite, id)
	delete(w.ProjectileData, id)
	delete(w.IsActor, id)
	delete(w.IsProjectile, id)
	if w.ActorID == id {
		w.ActorID = 0
	}
}

// Exists checks if an entity has a Transform component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Transform[id]
	return ok
}

// CreateActor creates the controllable actor entity
func (w *World) CreateActor(t Transform, s Sprite) EntityID {
	id := w.NewEntity()

	w.Transform[id] = t
	w.Sprite[id] = s
	w.IsActor[id] = struct{}{}

	w.ActorID = id
	return id
}

// CreateProjectile creates a projectile entity
func (w *World) CreateProjectile(t Transform, s Sprite, p Projectile) EntityID {
	id := w.NewEntity()

	w.Transform[id] = t
	w.Sprite[id] = s
	w.ProjectileData[id] = p
	w.IsProjectile[id] = struct{}{}

	return id
}

// Projectiles returns the live projectile IDs in creation order
func (w *World) Projectiles() []EntityID {
	ids := make([]EntityID, 0, len(w.IsProjectile))
	for id := range w.IsProjectile {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CountProjectiles returns the number of live projectiles
func (w *World) CountProjectiles() int {
	return len(w.IsProjectile)
}
