package ecs

import (
	"github.com/younwookim/burger/internal/domain/actor"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is an entity's world placement (Y up, Z depth)
type Transform struct {
	Position r3.Vec
	Rotation r3.Rotation
}

// Sprite is what the renderer draws for an entity
type Sprite struct {
	Material actor.Material
	Width    float64 // world units
	Height   float64
}

// Projectile tracks a spawned projectile until it is culled
type Projectile struct {
	Prefab   string
	Age      float64 // seconds since spawn
	Lifetime float64 // seconds; 0 means unlimited
}

// Expired reports whether the projectile has outlived its lifetime
func (p Projectile) Expired() bool {
	return p.Lifetime > 0 && p.Age >= p.Lifetime
}

// Bounds is the region outside of which projectiles are culled
type Bounds struct {
	MinX, MaxX float64
	MinY       float64
}

// Contains reports whether pos lies inside the bounds
func (b Bounds) Contains(pos r3.Vec) bool {
	return pos.X >= b.MinX && pos.X <= b.MaxX && pos.Y >= b.MinY
}
