// Package physics adapts the Chipmunk rigid-body engine to the controller's
// body, transform, gravity and spawner capabilities. The world is a side
// view: X right, Y up. The depth axis (Z) is carried next to each 2D body
// and never takes part in collision.
package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/younwookim/burger/internal/domain/actor"
	"github.com/younwookim/burger/internal/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	collisionTypeGround cp.CollisionType = iota + 1
	collisionTypeActor
	collisionTypeProjectile
)

// Contact tags reported to actors.
const (
	TagGround     = actor.GroundTag
	TagProjectile = "Projectile"
)

// ContactFunc receives the tag of a shape an actor started touching.
type ContactFunc func(tag string)

// Settings configure the space and its static ground.
type Settings struct {
	Gravity    float64 // Y acceleration, negative pulls down
	GroundY    float64
	GroundMinX float64
	GroundMaxX float64
	DepthLimit float64 // |Z| clamp for actors; 0 disables
}

// World owns the Chipmunk space and the bodies of every physical entity.
type World struct {
	settings Settings
	space    *cp.Space
	entities *ecs.World
	prefabs  map[string]Prefab

	bodies map[ecs.EntityID]*cp.Body
	shapes map[ecs.EntityID]*cp.Shape
	actors map[*cp.Shape]*ActorBody
}

// NewWorld creates a space with gravity and a ground segment.
func NewWorld(s Settings, entities *ecs.World) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: s.Gravity})

	w := &World{
		settings: s,
		space:    space,
		entities: entities,
		prefabs:  make(map[string]Prefab),
		bodies:   make(map[ecs.EntityID]*cp.Body),
		shapes:   make(map[ecs.EntityID]*cp.Shape),
		actors:   make(map[*cp.Shape]*ActorBody),
	}
	w.buildGround()
	w.setupHandlers()
	return w
}

// Entities returns the registry the world keeps in sync.
func (w *World) Entities() *ecs.World {
	return w.entities
}

// Gravity implements controller.Gravity.
func (w *World) Gravity() r3.Vec {
	return r3.Vec{Y: w.settings.Gravity}
}

// BodyCount returns the number of dynamic bodies, actors included.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

func (w *World) buildGround() {
	a := cp.Vector{X: w.settings.GroundMinX, Y: w.settings.GroundY}
	b := cp.Vector{X: w.settings.GroundMaxX, Y: w.settings.GroundY}
	shape := cp.NewSegment(w.space.StaticBody, a, b, 0)
	shape.SetFriction(1)
	shape.SetCollisionType(collisionTypeGround)
	w.space.AddShape(shape)
}

func (w *World) setupHandlers() {
	groundHandler := w.space.NewCollisionHandler(collisionTypeActor, collisionTypeGround)
	groundHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		w.notify(arb, TagGround)
		return true
	}

	// projectiles pass through their thrower
	projectileHandler := w.space.NewCollisionHandler(collisionTypeActor, collisionTypeProjectile)
	projectileHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		w.notify(arb, TagProjectile)
		return false
	}
}

func (w *World) notify(arb *cp.Arbiter, tag string) {
	shapeA, shapeB := arb.Shapes()
	a, ok := w.actors[shapeA]
	if !ok {
		a, ok = w.actors[shapeB]
	}
	if !ok || a.onContact == nil {
		return
	}
	a.onContact(tag)
}

// Step advances the simulation by dt seconds and copies body placement
// back into the entity registry.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
	ecs.AgeProjectiles(w.entities, dt)
	for id, body := range w.bodies {
		t, ok := w.entities.Transform[id]
		if !ok {
			continue
		}
		p := body.Position()
		t.Position = r3.Vec{X: p.X, Y: p.Y, Z: t.Position.Z}
		if _, isProjectile := w.entities.IsProjectile[id]; isProjectile {
			t.Rotation = r3.NewRotation(body.Angle(), actor.Depth)
		}
		w.entities.Transform[id] = t
	}
}

// Cull removes projectiles that expired or left bounds, bodies included.
func (w *World) Cull(bounds ecs.Bounds) int {
	culled := ecs.CullProjectiles(w.entities, bounds)
	for _, id := range culled {
		w.removeBody(id)
	}
	return len(culled)
}

func (w *World) removeBody(id ecs.EntityID) {
	if shape, ok := w.shapes[id]; ok {
		w.space.RemoveShape(shape)
		delete(w.actors, shape)
		delete(w.shapes, id)
	}
	if body, ok := w.bodies[id]; ok {
		w.space.RemoveBody(body)
		delete(w.bodies, id)
	}
}

func toCP(v r3.Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}
