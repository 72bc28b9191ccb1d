package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/burger/internal/application/controller"
	"github.com/younwookim/burger/internal/domain/actor"
	"github.com/younwookim/burger/internal/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// Prefab describes a spawnable projectile.
type Prefab struct {
	Material   actor.Material
	Radius     float64
	Mass       float64
	Lifetime   float64 // seconds; 0 keeps it until it leaves bounds
	Elasticity float64
	WithBody   bool // spawn with a body already attached
}

// RegisterPrefab makes name spawnable.
func (w *World) RegisterPrefab(name string, p Prefab) {
	w.prefabs[name] = p
}

// Spawn implements controller.Spawner. Unknown prefabs spawn nothing.
func (w *World) Spawn(req actor.SpawnRequest) controller.Entity {
	prefab, ok := w.prefabs[req.Prefab]
	if !ok {
		log.Printf("physics: unknown prefab %q", req.Prefab)
		return nil
	}

	size := prefab.Radius * 2
	id := w.entities.CreateProjectile(
		ecs.Transform{Position: req.Position, Rotation: req.Orientation},
		ecs.Sprite{Material: prefab.Material, Width: size, Height: size},
		ecs.Projectile{Prefab: req.Prefab, Lifetime: prefab.Lifetime},
	)
	p := &Projectile{world: w, id: id, prefab: prefab}
	if prefab.WithBody {
		p.AttachBody()
	}
	return p
}

// Projectile is the handle returned to the thrower.
type Projectile struct {
	world  *World
	id     ecs.EntityID
	prefab Prefab
	body   *cp.Body
}

// ID returns the projectile's entity ID.
func (p *Projectile) ID() ecs.EntityID {
	return p.id
}

// Body implements controller.Entity.
func (p *Projectile) Body() controller.Body {
	if p.body == nil {
		return nil
	}
	return rigidBody{p.body}
}

// AttachBody implements controller.Entity. The body falls under the
// space's gravity.
func (p *Projectile) AttachBody() controller.Body {
	if p.body != nil {
		return rigidBody{p.body}
	}
	t, ok := p.world.entities.Transform[p.id]
	if !ok {
		return nil
	}

	mass := p.prefab.Mass
	if mass <= 0 {
		mass = 1
	}
	radius := p.prefab.Radius
	if radius <= 0 {
		radius = 0.1
	}
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(toCP(t.Position))
	body.SetAngle(angleOf(t.Rotation))
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFriction(0.7)
	shape.SetElasticity(p.prefab.Elasticity)
	shape.SetCollisionType(collisionTypeProjectile)

	p.world.space.AddBody(body)
	p.world.space.AddShape(shape)
	p.world.bodies[p.id] = body
	p.world.shapes[p.id] = shape
	p.body = body
	log.Printf("physics: attached body to projectile %d", p.id)
	return rigidBody{body}
}

// angleOf returns the side-view angle of rot.
func angleOf(rot r3.Rotation) float64 {
	if rot == (r3.Rotation{}) {
		return 0
	}
	d := rot.Rotate(actor.Right)
	return math.Atan2(d.Y, d.X)
}

// rigidBody adapts a plain Chipmunk body to controller.Body.
type rigidBody struct {
	body *cp.Body
}

func (b rigidBody) ApplyImpulse(v r3.Vec) {
	b.body.ApplyImpulseAtWorldPoint(toCP(v), b.body.Position())
}

func (b rigidBody) ApplyForce(v r3.Vec) {
	b.body.ApplyForceAtWorldPoint(toCP(v), b.body.Position())
}

func (b rigidBody) Mass() float64 {
	return b.body.Mass()
}
