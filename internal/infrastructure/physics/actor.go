package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/burger/internal/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// ActorBody is a non-rotating box body. The space's gravity does not act on
// it; its owner requests weight explicitly through ApplyForce.
type ActorBody struct {
	world     *World
	id        ecs.EntityID
	body      *cp.Body
	shape     *cp.Shape
	onContact ContactFunc
}

// NewActor creates the actor entity and its body centred on pos.
func (w *World) NewActor(pos r3.Vec, width, height, mass float64, sprite ecs.Sprite) *ActorBody {
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(toCP(pos))
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
	})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeActor)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	if sprite.Width == 0 && sprite.Height == 0 {
		sprite.Width, sprite.Height = width, height
	}
	id := w.entities.CreateActor(ecs.Transform{Position: pos}, sprite)
	w.bodies[id] = body
	w.shapes[id] = shape

	a := &ActorBody{world: w, id: id, body: body, shape: shape}
	w.actors[shape] = a
	log.Printf("physics: created actor body %d (mass %.2f)", id, mass)
	return a
}

// ID returns the actor's entity ID.
func (a *ActorBody) ID() ecs.EntityID {
	return a.id
}

// OnContact registers the receiver of contact notifications.
func (a *ActorBody) OnContact(fn ContactFunc) {
	a.onContact = fn
}

// Position implements controller.Transform.
func (a *ActorBody) Position() r3.Vec {
	p := a.body.Position()
	return r3.Vec{X: p.X, Y: p.Y, Z: a.depth()}
}

// Translate implements controller.Transform. It moves the body directly,
// bypassing the integrator.
func (a *ActorBody) Translate(d r3.Vec) {
	p := a.body.Position()
	a.body.SetPosition(cp.Vector{X: p.X + d.X, Y: p.Y + d.Y})

	t := a.world.entities.Transform[a.id]
	z := t.Position.Z + d.Z
	if limit := a.world.settings.DepthLimit; limit > 0 {
		z = math.Max(-limit, math.Min(limit, z))
	}
	t.Position = r3.Vec{X: p.X + d.X, Y: p.Y + d.Y, Z: z}
	a.world.entities.Transform[a.id] = t
}

func (a *ActorBody) depth() float64 {
	return a.world.entities.Transform[a.id].Position.Z
}

// Velocity returns the body's linear velocity.
func (a *ActorBody) Velocity() r3.Vec {
	v := a.body.Velocity()
	return r3.Vec{X: v.X, Y: v.Y}
}

// ApplyImpulse implements controller.Body.
func (a *ActorBody) ApplyImpulse(v r3.Vec) {
	a.body.ApplyImpulseAtWorldPoint(toCP(v), a.body.Position())
}

// ApplyForce implements controller.Body. Forces last for one step.
func (a *ActorBody) ApplyForce(v r3.Vec) {
	a.body.ApplyForceAtWorldPoint(toCP(v), a.body.Position())
}

// Mass implements controller.Body.
func (a *ActorBody) Mass() float64 {
	return a.body.Mass()
}
