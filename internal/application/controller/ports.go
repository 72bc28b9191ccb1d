package controller

import (
	"time"

	"github.com/younwookim/burger/internal/application/schedule"
	"github.com/younwookim/burger/internal/domain/actor"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis names a normalized input axis.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Action names a discrete, edge-triggered input.
type Action int

const (
	ActionJump Action = iota
	ActionThrow
)

// Input reads the per-tick input state.
type Input interface {
	// Axis returns a value in roughly [-1, 1].
	Axis(a Axis) float64
	// JustPressed is true only on the tick the press begins.
	JustPressed(a Action) bool
}

// Clock supplies the frame time.
type Clock interface {
	DeltaTime() float64 // seconds since the previous tick
}

// Transform is the actor's position in the world.
type Transform interface {
	Position() r3.Vec
	Translate(d r3.Vec)
}

// Body is a rigid body handle owned by the physics integrator.
type Body interface {
	ApplyImpulse(v r3.Vec)
	ApplyForce(v r3.Vec)
	Mass() float64
}

// Gravity supplies the world gravity vector.
type Gravity interface {
	Gravity() r3.Vec
}

// Renderer receives the actor's current appearance.
type Renderer interface {
	SetMaterial(m actor.Material)
}

// Entity is a handle to something the host spawned.
type Entity interface {
	// Body returns nil when the entity has no rigid body.
	Body() Body
	// AttachBody adds a rigid body and returns it.
	AttachBody() Body
}

// Spawner instantiates projectiles.
type Spawner interface {
	Spawn(req actor.SpawnRequest) Entity
}

// Anchor is a spawn point with a world position and orientation.
type Anchor interface {
	Position() r3.Vec
	Orientation() r3.Rotation
}

// Scheduler runs timed callbacks on the update goroutine.
type Scheduler interface {
	After(d time.Duration, fn func()) schedule.Token
	Every(d time.Duration, fn func()) schedule.Token
	Cancel(tok schedule.Token)
}

// Deps are the capabilities the controller consumes. Body is optional;
// every other field is required.
type Deps struct {
	Input     Input
	Clock     Clock
	Transform Transform
	Body      Body
	Gravity   Gravity
	Renderer  Renderer
	Spawner   Spawner
	Scheduler Scheduler

	ThrowPointRight Anchor
	ThrowPointLeft  Anchor
	Projectile      string // prefab name handed to the spawner
}
