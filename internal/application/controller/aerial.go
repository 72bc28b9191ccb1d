package controller

import (
	"github.com/younwookim/burger/internal/domain/actor"
	"gonum.org/v1/gonum/spatial/r3"
)

// jump issues a single upward impulse and leaves the ground immediately.
// Without a body nothing happens and the actor stays grounded.
func (c *Controller) jump() {
	if c.body == nil {
		return
	}
	c.body.ApplyImpulse(r3.Scale(c.cfg.JumpImpulse, actor.Up))
	c.state.Grounded = false
}

// applyGravity requests this tick's weight force from the integrator.
func (c *Controller) applyGravity() {
	if c.body == nil {
		return
	}
	c.body.ApplyForce(r3.Scale(c.body.Mass(), c.deps.Gravity.Gravity()))
}
