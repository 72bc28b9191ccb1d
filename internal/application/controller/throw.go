package controller

import (
	"github.com/younwookim/burger/internal/domain/actor"
	"gonum.org/v1/gonum/spatial/r3"
)

// startThrow enters the throw window: it shows the throw pose, spawns the
// projectile with an outward impulse and schedules the end of the hold.
func (c *Controller) startThrow() {
	c.state.Throwing = true
	if c.state.Animating {
		c.stopAnimation()
	}

	right := c.state.FacingRight
	c.render(c.visuals.ThrowPose(right))

	anchor := c.deps.ThrowPointLeft
	if right {
		anchor = c.deps.ThrowPointRight
	}
	req := actor.SpawnRequest{
		Prefab:      c.deps.Projectile,
		Position:    anchor.Position(),
		Orientation: anchor.Orientation(),
		Impulse:     r3.Scale(c.cfg.ThrowImpulse, actor.Facing(right)),
	}
	if e := c.deps.Spawner.Spawn(req); e != nil {
		body := e.Body()
		if body == nil {
			body = e.AttachBody()
		}
		if body != nil {
			body.ApplyImpulse(req.Impulse)
		}
	}

	c.throwToken = c.deps.Scheduler.After(c.cfg.ThrowDuration, c.finishThrow)
}

// finishThrow ends the hold. It always runs once the hold was scheduled.
func (c *Controller) finishThrow() {
	c.throwToken = 0
	c.render(c.current[0])
	c.state.Throwing = false
}
