package controller

import (
	"github.com/younwookim/burger/internal/domain/actor"
	"gonum.org/v1/gonum/spatial/r3"
)

// normalizeEpsilon is the length below which a vector normalizes to zero.
const normalizeEpsilon = 1e-5

// updateLocomotion reads the axes, picks the facing and translates the
// actor. It reports whether the actor is moving this tick.
func (c *Controller) updateLocomotion() bool {
	h := c.deps.Input.Axis(AxisHorizontal)
	v := c.deps.Input.Axis(AxisVertical)
	movement := normalize(r3.Vec{X: h, Z: v})

	// Facing is frozen for the whole throw window.
	if !c.state.Throwing {
		switch {
		case h > 0:
			c.face(true)
		case h < 0:
			c.face(false)
		}
	}

	if r3.Norm(movement) <= actor.MoveDeadZone {
		return false
	}
	step := c.cfg.MoveSpeed * c.deps.Clock.DeltaTime()
	c.deps.Transform.Translate(r3.Scale(step, movement))
	return true
}

func (c *Controller) face(right bool) {
	c.state.FacingRight = right
	c.current = c.visuals.Frames(right)
}

func normalize(v r3.Vec) r3.Vec {
	if r3.Norm(v) <= normalizeEpsilon {
		return r3.Vec{}
	}
	return r3.Unit(v)
}
