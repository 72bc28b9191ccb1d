package controller

// updateAnimation starts the flipbook when movement begins and stops it when
// movement ends. Neither transition happens during a throw.
func (c *Controller) updateAnimation(moving bool) {
	if c.state.Throwing {
		return
	}
	switch {
	case moving && !c.state.Animating:
		c.startAnimation()
	case !moving && c.state.Animating:
		c.stopAnimation()
		c.render(c.current[0])
	}
}

func (c *Controller) startAnimation() {
	c.state.Animating = true
	c.toggleFrame()
	c.animToken = c.deps.Scheduler.Every(c.cfg.FrameInterval, c.toggleFrame)
}

// stopAnimation cancels only the flipbook activity.
func (c *Controller) stopAnimation() {
	c.deps.Scheduler.Cancel(c.animToken)
	c.animToken = 0
	c.state.Animating = false
	c.state.FrameIndex = 0
}

func (c *Controller) toggleFrame() {
	// A tick that outlived its activity must not write a stale frame.
	if !c.state.Animating || c.state.Throwing {
		return
	}
	c.render(c.current[c.state.FrameIndex])
	c.state.FrameIndex = 1 - c.state.FrameIndex
}
