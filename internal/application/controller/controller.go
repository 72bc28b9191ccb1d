// Package controller implements the actor state machine. One Controller
// arbitrates four facets each tick: locomotion, flipbook animation, aerial
// dynamics and the timed throw action.
//
// The controller is single-threaded. Update, OnContact and every scheduled
// callback must run on the same goroutine, which is the host's update loop.
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/burger/internal/application/schedule"
	"github.com/younwookim/burger/internal/application/state"
	"github.com/younwookim/burger/internal/domain/actor"
)

// ErrMissingCapability is returned when a required dependency is nil.
var ErrMissingCapability = errors.New("controller: missing capability")

// Controller owns the actor state and drives it from per-tick input.
type Controller struct {
	deps    Deps
	cfg     actor.Config
	visuals actor.VisualSet

	state   actor.State
	current [2]actor.Material
	body    Body // resolved once; nil means jump and gravity are no-ops

	animToken  schedule.Token
	throwToken schedule.Token
}

// New validates its inputs and returns a controller in the spawn state,
// with the first right-facing frame rendered.
func New(deps Deps, cfg actor.Config, visuals actor.VisualSet) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := visuals.Validate(); err != nil {
		return nil, err
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		deps:    deps,
		cfg:     cfg,
		visuals: visuals,
		state:   actor.NewState(),
		body:    deps.Body,
	}
	if c.body == nil {
		log.Printf("controller: actor has no physics body, jump and gravity disabled")
	}
	c.current = visuals.Frames(c.state.FacingRight)
	c.deps.Renderer.SetMaterial(c.current[0])
	return c, nil
}

func (d Deps) validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"input", d.Input != nil},
		{"clock", d.Clock != nil},
		{"transform", d.Transform != nil},
		{"renderer", d.Renderer != nil},
		{"spawner", d.Spawner != nil},
		{"scheduler", d.Scheduler != nil},
		{"right throw point", d.ThrowPointRight != nil},
		{"left throw point", d.ThrowPointLeft != nil},
		{"gravity", d.Body == nil || d.Gravity != nil},
	}
	for _, r := range required {
		if !r.ok {
			return fmt.Errorf("%w: %s", ErrMissingCapability, r.name)
		}
	}
	if d.Projectile == "" {
		return fmt.Errorf("%w: projectile prefab", ErrMissingCapability)
	}
	return nil
}

// Update runs one simulation tick.
func (c *Controller) Update() {
	moving := c.updateLocomotion()
	c.updateAnimation(moving)

	if c.deps.Input.JustPressed(ActionJump) && c.state.Grounded {
		c.jump()
	}
	if c.deps.Input.JustPressed(ActionThrow) && !c.state.Throwing {
		c.startThrow()
	}
	if !c.state.Grounded {
		c.applyGravity()
	}
}

// OnContact handles a contact notification from the physics host.
func (c *Controller) OnContact(tag string) {
	if tag == actor.GroundTag {
		c.state.Grounded = true
	}
}

// Teardown cancels every pending activity. It is meant for despawning the
// actor, not for gameplay.
func (c *Controller) Teardown() {
	c.deps.Scheduler.Cancel(c.animToken)
	c.deps.Scheduler.Cancel(c.throwToken)
	c.animToken, c.throwToken = 0, 0
	c.state.Animating = false
}

// State returns a copy of the actor state.
func (c *Controller) State() actor.State {
	return c.state
}

// CurrentMaterials returns the flipbook selected by the current facing.
func (c *Controller) CurrentMaterials() [2]actor.Material {
	return c.current
}

// Config returns the tunables the controller was built with.
func (c *Controller) Config() actor.Config {
	return c.cfg
}

// Phases reports the phase of each timed facet.
func (c *Controller) Phases() state.Phases {
	var p state.Phases
	if c.state.Animating {
		p.Animation = state.AnimationPlaying
	}
	if !c.state.Grounded {
		p.Aerial = state.AerialAirborne
	}
	if c.state.Throwing {
		p.Throw = state.ThrowThrowing
	}
	return p
}

func (c *Controller) render(m actor.Material) {
	c.deps.Renderer.SetMaterial(m)
}
