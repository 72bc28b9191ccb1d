// Package actor holds the data model of the controllable actor: its mutable
// state, the immutable tunables and visual set it is configured with, and the
// spawn request it hands to the host when throwing.
package actor

// MoveDeadZone is the movement magnitude at or below which the actor is
// considered to be standing still.
const MoveDeadZone = 0.01

// GroundTag is the contact tag that returns an airborne actor to the ground.
const GroundTag = "Ground"

// State is the per-actor state owned and mutated by the controller.
type State struct {
	FacingRight bool
	Grounded    bool
	Throwing    bool
	Animating   bool
	FrameIndex  int // 0 or 1
}

// NewState returns the state of a freshly spawned actor:
// grounded, facing right, showing the first frame.
func NewState() State {
	return State{
		FacingRight: true,
		Grounded:    true,
	}
}

// NextFrame returns the other index of the two-frame flipbook.
func NextFrame(i int) int {
	return 1 - i
}
