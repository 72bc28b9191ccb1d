// Package state names the phases of the actor's timed facets.
package state

import "fmt"

// AnimationPhase is the state of the flipbook toggle.
type AnimationPhase int

const (
	AnimationIdle AnimationPhase = iota
	AnimationPlaying
)

// String returns the string representation of the animation phase
func (p AnimationPhase) String() string {
	switch p {
	case AnimationIdle:
		return "Idle"
	case AnimationPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// AerialPhase is the state of the jump/gravity facet.
type AerialPhase int

const (
	AerialGrounded AerialPhase = iota
	AerialAirborne
)

// String returns the string representation of the aerial phase
func (p AerialPhase) String() string {
	switch p {
	case AerialGrounded:
		return "Grounded"
	case AerialAirborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// ThrowPhase is the state of the throw action.
type ThrowPhase int

const (
	ThrowReady ThrowPhase = iota
	ThrowThrowing
)

// String returns the string representation of the throw phase
func (p ThrowPhase) String() string {
	switch p {
	case ThrowReady:
		return "Ready"
	case ThrowThrowing:
		return "Throwing"
	default:
		return "Unknown"
	}
}

// Phases is a snapshot of all facet phases, used by the debug overlay.
type Phases struct {
	Animation AnimationPhase
	Aerial    AerialPhase
	Throw     ThrowPhase
}

// String returns a compact one-line summary
func (p Phases) String() string {
	return fmt.Sprintf("anim=%s aerial=%s throw=%s", p.Animation, p.Aerial, p.Throw)
}
