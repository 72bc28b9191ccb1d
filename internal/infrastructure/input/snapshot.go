// Package input turns device state into the controller's per-tick input.
package input

import (
	"math"

	"github.com/younwookim/burger/internal/application/controller"
)

// Snapshot is the input of a single frame
type Snapshot struct {
	Horizontal float64
	Vertical   float64
	Jump       bool // pressed this frame
	Throw      bool // pressed this frame
}

// Axis implements controller.Input
func (s Snapshot) Axis(a controller.Axis) float64 {
	switch a {
	case controller.AxisHorizontal:
		return s.Horizontal
	case controller.AxisVertical:
		return s.Vertical
	default:
		return 0
	}
}

// JustPressed implements controller.Input
func (s Snapshot) JustPressed(a controller.Action) bool {
	switch a {
	case controller.ActionJump:
		return s.Jump
	case controller.ActionThrow:
		return s.Throw
	default:
		return false
	}
}

// Source produces one snapshot per frame
type Source interface {
	Poll() Snapshot
}

// Latch holds the snapshot for the current frame so the controller can read
// it through the controller.Input interface
type Latch struct {
	current Snapshot
}

// Set replaces the current snapshot
func (l *Latch) Set(s Snapshot) {
	l.current = s
}

// Current returns the current snapshot
func (l *Latch) Current() Snapshot {
	return l.current
}

// Axis implements controller.Input
func (l *Latch) Axis(a controller.Axis) float64 {
	return l.current.Axis(a)
}

// JustPressed implements controller.Input
func (l *Latch) JustPressed(a controller.Action) bool {
	return l.current.JustPressed(a)
}

// clampAxis limits v to [-1, 1] and zeroes readings inside the dead zone
func clampAxis(v, deadZone float64) float64 {
	if math.IsNaN(v) || math.Abs(v) <= deadZone {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
