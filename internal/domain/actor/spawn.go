package actor

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// Up is the world up axis.
	Up = r3.Vec{Y: 1}
	// Right is the world right axis.
	Right = r3.Vec{X: 1}
	// Left is the world left axis.
	Left = r3.Vec{X: -1}
	// Depth is the axis side-view rotations turn about.
	Depth = r3.Vec{Z: 1}
)

// Facing returns the unit axis the actor faces.
func Facing(facingRight bool) r3.Vec {
	if facingRight {
		return Right
	}
	return Left
}

// SpawnRequest is produced once per throw and handed to the host spawner.
// The controller does not own the spawned entity afterwards.
type SpawnRequest struct {
	Prefab      string
	Position    r3.Vec
	Orientation r3.Rotation
	Impulse     r3.Vec
}

// Positioner is anything with a world position.
type Positioner interface {
	Position() r3.Vec
}

// LocalAnchor is a spawn point that follows a parent, like a child
// transform: its world position is the parent position plus Offset.
type LocalAnchor struct {
	Parent   Positioner
	Offset   r3.Vec
	Rotation r3.Rotation
}

// NewLocalAnchor returns an anchor rotated angleDeg degrees about the depth axis.
func NewLocalAnchor(parent Positioner, offset r3.Vec, angleDeg float64) LocalAnchor {
	return LocalAnchor{
		Parent:   parent,
		Offset:   offset,
		Rotation: r3.NewRotation(angleDeg*math.Pi/180, Depth),
	}
}

// Position returns the anchor's world position.
func (a LocalAnchor) Position() r3.Vec {
	if a.Parent == nil {
		return a.Offset
	}
	return r3.Add(a.Parent.Position(), a.Offset)
}

// Orientation returns the anchor's world orientation.
func (a LocalAnchor) Orientation() r3.Rotation {
	return a.Rotation
}
