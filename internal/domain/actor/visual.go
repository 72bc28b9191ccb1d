package actor

import (
	"errors"
	"fmt"
)

// ErrInvalidVisualSet is returned when a visual set has missing references.
var ErrInvalidVisualSet = errors.New("actor: invalid visual set")

// Material references a renderable surface appearance by name.
type Material string

// VisualSet is the set of appearances the actor switches between.
// It is selected from, never mutated, by the controller.
type VisualSet struct {
	RightFrames    [2]Material
	LeftFrames     [2]Material
	ThrowPoseRight Material
	ThrowPoseLeft  Material
}

// Frames returns the locomotion flipbook for the given facing.
func (v VisualSet) Frames(facingRight bool) [2]Material {
	if facingRight {
		return v.RightFrames
	}
	return v.LeftFrames
}

// ThrowPose returns the throw appearance for the given facing.
func (v VisualSet) ThrowPose(facingRight bool) Material {
	if facingRight {
		return v.ThrowPoseRight
	}
	return v.ThrowPoseLeft
}

// Validate reports the first empty reference in the set.
func (v VisualSet) Validate() error {
	for i, m := range v.RightFrames {
		if m == "" {
			return fmt.Errorf("%w: right frame %d is empty", ErrInvalidVisualSet, i)
		}
	}
	for i, m := range v.LeftFrames {
		if m == "" {
			return fmt.Errorf("%w: left frame %d is empty", ErrInvalidVisualSet, i)
		}
	}
	if v.ThrowPoseRight == "" {
		return fmt.Errorf("%w: right throw pose is empty", ErrInvalidVisualSet)
	}
	if v.ThrowPoseLeft == "" {
		return fmt.Errorf("%w: left throw pose is empty", ErrInvalidVisualSet)
	}
	return nil
}

// VisualSetFromSlices builds a visual set from loosely typed frame lists,
// failing unless each list holds exactly two frames.
func VisualSetFromSlices(right, left []Material, throwRight, throwLeft Material) (VisualSet, error) {
	if len(right) != 2 {
		return VisualSet{}, fmt.Errorf("%w: want 2 right frames, got %d", ErrInvalidVisualSet, len(right))
	}
	if len(left) != 2 {
		return VisualSet{}, fmt.Errorf("%w: want 2 left frames, got %d", ErrInvalidVisualSet, len(left))
	}
	v := VisualSet{
		RightFrames:    [2]Material{right[0], right[1]},
		LeftFrames:     [2]Material{left[0], left[1]},
		ThrowPoseRight: throwRight,
		ThrowPoseLeft:  throwLeft,
	}
	if err := v.Validate(); err != nil {
		return VisualSet{}, err
	}
	return v, nil
}
