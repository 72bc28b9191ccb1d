package actor

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func testVisuals() VisualSet {
	return VisualSet{
		RightFrames:    [2]Material{"run_right_0", "run_right_1"},
		LeftFrames:     [2]Material{"run_left_0", "run_left_1"},
		ThrowPoseRight: "throw_right",
		ThrowPoseLeft:  "throw_left",
	}
}

func TestNewState(t *testing.T) {
	s := NewState()

	assert.True(t, s.FacingRight)
	assert.True(t, s.Grounded)
	assert.False(t, s.Throwing)
	assert.False(t, s.Animating)
	assert.Equal(t, 0, s.FrameIndex)
}

func TestNextFrame(t *testing.T) {
	assert.Equal(t, 1, NextFrame(0))
	assert.Equal(t, 0, NextFrame(1))
}

func TestVisualSet_Selectors(t *testing.T) {
	v := testVisuals()

	assert.Equal(t, v.RightFrames, v.Frames(true))
	assert.Equal(t, v.LeftFrames, v.Frames(false))
	assert.Equal(t, Material("throw_right"), v.ThrowPose(true))
	assert.Equal(t, Material("throw_left"), v.ThrowPose(false))
}

func TestVisualSet_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *VisualSet)
	}{
		{"empty right frame", func(v *VisualSet) { v.RightFrames[1] = "" }},
		{"empty left frame", func(v *VisualSet) { v.LeftFrames[0] = "" }},
		{"empty right pose", func(v *VisualSet) { v.ThrowPoseRight = "" }},
		{"empty left pose", func(v *VisualSet) { v.ThrowPoseLeft = "" }},
	}

	require.NoError(t, testVisuals().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVisuals()
			tt.mutate(&v)
			assert.ErrorIs(t, v.Validate(), ErrInvalidVisualSet)
		})
	}
}

func TestVisualSetFromSlices(t *testing.T) {
	v, err := VisualSetFromSlices(
		[]Material{"run_right_0", "run_right_1"},
		[]Material{"run_left_0", "run_left_1"},
		"throw_right", "throw_left",
	)
	require.NoError(t, err)
	assert.Equal(t, testVisuals(), v)

	_, err = VisualSetFromSlices([]Material{"a"}, []Material{"b", "c"}, "d", "e")
	assert.ErrorIs(t, err, ErrInvalidVisualSet)

	_, err = VisualSetFromSlices([]Material{"a", "b"}, nil, "d", "e")
	assert.ErrorIs(t, err, ErrInvalidVisualSet)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative speed", func(c *Config) { c.MoveSpeed = -1 }},
		{"NaN jump", func(c *Config) { c.JumpImpulse = math.NaN() }},
		{"infinite throw", func(c *Config) { c.ThrowImpulse = math.Inf(1) }},
		{"zero throw duration", func(c *Config) { c.ThrowDuration = 0 }},
		{"negative frame interval", func(c *Config) { c.FrameInterval = -time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

type fixedPos r3.Vec

func (p fixedPos) Position() r3.Vec { return r3.Vec(p) }

func TestLocalAnchor_FollowsParent(t *testing.T) {
	parent := fixedPos{X: 3, Y: 1, Z: -2}
	a := NewLocalAnchor(parent, r3.Vec{X: 0.5, Y: 0.25}, 0)

	assert.Equal(t, r3.Vec{X: 3.5, Y: 1.25, Z: -2}, a.Position())

	detached := LocalAnchor{Offset: r3.Vec{X: 1}}
	assert.Equal(t, r3.Vec{X: 1}, detached.Position())
}

func TestLocalAnchor_Orientation(t *testing.T) {
	a := NewLocalAnchor(nil, r3.Vec{}, 90)

	got := a.Orientation().Rotate(Right)
	assert.InDelta(t, 0.0, got.X, 1e-9)
	assert.InDelta(t, 1.0, got.Y, 1e-9)
}

func TestFacing(t *testing.T) {
	assert.Equal(t, r3.Vec{X: 1}, Facing(true))
	assert.Equal(t, r3.Vec{X: -1}, Facing(false))
}
