package actor

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned when a tunable is out of range.
var ErrInvalidConfig = errors.New("actor: invalid config")

// Config holds the immutable tunables supplied at construction.
type Config struct {
	MoveSpeed     float64       // units per second
	JumpImpulse   float64       // upward impulse magnitude
	ThrowImpulse  float64       // outward impulse applied to the projectile
	ThrowDuration time.Duration // how long the throw pose is held
	FrameInterval time.Duration // flipbook toggle period
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:     2,
		JumpImpulse:   5,
		ThrowImpulse:  10,
		ThrowDuration: 500 * time.Millisecond,
		FrameInterval: 100 * time.Millisecond,
	}
}

// Validate checks every tunable.
func (c Config) Validate() error {
	scalars := []struct {
		name string
		v    float64
	}{
		{"move speed", c.MoveSpeed},
		{"jump impulse", c.JumpImpulse},
		{"throw impulse", c.ThrowImpulse},
	}
	for _, s := range scalars {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) || s.v < 0 {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %v", ErrInvalidConfig, s.name, s.v)
		}
	}
	if c.ThrowDuration <= 0 {
		return fmt.Errorf("%w: throw duration must be positive, got %v", ErrInvalidConfig, c.ThrowDuration)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame interval must be positive, got %v", ErrInvalidConfig, c.FrameInterval)
	}
	return nil
}
