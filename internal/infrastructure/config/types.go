package config

import (
	"fmt"
	"time"

	"github.com/younwookim/burger/internal/domain/actor"
)

// ActorConfig is the root of actor.yaml.
type ActorConfig struct {
	Tunables   TunablesConfig   `yaml:"tunables"`
	Visuals    VisualsConfig    `yaml:"visuals"`
	Body       BodyConfig       `yaml:"body"`
	Anchors    AnchorsConfig    `yaml:"anchors"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

type TunablesConfig struct {
	MoveSpeed              float64       `yaml:"move_speed"`
	JumpImpulse            float64       `yaml:"jump_impulse"`
	ThrowImpulse           float64       `yaml:"throw_impulse"`
	ThrowDuration          time.Duration `yaml:"throw_duration"`
	AnimationFrameInterval time.Duration `yaml:"animation_frame_interval"`
}

type VisualsConfig struct {
	Right      []string `yaml:"right"`
	Left       []string `yaml:"left"`
	ThrowRight string   `yaml:"throw_right"`
	ThrowLeft  string   `yaml:"throw_left"`
}

// BodyConfig sizes the actor. A zero mass spawns it without a rigid body.
type BodyConfig struct {
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Mass   float64   `yaml:"mass"`
	Spawn  []float64 `yaml:"spawn"` // x, y, depth
}

type AnchorConfig struct {
	Offset   []float64 `yaml:"offset"` // x, y, depth relative to the actor
	AngleDeg float64   `yaml:"angle_deg"`
}

type AnchorsConfig struct {
	ThrowRight AnchorConfig `yaml:"throw_right"`
	ThrowLeft  AnchorConfig `yaml:"throw_left"`
}

type ProjectileConfig struct {
	Name       string        `yaml:"name"`
	Material   string        `yaml:"material"`
	Radius     float64       `yaml:"radius"`
	Mass       float64       `yaml:"mass"`
	Elasticity float64       `yaml:"elasticity"`
	Lifetime   time.Duration `yaml:"lifetime"`
	WithBody   bool          `yaml:"with_body"`
}

// WorldConfig is the root of world.yaml.
type WorldConfig struct {
	Display DisplayConfig `yaml:"display"`
	Physics PhysicsConfig `yaml:"physics"`
	Ground  GroundConfig  `yaml:"ground"`
}

type DisplayConfig struct {
	ScreenWidth   int     `yaml:"screen_width"`
	ScreenHeight  int     `yaml:"screen_height"`
	Scale         int     `yaml:"scale"`
	Framerate     int     `yaml:"framerate"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	DepthShift    float64 `yaml:"depth_shift"`
}

type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`
	DepthLimit float64 `yaml:"depth_limit"`
}

type GroundConfig struct {
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	KillY  float64 `yaml:"kill_y"` // projectiles below this are culled
}

// Config returns the controller tunables.
func (c ActorConfig) Config() (actor.Config, error) {
	cfg := actor.Config{
		MoveSpeed:     c.Tunables.MoveSpeed,
		JumpImpulse:   c.Tunables.JumpImpulse,
		ThrowImpulse:  c.Tunables.ThrowImpulse,
		ThrowDuration: c.Tunables.ThrowDuration,
		FrameInterval: c.Tunables.AnimationFrameInterval,
	}
	if err := cfg.Validate(); err != nil {
		return actor.Config{}, err
	}
	return cfg, nil
}

// VisualSet returns the actor's materials.
func (c ActorConfig) VisualSet() (actor.VisualSet, error) {
	return actor.VisualSetFromSlices(
		materials(c.Visuals.Right),
		materials(c.Visuals.Left),
		actor.Material(c.Visuals.ThrowRight),
		actor.Material(c.Visuals.ThrowLeft),
	)
}

// Validate checks everything the scene needs before spawning.
func (c ActorConfig) Validate() error {
	if _, err := c.Config(); err != nil {
		return err
	}
	if _, err := c.VisualSet(); err != nil {
		return err
	}
	if c.Body.Width <= 0 || c.Body.Height <= 0 {
		return fmt.Errorf("body size must be positive, got %gx%g", c.Body.Width, c.Body.Height)
	}
	if c.Body.Mass < 0 {
		return fmt.Errorf("body mass must not be negative, got %g", c.Body.Mass)
	}
	if c.Projectile.Name == "" {
		return fmt.Errorf("projectile name is required")
	}
	if c.Projectile.Radius <= 0 || c.Projectile.Mass <= 0 {
		return fmt.Errorf("projectile %s needs a positive radius and mass", c.Projectile.Name)
	}
	if err := checkVec("body.spawn", c.Body.Spawn); err != nil {
		return err
	}
	if err := checkVec("anchors.throw_right.offset", c.Anchors.ThrowRight.Offset); err != nil {
		return err
	}
	if err := checkVec("anchors.throw_left.offset", c.Anchors.ThrowLeft.Offset); err != nil {
		return err
	}
	return nil
}

// Vec3 expands up to three components into x, y and depth.
func Vec3(v []float64) (x, y, z float64) {
	var out [3]float64
	copy(out[:], v)
	return out[0], out[1], out[2]
}

func checkVec(name string, v []float64) error {
	if len(v) > 3 {
		return fmt.Errorf("%s has %d components, want at most 3", name, len(v))
	}
	return nil
}

func materials(names []string) []actor.Material {
	out := make([]actor.Material, len(names))
	for i, n := range names {
		out[i] = actor.Material(n)
	}
	return out
}
