package render

import (
	"math"

	"github.com/younwookim/burger/internal/domain/actor"
	"github.com/younwookim/burger/internal/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sprite writes an entity's material into the registry of entities. It is
// the controller's renderer.
type Sprite struct {
	entities *ecs.World
	id       ecs.EntityID
	writes   int
}

// NewSprite binds a renderer to entity id.
func NewSprite(entities *ecs.World, id ecs.EntityID) *Sprite {
	return &Sprite{entities: entities, id: id}
}

// SetMaterial implements controller.Renderer.
func (s *Sprite) SetMaterial(m actor.Material) {
	sp := s.entities.Sprite[s.id]
	sp.Material = m
	s.entities.Sprite[s.id] = sp
	s.writes++
}

// Material returns the material currently shown.
func (s *Sprite) Material() actor.Material {
	return s.entities.Sprite[s.id].Material
}

// Writes returns how many times the material was set.
func (s *Sprite) Writes() int {
	return s.writes
}

func angle(t ecs.Transform) float64 {
	if t.Rotation == (r3.Rotation{}) {
		return 0
	}
	d := t.Rotation.Rotate(actor.Right)
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return math.Atan2(d.Y, d.X)
}
