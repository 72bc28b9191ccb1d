package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/burger/internal/application/controller"
	"github.com/younwookim/burger/internal/domain/actor"
	"github.com/younwookim/burger/internal/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ controller.Renderer = (*Sprite)(nil)

func TestSprite_SetMaterial(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateActor(ecs.Transform{}, ecs.Sprite{Width: 1, Height: 1})
	s := NewSprite(w, id)

	s.SetMaterial("run_right_0")
	s.SetMaterial("throw_right")

	assert.Equal(t, actor.Material("throw_right"), s.Material())
	assert.Equal(t, actor.Material("throw_right"), w.Sprite[id].Material)
	assert.Equal(t, 1.0, w.Sprite[id].Width, "size is preserved")
	assert.Equal(t, 2, s.Writes())
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	r.Register("run_right_0", nil)

	assert.True(t, r.Has("run_right_0"))
	assert.False(t, r.Has("run_left_0"))
	_, ok := r.Lookup("missing")
	assert.False(t, ok)
}

func TestCamera_ToScreen(t *testing.T) {
	cam := Camera{PixelsPerUnit: 10, OriginX: 100, OriginY: 200, DepthShift: 0.5}

	tests := []struct {
		name   string
		x, y   float64
		z      float64
		wantSX float64
		wantSY float64
	}{
		{"origin", 0, 0, 0, 100, 200},
		{"right and up", 2, 3, 0, 120, 170},
		{"depth raises", 0, 0, 2, 100, 190},
		{"left and below", -1, -1, 0, 90, 210},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := cam.ToScreen(tt.x, tt.y, tt.z)
			assert.InDelta(t, tt.wantSX, sx, 1e-9)
			assert.InDelta(t, tt.wantSY, sy, 1e-9)
		})
	}
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 0.0, angle(ecs.Transform{}))
	assert.InDelta(t, math.Pi/2, angle(ecs.Transform{Rotation: r3.NewRotation(math.Pi/2, actor.Depth)}), 1e-9)
}
