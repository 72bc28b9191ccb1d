package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/burger/internal/application/controller"
	"github.com/younwookim/burger/internal/domain/actor"
	"github.com/younwookim/burger/internal/ecs"
	"gonum.org/v1/gonum/spatial/r3"
)

const stepDT = 1.0 / 60.0

// The adapters must satisfy the controller's capabilities.
var (
	_ controller.Body      = (*ActorBody)(nil)
	_ controller.Transform = (*ActorBody)(nil)
	_ controller.Gravity   = (*World)(nil)
	_ controller.Spawner   = (*World)(nil)
	_ controller.Entity    = (*Projectile)(nil)
)

func createTestWorld() *World {
	return NewWorld(Settings{
		Gravity:    -9.81,
		GroundY:    0,
		GroundMinX: -50,
		GroundMaxX: 50,
		DepthLimit: 2,
	}, ecs.NewWorld())
}

func TestNewWorld(t *testing.T) {
	w := createTestWorld()

	require.NotNil(t, w)
	assert.Equal(t, r3.Vec{Y: -9.81}, w.Gravity())
	assert.Equal(t, 0, w.BodyCount())
	assert.NotNil(t, w.Entities())
}

func TestActor_RegisteredInEntities(t *testing.T) {
	w := createTestWorld()
	a := w.NewActor(r3.Vec{X: 1, Y: 0.6}, 0.8, 1.2, 1, ecs.Sprite{Material: "run_right_0"})

	assert.Equal(t, a.ID(), w.Entities().ActorID)
	assert.Equal(t, 1, w.BodyCount())
	assert.Equal(t, 0.8, w.Entities().Sprite[a.ID()].Width)
	assert.Equal(t, 1.0, a.Mass())
}

func TestActor_IgnoresSpaceGravity(t *testing.T) {
	w := createTestWorld()
	a := w.NewActor(r3.Vec{Y: 3}, 0.8, 1.2, 1, ecs.Sprite{})

	for i := 0; i < 60; i++ {
		w.Step(stepDT)
	}

	assert.InDelta(t, 3.0, a.Position().Y, 1e-9)
}

func TestActor_FallsUnderRequestedForceAndLands(t *testing.T) {
	w := createTestWorld()
	a := w.NewActor(r3.Vec{Y: 3}, 0.8, 1.2, 1, ecs.Sprite{})
	var tags []string
	a.OnContact(func(tag string) { tags = append(tags, tag) })

	for i := 0; i < 180; i++ {
		a.ApplyForce(r3.Scale(a.Mass(), w.Gravity()))
		w.Step(stepDT)
	}

	assert.Contains(t, tags, TagGround)
	// centre rests half a body height above the ground
	assert.InDelta(t, 0.6, a.Position().Y, 0.1)
}

func TestActor_ImpulseChangesVelocity(t *testing.T) {
	w := createTestWorld()
	a := w.NewActor(r3.Vec{Y: 0.6}, 0.8, 1.2, 2, ecs.Sprite{})

	a.ApplyImpulse(r3.Vec{Y: 5})

	assert.InDelta(t, 2.5, a.Velocity().Y, 1e-9)
}

func TestActor_TranslateMovesBodyAndDepth(t *testing.T) {
	w := createTestWorld()
	a := w.NewActor(r3.Vec{X: 0, Y: 0.6}, 0.8, 1.2, 1, ecs.Sprite{})

	a.Translate(r3.Vec{X: 0.5, Z: 1.5})
	assert.Equal(t, r3.Vec{X: 0.5, Y: 0.6, Z: 1.5}, a.Position())

	a.Translate(r3.Vec{Z: 5})
	assert.Equal(t, 2.0, a.Position().Z, "depth is clamped")

	w.Step(stepDT)
	assert.Equal(t, 2.0, w.Entities().Transform[a.ID()].Position.Z, "step keeps depth")
}

func TestSpawn_UnknownPrefab(t *testing.T) {
	w := createTestWorld()

	e := w.Spawn(actor.SpawnRequest{Prefab: "pizza"})

	assert.Nil(t, e)
	assert.Equal(t, 0, w.Entities().CountProjectiles())
}

func TestSpawn_WithoutBodyThenAttach(t *testing.T) {
	w := createTestWorld()
	w.RegisterPrefab("burger", Prefab{Material: "burger", Radius: 0.2, Mass: 0.5})

	e := w.Spawn(actor.SpawnRequest{Prefab: "burger", Position: r3.Vec{X: 1, Y: 2}})
	require.NotNil(t, e)
	assert.Nil(t, e.Body())
	assert.Equal(t, 1, w.Entities().CountProjectiles())

	body := e.AttachBody()
	require.NotNil(t, body)
	assert.NotNil(t, e.Body())
	assert.InDelta(t, 0.5, body.Mass(), 1e-9)
	assert.Equal(t, 1, w.BodyCount())

	// attaching twice keeps the same body
	e.AttachBody()
	assert.Equal(t, 1, w.BodyCount())
}

func TestSpawn_PrefabWithBodyFliesAndFalls(t *testing.T) {
	w := createTestWorld()
	w.RegisterPrefab("burger", Prefab{Material: "burger", Radius: 0.2, Mass: 1, WithBody: true})

	e := w.Spawn(actor.SpawnRequest{
		Prefab:      "burger",
		Position:    r3.Vec{X: 0, Y: 5, Z: 0.5},
		Orientation: r3.NewRotation(0, actor.Depth),
	})
	require.NotNil(t, e.Body())
	e.Body().ApplyImpulse(r3.Vec{X: 10})

	for i := 0; i < 10; i++ {
		w.Step(stepDT)
	}

	id := e.(*Projectile).ID()
	pos := w.Entities().Transform[id].Position
	assert.Greater(t, pos.X, 1.0)
	assert.Less(t, pos.Y, 5.0)
	assert.Equal(t, 0.5, pos.Z)
}

func TestSpawn_PassesThroughThrower(t *testing.T) {
	w := createTestWorld()
	w.RegisterPrefab("burger", Prefab{Radius: 0.2, Mass: 1, WithBody: true})
	a := w.NewActor(r3.Vec{Y: 3}, 0.8, 1.2, 1, ecs.Sprite{})
	var tags []string
	a.OnContact(func(tag string) { tags = append(tags, tag) })

	w.Spawn(actor.SpawnRequest{Prefab: "burger", Position: r3.Vec{Y: 3}})
	w.Step(stepDT)

	assert.Equal(t, []string{TagProjectile}, tags)
	assert.InDelta(t, 3.0, a.Position().Y, 1e-6, "the actor is not pushed")
}

func TestCull_RemovesBodies(t *testing.T) {
	w := createTestWorld()
	w.RegisterPrefab("burger", Prefab{Radius: 0.2, Mass: 1, WithBody: true, Lifetime: 0.5})
	w.NewActor(r3.Vec{Y: 0.6}, 0.8, 1.2, 1, ecs.Sprite{})

	w.Spawn(actor.SpawnRequest{Prefab: "burger", Position: r3.Vec{X: 5, Y: 1}})
	w.Spawn(actor.SpawnRequest{Prefab: "burger", Position: r3.Vec{X: 100, Y: 1}})
	require.Equal(t, 3, w.BodyCount())

	bounds := ecs.Bounds{MinX: -20, MaxX: 20, MinY: -5}
	assert.Equal(t, 1, w.Cull(bounds))
	assert.Equal(t, 2, w.BodyCount())

	for i := 0; i < 31; i++ {
		w.Step(stepDT)
	}
	assert.Equal(t, 1, w.Cull(bounds), "expired projectile is culled")
	assert.Equal(t, 1, w.BodyCount(), "only the actor remains")
}

func TestAngleOf(t *testing.T) {
	assert.Equal(t, 0.0, angleOf(r3.Rotation{}))
	assert.InDelta(t, 0.0, angleOf(r3.NewRotation(0, actor.Depth)), 1e-9)
	assert.InDelta(t, 1.0, angleOf(r3.NewRotation(1, actor.Depth)), 1e-9)
}
