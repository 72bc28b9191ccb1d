package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/younwookim/burger/internal/application/schedule"
	"github.com/younwookim/burger/internal/domain/actor"
	"gonum.org/v1/gonum/spatial/r3"
)

const tickDT = 10 * time.Millisecond

type fakeInput struct {
	h, v    float64
	pressed map[Action]bool
}

func (f *fakeInput) Axis(a Axis) float64 {
	if a == AxisHorizontal {
		return f.h
	}
	return f.v
}

func (f *fakeInput) JustPressed(a Action) bool {
	return f.pressed[a]
}

type fakeTransform struct {
	pos r3.Vec
}

func (f *fakeTransform) Position() r3.Vec   { return f.pos }
func (f *fakeTransform) Translate(d r3.Vec) { f.pos = r3.Add(f.pos, d) }

type fakeBody struct {
	mass     float64
	impulses []r3.Vec
	forces   []r3.Vec
}

func (f *fakeBody) ApplyImpulse(v r3.Vec) { f.impulses = append(f.impulses, v) }
func (f *fakeBody) ApplyForce(v r3.Vec)   { f.forces = append(f.forces, v) }
func (f *fakeBody) Mass() float64         { return f.mass }

type fakeGravity r3.Vec

func (g fakeGravity) Gravity() r3.Vec { return r3.Vec(g) }

type fakeRenderer struct {
	writes []actor.Material
}

func (f *fakeRenderer) SetMaterial(m actor.Material) { f.writes = append(f.writes, m) }

func (f *fakeRenderer) current() actor.Material {
	if len(f.writes) == 0 {
		return ""
	}
	return f.writes[len(f.writes)-1]
}

type fakeEntity struct {
	body     *fakeBody
	attached int
}

func (e *fakeEntity) Body() Body {
	if e.body == nil {
		return nil
	}
	return e.body
}

func (e *fakeEntity) AttachBody() Body {
	e.attached++
	e.body = &fakeBody{mass: 1}
	return e.body
}

type fakeSpawner struct {
	withBody bool
	requests []actor.SpawnRequest
	entities []*fakeEntity
}

func (f *fakeSpawner) Spawn(req actor.SpawnRequest) Entity {
	f.requests = append(f.requests, req)
	e := &fakeEntity{}
	if f.withBody {
		e.body = &fakeBody{mass: 1}
	}
	f.entities = append(f.entities, e)
	return e
}

type fixedAnchor struct {
	pos r3.Vec
	rot r3.Rotation
}

func (a fixedAnchor) Position() r3.Vec          { return a.pos }
func (a fixedAnchor) Orientation() r3.Rotation { return a.rot }

var (
	rightAnchor = fixedAnchor{pos: r3.Vec{X: 0.6, Y: 0.2}, rot: r3.NewRotation(0, actor.Depth)}
	leftAnchor  = fixedAnchor{pos: r3.Vec{X: -0.6, Y: 0.2}, rot: r3.NewRotation(0, actor.Depth)}
)

func testVisuals() actor.VisualSet {
	return actor.VisualSet{
		RightFrames:    [2]actor.Material{"run_right_0", "run_right_1"},
		LeftFrames:     [2]actor.Material{"run_left_0", "run_left_1"},
		ThrowPoseRight: "throw_right",
		ThrowPoseLeft:  "throw_left",
	}
}

type harness struct {
	c         *Controller
	in        *fakeInput
	transform *fakeTransform
	body      *fakeBody
	rend      *fakeRenderer
	spawner   *fakeSpawner
	sched     *schedule.Scheduler
}

type harnessOption func(d *Deps, h *harness)

func withoutBody() harnessOption {
	return func(d *Deps, h *harness) {
		d.Body = nil
		h.body = nil
	}
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()

	h := &harness{
		in:        &fakeInput{pressed: make(map[Action]bool)},
		transform: &fakeTransform{},
		body:      &fakeBody{mass: 2},
		rend:      &fakeRenderer{},
		spawner:   &fakeSpawner{withBody: true},
		sched:     schedule.New(),
	}
	deps := Deps{
		Input:           h.in,
		Clock:           h.sched,
		Transform:       h.transform,
		Body:            h.body,
		Gravity:         fakeGravity{Y: -9.81},
		Renderer:        h.rend,
		Spawner:         h.spawner,
		Scheduler:       h.sched,
		ThrowPointRight: rightAnchor,
		ThrowPointLeft:  leftAnchor,
		Projectile:      "burger",
	}
	for _, opt := range opts {
		opt(&deps, h)
	}

	c, err := New(deps, actor.DefaultConfig(), testVisuals())
	require.NoError(t, err)
	h.c = c
	return h
}

// tick advances the clock and runs one update, then releases any presses.
func (h *harness) tick() {
	h.sched.Advance(tickDT)
	h.c.Update()
	clear(h.in.pressed)
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.tick()
	}
}

func (h *harness) axis(x, z float64) {
	h.in.h, h.in.v = x, z
}

func (h *harness) press(a Action) {
	h.in.pressed[a] = true
}
