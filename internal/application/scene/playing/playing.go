// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/burger/internal/application/controller"
	"github.com/younwookim/burger/internal/application/replay"
	"github.com/younwookim/burger/internal/application/scene"
	"github.com/younwookim/burger/internal/application/schedule"
	"github.com/younwookim/burger/internal/domain/actor"
	"github.com/younwookim/burger/internal/ecs"
	"github.com/younwookim/burger/internal/infrastructure/config"
	"github.com/younwookim/burger/internal/infrastructure/input"
	"github.com/younwookim/burger/internal/infrastructure/physics"
	"github.com/younwookim/burger/internal/infrastructure/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorGround     = color.RGBA{80, 80, 100, 255}
	colorActor      = color.RGBA{100, 200, 100, 255}
	colorProjectile = color.RGBA{230, 160, 60, 255}
)

// Options configure optional parts of the scene.
type Options struct {
	// Source feeds input. Nil reads the keyboard and enables the pause
	// and save hotkeys.
	Source input.Source
	// RecordPath enables recording when not empty.
	RecordPath string
	// ActorSource is the raw actor.yaml stored in recordings.
	ActorSource string
	// Watcher and Loader enable reloading actor.yaml while running.
	Watcher *config.Watcher
	Loader  *config.Loader
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	screenW int
	screenH int
	step    time.Duration

	entities *ecs.World
	world    *physics.World
	sched    *schedule.Scheduler
	latch    *input.Latch
	source   input.Source
	hotkeys  bool

	body   *physics.ActorBody
	sprite *render.Sprite
	ctrl   *controller.Controller
	bounds ecs.Bounds

	registry *render.Registry
	camera   render.Camera

	paused bool
	frame  int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	watcher *config.Watcher
	loader  *config.Loader
}

// New creates a new Playing scene with the actor spawned on the ground.
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	if cfg == nil || cfg.Actor == nil || cfg.World == nil {
		return nil, fmt.Errorf("playing: incomplete config")
	}
	display := cfg.World.Display
	ground := cfg.World.Ground
	if display.Framerate <= 0 {
		return nil, fmt.Errorf("playing: framerate must be positive, got %d", display.Framerate)
	}

	entities := ecs.NewWorld()
	world := physics.NewWorld(physics.Settings{
		Gravity:    cfg.World.Physics.Gravity,
		GroundY:    ground.Height,
		GroundMinX: -ground.Width / 2,
		GroundMaxX: ground.Width / 2,
		DepthLimit: cfg.World.Physics.DepthLimit,
	}, entities)

	p := &Playing{
		config:   cfg,
		screenW:  display.ScreenWidth,
		screenH:  display.ScreenHeight,
		step:     time.Second / time.Duration(display.Framerate),
		entities: entities,
		world:    world,
		sched:    schedule.New(),
		latch:    &input.Latch{},
		source:   opts.Source,
		bounds: ecs.Bounds{
			MinX: -ground.Width,
			MaxX: ground.Width,
			MinY: ground.KillY,
		},
		camera: render.Camera{
			PixelsPerUnit: display.PixelsPerUnit,
			OriginX:       float64(display.ScreenWidth) / 2,
			OriginY:       float64(display.ScreenHeight) * 3 / 4,
			DepthShift:    display.DepthShift,
		},
		recordFilename: opts.RecordPath,
		watcher:        opts.Watcher,
		loader:         opts.Loader,
	}
	if p.source == nil {
		p.source = input.NewKeyboard()
		p.hotkeys = true
	}

	a := cfg.Actor
	x, y, z := config.Vec3(a.Body.Spawn)
	p.body = world.NewActor(r3.Vec{X: x, Y: y, Z: z}, a.Body.Width, a.Body.Height, bodyMass(a), ecs.Sprite{})
	p.sprite = render.NewSprite(entities, p.body.ID())
	p.body.OnContact(func(tag string) {
		if p.ctrl != nil {
			p.ctrl.OnContact(tag)
		}
	})
	if err := p.spawnController(a); err != nil {
		return nil, err
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.ActorSource, display.Framerate)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// bodyMass keeps a massless actor kinematic in the space. Its controller
// gets no body.
func bodyMass(a *config.ActorConfig) float64 {
	if a.Body.Mass <= 0 {
		return 1
	}
	return a.Body.Mass
}

func (p *Playing) spawnController(a *config.ActorConfig) error {
	cfg, err := a.Config()
	if err != nil {
		return err
	}
	visuals, err := a.VisualSet()
	if err != nil {
		return err
	}

	proj := a.Projectile
	p.world.RegisterPrefab(proj.Name, physics.Prefab{
		Material:   actor.Material(proj.Material),
		Radius:     proj.Radius,
		Mass:       proj.Mass,
		Lifetime:   proj.Lifetime.Seconds(),
		Elasticity: proj.Elasticity,
		WithBody:   proj.WithBody,
	})

	deps := controller.Deps{
		Input:           p.latch,
		Clock:           p.sched,
		Transform:       p.body,
		Gravity:         p.world,
		Renderer:        p.sprite,
		Spawner:         p.world,
		Scheduler:       p.sched,
		ThrowPointRight: anchor(p.body, a.Anchors.ThrowRight),
		ThrowPointLeft:  anchor(p.body, a.Anchors.ThrowLeft),
		Projectile:      proj.Name,
	}
	if a.Body.Mass > 0 {
		deps.Body = p.body
	}

	ctrl, err := controller.New(deps, cfg, visuals)
	if err != nil {
		return err
	}
	p.ctrl = ctrl
	p.registry = nil // materials may have changed
	return nil
}

func anchor(parent actor.Positioner, a config.AnchorConfig) actor.LocalAnchor {
	x, y, z := config.Vec3(a.Offset)
	return actor.NewLocalAnchor(parent, r3.Vec{X: x, Y: y, Z: z}, a.AngleDeg)
}

// Reload replaces the actor's controller with one built from a. The actor
// keeps its position and body. A throw in progress is abandoned, and the
// new controller starts grounded.
func (p *Playing) Reload(a *config.ActorConfig) error {
	if err := a.Validate(); err != nil {
		return err
	}
	old := p.ctrl
	old.Teardown()
	if err := p.spawnController(a); err != nil {
		p.ctrl = old
		return err
	}
	p.config.Actor = a
	log.Printf("Actor reloaded: %+v", p.ctrl.Config())
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if p.hotkeys {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.paused = !p.paused
		}
		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
	}
	if p.paused {
		return nil, nil
	}

	p.Step()
	return nil, nil // nil = stay on this scene
}

// Step runs one fixed simulation tick.
func (p *Playing) Step() {
	snap := p.source.Poll()
	if p.recorder != nil {
		p.recorder.RecordFrame(replay.ReplayInput(snap))
	}
	p.latch.Set(snap)

	p.sched.Advance(p.step)
	p.ctrl.Update()
	p.world.Step(p.step.Seconds())
	p.world.Cull(p.bounds)

	p.reloadIfChanged()
	p.frame++
}

func (p *Playing) reloadIfChanged() {
	if p.watcher == nil || p.loader == nil {
		return
	}
	select {
	case err := <-p.watcher.Errors:
		log.Printf("Config watch error: %v", err)
	default:
	}
	if !slices.Contains(p.watcher.Drain(), config.ActorFile) {
		return
	}

	a, err := p.loader.LoadActor()
	if err != nil {
		log.Printf("Ignoring %s: %v", config.ActorFile, err)
		return
	}
	if err := p.Reload(a); err != nil {
		log.Printf("Ignoring %s: %v", config.ActorFile, err)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Controller returns the actor's controller.
func (p *Playing) Controller() *controller.Controller {
	return p.ctrl
}

// Actor returns the actor's body.
func (p *Playing) Actor() *physics.ActorBody {
	return p.body
}

// Entities returns the entity registry.
func (p *Playing) Entities() *ecs.World {
	return p.entities
}

// Frame returns the number of ticks simulated.
func (p *Playing) Frame() int {
	return p.frame
}

// Summary describes the actor for logs and the headless runner.
func (p *Playing) Summary() string {
	pos := p.body.Position()
	st := p.ctrl.State()
	return fmt.Sprintf("frame=%d pos=(%.2f, %.2f, %.2f) facingRight=%t %s material=%s projectiles=%d",
		p.frame, pos.X, pos.Y, pos.Z, st.FacingRight, p.ctrl.Phases(), p.sprite.Material(), p.entities.CountProjectiles())
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	if p.registry == nil {
		p.registry = p.buildRegistry()
	}

	// ground
	g := p.config.World.Ground
	x0, y0 := p.camera.ToScreen(-g.Width/2, g.Height, 0)
	x1, _ := p.camera.ToScreen(g.Width/2, g.Height, 0)
	ebitenutil.DrawRect(screen, x0, y0, x1-x0, float64(p.screenH)-y0, colorGround)

	p.registry.DrawEntities(screen, p.entities, p.camera)
	p.drawUI(screen)

	if p.paused {
		p.drawPauseOverlay(screen)
	}
}

// buildRegistry draws placeholder art for every material in use.
func (p *Playing) buildRegistry() *render.Registry {
	const w, h = 24, 36
	r := render.NewRegistry()
	vis, err := p.config.Actor.VisualSet()
	if err != nil {
		return r
	}
	for i, m := range vis.RightFrames {
		r.Register(m, render.Placeholder(w, h, colorActor, render.PoseStandA+render.Pose(i), true))
	}
	for i, m := range vis.LeftFrames {
		r.Register(m, render.Placeholder(w, h, colorActor, render.PoseStandA+render.Pose(i), false))
	}
	r.Register(vis.ThrowPoseRight, render.Placeholder(w, h, colorActor, render.PoseThrow, true))
	r.Register(vis.ThrowPoseLeft, render.Placeholder(w, h, colorActor, render.PoseThrow, false))

	proj := actor.Material(p.config.Actor.Projectile.Material)
	r.Register(proj, render.Placeholder(16, 16, colorProjectile, render.PoseBall, true))
	return r
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	pos := p.body.Position()
	info := fmt.Sprintf("%s\npos %.2f %.2f depth %.2f\nburgers %d",
		p.ctrl.Phases(), pos.X, pos.Y, pos.Z, p.entities.CountProjectiles())
	ebitenutil.DebugPrintAt(screen, info, 4, 4)

	if p.recorder != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-60, 4)
	}

	// Controls
	ebitenutil.DebugPrintAt(screen, "A/D W/S: Move | Space: Jump | F: Throw | ESC: Pause", 4, p.screenH-16)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.ctrl.Teardown()
	p.saveRecording()
	if p.watcher != nil {
		_ = p.watcher.Close()
	}
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
