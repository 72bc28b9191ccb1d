// Package render draws entity sprites with Ebiten and resolves actor
// materials to images.
package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/burger/internal/domain/actor"
	"github.com/younwookim/burger/internal/ecs"
)

// Registry maps materials to images.
type Registry struct {
	images map[actor.Material]*ebiten.Image
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{images: make(map[actor.Material]*ebiten.Image)}
}

// Register binds m to img.
func (r *Registry) Register(m actor.Material, img *ebiten.Image) {
	r.images[m] = img
}

// Lookup returns the image bound to m.
func (r *Registry) Lookup(m actor.Material) (*ebiten.Image, bool) {
	img, ok := r.images[m]
	return img, ok
}

// Has reports whether m is bound.
func (r *Registry) Has(m actor.Material) bool {
	_, ok := r.images[m]
	return ok
}

// Pose selects the shape of a placeholder image.
type Pose int

const (
	PoseStandA Pose = iota
	PoseStandB
	PoseThrow
	PoseBall
)

// Placeholder draws a flat-coloured stand-in for a missing asset. Facing
// left mirrors the pose.
func Placeholder(w, h int, body color.Color, pose Pose, facingRight bool) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fill := func(r image.Rectangle, c color.Color) {
		if !facingRight {
			r = image.Rect(w-r.Max.X, r.Min.Y, w-r.Min.X, r.Max.Y)
		}
		img.SubImage(r).(*ebiten.Image).Fill(c)
	}
	dark := color.RGBA{30, 30, 40, 255}

	if pose == PoseBall {
		fill(image.Rect(0, h/4, w, h*3/4), body)
		fill(image.Rect(0, h/2-1, w, h/2+1), dark)
		return img
	}

	// torso and head
	fill(image.Rect(w/4, h/6, w*3/4, h*2/3), body)
	fill(image.Rect(w/3, 0, w*2/3, h/6), body)
	fill(image.Rect(w/2, h/12, w/2+2, h/12+2), dark)

	// legs alternate between the two run frames
	switch pose {
	case PoseStandA:
		fill(image.Rect(w/4, h*2/3, w/2-1, h), body)
		fill(image.Rect(w/2+1, h*2/3, w*3/4, h-h/8), body)
	case PoseStandB:
		fill(image.Rect(w/4, h*2/3, w/2-1, h-h/8), body)
		fill(image.Rect(w/2+1, h*2/3, w*3/4, h), body)
	case PoseThrow:
		fill(image.Rect(w/4, h*2/3, w/2-1, h), body)
		fill(image.Rect(w/2+1, h*2/3, w*3/4, h), body)
		fill(image.Rect(w*3/4, h/4, w, h/4+h/12), body)
	}
	return img
}

// Camera maps world units to screen pixels. The depth axis is drawn as a
// vertical shift, so actors further back appear higher on screen.
type Camera struct {
	PixelsPerUnit float64
	OriginX       float64 // screen X of world X=0
	OriginY       float64 // screen Y of world Y=0
	DepthShift    float64 // world Y per unit of depth
}

// ToScreen converts a world position to screen pixels.
func (c Camera) ToScreen(x, y, z float64) (float64, float64) {
	sx := c.OriginX + x*c.PixelsPerUnit
	sy := c.OriginY - (y+z*c.DepthShift)*c.PixelsPerUnit
	return sx, sy
}

// DrawEntities draws every sprite in w, far to near.
func (r *Registry) DrawEntities(screen *ebiten.Image, w *ecs.World, cam Camera) {
	ids := make([]ecs.EntityID, 0, len(w.Sprite))
	for id := range w.Sprite {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		zi, zj := w.Transform[ids[i]].Position.Z, w.Transform[ids[j]].Position.Z
		if zi != zj {
			return zi > zj
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		sp := w.Sprite[id]
		img, ok := r.Lookup(sp.Material)
		if !ok || sp.Width <= 0 || sp.Height <= 0 {
			continue
		}
		t := w.Transform[id]
		b := img.Bounds()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(sp.Width*cam.PixelsPerUnit/float64(b.Dx()), sp.Height*cam.PixelsPerUnit/float64(b.Dy()))
		if _, isProjectile := w.IsProjectile[id]; isProjectile {
			// screen Y points down, so world angles flip
			op.GeoM.Rotate(-angle(t))
		}
		sx, sy := cam.ToScreen(t.Position.X, t.Position.Y, t.Position.Z)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(img, op)
	}
}
