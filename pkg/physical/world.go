// Package physical steps gravity-affected bodies through a voxel world.
package physical

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/internal/logger"
	"github.com/leterax/go-voxels-fpscam/pkg/fpscam"
)

// DefaultGravity is the gravity acceleration in blocks per second squared
var DefaultGravity = mgl32.Vec3{0, -32, 0}

// maxStep bounds a single integration step so fast frames do not tunnel
const maxStep = 1.0 / 20

// BlockStore answers whether a block cell is solid
type BlockStore interface {
	IsSolid(x, y, z int) bool
}

// Field is a constant acceleration
type Field mgl32.Vec3

// Acceleration returns the field's acceleration
func (f Field) Acceleration() mgl32.Vec3 { return mgl32.Vec3(f) }

// World owns the physical items and moves them on Step
type World struct {
	blocks     BlockStore
	gravity    Field
	items      []*Body
	controlled *Body
	log        *slog.Logger
}

var _ fpscam.World = (*World)(nil)

// NewWorld creates a world colliding against blocks. A nil log uses the default logger.
func NewWorld(blocks BlockStore, gravity mgl32.Vec3, log *slog.Logger) *World {
	if log == nil {
		log = logger.L()
	}
	return &World{
		blocks:  blocks,
		gravity: Field(gravity),
		log:     log.With("component", "physical"),
	}
}

// MakePhysical wraps target in a body with the default player box
func (w *World) MakePhysical(target fpscam.Target) fpscam.PhysicsHandle {
	return &Body{
		target: target,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// AddItem starts simulating item. Handles from other worlds are ignored.
func (w *World) AddItem(item fpscam.PhysicsHandle) {
	b, ok := item.(*Body)
	if !ok {
		w.log.Warn("ignoring foreign physics handle")
		return
	}
	for _, it := range w.items {
		if it == b {
			return
		}
	}
	w.items = append(w.items, b)
	w.log.Debug("item added", "items", len(w.items))
}

// RemoveItem stops simulating item and drops its control focus
func (w *World) RemoveItem(item fpscam.PhysicsHandle) {
	b, ok := item.(*Body)
	if !ok {
		return
	}
	for i, it := range w.items {
		if it == b {
			w.items = append(w.items[:i], w.items[i+1:]...)
			break
		}
	}
	if w.controlled == b {
		w.controlled = nil
	}
	w.log.Debug("item removed", "items", len(w.items))
}

// Control gives item input focus
func (w *World) Control(item fpscam.PhysicsHandle) {
	b, ok := item.(*Body)
	if !ok {
		return
	}
	w.controlled = b
}

// Controlled returns the body holding input focus, or nil
func (w *World) Controlled() *Body {
	return w.controlled
}

// Gravity returns the world's gravity field
func (w *World) Gravity() fpscam.ForceField {
	return w.gravity
}

// Items returns the simulated bodies
func (w *World) Items() []*Body {
	return w.items
}

// CanPlace reports whether a block may be placed in the cell at x, y, z
func (w *World) CanPlace(x, y, z int) bool {
	for _, b := range w.items {
		if b.blocksCreation && b.overlapsCell(b.target.Position(), x, y, z) {
			return false
		}
	}
	return true
}

// Step advances every item by dt seconds, in sub-steps no longer than maxStep
func (w *World) Step(dt float64) {
	for dt > 0 {
		h := dt
		if h > maxStep {
			h = maxStep
		}
		for _, b := range w.items {
			w.stepBody(b, float32(h))
		}
		dt -= h
	}
	for _, b := range w.items {
		b.accel = mgl32.Vec3{}
	}
}

// stepBody integrates one body and resolves collisions one axis at a time
func (w *World) stepBody(b *Body, dt float32) {
	accel := b.accel
	for _, f := range b.fields {
		accel = accel.Add(f.Acceleration())
	}
	b.velocity = b.velocity.Add(accel.Mul(dt))
	if b.drag > 0 {
		damp := 1 / (1 + b.drag*dt)
		b.velocity[0] *= damp
		b.velocity[2] *= damp
	}

	pos := b.target.Position()
	delta := b.velocity.Mul(dt)
	b.onGround = false

	translate := [3]func(float32){b.target.TranslateX, b.target.TranslateY, b.target.TranslateZ}
	for axis := 0; axis < 3; axis++ {
		if delta[axis] == 0 {
			continue
		}
		next := pos
		next[axis] += delta[axis]
		if w.blocks != nil && b.collides(next, w.blocks) {
			if axis == 1 && delta[axis] < 0 {
				b.onGround = true
			}
			b.velocity[axis] = 0
			continue
		}
		translate[axis](delta[axis])
		pos = next
	}
}
