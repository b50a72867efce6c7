package physical

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/pkg/fpscam"
)

// Driver tuning, in blocks and seconds. Walking settles at
// WalkAcceleration/WalkDrag blocks per second.
const (
	WalkAcceleration = 40.0
	WalkDrag         = 10.0
	JumpSpeed        = 9.0
)

// Actions reports held logical actions, as bound by the camera controller
type Actions interface {
	WasDown(name string) bool
	PointerLock() bool
}

// Driver walks the world's controlled body from held actions. Directions are
// relative to the body's yaw source.
type Driver struct {
	world   *World
	actions Actions
}

// NewDriver creates a driver for world's controlled body
func NewDriver(world *World, actions Actions) *Driver {
	return &Driver{world: world, actions: actions}
}

// Update queues this frame's walking acceleration and starts a jump when the
// body is on the ground. It does nothing without a controlled body or
// without pointer lock.
func (d *Driver) Update() {
	b := d.world.Controlled()
	if b == nil || !d.actions.PointerLock() {
		return
	}
	b.SetDrag(WalkDrag)

	var local mgl32.Vec3
	if d.actions.WasDown(fpscam.ActionForward) {
		local[2]--
	}
	if d.actions.WasDown(fpscam.ActionBackward) {
		local[2]++
	}
	if d.actions.WasDown(fpscam.ActionRight) {
		local[0]++
	}
	if d.actions.WasDown(fpscam.ActionLeft) {
		local[0]--
	}
	if local.Len() > 0 {
		b.Accelerate(local.Normalize().Mul(WalkAcceleration))
	}

	if d.actions.WasDown(fpscam.ActionJump) && b.OnGround() {
		v := b.Velocity()
		v[1] = JumpSpeed
		b.SetVelocity(v)
	}
}
