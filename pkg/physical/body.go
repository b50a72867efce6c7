package physical

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/pkg/fpscam"
)

// Default player box, in blocks
const (
	DefaultWidth  = 0.6
	DefaultHeight = 1.8
)

// Body is a physics item wrapping a target the world moves. The target's
// position is the centre of the bottom face of the body's box.
type Body struct {
	target   fpscam.Target
	velocity mgl32.Vec3
	accel    mgl32.Vec3 // per-step acceleration, cleared after each step
	width    float32
	height   float32
	drag     float32 // horizontal damping per second
	onGround bool

	fields         []fpscam.ForceField
	yaw, pitch     fpscam.Orientable
	blocksCreation bool
}

var _ fpscam.PhysicsHandle = (*Body)(nil)

// Target returns the object this body moves
func (b *Body) Target() fpscam.Target { return b.target }

// Velocity returns the current velocity in blocks per second
func (b *Body) Velocity() mgl32.Vec3 { return b.velocity }

// SetVelocity replaces the current velocity
func (b *Body) SetVelocity(v mgl32.Vec3) { b.velocity = v }

// OnGround reports whether the last step ended resting on a solid block
func (b *Body) OnGround() bool { return b.onGround }

// BlocksCreation reports whether blocks may not be placed inside this body
func (b *Body) BlocksCreation() bool { return b.blocksCreation }

func (b *Body) SetYaw(source fpscam.Orientable)   { b.yaw = source }
func (b *Body) SetPitch(source fpscam.Orientable) { b.pitch = source }
func (b *Body) SetBlocksCreation(blocks bool)     { b.blocksCreation = blocks }

// SetDrag sets the horizontal damping rate; zero disables damping
func (b *Body) SetDrag(drag float32) { b.drag = drag }

// SubjectTo adds a force field applied on every step
func (b *Body) SubjectTo(field fpscam.ForceField) {
	b.fields = append(b.fields, field)
}

// Accelerate queues an acceleration for the next step. local is expressed
// relative to the yaw source's heading; without one it is used as is.
func (b *Body) Accelerate(local mgl32.Vec3) {
	if b.yaw != nil {
		yaw := b.yaw.Rotation().Y()
		local = mgl32.Rotate3DY(yaw).Mul3x1(local)
	}
	b.accel = b.accel.Add(local)
}

// Box returns the body's axis-aligned bounds for the target at pos
func (b *Body) Box(pos mgl32.Vec3) (lo, hi mgl32.Vec3) {
	half := b.width / 2
	return mgl32.Vec3{pos.X() - half, pos.Y(), pos.Z() - half},
		mgl32.Vec3{pos.X() + half, pos.Y() + b.height, pos.Z() + half}
}

// overlapsCell reports whether the box at pos intersects the unit block cell
func (b *Body) overlapsCell(pos mgl32.Vec3, x, y, z int) bool {
	lo, hi := b.Box(pos)
	return lo.X() < float32(x+1) && hi.X() > float32(x) &&
		lo.Y() < float32(y+1) && hi.Y() > float32(y) &&
		lo.Z() < float32(z+1) && hi.Z() > float32(z)
}

// collides reports whether the box at pos intersects any solid block
func (b *Body) collides(pos mgl32.Vec3, blocks BlockStore) bool {
	lo, hi := b.Box(pos)
	const eps = 1e-4
	x0, x1 := floor(lo.X()+eps), floor(hi.X()-eps)
	y0, y1 := floor(lo.Y()+eps), floor(hi.Y()-eps)
	z0, z1 := floor(lo.Z()+eps), floor(hi.Z()-eps)

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				if blocks.IsSolid(x, y, z) {
					return true
				}
			}
		}
	}
	return false
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}
