package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// State holds the position and Euler orientation of a first-person camera.
//
// Position is stored in the camera's own axis convention, which is the
// negation of the world convention (see WorldPosition). Angles are radians
// and free-running: nothing clamps or wraps them here.
type State struct {
	position mgl32.Vec3

	// Euler angles
	rotationX float32 // pitch
	rotationY float32 // yaw
	rotationZ float32 // roll
}

// NewState creates a camera at the given position and orientation
func NewState(position mgl32.Vec3, rotationX, rotationY, rotationZ float32) *State {
	return &State{
		position:  position,
		rotationX: rotationX,
		rotationY: rotationY,
		rotationZ: rotationZ,
	}
}

// RotateX adds delta to the pitch angle
func (s *State) RotateX(delta float32) {
	s.rotationX += delta
}

// RotateY adds delta to the yaw angle
func (s *State) RotateY(delta float32) {
	s.rotationY += delta
}

// RotateZ adds delta to the roll angle
func (s *State) RotateZ(delta float32) {
	s.rotationZ += delta
}

// Rotation returns pitch, yaw and roll
func (s *State) Rotation() (x, y, z float32) {
	return s.rotationX, s.rotationY, s.rotationZ
}

// Position returns the current camera position in camera convention
func (s *State) Position() mgl32.Vec3 {
	return s.position
}

// SetPosition sets the camera position in camera convention
func (s *State) SetPosition(pos mgl32.Vec3) {
	s.position = pos
}

// Translate moves the camera by delta
func (s *State) Translate(delta mgl32.Vec3) {
	s.position = s.position.Add(delta)
}

// rotationMatrix returns Rx(pitch) * Ry(yaw) * Rz(roll)
func (s *State) rotationMatrix() mgl32.Mat3 {
	return mgl32.Rotate3DX(s.rotationX).
		Mul3(mgl32.Rotate3DY(s.rotationY)).
		Mul3(mgl32.Rotate3DZ(s.rotationZ))
}

// ForwardVector returns the unit direction, in position space, that moves the
// viewer toward what it is looking at. The view translates by position, so
// the eye sits at -position and looks along R^T * (0, 0, -1); walking toward
// that means adding R^T * (0, 0, 1) to position. With zero rotation this is
// (0, 0, 1). Orientations at exactly +-90 degrees of pitch are not treated
// specially.
func (s *State) ForwardVector() mgl32.Vec3 {
	return s.rotationMatrix().Transpose().Mul3x1(mgl32.Vec3{0, 0, 1})
}

// ViewMatrix returns the view transform for the current position and orientation
func (s *State) ViewMatrix() mgl32.Mat4 {
	rotation := mgl32.HomogRotate3DX(s.rotationX).
		Mul4(mgl32.HomogRotate3DY(s.rotationY)).
		Mul4(mgl32.HomogRotate3DZ(s.rotationZ))

	return rotation.Mul4(mgl32.Translate3D(s.position.X(), s.position.Y(), s.position.Z()))
}

// WorldPosition converts the camera position to world convention.
// The camera treats -Y as up and has X and Z swapped relative to the world,
// so every axis is negated and X/Z are exchanged.
func (s *State) WorldPosition() mgl32.Vec3 {
	return mgl32.Vec3{
		-s.position.Z(),
		-s.position.Y(),
		-s.position.X(),
	}
}
