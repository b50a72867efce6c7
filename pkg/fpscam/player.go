package fpscam

import "github.com/go-gl/mathgl/mgl32"

// PlayerBody is the record handed to the physics world. Position and
// rotation use world convention (+Y up).
type PlayerBody struct {
	position mgl32.Vec3
	rotation mgl32.Vec3
}

var _ Target = (*PlayerBody)(nil)

// Position returns the body position
func (p *PlayerBody) Position() mgl32.Vec3 {
	return p.position
}

// SetPosition places the body, e.g. at a spawn point
func (p *PlayerBody) SetPosition(pos mgl32.Vec3) {
	p.position = pos
}

// Rotation returns the body rotation
func (p *PlayerBody) Rotation() mgl32.Vec3 {
	return p.rotation
}

// SetRotation sets the body rotation read by the world's yaw and pitch sources
func (p *PlayerBody) SetRotation(rot mgl32.Vec3) {
	p.rotation = rot
}

func (p *PlayerBody) TranslateX(dx float32) { p.position[0] += dx }
func (p *PlayerBody) TranslateY(dy float32) { p.position[1] += dy }
func (p *PlayerBody) TranslateZ(dz float32) { p.position[2] += dz }
