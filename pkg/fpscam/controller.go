// Package fpscam drives a first-person camera from keyboard and mouse input,
// optionally following a player body simulated by a physics world.
package fpscam

import (
	"errors"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/internal/logger"
	"github.com/leterax/go-voxels-fpscam/pkg/camera"
)

// Logical action names bound on enable
const (
	ActionLeft     = "left"
	ActionRight    = "right"
	ActionForward  = "forward"
	ActionBackward = "backward"
	ActionJump     = "jump"
	ActionCrouch   = "crouch"
)

// EventTick is the shell event the controller listens to
const EventTick = "tick"

var (
	ErrNoShell  = errors.New("fpscam: host has no shell")
	ErrNoWorld  = errors.New("fpscam: host has no physics world")
	ErrNoHandle = errors.New("fpscam: world returned no physics handle")
)

// bindings lists the keys bound to each action on enable
var bindings = []struct {
	action string
	keys   []string
}{
	{ActionLeft, []string{"left", "A"}},
	{ActionRight, []string{"right", "D"}},
	{ActionForward, []string{"up", "W"}},
	{ActionBackward, []string{"down", "S"}},
	{ActionJump, []string{"space"}},
	{ActionCrouch, []string{"shift"}},
}

// worldUp is the axis strafing is computed against
var worldUp = mgl32.Vec3{0, 1, 0}

// State is the controller lifecycle state
type State int

const (
	Disabled State = iota
	Enabled
)

func (s State) String() string {
	switch s {
	case Enabled:
		return "enabled"
	default:
		return "disabled"
	}
}

// Controller owns a camera and updates it from shell input once per tick
type Controller struct {
	shell Shell
	world World
	log   *slog.Logger

	camera *camera.State
	player *PlayerBody

	opts  Options
	state State

	tickSub Subscription
	physics PhysicsHandle
}

// New builds a controller for host and enables it.
// It fails if host lacks a shell or world, or if enabling fails.
//
// opts is used exactly as given. Start from DefaultOptions: a zero Options
// disables flight, movement (zero speed) and mouse look (zero clamp).
func New(host Host, opts Options) (*Controller, error) {
	if host.Shell == nil {
		return nil, ErrNoShell
	}
	if host.World == nil {
		return nil, ErrNoWorld
	}

	log := host.Logger
	if log == nil {
		log = logger.L()
	}

	cam := camera.NewState(mgl32.Vec3(opts.Position), opts.RotationX, opts.RotationY, opts.RotationZ)

	c := &Controller{
		shell:  host.Shell,
		world:  host.World,
		log:    log.With("component", "fpscam"),
		camera: cam,
		player: &PlayerBody{},
		opts:   opts,
		state:  Disabled,
	}

	if err := c.Enable(); err != nil {
		return nil, err
	}
	return c, nil
}

// Enable binds the movement keys, subscribes to ticks and registers the
// player body with the physics world. It does nothing if already enabled.
func (c *Controller) Enable() error {
	if c.state == Enabled {
		return nil
	}

	handle := c.world.MakePhysical(c.player)
	if handle == nil {
		return ErrNoHandle
	}

	for _, b := range bindings {
		c.shell.Bind(b.action, b.keys...)
	}
	c.tickSub = c.shell.On(EventTick, c.Tick)

	c.world.AddItem(handle)
	handle.SetYaw(c.player)
	handle.SetPitch(c.player)
	handle.SubjectTo(c.world.Gravity())
	handle.SetBlocksCreation(true)
	c.world.Control(handle)
	c.physics = handle

	c.state = Enabled
	c.log.Debug("camera enabled",
		"flight", c.opts.EnableFlight,
		"physics", c.opts.EnablePhysics,
		"position", c.camera.Position(),
	)
	return nil
}

// Disable unsubscribes from ticks, unbinds the movement keys and removes the
// player body from the physics world. It does nothing if already disabled.
func (c *Controller) Disable() {
	if c.state == Disabled {
		return
	}

	c.shell.RemoveListener(c.tickSub)
	for _, b := range bindings {
		c.shell.Unbind(b.action)
	}

	c.world.RemoveItem(c.physics)
	c.physics = nil

	c.state = Disabled
	c.log.Debug("camera disabled", "position", c.camera.Position())
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.state
}

// Camera returns the controlled camera
func (c *Controller) Camera() *camera.State {
	return c.camera
}

// Player returns the body registered with the physics world
func (c *Controller) Player() *PlayerBody {
	return c.player
}

// ViewTransform writes the camera view matrix into out
func (c *Controller) ViewTransform(out *mgl32.Mat4) {
	*out = c.camera.ViewMatrix()
}

// WorldPosition writes the camera position in world convention into out
func (c *Controller) WorldPosition(out *mgl32.Vec3) {
	*out = c.camera.WorldPosition()
}

// Tick applies one frame of input to the camera. It is the tick handler
// registered on enable and does nothing while disabled.
func (c *Controller) Tick() {
	if c.state != Enabled {
		return
	}

	if c.opts.EnablePhysics {
		// follow the simulated body, even without pointer lock
		c.Follow()
	}

	if !c.shell.PointerLock() {
		return
	}

	c.move()
	c.look()
}

// Follow copies the player body into the camera: the camera position is the
// negated body position, and the body's rotation is set to the negated camera
// rotation so the physics world walks it the way the camera faces. Hosts
// stepping physics after the tick call it again before rendering.
func (c *Controller) Follow() {
	p := c.player.Position()
	c.camera.SetPosition(mgl32.Vec3{-p.X(), -p.Y(), -p.Z()})

	pitch, yaw, roll := c.camera.Rotation()
	c.player.SetRotation(mgl32.Vec3{-pitch, -yaw, -roll})
}

// move applies held movement keys. Each key contributes independently, so
// diagonal movement is faster than straight movement.
func (c *Controller) move() {
	forward := c.camera.ForwardVector()
	speed := c.opts.Speed

	if c.shell.WasDown(ActionForward) {
		c.camera.Translate(forward.Mul(speed))
	}
	if c.shell.WasDown(ActionBackward) {
		c.camera.Translate(forward.Mul(-speed))
	}
	if c.shell.WasDown(ActionRight) {
		c.camera.Translate(forward.Cross(worldUp).Mul(speed))
	}
	if c.shell.WasDown(ActionLeft) {
		c.camera.Translate(forward.Cross(worldUp).Mul(-speed))
	}

	// fly straight up or down; the camera's Y axis points down
	if c.opts.EnableFlight {
		if c.shell.WasDown(ActionJump) {
			c.camera.Translate(mgl32.Vec3{0, -1, 0})
		}
		if c.shell.WasDown(ActionCrouch) {
			c.camera.Translate(mgl32.Vec3{0, 1, 0})
		}
	}
}

// look turns the camera by the pointer delta since the previous tick
func (c *Controller) look() {
	x, y := c.shell.Mouse()
	prevX, prevY := c.shell.PrevMouse()
	dx := x - prevX
	dy := y - prevY

	dt := c.shell.FrameTime()
	if c.opts.MinFrameTime > 0 {
		dt = math.Max(dt, c.opts.MinFrameTime)
	}

	dpitch := float32(dy / dt * c.opts.Sensitivity)
	dyaw := float32(dx / dt * c.opts.Sensitivity)

	dpitch = mgl32.Clamp(dpitch, -c.opts.MaxPitchDelta, c.opts.MaxPitchDelta)
	dyaw = mgl32.Clamp(dyaw, -c.opts.MaxYawDelta, c.opts.MaxYawDelta)

	c.camera.RotateX(dpitch)
	c.camera.RotateY(dyaw)
}
