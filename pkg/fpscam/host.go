package fpscam

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Subscription identifies a handler registered with Shell.On
type Subscription struct {
	Event string
	ID    uint64
}

// Shell is the input service the controller reads every tick
type Shell interface {
	// Bind maps a logical action name to one or more physical key names
	Bind(name string, keys ...string)
	// Unbind removes every key mapped to name
	Unbind(name string)

	// On registers handler for event and returns the handle used to remove it
	On(event string, handler func()) Subscription
	// RemoveListener removes a handler registered with On
	RemoveListener(sub Subscription)

	// WasDown reports whether any key bound to name was pressed or held this tick
	WasDown(name string) bool

	// Mouse returns the pointer position sampled this tick
	Mouse() (x, y float64)
	// PrevMouse returns the pointer position sampled on the previous tick
	PrevMouse() (x, y float64)
	// FrameTime returns the time since the previous tick
	FrameTime() float64
	// PointerLock reports whether mouse input is captured
	PointerLock() bool
}

// Target is an object a physics world can move
type Target interface {
	Orientable
	Position() mgl32.Vec3
	TranslateX(dx float32)
	TranslateY(dy float32)
	TranslateZ(dz float32)
}

// Orientable exposes an Euler rotation (radians, world convention)
type Orientable interface {
	Rotation() mgl32.Vec3
}

// ForceField is an acceleration applied to every item subjected to it
type ForceField interface {
	Acceleration() mgl32.Vec3
}

// PhysicsHandle is the world's representation of a physical target
type PhysicsHandle interface {
	SetYaw(source Orientable)
	SetPitch(source Orientable)
	SubjectTo(field ForceField)
	SetBlocksCreation(blocks bool)
}

// World is the physics service the player body is registered with
type World interface {
	MakePhysical(target Target) PhysicsHandle
	AddItem(item PhysicsHandle)
	RemoveItem(item PhysicsHandle)
	// Control gives item exclusive input focus
	Control(item PhysicsHandle)
	Gravity() ForceField
}

// Host bundles the collaborators a controller is constructed with
type Host struct {
	Shell  Shell
	World  World
	Logger *slog.Logger
}
