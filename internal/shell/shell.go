// Package shell samples keyboard and mouse state once per frame and exposes
// it through logical action names and a tick event.
package shell

import (
	"log/slog"

	"github.com/leterax/go-voxels-fpscam/internal/logger"
	"github.com/leterax/go-voxels-fpscam/pkg/fpscam"
)

// DefaultFrameTime is reported by the first tick, before an interval exists
const DefaultFrameTime = 1.0 / 60

// Input is the raw device state a shell samples from
type Input interface {
	// KeyDown reports whether the named physical key is currently down
	KeyDown(key string) bool
	// CursorPos returns the pointer position
	CursorPos() (x, y float64)
	// PointerLocked reports whether the pointer is captured
	PointerLocked() bool
}

// Shell implements fpscam.Shell on top of an Input
type Shell struct {
	input    Input
	bindings map[string][]string
	events   *Emitter
	log      *slog.Logger

	mouseX, mouseY         float64
	prevMouseX, prevMouseY float64
	frameTime              float64
	lastTime               float64
	started                bool
}

var _ fpscam.Shell = (*Shell)(nil)

// New creates a shell reading from input. A nil log uses the default logger.
func New(input Input, log *slog.Logger) *Shell {
	if log == nil {
		log = logger.L()
	}
	log = log.With("component", "shell")

	return &Shell{
		input:    input,
		bindings: make(map[string][]string),
		events:   NewEmitter(log),
		log:      log,
	}
}

// Bind adds keys to the logical action name
func (s *Shell) Bind(name string, keys ...string) {
	s.bindings[name] = append(s.bindings[name], keys...)
	s.log.Debug("bound", "action", name, "keys", keys)
}

// Unbind removes every key bound to name
func (s *Shell) Unbind(name string) {
	delete(s.bindings, name)
	s.log.Debug("unbound", "action", name)
}

// Bindings returns the keys bound to name
func (s *Shell) Bindings(name string) []string {
	return s.bindings[name]
}

// On registers handler for event
func (s *Shell) On(event string, handler func()) fpscam.Subscription {
	return s.events.On(event, handler)
}

// RemoveListener removes a handler registered with On
func (s *Shell) RemoveListener(sub fpscam.Subscription) {
	s.events.RemoveListener(sub)
}

// Emit dispatches event to its handlers
func (s *Shell) Emit(event string) {
	s.events.Emit(event)
}

// WasDown reports whether any key bound to name is down
func (s *Shell) WasDown(name string) bool {
	for _, key := range s.bindings[name] {
		if s.input.KeyDown(key) {
			return true
		}
	}
	return false
}

func (s *Shell) Mouse() (x, y float64)     { return s.mouseX, s.mouseY }
func (s *Shell) PrevMouse() (x, y float64) { return s.prevMouseX, s.prevMouseY }
func (s *Shell) FrameTime() float64        { return s.frameTime }
func (s *Shell) PointerLock() bool         { return s.input.PointerLocked() }

// Tick samples the pointer, updates the frame time from now (seconds) and
// emits the tick event. The first tick reports no pointer movement and
// DefaultFrameTime.
func (s *Shell) Tick(now float64) {
	x, y := s.input.CursorPos()

	if !s.started {
		s.prevMouseX, s.prevMouseY = x, y
		s.frameTime = DefaultFrameTime
		s.started = true
	} else {
		s.prevMouseX, s.prevMouseY = s.mouseX, s.mouseY
		s.frameTime = now - s.lastTime
	}
	s.mouseX, s.mouseY = x, y
	s.lastTime = now

	s.events.Emit(fpscam.EventTick)
}

// ResetMouse makes the next tick report no pointer movement, e.g. after the
// pointer has been captured or released
func (s *Shell) ResetMouse() {
	x, y := s.input.CursorPos()
	s.mouseX, s.mouseY = x, y
	s.prevMouseX, s.prevMouseY = x, y
}
