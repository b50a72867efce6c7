package fpscam

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/internal/logger"
)

type fakeShell struct {
	bound     map[string][]string
	listeners map[uint64]func()
	nextID    uint64
	down      map[string]bool

	mouseX, mouseY         float64
	prevMouseX, prevMouseY float64
	frameTime              float64
	pointerLock            bool
}

func newFakeShell() *fakeShell {
	return &fakeShell{
		bound:       make(map[string][]string),
		listeners:   make(map[uint64]func()),
		down:        make(map[string]bool),
		frameTime:   1.0 / 60,
		pointerLock: true,
	}
}

func (s *fakeShell) Bind(name string, keys ...string) {
	s.bound[name] = append(s.bound[name], keys...)
}

func (s *fakeShell) Unbind(name string) {
	delete(s.bound, name)
}

func (s *fakeShell) On(event string, handler func()) Subscription {
	s.nextID++
	s.listeners[s.nextID] = handler
	return Subscription{Event: event, ID: s.nextID}
}

func (s *fakeShell) RemoveListener(sub Subscription) {
	delete(s.listeners, sub.ID)
}

func (s *fakeShell) WasDown(name string) bool {
	_, bound := s.bound[name]
	return bound && s.down[name]
}

func (s *fakeShell) Mouse() (float64, float64)     { return s.mouseX, s.mouseY }
func (s *fakeShell) PrevMouse() (float64, float64) { return s.prevMouseX, s.prevMouseY }
func (s *fakeShell) FrameTime() float64            { return s.frameTime }
func (s *fakeShell) PointerLock() bool             { return s.pointerLock }

// emitTick fires every registered handler, like a host frame
func (s *fakeShell) emitTick() {
	for _, h := range s.listeners {
		h()
	}
}

type fakeHandle struct {
	target         Target
	yaw, pitch     Orientable
	fields         []ForceField
	blocksCreation bool
}

func (h *fakeHandle) SetYaw(o Orientable)           { h.yaw = o }
func (h *fakeHandle) SetPitch(o Orientable)         { h.pitch = o }
func (h *fakeHandle) SubjectTo(f ForceField)        { h.fields = append(h.fields, f) }
func (h *fakeHandle) SetBlocksCreation(blocks bool) { h.blocksCreation = blocks }

type fakeGravity struct{}

func (fakeGravity) Acceleration() mgl32.Vec3 { return mgl32.Vec3{0, -9.8, 0} }

type fakeWorld struct {
	items      []PhysicsHandle
	controlled PhysicsHandle
	made       int
	noHandle   bool
}

func (w *fakeWorld) MakePhysical(target Target) PhysicsHandle {
	if w.noHandle {
		return nil
	}
	w.made++
	return &fakeHandle{target: target}
}

func (w *fakeWorld) AddItem(item PhysicsHandle) { w.items = append(w.items, item) }

func (w *fakeWorld) RemoveItem(item PhysicsHandle) {
	for i, it := range w.items {
		if it == item {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

func (w *fakeWorld) Control(item PhysicsHandle) { w.controlled = item }
func (w *fakeWorld) Gravity() ForceField        { return fakeGravity{} }

func newTestController(t *testing.T, opts Options) (*Controller, *fakeShell, *fakeWorld) {
	t.Helper()
	shell := newFakeShell()
	world := &fakeWorld{}
	c, err := New(Host{Shell: shell, World: world, Logger: logger.Discard()}, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, shell, world
}

func TestNew_RequiresCollaborators(t *testing.T) {
	tests := []struct {
		name string
		host Host
		want error
	}{
		{name: "no shell", host: Host{World: &fakeWorld{}}, want: ErrNoShell},
		{name: "no world", host: Host{Shell: newFakeShell()}, want: ErrNoWorld},
		{name: "no handle", host: Host{Shell: newFakeShell(), World: &fakeWorld{noHandle: true}}, want: ErrNoHandle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.host.Logger = logger.Discard()
			c, err := New(tt.host, DefaultOptions())
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if c != nil {
				t.Fatalf("New() returned a controller on error")
			}
		})
	}
}

func TestNew_AppliesInitialOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Position = [3]float32{1, 2, 3}
	opts.RotationX = 0.1
	opts.RotationY = 0.2
	opts.RotationZ = 0.3

	c, _, _ := newTestController(t, opts)

	if got := c.Camera().Position(); got != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("position = %v", got)
	}
	x, y, z := c.Camera().Rotation()
	if x != 0.1 || y != 0.2 || z != 0.3 {
		t.Fatalf("rotation = %v %v %v", x, y, z)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if !opts.EnableFlight || opts.EnablePhysics {
		t.Fatalf("flight=%v physics=%v, want true/false", opts.EnableFlight, opts.EnablePhysics)
	}
	if opts.Position != ([3]float32{}) || opts.RotationX != 0 || opts.RotationY != 0 || opts.RotationZ != 0 {
		t.Fatalf("initial pose = %v %v %v %v, want origin", opts.Position, opts.RotationX, opts.RotationY, opts.RotationZ)
	}
	if opts.Sensitivity != DefaultSensitivity || opts.Speed != DefaultSpeed {
		t.Fatalf("sensitivity=%v speed=%v", opts.Sensitivity, opts.Speed)
	}
	if opts.MaxPitchDelta != float32(math.Pi/2) || opts.MaxYawDelta != float32(math.Pi/2) {
		t.Fatalf("clamps = %v %v, want pi/2", opts.MaxPitchDelta, opts.MaxYawDelta)
	}
	if opts.MinFrameTime != 0 {
		t.Fatalf("MinFrameTime = %v, want 0", opts.MinFrameTime)
	}
}

func TestNew_ZeroOptionsAreUsedAsGiven(t *testing.T) {
	c, shell, _ := newTestController(t, Options{})
	shell.down["forward"] = true
	shell.down["jump"] = true
	shell.mouseX = 40

	shell.emitTick()

	if got := c.Camera().Position(); got != (mgl32.Vec3{}) {
		t.Fatalf("position = %v, want origin with zero speed and no flight", got)
	}
	if _, yaw, _ := c.Camera().Rotation(); yaw != 0 {
		t.Fatalf("yaw = %v, want 0 with a zero clamp", yaw)
	}
}

func TestEnable_BindsSubscribesAndRegistersBody(t *testing.T) {
	c, shell, world := newTestController(t, DefaultOptions())

	if c.State() != Enabled {
		t.Fatalf("state = %v, want enabled", c.State())
	}

	wantKeys := map[string][]string{
		"left":     {"left", "A"},
		"right":    {"right", "D"},
		"forward":  {"up", "W"},
		"backward": {"down", "S"},
		"jump":     {"space"},
		"crouch":   {"shift"},
	}
	for name, keys := range wantKeys {
		got := shell.bound[name]
		if len(got) != len(keys) {
			t.Fatalf("bound[%s] = %v, want %v", name, got, keys)
		}
		for i := range keys {
			if got[i] != keys[i] {
				t.Fatalf("bound[%s] = %v, want %v", name, got, keys)
			}
		}
	}

	if len(shell.listeners) != 1 {
		t.Fatalf("listeners = %d, want 1", len(shell.listeners))
	}

	if len(world.items) != 1 {
		t.Fatalf("world items = %d, want 1", len(world.items))
	}
	h := world.items[0].(*fakeHandle)
	if h.target != c.Player() {
		t.Fatalf("handle target is not the player body")
	}
	if h.yaw != c.Player() || h.pitch != c.Player() {
		t.Fatalf("yaw/pitch sources not set to the player body")
	}
	if len(h.fields) != 1 {
		t.Fatalf("force fields = %d, want 1", len(h.fields))
	}
	if !h.blocksCreation {
		t.Fatalf("blocksCreation = false, want true")
	}
	if world.controlled != world.items[0] {
		t.Fatalf("control focus not granted to the player handle")
	}
}

func TestEnable_IsIdempotent(t *testing.T) {
	c, shell, world := newTestController(t, DefaultOptions())

	if err := c.Enable(); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	if len(shell.listeners) != 1 || len(world.items) != 1 || world.made != 1 {
		t.Fatalf("double enable registered twice: listeners=%d items=%d made=%d",
			len(shell.listeners), len(world.items), world.made)
	}
	if got := len(shell.bound["left"]); got != 2 {
		t.Fatalf("left bound %d keys after double enable, want 2", got)
	}
}

func TestDisable_ReleasesEverything(t *testing.T) {
	c, shell, world := newTestController(t, DefaultOptions())
	c.Disable()

	if c.State() != Disabled {
		t.Fatalf("state = %v, want disabled", c.State())
	}
	if len(shell.listeners) != 0 {
		t.Fatalf("listeners = %d, want 0", len(shell.listeners))
	}
	if len(shell.bound) != 0 {
		t.Fatalf("bindings left after disable: %v", shell.bound)
	}
	if len(world.items) != 0 {
		t.Fatalf("physics items left after disable: %d", len(world.items))
	}

	// second disable is a no-op
	c.Disable()
}

func TestDisable_StopsTicks(t *testing.T) {
	c, shell, _ := newTestController(t, DefaultOptions())
	c.Disable()

	shell.down["forward"] = true
	shell.down["jump"] = true
	shell.mouseX, shell.mouseY = 50, 50

	before := c.Camera().Position()
	bx, by, bz := c.Camera().Rotation()

	shell.emitTick()
	c.Tick()

	if got := c.Camera().Position(); got != before {
		t.Fatalf("position changed after disable: %v -> %v", before, got)
	}
	x, y, z := c.Camera().Rotation()
	if x != bx || y != by || z != bz {
		t.Fatalf("rotation changed after disable")
	}
}

func TestEnable_AfterDisableRegistersAgain(t *testing.T) {
	c, shell, world := newTestController(t, DefaultOptions())
	c.Disable()

	if err := c.Enable(); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	if len(shell.listeners) != 1 || len(world.items) != 1 || world.made != 2 {
		t.Fatalf("re-enable: listeners=%d items=%d made=%d",
			len(shell.listeners), len(world.items), world.made)
	}

	shell.down["forward"] = true
	shell.emitTick()
	if got := c.Camera().Position(); got != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("position after re-enabled tick = %v", got)
	}
}

func TestTick_MovesForward(t *testing.T) {
	c, shell, _ := newTestController(t, DefaultOptions())
	shell.down["forward"] = true

	shell.emitTick()

	if got := c.Camera().Position(); got != (mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("position = %v, want (0,0,1)", got)
	}
}

func TestTick_ForwardFollowsForwardVector(t *testing.T) {
	opts := DefaultOptions()
	opts.RotationY = math.Pi
	c, shell, _ := newTestController(t, opts)
	if f := c.Camera().ForwardVector(); !f.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Fatalf("forward vector = %v, want (0,0,-1)", f)
	}
	shell.down["forward"] = true

	shell.emitTick()

	if got := c.Camera().Position(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Fatalf("position = %v, want (0,0,-1)", got)
	}
}

func TestTick_ForwardMovesEyeTowardView(t *testing.T) {
	for _, yaw := range []float32{0, 0.7, -2.1} {
		opts := DefaultOptions()
		opts.RotationY = yaw
		c, shell, _ := newTestController(t, opts)

		var view mgl32.Mat4
		c.ViewTransform(&view)
		inv := view.Inv()
		eye := inv.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		look := inv.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()

		shell.down["forward"] = true
		shell.emitTick()

		c.ViewTransform(&view)
		moved := view.Inv().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3().Sub(eye)
		if !moved.ApproxEqualThreshold(look, 1e-4) {
			t.Fatalf("yaw %v: eye moved %v, want along view %v", yaw, moved, look)
		}
	}
}

func TestTick_MovementDirections(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		speed float32
		want  mgl32.Vec3
	}{
		{name: "backward", keys: []string{"backward"}, speed: 1, want: mgl32.Vec3{0, 0, -1}},
		{name: "strafe right", keys: []string{"right"}, speed: 1, want: mgl32.Vec3{-1, 0, 0}},
		{name: "strafe left", keys: []string{"left"}, speed: 1, want: mgl32.Vec3{1, 0, 0}},
		{name: "forward scaled", keys: []string{"forward"}, speed: 2.5, want: mgl32.Vec3{0, 0, 2.5}},
		{name: "diagonal is not normalized", keys: []string{"forward", "right"}, speed: 1, want: mgl32.Vec3{-1, 0, 1}},
		{name: "opposites cancel", keys: []string{"forward", "backward"}, speed: 1, want: mgl32.Vec3{0, 0, 0}},
		{name: "negative speed inverts", keys: []string{"forward"}, speed: -1, want: mgl32.Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Speed = tt.speed
			c, shell, _ := newTestController(t, opts)
			for _, k := range tt.keys {
				shell.down[k] = true
			}

			shell.emitTick()

			if got := c.Camera().Position(); !got.ApproxEqual(tt.want) {
				t.Fatalf("position = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTick_DiagonalIsSumOfSingleKeys(t *testing.T) {
	single := func(keys ...string) mgl32.Vec3 {
		opts := DefaultOptions()
		opts.RotationY = 0.7
		c, shell, _ := newTestController(t, opts)
		for _, k := range keys {
			shell.down[k] = true
		}
		shell.emitTick()
		return c.Camera().Position()
	}

	fwd := single("forward")
	right := single("right")
	both := single("forward", "right")

	if !both.ApproxEqualThreshold(fwd.Add(right), 1e-6) {
		t.Fatalf("diagonal = %v, want %v", both, fwd.Add(right))
	}
	if both.Len() <= fwd.Len() {
		t.Fatalf("diagonal length %v should exceed single-axis length %v", both.Len(), fwd.Len())
	}
}

func TestTick_Flight(t *testing.T) {
	tests := []struct {
		name      string
		flight    bool
		key       string
		speed     float32
		frameTime float64
		wantY     float32
	}{
		{name: "jump rises", flight: true, key: "jump", speed: 1, frameTime: 1.0 / 60, wantY: -1},
		{name: "jump ignores speed and dt", flight: true, key: "jump", speed: 7, frameTime: 0.5, wantY: -1},
		{name: "crouch sinks", flight: true, key: "crouch", speed: 3, frameTime: 1.0 / 60, wantY: 1},
		{name: "no flight", flight: false, key: "jump", speed: 1, frameTime: 1.0 / 60, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.EnableFlight = tt.flight
			opts.Speed = tt.speed
			c, shell, _ := newTestController(t, opts)
			shell.frameTime = tt.frameTime
			shell.down[tt.key] = true

			shell.emitTick()

			if got := c.Camera().Position().Y(); got != tt.wantY {
				t.Fatalf("y = %v, want %v", got, tt.wantY)
			}
		})
	}
}

func TestTick_RequiresPointerLock(t *testing.T) {
	c, shell, _ := newTestController(t, DefaultOptions())
	shell.pointerLock = false
	shell.down["forward"] = true
	shell.mouseX = 100

	shell.emitTick()

	if got := c.Camera().Position(); got != (mgl32.Vec3{}) {
		t.Fatalf("position = %v, want origin", got)
	}
	if _, yaw, _ := c.Camera().Rotation(); yaw != 0 {
		t.Fatalf("yaw = %v, want 0", yaw)
	}
}

func TestTick_PhysicsOverridesPosition(t *testing.T) {
	opts := DefaultOptions()
	opts.EnablePhysics = true
	opts.Position = [3]float32{9, 9, 9}
	c, shell, _ := newTestController(t, opts)

	c.Player().SetPosition(mgl32.Vec3{5, 1, 2})
	shell.emitTick()

	if got := c.Camera().Position(); got != (mgl32.Vec3{-5, -1, -2}) {
		t.Fatalf("position = %v, want (-5,-1,-2)", got)
	}
}

func TestTick_PhysicsAppliesBeforeInputAndWithoutPointerLock(t *testing.T) {
	opts := DefaultOptions()
	opts.EnablePhysics = true
	c, shell, _ := newTestController(t, opts)
	c.Player().SetPosition(mgl32.Vec3{5, 1, 2})

	shell.down["forward"] = true
	shell.emitTick()
	if got := c.Camera().Position(); got != (mgl32.Vec3{-5, -1, -1}) {
		t.Fatalf("with lock: position = %v, want (-5,-1,-1)", got)
	}

	shell.pointerLock = false
	c.Player().TranslateX(1)
	shell.emitTick()
	if got := c.Camera().Position(); got != (mgl32.Vec3{-6, -1, -2}) {
		t.Fatalf("without lock: position = %v, want (-6,-1,-2)", got)
	}
}

func TestFollow_MirrorsBody(t *testing.T) {
	opts := DefaultOptions()
	opts.EnablePhysics = true
	opts.RotationX = 0.25
	opts.RotationY = 1.5
	c, shell, _ := newTestController(t, opts)
	c.Player().SetPosition(mgl32.Vec3{2, 3, 4})

	c.Follow()

	if got := c.Camera().Position(); got != (mgl32.Vec3{-2, -3, -4}) {
		t.Fatalf("camera = %v, want (-2,-3,-4)", got)
	}
	if got := c.Player().Rotation(); got != (mgl32.Vec3{-0.25, -1.5, 0}) {
		t.Fatalf("player rotation = %v, want (-0.25,-1.5,0)", got)
	}

	// the tick keeps the body's heading in step with mouse look
	shell.mouseX = 30
	shell.emitTick()
	shell.prevMouseX = 30
	shell.emitTick()
	_, yaw, _ := c.Camera().Rotation()
	if got := c.Player().Rotation().Y(); got != -yaw {
		t.Fatalf("player yaw = %v, want %v", got, -yaw)
	}
}

func TestTick_PhysicsDisabledIgnoresBody(t *testing.T) {
	c, shell, _ := newTestController(t, DefaultOptions())
	shell.pointerLock = false
	c.Player().SetPosition(mgl32.Vec3{5, 1, 2})

	shell.emitTick()

	if got := c.Camera().Position(); got != (mgl32.Vec3{}) {
		t.Fatalf("position = %v, want origin", got)
	}
}

func TestTick_MouseLookClamp(t *testing.T) {
	const limit = float32(math.Pi / 2)

	tests := []struct {
		name               string
		dx, dy             float64
		frameTime          float64
		sensitivity        float64
		wantPitch, wantYaw float32
	}{
		{name: "within range", dx: 10, dy: -20, frameTime: 0.5, sensitivity: 0.01, wantPitch: -0.4, wantYaw: 0.2},
		{name: "positive clamp", dx: 1e6, dy: 1e6, frameTime: 0.01, sensitivity: 0.0002, wantPitch: limit, wantYaw: limit},
		{name: "negative clamp", dx: -1e6, dy: -1e6, frameTime: 0.01, sensitivity: 0.0002, wantPitch: -limit, wantYaw: -limit},
		{name: "independent axes", dx: 0, dy: -1e6, frameTime: 0.01, sensitivity: 0.0002, wantPitch: -limit, wantYaw: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Sensitivity = tt.sensitivity
			c, shell, _ := newTestController(t, opts)
			shell.prevMouseX, shell.prevMouseY = 100, 100
			shell.mouseX, shell.mouseY = 100+tt.dx, 100+tt.dy
			shell.frameTime = tt.frameTime

			shell.emitTick()

			pitch, yaw, _ := c.Camera().Rotation()
			if math.Abs(float64(pitch-tt.wantPitch)) > 1e-6 {
				t.Fatalf("pitch = %v, want %v", pitch, tt.wantPitch)
			}
			if math.Abs(float64(yaw-tt.wantYaw)) > 1e-6 {
				t.Fatalf("yaw = %v, want %v", yaw, tt.wantYaw)
			}
		})
	}
}

func TestTick_MouseLookClampBoundary(t *testing.T) {
	opts := DefaultOptions()
	opts.Sensitivity = 1
	opts.MaxPitchDelta = 0.5
	opts.MaxYawDelta = 0.25
	c, shell, _ := newTestController(t, opts)

	// raw deltas land exactly on the limits
	shell.mouseX, shell.mouseY = 0.25, -0.5
	shell.frameTime = 1

	shell.emitTick()

	pitch, yaw, _ := c.Camera().Rotation()
	if pitch != -0.5 || yaw != 0.25 {
		t.Fatalf("rotation = (%v, %v), want (-0.5, 0.25)", pitch, yaw)
	}
}

func TestTick_MouseLookAccumulates(t *testing.T) {
	opts := DefaultOptions()
	opts.Sensitivity = 1
	c, shell, _ := newTestController(t, opts)
	shell.frameTime = 1
	shell.mouseX = 0.5

	shell.emitTick()
	shell.emitTick()

	if _, yaw, _ := c.Camera().Rotation(); yaw != 1 {
		t.Fatalf("yaw = %v, want 1", yaw)
	}
}

// A zero frame time is not guarded by default: 0/0 yields NaN, which passes
// through the clamp into the camera orientation.
func TestTick_ZeroFrameTimeProducesNaN(t *testing.T) {
	c, shell, _ := newTestController(t, DefaultOptions())
	shell.frameTime = 0

	shell.emitTick()

	pitch, yaw, _ := c.Camera().Rotation()
	if !math.IsNaN(float64(pitch)) || !math.IsNaN(float64(yaw)) {
		t.Fatalf("rotation = (%v, %v), want NaN", pitch, yaw)
	}
}

func TestTick_ZeroFrameTimeWithMotionClampsInfinity(t *testing.T) {
	c, shell, _ := newTestController(t, DefaultOptions())
	shell.frameTime = 0
	shell.mouseX, shell.mouseY = 3, -3

	shell.emitTick()

	pitch, yaw, _ := c.Camera().Rotation()
	if pitch != -DefaultMaxDelta || yaw != DefaultMaxDelta {
		t.Fatalf("rotation = (%v, %v), want clamped to the limits", pitch, yaw)
	}
}

func TestTick_MinFrameTimeGuardsZero(t *testing.T) {
	opts := DefaultOptions()
	opts.MinFrameTime = 1.0 / 1000
	c, shell, _ := newTestController(t, opts)
	shell.frameTime = 0

	shell.emitTick()

	pitch, yaw, _ := c.Camera().Rotation()
	if pitch != 0 || yaw != 0 {
		t.Fatalf("rotation = (%v, %v), want (0, 0)", pitch, yaw)
	}
}

func TestViewTransformAndWorldPosition(t *testing.T) {
	opts := DefaultOptions()
	opts.Position = [3]float32{1, 2, 3}
	c, _, _ := newTestController(t, opts)

	var pos mgl32.Vec3
	c.WorldPosition(&pos)
	if pos != (mgl32.Vec3{-3, -2, -1}) {
		t.Fatalf("WorldPosition = %v, want (-3,-2,-1)", pos)
	}

	var view mgl32.Mat4
	c.ViewTransform(&view)
	if view != c.Camera().ViewMatrix() {
		t.Fatalf("ViewTransform does not match camera view matrix")
	}
}

func TestStateString(t *testing.T) {
	if Enabled.String() != "enabled" || Disabled.String() != "disabled" {
		t.Fatalf("unexpected state names: %s %s", Enabled, Disabled)
	}
}
