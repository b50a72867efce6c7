package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/internal/logger"
)

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow    *glfw.Window
	width         int
	height        int
	title         string
	mouseCaptured bool
	onCapture     func(captured bool)
	log           *slog.Logger
}

// NewWindow creates a new GLFW window with OpenGL context. A nil log uses the
// default logger.
func NewWindow(width, height int, title string, vsync bool, log *slog.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	if log == nil {
		log = logger.L()
	}
	log = log.With("component", "window")
	log.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)), "size", fmt.Sprintf("%dx%d", width, height))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	w := &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		title:      title,
		log:        log,
	}
	glfwWindow.SetKeyCallback(w.keyCallback)
	glfwWindow.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	return w, nil
}

// Clear clears the screen
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Close releases all resources
func (w *Window) Close() {
	glfw.Terminate()
}

// Time returns seconds since GLFW was initialised
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Size returns the window dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Aspect returns width over height
func (w *Window) Aspect() float32 {
	if w.height == 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.title = title
	w.glfwWindow.SetTitle(title)
}

// KeyDown reports whether any physical key behind the name is held
func (w *Window) KeyDown(name string) bool {
	for _, key := range LookupKey(name) {
		if w.glfwWindow.GetKey(key) == glfw.Press {
			return true
		}
	}
	return false
}

// CursorPos returns the cursor position in window coordinates
func (w *Window) CursorPos() (x, y float64) {
	return w.glfwWindow.GetCursorPos()
}

// PointerLocked reports whether the cursor is captured by the window
func (w *Window) PointerLocked() bool {
	return w.mouseCaptured
}

// OnResize is called when the window is resized
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetMouseCaptured captures or releases the mouse cursor
func (w *Window) SetMouseCaptured(captured bool) {
	w.mouseCaptured = captured

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	w.log.Debug("pointer lock", "captured", captured)
	if w.onCapture != nil {
		w.onCapture(captured)
	}
}

// OnCaptureChange registers fn to run whenever the capture state changes
func (w *Window) OnCaptureChange(fn func(captured bool)) {
	w.onCapture = fn
}

// ToggleMouseCaptured toggles the mouse capture state
func (w *Window) ToggleMouseCaptured() {
	w.SetMouseCaptured(!w.mouseCaptured)
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.glfwWindow.SetShouldClose(true)
	case glfw.KeyC:
		w.ToggleMouseCaptured()
	}
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.OnResize(width, height)
}
