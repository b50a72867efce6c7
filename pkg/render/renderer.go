// Package render draws the voxel terrain as block outlines seen through a
// first-person view transform.
package render

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/internal/logger"
	"github.com/leterax/go-voxels-fpscam/internal/openglhelper"
	"github.com/leterax/go-voxels-fpscam/pkg/voxel"
)

// ViewSource supplies the view transform each frame
type ViewSource interface {
	ViewTransform(out *mgl32.Mat4)
}

// Renderer handles drawing the terrain into a window
type Renderer struct {
	window  *openglhelper.Window
	shader  *openglhelper.Shader
	terrain *voxel.Terrain
	mesh    *openglhelper.LineMesh
	fov     float32
	log     *slog.Logger
}

// NewRenderer compiles the outline shader and uploads the terrain. A nil
// log uses the default logger.
func NewRenderer(window *openglhelper.Window, terrain *voxel.Terrain, log *slog.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.L()
	}

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	r := &Renderer{
		window:  window,
		shader:  shader,
		terrain: terrain,
		fov:     DefaultFOV,
		log:     log.With("component", "render"),
	}
	r.Rebuild()

	gl.LineWidth(1)
	return r, nil
}

// Rebuild regenerates the outline mesh from the terrain
func (r *Renderer) Rebuild() {
	vertices := Outlines(r.terrain)
	if r.mesh == nil {
		r.mesh = openglhelper.NewLineMesh(vertices)
	} else {
		r.mesh.Update(vertices)
	}
	r.log.Debug("terrain outlines built", "vertices", outlineVertexCount(vertices), "chunks", len(r.terrain.Chunks()))
}

// Projection returns the perspective projection for the window's aspect ratio
func (r *Renderer) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(r.fov), r.window.Aspect(), NearPlane, FarPlane)
}

// Render draws one frame using the view supplied by src
func (r *Renderer) Render(src ViewSource) {
	var view mgl32.Mat4
	src.ViewTransform(&view)

	r.window.Clear(ClearColor)

	r.shader.Use()
	r.shader.SetMat4("projection", r.Projection())
	r.shader.SetMat4("view", view)
	r.mesh.Draw()
}

// Cleanup releases GPU resources
func (r *Renderer) Cleanup() {
	if r.mesh != nil {
		r.mesh.Delete()
	}
	r.shader.Delete()
}
