package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// LineVertexFloats is the number of floats per line vertex: position then colour
const LineVertexFloats = 6

// LineMesh is a set of coloured line segments drawn with GL_LINES
type LineMesh struct {
	vao   *VertexArrayObject
	vbo   *BufferObject
	count int32
}

// NewLineMesh uploads vertices laid out as x, y, z, r, g, b per vertex
func NewLineMesh(vertices []float32) *LineMesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)

	stride := int32(LineVertexFloats * 4)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)

	vao.Unbind()

	return &LineMesh{
		vao:   vao,
		vbo:   vbo,
		count: int32(len(vertices) / LineVertexFloats),
	}
}

// Update replaces the mesh's vertices
func (m *LineMesh) Update(vertices []float32) {
	m.vao.Bind()
	if len(vertices) > 0 {
		m.vbo.Replace(len(vertices)*4, gl.Ptr(vertices))
	} else {
		m.vbo.Replace(0, nil)
	}
	m.vao.Unbind()
	m.count = int32(len(vertices) / LineVertexFloats)
}

// Draw renders the mesh with the currently bound program
func (m *LineMesh) Draw() {
	if m.count == 0 {
		return
	}
	m.vao.Bind()
	gl.DrawArrays(gl.LINES, 0, m.count)
	m.vao.Unbind()
}

// Delete releases GPU resources
func (m *LineMesh) Delete() {
	m.vbo.Delete()
	m.vao.Delete()
}
