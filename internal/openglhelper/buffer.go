// Package openglhelper provides utilities for working with OpenGL buffers and other resources.
// It wraps the low-level OpenGL functions in a more Go-friendly API.
package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// BufferObject represents an OpenGL buffer object
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER, ...
	Size  int    // Size of the buffer in bytes
	Usage uint32
}

// BufferUsage represents different buffer usage patterns for OpenGL buffers.
type BufferUsage uint32

const (
	// StaticDraw indicates buffer contents will be specified once and used many times for drawing
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw indicates buffer contents will be changed frequently and used many times for drawing
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
)

// VertexArrayObject represents an OpenGL vertex array object (VAO) that stores vertex attribute configurations.
type VertexArrayObject struct {
	ID uint32
}

// NewBufferObject creates a buffer of sizeInBytes, optionally initialised from data
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:    bufferID,
		Type:  bufferType,
		Size:  sizeInBytes,
		Usage: uint32(usage),
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	return buffer
}

// NewVBO creates an array buffer holding vertices
func NewVBO(vertices []float32, usage BufferUsage) *BufferObject {
	var data unsafe.Pointer
	if len(vertices) > 0 {
		data = gl.Ptr(vertices)
	}
	return NewBufferObject(gl.ARRAY_BUFFER, len(vertices)*4, data, usage)
}

// Bind binds the buffer object to its type target.
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its type target.
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// Replace reallocates the buffer with new contents
func (bo *BufferObject) Replace(sizeInBytes int, data unsafe.Pointer) {
	bo.Bind()
	bo.Size = sizeInBytes
	gl.BufferData(bo.Type, sizeInBytes, data, bo.Usage)
}

// Delete releases the buffer object and frees its resources.
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// NewVAO creates a new Vertex Array Object.
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)

	return &VertexArrayObject{
		ID: vaoID,
	}
}

// Bind binds the vertex array object.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object.
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object and frees its resources.
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer sets up a vertex attribute pointer and enables the attribute.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}
