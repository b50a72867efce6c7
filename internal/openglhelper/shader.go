package openglhelper

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}

// NewShader links a program from vertex and fragment shader source
func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return nil, fmt.Errorf("failed to link program: %v", log)
	}

	return &Shader{ID: program, uniforms: make(map[string]int32)}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetVec3 sets a vec3 uniform
func (s *Shader) SetVec3(name string, vec mgl32.Vec3) {
	gl.Uniform3f(s.location(name), vec[0], vec[1], vec[2])
}

// SetMat4 sets a mat4 uniform
func (s *Shader) SetMat4(name string, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &mat[0])
}
