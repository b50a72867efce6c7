package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/pkg/voxel"
)

// Projection constants
const (
	DefaultFOV = 70.0 // degrees
	NearPlane  = 0.05
	FarPlane   = 500.0
)

// ClearColor is the sky colour
var ClearColor = mgl32.Vec4{0.53, 0.72, 0.92, 1.0}

var blockColors = map[voxel.BlockType]mgl32.Vec3{
	voxel.Grass:     {0.30, 0.62, 0.22},
	voxel.Dirt:      {0.47, 0.33, 0.20},
	voxel.Stone:     {0.50, 0.50, 0.52},
	voxel.Sand:      {0.86, 0.80, 0.55},
	voxel.Glass:     {0.80, 0.90, 0.95},
	voxel.OakLog:    {0.40, 0.28, 0.15},
	voxel.OakLeaves: {0.20, 0.45, 0.15},
	voxel.OakPlanks: {0.70, 0.55, 0.33},
}

var defaultBlockColor = mgl32.Vec3{1, 0, 1}

// BlockColor returns the outline colour for a block type
func BlockColor(b voxel.BlockType) mgl32.Vec3 {
	if c, ok := blockColors[b]; ok {
		return c
	}
	return defaultBlockColor
}

const vertexShaderSource = `#version 460 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 projection;
uniform mat4 view;

out vec3 color;

void main() {
    color = aColor;
    gl_Position = projection * view * vec4(aPos, 1.0);
}
`

const fragmentShaderSource = `#version 460 core
in vec3 color;
out vec4 FragColor;

void main() {
    FragColor = vec4(color, 1.0);
}
`
