package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-voxels-fpscam/internal/openglhelper"
	"github.com/leterax/go-voxels-fpscam/pkg/voxel"
)

// topEdges are the corner offsets of the four edges of a block's top face
var topEdges = [4][2]mgl32.Vec3{
	{{0, 1, 0}, {1, 1, 0}},
	{{1, 1, 0}, {1, 1, 1}},
	{{1, 1, 1}, {0, 1, 1}},
	{{0, 1, 1}, {0, 1, 0}},
}

// Outlines builds line vertices for the top face of every solid block that
// has a non-solid block above it. Each vertex is x, y, z, r, g, b.
func Outlines(terrain *voxel.Terrain) []float32 {
	var vertices []float32
	size := terrain.ChunkSize()

	for _, chunk := range terrain.Chunks() {
		origin := chunk.WorldPosition()
		for i, block := range chunk.Blocks {
			if !block.IsSolid() {
				continue
			}
			lx, ly, lz := voxel.IndexToLocal(i, size)
			wx := int(origin.X()) + lx
			wy := int(origin.Y()) + ly
			wz := int(origin.Z()) + lz
			if terrain.IsSolid(wx, wy+1, wz) {
				continue
			}

			base := mgl32.Vec3{float32(wx), float32(wy), float32(wz)}
			color := BlockColor(block)
			for _, edge := range topEdges {
				for _, corner := range edge {
					p := base.Add(corner)
					vertices = append(vertices, p.X(), p.Y(), p.Z(), color.X(), color.Y(), color.Z())
				}
			}
		}
	}

	return vertices
}

// outlineVertexCount returns the number of vertices in an outline buffer
func outlineVertexCount(vertices []float32) int {
	return len(vertices) / openglhelper.LineVertexFloats
}
