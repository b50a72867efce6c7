package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ChunkCoord represents the x,y,z coordinates of a chunk
type ChunkCoord struct {
	X, Y, Z int32
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv, always in [0, b)
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// WorldToChunkCoord converts a block position to the coordinate of the chunk holding it
func WorldToChunkCoord(x, y, z, chunkSize int) ChunkCoord {
	return ChunkCoord{
		X: int32(floorDiv(x, chunkSize)),
		Y: int32(floorDiv(y, chunkSize)),
		Z: int32(floorDiv(z, chunkSize)),
	}
}

// WorldToLocalCoord converts a block position to coordinates within its chunk
func WorldToLocalCoord(x, y, z, chunkSize int) (int, int, int) {
	return floorMod(x, chunkSize), floorMod(y, chunkSize), floorMod(z, chunkSize)
}

// ChunkToWorldPos converts chunk coordinates to world position (corner of chunk)
func ChunkToWorldPos(c ChunkCoord, chunkSize int) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(int(c.X) * chunkSize),
		float32(int(c.Y) * chunkSize),
		float32(int(c.Z) * chunkSize),
	}
}

// LocalToIndex converts local block coordinates to an index in a flat array
func LocalToIndex(x, y, z, chunkSize int) int {
	return x*chunkSize*chunkSize + y*chunkSize + z
}

// IndexToLocal converts a flat array index to local coordinates within a chunk
func IndexToLocal(index, chunkSize int) (x, y, z int) {
	x = index / (chunkSize * chunkSize)
	remainder := index % (chunkSize * chunkSize)
	y = remainder / chunkSize
	z = remainder % chunkSize
	return
}
