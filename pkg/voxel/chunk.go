package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Chunk represents a cube of voxels
type Chunk struct {
	// Position in chunk coordinates (not world coordinates)
	Coord ChunkCoord
	// Size of the chunk in each dimension
	Size int
	// Voxel data, indexed by LocalToIndex
	Blocks []BlockType
}

// NewChunk creates an empty (all air) chunk
func NewChunk(coord ChunkCoord, size int) *Chunk {
	return &Chunk{
		Coord:  coord,
		Size:   size,
		Blocks: make([]BlockType, size*size*size),
	}
}

// Fill sets every block in the chunk to blockType
func (c *Chunk) Fill(blockType BlockType) {
	for i := range c.Blocks {
		c.Blocks[i] = blockType
	}
}

func (c *Chunk) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < c.Size && y < c.Size && z < c.Size
}

// Block returns the block at local coordinates, or Air when out of bounds
func (c *Chunk) Block(x, y, z int) BlockType {
	if !c.inBounds(x, y, z) {
		return Air
	}
	return c.Blocks[LocalToIndex(x, y, z, c.Size)]
}

// SetBlock sets the block at local coordinates. Out-of-bounds writes are ignored.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if !c.inBounds(x, y, z) {
		return
	}
	c.Blocks[LocalToIndex(x, y, z, c.Size)] = blockType
}

// IsEmpty reports whether the chunk holds only air
func (c *Chunk) IsEmpty() bool {
	for _, b := range c.Blocks {
		if b != Air {
			return false
		}
	}
	return true
}

// WorldPosition returns the world position of the chunk's minimum corner
func (c *Chunk) WorldPosition() mgl32.Vec3 {
	return ChunkToWorldPos(c.Coord, c.Size)
}
