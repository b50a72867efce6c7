package voxel

// DefaultChunkSize is the edge length of terrain chunks
const DefaultChunkSize = 16

// Terrain is a sparse set of chunks addressed by world block coordinates
type Terrain struct {
	chunkSize int
	chunks    map[ChunkCoord]*Chunk
}

// NewTerrain creates an empty terrain. A non-positive chunkSize uses DefaultChunkSize.
func NewTerrain(chunkSize int) *Terrain {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Terrain{
		chunkSize: chunkSize,
		chunks:    make(map[ChunkCoord]*Chunk),
	}
}

// ChunkSize returns the chunk edge length
func (t *Terrain) ChunkSize() int {
	return t.chunkSize
}

// Chunk returns the chunk at coord, or nil
func (t *Terrain) Chunk(coord ChunkCoord) *Chunk {
	return t.chunks[coord]
}

// Chunks returns every loaded chunk in no particular order
func (t *Terrain) Chunks() []*Chunk {
	chunks := make([]*Chunk, 0, len(t.chunks))
	for _, c := range t.chunks {
		chunks = append(chunks, c)
	}
	return chunks
}

// Block returns the block at a world position. Unloaded space is air.
func (t *Terrain) Block(x, y, z int) BlockType {
	c := t.chunks[WorldToChunkCoord(x, y, z, t.chunkSize)]
	if c == nil {
		return Air
	}
	lx, ly, lz := WorldToLocalCoord(x, y, z, t.chunkSize)
	return c.Block(lx, ly, lz)
}

// SetBlock sets the block at a world position, creating its chunk if needed
func (t *Terrain) SetBlock(x, y, z int, blockType BlockType) {
	coord := WorldToChunkCoord(x, y, z, t.chunkSize)
	c := t.chunks[coord]
	if c == nil {
		if blockType == Air {
			return
		}
		c = NewChunk(coord, t.chunkSize)
		t.chunks[coord] = c
	}
	lx, ly, lz := WorldToLocalCoord(x, y, z, t.chunkSize)
	c.SetBlock(lx, ly, lz, blockType)
}

// IsSolid reports whether the block at a world position is solid
func (t *Terrain) IsSolid(x, y, z int) bool {
	return t.Block(x, y, z).IsSolid()
}

// Flat fills a square of (2*radius)^2 columns centred on the origin with
// top as the surface block at y = height-1 and stone below, down to y = 0
func (t *Terrain) Flat(radius, height int, top BlockType) {
	for x := -radius; x < radius; x++ {
		for z := -radius; z < radius; z++ {
			for y := 0; y < height; y++ {
				block := Stone
				if y == height-1 {
					block = top
				}
				t.SetBlock(x, y, z, block)
			}
		}
	}
}
