package voxel

// BlockType represents the different types of blocks in the world
type BlockType uint8

const (
	Air BlockType = iota
	Grass
	Dirt
	Stone
	Sand
	Water
	Glass
	OakLog
	OakLeaves
	OakPlanks
)

// BlockProperties contains physical properties of a block
type BlockProperties struct {
	Name        string
	Solid       bool
	Transparent bool
}

var blockProperties = [...]BlockProperties{
	Air:       {Name: "air", Solid: false, Transparent: true},
	Grass:     {Name: "grass", Solid: true, Transparent: false},
	Dirt:      {Name: "dirt", Solid: true, Transparent: false},
	Stone:     {Name: "stone", Solid: true, Transparent: false},
	Sand:      {Name: "sand", Solid: true, Transparent: false},
	Water:     {Name: "water", Solid: false, Transparent: true},
	Glass:     {Name: "glass", Solid: true, Transparent: true},
	OakLog:    {Name: "oak_log", Solid: true, Transparent: false},
	OakLeaves: {Name: "oak_leaves", Solid: true, Transparent: true},
	OakPlanks: {Name: "oak_planks", Solid: true, Transparent: false},
}

// Properties returns the properties of b. Unknown types are solid and opaque.
func (b BlockType) Properties() BlockProperties {
	if int(b) >= len(blockProperties) {
		return BlockProperties{Name: "unknown", Solid: true}
	}
	return blockProperties[b]
}

// IsSolid returns whether bodies collide with the block
func (b BlockType) IsSolid() bool {
	return b.Properties().Solid
}

// IsTransparent returns whether light passes through the block
func (b BlockType) IsTransparent() bool {
	return b.Properties().Transparent
}

func (b BlockType) String() string {
	return b.Properties().Name
}

// ParseBlockType looks a block type up by name
func ParseBlockType(name string) (BlockType, bool) {
	for i, p := range blockProperties {
		if p.Name == name {
			return BlockType(i), true
		}
	}
	return Air, false
}
