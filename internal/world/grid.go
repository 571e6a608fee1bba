package world

type cell struct {
	x, y, z int
}

// Grid is a sparse hand-built world. Every position reports the same biome
// unless a column override is set.
type Grid struct {
	Biome  string
	Zone   string
	blocks map[cell]BlockType
	fluid  map[cell]int
	biomes map[[2]int]string
	fluids *FluidRegistry
}

func NewGrid(biome string) *Grid {
	return &Grid{
		Biome:  biome,
		Zone:   "Zone1_Emerald_Wilds",
		blocks: map[cell]BlockType{},
		fluid:  map[cell]int{},
		biomes: map[[2]int]string{},
		fluids: DefaultFluids(),
	}
}

func (g *Grid) Fluids() *FluidRegistry {
	return g.fluids
}

func (g *Grid) SetBlock(x, y, z int, b BlockType) {
	g.blocks[cell{x, y, z}] = b
}

// SetFluid places a registered fluid; unknown names are registered.
func (g *Grid) SetFluid(x, y, z int, name string) {
	g.fluid[cell{x, y, z}] = g.fluids.Register(name)
}

func (g *Grid) SetColumnBiome(x, z int, biome string) {
	g.biomes[[2]int{x, z}] = biome
}

func (g *Grid) BiomeNameAt(pos Vec3) (string, error) {
	if b, ok := g.biomes[[2]int{blockCoord(pos.X), blockCoord(pos.Z)}]; ok {
		return b, nil
	}
	return g.Biome, nil
}

func (g *Grid) ZoneNameAt(Vec3) (string, error) {
	return g.Zone, nil
}

func (g *Grid) BlockAt(x, y, z int) BlockType {
	return g.blocks[cell{x, y, z}]
}

func (g *Grid) FluidAt(x, y, z int) int {
	return g.fluid[cell{x, y, z}]
}
