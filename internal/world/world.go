// Package world answers the terrain questions survival systems ask: which
// biome and zone a position is in, and which block and fluid occupy a cell.
package world

import (
	"errors"
	"math"
)

var ErrOutOfBounds = errors.New("position outside generated world")

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// BlockType describes the block occupying a cell. The zero value is air.
type BlockType struct {
	ID    string
	Solid bool
}

var (
	Air   = BlockType{}
	Stone = BlockType{ID: "Rock_Stone", Solid: true}
	Soil  = BlockType{ID: "Soil_Dirt", Solid: true}
	Sand  = BlockType{ID: "Soil_Sand", Solid: true}
	Snow  = BlockType{ID: "Soil_Snow", Solid: true}
	Ice   = BlockType{ID: "Rock_Ice", Solid: true}
)

// World is the terrain view the mod needs from the server.
type World interface {
	BiomeNameAt(pos Vec3) (string, error)
	ZoneNameAt(pos Vec3) (string, error)
	BlockAt(x, y, z int) BlockType
	// FluidAt returns the fluid index at a cell; 0 means no fluid.
	FluidAt(x, y, z int) int
	Fluids() *FluidRegistry
}

// Surfacer is implemented by worlds that know where an entity can stand.
type Surfacer interface {
	SurfaceY(x, z int) int
}

// FluidRegistry maps fluid asset ids to dense indexes. Index 0 is reserved
// for "no fluid".
type FluidRegistry struct {
	index map[string]int
	names []string
}

func NewFluidRegistry(names ...string) *FluidRegistry {
	r := &FluidRegistry{index: map[string]int{}, names: []string{""}}
	for _, n := range names {
		r.Register(n)
	}
	return r
}

func (r *FluidRegistry) Register(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	i := len(r.names)
	r.index[name] = i
	r.names = append(r.names, name)
	return i
}

func (r *FluidRegistry) Index(name string) (int, bool) {
	if r == nil {
		return 0, false
	}
	i, ok := r.index[name]
	return i, ok
}

func (r *FluidRegistry) Name(index int) string {
	if r == nil || index <= 0 || index >= len(r.names) {
		return ""
	}
	return r.names[index]
}

// DefaultFluids registers the fluids the generator places.
func DefaultFluids() *FluidRegistry {
	return NewFluidRegistry("Water_Source", "Water", "Lava_Source", "Lava", "Tar")
}

func blockCoord(v float64) int {
	return int(math.Floor(v))
}
