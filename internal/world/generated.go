package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds terrain generation parameters.
type GenConfig struct {
	Seed      int64
	Radius    int     // Horizontal half-extent in blocks; 0 = unbounded
	SeaLevel  int     // Water surface height
	MaxHeight int     // Terrain relief above the floor
	Scale     float64 // Horizontal noise frequency
}

func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:      0,
		Radius:    2048,
		SeaLevel:  64,
		MaxHeight: 96,
		Scale:     0.004,
	}
}

// Generated is a deterministic noise world. Columns are derived on demand
// from elevation, moisture and temperature fields; nothing is stored.
type Generated struct {
	cfg    GenConfig
	elev   opensimplex.Noise
	moist  opensimplex.Noise
	temp   opensimplex.Noise
	detail opensimplex.Noise
	fluids *FluidRegistry
	water  int
	lava   int
}

func Generate(cfg GenConfig) *Generated {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultGenConfig().Scale
	}
	if cfg.MaxHeight <= 0 {
		cfg.MaxHeight = DefaultGenConfig().MaxHeight
	}
	cfg.Seed = seed

	fluids := DefaultFluids()
	water, _ := fluids.Index("Water_Source")
	lava, _ := fluids.Index("Lava_Source")
	return &Generated{
		cfg:    cfg,
		elev:   opensimplex.NewNormalized(seed),
		moist:  opensimplex.NewNormalized(seed + 1),
		temp:   opensimplex.NewNormalized(seed + 2),
		detail: opensimplex.NewNormalized(seed + 3),
		fluids: fluids,
		water:  water,
		lava:   lava,
	}
}

func (g *Generated) Config() GenConfig {
	return g.cfg
}

func (g *Generated) Fluids() *FluidRegistry {
	return g.fluids
}

type column struct {
	height int
	elev   float64
	moist  float64
	temp   float64
	detail float64
}

func (g *Generated) column(x, z int) column {
	fx, fz := float64(x), float64(z)
	elev := octaveNoise(g.elev, fx, fz, 4, g.cfg.Scale, 0.5)
	moist := octaveNoise(g.moist, fx, fz, 3, g.cfg.Scale*0.8, 0.5)
	temp := octaveNoise(g.temp, fx, fz, 3, g.cfg.Scale*0.6, 0.5)
	detail := octaveNoise(g.detail, fx, fz, 2, g.cfg.Scale*4, 0.5)

	// Higher ground is colder.
	temp = temp*0.8 + (1-elev)*0.2

	floor := g.cfg.SeaLevel - g.cfg.MaxHeight/2
	return column{
		height: floor + int(elev*float64(g.cfg.MaxHeight)),
		elev:   elev,
		moist:  moist,
		temp:   temp,
		detail: detail,
	}
}

func (g *Generated) inBounds(x, z int) bool {
	r := g.cfg.Radius
	return r <= 0 || (absInt(x) <= r && absInt(z) <= r)
}

// SurfaceY is the first cell above the ground or the water surface.
func (g *Generated) SurfaceY(x, z int) int {
	return max(g.column(x, z).height, g.cfg.SeaLevel) + 1
}

func (g *Generated) BiomeNameAt(pos Vec3) (string, error) {
	x, z := blockCoord(pos.X), blockCoord(pos.Z)
	if !g.inBounds(x, z) {
		return "", ErrOutOfBounds
	}
	return biomeName(g.column(x, z), g.cfg.SeaLevel), nil
}

func (g *Generated) ZoneNameAt(pos Vec3) (string, error) {
	x, z := blockCoord(pos.X), blockCoord(pos.Z)
	if !g.inBounds(x, z) {
		return "", ErrOutOfBounds
	}
	return zoneName(g.column(x, z).temp), nil
}

func (g *Generated) BlockAt(x, y, z int) BlockType {
	if !g.inBounds(x, z) {
		return Air
	}
	c := g.column(x, z)
	if y > c.height {
		return Air
	}
	if y < c.height-3 {
		return Stone
	}
	switch {
	case c.temp < 0.25:
		if c.height < g.cfg.SeaLevel {
			return Ice
		}
		return Snow
	case c.temp > 0.6 && c.moist < 0.35:
		return Sand
	default:
		return Soil
	}
}

func (g *Generated) FluidAt(x, y, z int) int {
	if !g.inBounds(x, z) {
		return 0
	}
	c := g.column(x, z)
	if y <= c.height || y > g.cfg.SeaLevel {
		return 0
	}
	if c.temp > 0.8 && c.elev > 0.55 {
		return g.lava
	}
	return g.water
}

// biomeName composes names in the server's Region_Feature_Variant style so
// keyword tables written against real biome names match generated ones.
func biomeName(c column, seaLevel int) string {
	if c.height < seaLevel {
		depth := seaLevel - c.height
		switch {
		case c.temp < 0.3 && depth > 20:
			return "Cold_Trench"
		case c.temp < 0.3:
			return "Cold_Kelp"
		case depth > 24:
			return "Ocean_Trench"
		case c.moist > 0.6 && depth < 6:
			return "Lake_Swamp"
		case depth < 6:
			return "River_Delta"
		case c.detail > 0.55:
			return "Ocean_Reef"
		default:
			return "Ocean_Kelp"
		}
	}

	high := c.elev > 0.7
	switch {
	case c.temp < 0.2:
		if high {
			return "Glacier"
		}
		return "Valley_Forest_Frozen"
	case c.temp < 0.32:
		if high {
			return "Cliffs_Tundra"
		}
		return "Plains_Tundra"
	case c.temp > 0.8 && high:
		return "Volcano_Wastes_Lava"
	case c.temp > 0.72 && c.moist < 0.3:
		if c.detail > 0.7 {
			return "Desert_Oasis"
		}
		if c.detail < 0.2 {
			return "Desert_Hotsprings"
		}
		return "Dunes_Desert"
	case c.temp > 0.65 && c.moist < 0.45:
		if high {
			return "Plateau_Savannah"
		}
		return "Scrub_Tar_Pits"
	case c.temp > 0.65:
		return "Caldera_Forest_Ghost"
	case high && c.moist < 0.4:
		return "Canyon_Wastes"
	case high:
		return "Mountain_Forest"
	case c.moist > 0.7:
		return "Canyon_Forest_Swamp"
	case c.moist > 0.45:
		return "Valley_Forest"
	case c.elev < 0.42:
		return "Lake_Plains"
	default:
		return "Plains"
	}
}

func zoneName(temp float64) string {
	switch {
	case temp < 0.32:
		return "Zone3_Borea"
	case temp > 0.72:
		return "Zone4_Devastated_Lands"
	case temp > 0.6:
		return "Zone2_Howling_Sands"
	default:
		return "Zone1_Emerald_Wilds"
	}
}

func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return math.Max(0, math.Min(1, total/maxVal))
}
