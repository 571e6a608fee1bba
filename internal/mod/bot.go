package mod

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/appengine-ltd/easy-hunger/internal/items"
	"github.com/appengine-ltd/easy-hunger/internal/survival"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

var botNames = []string{
	"Avery", "Brook", "Casey", "Devon", "Emery", "Finley", "Harper", "Jordan",
	"Kai", "Logan", "Morgan", "Parker", "Quinn", "Riley", "Rowan", "Sage",
}

// BotStats counts what one bot has done.
type BotStats struct {
	Meals    int
	Drinks   int
	Refills  int
	Distance float64
}

type bot struct {
	id      uuid.UUID
	elapsed float32
	water   *world.Vec3
	// decisions to wait before searching for water again
	searchCooldown int
	stats          BotStats
}

// Bots drives simulated players: they wander, eat when hungry, drink when
// thirsty and walk to water to refill their waterskins.
type Bots struct {
	DecideEvery  float32 // seconds of game time between decisions
	HungryBelow  float32
	ThirstyBelow float32
	Stride       float64 // blocks walked per decision
	SearchRadius int

	mod  *Mod
	rng  *rand.Rand
	bots []*bot
}

func NewBots(m *Mod, seed int64) *Bots {
	// Non-cryptographic PRNG keeps runs reproducible for a seed.
	// #nosec G404
	rng := rand.New(rand.NewPCG(seedWord(seed, "bots"), seedWord(seed, "walk")))
	return &Bots{
		DecideEvery:  2,
		HungryBelow:  m.Config.Mod.WellFedThreshold - 20,
		ThirstyBelow: m.Config.Mod.WellFedThreshold - 20,
		Stride:       4,
		SearchRadius: 48,
		mod:          m,
		rng:          rng,
	}
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Spawn adds n bot players near the origin with a starter kit.
func (b *Bots) Spawn(n int) ([]*survival.Entity, error) {
	used := map[string]int{}
	out := make([]*survival.Entity, 0, n)
	for i := 0; i < n; i++ {
		base := botNames[b.rng.IntN(len(botNames))]
		name := base
		if c := used[base]; c > 0 {
			name = fmt.Sprintf("%s %d", base, c+1)
		}
		used[base]++

		pos := world.Vec3{X: b.rng.Float64()*32 - 16, Z: b.rng.Float64()*32 - 16}
		pos.Y = b.groundAt(pos, 0)

		e, err := b.mod.Join(name, pos)
		if err != nil {
			return nil, err
		}
		starterKit(e)
		b.bots = append(b.bots, &bot{id: e.ID, elapsed: b.rng.Float32() * b.DecideEvery})
		out = append(out, e)
	}
	return out, nil
}

// Adopt drives entities that already exist, such as restored players.
func (b *Bots) Adopt(e *survival.Entity) {
	for _, bt := range b.bots {
		if bt.id == e.ID {
			return
		}
	}
	b.bots = append(b.bots, &bot{id: e.ID})
}

func starterKit(e *survival.Entity) {
	kit := []items.Stack{
		{ItemID: "Food_Bread", Quantity: 3},
		{ItemID: "Plant_Fruit_Apple", Quantity: 5},
		{ItemID: "Food_Wildmeat_Cooked", Quantity: 2},
		{ItemID: "*Waterskin:Filled_Water", Quantity: 1, Durability: 3, MaxDurability: 4},
	}
	for i, s := range kit {
		_ = e.Hotbar.Put(i, s)
	}
}

func (b *Bots) Stats(id uuid.UUID) (BotStats, bool) {
	for _, bt := range b.bots {
		if bt.id == id {
			return bt.stats, true
		}
	}
	return BotStats{}, false
}

func (b *Bots) Tick(dt float32) {
	for _, bt := range b.bots {
		e, ok := b.mod.Store.Get(bt.id)
		if !ok || e.Dead {
			continue
		}
		bt.elapsed += dt
		if bt.elapsed < b.DecideEvery {
			continue
		}
		bt.elapsed = 0
		b.decide(bt, e)
	}
}

func (b *Bots) decide(bt *bot, e *survival.Entity) {
	if e.Hunger != nil && e.Hunger.Level < b.HungryBelow {
		if SelectSlot(e, b.mod.Foods, nil) && b.mod.Eat(e) == Ate {
			bt.stats.Meals++
			return
		}
	}

	if e.Thirst != nil && e.Thirst.Level < b.ThirstyBelow {
		hasWater := func(s *items.Stack) bool { return !refillable(s) || s.Durability > 0 }
		if SelectSlot(e, b.mod.Drinks, hasWater) && b.mod.Drink(e) == Drank {
			bt.stats.Drinks++
			return
		}
		if SelectSlot(e, b.mod.Drinks, refillable) {
			b.fetchWater(bt, e)
			return
		}
	}

	if full, ok := e.HeldItem(); ok && refillable(full) && !full.IsFull() && bt.water != nil {
		b.fetchWater(bt, e)
		return
	}
	bt.water = nil
	b.wander(bt, e)
}

// fetchWater walks toward the nearest water column and, once standing on
// it, looks down and refills.
func (b *Bots) fetchWater(bt *bot, e *survival.Entity) {
	if bt.water == nil {
		if bt.searchCooldown > 0 {
			bt.searchCooldown--
			b.wander(bt, e)
			return
		}
		bt.water = b.findWater(e.Transform.Position)
		if bt.water == nil {
			bt.searchCooldown = 8
			b.wander(bt, e)
			return
		}
	}

	pos := e.Transform.Position
	to := world.Vec3{X: bt.water.X - pos.X, Z: bt.water.Z - pos.Z}
	if d := to.Length(); d > 0.5 {
		b.step(bt, e, to.Normalize().Scale(min(d, b.Stride)))
		if to.Length() > b.Stride {
			return
		}
	}

	e.HeadRotation.Pitch = -math.Pi / 2
	defer func() { e.HeadRotation.Pitch = 0 }()
	if b.mod.Refill(e) == Refilled {
		bt.stats.Refills++
		bt.water = nil
	}
}

// findWater scans outward in rings for a column whose surface is an
// allowed fluid.
func (b *Bots) findWater(from world.Vec3) *world.Vec3 {
	s, ok := b.mod.World.(world.Surfacer)
	if !ok {
		return nil
	}
	allowed := b.mod.Config.Mod.AllowedFluids
	fluids := b.mod.World.Fluids()
	cx, cz := int(math.Floor(from.X)), int(math.Floor(from.Z))
	for r := 1; r <= b.SearchRadius; r++ {
		for dx := -r; dx <= r; dx++ {
			for _, dz := range []int{-r, r} {
				if p, ok := waterColumn(b.mod.World, s, fluids, allowed, cx+dx, cz+dz); ok {
					return p
				}
				if p, ok := waterColumn(b.mod.World, s, fluids, allowed, cx+dz, cz+dx); ok {
					return p
				}
			}
		}
	}
	return nil
}

func waterColumn(w world.World, s world.Surfacer, fluids *world.FluidRegistry, allowed []string, x, z int) (*world.Vec3, bool) {
	y := s.SurfaceY(x, z) - 1
	if !slices.Contains(allowed, fluids.Name(w.FluidAt(x, y, z))) {
		return nil, false
	}
	return &world.Vec3{X: float64(x) + 0.5, Y: float64(y + 1), Z: float64(z) + 0.5}, true
}

func (b *Bots) wander(bt *bot, e *survival.Entity) {
	yaw := e.HeadRotation.Yaw + (b.rng.Float64()-0.5)*math.Pi/2
	e.HeadRotation.Yaw = yaw
	dir := world.Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
	b.step(bt, e, dir.Scale(b.Stride))
}

func (b *Bots) step(bt *bot, e *survival.Entity, by world.Vec3) {
	next := e.Transform.Position.Add(by)
	if by.X != 0 || by.Z != 0 {
		e.HeadRotation.Yaw = math.Atan2(by.X, by.Z)
	}
	next.Y = b.groundAt(next, e.Transform.Position.Y)
	if b.mod.World != nil {
		if _, err := b.mod.World.BiomeNameAt(next); err != nil {
			// Out of bounds: turn around.
			e.HeadRotation.Yaw += math.Pi
			return
		}
	}
	bt.stats.Distance += by.Length()
	e.Transform.Position = next
}

func (b *Bots) groundAt(pos world.Vec3, fallback float64) float64 {
	if s, ok := b.mod.World.(world.Surfacer); ok {
		return float64(s.SurfaceY(int(math.Floor(pos.X)), int(math.Floor(pos.Z))))
	}
	return fallback
}
