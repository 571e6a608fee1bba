package survival

import (
	"log/slog"

	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/hud"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

// DrainSystem lowers hunger and thirst on a fixed interval, scaled by the
// biome each entity stands in.
type DrainSystem struct {
	cfg    config.ModConfig
	biomes config.BiomeModifiersConfig
	world  world.World
	hud    hud.Notifier
	log    *slog.Logger
}

func NewDrainSystem(cfg config.ModConfig, biomes config.BiomeModifiersConfig, w world.World, n hud.Notifier, log *slog.Logger) *DrainSystem {
	if n == nil {
		n = hud.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &DrainSystem{cfg: cfg, biomes: biomes, world: w, hud: n, log: log}
}

func (s *DrainSystem) Tick(dt float32, store *Store) {
	store.Each(func(e *Entity) {
		s.TickEntity(dt, e)
	})
}

func (s *DrainSystem) TickEntity(dt float32, e *Entity) {
	if !e.survivalTarget() {
		return
	}

	hungerDue := e.Hunger != nil && gate(&e.Hunger.drainElapsed, dt, s.cfg.HungerTickRate)
	thirstDue := e.Thirst != nil && gate(&e.Thirst.drainElapsed, dt, s.cfg.ThirstTickRate)
	if !hungerDue && !thirstDue {
		return
	}

	biome := BiomeNameAtEntity(s.world, e)
	attrs := []any{"player", e.Name, "biome", biome}
	if hungerDue {
		loss := s.cfg.HungerLossPerTick * s.biomes.HungerMultiplier(biome)
		e.Hunger.Drain(loss)
		s.hud.UpdateHungerLevel(e.ID, e.Hunger.Level)
		attrs = append(attrs, "hunger", e.Hunger.Level)
	}
	if thirstDue {
		loss := s.cfg.ThirstLossPerTick * s.biomes.ThirstMultiplier(biome)
		e.Thirst.Drain(loss)
		s.hud.UpdateThirstLevel(e.ID, e.Thirst.Level)
		attrs = append(attrs, "thirst", e.Thirst.Level)
	}
	s.log.Debug("meters drained", attrs...)
}
