// Package mod wires configuration, registries, the world, the HUD, the
// survival systems and the interaction handlers into one runnable unit.
package mod

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/hud"
	"github.com/appengine-ltd/easy-hunger/internal/interaction"
	"github.com/appengine-ltd/easy-hunger/internal/items"
	"github.com/appengine-ltd/easy-hunger/internal/survival"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

// Handler names as registered with the host.
const (
	StartFeeding    = "StartFeeding"
	FailedFeeding   = "FailedFeeding"
	Feed            = "Feed"
	StartDrinking   = "StartDrinking"
	FailedDrinking  = "FailedDrinking"
	DrinkWater      = "DrinkWater"
	RefillWaterskin = "RefillWaterskin"
)

type Options struct {
	World   world.World
	Effects *survival.EffectRegistry
	// HUD receives every update in addition to the mod's own board.
	HUD hud.Notifier
	Log *slog.Logger
}

// Mod is one loaded instance of the survival mod.
type Mod struct {
	Config  config.Config
	Foods   *items.Table
	Drinks  *items.Table
	Effects *survival.EffectRegistry
	World   world.World
	Store   *survival.Store
	Board   *hud.Board

	hud      hud.Notifier
	drain    *survival.DrainSystem
	wellFed  *survival.WellFedSystem
	handlers map[string]interaction.Handler
	log      *slog.Logger
}

func New(cfg config.Config, opts Options) *Mod {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	effects := opts.Effects
	if effects == nil {
		effects = survival.DefaultEffects()
	}

	m := &Mod{
		Config:  cfg,
		Foods:   items.NewTable(cfg.Foods),
		Drinks:  items.NewTable(cfg.Drinks),
		Effects: effects,
		World:   opts.World,
		Store:   survival.NewStore(),
		Board:   hud.NewBoard(),
		log:     log,
	}
	m.hud = m.Board
	if opts.HUD != nil {
		m.hud = hud.Multi{m.Board, opts.HUD}
	}

	m.drain = survival.NewDrainSystem(cfg.Mod, cfg.Biomes, m.World, m.hud, log.With("system", "drain"))
	m.wellFed = survival.NewWellFedSystem(cfg.Mod, effects, log.With("system", "wellfed"))

	m.handlers = map[string]interaction.Handler{
		StartFeeding: &interaction.StartFeeding{
			Foods:               m.Foods,
			HUD:                 m.hud,
			HungerRestoreAmount: cfg.Mod.StartFeedingFallback,
		},
		FailedFeeding: &interaction.FailedFeeding{HUD: m.hud},
		Feed:          interaction.NewFeed(cfg.Mod, m.Foods, m.hud),
		StartDrinking: &interaction.StartDrinking{
			Drinks:              m.Drinks,
			HUD:                 m.hud,
			ThirstRestoreAmount: cfg.Mod.StartDrinkingFallback,
		},
		FailedDrinking:  &interaction.FailedDrinking{HUD: m.hud},
		DrinkWater:      interaction.NewDrinkWater(cfg.Mod, m.Drinks, m.hud),
		RefillWaterskin: interaction.NewRefillWaterskin(cfg.Mod),
	}

	log.Info("easy hunger loaded",
		"foods", m.Foods.Len(),
		"drinks", m.Drinks.Len(),
		"biome_modifiers", cfg.Biomes.Enabled,
		"hunger_modifiers", len(cfg.Biomes.HungerModifiers),
		"thirst_modifiers", len(cfg.Biomes.ThirstModifiers),
	)
	return m
}

func (m *Mod) Handler(name string) (interaction.Handler, bool) {
	h, ok := m.handlers[name]
	return h, ok
}

func (m *Mod) HandlerNames() []string {
	names := make([]string, 0, len(m.handlers))
	for n := range m.handlers {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Run executes a registered handler against ctx.
func (m *Mod) Run(name string, ctx *interaction.Context) (interaction.State, error) {
	h, ok := m.handlers[name]
	if !ok {
		return interaction.Failed, fmt.Errorf("unknown interaction %q", name)
	}
	return interaction.Run(m.log, h, ctx), nil
}

// Context builds an interaction context for e acting with its held item.
func (m *Mod) Context(e *survival.Entity) *interaction.Context {
	return interaction.ForHeldItem(m.Store, m.World, e)
}

// Tick advances the survival systems by dt seconds of game time.
func (m *Mod) Tick(dt float32) {
	m.drain.Tick(dt, m.Store)
	m.wellFed.Tick(dt, m.Store)

	d := time.Duration(float64(dt) * float64(time.Second))
	m.Store.Each(func(e *survival.Entity) {
		if e.Effects != nil {
			e.Effects.Expire(d)
		}
	})
}

// Join adds a player at pos and publishes its starting levels.
func (m *Mod) Join(name string, pos world.Vec3) (*survival.Entity, error) {
	e := survival.NewPlayer(name, pos, m.Config.Mod)
	if err := m.Add(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Add registers an existing entity, such as one restored from storage.
func (m *Mod) Add(e *survival.Entity) error {
	if !m.Store.Valid(e.ID) {
		if err := m.Store.Add(e); err != nil {
			return fmt.Errorf("join %s: %w", e.Name, err)
		}
	}
	m.Publish(e)
	m.log.Debug("player joined", "player", e.Name, "id", e.ID)
	return nil
}

// Publish pushes an entity's name and current levels to the HUD.
func (m *Mod) Publish(e *survival.Entity) {
	m.Board.SetName(e.ID, e.Name)
	if e.Hunger != nil {
		m.hud.UpdateHungerLevel(e.ID, e.Hunger.Level)
	}
	if e.Thirst != nil {
		m.hud.UpdateThirstLevel(e.ID, e.Thirst.Level)
	}
}

func (m *Mod) Leave(id uuid.UUID) {
	m.Store.Remove(id)
	m.Board.Forget(id)
}

// Biome returns the biome name under e, or "" when unknown.
func (m *Mod) Biome(e *survival.Entity) string {
	return survival.BiomeNameAtEntity(m.World, e)
}

func (m *Mod) Zone(e *survival.Entity) string {
	return survival.ZoneNameAtEntity(m.World, e)
}
