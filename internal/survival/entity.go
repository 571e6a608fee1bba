package survival

import (
	"math"

	"github.com/google/uuid"

	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/items"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

const HotbarSize = 9

type Transform struct {
	Position world.Vec3
}

// HeadRotation is the look direction in radians. Yaw 0 faces +Z and
// negative pitch looks down.
type HeadRotation struct {
	Yaw   float64
	Pitch float64
}

func (h HeadRotation) Direction() world.Vec3 {
	cp := math.Cos(h.Pitch)
	return world.Vec3{
		X: math.Sin(h.Yaw) * cp,
		Y: math.Sin(h.Pitch),
		Z: math.Cos(h.Yaw) * cp,
	}
}

type Model struct {
	EyeHeight float64
}

// Entity is one participant in the world. Nil component pointers mean the
// entity does not carry that component.
type Entity struct {
	ID           uuid.UUID
	Name         string
	Player       bool
	Dead         bool
	Invulnerable bool

	Transform    *Transform
	HeadRotation *HeadRotation
	Model        *Model
	Hunger       *Hunger
	Thirst       *Thirst
	Effects      *EffectController

	Hotbar     *items.SlotContainer
	ActiveSlot int
}

// NewPlayer builds a player entity with full meters and an empty hotbar.
func NewPlayer(name string, pos world.Vec3, cfg config.ModConfig) *Entity {
	return &Entity{
		ID:           uuid.New(),
		Name:         name,
		Player:       true,
		Transform:    &Transform{Position: pos},
		HeadRotation: &HeadRotation{},
		Model:        &Model{EyeHeight: 1.6},
		Hunger:       NewHunger(cfg.MaxHunger),
		Thirst:       NewThirst(cfg.MaxThirst),
		Effects:      NewEffectController(),
		Hotbar:       items.NewSlotContainer(HotbarSize),
	}
}

// HeldItem returns the stack in the active hotbar slot.
func (e *Entity) HeldItem() (*items.Stack, bool) {
	if e == nil || e.Hotbar == nil {
		return nil, false
	}
	return e.Hotbar.Stack(e.ActiveSlot)
}

// survivalTarget reports whether the meter systems should process e.
func (e *Entity) survivalTarget() bool {
	return e != nil && e.Player && !e.Dead && !e.Invulnerable
}

// BiomeNameAtEntity returns the biome under an entity, or "" when the entity
// has no position or the world cannot answer. Detection is best effort.
func BiomeNameAtEntity(w world.World, e *Entity) string {
	if w == nil || e == nil || e.Transform == nil {
		return ""
	}
	name, err := w.BiomeNameAt(e.Transform.Position)
	if err != nil {
		return ""
	}
	return name
}

// ZoneNameAtEntity is the zone counterpart of BiomeNameAtEntity.
func ZoneNameAtEntity(w world.World, e *Entity) string {
	if w == nil || e == nil || e.Transform == nil {
		return ""
	}
	name, err := w.ZoneNameAt(e.Transform.Position)
	if err != nil {
		return ""
	}
	return name
}
