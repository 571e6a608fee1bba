package survival

import (
	"log/slog"

	"github.com/appengine-ltd/easy-hunger/internal/config"
)

// WellFedSystem grants Nourished while hunger is at or above the threshold
// and Hydrated while thirst is. Effects are removed as soon as a level drops
// below; there is no hysteresis band.
type WellFedSystem struct {
	threshold float32
	tickRate  float32
	effects   *EffectRegistry
	log       *slog.Logger

	loaded    bool
	nourished *EntityEffect
	hydrated  *EntityEffect
}

func NewWellFedSystem(cfg config.ModConfig, effects *EffectRegistry, log *slog.Logger) *WellFedSystem {
	if log == nil {
		log = slog.Default()
	}
	return &WellFedSystem{
		threshold: cfg.WellFedThreshold,
		tickRate:  cfg.WellFedTickRate,
		effects:   effects,
		log:       log,
	}
}

func (s *WellFedSystem) Tick(dt float32, store *Store) {
	store.Each(func(e *Entity) {
		s.TickEntity(dt, e)
	})
}

func (s *WellFedSystem) TickEntity(dt float32, e *Entity) {
	s.loadEffects()

	if !e.survivalTarget() || e.Hunger == nil || e.Thirst == nil {
		return
	}

	e.Hunger.AddWellFedElapsed(dt)
	if e.Hunger.WellFedElapsed() < s.tickRate {
		return
	}
	e.Hunger.ResetWellFedElapsed()

	if e.Effects == nil {
		return
	}
	s.apply(e.Effects, s.nourished, e.Hunger.Level >= s.threshold)
	s.apply(e.Effects, s.hydrated, e.Thirst.Level >= s.threshold)
}

func (s *WellFedSystem) apply(c *EffectController, effect *EntityEffect, want bool) {
	if effect == nil {
		return
	}
	has := c.Has(effect.ID)
	switch {
	case want && !has:
		c.Add(effect)
	case !want && has:
		c.RemoveID(effect.ID)
	}
}

func (s *WellFedSystem) loadEffects() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.nourished = s.lookup(NourishedEffectID)
	s.hydrated = s.lookup(HydratedEffectID)
}

func (s *WellFedSystem) lookup(id string) *EntityEffect {
	e, ok := s.effects.Get(id)
	if !ok {
		s.log.Warn("well-fed effect not found", "effect", id)
		return nil
	}
	s.log.Info("well-fed effect loaded", "effect", id)
	return e
}
