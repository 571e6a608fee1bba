package survival

import (
	"fmt"
	"time"
)

const (
	// NourishedEffectID is granted while hunger is at or above the well-fed
	// threshold and regenerates health.
	NourishedEffectID = "Nourished"
	// HydratedEffectID is granted while thirst is at or above the threshold
	// and regenerates stamina.
	HydratedEffectID = "Hydrated"
)

// EntityEffect is a status effect definition.
type EntityEffect struct {
	ID          string
	Index       int
	Description string
	Duration    time.Duration // 0 lasts until removed
}

// EffectRegistry is the set of effect definitions known to the server.
type EffectRegistry struct {
	byID map[string]*EntityEffect
	list []*EntityEffect
}

func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{byID: map[string]*EntityEffect{}}
}

// DefaultEffects registers the buffs the well-fed system hands out.
func DefaultEffects() *EffectRegistry {
	r := NewEffectRegistry()
	_, _ = r.Register(EntityEffect{ID: NourishedEffectID, Description: "Health regeneration from a full stomach"})
	_, _ = r.Register(EntityEffect{ID: HydratedEffectID, Description: "Stamina regeneration from good hydration"})
	return r
}

func (r *EffectRegistry) Register(e EntityEffect) (*EntityEffect, error) {
	if e.ID == "" {
		return nil, fmt.Errorf("register effect: empty id")
	}
	if _, ok := r.byID[e.ID]; ok {
		return nil, fmt.Errorf("register effect %q: already registered", e.ID)
	}
	e.Index = len(r.list)
	def := &e
	r.byID[e.ID] = def
	r.list = append(r.list, def)
	return def, nil
}

func (r *EffectRegistry) Get(id string) (*EntityEffect, bool) {
	if r == nil {
		return nil, false
	}
	e, ok := r.byID[id]
	return e, ok
}

func (r *EffectRegistry) ByIndex(index int) (*EntityEffect, bool) {
	if r == nil || index < 0 || index >= len(r.list) {
		return nil, false
	}
	return r.list[index], true
}

// ActiveEffect is an effect instance applied to an entity.
type ActiveEffect struct {
	effectID  string
	index     int
	remaining time.Duration
}

func (a ActiveEffect) ID() string {
	return a.effectID
}

func (a ActiveEffect) Index() int {
	return a.index
}

func (a ActiveEffect) Remaining() time.Duration {
	return a.remaining
}

// EffectController holds the active effects of one entity.
type EffectController struct {
	active []ActiveEffect
}

func NewEffectController() *EffectController {
	return &EffectController{}
}

func (c *EffectController) Active() []ActiveEffect {
	return append([]ActiveEffect(nil), c.active...)
}

func (c *EffectController) Add(e *EntityEffect) {
	if e == nil {
		return
	}
	c.active = append(c.active, ActiveEffect{effectID: e.ID, index: e.Index, remaining: e.Duration})
}

// Restore re-applies a persisted effect by id and definition index.
func (c *EffectController) Restore(id string, index int, remaining time.Duration) {
	c.active = append(c.active, ActiveEffect{effectID: id, index: index, remaining: remaining})
}

// Has scans the active effects for id.
func (c *EffectController) Has(id string) bool {
	for _, a := range c.active {
		if a.ID() == id {
			return true
		}
	}
	return false
}

// RemoveIndex drops every active instance of the effect definition index.
func (c *EffectController) RemoveIndex(index int) {
	kept := c.active[:0]
	for _, a := range c.active {
		if a.index != index {
			kept = append(kept, a)
		}
	}
	c.active = kept
}

// RemoveID drops every active instance whose id matches.
func (c *EffectController) RemoveID(id string) {
	for _, a := range c.Active() {
		if a.ID() == id {
			c.RemoveIndex(a.Index())
		}
	}
}

// Expire counts timed effects down by dt and drops the ones that ran out.
func (c *EffectController) Expire(dt time.Duration) {
	kept := c.active[:0]
	for _, a := range c.active {
		if a.remaining > 0 {
			a.remaining -= dt
			if a.remaining <= 0 {
				continue
			}
		}
		kept = append(kept, a)
	}
	c.active = kept
}
