package mod

import (
	"github.com/appengine-ltd/easy-hunger/internal/interaction"
	"github.com/appengine-ltd/easy-hunger/internal/items"
	"github.com/appengine-ltd/easy-hunger/internal/survival"
)

// Outcome is what a player action ended up doing.
type Outcome int

const (
	Nothing Outcome = iota
	Ate
	Drank
	Refilled
)

func (o Outcome) String() string {
	switch o {
	case Ate:
		return "ate"
	case Drank:
		return "drank"
	case Refilled:
		return "refilled"
	default:
		return "nothing"
	}
}

// Eat runs the feeding chain for the held item and uses up one of it.
func (m *Mod) Eat(e *survival.Entity) Outcome {
	held, ok := e.HeldItem()
	if !ok || !m.Foods.Has(items.NormalizeID(held.ItemID)) {
		return Nothing
	}

	ctx := m.Context(e)
	if st, _ := m.Run(StartFeeding, ctx); st == interaction.Failed {
		m.Run(FailedFeeding, ctx)
		return Nothing
	}
	if st, _ := m.Run(Feed, ctx); st != interaction.Finished {
		m.Run(FailedFeeding, ctx)
		return Nothing
	}
	m.consume(e)
	return Ate
}

// Drink uses the held drink. A refillable container that is not full is
// refilled first when the player looks at water; otherwise it is drunk from.
func (m *Mod) Drink(e *survival.Entity) Outcome {
	held, ok := e.HeldItem()
	if !ok || !m.Drinks.Has(items.NormalizeID(held.ItemID)) {
		return Nothing
	}

	if m.Refill(e) == Refilled {
		return Refilled
	}
	if refillable(held) && held.Durability <= 0 {
		return Nothing
	}

	ctx := m.Context(e)
	if st, _ := m.Run(StartDrinking, ctx); st == interaction.Failed {
		m.Run(FailedDrinking, ctx)
		return Nothing
	}
	if st, _ := m.Run(DrinkWater, ctx); st != interaction.Finished {
		m.Run(FailedDrinking, ctx)
		return Nothing
	}
	m.consume(e)
	return Drank
}

// Refill tops up the held container from water the player is looking at.
func (m *Mod) Refill(e *survival.Entity) Outcome {
	held, ok := e.HeldItem()
	if !ok || !refillable(held) || held.IsFull() {
		return Nothing
	}
	if st, _ := m.Run(RefillWaterskin, m.Context(e)); st != interaction.Finished {
		return Nothing
	}
	return Refilled
}

// refillable reports whether a stack tracks its contents as durability.
func refillable(s *items.Stack) bool {
	return s.MaxDurability > 0
}

// consume takes one sip from a container or one item from a stack.
func (m *Mod) consume(e *survival.Entity) {
	held, ok := e.HeldItem()
	if !ok {
		return
	}
	next := *held
	if refillable(held) {
		next.Durability = max(next.Durability-1, 0)
		e.Hotbar.SetStackForSlot(e.ActiveSlot, next)
		return
	}
	next.Quantity--
	if next.Quantity <= 0 {
		e.Hotbar.Clear(e.ActiveSlot)
		return
	}
	e.Hotbar.SetStackForSlot(e.ActiveSlot, next)
}

// SelectSlot makes the first hotbar slot whose item is in table active.
func SelectSlot(e *survival.Entity, table *items.Table, want func(*items.Stack) bool) bool {
	if e.Hotbar == nil {
		return false
	}
	for i := 0; i < e.Hotbar.Size(); i++ {
		s, ok := e.Hotbar.Stack(i)
		if !ok || !table.Has(items.NormalizeID(s.ItemID)) {
			continue
		}
		if want != nil && !want(s) {
			continue
		}
		e.ActiveSlot = i
		return true
	}
	return false
}
