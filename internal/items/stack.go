package items

import "errors"

var ErrSlotOutOfRange = errors.New("slot out of range")

// Item is the static definition of an item type.
type Item struct {
	ID string
}

// Stack is a held or stored item stack. Durability doubles as the fill level
// of water containers.
type Stack struct {
	ItemID        string
	Quantity      int
	Durability    float64
	MaxDurability float64
}

func (s Stack) IsFull() bool {
	return s.Durability >= s.MaxDurability
}

// WithIncreasedDurability returns a copy with durability raised by amount,
// capped at the maximum.
func (s Stack) WithIncreasedDurability(amount float64) Stack {
	out := s
	out.Durability += amount
	if out.Durability > out.MaxDurability {
		out.Durability = out.MaxDurability
	}
	return out
}

type Transaction struct {
	Slot      int
	Before    *Stack
	After     Stack
	Succeeded bool
}

// Container holds item stacks by slot.
type Container interface {
	SetStackForSlot(slot int, stack Stack) Transaction
	Stack(slot int) (*Stack, bool)
}

// SlotContainer is a fixed-size container such as a hotbar.
type SlotContainer struct {
	slots []*Stack
}

func NewSlotContainer(size int) *SlotContainer {
	return &SlotContainer{slots: make([]*Stack, size)}
}

func (c *SlotContainer) Size() int {
	return len(c.slots)
}

func (c *SlotContainer) SetStackForSlot(slot int, stack Stack) Transaction {
	if slot < 0 || slot >= len(c.slots) {
		return Transaction{Slot: slot, After: stack}
	}
	before := c.slots[slot]
	s := stack
	c.slots[slot] = &s
	return Transaction{Slot: slot, Before: before, After: stack, Succeeded: true}
}

func (c *SlotContainer) Stack(slot int) (*Stack, bool) {
	if slot < 0 || slot >= len(c.slots) || c.slots[slot] == nil {
		return nil, false
	}
	return c.slots[slot], true
}

// Clear empties a slot.
func (c *SlotContainer) Clear(slot int) {
	if slot >= 0 && slot < len(c.slots) {
		c.slots[slot] = nil
	}
}

func (c *SlotContainer) Put(slot int, stack Stack) error {
	if !c.SetStackForSlot(slot, stack).Succeeded {
		return ErrSlotOutOfRange
	}
	return nil
}
