// Package interaction implements the player actions around eating and
// drinking: HUD previews while the action charges, the restore itself, and
// refilling water containers from a water source.
package interaction

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/appengine-ltd/easy-hunger/internal/items"
	"github.com/appengine-ltd/easy-hunger/internal/survival"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

var (
	ErrNoEntity = errors.New("interaction entity is not valid")
	ErrNoPlayer = errors.New("interaction entity is not a player")
)

type State int

const (
	NotFinished State = iota
	Finished
	Failed
)

func (s State) String() string {
	switch s {
	case NotFinished:
		return "not_finished"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// WaitForDataFrom says which side decides an interaction's outcome.
type WaitForDataFrom int

const (
	WaitForNone WaitForDataFrom = iota
	WaitForClient
	WaitForServer
)

// Context is everything a handler can see about one interaction.
type Context struct {
	Entity           uuid.UUID
	Store            *survival.Store
	World            world.World
	HeldItem         *items.Stack
	OriginalItemType *items.Item
	HeldContainer    items.Container
	HeldSlot         int
	TargetEntity     *uuid.UUID
	State            State
}

// ForHeldItem builds a context for an entity acting with its active hotbar
// slot. The original item type is captured before the action can consume
// the stack.
func ForHeldItem(store *survival.Store, w world.World, e *survival.Entity) *Context {
	ctx := &Context{Entity: e.ID, Store: store, World: w, HeldSlot: e.ActiveSlot}
	if e.Hotbar != nil {
		ctx.HeldContainer = e.Hotbar
	}
	if held, ok := e.HeldItem(); ok {
		s := *held
		ctx.HeldItem = &s
		ctx.OriginalItemType = &items.Item{ID: s.ItemID}
	}
	return ctx
}

// entity resolves the acting entity, or nil when the ref is stale.
func (c *Context) entity() *survival.Entity {
	if c.Store == nil {
		return nil
	}
	e, ok := c.Store.Get(c.Entity)
	if !ok {
		return nil
	}
	return e
}

// player resolves the acting entity when it is a valid player.
func (c *Context) player() (*survival.Entity, error) {
	e := c.entity()
	if e == nil {
		return nil, ErrNoEntity
	}
	if !e.Player {
		return nil, ErrNoPlayer
	}
	return e, nil
}

func (c *Context) SetHeldItem(s items.Stack) {
	c.HeldItem = &s
}

// Handler is one interaction type.
type Handler interface {
	Name() string
	FirstRun(ctx *Context) error
}

// Run executes h with the catch-all every interaction gets: an error or a
// panic is logged and marks the interaction failed. A handler that neither
// fails nor sets a state finishes.
func Run(log *slog.Logger, h Handler, ctx *Context) (state State) {
	if log == nil {
		log = slog.Default()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error("interaction panicked",
				"interaction", h.Name(),
				"entity", ctx.Entity,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			ctx.State = Failed
			state = Failed
		}
	}()

	if err := h.FirstRun(ctx); err != nil {
		log.Error("interaction error", "interaction", h.Name(), "entity", ctx.Entity, "error", err)
		ctx.State = Failed
		return Failed
	}
	if ctx.State == NotFinished {
		ctx.State = Finished
	}
	return ctx.State
}
