package interaction

import (
	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/hud"
	"github.com/appengine-ltd/easy-hunger/internal/items"
)

// StartFeeding runs when a player starts eating and previews the hunger the
// item will restore.
type StartFeeding struct {
	Foods               *items.Table
	HUD                 hud.Notifier
	HungerRestoreAmount float32
}

func (h *StartFeeding) Name() string { return "StartFeeding" }

func (h *StartFeeding) FirstRun(ctx *Context) error {
	p, err := ctx.player()
	if err != nil || ctx.OriginalItemType == nil {
		return nil
	}

	restore := h.Foods.Value(ctx.OriginalItemType.ID)
	if restore <= 0 {
		restore = h.HungerRestoreAmount
	}
	h.HUD.UpdateHungerPreview(p.ID, restore)
	return nil
}

// FailedFeeding runs when eating is cancelled and clears the preview.
type FailedFeeding struct {
	HUD hud.Notifier
}

func (h *FailedFeeding) Name() string { return "FailedFeeding" }

func (h *FailedFeeding) FirstRun(ctx *Context) error {
	p, err := ctx.player()
	if err != nil {
		return nil
	}
	h.HUD.UpdateHungerPreview(p.ID, 0)
	return nil
}

// Feed completes eating: restores hunger by the item's food value and
// refreshes the HUD.
type Feed struct {
	Foods          *items.Table
	HUD            hud.Notifier
	DefaultRestore float32
}

func NewFeed(cfg config.ModConfig, foods *items.Table, n hud.Notifier) *Feed {
	return &Feed{Foods: foods, HUD: n, DefaultRestore: cfg.DefaultFoodRestore}
}

func (h *Feed) Name() string { return "Feed" }

func (h *Feed) FirstRun(ctx *Context) error {
	p, err := ctx.player()
	if err != nil {
		ctx.State = Failed
		return nil
	}

	hunger := p.Hunger
	if hunger != nil && !hunger.IsFull() {
		restore := h.DefaultRestore
		if id := consumedItemID(ctx); id != "" {
			if v := h.Foods.Value(items.NormalizeID(id)); v > 0 {
				restore = v
			}
		}
		hunger.Feed(restore)
		h.HUD.UpdateHungerLevel(p.ID, hunger.Level)
		h.HUD.UpdateHungerPreview(p.ID, 0)
	}

	ctx.State = Finished
	return nil
}

// consumedItemID prefers the original item type, which survives the last
// item of a stack being used up, and falls back to the held stack.
func consumedItemID(ctx *Context) string {
	if ctx.OriginalItemType != nil && ctx.OriginalItemType.ID != "" {
		return ctx.OriginalItemType.ID
	}
	if ctx.HeldItem != nil {
		return ctx.HeldItem.ItemID
	}
	return ""
}
