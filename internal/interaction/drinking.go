package interaction

import (
	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/hud"
	"github.com/appengine-ltd/easy-hunger/internal/items"
)

// StartDrinking runs when a player starts drinking and previews the thirst
// the drink will restore.
type StartDrinking struct {
	Drinks              *items.Table
	HUD                 hud.Notifier
	ThirstRestoreAmount float32
}

func (h *StartDrinking) Name() string { return "StartDrinking" }

func (h *StartDrinking) FirstRun(ctx *Context) error {
	p, err := ctx.player()
	if err != nil {
		return nil
	}

	restore := h.ThirstRestoreAmount
	switch {
	case ctx.HeldItem != nil:
		if v := h.Drinks.Value(items.NormalizeID(ctx.HeldItem.ItemID)); v > 0 {
			restore = v
		}
	case ctx.OriginalItemType != nil:
		if v := h.Drinks.Value(ctx.OriginalItemType.ID); v > 0 {
			restore = v
		}
	}
	h.HUD.UpdateThirstPreview(p.ID, restore)
	return nil
}

// FailedDrinking runs when drinking is cancelled and clears the preview.
type FailedDrinking struct {
	HUD hud.Notifier
}

func (h *FailedDrinking) Name() string { return "FailedDrinking" }

func (h *FailedDrinking) FirstRun(ctx *Context) error {
	p, err := ctx.player()
	if err != nil {
		return nil
	}
	h.HUD.UpdateThirstPreview(p.ID, 0)
	return nil
}

// DrinkWater completes drinking: restores thirst by the drink's value and
// refreshes the HUD. A full thirst meter finishes without drinking.
type DrinkWater struct {
	Drinks         *items.Table
	HUD            hud.Notifier
	DefaultRestore float32
}

func NewDrinkWater(cfg config.ModConfig, drinks *items.Table, n hud.Notifier) *DrinkWater {
	return &DrinkWater{Drinks: drinks, HUD: n, DefaultRestore: cfg.DefaultDrinkRestore}
}

func (h *DrinkWater) Name() string { return "DrinkWater" }

func (h *DrinkWater) FirstRun(ctx *Context) error {
	p, err := ctx.player()
	if err != nil {
		ctx.State = Failed
		return nil
	}

	thirst := p.Thirst
	if thirst != nil && !thirst.IsFull() {
		restore := h.DefaultRestore
		if id := consumedItemID(ctx); id != "" {
			if v := h.Drinks.Value(items.NormalizeID(id)); v > 0 {
				restore = v
			}
		}
		thirst.Drink(restore)
		h.HUD.UpdateThirstLevel(p.ID, thirst.Level)
		h.HUD.UpdateThirstPreview(p.ID, 0)
	}

	ctx.State = Finished
	return nil
}
