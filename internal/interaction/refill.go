package interaction

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

// RefillWaterskin tops a held water container up to full when the player
// looks at an allowed fluid within reach. It fails, so another interaction
// can take over, whenever there is no water to refill from.
type RefillWaterskin struct {
	AllowedFluids []string
	Distance      float64

	once     sync.Once
	fluidIDs []int
}

func NewRefillWaterskin(cfg config.ModConfig) *RefillWaterskin {
	return &RefillWaterskin{
		AllowedFluids: slices.Clone(cfg.AllowedFluids),
		Distance:      float64(cfg.RefillDistance),
	}
}

func (h *RefillWaterskin) Name() string { return "RefillWaterskin" }

func (h *RefillWaterskin) WaitForDataFrom() WaitForDataFrom { return WaitForServer }

func (h *RefillWaterskin) NeedsRemoteSync() bool { return true }

func (h *RefillWaterskin) String() string {
	return fmt.Sprintf("RefillWaterskin{AllowedFluids=%v}", h.AllowedFluids)
}

// allowedIDs resolves the configured fluid names once against the world's
// registry. Unknown names are dropped.
func (h *RefillWaterskin) allowedIDs(reg *world.FluidRegistry) []int {
	h.once.Do(func() {
		ids := make([]int, 0, len(h.AllowedFluids))
		for _, name := range h.AllowedFluids {
			if i, ok := reg.Index(name); ok {
				ids = append(ids, i)
			}
		}
		sort.Ints(ids)
		h.fluidIDs = ids
	})
	return h.fluidIDs
}

func (h *RefillWaterskin) allowed(reg *world.FluidRegistry, fluid int) bool {
	if fluid == 0 {
		return false
	}
	ids := h.allowedIDs(reg)
	i := sort.SearchInts(ids, fluid)
	return i < len(ids) && ids[i] == fluid
}

func (h *RefillWaterskin) FirstRun(ctx *Context) error {
	if ctx.World == nil || ctx.TargetEntity != nil {
		ctx.State = Failed
		return nil
	}
	p, err := ctx.player()
	if err != nil || p.Transform == nil || p.HeadRotation == nil || p.Model == nil {
		ctx.State = Failed
		return nil
	}
	if ctx.HeldItem == nil || ctx.HeldItem.IsFull() {
		ctx.State = Failed
		return nil
	}

	distance := h.Distance
	if distance <= 0 {
		distance = 5
	}
	from := p.Transform.Position
	from.Y += p.Model.EyeHeight
	to := from.Add(p.HeadRotation.Direction().Scale(distance))

	reg := ctx.World.Fluids()
	refilled := false
	ctx.State = Failed
	world.IterateFromTo(from, to, func(x, y, z int) bool {
		if ctx.World.BlockAt(x, y, z).Solid {
			return false
		}
		if !h.allowed(reg, ctx.World.FluidAt(x, y, z)) {
			return true
		}

		current := *ctx.HeldItem
		if current.IsFull() {
			return false
		}
		next := current.WithIncreasedDurability(current.MaxDurability)
		if ctx.HeldContainer == nil {
			return false
		}
		tx := ctx.HeldContainer.SetStackForSlot(ctx.HeldSlot, next)
		if !tx.Succeeded {
			return false
		}
		ctx.SetHeldItem(next)
		refilled = true
		return false
	})

	if refilled {
		ctx.State = Finished
	}
	return nil
}
