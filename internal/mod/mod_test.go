package mod

import (
	"io"
	"log/slog"
	"testing"

	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/items"
	"github.com/appengine-ltd/easy-hunger/internal/survival"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMod(w world.World) *Mod {
	return New(config.Default(), Options{World: w, Log: quietLogger()})
}

func TestNewRegistersAllHandlers(t *testing.T) {
	m := newTestMod(world.NewGrid("Plains"))
	want := []string{DrinkWater, FailedDrinking, FailedFeeding, Feed, RefillWaterskin, StartDrinking, StartFeeding}
	got := m.HandlerNames()
	if len(got) != len(want) {
		t.Fatalf("handlers=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("handlers=%v want=%v", got, want)
		}
	}
	if _, err := m.Run("Teleport", m.Context(&survival.Entity{})); err == nil {
		t.Fatalf("expected error for unknown interaction")
	}
}

func TestTickDrainsByBiomeAndGrantsWellFed(t *testing.T) {
	m := newTestMod(world.NewGrid("Dunes_Desert"))
	p, err := m.Join("Avery", world.Vec3{X: 0.5, Y: 10, Z: 0.5})
	if err != nil {
		t.Fatalf("join: %v", err)
	}

	m.Tick(1)
	if !p.Effects.Has(survival.NourishedEffectID) || !p.Effects.Has(survival.HydratedEffectID) {
		t.Fatalf("expected both buffs at full meters, got %v", p.Effects.Active())
	}

	m.Tick(4)
	if p.Thirst.Level != 98 {
		t.Fatalf("expected desert thirst drain of 2, got %v", p.Thirst.Level)
	}
	if p.Hunger.Level != 100 {
		t.Fatalf("hunger should wait for its own tick rate, got %v", p.Hunger.Level)
	}
	r, ok := m.Board.Get(p.ID)
	if !ok || r.Thirst != 98 || r.Name != "Avery" {
		t.Fatalf("unexpected readout %+v", r)
	}
}

func TestEatUsesUpOneItem(t *testing.T) {
	m := newTestMod(world.NewGrid("Plains"))
	p, _ := m.Join("Avery", world.Vec3{})
	p.Hunger.Level = 50
	_ = p.Hotbar.Put(0, items.Stack{ItemID: "Food_Bread", Quantity: 2})

	if got := m.Eat(p); got != Ate {
		t.Fatalf("expected ate, got %v", got)
	}
	if p.Hunger.Level != 70 {
		t.Fatalf("expected hunger 70, got %v", p.Hunger.Level)
	}
	held, _ := p.HeldItem()
	if held.Quantity != 1 {
		t.Fatalf("expected one bread left, got %d", held.Quantity)
	}
	m.Eat(p)
	if _, ok := p.HeldItem(); ok {
		t.Fatalf("expected slot cleared after the last bread")
	}
	if got := m.Eat(p); got != Nothing {
		t.Fatalf("expected nothing with empty hands, got %v", got)
	}
}

func TestDrinkRefillsBeforeDrinking(t *testing.T) {
	grid := world.NewGrid("Plains")
	grid.SetFluid(0, 11, 3, "Water_Source")
	m := newTestMod(grid)
	p, _ := m.Join("Avery", world.Vec3{X: 0.5, Y: 10, Z: 0.5})
	p.Thirst.Level = 50
	_ = p.Hotbar.Put(0, items.Stack{ItemID: "*Waterskin:Filled_Water", Quantity: 1, Durability: 1, MaxDurability: 4})

	if got := m.Drink(p); got != Refilled {
		t.Fatalf("expected refill in front of water, got %v", got)
	}
	held, _ := p.HeldItem()
	if held.Durability != 4 || p.Thirst.Level != 50 {
		t.Fatalf("expected full skin and unchanged thirst, got %+v thirst=%v", held, p.Thirst.Level)
	}

	if got := m.Drink(p); got != Drank {
		t.Fatalf("expected drink from a full skin, got %v", got)
	}
	held, _ = p.HeldItem()
	if p.Thirst.Level != 75 || held.Durability != 3 {
		t.Fatalf("expected thirst 75 and one sip used, got thirst=%v %+v", p.Thirst.Level, held)
	}
}

func TestDrinkFromEmptySkinAwayFromWaterDoesNothing(t *testing.T) {
	m := newTestMod(world.NewGrid("Plains"))
	p, _ := m.Join("Avery", world.Vec3{X: 0.5, Y: 10, Z: 0.5})
	p.Thirst.Level = 20
	_ = p.Hotbar.Put(0, items.Stack{ItemID: "Waterskin", Quantity: 1, MaxDurability: 4})

	if got := m.Drink(p); got != Nothing {
		t.Fatalf("expected nothing, got %v", got)
	}
	if p.Thirst.Level != 20 {
		t.Fatalf("thirst should not change, got %v", p.Thirst.Level)
	}
}

func TestLeaveForgetsHUD(t *testing.T) {
	m := newTestMod(nil)
	p, _ := m.Join("Avery", world.Vec3{})
	m.Leave(p.ID)
	if m.Store.Valid(p.ID) {
		t.Fatalf("expected player removed from store")
	}
	if _, ok := m.Board.Get(p.ID); ok {
		t.Fatalf("expected HUD readout removed")
	}
	if m.Biome(p) != "" {
		t.Fatalf("expected unknown biome without a world")
	}
}
