package persistence

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/items"
	"github.com/appengine-ltd/easy-hunger/internal/survival"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSaveAndLoadPlayersRestoresLevelsAndEffects(t *testing.T) {
	db := openTestDB(t)
	cfg := config.DefaultModConfig()
	effects := survival.DefaultEffects()

	store := survival.NewStore()
	p := survival.NewPlayer("Avery", world.Vec3{X: 3, Y: 64, Z: -2}, cfg)
	p.Hunger.Level = 42
	p.Thirst.Level = 91
	p.HeadRotation.Yaw = 1.25
	p.ActiveSlot = 2
	if err := p.Hotbar.Put(2, items.Stack{ItemID: "Waterskin", Quantity: 1, Durability: 4, MaxDurability: 10}); err != nil {
		t.Fatalf("put: %v", err)
	}
	hydrated, _ := effects.Get(survival.HydratedEffectID)
	p.Effects.Add(hydrated)
	p.Effects.Restore("Retired_Effect", 7, time.Minute)
	if err := store.Add(p); err != nil {
		t.Fatalf("add: %v", err)
	}

	npc := survival.NewPlayer("Boar", world.Vec3{}, cfg)
	npc.Player = false
	if err := store.Add(npc); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := db.SaveState(store, 1234); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := survival.NewStore()
	n, err := db.LoadPlayers(loaded, effects, cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n != 1 || loaded.Len() != 1 {
		t.Fatalf("expected only the player saved, got n=%d len=%d", n, loaded.Len())
	}

	got, ok := loaded.Get(p.ID)
	if !ok {
		t.Fatalf("expected player %s restored", p.ID)
	}
	if got.Hunger.Level != 42 || got.Thirst.Level != 91 {
		t.Fatalf("levels not restored: hunger=%v thirst=%v", got.Hunger.Level, got.Thirst.Level)
	}
	if got.Transform.Position != (world.Vec3{X: 3, Y: 64, Z: -2}) || got.HeadRotation.Yaw != 1.25 {
		t.Fatalf("position not restored: %+v %+v", got.Transform, got.HeadRotation)
	}
	held, ok := got.HeldItem()
	if !ok || held.ItemID != "Waterskin" || held.Durability != 4 {
		t.Fatalf("held item not restored: %+v", held)
	}
	if !got.Effects.Has(survival.HydratedEffectID) {
		t.Fatalf("expected hydrated effect restored")
	}
	if got.Effects.Has("Retired_Effect") {
		t.Fatalf("unknown effect should be dropped")
	}

	tick, err := db.LastTick()
	if err != nil || tick != 1234 {
		t.Fatalf("expected last tick 1234, got %d err=%v", tick, err)
	}
}

func TestLoadPlayersUpdatesExistingEntity(t *testing.T) {
	db := openTestDB(t)
	cfg := config.DefaultModConfig()

	store := survival.NewStore()
	p := survival.NewPlayer("Avery", world.Vec3{}, cfg)
	p.Hunger.Level = 10
	if err := store.Add(p); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := db.SavePlayers(store); err != nil {
		t.Fatalf("save: %v", err)
	}

	p.Hunger.Level = 99
	if _, err := db.LoadPlayers(store, survival.DefaultEffects(), cfg); err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected the existing entity reused, got %d entities", store.Len())
	}
	if p.Hunger.Level != 10 {
		t.Fatalf("expected saved hunger 10, got %v", p.Hunger.Level)
	}
}

func TestMetaRoundTripAndMissingKey(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.GetMeta("seed"); !errors.Is(err, ErrNoMeta) {
		t.Fatalf("expected ErrNoMeta, got %v", err)
	}
	if tick, err := db.LastTick(); err != nil || tick != 0 {
		t.Fatalf("expected fresh tick 0, got %d err=%v", tick, err)
	}
	if err := db.SaveMeta("seed", "42"); err != nil {
		t.Fatalf("save meta: %v", err)
	}
	if err := db.SaveMeta("seed", "43"); err != nil {
		t.Fatalf("save meta: %v", err)
	}
	if v, err := db.GetMeta("seed"); err != nil || v != "43" {
		t.Fatalf("expected 43, got %q err=%v", v, err)
	}
}
