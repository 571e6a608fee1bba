package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDirectoryReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mod.MaxHunger != 100 || cfg.Mod.WellFedThreshold != 90 {
		t.Fatalf("expected default mod config, got %+v", cfg.Mod)
	}
	if !cfg.Biomes.Enabled {
		t.Fatalf("expected biome modifiers enabled by default")
	}
	if cfg.Drinks["Waterskin"] <= 0 {
		t.Fatalf("expected default drink table")
	}
}

func TestSaveThenLoadKeepsOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Mod.WellFedThreshold = 45
	cfg.Mod.MaxHunger = 50
	cfg.Mod.MaxThirst = 50
	cfg.Biomes.ThirstModifiers = ModifierTable{{"Oasis", 0.25}, {"Desert", 3}}
	cfg.Foods = map[string]float32{"Food_Bread": 12}

	if err := Save(dir, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Mod.WellFedThreshold != 45 || loaded.Mod.MaxHunger != 50 {
		t.Fatalf("mod overrides lost: %+v", loaded.Mod)
	}
	if got := loaded.Biomes.ThirstModifiers.Keywords(); len(got) != 2 || got[0] != "Oasis" {
		t.Fatalf("thirst table order lost: %v", got)
	}
	if len(loaded.Foods) != 1 || loaded.Foods["Food_Bread"] != 12 {
		t.Fatalf("foods table not replaced: %v", loaded.Foods)
	}
	if loaded.Drinks["Waterskin"] != DefaultDrinks()["Waterskin"] {
		t.Fatalf("drinks should keep defaults")
	}
}

func TestLoadPartialModFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ModFile), []byte(`{"HungerLossPerTick": 2.5}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mod.HungerLossPerTick != 2.5 {
		t.Fatalf("expected override, got %v", cfg.Mod.HungerLossPerTick)
	}
	if cfg.Mod.ThirstTickRate != DefaultModConfig().ThirstTickRate {
		t.Fatalf("expected default thirst tick rate, got %v", cfg.Mod.ThirstTickRate)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, BiomesFile), []byte(`{"HungerModifiers":{"Desert":-1}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for negative multiplier")
	}

	dir = t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ModFile), []byte(`{"WellFedThreshold": 150}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for threshold above max")
	}
}

func TestEnvOverridesBiomeToggle(t *testing.T) {
	t.Setenv("EASYHUNGER_BIOME_MODIFIERS", "false")
	t.Setenv("EASYHUNGER_CONFIG_DIR", "/tmp/eh")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if e.ConfigDir != "/tmp/eh" {
		t.Fatalf("expected config dir override, got %q", e.ConfigDir)
	}
	cfg := Default()
	e.Apply(&cfg)
	if cfg.Biomes.Enabled {
		t.Fatalf("expected env to disable biome modifiers")
	}
}
