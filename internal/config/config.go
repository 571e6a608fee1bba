package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	ModFile    = "EasyHunger.json"
	BiomesFile = "BiomeModifiers.json"
	FoodsFile  = "Foods.json"
	DrinksFile = "Drinks.json"
)

// Config is everything the mod reads from disk at load time. It is not
// mutated after Load returns.
type Config struct {
	Mod    ModConfig
	Biomes BiomeModifiersConfig
	Foods  map[string]float32
	Drinks map[string]float32
}

func Default() Config {
	return Config{
		Mod:    DefaultModConfig(),
		Biomes: DefaultBiomeModifiers(),
		Foods:  DefaultFoods(),
		Drinks: DefaultDrinks(),
	}
}

// Env is the process environment the binaries read.
type Env struct {
	ConfigDir     string `env:"EASYHUNGER_CONFIG_DIR" envDefault:"config"`
	DBPath        string `env:"EASYHUNGER_DB" envDefault:"data/easyhunger.db"`
	BiomesEnabled *bool  `env:"EASYHUNGER_BIOME_MODIFIERS"`
	LogLevel      string `env:"EASYHUNGER_LOG_LEVEL" envDefault:"info"`
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply overlays environment overrides onto a loaded config.
func (e Env) Apply(cfg *Config) {
	if cfg == nil {
		return
	}
	if e.BiomesEnabled != nil {
		cfg.Biomes.Enabled = *e.BiomesEnabled
	}
}

// Load reads the config directory. Missing files fall back to defaults;
// fields absent from a present file keep their default values.
func Load(dir string) (Config, error) {
	cfg := Default()

	if err := readJSON(filepath.Join(dir, ModFile), &cfg.Mod); err != nil {
		return Config{}, err
	}
	if err := readJSON(filepath.Join(dir, BiomesFile), &cfg.Biomes); err != nil {
		return Config{}, err
	}

	foods, err := readTable(filepath.Join(dir, FoodsFile))
	if err != nil {
		return Config{}, err
	}
	if foods != nil {
		cfg.Foods = foods
	}
	drinks, err := readTable(filepath.Join(dir, DrinksFile))
	if err != nil {
		return Config{}, err
	}
	if drinks != nil {
		cfg.Drinks = drinks
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config in %s: %w", dir, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return errors.Join(c.Mod.Validate(), c.Biomes.Validate())
}

// Save writes every config file to dir, replacing each atomically.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	files := []struct {
		name string
		v    any
	}{
		{ModFile, cfg.Mod},
		{BiomesFile, cfg.Biomes},
		{FoodsFile, cfg.Foods},
		{DrinksFile, cfg.Drinks},
	}
	for _, f := range files {
		if err := writeJSON(filepath.Join(dir, f.name), f.v); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}

func readJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readTable(path string) (map[string]float32, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	table := map[string]float32{}
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return table, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}
