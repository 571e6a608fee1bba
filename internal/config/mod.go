package config

import (
	"errors"
	"fmt"
	"strings"
)

// ModConfig holds the meter limits, drain rates and interaction defaults.
// Tick rates are in seconds of game time.
type ModConfig struct {
	MaxHunger         float32 `json:"MaxHunger"`
	MaxThirst         float32 `json:"MaxThirst"`
	WellFedThreshold  float32 `json:"WellFedThreshold"`
	HungerLossPerTick float32 `json:"HungerLossPerTick"`
	ThirstLossPerTick float32 `json:"ThirstLossPerTick"`
	HungerTickRate    float32 `json:"HungerTickRate"`
	ThirstTickRate    float32 `json:"ThirstTickRate"`
	WellFedTickRate   float32 `json:"WellFedTickRate"`

	DefaultFoodRestore    float32  `json:"DefaultFoodRestore"`
	DefaultDrinkRestore   float32  `json:"DefaultDrinkRestore"`
	StartFeedingFallback  float32  `json:"StartFeedingFallback"`
	StartDrinkingFallback float32  `json:"StartDrinkingFallback"`
	RefillDistance        float32  `json:"RefillDistance"`
	AllowedFluids         []string `json:"AllowedFluids"`
}

func DefaultModConfig() ModConfig {
	return ModConfig{
		MaxHunger:             100,
		MaxThirst:             100,
		WellFedThreshold:      90,
		HungerLossPerTick:     1,
		ThirstLossPerTick:     1,
		HungerTickRate:        6,
		ThirstTickRate:        5,
		WellFedTickRate:       1,
		DefaultFoodRestore:    10,
		DefaultDrinkRestore:   15,
		StartFeedingFallback:  10,
		StartDrinkingFallback: 10,
		RefillDistance:        5,
		AllowedFluids:         []string{"Water_Source", "Water"},
	}
}

func (c ModConfig) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    float32
	}{
		{"MaxHunger", c.MaxHunger},
		{"MaxThirst", c.MaxThirst},
		{"HungerTickRate", c.HungerTickRate},
		{"ThirstTickRate", c.ThirstTickRate},
		{"WellFedTickRate", c.WellFedTickRate},
		{"RefillDistance", c.RefillDistance},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.v))
		}
	}
	if c.HungerLossPerTick < 0 || c.ThirstLossPerTick < 0 {
		errs = append(errs, errors.New("loss per tick cannot be negative"))
	}
	if c.WellFedThreshold < 0 || c.WellFedThreshold > c.MaxHunger || c.WellFedThreshold > c.MaxThirst {
		errs = append(errs, fmt.Errorf("WellFedThreshold %v must lie within 0..min(MaxHunger, MaxThirst)", c.WellFedThreshold))
	}
	for _, f := range c.AllowedFluids {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, errors.New("AllowedFluids contains an empty fluid id"))
			break
		}
	}
	return errors.Join(errs...)
}

func DefaultFoods() map[string]float32 {
	return map[string]float32{
		"Plant_Fruit_Apple":       10,
		"Plant_Fruit_Berries_Red": 5,
		"Plant_Crop_Carrot_Item":  8,
		"Plant_Crop_Wheat_Item":   4,
		"Food_Bread":              20,
		"Food_Cheese":             15,
		"Food_Egg":                8,
		"Food_Fish_Raw":           8,
		"Food_Fish_Grilled":       20,
		"Food_Wildmeat_Raw":       10,
		"Food_Wildmeat_Cooked":    25,
		"Food_Pie_Apple":          35,
		"Food_Salad_Mushroom":     18,
		"Food_Kebab_Meat":         30,
	}
}

func DefaultDrinks() map[string]float32 {
	return map[string]float32{
		"Waterskin":             25,
		"Container_Bucket":      40,
		"Water_Bowl":            15,
		"Deco_Mug":              10,
		"Food_Milk_Bucket":      30,
		"Potion_Stamina_Small":  5,
		"Plant_Fruit_Coconut":   12,
		"Plant_Cactus_Fruit":    8,
		"Food_Soup_Vegetable":   20,
		"Food_Juice_Berry":      18,
		"Container_Glass_Water": 20,
	}
}
