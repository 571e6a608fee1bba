package config

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestHungerMultiplierMatchesKeywordsCaseInsensitive(t *testing.T) {
	cfg := DefaultBiomeModifiers()
	tests := []struct {
		biome string
		want  float32
	}{
		{biome: "Glacier", want: 1.6},
		{biome: "Valley_Glacier", want: 1.6},
		{biome: "cold_reef", want: 1.3},
		{biome: "Cliffs_Tundra", want: 1.4},
		{biome: "PLATEAU_SAVANNAH_DRY", want: 1.0},
		{biome: "Volcano_Wastes_Lava", want: 0.9},
		{biome: "Unknown_Zone", want: 1.0},
	}
	for _, tc := range tests {
		got := cfg.HungerMultiplier(tc.biome)
		if got != tc.want {
			t.Fatalf("HungerMultiplier(%q)=%v want=%v", tc.biome, got, tc.want)
		}
	}
}

func TestThirstMultiplierMatchesKeywords(t *testing.T) {
	cfg := DefaultBiomeModifiers()
	tests := []struct {
		biome string
		want  float32
	}{
		{biome: "Desert", want: 2.0},
		{biome: "Dunes_Desert_Red", want: 2.0},
		{biome: "Lake_Swamp", want: 0.7},
		{biome: "Desert_Oasis", want: 2.0},
		{biome: "Desert_Hotsprings", want: 0.7},
		{biome: "Caldera_Forest_Ghost", want: 1.8},
		{biome: "river_delta", want: 0.6},
	}
	for _, tc := range tests {
		got := cfg.ThirstMultiplier(tc.biome)
		if got != tc.want {
			t.Fatalf("ThirstMultiplier(%q)=%v want=%v", tc.biome, got, tc.want)
		}
	}
}

func TestUnmatchedBiomeUsesConfiguredDefault(t *testing.T) {
	cfg := DefaultBiomeModifiers()
	cfg.DefaultHungerMultiplier = 1.25
	cfg.DefaultThirstMultiplier = 0.75

	if got := cfg.HungerMultiplier("Crystal_Caves"); got != 1.25 {
		t.Fatalf("expected hunger default 1.25, got %v", got)
	}
	if got := cfg.ThirstMultiplier("Crystal_Caves"); got != 0.75 {
		t.Fatalf("expected thirst default 0.75, got %v", got)
	}
}

func TestExactKeyBeatsLongerSubstringMatch(t *testing.T) {
	cfg := BiomeModifiersConfig{
		Enabled:                 true,
		DefaultHungerMultiplier: 1,
		DefaultThirstMultiplier: 1,
		ThirstModifiers: ModifierTable{
			{"Desert_Oasis", 0.4},
			{"Desert", 2.0},
		},
	}
	if got := cfg.ThirstMultiplier("Desert"); got != 2.0 {
		t.Fatalf("expected exact Desert entry, got %v", got)
	}
	if got := cfg.ThirstMultiplier("Desert_Oasis_North"); got != 0.4 {
		t.Fatalf("expected longest keyword to win, got %v", got)
	}
}

func TestEqualLengthKeywordsResolveInTableOrder(t *testing.T) {
	table := ModifierTable{{"Lava", 2.0}, {"Lake", 0.6}}
	m, ok := table.Match("Lake_Of_Lava")
	if !ok || m.Keyword != "Lava" {
		t.Fatalf("expected first declared keyword Lava, got %+v ok=%v", m, ok)
	}
}

func TestDisabledOrUnknownBiomeReturnsOne(t *testing.T) {
	cfg := DefaultBiomeModifiers()
	cfg.DefaultHungerMultiplier = 3
	if got := cfg.HungerMultiplier(""); got != 1.0 {
		t.Fatalf("expected 1.0 for undetected biome, got %v", got)
	}

	cfg.Enabled = false
	for _, biome := range []string{"Desert", "Glacier", "Nowhere", ""} {
		if got := cfg.HungerMultiplier(biome); got != 1.0 {
			t.Fatalf("disabled HungerMultiplier(%q)=%v want 1.0", biome, got)
		}
		if got := cfg.ThirstMultiplier(biome); got != 1.0 {
			t.Fatalf("disabled ThirstMultiplier(%q)=%v want 1.0", biome, got)
		}
	}
}

func TestModifierTableKeepsDocumentOrder(t *testing.T) {
	raw := `{"Enabled":true,"ThirstModifiers":{"Wastes":1.5,"Lava":2,"Ash":1.4}}`
	cfg := DefaultBiomeModifiers()
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"Wastes", "Lava", "Ash"}
	if got := cfg.ThirstModifiers.Keywords(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keyword order=%v want=%v", got, want)
	}
	if len(cfg.HungerModifiers) != len(DefaultBiomeModifiers().HungerModifiers) {
		t.Fatalf("expected absent hunger table to keep defaults")
	}

	out, err := json.Marshal(cfg.ThirstModifiers)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"Wastes":1.5,"Lava":2,"Ash":1.4}` {
		t.Fatalf("unexpected encoding %s", out)
	}
}

func TestValidateRejectsNonPositiveMultipliers(t *testing.T) {
	cfg := DefaultBiomeModifiers()
	cfg.HungerModifiers = append(cfg.HungerModifiers, Modifier{Keyword: "Void", Multiplier: 0})
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for zero multiplier")
	}
	if err := DefaultBiomeModifiers().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}
