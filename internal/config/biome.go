package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Modifier is one keyword fragment of a biome modifier table.
type Modifier struct {
	Keyword    string
	Multiplier float32
}

// ModifierTable is an ordered keyword table. It is encoded as a JSON object
// and keeps the key order of the document it was decoded from.
type ModifierTable []Modifier

func (t ModifierTable) Get(keyword string) (float32, bool) {
	for _, m := range t {
		if m.Keyword == keyword {
			return m.Multiplier, true
		}
	}
	return 0, false
}

func (t ModifierTable) Keywords() []string {
	out := make([]string, 0, len(t))
	for _, m := range t {
		out = append(out, m.Keyword)
	}
	return out
}

// Match returns the modifier whose keyword occurs in name, ignoring case.
// The longest keyword wins; keywords of equal length resolve in table order.
func (t ModifierTable) Match(name string) (Modifier, bool) {
	lower := strings.ToLower(name)
	best := -1
	bestLen := 0
	for i, m := range t {
		k := strings.ToLower(m.Keyword)
		if k == "" || !strings.Contains(lower, k) {
			continue
		}
		if len(k) > bestLen {
			best = i
			bestLen = len(k)
		}
	}
	if best < 0 {
		return Modifier{}, false
	}
	return t[best], true
}

func (t ModifierTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Keyword)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.Multiplier)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *ModifierTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*t = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("modifier table: expected object, got %v", tok)
	}

	out := ModifierTable{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("modifier table: expected key, got %v", tok)
		}
		var v float32
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("modifier %q: %w", key, err)
		}
		// A repeated key keeps its first position and takes the last value.
		if i, seen := index[key]; seen {
			out[i].Multiplier = v
			continue
		}
		index[key] = len(out)
		out = append(out, Modifier{Keyword: key, Multiplier: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*t = out
	return nil
}

func (t ModifierTable) validate(name string) error {
	var errs []error
	for _, m := range t {
		if strings.TrimSpace(m.Keyword) == "" {
			errs = append(errs, fmt.Errorf("%s: empty keyword", name))
			continue
		}
		if m.Multiplier <= 0 {
			errs = append(errs, fmt.Errorf("%s: keyword %q must have a positive multiplier, got %v", name, m.Keyword, m.Multiplier))
		}
	}
	return errors.Join(errs...)
}

// BiomeModifiersConfig scales hunger and thirst drain by the biome a player
// stands in. Multiplier 1.0 is normal drain, 2.0 doubles it, 0.5 halves it.
type BiomeModifiersConfig struct {
	Enabled                 bool          `json:"Enabled"`
	DefaultHungerMultiplier float32       `json:"DefaultHungerMultiplier"`
	DefaultThirstMultiplier float32       `json:"DefaultThirstMultiplier"`
	HungerModifiers         ModifierTable `json:"HungerModifiers"`
	ThirstModifiers         ModifierTable `json:"ThirstModifiers"`
}

func DefaultBiomeModifiers() BiomeModifiersConfig {
	return BiomeModifiersConfig{
		Enabled:                 true,
		DefaultHungerMultiplier: 1.0,
		DefaultThirstMultiplier: 1.0,
		// Cold burns more food, heat slightly less.
		HungerModifiers: ModifierTable{
			{"Frozen", 1.5},
			{"Glacier", 1.6},
			{"Tundra", 1.4},
			{"Cold", 1.3},
			{"Forest", 1.0},
			{"Plains", 1.0},
			{"River", 1.0},
			{"Lake", 1.0},
			{"Desert", 1.0},
			{"Savannah", 1.0},
			{"Scrub", 1.0},
			{"Lava", 0.9},
			{"Volcano", 0.9},
			{"Wastes", 1.0},
		},
		// Hot and dry drains water fastest; fresh water nearby slows it.
		ThirstModifiers: ModifierTable{
			{"Desert", 2.0},
			{"Dunes", 2.0},
			{"Lava", 2.0},
			{"Volcano", 1.8},
			{"Wastes", 1.5},
			{"Caldera", 1.8},
			{"Savannah", 1.4},
			{"Scrub", 1.3},
			{"Ash", 1.4},
			{"Burned", 1.3},
			{"Forest", 1.0},
			{"Plains", 1.0},
			{"Mountain", 1.1},
			{"Canyon", 1.2},
			{"Plateau", 1.1},
			{"Frozen", 0.7},
			{"Glacier", 0.6},
			{"Tundra", 0.8},
			{"Cold", 0.8},
			{"Swamp", 0.7},
			{"River", 0.6},
			{"Lake", 0.6},
			{"Ocean", 0.8},
			{"Kelp", 0.8},
			{"Reef", 0.8},
			{"Trench", 0.8},
			{"Island", 0.9},
			{"Oasis", 0.5},
			{"Hotsprings", 0.7},
		},
	}
}

// HungerMultiplier returns the hunger drain multiplier for a biome. An empty
// name means the biome could not be detected.
func (c BiomeModifiersConfig) HungerMultiplier(biome string) float32 {
	return c.resolve(biome, c.HungerModifiers, c.DefaultHungerMultiplier)
}

// ThirstMultiplier returns the thirst drain multiplier for a biome.
func (c BiomeModifiersConfig) ThirstMultiplier(biome string) float32 {
	return c.resolve(biome, c.ThirstModifiers, c.DefaultThirstMultiplier)
}

func (c BiomeModifiersConfig) resolve(biome string, table ModifierTable, fallback float32) float32 {
	if !c.Enabled || biome == "" {
		return 1.0
	}
	if v, ok := table.Get(biome); ok {
		return v
	}
	if m, ok := table.Match(biome); ok {
		return m.Multiplier
	}
	return fallback
}

func (c BiomeModifiersConfig) Validate() error {
	var errs []error
	if c.DefaultHungerMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("DefaultHungerMultiplier must be positive, got %v", c.DefaultHungerMultiplier))
	}
	if c.DefaultThirstMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("DefaultThirstMultiplier must be positive, got %v", c.DefaultThirstMultiplier))
	}
	errs = append(errs, c.HungerModifiers.validate("HungerModifiers"), c.ThirstModifiers.validate("ThirstModifiers"))
	return errors.Join(errs...)
}
